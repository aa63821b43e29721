package token_test

import (
	"strings"
	"testing"

	"github.com/cata-b/FLCDCompiler/token"
	"github.com/stretchr/testify/assert"
)

func TestFile_Line(t *testing.T) {
	f := token.NewFile("test", strings.NewReader(""))
	f.AddLine(6)
	f.AddLine(6) // duplicate, ignored
	f.AddLine(3) // before last line, ignored
	f.AddLine(10)

	td := []struct {
		pos  token.Pos
		line int
	}{
		{0, 1},
		{5, 1},
		{6, 2},
		{9, 2},
		{10, 3},
		{200, 3},
	}
	for _, d := range td {
		assert.Equal(t, d.line, f.Line(d.pos), "pos %d", d.pos)
	}
	assert.Equal(t, 3, f.Lines())
	assert.Equal(t, "test", f.Name())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "IDENTIFIER", token.Identifier.String())
	assert.Equal(t, "ERROR", token.Error.String())
	assert.Equal(t, "Type(42)", token.Type(42).String())
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, `"\n"@3`, token.New("\n", 3).String())
	assert.Equal(t, []string{"a", "+"}, token.Contents([]token.Token{token.New("a", 1), token.New("+", 1)}))
}

func TestIsKeyword(t *testing.T) {
	for _, k := range []string{"int", "print", "exit", "continue"} {
		assert.True(t, token.IsKeyword(k), k)
	}
	for _, s := range []string{"", "x", "true", "Print", "ints"} {
		assert.False(t, token.IsKeyword(s), s)
	}
}
