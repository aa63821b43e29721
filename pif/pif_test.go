package pif_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cata-b/FLCDCompiler/lexer"
	"github.com/cata-b/FLCDCompiler/pif"
	"github.com/cata-b/FLCDCompiler/symtab"
	"github.com/cata-b/FLCDCompiler/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func analyze(t *testing.T, ss ...string) (*symtab.Table, []lexer.Entry) {
	t.Helper()
	ts := make([]token.Token, len(ss))
	for i, s := range ss {
		ts[i] = token.New(s, 1)
	}
	st := symtab.New()
	errs, entries := lexer.New().Analyze(context.Background(), ts, st)
	require.Empty(t, errs)
	return st, entries
}

func TestWriteInternalForm(t *testing.T) {
	st, entries := analyze(t, "x", "=", "-5", ";", "flag", "=", "true", ";")
	x := st.Find("x").Index()
	five := st.Find("-5").Index()
	flag := st.Find("flag").Index()

	var sb strings.Builder
	require.NoError(t, pif.WriteInternalForm(&sb, entries, pif.WithColumnWidth(12)))

	exp := fmt.Sprintf(""+
		"IDENTIFIER  %d\n"+
		"=           -1\n"+
		"CONSTANT    %d\n"+
		";           -1\n"+
		"IDENTIFIER  %d\n"+
		"=           -1\n"+
		"CONSTANT    -1\n"+
		";           -1\n", x, five, flag)
	assert.Equal(t, exp, sb.String())
}

func TestWriteInternalForm_DefaultColumn(t *testing.T) {
	_, entries := analyze(t, "while")
	var sb strings.Builder
	require.NoError(t, pif.WriteInternalForm(&sb, entries))
	assert.Equal(t, "while"+strings.Repeat(" ", pif.DefaultColumnWidth-5)+"-1\n", sb.String())
}

func TestWriteInternalForm_Overflow(t *testing.T) {
	_, entries := analyze(t, "continue")
	var sb strings.Builder
	require.NoError(t, pif.WriteInternalForm(&sb, entries, pif.WithColumnWidth(4)))
	assert.Equal(t, "continue -1\n", sb.String())
}

func TestWriteSymbolTable(t *testing.T) {
	st, _ := analyze(t, "b", "a", "12", `"s"`)

	var exp strings.Builder
	last := -1
	for p := st.Begin(); !p.IsEnd(); p = p.Next() {
		require.Greater(t, p.Index(), last)
		last = p.Index()
		fmt.Fprintf(&exp, "%d %s\n", p.Index(), p.Symbol())
	}

	var sb strings.Builder
	require.NoError(t, pif.WriteSymbolTable(&sb, st))
	assert.Equal(t, exp.String(), sb.String())
	assert.Equal(t, 4, strings.Count(sb.String(), "\n"))
}

func TestWrite_Error(t *testing.T) {
	st, entries := analyze(t, "x")
	w := failWriter{}

	err := pif.WriteInternalForm(w, entries)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFail))

	err = pif.WriteSymbolTable(w, st)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFail))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, pif.Width(""))
	assert.Equal(t, 3, pif.Width("abc"))
	assert.Equal(t, 4, pif.Width("世界"))
	assert.Equal(t, 4, pif.Width("déjà"))
	assert.Equal(t, 2, pif.Width("a\tb"))
	assert.Equal(t, 4, pif.Width("de\u0301ja\u0300"))
}

var errFail = errors.New("write failed")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errFail }
