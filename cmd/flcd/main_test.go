package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func runCmd(t *testing.T, fs afero.Fs, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut, fs)
	return code, out.String(), errOut.String()
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(b)
}

func TestRun(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"p.txt": "int x;\nx = 2 # 3;\nprint(true);\n",
	})

	code, stdout, _ := runCmd(t, fs, "--column-width", "6", "p.txt", "pif.out", "st.out")
	require.Equal(t, 0, code)
	assert.Equal(t, "# 2\n", stdout)

	pifOut := readFile(t, fs, "pif.out")
	lines := strings.Split(strings.TrimSuffix(pifOut, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "int   -1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "IDENTIFIER "), lines[1])
	assert.True(t, strings.HasPrefix(lines[5], "CONSTANT "), lines[5])
	assert.Equal(t, "CONSTANT -1", lines[10])

	st := readFile(t, fs, "st.out")
	assert.Equal(t, 3, strings.Count(st, "\n"))
	for _, sym := range []string{" x\n", " 2\n", " 3\n"} {
		assert.Contains(t, st, sym)
	}
}

func TestRun_Usage(t *testing.T) {
	fs := setupFs(t, nil)
	code, stdout, stderr := runCmd(t, fs, "in.txt", "pif.out")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error: ")
	assert.Contains(t, stdout+stderr, "Usage:")
}

func TestRun_UnterminatedString(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"p.txt": "int x;\nprint(\"abc);\n",
	})
	code, _, stderr := runCmd(t, fs, "p.txt", "pif.out", "st.out")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error: incomplete string literal")
	assert.Contains(t, stderr, "at line 2\n")

	exists, err := afero.Exists(fs, "pif.out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRun_MissingInput(t *testing.T) {
	code, _, stderr := runCmd(t, setupFs(t, nil), "nope.txt", "pif.out", "st.out")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error: cannot open input file")
	assert.NotContains(t, stderr, "token ")
}

func TestRun_Automata(t *testing.T) {
	ids, err := os.ReadFile("../../automaton/testdata/identifier.yaml")
	require.NoError(t, err)
	ints, err := os.ReadFile("../../automaton/testdata/integer.yaml")
	require.NoError(t, err)

	src := "int n = -12;\nwhile (n < 0) { n = n+1; }\n"
	fs := setupFs(t, map[string]string{
		"p.txt":    src,
		"id.yaml":  string(ids),
		"int.yaml": string(ints),
		"cfg.yaml": "identifier_fa: id.yaml\nconstant_fa: int.yaml\nbuffer_size: 4\n",
	})

	code, stdout, _ := runCmd(t, fs, "p.txt", "plain.pif", "plain.st")
	require.Equal(t, 0, code)
	assert.Empty(t, stdout)

	code, stdout, _ = runCmd(t, fs, "--config", "cfg.yaml", "p.txt", "fa.pif", "fa.st")
	require.Equal(t, 0, code)
	assert.Empty(t, stdout)

	assert.Equal(t, readFile(t, fs, "plain.pif"), readFile(t, fs, "fa.pif"))
	assert.Equal(t, readFile(t, fs, "plain.st"), readFile(t, fs, "fa.st"))
}

func TestRun_BadAutomaton(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"p.txt":  "x;\n",
		"a.yaml": "states: [a]\ninitial: b\n",
	})
	code, _, stderr := runCmd(t, fs, "--identifier-fa", "a.yaml", "p.txt", "pif.out", "st.out")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error: ")
}
