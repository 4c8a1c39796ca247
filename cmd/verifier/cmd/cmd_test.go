package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	mdwerror "github.com/msto63/verifier/core/error"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func localesDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "verifier v"+Version)
	assert.Contains(t, out, "Go Version:")
}

func TestLocales(t *testing.T) {
	out, err := run(t, "locales")
	require.NoError(t, err)
	assert.Contains(t, out, "en (default)")
	assert.Contains(t, out, "Deutsch")
	assert.Contains(t, out, "français")
	assert.Contains(t, out, "Total: 3 locale(s)")

	dir := localesDir(t, map[string]string{"it.yaml": "must: \"{0} deve {1}\"\n"})
	out, err = run(t, "locales", "--locales-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "italiano")
	assert.Contains(t, out, dir+":it.yaml")
	assert.Contains(t, out, "Total: 4 locale(s)")
}

func TestKeys(t *testing.T) {
	out, err := run(t, "keys", "string.bl", "--locale", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "string.blank")
	assert.Contains(t, out, "leer sein")
	assert.NotContains(t, out, "string.numeric")

	dir := localesDir(t, map[string]string{"it.yaml": "string:\n  blank: \"essere vuoto\"\n"})
	out, err = run(t, "keys", "string.", "--locale", "it", "--missing", "--locales-dir", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "string.blank")
	assert.Contains(t, out, "string.numeric")
	assert.Contains(t, out, "contain only digits")
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "ordered.less_than", "1000", "--locale", "de")
	require.NoError(t, err)
	assert.Equal(t, "kleiner als 1.000 sein\n", out)

	out, err = run(t, "render", "string.size_of", "1")
	require.NoError(t, err)
	assert.Equal(t, "have one character\n", out)

	out, err = run(t, "render", "--pattern", "{0} and {1}", "total", "1500")
	require.NoError(t, err)
	assert.Equal(t, "total and 1,500\n", out)

	_, err = run(t, "render", "no.such.key")
	assert.Error(t, err)

	_, err = run(t, "render", "--pattern", "{0")
	assert.Error(t, err)
}

func TestLint(t *testing.T) {
	out, err := run(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "OK 3 locale(s) checked")

	dir := localesDir(t, map[string]string{"it.yaml": "string:\n  blank: \"essere {0\"\n  extra: \"x\"\n"})
	out, err = run(t, "lint", "--locales-dir", dir)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "string.extra")
	assert.Contains(t, out, "not defined by the default locale")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "FAIL")
}

func TestLintArgCount(t *testing.T) {
	dir := localesDir(t, map[string]string{"de.yaml": "string:\n  blank: \"leer {0} sein\"\n"})
	out, err := run(t, "lint", "--locales-dir", dir)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "uses 1 argument(s), the default locale 0")
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
		fail bool
	}{
		{"passing chain", []string{"alice", "not:blank", "alphanumeric", "size:5"}, `PASS "alice"`, false},
		{"failing size", []string{"bob", "size:5", "--name", "user"}, "FAIL user must have 5 characters", true},
		{"negated", []string{"123", "not:numeric"}, "FAIL value must not contain only digits", true},
		{"double negation", []string{"", "not:not:empty"}, `PASS ""`, false},
		{"argument with colon", []string{"a:b", "contain::"}, `PASS "a:b"`, false},
		{"localized", []string{"", "not:blank", "--locale", "de"}, "FAIL Wert darf nicht leer sein", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"check"}, tt.args...)...)
			if tt.fail {
				assert.ErrorIs(t, err, errReported)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCheckErrors(t *testing.T) {
	_, err := run(t, "check", "x", "shiny")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	_, err = run(t, "check", "x", "size")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	_, err = run(t, "check", "x", "blank:1")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	_, err = run(t, "check", "x", "size:five")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	_, err = run(t, "check", "x", "match:[")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidPattern))

	_, err = run(t, "check", "x", "blank", "--locale", "und")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf)
	assert.True(t, p.plain)

	p.table([]string{"A", "BB"}, [][]string{{"long", "x"}, {"s", "yy"}})
	assert.Equal(t, "A     BB\nlong  x\ns     yy\n", buf.String())
}
