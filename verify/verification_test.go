// File: verification_test.go
// Title: Verification State Machine Tests
// Description: Tests for negation, first failure semantics, failure errors,
//              panic mode, message sources and localization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package verify

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/format"
	"github.com/msto63/verifier/core/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newVerifier(t *testing.T, opts ...Option) *Verifier {
	t.Helper()
	vf, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = vf.Close() })
	return vf
}

func message(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return err.Error()
}

func TestNegation(t *testing.T) {
	vf := newVerifier(t)

	tests := []struct {
		name   string
		err    error
		failed bool
	}{
		{"plain pass", vf.String("").Blank().Err(), false},
		{"plain fail", vf.String("x").Blank().Err(), true},
		{"negated pass", vf.String("x").Not().Blank().Err(), false},
		{"negated fail", vf.String("").Not().Blank().Err(), true},
		{"double negation", vf.String("").Not().Not().Blank().Err(), false},
		{"negation is cleared", vf.String("x").Not().Blank().Not().Empty().Err(), false},
		{"negation covers next check only", vf.String("x").Not().Empty().Blank().Err(), true},
		{"and is a no-op", vf.String("").Blank().And().Empty().Err(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.failed, tt.err != nil, "err = %v", tt.err)
		})
	}
}

func TestFailureMessage(t *testing.T) {
	vf := newVerifier(t)

	assert.Equal(t, "name must be blank", message(t, vf.String("x", "name").Blank().Err()))
	assert.Equal(t, "name must not be blank", message(t, vf.String(" ", "name").Not().Blank().Err()))
	assert.Equal(t, "value must be greater than 10", message(t, IntWith(vf, 5).GreaterThan(10).Err()))
	assert.Equal(t, `value must contain "x"`, message(t, vf.String("abc").Contain("x").Err()))
}

func TestFirstFailureWins(t *testing.T) {
	vf := newVerifier(t)

	sv := vf.String("abc", "code").SizeOf(2).Contain("z").Not()
	err := sv.Empty().Err()

	assert.Equal(t, "code must have 2 characters", message(t, err))
	assert.False(t, sv.Verification().Negated(), "later checks still clear the negation")
	assert.True(t, sv.Verification().Failed())
}

func TestFailureError(t *testing.T) {
	vf := newVerifier(t)

	err := vf.String("", "name").Not().Blank().Err()
	require.Error(t, err)
	assert.True(t, IsFailure(err))

	e, ok := mdwerror.As(err)
	require.True(t, ok)
	assert.Equal(t, mdwerror.CodeVerificationFailed, e.Code())
	assert.Equal(t, "verify.string.blank", e.Operation())
	assert.Equal(t, string(KeyBlank), e.MessageKey())

	details := e.Details()
	assert.Equal(t, "name", details["name"])
	assert.Equal(t, true, details["negated"])
	assert.Equal(t, "", details["value"])
	assert.Equal(t, "en", details["locale"])

	wrapped := mdwerror.Wrap(err, "request rejected")
	assert.True(t, IsFailure(wrapped))
	assert.False(t, IsFailure(mdwerror.New("other")))
	assert.False(t, IsFailure(nil))
}

func TestCheckPattern(t *testing.T) {
	vf := newVerifier(t)

	vn := NewVerification(vf, 7, "limit")
	vn.Check(false, "be at most {0}", 3)
	err := vn.Err()

	assert.Equal(t, "limit must be at most 3", message(t, err))
	e, _ := mdwerror.As(err)
	assert.Equal(t, "verify.check", e.Operation())
	pattern, ok := e.Detail("pattern")
	assert.True(t, ok)
	assert.Equal(t, "be at most {0}", pattern)

	vn = NewVerification(vf, 7)
	vn.SetNegated(true)
	vn.Check(true, "be {0}", 7)
	assert.Equal(t, "value must not be 7", message(t, vn.Err()))
}

func TestThat(t *testing.T) {
	vf := newVerifier(t)
	even := func(n int) bool { return n%2 == 0 }

	assert.NoError(t, IntWith(vf, 4).That(even).Err())
	assert.Equal(t, "value must satisfy the condition", message(t, IntWith(vf, 3).That(even).Err()))
	assert.Equal(t, "n must be even, got 3", message(t, IntWith(vf, 3, "n").ThatWith(even, "be even, got {0}", 3).Err()))
	assert.Equal(t, "n must be odd", message(t, IntWith(vf, 4, "n").ThatKey(func(n int) bool { return n%2 == 1 }, KeyOdd).Err()))
	assert.Equal(t, "value must pass the check no.such.key", message(t, IntWith(vf, 3).ThatKey(even, "no.such.key").Err()))
}

func TestAbort(t *testing.T) {
	vf := newVerifier(t)

	sv := vf.String("abc").Not().Match("(")
	err := sv.Err()
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidPattern))
	assert.False(t, IsFailure(err))
	assert.False(t, sv.Verification().Negated())

	// Later checks do not replace the abort
	assert.Equal(t, err, sv.Empty().Err())
}

func TestDefaultName(t *testing.T) {
	vf := newVerifier(t, WithDefaultName("input"))
	assert.Equal(t, "input must be empty", message(t, vf.String("x").Empty().Err()))
	assert.Equal(t, "given must be empty", message(t, vf.String("x", "given").Empty().Err()))
}

func TestPanicOnFailure(t *testing.T) {
	vf := newVerifier(t, WithPanicOnFailure(true))

	assert.NotPanics(t, func() { vf.String("").Empty() })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, IsFailure(err))
		assert.Equal(t, "value must be empty", err.Error())
	}()
	vf.String("x").Empty()
	t.Fatal("expected panic")
}

func TestMust(t *testing.T) {
	vf := newVerifier(t)

	assert.Equal(t, 8080, IntWith(vf, 8080, "port").Between(1, 65535).Must())
	assert.Panics(t, func() { IntWith(vf, 0, "port").Between(1, 65535).Must() })
}

func TestLocalizedMessages(t *testing.T) {
	vf := newVerifier(t)
	de := vf.In(language.German)
	fr := vf.In(language.French)

	assert.Equal(t, "Name muss die leere Zeichenkette sein", message(t, de.String("x", "Name").Empty().Err()))
	assert.Equal(t, "Name darf nicht leer sein", message(t, de.String("", "Name").Not().Blank().Err()))
	assert.Equal(t, "Code muss 2 Zeichen lang sein", message(t, de.String("abc", "Code").SizeOf(2).Err()))
	assert.Equal(t, "Wert muss kleiner als 1.000 sein", message(t, IntWith(de, 1234).LessThan(1000).Err()))

	assert.Equal(t, "l'âge doit être pair", message(t, IntWith(fr, 3, "l'âge").Even().Err()))
	assert.Equal(t, "la valeur ne doit pas être vide", message(t, fr.String("").Not().Blank().Err()))
	assert.Equal(t, `la valeur doit contenir l'un de ["a", "b"]`, message(t, fr.String("xyz").ContainAny("a", "b").Err()))

	// Regional locales use their parent bundle
	ch := vf.In(language.MustParse("de-CH"))
	assert.Equal(t, "Wert muss wahr sein", message(t, ch.Bool(false).True().Err()))

	// Unknown locales fall back to English
	ja := vf.In(language.Japanese)
	assert.Equal(t, "value must be true", message(t, ja.Bool(false).True().Err()))
}

func TestLocalesDirOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`
[string]
blank = "be left empty"
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "it.yaml"), []byte(`
report:
  must: "{0} deve {1}"
  default_name: "valore"
bool:
  "true": "essere vero"
`), 0o644))

	vf := newVerifier(t, WithLocalesDir(dir))
	assert.Equal(t, "value must be left empty", message(t, vf.String("x").Blank().Err()))
	assert.Equal(t, "value must be empty", message(t, vf.String("x").Empty().Err()))

	it := vf.In(language.Italian)
	assert.Equal(t, "valore deve essere vero", message(t, it.Bool(false).True().Err()))
	assert.Equal(t, "valore must not essere vero", message(t, it.Bool(true).Not().True().Err()))
}

func TestSources(t *testing.T) {
	custom := fstest.MapFS{
		"en.toml": {Data: []byte(`
[order]
paid = "be paid before shipping"
`)},
	}
	vf := newVerifier(t, WithSources(custom))
	paid := func(bool) bool { return false }
	err := vf.Bool(false, "order").ThatKey(paid, "order.paid").Err()
	assert.Equal(t, "order must be paid before shipping", message(t, err))
}

func TestNoFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nl.toml"), []byte(`
[report]
must = "{0} moet {1}"
`), 0o644))

	vf := newVerifier(t, WithLocalesDir(dir), WithFallback(false))
	nl := vf.In(language.Dutch)
	assert.Equal(t, "report.default_name moet object.nil", message(t, nl.Object(1).Nil().Err()))
}

type upperSource struct{}

func (upperSource) Message(ctx Context, key MessageKey, args ...any) string {
	switch key {
	case KeyMust, KeyMustNot:
		return format.Format(ctx.Locale(), "{0}: {1}", args...)
	case KeyDefaultName:
		return "it"
	}
	if ctx.Negated() {
		return "NOT " + key.String()
	}
	return key.String()
}

func (upperSource) Format(ctx Context, pattern string, args ...any) string {
	return format.Format(ctx.Locale(), pattern, args...)
}

func TestCustomSource(t *testing.T) {
	vf := newVerifier(t, WithMessageSource(upperSource{}))
	assert.Nil(t, vf.Manager())

	assert.Equal(t, "it: string.empty", message(t, vf.String("x").Empty().Err()))
	assert.Equal(t, "it: NOT string.blank", message(t, vf.String("").Not().Blank().Err()))

	// Without bundles no locale is available
	assert.Error(t, vf.LocaleOf(language.English).Available().Err())
}

type point struct{ X, Y int }

func TestCustomFormatter(t *testing.T) {
	registry := format.Default().Clone()
	format.Register(registry, func(s *format.State, p point) string {
		return "(" + s.Format(p.X) + "|" + s.Format(p.Y) + ")"
	})

	vf := newVerifier(t, WithFormatters(registry))
	err := vf.Object(point{1, 2}).EqualTo(point{3, 4}).Err()
	assert.Equal(t, "value must be equal to (3|4)", message(t, err))

	// The default registry is unchanged
	err = Default().Object(point{1, 2}).EqualTo(point{3, 4}).Err()
	assert.Equal(t, "value must be equal to {3 4}", message(t, err))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: &buf})

	vf := newVerifier(t, WithLogger(logger))
	vf.String("x", "field").Empty()

	out := buf.String()
	assert.Contains(t, out, `"message":"verification failed"`)
	assert.Contains(t, out, `"key":"string.empty"`)
	assert.Contains(t, out, `"name":"field"`)
}

func TestNewErrors(t *testing.T) {
	_, err := New(WithLocale(language.Und))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidLocale))

	_, err = New(WithLocalesDir(filepath.Join(t.TempDir(), "missing")))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))

	assert.Panics(t, func() { MustNew(WithLocale(language.Und)) })
}

func TestDefaultVerifier(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	assert.Same(t, original, Default())
	assert.Equal(t, "value must be true", message(t, Bool(false).True().Err()))

	de := original.In(language.German)
	SetDefault(de)
	assert.Equal(t, "Wert muss wahr sein", message(t, Bool(false).True().Err()))
	assert.Equal(t, language.German, Default().Locale())
	assert.NoError(t, de.Close(), "copies do not own the bundles")
}
