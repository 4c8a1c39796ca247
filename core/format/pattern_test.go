// File: pattern_test.go
// Title: Message Pattern Compiler Tests
// Description: Covers literal quoting, argument styles, choice selection and
//              compile errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/verifier/core/error"
)

func TestCompile_Literals(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"plain", "hello", "hello"},
		{"escaped quote", "it''s", "it's"},
		{"quoted braces", "'{0}' is literal", "{0} is literal"},
		{"quoted run with quote", "'it''s {x}'", "it's {x}"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.pattern, language.English)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Format(nil))
		})
	}
}

func TestPattern_Arguments(t *testing.T) {
	p, err := Compile("{0} must be {1} not {2}", language.English)
	require.NoError(t, err)

	assert.Equal(t, 3, p.ArgCount())
	assert.Equal(t, `name must be "a" not 1,234`, p.Format(nil, Text("name"), "a", 1234))
	assert.Equal(t, "name must be {1} not {2}", p.Format(nil, Text("name")), "missing args keep their placeholder")
	assert.Equal(t, "{0} must be {1} not {2}", p.Source())
	assert.Equal(t, language.English, p.Locale())
}

func TestPattern_RepeatedAndReordered(t *testing.T) {
	p := MustCompile("{1}{0}{1}", language.English)
	assert.Equal(t, "bab", p.Format(nil, Text("a"), Text("b")))
}

func TestPattern_NumberStyles(t *testing.T) {
	tests := []struct {
		name    string
		tag     language.Tag
		pattern string
		arg     any
		want    string
	}{
		{"plain en", language.English, "{0,number}", 1234.5, "1,234.5"},
		{"plain de", language.German, "{0,number}", 1234.5, "1.234,5"},
		{"integer", language.English, "{0,number,integer}", 1234.7, "1,235"},
		{"percent", language.English, "{0,number,percent}", 0.25, "25%"},
		{"fixed fraction", language.English, "{0,number,#,##0.00}", 3.5, "3.50"},
		{"no grouping", language.English, "{0,number,0.0}", 12345.75, "12345.8"},
		{"non numeric", language.English, "{0,number}", "x", `"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.pattern, tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Format(nil, tt.arg))
		})
	}
}

func TestPattern_DateTime(t *testing.T) {
	ts := time.Date(2026, time.March, 4, 15, 6, 7, 0, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{"{0,date}", "Mar 4, 2026"},
		{"{0,date,short}", "3/4/26"},
		{"{0,date,long}", "March 4, 2026"},
		{"{0,date,full}", "Wednesday, March 4, 2026"},
		{"{0,time,short}", "3:06 PM"},
		{"{0,time}", "3:06:07 PM"},
		{"{0,date,2006-01-02}", "2026-03-04"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern, language.English)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Format(nil, ts))
		})
	}
}

func TestPattern_Choice(t *testing.T) {
	p, err := Compile("{0,choice,0#no items|1#one item|1<{0} items}", language.English)
	require.NoError(t, err)

	assert.Equal(t, "no items", p.Format(nil, 0))
	assert.Equal(t, "one item", p.Format(nil, 1))
	assert.Equal(t, "3 items", p.Format(nil, 3))
	assert.Equal(t, "1,500 items", p.Format(nil, 1500))
	assert.Equal(t, "no items", p.Format(nil, -4), "values below the first limit use the first choice")
	assert.Equal(t, "one item", p.Format(nil, 1.0))
	assert.Equal(t, "1.5 items", p.Format(nil, 1.5))
	assert.Equal(t, `"x"`, p.Format(nil, "x"), "non numeric values are formatted plainly")
}

func TestPattern_ChoiceInfinity(t *testing.T) {
	p := MustCompile("{0,choice,-inf#negative|0#zero|0<positive}", language.English)
	assert.Equal(t, "negative", p.Format(nil, -10))
	assert.Equal(t, "zero", p.Format(nil, 0))
	assert.Equal(t, "positive", p.Format(nil, 0.1))
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		position int
	}{
		{"unterminated argument", "abc {0", 6},
		{"missing index", "{}", 1},
		{"negative index", "{-1}", 1},
		{"unmatched close", "abc }", 4},
		{"unterminated quote", "it's", 2},
		{"unknown type", "{0,money}", 0},
		{"choice without limits", "{0,choice}", 0},
		{"descending limits", "{0,choice,2#a|1#b}", 14},
		{"bad number pattern", "{0,number,abc}", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern, language.English)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidPattern))

			e, ok := mdwerror.As(err)
			require.True(t, ok)
			pos, ok := e.Detail("position")
			require.True(t, ok)
			assert.Equal(t, tt.position, pos)
		})
	}
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("{", language.English) })
}

func TestFormat_Helper(t *testing.T) {
	assert.Equal(t, "a=1", Format(language.English, "a={0}", 1))
	assert.Equal(t, "{broken", Format(language.English, "{broken"), "invalid patterns are returned unchanged")
}
