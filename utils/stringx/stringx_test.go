// File: stringx_test.go
// Title: String Utility Tests
// Description: Table tests for blank checks, truncation, case-insensitive
//              matching and character classes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Character class tests

package stringx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		blank bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" ", true},
		{"a", false},
		{"  a  ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.blank, IsBlank(tt.input), "IsBlank(%q)", tt.input)
		assert.Equal(t, !tt.blank, IsNotBlank(tt.input), "IsNotBlank(%q)", tt.input)
	}
	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty(" "))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"fits", "hello", 10, "...", "hello"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"unicode", "Grüße aus Köln", 6, "…", "Grüße…"},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"zero", "hello", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxLen, tt.ellipsis))
		})
	}
}

func TestIgnoreCase(t *testing.T) {
	assert.True(t, ContainsIgnoreCase("Hello World", "WORLD"))
	assert.False(t, ContainsIgnoreCase("Hello", "bye"))
	assert.True(t, HasPrefixIgnoreCase("Verifier", "VER"))
	assert.False(t, HasPrefixIgnoreCase("Verifier", "fier"))
	assert.True(t, HasSuffixIgnoreCase("Verifier", "FIER"))
}

func TestFirstNonBlankAndSplitList(t *testing.T) {
	assert.Equal(t, "b", FirstNonBlank("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonBlank())
	assert.Equal(t, []string{"a", "b c"}, SplitList(" a ,, b c ,"))
	assert.Nil(t, SplitList(""))
}

func TestCharacterClasses(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		yes  []string
		no   []string
	}{
		{"IsAlpha", IsAlpha, []string{"abc", "Straße"}, []string{"", "ab1", "a b"}},
		{"IsAlphanumeric", IsAlphanumeric, []string{"abc123"}, []string{"", "a-1", "a 1"}},
		{"IsAlphaSpace", IsAlphaSpace, []string{"hello world"}, []string{"", "hello 1"}},
		{"IsAlphanumericSpace", IsAlphanumericSpace, []string{"room 101"}, []string{"", "room-101"}},
		{"IsNumeric", IsNumeric, []string{"0123", "٣"}, []string{"", "12.5", "-1"}},
		{"IsNumericSpace", IsNumericSpace, []string{"12 34"}, []string{"", "12a"}},
		{"IsWhitespace", IsWhitespace, []string{"", " \t"}, []string{" a "}},
		{"IsASCIIPrintable", IsASCIIPrintable, []string{"", "Hello, World!"}, []string{"tab\t", "é"}},
		{"IsLowerCase", IsLowerCase, []string{"abc", "hello world 1"}, []string{"", "123", "Abc"}},
		{"IsUpperCase", IsUpperCase, []string{"ABC", "HELLO WORLD"}, []string{"", "ABc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.yes {
				assert.True(t, tt.fn(s), "%s(%q)", tt.name, s)
			}
			for _, s := range tt.no {
				assert.False(t, tt.fn(s), "%s(%q)", tt.name, s)
			}
		})
	}
}
