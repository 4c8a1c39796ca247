// File: rune.go
// Title: Rune Verifier
// Description: Verifier for single characters. Runes are displayed as quoted
//              characters rather than as their code point.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"unicode"

	"github.com/msto63/verifier/core/format"
	"github.com/msto63/verifier/utils/stringx"
)

// RuneVerifier verifies characters
type RuneVerifier struct {
	OrderedBase[rune, *RuneVerifier]
}

func newRune(vn *Verification[rune]) *RuneVerifier {
	vn.SetDisplay(func(r rune) any { return format.Char(r) })
	v := &RuneVerifier{}
	v.Init(vn, v)
	return v
}

// Letter checks that the value is a letter
func (v *RuneVerifier) Letter() *RuneVerifier {
	return v.report(unicode.IsLetter(v.vn.value), KeyLetter)
}

// Digit checks that the value is a decimal digit
func (v *RuneVerifier) Digit() *RuneVerifier {
	return v.report(unicode.IsDigit(v.vn.value), KeyDigit)
}

// LetterOrDigit checks that the value is a letter or a decimal digit
func (v *RuneVerifier) LetterOrDigit() *RuneVerifier {
	r := v.vn.value
	return v.report(unicode.IsLetter(r) || unicode.IsDigit(r), KeyLetterOrDigit)
}

// LowerCase checks that the value is a lower case letter
func (v *RuneVerifier) LowerCase() *RuneVerifier {
	return v.report(unicode.IsLower(v.vn.value), KeyRuneLowerCase)
}

// UpperCase checks that the value is an upper case letter
func (v *RuneVerifier) UpperCase() *RuneVerifier {
	return v.report(unicode.IsUpper(v.vn.value), KeyRuneUpperCase)
}

// Whitespace checks that the value is a space character
func (v *RuneVerifier) Whitespace() *RuneVerifier {
	return v.report(unicode.IsSpace(v.vn.value), KeyRuneWhitespace)
}

// ASCII checks that the value is in the ASCII range
func (v *RuneVerifier) ASCII() *RuneVerifier {
	return v.report(v.vn.value >= 0 && v.vn.value <= unicode.MaxASCII, KeyASCII)
}

// ASCIIPrintable checks that the value is a printable ASCII character
func (v *RuneVerifier) ASCIIPrintable() *RuneVerifier {
	return v.report(stringx.IsASCIIPrintableRune(v.vn.value), KeyRuneASCIIPrint)
}
