// File: chars.go
// Title: Character Class Predicates
// Description: Predicates classifying whole strings by the characters they
//              contain. Empty strings only satisfy IsWhitespace and
//              IsASCIIPrintable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import "unicode"

func all(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// IsAlpha reports whether s consists of letters only
func IsAlpha(s string) bool {
	return all(s, unicode.IsLetter)
}

// IsAlphanumeric reports whether s consists of letters and digits only
func IsAlphanumeric(s string) bool {
	return all(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
}

// IsAlphaSpace reports whether s consists of letters and spaces only
func IsAlphaSpace(s string) bool {
	return all(s, func(r rune) bool { return unicode.IsLetter(r) || r == ' ' })
}

// IsAlphanumericSpace reports whether s consists of letters, digits and spaces
func IsAlphanumericSpace(s string) bool {
	return all(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' })
}

// IsNumeric reports whether s consists of decimal digits only
func IsNumeric(s string) bool {
	return all(s, unicode.IsDigit)
}

// IsNumericSpace reports whether s consists of digits and spaces only
func IsNumericSpace(s string) bool {
	return all(s, func(r rune) bool { return unicode.IsDigit(r) || r == ' ' })
}

// IsWhitespace reports whether s is empty or whitespace only
func IsWhitespace(s string) bool {
	return IsBlank(s)
}

// IsASCIIPrintable reports whether every byte of s is printable ASCII
func IsASCIIPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsASCIIPrintableRune(rune(s[i])) {
			return false
		}
	}
	return true
}

// IsASCIIPrintableRune reports whether r is in the range 32 to 126
func IsASCIIPrintableRune(r rune) bool {
	return r >= 32 && r < 127
}

// IsLowerCase reports whether s has cased letters and none of them is upper
// or title case
func IsLowerCase(s string) bool {
	return hasCase(s, func(r rune) bool { return unicode.IsUpper(r) || unicode.IsTitle(r) })
}

// IsUpperCase reports whether s has cased letters and none of them is lower
// or title case
func IsUpperCase(s string) bool {
	return hasCase(s, func(r rune) bool { return unicode.IsLower(r) || unicode.IsTitle(r) })
}

func hasCase(s string, wrong func(rune) bool) bool {
	cased := false
	for _, r := range s {
		if wrong(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}
