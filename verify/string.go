// File: string.go
// Title: String Verifier
// Description: Verifier for strings: character classes, containment, prefix
//              and suffix checks, regular expressions and common formats.
//              Lengths count runes, not bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/utils/stringx"
)

var (
	formatValidator     *validator.Validate
	formatValidatorOnce sync.Once
)

func formats() *validator.Validate {
	formatValidatorOnce.Do(func() {
		formatValidator = validator.New()
	})
	return formatValidator
}

// StringVerifier verifies strings
type StringVerifier struct {
	OrderedBase[string, *StringVerifier]
}

func newString(vn *Verification[string]) *StringVerifier {
	v := &StringVerifier{}
	v.Init(vn, v)
	v.SetEqual(func(a, b string) bool { return a == b })
	return v
}

// Alpha checks that the value consists of letters only
func (v *StringVerifier) Alpha() *StringVerifier {
	return v.report(stringx.IsAlpha(v.vn.value), KeyAlpha)
}

// Alphanumeric checks that the value consists of letters and digits only
func (v *StringVerifier) Alphanumeric() *StringVerifier {
	return v.report(stringx.IsAlphanumeric(v.vn.value), KeyAlphanumeric)
}

// AlphaSpace checks that the value consists of letters and spaces only
func (v *StringVerifier) AlphaSpace() *StringVerifier {
	return v.report(stringx.IsAlphaSpace(v.vn.value), KeyAlphaSpace)
}

// AlphanumericSpace checks that the value consists of letters, digits and
// spaces only
func (v *StringVerifier) AlphanumericSpace() *StringVerifier {
	return v.report(stringx.IsAlphanumericSpace(v.vn.value), KeyAlphanumericSpace)
}

// ASCIIPrintable checks that the value consists of printable ASCII only
func (v *StringVerifier) ASCIIPrintable() *StringVerifier {
	return v.report(stringx.IsASCIIPrintable(v.vn.value), KeyASCIIPrintable)
}

// Blank checks that the value is empty or whitespace only
func (v *StringVerifier) Blank() *StringVerifier {
	return v.report(stringx.IsBlank(v.vn.value), KeyBlank)
}

// Empty checks that the value is the empty string
func (v *StringVerifier) Empty() *StringVerifier {
	return v.report(stringx.IsEmpty(v.vn.value), KeyEmpty)
}

// Contain checks that the value contains substr
func (v *StringVerifier) Contain(substr string) *StringVerifier {
	return v.report(strings.Contains(v.vn.value, substr), KeyContain, substr)
}

// ContainAll checks that the value contains every one of substrs
func (v *StringVerifier) ContainAll(substrs ...string) *StringVerifier {
	return v.report(all(substrs, v.contains), KeyContainAll, substrs)
}

// ContainAny checks that the value contains one of substrs
func (v *StringVerifier) ContainAny(substrs ...string) *StringVerifier {
	return v.report(anyOf(substrs, v.contains), KeyContainAny, substrs)
}

// ContainIgnoreCase checks that the value contains substr ignoring case
func (v *StringVerifier) ContainIgnoreCase(substr string) *StringVerifier {
	return v.report(stringx.ContainsIgnoreCase(v.vn.value, substr), KeyContainIgnoreCase, substr)
}

// ContainAllIgnoreCase checks that the value contains every one of substrs
// ignoring case
func (v *StringVerifier) ContainAllIgnoreCase(substrs ...string) *StringVerifier {
	return v.report(all(substrs, v.containsFold), KeyContainAllIgnoreCase, substrs)
}

// ContainAnyIgnoreCase checks that the value contains one of substrs
// ignoring case
func (v *StringVerifier) ContainAnyIgnoreCase(substrs ...string) *StringVerifier {
	return v.report(anyOf(substrs, v.containsFold), KeyContainAnyIgnoreCase, substrs)
}

// StartWith checks that the value starts with prefix
func (v *StringVerifier) StartWith(prefix string) *StringVerifier {
	return v.report(strings.HasPrefix(v.vn.value, prefix), KeyStartWith, prefix)
}

// StartWithAny checks that the value starts with one of prefixes
func (v *StringVerifier) StartWithAny(prefixes ...string) *StringVerifier {
	ok := anyOf(prefixes, func(p string) bool { return strings.HasPrefix(v.vn.value, p) })
	return v.report(ok, KeyStartWithAny, prefixes)
}

// StartWithIgnoreCase checks that the value starts with prefix ignoring case
func (v *StringVerifier) StartWithIgnoreCase(prefix string) *StringVerifier {
	return v.report(stringx.HasPrefixIgnoreCase(v.vn.value, prefix), KeyStartWithIgnoreCase, prefix)
}

// EndWith checks that the value ends with suffix
func (v *StringVerifier) EndWith(suffix string) *StringVerifier {
	return v.report(strings.HasSuffix(v.vn.value, suffix), KeyEndWith, suffix)
}

// EndWithAny checks that the value ends with one of suffixes
func (v *StringVerifier) EndWithAny(suffixes ...string) *StringVerifier {
	ok := anyOf(suffixes, func(s string) bool { return strings.HasSuffix(v.vn.value, s) })
	return v.report(ok, KeyEndWithAny, suffixes)
}

// EndWithIgnoreCase checks that the value ends with suffix ignoring case
func (v *StringVerifier) EndWithIgnoreCase(suffix string) *StringVerifier {
	return v.report(stringx.HasSuffixIgnoreCase(v.vn.value, suffix), KeyEndWithIgnoreCase, suffix)
}

// EqualToIgnoreCase checks that the value equals other under case folding
func (v *StringVerifier) EqualToIgnoreCase(other string) *StringVerifier {
	return v.report(strings.EqualFold(v.vn.value, other), KeyEqualToIgnoreCase, other)
}

// LowerCase checks that the value has cased letters and all of them are
// lower case
func (v *StringVerifier) LowerCase() *StringVerifier {
	return v.report(stringx.IsLowerCase(v.vn.value), KeyLowerCase)
}

// UpperCase checks that the value has cased letters and all of them are
// upper case
func (v *StringVerifier) UpperCase() *StringVerifier {
	return v.report(stringx.IsUpperCase(v.vn.value), KeyUpperCase)
}

// Match checks that the value matches the regular expression expr. An
// invalid expression fails the verification regardless of negation.
func (v *StringVerifier) Match(expr string) *StringVerifier {
	matched, ok := v.match(expr)
	if !ok {
		return v
	}
	return v.report(matched, KeyMatch, expr)
}

// MatchAll checks that the value matches every one of exprs
func (v *StringVerifier) MatchAll(exprs ...string) *StringVerifier {
	result := true
	for _, expr := range exprs {
		matched, ok := v.match(expr)
		if !ok {
			return v
		}
		result = result && matched
	}
	return v.report(result, KeyMatchAll, exprs)
}

// MatchAny checks that the value matches one of exprs
func (v *StringVerifier) MatchAny(exprs ...string) *StringVerifier {
	result := false
	for _, expr := range exprs {
		matched, ok := v.match(expr)
		if !ok {
			return v
		}
		result = result || matched
	}
	return v.report(result, KeyMatchAny, exprs)
}

// Numeric checks that the value consists of digits only
func (v *StringVerifier) Numeric() *StringVerifier {
	return v.report(stringx.IsNumeric(v.vn.value), KeyNumeric)
}

// NumericSpace checks that the value consists of digits and spaces only
func (v *StringVerifier) NumericSpace() *StringVerifier {
	return v.report(stringx.IsNumericSpace(v.vn.value), KeyNumericSpace)
}

// Whitespace checks that the value consists of whitespace only
func (v *StringVerifier) Whitespace() *StringVerifier {
	return v.report(stringx.IsWhitespace(v.vn.value), KeyWhitespace)
}

// SizeOf checks that the value is n characters long
func (v *StringVerifier) SizeOf(n int) *StringVerifier {
	return v.report(utf8.RuneCountInString(v.vn.value) == n, KeyLength, n)
}

// Email checks that the value is an email address
func (v *StringVerifier) Email() *StringVerifier {
	return v.report(formats().Var(v.vn.value, "required,email") == nil, KeyEmail)
}

// URL checks that the value is an absolute URL
func (v *StringVerifier) URL() *StringVerifier {
	return v.report(formats().Var(v.vn.value, "required,url") == nil, KeyURL)
}

// UUID checks that the value is a UUID in one of the textual forms
func (v *StringVerifier) UUID() *StringVerifier {
	_, err := uuid.Parse(v.vn.value)
	return v.report(err == nil, KeyUUID)
}

func (v *StringVerifier) contains(substr string) bool {
	return strings.Contains(v.vn.value, substr)
}

func (v *StringVerifier) containsFold(substr string) bool {
	return stringx.ContainsIgnoreCase(v.vn.value, substr)
}

// match reports whether the value matches expr. ok is false when expr does
// not compile; the verification is aborted then.
func (v *StringVerifier) match(expr string) (matched, ok bool) {
	re, err := regexp.Compile(expr)
	if err != nil {
		v.vn.Abort(mdwerror.Wrap(err, "invalid regular expression").
			WithCode(mdwerror.CodeInvalidPattern).
			WithOperation("verify.string.match").
			WithDetail("expression", expr).
			WithDetail("name", v.vn.name))
		return false, false
	}
	return re.MatchString(v.vn.value), true
}

func all[E any](xs []E, pred func(E) bool) bool {
	for _, x := range xs {
		if !pred(x) {
			return false
		}
	}
	return true
}

func anyOf[E any](xs []E, pred func(E) bool) bool {
	for _, x := range xs {
		if pred(x) {
			return true
		}
	}
	return false
}
