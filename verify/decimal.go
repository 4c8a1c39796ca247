// File: decimal.go
// Title: Decimal Verifier
// Description: Verifier for arbitrary precision decimals. Comparisons use the
//              numeric value, so 1.0 and 1.00 are equal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"github.com/shopspring/decimal"
)

// DecimalVerifier verifies decimal numbers
type DecimalVerifier struct {
	Base[decimal.Decimal, *DecimalVerifier]
}

func newDecimal(vn *Verification[decimal.Decimal]) *DecimalVerifier {
	v := &DecimalVerifier{}
	v.Init(vn, v)
	return v
}

// Between checks that lo <= value <= hi
func (v *DecimalVerifier) Between(lo, hi decimal.Decimal) *DecimalVerifier {
	d := v.vn.value
	return v.report(d.GreaterThanOrEqual(lo) && d.LessThanOrEqual(hi), KeyBetween, lo, hi)
}

// BetweenExclusive checks that lo < value < hi
func (v *DecimalVerifier) BetweenExclusive(lo, hi decimal.Decimal) *DecimalVerifier {
	d := v.vn.value
	return v.report(d.GreaterThan(lo) && d.LessThan(hi), KeyBetweenExclusive, lo, hi)
}

// GreaterThan checks that value > other
func (v *DecimalVerifier) GreaterThan(other decimal.Decimal) *DecimalVerifier {
	return v.report(v.vn.value.GreaterThan(other), KeyGreaterThan, other)
}

// GreaterThanOrEqualTo checks that value >= other
func (v *DecimalVerifier) GreaterThanOrEqualTo(other decimal.Decimal) *DecimalVerifier {
	return v.report(v.vn.value.GreaterThanOrEqual(other), KeyGreaterThanOrEqualTo, other)
}

// LessThan checks that value < other
func (v *DecimalVerifier) LessThan(other decimal.Decimal) *DecimalVerifier {
	return v.report(v.vn.value.LessThan(other), KeyLessThan, other)
}

// LessThanOrEqualTo checks that value <= other
func (v *DecimalVerifier) LessThanOrEqualTo(other decimal.Decimal) *DecimalVerifier {
	return v.report(v.vn.value.LessThanOrEqual(other), KeyLessThanOrEqualTo, other)
}

// Positive checks that the value is greater than zero
func (v *DecimalVerifier) Positive() *DecimalVerifier {
	return v.report(v.vn.value.IsPositive(), KeyPositive)
}

// Negative checks that the value is less than zero
func (v *DecimalVerifier) Negative() *DecimalVerifier {
	return v.report(v.vn.value.IsNegative(), KeyNegative)
}

// Zero checks that the value is zero at any scale
func (v *DecimalVerifier) Zero() *DecimalVerifier {
	return v.report(v.vn.value.IsZero(), KeyZero)
}

// Integer checks that the value has no fractional part
func (v *DecimalVerifier) Integer() *DecimalVerifier {
	return v.report(v.vn.value.IsInteger(), KeyInteger)
}

// MaxScale checks that the value has at most scale digits after the decimal
// point as written
func (v *DecimalVerifier) MaxScale(scale int32) *DecimalVerifier {
	return v.report(decimalScale(v.vn.value) <= scale, KeyMaxScale, scale)
}

func decimalScale(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}
