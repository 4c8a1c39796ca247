// File: ordered.go
// Title: Ordered Value Checks
// Description: OrderedBase adds range and comparison checks for values of
//              ordered types. Number, string and rune verifiers embed it.
//              Comparisons use the native operators, so a NaN operand never
//              satisfies them.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Native comparison operators, NaN never in range

package verify

import "cmp"

// OrderedBase holds the checks of ordered values
type OrderedBase[T cmp.Ordered, S any] struct {
	Base[T, S]
}

// Between checks that lo <= value <= hi
func (o *OrderedBase[T, S]) Between(lo, hi T) S {
	v := o.vn.value
	return o.report(v >= lo && v <= hi, KeyBetween, o.show(lo), o.show(hi))
}

// BetweenExclusive checks that lo < value < hi
func (o *OrderedBase[T, S]) BetweenExclusive(lo, hi T) S {
	v := o.vn.value
	return o.report(v > lo && v < hi, KeyBetweenExclusive, o.show(lo), o.show(hi))
}

// GreaterThan checks that value > other
func (o *OrderedBase[T, S]) GreaterThan(other T) S {
	return o.report(o.vn.value > other, KeyGreaterThan, o.show(other))
}

// GreaterThanOrEqualTo checks that value >= other
func (o *OrderedBase[T, S]) GreaterThanOrEqualTo(other T) S {
	return o.report(o.vn.value >= other, KeyGreaterThanOrEqualTo, o.show(other))
}

// LessThan checks that value < other
func (o *OrderedBase[T, S]) LessThan(other T) S {
	return o.report(o.vn.value < other, KeyLessThan, o.show(other))
}

// LessThanOrEqualTo checks that value <= other
func (o *OrderedBase[T, S]) LessThanOrEqualTo(other T) S {
	return o.report(o.vn.value <= other, KeyLessThanOrEqualTo, o.show(other))
}
