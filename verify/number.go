// File: number.go
// Title: Number Verifiers
// Description: Verifiers for integers, durations and floating point numbers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IntVerifier verifies integers of any width
type IntVerifier[T constraints.Integer] struct {
	OrderedBase[T, *IntVerifier[T]]
}

func newInt[T constraints.Integer](vn *Verification[T]) *IntVerifier[T] {
	v := &IntVerifier[T]{}
	v.Init(vn, v)
	v.SetEqual(func(a, b T) bool { return a == b })
	return v
}

// Even checks that the value is divisible by two
func (v *IntVerifier[T]) Even() *IntVerifier[T] {
	return v.report(v.vn.value%2 == 0, KeyEven)
}

// Odd checks that the value is not divisible by two
func (v *IntVerifier[T]) Odd() *IntVerifier[T] {
	return v.report(v.vn.value%2 != 0, KeyOdd)
}

// Positive checks that the value is greater than zero
func (v *IntVerifier[T]) Positive() *IntVerifier[T] {
	return v.report(v.vn.value > 0, KeyPositive)
}

// Negative checks that the value is less than zero
func (v *IntVerifier[T]) Negative() *IntVerifier[T] {
	return v.report(v.vn.value < 0, KeyNegative)
}

// Zero checks that the value is zero
func (v *IntVerifier[T]) Zero() *IntVerifier[T] {
	return v.report(v.vn.value == 0, KeyZero)
}

// One checks that the value is one
func (v *IntVerifier[T]) One() *IntVerifier[T] {
	return v.report(v.vn.value == 1, KeyOne)
}

// FloatVerifier verifies floating point numbers
type FloatVerifier[T constraints.Float] struct {
	OrderedBase[T, *FloatVerifier[T]]
}

func newFloat[T constraints.Float](vn *Verification[T]) *FloatVerifier[T] {
	v := &FloatVerifier[T]{}
	v.Init(vn, v)
	v.SetEqual(func(a, b T) bool { return a == b })
	return v
}

// Positive checks that the value is greater than zero
func (v *FloatVerifier[T]) Positive() *FloatVerifier[T] {
	return v.report(v.vn.value > 0, KeyPositive)
}

// Negative checks that the value is less than zero
func (v *FloatVerifier[T]) Negative() *FloatVerifier[T] {
	return v.report(v.vn.value < 0, KeyNegative)
}

// Zero checks that the value is positive or negative zero
func (v *FloatVerifier[T]) Zero() *FloatVerifier[T] {
	return v.report(v.vn.value == 0, KeyZero)
}

// One checks that the value is one
func (v *FloatVerifier[T]) One() *FloatVerifier[T] {
	return v.report(v.vn.value == 1, KeyOne)
}

// NaN checks that the value is not a number
func (v *FloatVerifier[T]) NaN() *FloatVerifier[T] {
	return v.report(math.IsNaN(float64(v.vn.value)), KeyNaN)
}

// Infinite checks that the value is positive or negative infinity
func (v *FloatVerifier[T]) Infinite() *FloatVerifier[T] {
	return v.report(math.IsInf(float64(v.vn.value), 0), KeyInfinite)
}

// Whole checks that the value is finite and has no fractional part
func (v *FloatVerifier[T]) Whole() *FloatVerifier[T] {
	f := float64(v.vn.value)
	whole := !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
	return v.report(whole, KeyWhole)
}
