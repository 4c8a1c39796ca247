// File: base.go
// Title: Common Verifier Operations
// Description: Base implements the checks every verifier offers. It is
//              embedded into the typed verifiers with the concrete verifier
//              type as S so that every check returns the verifier it was
//              called on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"reflect"
)

// Base holds the verification of a typed verifier
type Base[T any, S any] struct {
	vn    *Verification[T]
	self  S
	equal func(a, b T) bool
}

// Init binds b to vn. self is the verifier embedding b.
func (b *Base[T, S]) Init(vn *Verification[T], self S) {
	b.vn = vn
	b.self = self
	if b.equal == nil {
		b.equal = equalValues[T]
	}
}

// SetEqual replaces the equality used by EqualTo and EqualToAny
func (b *Base[T, S]) SetEqual(fn func(a, b T) bool) {
	b.equal = fn
}

// equalValues uses an Equal method of T when there is one
func equalValues[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// show returns x as displayed in messages
func (b *Base[T, S]) show(x T) any {
	if b.vn.display != nil {
		return b.vn.display(x)
	}
	return x
}

func (b *Base[T, S]) showAll(xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = b.show(x)
	}
	return out
}

// report is Report returning the verifier
func (b *Base[T, S]) report(result bool, key MessageKey, args ...any) S {
	b.vn.Report(result, key, args...)
	return b.self
}

// And returns the verifier. It only makes chains read better.
func (b *Base[T, S]) And() S {
	return b.self
}

// Not negates the next check
func (b *Base[T, S]) Not() S {
	b.vn.SetNegated(!b.vn.Negated())
	return b.self
}

// EqualTo checks that the value equals other
func (b *Base[T, S]) EqualTo(other T) S {
	return b.report(b.equal(b.vn.value, other), KeyEqualTo, b.show(other))
}

// EqualToAny checks that the value equals one of others
func (b *Base[T, S]) EqualToAny(others ...T) S {
	found := false
	for _, other := range others {
		if b.equal(b.vn.value, other) {
			found = true
			break
		}
	}
	return b.report(found, KeyEqualToAny, b.showAll(others))
}

// Nil checks that the value is nil
func (b *Base[T, S]) Nil() S {
	return b.report(isNil(any(b.vn.value)), KeyNil)
}

// Zero checks that the value is the zero value of its type
func (b *Base[T, S]) Zero() S {
	rv := reflect.ValueOf(any(b.vn.value))
	return b.report(!rv.IsValid() || rv.IsZero(), KeyZero)
}

// SameAs checks that the value is identical to other. References compare
// by address, everything else by value.
func (b *Base[T, S]) SameAs(other T) S {
	return b.report(same(any(b.vn.value), any(other)), KeySameAs, b.show(other))
}

// SameAsAny checks that the value is identical to one of others
func (b *Base[T, S]) SameAsAny(others ...T) S {
	found := false
	for _, other := range others {
		if same(any(b.vn.value), any(other)) {
			found = true
			break
		}
	}
	return b.report(found, KeySameAsAny, b.showAll(others))
}

// InstanceOf checks that the dynamic type of the value is assignable to t
func (b *Base[T, S]) InstanceOf(t reflect.Type) S {
	return b.report(instanceOf(any(b.vn.value), t), KeyInstanceOf, t)
}

// InstanceOfAll checks that the value is an instance of every type in types
func (b *Base[T, S]) InstanceOfAll(types ...reflect.Type) S {
	ok := true
	for _, t := range types {
		if !instanceOf(any(b.vn.value), t) {
			ok = false
			break
		}
	}
	return b.report(ok, KeyInstanceOfAll, types)
}

// InstanceOfAny checks that the value is an instance of one type in types
func (b *Base[T, S]) InstanceOfAny(types ...reflect.Type) S {
	ok := false
	for _, t := range types {
		if instanceOf(any(b.vn.value), t) {
			ok = true
			break
		}
	}
	return b.report(ok, KeyInstanceOfAny, types)
}

// That checks that fn holds for the value
func (b *Base[T, S]) That(fn func(T) bool) S {
	return b.report(fn(b.vn.value), KeyThat)
}

// ThatWith checks that fn holds for the value and describes a failure with
// pattern
func (b *Base[T, S]) ThatWith(fn func(T) bool, pattern string, args ...any) S {
	b.vn.Check(fn(b.vn.value), pattern, args...)
	return b.self
}

// ThatKey checks that fn holds for the value and describes a failure with the
// message stored under key
func (b *Base[T, S]) ThatKey(fn func(T) bool, key MessageKey, args ...any) S {
	return b.report(fn(b.vn.value), key, args...)
}

// Value returns the value under verification
func (b *Base[T, S]) Value() T {
	return b.vn.value
}

// Err returns the first failure or nil
func (b *Base[T, S]) Err() error {
	return b.vn.err
}

// Must returns the value and panics with the failure if a check failed
func (b *Base[T, S]) Must() T {
	if b.vn.err != nil {
		panic(b.vn.err)
	}
	return b.vn.value
}

// Verification returns the underlying verification
func (b *Base[T, S]) Verification() *Verification[T] {
	return b.vn
}

// TypeOf returns the reflect.Type of X, which may be an interface type
func TypeOf[X any]() reflect.Type {
	return reflect.TypeOf((*X)(nil)).Elem()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	if ra.Type().Comparable() {
		return safeEqual(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// safeEqual compares with == and treats a runtime panic from an incomparable
// field as inequality
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func instanceOf(v any, t reflect.Type) bool {
	if v == nil || t == nil {
		return false
	}
	return reflect.TypeOf(v).AssignableTo(t)
}
