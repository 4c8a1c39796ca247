// File: slice.go
// Title: Collection Verifiers
// Description: Verifiers for slices and maps. Elements are compared with the
//              same equality as EqualTo.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

// SliceVerifier verifies slices
type SliceVerifier[E any] struct {
	Base[[]E, *SliceVerifier[E]]
}

func newSlice[E any](vn *Verification[[]E]) *SliceVerifier[E] {
	v := &SliceVerifier[E]{}
	v.Init(vn, v)
	return v
}

func (v *SliceVerifier[E]) has(x E) bool {
	for _, e := range v.vn.value {
		if equalValues(e, x) {
			return true
		}
	}
	return false
}

// Contain checks that the slice contains x
func (v *SliceVerifier[E]) Contain(x E) *SliceVerifier[E] {
	return v.report(v.has(x), KeyElement, x)
}

// ContainAll checks that the slice contains every one of xs
func (v *SliceVerifier[E]) ContainAll(xs ...E) *SliceVerifier[E] {
	return v.report(all(xs, v.has), KeyAllElements, xs)
}

// ContainAny checks that the slice contains one of xs
func (v *SliceVerifier[E]) ContainAny(xs ...E) *SliceVerifier[E] {
	return v.report(anyOf(xs, v.has), KeyAnyElement, xs)
}

// Empty checks that the slice has no elements. A nil slice is empty.
func (v *SliceVerifier[E]) Empty() *SliceVerifier[E] {
	return v.report(len(v.vn.value) == 0, KeyCollectionEmpty)
}

// SizeOf checks that the slice has n elements
func (v *SliceVerifier[E]) SizeOf(n int) *SliceVerifier[E] {
	return v.report(len(v.vn.value) == n, KeySize, n)
}

// MapVerifier verifies maps
type MapVerifier[K comparable, V any] struct {
	Base[map[K]V, *MapVerifier[K, V]]
}

func newMap[K comparable, V any](vn *Verification[map[K]V]) *MapVerifier[K, V] {
	v := &MapVerifier[K, V]{}
	v.Init(vn, v)
	return v
}

func (v *MapVerifier[K, V]) hasKey(k K) bool {
	_, ok := v.vn.value[k]
	return ok
}

func (v *MapVerifier[K, V]) hasValue(x V) bool {
	for _, e := range v.vn.value {
		if equalValues(e, x) {
			return true
		}
	}
	return false
}

// ContainKey checks that the map has key k
func (v *MapVerifier[K, V]) ContainKey(k K) *MapVerifier[K, V] {
	return v.report(v.hasKey(k), KeyContainKey, k)
}

// ContainAllKeys checks that the map has every one of keys
func (v *MapVerifier[K, V]) ContainAllKeys(keys ...K) *MapVerifier[K, V] {
	return v.report(all(keys, v.hasKey), KeyContainAllKeys, keys)
}

// ContainAnyKey checks that the map has one of keys
func (v *MapVerifier[K, V]) ContainAnyKey(keys ...K) *MapVerifier[K, V] {
	return v.report(anyOf(keys, v.hasKey), KeyContainAnyKey, keys)
}

// ContainValue checks that the map has the value x
func (v *MapVerifier[K, V]) ContainValue(x V) *MapVerifier[K, V] {
	return v.report(v.hasValue(x), KeyContainValue, x)
}

// ContainAllValues checks that the map has every one of values
func (v *MapVerifier[K, V]) ContainAllValues(values ...V) *MapVerifier[K, V] {
	return v.report(all(values, v.hasValue), KeyContainAllValues, values)
}

// ContainAnyValue checks that the map has one of values
func (v *MapVerifier[K, V]) ContainAnyValue(values ...V) *MapVerifier[K, V] {
	return v.report(anyOf(values, v.hasValue), KeyContainAnyValue, values)
}

// Empty checks that the map has no entries
func (v *MapVerifier[K, V]) Empty() *MapVerifier[K, V] {
	return v.report(len(v.vn.value) == 0, KeyCollectionEmpty)
}

// SizeOf checks that the map has n entries
func (v *MapVerifier[K, V]) SizeOf(n int) *MapVerifier[K, V] {
	return v.report(len(v.vn.value) == n, KeySize, n)
}
