// File: type.go
// Title: Type Verifier
// Description: Verifier for reflect.Type values. Every check fails for a nil
//              type.
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

	"github.com/msto63/verifier/core/format"
)

// TypeVerifier verifies types
type TypeVerifier struct {
	Base[reflect.Type, *TypeVerifier]
}

func newType(vn *Verification[reflect.Type]) *TypeVerifier {
	v := &TypeVerifier{}
	v.Init(vn, v)
	v.SetEqual(func(a, b reflect.Type) bool { return a == b })
	return v
}

// AssignableTo checks that values of the type are assignable to u
func (v *TypeVerifier) AssignableTo(u reflect.Type) *TypeVerifier {
	t := v.vn.value
	return v.report(t != nil && u != nil && t.AssignableTo(u), KeyAssignableTo, u)
}

// AssignableFrom checks that values of u are assignable to the type
func (v *TypeVerifier) AssignableFrom(u reflect.Type) *TypeVerifier {
	t := v.vn.value
	return v.report(t != nil && u != nil && u.AssignableTo(t), KeyAssignableFrom, u)
}

// Implements checks that the type implements the interface iface
func (v *TypeVerifier) Implements(iface reflect.Type) *TypeVerifier {
	t := v.vn.value
	ok := t != nil && iface != nil && iface.Kind() == reflect.Interface && t.Implements(iface)
	return v.report(ok, KeyImplements, iface)
}

// Kind checks that the type is of kind k
func (v *TypeVerifier) Kind(k reflect.Kind) *TypeVerifier {
	return v.report(v.is(k), KeyKind, format.Text(k.String()))
}

// Pointer checks that the type is a pointer type
func (v *TypeVerifier) Pointer() *TypeVerifier {
	return v.report(v.is(reflect.Pointer), KeyPointerType)
}

// Slice checks that the type is a slice type
func (v *TypeVerifier) Slice() *TypeVerifier {
	return v.report(v.is(reflect.Slice), KeySliceType)
}

// Array checks that the type is an array type
func (v *TypeVerifier) Array() *TypeVerifier {
	return v.report(v.is(reflect.Array), KeyArrayType)
}

// Map checks that the type is a map type
func (v *TypeVerifier) Map() *TypeVerifier {
	return v.report(v.is(reflect.Map), KeyMapType)
}

// Struct checks that the type is a struct type
func (v *TypeVerifier) Struct() *TypeVerifier {
	return v.report(v.is(reflect.Struct), KeyStructType)
}

// Interface checks that the type is an interface type
func (v *TypeVerifier) Interface() *TypeVerifier {
	return v.report(v.is(reflect.Interface), KeyInterfaceType)
}

// Func checks that the type is a function type
func (v *TypeVerifier) Func() *TypeVerifier {
	return v.report(v.is(reflect.Func), KeyFuncType)
}

// Chan checks that the type is a channel type
func (v *TypeVerifier) Chan() *TypeVerifier {
	return v.report(v.is(reflect.Chan), KeyChanType)
}

// Numeric checks that the type is an integer, floating point or complex type
func (v *TypeVerifier) Numeric() *TypeVerifier {
	t := v.vn.value
	ok := t != nil && t.Kind() >= reflect.Int && t.Kind() <= reflect.Complex128
	return v.report(ok, KeyNumericType)
}

// Named checks that the type has a name
func (v *TypeVerifier) Named() *TypeVerifier {
	t := v.vn.value
	return v.report(t != nil && t.Name() != "", KeyNamedType)
}

func (v *TypeVerifier) is(k reflect.Kind) bool {
	return v.vn.value != nil && v.vn.value.Kind() == k
}
