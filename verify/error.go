// File: error.go
// Title: Error Verifier
// Description: Verifier for errors. Chain checks follow both single and joined
//              wrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"errors"
	"reflect"
	"strings"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/format"
)

// ErrorVerifier verifies errors
type ErrorVerifier struct {
	Base[error, *ErrorVerifier]
}

func newError(vn *Verification[error]) *ErrorVerifier {
	v := &ErrorVerifier{}
	v.Init(vn, v)
	return v
}

// Message checks that the error message is msg
func (v *ErrorVerifier) Message(msg string) *ErrorVerifier {
	err := v.vn.value
	return v.report(err != nil && err.Error() == msg, KeyErrorMessage, msg)
}

// MessageContain checks that the error message contains substr
func (v *ErrorVerifier) MessageContain(substr string) *ErrorVerifier {
	err := v.vn.value
	return v.report(err != nil && strings.Contains(err.Error(), substr), KeyErrorMessageContain, substr)
}

// CausedBy checks that target is in the error chain
func (v *ErrorVerifier) CausedBy(target error) *ErrorVerifier {
	return v.report(v.vn.value != nil && errors.Is(v.vn.value, target), KeyCausedBy, target)
}

// CausedByType checks that an error of type t is in the error chain
func (v *ErrorVerifier) CausedByType(t reflect.Type) *ErrorVerifier {
	return v.report(causedByType(v.vn.value, t), KeyCausedByType, t)
}

// Coded checks that an error in the chain carries code
func (v *ErrorVerifier) Coded(code mdwerror.Code) *ErrorVerifier {
	return v.report(mdwerror.HasCode(v.vn.value, code), KeyCoded, format.Text(code.String()))
}

// Wrapped checks that the error wraps at least one other error
func (v *ErrorVerifier) Wrapped() *ErrorVerifier {
	return v.report(len(unwrap(v.vn.value)) > 0, KeyWrapped)
}

func causedByType(err error, t reflect.Type) bool {
	if err == nil || t == nil {
		return false
	}
	if reflect.TypeOf(err).AssignableTo(t) {
		return true
	}
	for _, inner := range unwrap(err) {
		if causedByType(inner, t) {
			return true
		}
	}
	return false
}

func unwrap(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			return []error{inner}
		}
	case interface{ Unwrap() []error }:
		return e.Unwrap()
	}
	return nil
}
