// File: soft.go
// Title: Soft Verification
// Description: Adapters from verification chains to the validation package.
//              A failing chain becomes a ValidationError instead of ending the
//              caller, so several values can be checked and reported at once.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Reject nil for value types

package verify

import (
	"fmt"
	"reflect"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/validation"
)

// IsFailure reports whether err is or wraps a failed check
func IsFailure(err error) bool {
	e, ok := mdwerror.As(err)
	return ok && e.Code() == mdwerror.CodeVerificationFailed
}

// ValidatorFor adapts a verification chain to a validation.Validator. fn
// receives vf and the value and returns the error of its chain. A nil vf uses
// Default.
func ValidatorFor[T any](vf *Verifier, name string, fn func(vf *Verifier, value T) error) validation.Validator {
	return validation.ValidatorFunc(func(value interface{}) validation.ValidationResult {
		v := vf
		if v == nil {
			v = Default()
		}
		typed, ok := value.(T)
		if !ok && (value != nil || !nilable(TypeOf[T]())) {
			return validation.NewValidationErrorWithField(validation.CodeType, name,
				fmt.Sprintf("expected %v, got %T", TypeOf[T](), value), value)
		}
		result := Result(fn(v, typed))
		for i := range result.Errors {
			if result.Errors[i].Field == "" {
				result.Errors[i].Field = name
			}
		}
		return result
	})
}

// nilable reports whether a nil interface value can stand for t
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// Result collects errs into a validation result. Nil errors are skipped.
// Failed checks keep their name, value and message key.
func Result(errs ...error) validation.ValidationResult {
	result := validation.NewValidationResult()
	for _, err := range errs {
		if err == nil {
			continue
		}
		result.Valid = false
		result.Errors = append(result.Errors, toValidationError(err))
	}
	return result
}

func toValidationError(err error) validation.ValidationError {
	e, ok := mdwerror.As(err)
	if !ok {
		return validation.ValidationError{Code: validation.CodeCustom, Message: err.Error()}
	}

	ve := validation.ValidationError{Message: e.Error(), Context: map[string]interface{}{}}
	switch e.Code() {
	case mdwerror.CodeVerificationFailed:
		ve.Code = validation.CodeVerification
	case mdwerror.CodeInvalidPattern:
		ve.Code = validation.CodePattern
	default:
		ve.Code = validation.CodeCustom
	}

	if name, ok := e.Detail("name"); ok {
		ve.Field, _ = name.(string)
	}
	if value, ok := e.Detail("value"); ok {
		ve.Value = value
	}
	if negated, ok := e.Detail("negated"); ok {
		ve.Context["negated"] = negated
	}
	if key := e.MessageKey(); key != "" {
		ve.Context["message_key"] = key
	}
	if op := e.Operation(); op != "" {
		ve.Context["operation"] = op
	}
	return ve
}
