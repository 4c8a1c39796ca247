// File: validation_test.go
// Title: Validation Framework Tests
// Description: Tests for results, chains, conditional and parallel validators.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Parallel ordering and cancellation tests

package validation

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/verifier/core/error"
)

func notEmpty(field string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		if s, _ := value.(string); s == "" {
			return NewValidationErrorWithField(CodeRequired, field, field+" is required", value)
		}
		return NewValidationResult()
	}
}

func maxLen(field string, n int) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		if s, _ := value.(string); len(s) > n {
			return NewValidationErrorWithField(CodeLength, field, field+" is too long", value)
		}
		return NewValidationResult()
	}
}

func TestValidationResult(t *testing.T) {
	r := NewValidationResult()
	assert.True(t, r.Valid)
	assert.Nil(t, r.FirstError())
	assert.NoError(t, r.ToError())
	assert.Equal(t, "ValidationResult{valid: true}", r.String())

	r.AddError(CodeFormat, "bad format").AddFieldError(CodeRange, "age", "out of range", 200)
	assert.False(t, r.Valid)
	assert.Equal(t, []string{CodeFormat, CodeRange}, r.ErrorCodes())
	assert.Equal(t, []string{"bad format", "out of range"}, r.ErrorMessages())
	assert.True(t, r.HasError(CodeRange))
	assert.False(t, r.HasError(CodeLocale))
	assert.Equal(t, "bad format", r.FirstError().Message)
	assert.Equal(t, "ValidationResult{valid: false, errors: 2, first: bad format}", r.String())
}

func TestValidationResult_ToError(t *testing.T) {
	r := NewValidationErrorWithField(CodeRequired, "name", "name is required", "")
	r.AddFieldError(CodeLength, "name", "name is too long", "x")

	err := r.ToError()
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))

	e, ok := mdwerror.As(err)
	require.True(t, ok)
	assert.Equal(t, "name is required", e.Message())
	field, _ := e.Detail("field")
	assert.Equal(t, "name", field)
	code, _ := e.Detail("validation_code")
	assert.Equal(t, CodeRequired, code)
	total, _ := e.Detail("totalErrors")
	assert.Equal(t, 2, total)

	empty := ValidationResult{Valid: false}
	assert.EqualError(t, empty.ToError(), "validation failed")
}

func TestValidationError_String(t *testing.T) {
	e := ValidationError{Code: CodeRange, Field: "age", Message: "too old", Value: 200, Expected: "<150"}
	assert.Equal(t, "ValidationError{field:age, code:VALIDATION_RANGE, message:too old, value:200, expected:<150}", e.String())
}

func TestValidatorFunc_Context(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	result := notEmpty("name").ValidateWithContext(ctx, "x")
	assert.True(t, result.Valid)
	assert.Equal(t, "req-1", result.Context["requestId"])
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain("name").
		AddFunc(notEmpty("name")).
		Add(maxLen("name", 3))

	assert.Equal(t, 2, chain.Length())
	assert.Equal(t, "name", chain.Name())

	t.Run("valid", func(t *testing.T) {
		result := chain.Validate("abc")
		assert.True(t, result.Valid)
		assert.Equal(t, 2, result.Context["executedValidators"])
	})

	t.Run("collects errors", func(t *testing.T) {
		result := NewValidatorChain().
			AddFunc(maxLen("a", 1)).
			AddFunc(maxLen("b", 2)).
			Validate("abcd")
		assert.Equal(t, []string{CodeLength, CodeLength}, result.ErrorCodes())
	})

	t.Run("stop on first error", func(t *testing.T) {
		result := NewValidatorChain().
			AddFunc(maxLen("a", 1)).
			AddFunc(maxLen("b", 2)).
			StopOnFirstError(true).
			Validate("abcd")
		assert.Len(t, result.Errors, 1)
		assert.Equal(t, 1, result.Context["executedValidators"])
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result := chain.ValidateWithContext(ctx, "abc")
		assert.False(t, result.Valid)
		assert.Equal(t, 0, result.Context["executedValidators"])
	})

	assert.True(t, strings.HasPrefix(chain.String(), "ValidatorChain{name: name"))
}

func TestConditionalValidator(t *testing.T) {
	onlyStrings := NewConditionalValidator(func(v interface{}) bool {
		_, ok := v.(string)
		return ok
	}, notEmpty("value"), "strings")

	result := onlyStrings.Validate(42)
	assert.True(t, result.Valid)
	assert.Equal(t, false, result.Context["conditionMet"])

	result = onlyStrings.Validate("")
	assert.False(t, result.Valid)
	assert.Equal(t, true, result.Context["conditionMet"])
}

func TestParallelValidator(t *testing.T) {
	var running, peak int32
	slow := func(code string) ValidatorFunc {
		return func(value interface{}) ValidationResult {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return NewValidationError(code, code)
		}
	}

	p := NewParallelValidator("group").
		Add(slow("A")).
		Add(slow("B")).
		Add(slow("C")).
		Add(slow("D")).
		WithLimit(2)

	result := p.Validate("x")
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"A", "B", "C", "D"}, result.ErrorCodes(), "errors keep insertion order")
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	assert.Equal(t, "group", result.Context["parallelValidator"])

	assert.True(t, NewParallelValidator().Validate(nil).Valid)
	assert.Equal(t, "ParallelValidator{name: group, validators: 4}", p.String())
}

func TestCombine(t *testing.T) {
	a := NewValidationResult()
	a.WithContext("a", 1)
	b := NewValidationError(CodeCustom, "b failed")

	combined := Combine(a, b)
	assert.False(t, combined.Valid)
	assert.Len(t, combined.Errors, 1)
	assert.Equal(t, 1, combined.Context["a"])
}
