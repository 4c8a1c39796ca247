// File: verification.go
// Title: Verification State Machine
// Description: Verification holds the state of one verification chain: the
//              value under test, its name, the pending negation and the first
//              failure. Report and Check are the two primitives every check is
//              built on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/format"
	"github.com/msto63/verifier/core/log"
)

// Context is the read-only view of a verification handed to message sources
type Context interface {
	// Name returns the name of the value, empty if none was given
	Name() string
	// Negated reports whether the check being reported was negated
	Negated() bool
	// Locale returns the locale messages are rendered in
	Locale() language.Tag
	// Subject returns the value under verification as it should be displayed
	Subject() any
}

// Verification is the context of a single verification chain. It is not safe
// for concurrent use.
type Verification[T any] struct {
	verifier *Verifier
	value    T
	name     string
	negated  bool
	err      error
	display  func(T) any
}

// NewVerification starts a verification of value on vf. A nil vf uses Default.
func NewVerification[T any](vf *Verifier, value T, name ...string) *Verification[T] {
	if vf == nil {
		vf = Default()
	}
	vn := &Verification[T]{verifier: vf, value: value}
	if len(name) > 0 {
		vn.name = name[0]
	}
	return vn
}

// SetDisplay sets how the value is shown in messages and error details
func (vn *Verification[T]) SetDisplay(fn func(T) any) {
	vn.display = fn
}

// Value returns the value under verification
func (vn *Verification[T]) Value() T {
	return vn.value
}

// Name returns the name of the value
func (vn *Verification[T]) Name() string {
	return vn.name
}

// Negated reports whether the next check is negated
func (vn *Verification[T]) Negated() bool {
	return vn.negated
}

// SetNegated sets the negation of the next check
func (vn *Verification[T]) SetNegated(negated bool) {
	vn.negated = negated
}

// Locale returns the locale of the owning verifier
func (vn *Verification[T]) Locale() language.Tag {
	return vn.verifier.locale
}

// Subject returns the value as displayed in messages
func (vn *Verification[T]) Subject() any {
	if vn.display != nil {
		return vn.display(vn.value)
	}
	return vn.value
}

// Verifier returns the owning verifier
func (vn *Verification[T]) Verifier() *Verifier {
	return vn.verifier
}

// Failed reports whether a check of the chain has failed
func (vn *Verification[T]) Failed() bool {
	return vn.err != nil
}

// Err returns the first failure of the chain or nil
func (vn *Verification[T]) Err() error {
	return vn.err
}

// Report records the outcome of a check whose message is looked up by key.
// The check passes when result differs from the pending negation. The
// negation is cleared either way.
func (vn *Verification[T]) Report(result bool, key MessageKey, args ...any) {
	if vn.settle(result) {
		return
	}
	detail := vn.verifier.source.Message(vn, key, args...)
	vn.fail(string(key), detail, args, nil)
}

// Check records the outcome of a check whose message is rendered from a
// caller supplied pattern
func (vn *Verification[T]) Check(result bool, pattern string, args ...any) {
	if vn.settle(result) {
		return
	}
	detail := vn.verifier.source.Format(vn, pattern, args...)
	vn.fail(string(KeyCheck), detail, args, map[string]interface{}{"pattern": pattern})
}

// Abort records err as the failure of the chain regardless of negation. It
// is used for checks that cannot be evaluated, such as an invalid regular
// expression.
func (vn *Verification[T]) Abort(err error) {
	vn.negated = false
	if vn.err != nil || err == nil {
		return
	}
	vn.err = err
	vn.verifier.logger.Debug("verification aborted", log.Fields{"name": vn.name, "error": err.Error()})
	if vn.verifier.panicOnFailure {
		panic(err)
	}
}

// settle reports whether the check needs no further handling. The negation
// stays set while a failure message is rendered so that sources can read it.
func (vn *Verification[T]) settle(result bool) bool {
	if vn.err != nil || result != vn.negated {
		vn.negated = false
		return true
	}
	return false
}

// fail renders the full failure message and stores the error
func (vn *Verification[T]) fail(key, detail string, args []any, extra map[string]interface{}) {
	negated := vn.negated
	src := vn.verifier.source

	name := vn.name
	if name == "" {
		name = vn.verifier.defaultName
	}
	if name == "" {
		name = src.Message(vn, KeyDefaultName)
	}

	template := KeyMust
	if negated {
		template = KeyMustNot
	}
	message := src.Message(vn, template, format.Text(name), format.Text(detail))
	vn.negated = false

	err := mdwerror.New(message).
		WithCode(mdwerror.CodeVerificationFailed).
		WithOperation("verify."+key).
		WithDetail("name", vn.name).
		WithDetail("negated", negated).
		WithDetail("value", vn.Subject()).
		WithDetail("locale", vn.Locale().String()).
		WithDetails(extra).
		WithMessage(key, args...)
	vn.err = err

	vn.verifier.logger.Debug("verification failed", log.Fields{
		"key":     key,
		"name":    vn.name,
		"negated": negated,
		"locale":  vn.Locale().String(),
	})

	if vn.verifier.panicOnFailure {
		panic(err)
	}
}
