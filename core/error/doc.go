// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the structured error type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

/*
Package error provides the structured error type used across the verifier packages.

Every error carries a Code, a Severity derived from the code, free-form details and the
operation that produced it. Errors built from localized messages also keep the message key
and the arguments, so a failure rendered in one locale can be rendered again in another.

Basic usage:

	err := mdwerror.New("pattern has an unmatched brace").
		WithCode(mdwerror.CodeInvalidPattern).
		WithOperation("format.Compile").
		WithDetail("position", 12)

	if mdwerror.HasCode(err, mdwerror.CodeInvalidPattern) {
		// handle
	}

Lookups (As, HasCode, GetCode, GetSeverity) walk the wrap chain, so errors wrapped with
fmt.Errorf("...: %w", err) are still recognised.
*/
package error
