// File: doc.go
// Title: Validation Package Documentation
// Description: Package validation provides structured, collecting validation
//              results and composable validators.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial validation interfaces implementation
// - 2026-10-14 v0.2.0: Parallel validation on errgroup

/*
Package validation provides validation results that collect every failure.

Where a verification chain stops at its first failing check, a Validator
returns a ValidationResult holding all errors. Verification chains are turned
into validators with verify.ValidatorFor.

	chain := validation.NewValidatorChain("user").
		Add(verify.ValidatorFor(v, "name", func(vf *verify.Verifier, s string) error {
			return vf.String(s, "name").Not().Blank().Err()
		})).
		Add(verify.ValidatorFor(v, "email", func(vf *verify.Verifier, s string) error {
			return vf.String(s, "email").Email().Err()
		}))

	result := chain.Validate(input)
	if err := result.ToError(); err != nil {
		return err
	}

ParallelValidator runs its validators on an errgroup and keeps the order of
the reported errors stable.
*/
package validation
