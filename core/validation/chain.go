// File: chain.go
// Title: Validator Chain Implementation
// Description: Composable validators: sequential chains, conditional
//              validators and a parallel group running on errgroup.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial validator chain implementation
// - 2026-10-14 v0.2.0: Parallel validation on errgroup with ordered results

package validation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ValidatorChain represents a chain of validators that can be executed sequentially
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}
	return &ValidatorChain{name: chainName}
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	return c.Add(fn)
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default, chains collect all validation errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns combined results
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes all validators with context support. A
// cancelled context stops the chain before the next validator.
func (c *ValidatorChain) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	var results []ValidationResult
	executed := 0

	for _, validator := range c.validators {
		if ctx.Err() != nil {
			results = append(results, NewValidationError(CodeCustom, ctx.Err().Error()))
			break
		}

		result := validator.ValidateWithContext(ctx, value)
		results = append(results, result)
		executed++

		if c.stopOnFirstError && !result.Valid {
			break
		}
	}

	combined := Combine(results...)
	if c.name != "" {
		combined.WithContext("validatorChain", c.name)
	}
	combined.WithContext("totalValidators", len(c.validators))
	combined.WithContext("executedValidators", executed)

	return combined
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}

// ConditionalValidator allows conditional execution of validators based on a predicate
type ConditionalValidator struct {
	condition func(interface{}) bool
	validator Validator
	name      string
}

// NewConditionalValidator creates a validator that only executes if the condition is true
func NewConditionalValidator(condition func(interface{}) bool, validator Validator, name ...string) *ConditionalValidator {
	condName := ""
	if len(name) > 0 {
		condName = name[0]
	}
	return &ConditionalValidator{condition: condition, validator: validator, name: condName}
}

// Validate executes the validator only if the condition is met
func (c *ConditionalValidator) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes conditional validation with context
func (c *ConditionalValidator) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if !c.condition(value) {
		result := NewValidationResult()
		result.WithContext("conditionMet", false)
		return result
	}

	result := c.validator.ValidateWithContext(ctx, value)
	result.WithContext("conditionMet", true)
	return result
}

// ParallelValidator executes multiple validators concurrently
type ParallelValidator struct {
	validators []Validator
	name       string
	limit      int
}

// NewParallelValidator creates a validator that executes validators in parallel
func NewParallelValidator(name ...string) *ParallelValidator {
	validatorName := ""
	if len(name) > 0 {
		validatorName = name[0]
	}
	return &ParallelValidator{name: validatorName}
}

// Add adds a validator to the parallel execution group
func (p *ParallelValidator) Add(validator Validator) *ParallelValidator {
	p.validators = append(p.validators, validator)
	return p
}

// WithLimit bounds the number of validators running at once; zero is unbounded
func (p *ParallelValidator) WithLimit(n int) *ParallelValidator {
	p.limit = n
	return p
}

// Validate executes all validators in parallel
func (p *ParallelValidator) Validate(value interface{}) ValidationResult {
	return p.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes validators in parallel. Errors keep the order
// in which the validators were added.
func (p *ParallelValidator) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if len(p.validators) == 0 {
		return NewValidationResult()
	}

	results := make([]ValidationResult, len(p.validators))
	g, gctx := errgroup.WithContext(ctx)
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}

	for i, validator := range p.validators {
		g.Go(func() error {
			results[i] = validator.ValidateWithContext(gctx, value)
			return nil
		})
	}
	_ = g.Wait()

	combined := Combine(results...)
	if p.name != "" {
		combined.WithContext("parallelValidator", p.name)
	}
	combined.WithContext("totalValidators", len(p.validators))

	return combined
}

// String returns a string representation of the parallel validator
func (p *ParallelValidator) String() string {
	name := p.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ParallelValidator{name: %s, validators: %d}", name, len(p.validators))
}
