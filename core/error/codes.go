// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the verifier packages. Codes allow
//              callers to tell verification failures apart from configuration,
//              bundle and pattern problems without parsing messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial code set for verification and message handling

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Verification
	CodeVerificationFailed Code = "VERIFICATION_FAILED"
	CodeValidationFailed   Code = "VALIDATION_FAILED"

	// Messages and localization
	CodeInvalidPattern Code = "INVALID_PATTERN"
	CodeMissingMessage Code = "MISSING_MESSAGE"
	CodeBundleLoad     Code = "BUNDLE_LOAD"
	CodeInvalidLocale  Code = "INVALID_LOCALE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidOperation,
		CodeVerificationFailed, CodeValidationFailed,
		CodeInvalidPattern, CodeMissingMessage, CodeBundleLoad, CodeInvalidLocale,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeVerificationFailed, CodeValidationFailed:
		return "verification"
	case CodeInvalidPattern, CodeMissingMessage, CodeBundleLoad, CodeInvalidLocale:
		return "messages"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
