// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. A failed verification is an
//              expected outcome for the caller and ranks low, while broken bundles
//              or patterns point at a packaging problem and rank higher.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected failure such as a rejected value
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a broken setup, e.g. unreadable bundles
	SeverityHigh

	// SeverityCritical indicates the library cannot operate at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeBundleLoad, CodeInvalidConfig, CodeConfigError:
		return SeverityHigh
	case CodeInvalidPattern, CodeMissingMessage, CodeInvalidOperation:
		return SeverityMedium
	case CodeVerificationFailed, CodeValidationFailed, CodeInvalidInput,
		CodeNotFound, CodeInvalidLocale:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
