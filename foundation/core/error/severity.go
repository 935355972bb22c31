// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level of an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.2.0: Code mapping for parser and config codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers rejected user input such as an unparseable measurement
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh covers failures that stop a command, e.g. a broken config file
	SeverityHigh

	// SeverityCritical means the program cannot continue
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

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig, CodeOutputFailed:
		return SeverityHigh

	case CodeUnevenTokens, CodeMixedUnitSystems, CodeInvalidInput,
		CodeInvalidFormat, CodeValidationFailed,
		CodeMissingConfig, CodeCanceled:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
