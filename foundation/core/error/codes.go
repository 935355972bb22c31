// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across galleon. Parser codes
//              classify the two aggregate parse failures, the remaining codes
//              cover configuration, output and internal failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Added length parser codes, dropped service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Length parser
	CodeUnevenTokens     Code = "UNEVEN_TOKENS"
	CodeMixedUnitSystems Code = "MIXED_UNIT_SYSTEMS"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation and output
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeOutputFailed     Code = "OUTPUT_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnevenTokens, CodeMixedUnitSystems:
		return "parse"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeInvalidInput:
		return "validation"
	case CodeOutputFailed:
		return "output"
	default:
		return "generic"
	}
}
