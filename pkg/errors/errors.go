// Package errors provides structured error types for the Electric Slide engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Scale definition validation failures
//   - UNKNOWN_*: Catalog or rule lookups that found nothing
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRange, "begin equals end: %g", begin)
//	if errors.Is(err, errors.ErrCodeInvalidRange) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStore, origErr, "save definition %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Scale definition validation errors
	ErrCodeInvalidRange           Code = "INVALID_RANGE"
	ErrCodeInvalidFunction        Code = "INVALID_FUNCTION"
	ErrCodeEmptySubsections       Code = "EMPTY_SUBSECTIONS"
	ErrCodeOverlappingSubsections Code = "OVERLAPPING_SUBSECTIONS"
	ErrCodeRoundTrip              Code = "ROUND_TRIP"
	ErrCodeInvalidLayout          Code = "INVALID_LAYOUT"
	ErrCodeIncompleteDefinition   Code = "INCOMPLETE_DEFINITION"

	// Lookup errors
	ErrCodeUnknownScale     Code = "UNKNOWN_SCALE"
	ErrCodeUnknownAssembly  Code = "UNKNOWN_ASSEMBLY"
	ErrCodeUnknownAlgorithm Code = "UNKNOWN_ALGORITHM"

	// Rule definition parsing errors
	ErrCodeInvalidRule Code = "INVALID_RULE"

	// Input/output errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeStore         Code = "STORE_ERROR"
	ErrCodeCache         Code = "CACHE_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
