/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured errors with stable codes shared by the
// library, the CLI and the API server.
//
// Validation failures are results, not errors. A StructuredError always means
// the caller asked for something that cannot be evaluated, such as an unknown
// operator or an unreadable rule set.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a class of failure.
type ErrorCode string

const (
	ErrCodeInvalidRequest       ErrorCode = "INVALID_REQUEST"
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"
	ErrCodeUnauthorized         ErrorCode = "UNAUTHORIZED"
	ErrCodeNotFound             ErrorCode = "NOT_FOUND"
	ErrCodeMethodNotAllowed     ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimitExceeded    ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeUnavailable          ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout              ErrorCode = "TIMEOUT"
	ErrCodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// StructuredError carries a code, a human readable message, an optional cause
// and optional context used when the error is rendered in API responses.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code.
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a StructuredError without a cause.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Wrap creates a StructuredError around cause.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext creates a StructuredError around cause with extra context.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// NewWithContext creates a StructuredError without a cause but with context.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

// CodeOf returns the code of the first StructuredError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}

// IsConfigurationError reports whether err was caused by an invalid
// validator configuration (unknown operator, unsupported date format).
func IsConfigurationError(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeInvalidConfiguration
}
