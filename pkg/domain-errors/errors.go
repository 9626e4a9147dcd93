// Package domainerrors provides coded errors for crossing layer boundaries.
// Services return these instead of transport-specific errors; the HTTP layer
// translates codes to status codes and never leaks internal detail.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies a domain error for transport translation and branching.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeValidation   Code = "validation_failed"
	CodeInvalidInput Code = "invalid_input"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeRateLimited  Code = "rate_limited"
	CodeInternal     Code = "internal_error"
)

// Error is a coded domain error. Message is safe to show to API clients for
// client-caused codes; WriteError redacts it for internal errors.
type Error struct {
	Code    Code
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.wrapped }

// New creates a coded error with a message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error while keeping it
// reachable through errors.Is/As chains.
func Wrap(code Code, message string, err error) error {
	return &Error{Code: code, Message: message, wrapped: err}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// HasCode is an alias of Is for call sites that read better with it.
func HasCode(err error, code Code) bool {
	return Is(err, code)
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in a domain layer.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the client-safe message from err, empty for non-domain
// errors.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
