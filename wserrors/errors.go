package wserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrAPI indicates an application-level error reported by the remote site.
	ErrAPI = errors.New("api error")

	// ErrNetwork indicates a transport-level failure.
	ErrNetwork = errors.New("network error")

	// ErrAuth indicates an authentication failure.
	ErrAuth = errors.New("authentication error")

	// ErrValidation indicates a local precondition violation.
	ErrValidation = errors.New("validation error")
)

// DefaultAuthCode is the error code assigned to authentication failures
// that do not carry a more specific code.
const DefaultAuthCode = "auth_failed"

// APIError represents an application-level error returned by the remote
// Moodle site. The REST endpoint reports these as a JSON object carrying
// a message plus an exception name and/or an error code.
type APIError struct {
	// Message is the human-readable error message from the site
	Message string
	// ErrCode is the Moodle error code (e.g., "invalidtoken")
	ErrCode string
	// Exception is the server-side exception class name, if reported
	Exception string
	// DebugInfo carries additional debugging detail when the site has
	// debugging output enabled
	DebugInfo string
}

// Error returns a human-readable error message.
func (e *APIError) Error() string {
	msg := "api error"
	if e.ErrCode != "" {
		msg += " [" + e.ErrCode + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Exception != "" {
		msg += " (" + e.Exception + ")"
	}
	return msg
}

// Unwrap returns nil as APIError has no underlying cause.
func (e *APIError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// NetworkError represents a transport-level failure: a timeout, a non-2xx
// HTTP status, or a connection error. It may wrap an underlying cause.
type NetworkError struct {
	// Message describes the failure
	Message string
	// StatusCode is the HTTP status code, when the failure was a
	// non-2xx response (0 otherwise)
	StatusCode int
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *NetworkError) Error() string {
	msg := "network error"
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// AuthError represents an authentication-specific denial.
type AuthError struct {
	// Message describes the failure
	Message string
	// Code is the error code; defaults to DefaultAuthCode when constructed
	// via NewAuthError
	Code string
	// DebugInfo carries additional debugging detail, if any
	DebugInfo string
}

// NewAuthError constructs an AuthError with the default code.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message, Code: DefaultAuthCode}
}

// Error returns a human-readable error message.
func (e *AuthError) Error() string {
	msg := "authentication error"
	if e.Code != "" {
		msg += " [" + e.Code + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as AuthError has no underlying cause.
func (e *AuthError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

// ValidationError represents a local precondition violation, such as
// constructing a client without a required configuration value.
type ValidationError struct {
	// Field is the name of the offending field or option
	Field string
	// Message describes the validation failure
	Message string
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Field != "" {
		msg += " for " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ValidationError has no underlying cause.
func (e *ValidationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
