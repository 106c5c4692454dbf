package errors

import stderrors "errors"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // User-facing message
	Metadata map[string]string // Additional context for logs
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata for log context.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode extracts the domain code from an error chain, or CodeUnknown.
func GetCode(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// HTTPStatus maps an error chain to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return 200
	}
	return GetCode(err).HTTPStatus()
}

// UserMessage returns the message safe to show to a visitor. Errors outside
// the domain fall back to fallback so internal details never leak.
func UserMessage(err error, fallback string) string {
	var domainErr *Error
	if stderrors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return fallback
}
