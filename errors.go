package newsletter

import (
	"errors"
	"fmt"
)

// Error is an infrastructure or transport failure raised around the intake pipeline.
// Validation failures are reported separately as *domain.ValidationError.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes.
const (
	// ErrCodeDatabase indicates the storage collaborator failed.
	ErrCodeDatabase = "DATABASE_ERROR"

	// ErrCodeConfiguration indicates invalid service construction.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"

	// ErrCodeNotFound indicates a lookup matched no record.
	ErrCodeNotFound = "NOT_FOUND"

	// ErrCodeMalformedPayload indicates the request body is not valid JSON.
	ErrCodeMalformedPayload = "MALFORMED_PAYLOAD"

	// ErrCodeUnprocessablePayload indicates valid JSON whose fields have the wrong types.
	ErrCodeUnprocessablePayload = "UNPROCESSABLE_PAYLOAD"

	// ErrCodeUnsupportedMediaType indicates the request is not declared as JSON.
	ErrCodeUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"

	// ErrCodePayloadTooLarge indicates the request body exceeds the accepted size.
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"

	// ErrCodeUnauthorized indicates missing authentication. Not produced by the intake pipeline.
	ErrCodeUnauthorized = "UNAUTHORIZED"

	// ErrCodeForbidden indicates the caller may not perform the action. Not produced by the intake pipeline.
	ErrCodeForbidden = "FORBIDDEN"

	// ErrCodeInternal indicates a programming or unclassified failure.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// Common errors.
var (
	// ErrNotFound is returned by repositories when a query returns no rows.
	ErrNotFound = &Error{
		Code:    ErrCodeNotFound,
		Message: "record not found",
	}

	// ErrUnauthorized is reserved for endpoints that require authentication.
	ErrUnauthorized = &Error{
		Code:    ErrCodeUnauthorized,
		Message: "authentication required",
	}

	// ErrForbidden is reserved for endpoints with authorization checks.
	ErrForbidden = &Error{
		Code:    ErrCodeForbidden,
		Message: "user may not perform that action",
	}
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// HasCode reports whether err is (or wraps) an *Error with the given code.
func HasCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsNotFound checks if an error is ErrNotFound.
func IsNotFound(err error) bool {
	return HasCode(err, ErrCodeNotFound)
}

// IsPersistence checks if an error reports a storage failure.
func IsPersistence(err error) bool {
	return HasCode(err, ErrCodeDatabase)
}
