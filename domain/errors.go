package domain

import "fmt"

// ErrorKind classifies why an intake request could not be turned into a Subscriber.
type ErrorKind string

// Validation error kinds.
const (
	// KindMissingField means a required key was absent (or null) in the raw request.
	KindMissingField ErrorKind = "missing_field"

	// KindInvalidName means the name was present but broke a Name invariant.
	KindInvalidName ErrorKind = "invalid_name"

	// KindInvalidEmail means the email was present but is not a valid address.
	KindInvalidEmail ErrorKind = "invalid_email"
)

// ValidationError is returned by the value-object constructors and by ParseSubscriber.
//
// Value carries the offending raw text for callers that need it. Error() never includes it,
// so the error can be logged without leaking subscriber input.
type ValidationError struct {
	Kind  ErrorKind
	Field string
	Value string
	Err   error
}

// Sentinels for errors.Is. They match any ValidationError of the same kind.
var (
	ErrMissingField = &ValidationError{Kind: KindMissingField}
	ErrInvalidName  = &ValidationError{Kind: KindInvalidName}
	ErrInvalidEmail = &ValidationError{Kind: KindInvalidEmail}
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing field: %s", e.Field)
	case KindInvalidName:
		return "invalid subscriber name"
	case KindInvalidEmail:
		return "invalid subscriber email"
	default:
		return fmt.Sprintf("validation failed: %s", e.Kind)
	}
}

// Unwrap returns the rule violation reported by the validator, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func missingField(field string) *ValidationError {
	return &ValidationError{Kind: KindMissingField, Field: field}
}
