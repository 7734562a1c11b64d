package domain

import (
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Email is a syntactically valid email address.
// The grammar check is delegated to ozzo-validation's EmailFormat rule; no MX lookup is made.
type Email struct {
	value string
}

// noSpaceOrControl rejects any Unicode whitespace or control character,
// including those EmailFormat admits in the local part (U+00A0, U+2028, U+3000).
var noSpaceOrControl = validation.NewStringRule(func(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) < 0
}, "must not contain whitespace or control characters")

// ParseEmail validates raw and wraps it unchanged.
//
// Errors: returns a *ValidationError of kind KindInvalidEmail for empty or malformed input.
func ParseEmail(raw string) (Email, error) {
	if err := validation.Validate(raw, validation.Required, noSpaceOrControl, is.EmailFormat); err != nil {
		return Email{}, &ValidationError{Kind: KindInvalidEmail, Field: "email", Value: raw, Err: err}
	}
	return Email{value: raw}, nil
}

// String returns the address exactly as submitted.
func (e Email) String() string {
	return e.value
}

// IsZero reports whether e was not produced by ParseEmail.
func (e Email) IsZero() bool {
	return e.value == ""
}

// Redacted masks the local part for logging.
// "john.doe@example.com" → "jo***@example.com"; local parts of two characters or less are fully masked.
func (e Email) Redacted() string {
	at := strings.LastIndexByte(e.value, '@')
	if at < 0 {
		return "***@***"
	}
	local, host := []rune(e.value[:at]), e.value[at+1:]
	if len(local) > 2 {
		return string(local[:2]) + "***@" + host
	}
	return "***@" + host
}
