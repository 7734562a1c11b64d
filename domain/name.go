package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rivo/uniseg"
)

// MaxNameLength is the maximum number of user-perceived characters (grapheme clusters) in a Name.
const MaxNameLength = 256

// ForbiddenNameCharacters lists the characters a Name may not contain.
const ForbiddenNameCharacters = `/()"<>\{}`

var nameRules = []validation.Rule{
	validation.Required,
	validation.NewStringRule(isNotBlank, "must not be blank"),
	validation.NewStringRule(fitsNameLength, "must be no longer than 256 characters"),
	validation.NewStringRule(hasNoForbiddenCharacters, `must not contain / ( ) " < > \ { }`),
}

// Name is a subscriber's display name.
//
// A Name can only be obtained from ParseName, so holding one means the text is non-blank,
// at most MaxNameLength graphemes long and free of ForbiddenNameCharacters.
type Name struct {
	value string
}

// ParseName validates raw and wraps it unchanged.
//
// Errors: returns a *ValidationError of kind KindInvalidName when any rule is violated.
// Only one error is reported regardless of how many rules fail.
func ParseName(raw string) (Name, error) {
	if err := validation.Validate(raw, nameRules...); err != nil {
		return Name{}, &ValidationError{Kind: KindInvalidName, Field: "name", Value: raw, Err: err}
	}
	return Name{value: raw}, nil
}

// String returns the name exactly as submitted.
func (n Name) String() string {
	return n.value
}

// IsZero reports whether n was not produced by ParseName.
func (n Name) IsZero() bool {
	return n.value == ""
}

func isNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func fitsNameLength(s string) bool {
	return uniseg.GraphemeClusterCount(s) <= MaxNameLength
}

func hasNoForbiddenCharacters(s string) bool {
	return !strings.ContainsAny(s, ForbiddenNameCharacters)
}
