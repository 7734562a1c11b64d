// Package domain holds the subscriber intake value objects and the aggregate built from them.
//
// Types in this package validate on construction: a Name, Email or Subscriber obtained from a
// Parse function is always valid. There are no database or HTTP dependencies here.
package domain

import "errors"

// RawSubscription is an intake request exactly as deserialized from the wire.
// A nil field means the key was absent or null.
type RawSubscription struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Subscriber is the trusted combination of a Name and an Email.
type Subscriber struct {
	name  Name
	email Email
}

// ErrIncompleteSubscriber is returned by NewSubscriber when a component was not parsed.
var ErrIncompleteSubscriber = errors.New("subscriber requires a parsed name and email")

// NewSubscriber combines already-parsed value objects.
func NewSubscriber(name Name, email Email) (Subscriber, error) {
	if name.IsZero() || email.IsZero() {
		return Subscriber{}, ErrIncompleteSubscriber
	}
	return Subscriber{name: name, email: email}, nil
}

// ParseSubscriber converts an untrusted request into a Subscriber.
//
// The name is checked before the email and the first failure is returned:
//   - absent field: KindMissingField
//   - present but invalid: KindInvalidName or KindInvalidEmail
func ParseSubscriber(raw RawSubscription) (Subscriber, error) {
	if raw.Name == nil {
		return Subscriber{}, missingField("name")
	}
	name, err := ParseName(*raw.Name)
	if err != nil {
		return Subscriber{}, err
	}

	if raw.Email == nil {
		return Subscriber{}, missingField("email")
	}
	email, err := ParseEmail(*raw.Email)
	if err != nil {
		return Subscriber{}, err
	}

	return Subscriber{name: name, email: email}, nil
}

// Name returns the subscriber's display name.
func (s Subscriber) Name() Name {
	return s.name
}

// Email returns the subscriber's address.
func (s Subscriber) Email() Email {
	return s.email
}

// IsZero reports whether s is the zero value rather than a parsed subscriber.
func (s Subscriber) IsZero() bool {
	return s.name.IsZero() || s.email.IsZero()
}
