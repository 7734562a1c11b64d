// Package model contains the persisted records of the newsletter service.
package model

import (
	"time"

	"github.com/SergoGansta777/email-newsletter/domain"
)

// Subscription is one stored newsletter subscription.
// Records are written once by the intake pipeline and never updated or deleted by it.
//
// Each subscription:
//   - Has a random 128-bit identifier rendered as a UUID string
//   - Keeps the email and name text exactly as submitted
//   - Carries the UTC time at which it was persisted
type Subscription struct {
	ID           string    `json:"id" db:"id"`                      // UUID v4, unique across all records
	Email        string    `json:"email" db:"email"`                // Subscriber email address
	Name         string    `json:"name" db:"name"`                  // Subscriber display name
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"` // Persistence time (UTC)
}

// TableName returns the database table name for Subscription.
func (m Subscription) TableName() string {
	return "subscriptions"
}

// NewSubscription builds the record for a validated subscriber.
//
// Parameters:
//   - id: Freshly generated identifier
//   - subscriber: Validated aggregate
//   - subscribedAt: Persistence time; converted to UTC
func NewSubscription(id string, subscriber domain.Subscriber, subscribedAt time.Time) Subscription {
	return Subscription{
		ID:           id,
		Email:        subscriber.Email().String(),
		Name:         subscriber.Name().String(),
		SubscribedAt: subscribedAt.UTC(),
	}
}
