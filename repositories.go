package newsletter

import (
	"context"

	"github.com/SergoGansta777/email-newsletter/model"
)

// SubscriptionRepository defines the persistence interface for stored subscriptions.
//
// Implementations must be safe for concurrent use. The intake pipeline only calls Insert;
// the read methods exist for verification and operational tooling.
type SubscriptionRepository interface {
	// Insert stores a new record. It must not return before the row is durably written.
	// Storage failures are returned as *Error with ErrCodeDatabase.
	Insert(ctx context.Context, m model.Subscription) error

	// Load retrieves a subscription by ID.
	// Returns ErrNotFound if not found.
	Load(ctx context.Context, id string) (model.Subscription, error)

	// ListByEmail retrieves every subscription stored for an address, oldest first.
	// Returns an empty slice if none found.
	ListByEmail(ctx context.Context, email string) ([]model.Subscription, error)
}
