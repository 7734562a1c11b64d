package relica

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coregx/relica"

	newsletter "github.com/SergoGansta777/email-newsletter"
	"github.com/SergoGansta777/email-newsletter/model"
)

// SubscriptionRepository implements newsletter.SubscriptionRepository using Relica.
type SubscriptionRepository struct {
	db *relica.DB
}

// NewSubscriptionRepository creates a new SubscriptionRepository.
func NewSubscriptionRepository(sqlDB *sql.DB, driverName string) *SubscriptionRepository {
	return &SubscriptionRepository{db: relica.WrapDB(sqlDB, driverName)}
}

func (r *SubscriptionRepository) tableName() string {
	return model.Subscription{}.TableName()
}

// Insert stores a new subscription. The record must carry its own ID.
func (r *SubscriptionRepository) Insert(ctx context.Context, m model.Subscription) error {
	if m.ID == "" {
		return newsletter.NewError(newsletter.ErrCodeInternal, "subscription id is required")
	}

	err := r.db.WithContext(ctx).Model(&m).Table(r.tableName()).Insert()
	if err != nil {
		return newsletter.NewErrorWithCause(newsletter.ErrCodeDatabase, "failed to insert subscription", err)
	}
	return nil
}

// Load retrieves a subscription by ID.
func (r *SubscriptionRepository) Load(ctx context.Context, id string) (model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).Select("*").From(r.tableName()).Where("id = ?", id).One(&sub)
	if errors.Is(err, sql.ErrNoRows) {
		return sub, newsletter.ErrNotFound
	}
	if err != nil {
		return sub, newsletter.NewErrorWithCause(newsletter.ErrCodeDatabase, "failed to load subscription", err)
	}
	return sub, nil
}

// ListByEmail finds every subscription stored for an address, oldest first.
func (r *SubscriptionRepository) ListByEmail(ctx context.Context, email string) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.WithContext(ctx).
		Select("*").
		From(r.tableName()).
		Where("email = ?", email).
		OrderBy("subscribed_at ASC").
		All(&subs)

	if err != nil {
		return nil, newsletter.NewErrorWithCause(newsletter.ErrCodeDatabase, "failed to list subscriptions", err)
	}
	if subs == nil {
		subs = []model.Subscription{}
	}
	return subs, nil
}
