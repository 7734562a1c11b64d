//go:build integration

package relica

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	newsletter "github.com/SergoGansta777/email-newsletter"
	"github.com/SergoGansta777/email-newsletter/model"
)

func TestSubscriptionRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("newsletter"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, newsletter.Migrate(ctx, db, "postgres"))
	require.NoError(t, newsletter.Migrate(ctx, db, "postgres"))

	repo := NewSubscriptionRepository(db, "postgres")
	at := time.Date(2026, 10, 18, 12, 0, 0, 123000, time.UTC)
	rec := model.Subscription{
		ID:           uuid.NewString(),
		Email:        "ursula_le_guin@gmail.com",
		Name:         "le guin",
		SubscribedAt: at,
	}

	require.NoError(t, repo.Insert(ctx, rec))

	got, err := repo.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Email, got.Email)
	assert.Equal(t, rec.Name, got.Name)
	assert.True(t, at.Equal(got.SubscribedAt))

	subs, err := repo.ListByEmail(ctx, rec.Email)
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	_, err = repo.Load(ctx, uuid.NewString())
	assert.True(t, newsletter.IsNotFound(err))
}
