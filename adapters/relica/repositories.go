package relica

import (
	"database/sql"

	newsletter "github.com/SergoGansta777/email-newsletter"
)

// Repositories holds all repository implementations.
type Repositories struct {
	Subscription newsletter.SubscriptionRepository
}

// NewRepositories creates all repository implementations using Relica.
//
// The db parameter should be an *sql.DB connected to MySQL, PostgreSQL, or SQLite.
// The driverName should be "mysql", "postgres", or "sqlite3".
func NewRepositories(db *sql.DB, driverName string) *Repositories {
	return &Repositories{
		Subscription: NewSubscriptionRepository(db, driverName),
	}
}
