// Package relica provides the subscription repository on top of the Relica query builder.
//
// Relica (github.com/coregx/relica) is a lightweight database query builder for Go.
// The repository works with any *sql.DB opened with the "postgres", "mysql" or "sqlite3"
// driver, once newsletter.Migrate has created the subscriptions table.
//
// Example usage:
//
//	import (
//	    "database/sql"
//	    "github.com/SergoGansta777/email-newsletter"
//	    "github.com/SergoGansta777/email-newsletter/adapters/relica"
//	    _ "github.com/lib/pq"
//	)
//
//	db, err := sql.Open("postgres", "host=localhost user=postgres dbname=newsletter sslmode=disable")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	repos := relica.NewRepositories(db, "postgres")
//
//	intake, err := newsletter.NewIntake(
//	    newsletter.WithIntakeRepository(repos.Subscription),
//	    newsletter.WithIntakeLogger(logger),
//	)
//
// For MySQL the DSN must carry parseTime=true so that subscribed_at scans into time.Time.
package relica
