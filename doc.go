// Package newsletter implements the subscriber intake pipeline of an email newsletter service.
//
// A subscription request carries an optional name and an optional email. The pipeline
// validates both fields into domain value objects, stores an accepted subscriber under a
// fresh identifier and the current UTC time, and classifies every result into an Outcome
// that maps to an HTTP status.
//
// # Pipeline
//
//	raw request ──> domain.ParseSubscriber ──> Intake.Insert ──> SubscriptionRepository
//	      │                  │                       │
//	      └──────────────────┴───────── OutcomeOf(err) ──> Outcome.Status()
//
// Validation errors are *domain.ValidationError values and never reach storage.
// Storage failures are *Error values with ErrCodeDatabase.
//
// # Status mapping
//
//	subscribed             200
//	missing_field          422
//	invalid_name           400
//	invalid_email          400
//	malformed_payload      400
//	unprocessable_payload  422
//	unsupported_media_type 415
//	persistence_failure    500
//
// # Quick Start
//
//	db, _ := sql.Open("postgres", dsn)
//	if err := newsletter.Migrate(ctx, db, "postgres"); err != nil {
//	    log.Fatal(err)
//	}
//
//	repos := relica.NewRepositories(db, "postgres")
//	intake, err := newsletter.NewIntake(
//	    newsletter.WithIntakeRepository(repos.Subscription),
//	    newsletter.WithIntakeLogger(logger),
//	)
//
//	sub, err := intake.Subscribe(ctx, domain.RawSubscription{Name: &name, Email: &email})
//	w.WriteHeader(newsletter.Status(err))
//
// Subscriptions are not deduplicated: the same subscriber submitted twice is stored twice.
//
// The standalone HTTP service lives in cmd/newsletter-server.
package newsletter
