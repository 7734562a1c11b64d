package newsletter

import (
	"fmt"
	"time"
)

// IntakeOption is a function that configures an Intake.
//
// Example:
//
//	intake, err := newsletter.NewIntake(
//	    newsletter.WithIntakeRepository(repos.Subscription),
//	    newsletter.WithIntakeLogger(logger), // optional
//	)
type IntakeOption func(*Intake) error

// WithIntakeRepository sets the storage collaborator. Required.
func WithIntakeRepository(repo SubscriptionRepository) IntakeOption {
	return func(in *Intake) error {
		if repo == nil {
			return fmt.Errorf("subscription repository cannot be nil")
		}
		in.repo = repo
		return nil
	}
}

// WithIntakeLogger sets the logger. Defaults to NoopLogger.
func WithIntakeLogger(logger Logger) IntakeOption {
	return func(in *Intake) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		in.logger = logger
		return nil
	}
}

// WithClock overrides the source of subscription timestamps.
func WithClock(now func() time.Time) IntakeOption {
	return func(in *Intake) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		in.now = now
		return nil
	}
}

// WithIDGenerator overrides the generator of record identifiers.
// The generator must return a fresh, non-empty value on every call.
func WithIDGenerator(newID func() string) IntakeOption {
	return func(in *Intake) error {
		if newID == nil {
			return fmt.Errorf("id generator cannot be nil")
		}
		in.newID = newID
		return nil
	}
}
