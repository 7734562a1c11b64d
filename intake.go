package newsletter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/SergoGansta777/email-newsletter/domain"
	"github.com/SergoGansta777/email-newsletter/model"
)

const tracerName = "github.com/SergoGansta777/email-newsletter"

// Intake validates subscription requests and stores accepted subscribers.
//
// Each call is independent: there is no deduplication, so submitting the same
// subscriber twice stores two records with distinct identifiers.
//
// Thread safety: Safe for concurrent use.
type Intake struct {
	repo   SubscriptionRepository
	logger Logger
	now    func() time.Time
	newID  func() string
	tracer trace.Tracer
}

// NewIntake creates a new Intake with the provided options.
//
// Required options:
//   - WithIntakeRepository: storage collaborator
//
// Example:
//
//	intake, err := newsletter.NewIntake(
//	    newsletter.WithIntakeRepository(repos.Subscription),
//	    newsletter.WithIntakeLogger(logger),
//	)
func NewIntake(opts ...IntakeOption) (*Intake, error) {
	in := &Intake{
		logger: &NoopLogger{},
		now:    time.Now,
		newID:  uuid.NewString,
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		if err := opt(in); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply intake option", err)
		}
	}

	if in.repo == nil {
		return nil, NewError(ErrCodeConfiguration, "SubscriptionRepository is required")
	}

	return in, nil
}

// Subscribe parses raw request fields and, when they are valid, stores the subscriber.
//
// Returns a *domain.ValidationError for rejected input (storage is not touched),
// a persistence *Error when the store fails, or the stored record on success.
// Use OutcomeOf to classify the error.
func (in *Intake) Subscribe(ctx context.Context, raw domain.RawSubscription) (model.Subscription, error) {
	ctx, span := in.tracer.Start(ctx, "newsletter.Subscribe")
	defer span.End()

	subscriber, err := domain.ParseSubscriber(raw)
	if err != nil {
		in.logger.Debugf("subscription rejected: %v", err)
		in.annotate(span, err)
		return model.Subscription{}, err
	}

	sub, err := in.Insert(ctx, subscriber)
	in.annotate(span, err)
	return sub, err
}

// Insert stores an already validated subscriber under a fresh identifier and the
// current UTC time. The repository is called exactly once; failures are not retried.
func (in *Intake) Insert(ctx context.Context, subscriber domain.Subscriber) (model.Subscription, error) {
	if subscriber.IsZero() {
		return model.Subscription{}, NewErrorWithCause(ErrCodeInternal, "cannot store subscriber", domain.ErrIncompleteSubscriber)
	}

	redacted := subscriber.Email().Redacted()
	sub := model.NewSubscription(in.newID(), subscriber, in.now())

	in.logger.Debugf("saving new subscriber %s", redacted)

	if err := in.repo.Insert(ctx, sub); err != nil {
		in.logger.Errorf("failed to save subscriber %s: %v", redacted, err)
		if IsPersistence(err) {
			return model.Subscription{}, err
		}
		return model.Subscription{}, NewErrorWithCause(ErrCodeDatabase, "failed to save subscriber", err)
	}

	in.logger.Infof("new subscriber %s saved as %s", redacted, sub.ID)
	return sub, nil
}

func (in *Intake) annotate(span trace.Span, err error) {
	outcome := OutcomeOf(err)
	span.SetAttributes(
		attribute.String("newsletter.outcome", outcome.String()),
		attribute.Int("http.response.status_code", outcome.Status()),
	)
	if err == nil {
		return
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		// Rejected input is an expected result, not a span error.
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome.String())
}
