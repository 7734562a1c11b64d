// Package api provides the HTTP surface of the newsletter server.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	newsletter "github.com/SergoGansta777/email-newsletter"
	"github.com/SergoGansta777/email-newsletter/cmd/newsletter-server/internal/metrics"
	"github.com/SergoGansta777/email-newsletter/domain"
	"github.com/SergoGansta777/email-newsletter/model"
)

// maxBodyBytes bounds the subscription request body.
const maxBodyBytes = 64 << 10

// SubscriptionService is the part of newsletter.Intake the handlers depend on.
type SubscriptionService interface {
	Subscribe(ctx context.Context, raw domain.RawSubscription) (model.Subscription, error)
}

// Handler holds dependencies for API handlers.
type Handler struct {
	intake       SubscriptionService
	logger       newsletter.Logger
	metrics      *metrics.Metrics
	queryTimeout time.Duration
}

// NewHandler creates a new API handler. m may be nil; a zero queryTimeout
// lets persistence run until the store answers.
func NewHandler(
	intake SubscriptionService,
	logger newsletter.Logger,
	m *metrics.Metrics,
	queryTimeout time.Duration,
) *Handler {
	if logger == nil {
		logger = &newsletter.NoopLogger{}
	}
	return &Handler{
		intake:       intake,
		logger:       logger,
		metrics:      m,
		queryTimeout: queryTimeout,
	}
}

// HandleHealth handles GET /health_check
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// HandleSubscribe handles POST /subscriptions
//
// Every response has an empty body; the status code alone carries the outcome.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw, err := decodeSubscription(w, r)
	if err != nil {
		h.logger.Debugf("subscription payload rejected: %v", err)
	} else {
		// A client that hangs up must not abort an insert that is already under way.
		ctx := context.WithoutCancel(r.Context())
		if h.queryTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.queryTimeout)
			defer cancel()
		}
		_, err = h.intake.Subscribe(ctx, raw)
	}

	outcome := newsletter.OutcomeOf(err)
	if outcome == newsletter.OutcomeInternal {
		h.logger.Errorf("subscription failed unexpectedly: %v", err)
	}

	h.respond(w, outcome)

	if h.metrics != nil {
		h.metrics.ObserveSubscription(outcome.String(), time.Since(start))
	}
}

func (h *Handler) respond(w http.ResponseWriter, outcome newsletter.Outcome) {
	if outcome == newsletter.OutcomeUnauthorized {
		w.Header().Set("WWW-Authenticate", "Token")
	}
	w.WriteHeader(outcome.Status())
}

// decodeSubscription reads a JSON object body into raw subscription fields.
func decodeSubscription(w http.ResponseWriter, r *http.Request) (domain.RawSubscription, error) {
	var raw domain.RawSubscription

	if !isJSONContentType(r.Header.Get("Content-Type")) {
		return raw, newsletter.NewError(newsletter.ErrCodeUnsupportedMediaType,
			"expected request with Content-Type: application/json")
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&raw); err != nil {
		return domain.RawSubscription{}, classifyDecodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.RawSubscription{}, newsletter.NewError(newsletter.ErrCodeMalformedPayload,
			"request body must contain a single JSON object")
	}

	return raw, nil
}

func classifyDecodeError(err error) error {
	var sizeErr *http.MaxBytesError
	if errors.As(err, &sizeErr) {
		return newsletter.NewErrorWithCause(newsletter.ErrCodePayloadTooLarge,
			"request body exceeds the size limit", err)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return newsletter.NewErrorWithCause(newsletter.ErrCodeUnprocessablePayload,
			"request body has fields of the wrong type", err)
	}
	return newsletter.NewErrorWithCause(newsletter.ErrCodeMalformedPayload,
		"request body is not valid JSON", err)
}

func isJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}
