package newsletter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SergoGansta777/email-newsletter/domain"
)

func TestOutcomeOf(t *testing.T) {
	_, nameErr := domain.ParseName("  ")
	_, emailErr := domain.ParseEmail("not-an-email")
	_, missingErr := domain.ParseSubscriber(domain.RawSubscription{})

	tests := []struct {
		name    string
		err     error
		outcome Outcome
		status  int
		label   string
	}{
		{"Nil error is success", nil, OutcomeSubscribed, http.StatusOK, "subscribed"},
		{"Missing field", missingErr, OutcomeMissingField, http.StatusUnprocessableEntity, "missing_field"},
		{"Invalid name", nameErr, OutcomeInvalidName, http.StatusBadRequest, "invalid_name"},
		{"Invalid email", emailErr, OutcomeInvalidEmail, http.StatusBadRequest, "invalid_email"},
		{
			"Persistence failure",
			NewErrorWithCause(ErrCodeDatabase, "failed to insert subscription", errors.New("timeout")),
			OutcomePersistenceFailure, http.StatusInternalServerError, "persistence_failure",
		},
		{
			"Wrapped persistence failure",
			fmt.Errorf("subscribe: %w", NewError(ErrCodeDatabase, "failed")),
			OutcomePersistenceFailure, http.StatusInternalServerError, "persistence_failure",
		},
		{"Malformed payload", NewError(ErrCodeMalformedPayload, "bad json"), OutcomeMalformedPayload, http.StatusBadRequest, "malformed_payload"},
		{"Unprocessable payload", NewError(ErrCodeUnprocessablePayload, "wrong type"), OutcomeUnprocessablePayload, http.StatusUnprocessableEntity, "unprocessable_payload"},
		{"Unsupported media type", NewError(ErrCodeUnsupportedMediaType, "text/plain"), OutcomeUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"Payload too large", NewError(ErrCodePayloadTooLarge, "64KB"), OutcomePayloadTooLarge, http.StatusRequestEntityTooLarge, "payload_too_large"},
		{"Unauthorized", ErrUnauthorized, OutcomeUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"Forbidden", ErrForbidden, OutcomeForbidden, http.StatusForbidden, "forbidden"},
		{"Not found", ErrNotFound, OutcomeNotFound, http.StatusNotFound, "not_found"},
		{"Configuration error is internal", NewError(ErrCodeConfiguration, "bad"), OutcomeInternal, http.StatusInternalServerError, "internal"},
		{"Plain error is internal", errors.New("boom"), OutcomeInternal, http.StatusInternalServerError, "internal"},
		{"Incomplete subscriber is internal", domain.ErrIncompleteSubscriber, OutcomeInternal, http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := OutcomeOf(tt.err)

			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.status, outcome.Status())
			assert.Equal(t, tt.status, Status(tt.err))
			assert.Equal(t, tt.label, outcome.String())
		})
	}
}

func TestOutcomeOf_UnknownValidationKind(t *testing.T) {
	err := &domain.ValidationError{Kind: domain.ErrorKind("too_long"), Field: "name"}
	assert.Equal(t, OutcomeInternal, OutcomeOf(err))
}

func TestOutcome_UnknownValue(t *testing.T) {
	o := Outcome(999)

	assert.Equal(t, "internal", o.String())
	assert.Equal(t, http.StatusInternalServerError, o.Status())
}

func TestOutcomeTable_Complete(t *testing.T) {
	for o := OutcomeSubscribed; o <= OutcomeInternal; o++ {
		_, ok := outcomeTable[o]
		assert.True(t, ok, "outcome %d has no table entry", o)
	}
}
