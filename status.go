package newsletter

import (
	"errors"
	"net/http"

	"github.com/SergoGansta777/email-newsletter/domain"
)

// Outcome is the terminal result of one intake request.
type Outcome int

// Intake outcomes.
const (
	OutcomeSubscribed Outcome = iota
	OutcomeMissingField
	OutcomeInvalidName
	OutcomeInvalidEmail
	OutcomeMalformedPayload
	OutcomeUnprocessablePayload
	OutcomeUnsupportedMediaType
	OutcomePayloadTooLarge
	OutcomePersistenceFailure
	OutcomeUnauthorized
	OutcomeForbidden
	OutcomeNotFound
	OutcomeInternal
)

type outcomeInfo struct {
	name   string
	status int
}

// outcomeTable is the single source of truth for outcome labels and HTTP statuses.
var outcomeTable = map[Outcome]outcomeInfo{
	OutcomeSubscribed:           {"subscribed", http.StatusOK},
	OutcomeMissingField:         {"missing_field", http.StatusUnprocessableEntity},
	OutcomeInvalidName:          {"invalid_name", http.StatusBadRequest},
	OutcomeInvalidEmail:         {"invalid_email", http.StatusBadRequest},
	OutcomeMalformedPayload:     {"malformed_payload", http.StatusBadRequest},
	OutcomeUnprocessablePayload: {"unprocessable_payload", http.StatusUnprocessableEntity},
	OutcomeUnsupportedMediaType: {"unsupported_media_type", http.StatusUnsupportedMediaType},
	OutcomePayloadTooLarge:      {"payload_too_large", http.StatusRequestEntityTooLarge},
	OutcomePersistenceFailure:   {"persistence_failure", http.StatusInternalServerError},
	OutcomeUnauthorized:         {"unauthorized", http.StatusUnauthorized},
	OutcomeForbidden:            {"forbidden", http.StatusForbidden},
	OutcomeNotFound:             {"not_found", http.StatusNotFound},
	OutcomeInternal:             {"internal", http.StatusInternalServerError},
}

var validationOutcomes = map[domain.ErrorKind]Outcome{
	domain.KindMissingField: OutcomeMissingField,
	domain.KindInvalidName:  OutcomeInvalidName,
	domain.KindInvalidEmail: OutcomeInvalidEmail,
}

var codeOutcomes = map[string]Outcome{
	ErrCodeDatabase:             OutcomePersistenceFailure,
	ErrCodeMalformedPayload:     OutcomeMalformedPayload,
	ErrCodeUnprocessablePayload: OutcomeUnprocessablePayload,
	ErrCodeUnsupportedMediaType: OutcomeUnsupportedMediaType,
	ErrCodePayloadTooLarge:      OutcomePayloadTooLarge,
	ErrCodeUnauthorized:         OutcomeUnauthorized,
	ErrCodeForbidden:            OutcomeForbidden,
	ErrCodeNotFound:             OutcomeNotFound,
}

// String returns a stable label for logs, metrics and traces.
func (o Outcome) String() string {
	if info, ok := outcomeTable[o]; ok {
		return info.name
	}
	return outcomeTable[OutcomeInternal].name
}

// Status returns the HTTP status code for the outcome.
func (o Outcome) Status() int {
	if info, ok := outcomeTable[o]; ok {
		return info.status
	}
	return outcomeTable[OutcomeInternal].status
}

// OutcomeOf classifies the error returned by the pipeline.
// A nil error means the subscriber was stored; anything unrecognised is OutcomeInternal.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeSubscribed
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		if o, ok := validationOutcomes[verr.Kind]; ok {
			return o
		}
		return OutcomeInternal
	}

	var e *Error
	if errors.As(err, &e) {
		if o, ok := codeOutcomes[e.Code]; ok {
			return o
		}
	}
	return OutcomeInternal
}

// Status maps a pipeline error straight to its HTTP status code.
func Status(err error) int {
	return OutcomeOf(err).Status()
}
