package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"conventional", "user@example.com", false},
		{"gmail with digits", "sergo777ser777@gmail.com", false},
		{"plus tag", "user+news@example.co.uk", false},
		{"dotted local part", "first.last@example.org", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"missing at", "not-an-email", true},
		{"missing at with domain", "defently-not-valid_email.com", true},
		{"empty local part", "@example.com", true},
		{"empty domain", "user@", true},
		{"double at", "user@@example.com", true},
		{"space in local part", "user name@example.com", true},
		{"leading space", " user@example.com", true},
		{"no-break space in local part", "user\u00a0name@example.com", true},
		{"line separator in local part", "user\u2028x@example.com", true},
		{"ideographic space in local part", "user\u3000@example.com", true},
		{"trailing newline", "user@example.com\n", true},
		{"nul byte", "us\x00er@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseEmail(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				assert.True(t, e.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, e.String())
		})
	}
}

func TestParseEmail_ErrorDetails(t *testing.T) {
	_, err := ParseEmail("not-an-email")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindInvalidEmail, verr.Kind)
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, "not-an-email", verr.Value)
	assert.NotContains(t, err.Error(), "not-an-email")
}

func TestEmail_Redacted(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"john.doe@example.com", "jo***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"a@example.com", "***@example.com"},
	}

	for _, tt := range tests {
		e, err := ParseEmail(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, e.Redacted())
	}

	assert.Equal(t, "***@***", Email{}.Redacted())
}
