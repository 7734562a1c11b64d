package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple", "sergey"},
		{"full name", "Sergey Nekhoroshev"},
		{"twenty graphemes", strings.Repeat("a", 20)},
		{"cyrillic", "Сергей Нехорошев"},
		{"punctuation allowed", "O'Neil-Smith, Jr."},
		{"surrounding whitespace kept", "  Sergey  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, n.String())
			assert.False(t, n.IsZero())
		})
	}
}

func TestParseName_RejectsBlank(t *testing.T) {
	for _, input := range []string{"", " ", "   ", "\t", "\n \t"} {
		_, err := ParseName(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidName)
	}
}

func TestParseName_GraphemeBoundary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"256 ascii", strings.Repeat("a", 256), false},
		{"257 ascii", strings.Repeat("a", 257), true},
		{"256 multi-byte", strings.Repeat("ё", 256), false},
		{"257 multi-byte", strings.Repeat("ё", 257), true},
		// e + combining acute accent: two runes, one grapheme.
		{"256 combining sequences", strings.Repeat("e\u0301", 256), false},
		{"257 combining sequences", strings.Repeat("e\u0301", 257), true},
		// family emoji joined with ZWJ: five runes, one grapheme.
		{"256 zwj sequences", strings.Repeat("\U0001F468\u200D\U0001F469\u200D\U0001F467", 256), false},
		{"257 zwj sequences", strings.Repeat("\U0001F468\u200D\U0001F469\u200D\U0001F467", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseName_RejectsForbiddenCharacters(t *testing.T) {
	for _, c := range ForbiddenNameCharacters {
		input := "aaa" + string(c)
		_, err := ParseName(input)
		assert.ErrorIs(t, err, ErrInvalidName, "character %q should be rejected", c)
	}
}

func TestParseName_ErrorDetails(t *testing.T) {
	_, err := ParseName("<script>")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindInvalidName, verr.Kind)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "<script>", verr.Value)
	assert.NotNil(t, errors.Unwrap(err))
	assert.NotContains(t, err.Error(), "<script>")
	assert.NotErrorIs(t, err, ErrInvalidEmail)
	assert.NotErrorIs(t, err, ErrMissingField)
}

func TestName_ZeroValue(t *testing.T) {
	var n Name
	assert.True(t, n.IsZero())
	assert.Equal(t, "", n.String())
}
