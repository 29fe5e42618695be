package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "with field",
			err:      NewValidationError("phone", "must not be empty"),
			expected: "validation failed for phone: must not be empty",
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "bad payload"},
			expected: "validation failed: bad payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrValidation))
			assert.True(t, IsValidation(tt.err))
		})
	}
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("workspace", "HTTP 503")

	assert.Equal(t, `sink "workspace" unavailable: HTTP 503`, err.Error())
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, IsUnavailable(err))

	bare := &UnavailableError{Sink: "mail"}
	assert.Equal(t, `sink "mail" unavailable`, bare.Error())
}

func TestErrorChecks_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("persisting record: %w", NewUnavailableError("store", "connection refused"))

	assert.True(t, IsUnavailable(wrapped))
	assert.False(t, IsValidation(wrapped))

	var unavailableErr *UnavailableError
	assert.True(t, errors.As(wrapped, &unavailableErr))
	assert.Equal(t, "store", unavailableErr.Sink)
}

func TestErrorChecks_UnrelatedError(t *testing.T) {
	err := errors.New("boom")

	assert.False(t, IsValidation(err))
	assert.False(t, IsUnavailable(err))
}
