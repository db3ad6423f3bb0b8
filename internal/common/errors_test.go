package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := NewValidationError("studentId", "is required")
	wrapped := fmt.Errorf("submit onboarding: %w", err)

	require.ErrorIs(t, wrapped, ErrValidation)
	assert.NotErrorIs(t, wrapped, ErrForbidden)

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "is required", ve.Fields["studentId"])
}

func TestValidationError_MessageIsSortedByField(t *testing.T) {
	ve := &ValidationError{}
	ve.Add("title", "is required")
	ve.Add("amount", "must be greater than 0")

	assert.Equal(t, "validation error: amount: must be greater than 0; title: is required", ve.Error())
}

func TestValidationError_Empty(t *testing.T) {
	var nilErr *ValidationError
	assert.True(t, nilErr.Empty())
	assert.True(t, (&ValidationError{}).Empty())
	assert.False(t, NewValidationError("x", "y").Empty())
}
