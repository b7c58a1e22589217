package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := NotFound("user not found")
	assert.Equal(t, "user not found", plain.Error())

	cause := errors.New("connection refused")
	wrapped := Wrap(cause, ErrCodeTransport, "identity fetch failed")
	assert.Equal(t, "identity fetch failed: connection refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, ErrCodeInternal, "something broke")
	assert.ErrorIs(t, wrapped, cause)
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{name: "not found", err: NotFound("x"), predicate: IsNotFound},
		{name: "unauthorized", err: Unauthorized("x"), predicate: IsUnauthorized},
		{name: "conflict", err: Conflict("x"), predicate: IsConflict},
		{name: "validation", err: Validation("x"), predicate: IsValidation},
		{name: "transport", err: Transport(errors.New("x")), predicate: IsTransport},
		{name: "internal", err: Internal("x"), predicate: IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.predicate(tt.err))
			assert.False(t, tt.predicate(errors.New("plain")))
		})
	}
}

func TestPredicates_WrappedChain(t *testing.T) {
	inner := Unauthorized("token rejected")
	outer := fmt.Errorf("init: %w", inner)
	assert.True(t, IsUnauthorized(outer))
	assert.False(t, IsNotFound(outer))
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "this field is required")
	require.True(t, IsValidation(err))
	assert.Equal(t, "email", err.Field)
}
