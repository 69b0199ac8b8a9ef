package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidation("bad input"), fiber.StatusBadRequest},
		{"unauthorized", NewUnauthorized("no session"), fiber.StatusUnauthorized},
		{"forbidden", NewForbidden("not yours"), fiber.StatusForbidden},
		{"not found", NewNotFound("missing"), fiber.StatusNotFound},
		{"conflict", NewConflict("duplicate"), fiber.StatusConflict},
		{"upstream", NewUpstream("ai failed", errors.New("timeout")), fiber.StatusInternalServerError},
		{"internal", NewInternal(errors.New("boom")), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestUnwrapAndAs(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstream("ai failed", cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("send message: %w", err)
	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindUpstream, appErr.Kind)
	assert.Equal(t, "ai failed", appErr.Message)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestInternalHidesCause(t *testing.T) {
	err := NewInternal(errors.New("pq: relation does not exist"))
	assert.Equal(t, "internal server error", err.Message)
}
