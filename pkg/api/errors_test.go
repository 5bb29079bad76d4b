package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/ringstack/ringstack/pkg/calls"
	"github.com/ringstack/ringstack/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("phone", "required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "required",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already finished maps to 409",
			err:        fmt.Errorf("wrapped: %w", calls.ErrAlreadyFinished),
			expectCode: http.StatusConflict,
			expectMsg:  "call already finished",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "concurrent modification maps to 409",
			err:        services.ErrConcurrentModification,
			expectCode: http.StatusConflict,
			expectMsg:  "retry",
		},
		{
			name:       "insufficient credits maps to 402",
			err:        fmt.Errorf("wrapped: %w", services.ErrInsufficientCredits),
			expectCode: http.StatusPaymentRequired,
			expectMsg:  "insufficient credits",
		},
		{
			name:       "provider unavailable maps to 502",
			err:        fmt.Errorf("%w: connect timeout", services.ErrProviderUnavailable),
			expectCode: http.StatusBadGateway,
			expectMsg:  "voice provider unavailable",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
