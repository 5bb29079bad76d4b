// Package services defines the error vocabulary shared by the domain
// services (queue, calls, billing, notify, ...). The API layer maps these
// onto HTTP status codes in one place.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrProviderUnavailable is returned when the voice provider rejects or
	// times out a dispatch; the caller decides whether that is retryable
	ErrProviderUnavailable = errors.New("voice provider unavailable")

	// ErrInsufficientCredits is returned when an operation needs at least one
	// whole credit and the tenant has none
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
