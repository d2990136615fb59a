package model

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across usecases and handlers.
var (
	// ErrUnauthenticated signals a missing, expired, or mismatched credential.
	// Requests failing with it are aborted before any provider call is made.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotConfigured signals missing provider credentials; the flow fails
	// closed with a service-unavailable response.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrNotFound signals an absent record or an ownership mismatch.
	ErrNotFound = errors.New("not found")
)

// ValidationError is a bad request caught before any external call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ProviderError wraps a non-success response from an upstream provider. The
// provider payload is reduced to a short message; the raw structure is never
// forwarded to callers.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: upstream error (%d): %s", e.Provider, e.StatusCode, e.Message)
}
