package service

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateAccount indicates a signup with an already registered email.
	ErrDuplicateAccount = errors.New("an account with this email already exists")
	// ErrNotFound covers unknown accounts and conversations not owned by the
	// resolved account.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates a password mismatch for a known account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingAPIKey indicates the Gemini credential is not configured.
	ErrMissingAPIKey = errors.New("gemini api key is not configured")
)

// ValidationError marks missing or malformed client input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// UpstreamError carries the status and message returned by the advice
// provider.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("advice provider error (status %d): %s", e.StatusCode, e.Message)
}
