package onboarding

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for the failure taxonomy shared by every step. Handlers
// map these to the envelope codes; anything unrecognized maps to Unknown.
var (
	// ErrAuthenticationRequired is returned before any validation, vendor
	// call or store write when the caller has no identity.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrNotFound is returned when the caller's provider record is missing.
	ErrNotFound = errors.New("provider account not found")

	// ErrExternalService is the generic, non-leaking surface for vendor
	// failures. The underlying vendor error is logged server-side only.
	ErrExternalService = errors.New("service temporarily unavailable, please try again")
)

// ValidationError carries the human-readable issues found in a step's input.
// Validators never panic on well-formed-but-invalid input; they collect
// issues and return this.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid input"
	}
	return strings.Join(e.Issues, "; ")
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Issues: []string{fmt.Sprintf(format, args...)}}
}

// RateLimitedError is returned when a caller exhausts the attempt quota for
// a rate-limited step. RetryAfter is always positive.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many attempts, retry in %s", e.RetryAfter.Round(time.Second))
}

// RetryAfterSeconds reports the wait in whole seconds, at least 1.
func (e *RateLimitedError) RetryAfterSeconds() int {
	secs := int(e.RetryAfter.Round(time.Second).Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}
