package provider

import "errors"

var (
	// ErrEmailTaken indicates the signup email already has an account.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound indicates the provider record is missing.
	ErrNotFound = errors.New("provider not found")
)
