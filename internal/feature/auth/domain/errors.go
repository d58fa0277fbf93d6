// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUserAlreadyExists indicates that a user with the given email or
	// username already exists. It is returned during registration.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// Login returns this same error for an unknown email and for a wrong
	// password so the response does not leak which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
