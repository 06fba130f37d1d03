package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the submitted username or password
	// does not match the configured administrator account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotConfigured is returned when authentication is attempted without a
	// configured username or password hash.
	ErrNotConfigured = errors.New("authentication is not configured")
)
