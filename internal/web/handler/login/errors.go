// Package login provides HTTP handlers for administrator authentication.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be
	// parsed or fails validation.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInternalServerError is returned for unexpected failures during the
	// login process.
	ErrInternalServerError = errors.New("internal server error")
)
