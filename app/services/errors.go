package services

import "errors"

var (
	// ErrInvalidInput marks client errors: malformed fields, bad pagination
	// parameters, unknown vote directions.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden marks attempts to act on another user's resource.
	ErrForbidden = errors.New("forbidden")

	// ErrWrongCredentials is returned on failed log-in. It deliberately does
	// not say whether the username or the password was wrong.
	ErrWrongCredentials = errors.New("wrong username or password")
)
