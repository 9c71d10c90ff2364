// Package domain holds the error values shared by every aggregate. Handlers
// match them with errors.Is to pick a response status.
package domain

import "errors"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique field is already taken
	ErrConflict = errors.New("already exists")
	// ErrForbidden is returned when the caller does not own the record
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized is returned when credentials or session are missing or invalid
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput is returned when a record fails validation
	ErrInvalidInput = errors.New("invalid input")
)
