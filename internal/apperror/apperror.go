// Package apperror defines the application's error taxonomy.
//
// Services and repositories return these typed errors; the HTTP layer maps
// them to status codes with errors.Is/errors.As. Raw storage errors must
// never cross the service boundary — they get wrapped into one of the
// sentinels below (or fall through to a generic 500 at the handler).
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// AppError carries a sentinel plus a human-readable message.
// Error() returns the message; Unwrap() exposes the sentinel so
// errors.Is(err, ErrNotFound) works through any wrapping.
type AppError struct {
	Err     error  // one of the sentinels above
	Message string // human-readable error message
	Field   string // optional: field causing a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, key string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, key),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unauthorized covers missing, malformed, expired, and mismatched
// credentials alike. Callers deliberately get no detail about which
// check failed.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// DuplicateEmail is returned when registering an admin whose email already
// exists. The storage layer translates its unique-constraint violation
// into this before it reaches a caller.
func DuplicateEmail(email string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("an account with email %s already exists", email),
		Field:   "email",
	}
}

// DuplicateSlug is returned when a game create/update collides with an
// existing slug.
func DuplicateSlug(slug string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("a game with slug %s already exists", slug),
		Field:   "slug",
	}
}
