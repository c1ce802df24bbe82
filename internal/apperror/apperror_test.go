package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound_MatchesSentinel(t *testing.T) {
	err := NotFound("game", "wukong")

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound() should match ErrNotFound via errors.Is")
	}
	if errors.Is(err, ErrConflict) {
		t.Error("NotFound() should not match ErrConflict")
	}
}

func TestWrappedError_StillMatches(t *testing.T) {
	// Services wrap repo errors with fmt.Errorf("%w", ...). The sentinel
	// must survive the wrapping.
	inner := DuplicateSlug("wukong")
	wrapped := fmt.Errorf("creating game: %w", inner)

	if !errors.Is(wrapped, ErrConflict) {
		t.Error("wrapped DuplicateSlug should match ErrConflict")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As should extract *AppError through wrapping")
	}
	if appErr.Field != "slug" {
		t.Errorf("Field = %q, want %q", appErr.Field, "slug")
	}
}

func TestValidationFailed_CarriesField(t *testing.T) {
	err := ValidationFailed("title", "title is required")

	if err.Field != "title" {
		t.Errorf("Field = %q, want %q", err.Field, "title")
	}
	if err.Error() != "title is required" {
		t.Errorf("Error() = %q, want %q", err.Error(), "title is required")
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationFailed() should match ErrValidation")
	}
}

func TestUnauthorized_MatchesSentinel(t *testing.T) {
	err := Unauthorized("valid authentication required")
	if !errors.Is(err, ErrUnauthorized) {
		t.Error("Unauthorized() should match ErrUnauthorized")
	}
}

func TestDuplicateEmail_IsConflict(t *testing.T) {
	err := DuplicateEmail("admin@x.com")
	if !errors.Is(err, ErrConflict) {
		t.Error("DuplicateEmail() should match ErrConflict")
	}
	if err.Field != "email" {
		t.Errorf("Field = %q, want %q", err.Field, "email")
	}
}
