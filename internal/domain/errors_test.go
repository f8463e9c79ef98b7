package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{"body.title": "is required"}}

	if !errors.Is(verr, ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("decoding request: %w", verr)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	original := &ValidationError{Fields: map[string]string{
		"body.title": "is required",
		"body.done":  "expected boolean",
	}}
	wrapped := fmt.Errorf("decoding request: %w", original)

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("ValidationError.Fields has %d entries, want 2", len(verr.Fields))
	}
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{
		"query.skip":  "must be a non-negative integer",
		"query.limit": "must be a non-negative integer",
	}}

	want := "validation error: query.limit: must be a non-negative integer; query.skip: must be a non-negative integer"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestServiceError(t *testing.T) {
	t.Parallel()

	t.Run("not found carries detail only", func(t *testing.T) {
		t.Parallel()

		err := NotFound("Todo not found")
		if !errors.Is(err, ErrNotFound) {
			t.Error("errors.Is(NotFound(), ErrNotFound) = false, want true")
		}
		if errors.Is(err, ErrStorage) {
			t.Error("errors.Is(NotFound(), ErrStorage) = true, want false")
		}
		if err.Error() != "Todo not found" {
			t.Errorf("Error() = %q, want %q", err.Error(), "Todo not found")
		}
	})

	t.Run("storage failure wraps cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("database is locked")
		err := StorageFailure("Failed to create todo", cause)

		if !errors.Is(err, ErrStorage) {
			t.Error("errors.Is(StorageFailure(), ErrStorage) = false, want true")
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is(StorageFailure(), cause) = false, want true")
		}
		if !strings.Contains(err.Error(), "database is locked") {
			t.Errorf("Error() = %q, want it to include the cause", err.Error())
		}
	})

	t.Run("detail survives wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("get todo: %w", StorageFailure("Failed to fetch todo by ID", errors.New("boom")))

		detail, ok := Detail(err)
		if !ok {
			t.Fatal("Detail() ok = false, want true")
		}
		if detail != "Failed to fetch todo by ID" {
			t.Errorf("Detail() = %q, want %q", detail, "Failed to fetch todo by ID")
		}
	})

	t.Run("plain errors have no detail", func(t *testing.T) {
		t.Parallel()

		if _, ok := Detail(errors.New("boom")); ok {
			t.Error("Detail(plain error) ok = true, want false")
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrValidation", ErrValidation},
		{"ErrStorage", ErrStorage},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false", tt.name)
			}
		})
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
