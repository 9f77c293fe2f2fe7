package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
)

func TestNotFoundMessage(t *testing.T) {
	err := apperr.NotFound("question", "q-123")
	if got, want := err.Error(), "question q-123 not found"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestValidationMessageWithAndWithoutField(t *testing.T) {
	withField := apperr.Invalid("notes", "must not be empty")
	if got, want := withField.Error(), "notes: must not be empty"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	bare := apperr.Invalid("", "question text is required")
	if got, want := bare.Error(), "question text is required"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"not found", apperr.NotFound("session", "s1"), apperr.IsNotFound},
		{"validation", apperr.Invalid("text", "required"), apperr.IsValidation},
		{"conflict", apperr.Conflict("session already completed"), apperr.IsConflict},
		{"storage", apperr.Storage("insert attempt", errors.New("connection reset")), apperr.IsStorage},
		{"generation", apperr.Generation("unparsable output", nil), apperr.IsGeneration},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("failed to record attempt: %w", tc.err)
		if !tc.pred(wrapped) {
			t.Errorf("%s: predicate did not match wrapped error", tc.name)
		}
		if tc.pred(errors.New("unrelated")) {
			t.Errorf("%s: predicate matched an unrelated error", tc.name)
		}
	}
}

func TestStorageUnwrap(t *testing.T) {
	cause := errors.New("write conflict")
	err := apperr.Storage("update question", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestGenerationMessage(t *testing.T) {
	plain := apperr.Generation("empty response", nil)
	if got, want := plain.Error(), "generation: empty response"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	wrapped := apperr.Generation("provider call failed", errors.New("timeout"))
	if got, want := wrapped.Error(), "generation: provider call failed: timeout"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
