package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapMessage(t *testing.T) {
	if got := Wrap(CodeInvalidInput, "query cannot be empty", nil).Error(); got != "query cannot be empty" {
		t.Fatalf("unexpected message %q", got)
	}
	cause := errors.New("boom")
	err := Wrap(CodeFAQ, "lookup failed", cause)
	if got := err.Error(); got != "lookup failed: boom" {
		t.Fatalf("unexpected message %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Wrap(CodeInvalidInput, "bad", nil))
	if !IsCode(wrapped, CodeInvalidInput) {
		t.Fatalf("expected invalid_input code through wrapping")
	}
	if got := CodeOf(errors.New("plain")); got != CodeInternal {
		t.Fatalf("expected internal code got %q", got)
	}
	if IsCode(nil, CodeFAQ) {
		t.Fatalf("nil error has no code")
	}
}
