package oaserrors

import (
	"errors"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "bad document"}
		if !errors.Is(err, ErrParse) {
			t.Error("expected errors.Is(err, ErrParse) to be true")
		}
		if errors.Is(err, ErrReference) {
			t.Error("expected errors.Is(err, ErrReference) to be false")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := &ParseError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("expected errors.Is to find the cause through Unwrap")
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message for missing reference", func(t *testing.T) {
		err := &ReferenceError{
			Ref:     "#/components/schemas/Pet",
			Message: "not found",
		}
		if err.Error() != "reference error: #/components/schemas/Pet: not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for circular reference", func(t *testing.T) {
		err := &ReferenceError{
			Ref:        "#/components/schemas/Node",
			IsCircular: true,
		}
		if err.Error() != "circular reference: #/components/schemas/Node" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrReference", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/Pet"}
		if !errors.Is(err, ErrReference) {
			t.Error("expected errors.Is(err, ErrReference) to be true")
		}
		if errors.Is(err, ErrCircularReference) {
			t.Error("non-circular error should not match ErrCircularReference")
		}
	})

	t.Run("Is matches ErrCircularReference when flagged", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/Node", IsCircular: true}
		if !errors.Is(err, ErrCircularReference) {
			t.Error("expected errors.Is(err, ErrCircularReference) to be true")
		}
		if !errors.Is(err, ErrReference) {
			t.Error("circular error should still match ErrReference")
		}
	})
}

func TestResourceLimitError(t *testing.T) {
	t.Run("Error message with limit and actual", func(t *testing.T) {
		err := &ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        32,
			Actual:       33,
			Message:      "reference chain too long",
		}
		want := "resource limit exceeded: ref_depth (limit: 32, actual: 33): reference chain too long"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrResourceLimit", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "file_size"}
		if !errors.Is(err, ErrResourceLimit) {
			t.Error("expected errors.Is(err, ErrResourceLimit) to be true")
		}
	})
}
