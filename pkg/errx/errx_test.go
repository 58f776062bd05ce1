package errx_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/portalhq/jobboard/pkg/errx"
)

var testRegistry = errx.NewRegistry("TEST")

var codeMissing = testRegistry.Register("MISSING", errx.TypeNotFound, http.StatusNotFound, "thing not found")

func TestRegistryNew(t *testing.T) {
	err := testRegistry.New(codeMissing)
	if err.Code != "TEST.MISSING" {
		t.Errorf("Code = %s, want TEST.MISSING", err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("HTTPStatus = %d, want %d", err.HTTPStatus, http.StatusNotFound)
	}
	if err.Type != errx.TypeNotFound {
		t.Errorf("Type = %s, want %s", err.Type, errx.TypeNotFound)
	}
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	a := testRegistry.New(codeMissing).WithDetail("id", "42")
	b := testRegistry.New(codeMissing)
	if !errors.Is(a, b) {
		t.Error("two errors minted from the same code should match")
	}
}

func TestWithDetailDoesNotLeak(t *testing.T) {
	a := testRegistry.New(codeMissing).WithDetail("id", "first")
	b := testRegistry.New(codeMissing)
	if _, ok := b.Details["id"]; ok {
		t.Error("details from one minted error leaked into another")
	}
	if a.Details["id"] != "first" {
		t.Errorf("Details[id] = %v, want first", a.Details["id"])
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := errx.Wrap(cause, "failed to load thing", errx.TypeInternal)
	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("HTTPStatus = %d, want 500", err.HTTPStatus)
	}
	resp := err.ToHTTPResponse()
	if resp.Message != "failed to load thing" {
		t.Errorf("response message = %q, want the wrap message", resp.Message)
	}
}

func TestAsError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", testRegistry.New(codeMissing))
	e, ok := errx.AsError(wrapped)
	if !ok {
		t.Fatal("AsError should find the *Error in the chain")
	}
	if e.Code != "TEST.MISSING" {
		t.Errorf("Code = %s, want TEST.MISSING", e.Code)
	}
	if _, ok := errx.AsError(errors.New("plain")); ok {
		t.Error("AsError should not match a plain error")
	}
}
