package services_test

import (
	"errors"
	"os"
	"testing"

	"datapipe/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	err := services.Wrap(services.ErrFormat, "process", "parse input", "malformed JSON", os.ErrInvalid)
	if !errors.Is(err, services.ErrFormat) {
		t.Fatalf("expected format marker, got %v", err)
	}
	if !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestWrapNilMarkerFallsBackToInternal(t *testing.T) {
	err := services.Wrap(nil, "load", "write dataset", "", nil)
	if !errors.Is(err, services.ErrInternal) {
		t.Fatalf("expected internal marker, got %v", err)
	}
}

func TestDetailsStripsMarkerPrefix(t *testing.T) {
	err := services.Wrap(services.ErrInput, "analyze", "stat input", "", os.ErrNotExist)
	details := services.Details(err)
	if details.Kind != "input" {
		t.Fatalf("unexpected kind: %q", details.Kind)
	}
	want := "analyze: stat input: " + os.ErrNotExist.Error()
	if details.Message != want {
		t.Fatalf("unexpected message: got %q want %q", details.Message, want)
	}
}

func TestDetailsNil(t *testing.T) {
	if d := services.Details(nil); d.Kind != "" || d.Message != "" {
		t.Fatalf("expected zero detail, got %+v", d)
	}
}
