package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"datapipe/internal/preflight"
)

func TestCheckStateDirCreatesAndPasses(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	result := preflight.CheckStateDir(dir)
	if !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected directory created: %v", err)
	}
}

func TestCheckStateDirFailsOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := preflight.CheckStateDir(path); result.Passed {
		t.Fatalf("expected failure for file path, got %+v", result)
	}
}

func TestCheckFreeSpace(t *testing.T) {
	result := preflight.CheckFreeSpace(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
	if result.Detail == "" {
		t.Fatal("expected detail with available space")
	}
}

func TestCheckHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	result := preflight.CheckHistory(true, path)
	if !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
}

func TestCheckHistoryDisabledWarns(t *testing.T) {
	result := preflight.CheckHistory(false, "")
	if !result.Passed || !result.Warning {
		t.Fatalf("expected warning pass, got %+v", result)
	}
}
