package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDoctorPassesInHealthyEnvironment(t *testing.T) {
	configPath := writeTestConfig(t)

	stdout, err := runCLI(t, configPath, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, stdout)
	}
	for _, want := range []string{"Configuration:", "State directory:", "Free space:", "History ledger:"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in doctor output, got %q", want, stdout)
		}
	}
	if strings.Contains(stdout, "[ERROR]") {
		t.Fatalf("expected no errors, got %q", stdout)
	}
}

func TestDoctorFailsOnBadConfig(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	if err := writeFile(configPath, "[pipeline]\nrecord_count = 0\n"); err != nil {
		t.Fatal(err)
	}

	stdout, err := runCLI(t, configPath, "doctor")
	if err == nil {
		t.Fatalf("expected doctor failure, got output %q", stdout)
	}
	if !strings.Contains(stdout, "[ERROR]") {
		t.Fatalf("expected error status line, got %q", stdout)
	}
}

func TestShowPrettyPrintsArtifact(t *testing.T) {
	configPath := writeTestConfig(t)
	dir := t.TempDir()
	loaded := filepath.Join(dir, "loaded.json")

	if stdout, err := runCLI(t, configPath, "load", "seed.csv", loaded); err != nil {
		t.Fatalf("load: %v\n%s", err, stdout)
	}

	stdout, err := runCLI(t, configPath, "show", loaded)
	if err != nil {
		t.Fatalf("show: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, `"source_file"`) {
		t.Fatalf("expected artifact fields, got %q", stdout)
	}
}

func TestShowRejectsNonJSON(t *testing.T) {
	configPath := writeTestConfig(t)
	path := filepath.Join(t.TempDir(), "blob")
	if err := writeFile(path, "binary-ish"); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, configPath, "show", path); err == nil {
		t.Fatal("expected error for non-JSON artifact")
	}
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	configPath := writeTestConfig(t)

	stdout, err := runCLI(t, configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, stdout)
	}
	for _, want := range []string{"[paths]", "[pipeline]", "record_count = 100"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in config output, got %q", want, stdout)
		}
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	configPath := writeTestConfig(t)
	target := filepath.Join(t.TempDir(), "fresh", "config.toml")

	stdout, err := runCLI(t, configPath, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, stdout)
	}
	if _, err := runCLI(t, target, "config", "show"); err != nil {
		t.Fatalf("sample config should load: %v", err)
	}

	// Refuses to clobber without --overwrite.
	if _, err := runCLI(t, configPath, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
}
