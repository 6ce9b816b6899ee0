// Package logging assembles the structured slog loggers used across datapipe.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so stage code automatically tags
// log lines with stage names and run IDs. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Structured logs never share a writer with the stage stdout protocol; the
// result and error lines the orchestrator parses are emitted separately.
package logging
