// Package services defines shared utilities consumed by the pipeline stage
// handlers and the CLI layer.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs and stage names for logging and
//     history correlation.
//   - Structured error markers plus the Wrap helper that tag failures with a
//     kind (usage, input, output, format) while keeping a human-readable
//     message for the stage error line.
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay uniform across the pipeline.
package services
