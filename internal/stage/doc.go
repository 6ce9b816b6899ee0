// Package stage defines the contract pipeline stages implement and the
// one-shot execution helper shared by the stage commands.
//
// Run owns the externally observed protocol: the final `TAG_RESULT: <json>`
// stdout line on success, the `Error <context>: <message>` line on failure,
// and best-effort recording of every invocation in the history ledger.
// Handlers stay free of protocol concerns and return typed errors tagged
// with services markers.
package stage
