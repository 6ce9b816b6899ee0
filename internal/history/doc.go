// Package history persists one row per stage invocation in a SQLite ledger.
//
// The ledger is an operational record the orchestrator-facing stdout protocol
// does not depend on: stage outcome, exit codes, and result lines are
// unaffected when ledger writes fail. Writes retry on SQLITE_BUSY with
// exponential backoff, and destructive maintenance takes an exclusive file
// lock so it cannot race a concurrent stage invocation.
package history
