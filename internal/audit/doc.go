// Package audit records identity changes made by gsw.
//
// Every command that changes which identity git uses (switch, local, auto,
// init) or changes the set of profiles (add, import, remove) appends one
// entry to a history log kept next to the profile store.
//
// # Log Format
//
// The log is JSON Lines (one JSON object per line) at:
//
//	<user config dir>/gswitch/history.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Operation name
//   - Profile name, and the email it applied
//   - Scope and repository root for identity changes
//
// # Failure Handling
//
// Recording is best-effort. Callers log a failed Log at debug level and carry
// on; no command fails because its history entry could not be written.
//
// # Reading Logs
//
// Use ReadEntries to parse the log for display. Malformed lines are skipped
// so a partially written final line does not hide the rest of the history.
package audit
