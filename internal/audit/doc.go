// Package audit keeps a journal of what kitlog emitted.
//
// When auditing is enabled, every emitted log line, every command run
// through `kitlog exec` and every failed assertion is appended to a
// journal so a deployment can be reconstructed afterwards.
//
// # Log Format
//
// The journal is JSON Lines (one JSON object per line), by default at:
//
//	$XDG_DATA_HOME/kitlog/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Run ID (a UUID shared by all entries of one kitlog process)
//   - User and host
//   - Operation name and logger prefix
//   - Operation-specific details (message, command, exit code)
//
// # Failure Handling
//
// Audit logging is best-effort. If writing fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// ReadEntries parses the journal. Malformed entries are skipped to handle
// partial writes. FilterByOperation narrows entries with a glob pattern.
package audit
