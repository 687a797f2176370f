// Package audit provides audit trail logging for SecureFS operations.
//
// Every operation that changes or reveals stored data (init, encrypt,
// decrypt, remove) is recorded in a per-store audit log, so the history
// of an encrypted store can be reconstructed later.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	<storage-root>/.securefs/audit.jsonl
//
// The subdirectory keeps the log out of object listings. Each entry
// contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - A random entry identifier
//   - Operation name
//   - Operation-specific details (object name, byte counts, mode)
//
// # Usage
//
// Create an entry and record it against the storage root:
//
//	entry := audit.NewEntry("encrypt")
//	entry.Object = name
//	entry.Bytes = written
//	audit.Log(storageDir, entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. Operations should never
// fail just because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
