package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	ID        string `json:"id"` // Random identifier for the entry.
	Operation string `json:"op"` // Operation name.

	// Optional fields depending on operation.
	Object     string `json:"object,omitempty"`      // For encrypt/decrypt/remove.
	Bytes      uint64 `json:"bytes,omitempty"`       // Plaintext size for encrypt/decrypt.
	Mode       string `json:"mode,omitempty"`        // buffer or stream.
	Compressed bool   `json:"compressed,omitempty"`  // For encrypt.
	OutputPath string `json:"output_path,omitempty"` // For decrypt to a file.
	KeyPath    string `json:"key_path,omitempty"`    // For init.
	StorageDir string `json:"storage_dir,omitempty"` // For init.
}

// NewEntry starts an entry for op with a fresh random identifier.
func NewEntry(op string) Entry {
	return Entry{ID: uuid.NewString(), Operation: op}
}

// Log appends an entry to the audit log under the storage root.
// If logging fails, the entry is dropped. Operations should not fail
// just because audit logging failed.
func Log(storageRoot string, entry Entry) {
	if storageRoot == "" {
		return
	}

	// Set timestamp and ID if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	logPath := LogPath(storageRoot)
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	// #nosec G306 -- the audit log records names and sizes, not contents.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file under the storage root.
// The log lives in a subdirectory so object listings never include it.
func LogPath(storageRoot string) string {
	if storageRoot == "" {
		return ""
	}
	return filepath.Join(storageRoot, ".securefs", "audit.jsonl")
}

// ReadEntries reads all entries from the audit log under the storage
// root. Returns an empty slice if the log doesn't exist.
func ReadEntries(storageRoot string) ([]Entry, error) {
	logPath := LogPath(storageRoot)
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
