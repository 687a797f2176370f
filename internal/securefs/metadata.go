package securefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileMetadata is the plaintext sidecar recorded beside every stored
// object. It exists so listings can show original sizes without
// decrypting anything; losing a sidecar never blocks decryption.
type FileMetadata struct {
	Filename string `json:"filename"`
	Size     uint64 `json:"size"`
}

// metadataPath maps an object path to its sidecar path by replacing the
// last extension: notes.txt becomes notes.meta.json, and an object with
// no extension gains the suffix whole.
func metadataPath(objectPath string) string {
	return strings.TrimSuffix(objectPath, filepath.Ext(objectPath)) + ".meta.json"
}

// recordMetadata writes the pretty-printed sidecar for the object at
// objectPath, recording its plaintext size.
func recordMetadata(objectPath string, size uint64) error {
	meta := FileMetadata{
		Filename: filepath.Base(objectPath),
		Size:     size,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata for %s: %w", meta.Filename, err)
	}

	// #nosec G306 -- Sidecars hold only the name and size, nothing sensitive.
	if err := os.WriteFile(metadataPath(objectPath), data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata for %s: %w", meta.Filename, err)
	}
	return nil
}
