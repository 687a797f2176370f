package securefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
)

func TestMetadataPath(t *testing.T) {
	tests := []struct {
		name       string
		objectPath string
		want       string
	}{
		{"replaces extension", "/store/report.pdf", "/store/report.meta.json"},
		{"no extension gains suffix", "/store/notes", "/store/notes.meta.json"},
		{"only last extension is replaced", "/store/archive.tar.gz", "/store/archive.tar.meta.json"},
		{"dotfile keeps its name", "/store/.env.backup", "/store/.env.meta.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metadataPath(tt.objectPath); got != tt.want {
				t.Errorf("Expected %q, got: %q", tt.want, got)
			}
		})
	}
}

func TestRecordMetadata(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "securefs-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	objectPath := filepath.Join(tmpDir, "report.pdf")
	if err := recordMetadata(objectPath, 12345); err != nil {
		t.Fatalf("Failed to record metadata: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "report.meta.json"))
	if err != nil {
		t.Fatalf("Failed to read sidecar: %v", err)
	}

	var meta FileMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("Failed to parse sidecar: %v", err)
	}
	if meta.Filename != "report.pdf" {
		t.Errorf("Expected filename report.pdf, got: %q", meta.Filename)
	}
	if meta.Size != 12345 {
		t.Errorf("Expected size 12345, got: %d", meta.Size)
	}
}

func TestGetMetadata_MalformedSidecar(t *testing.T) {
	ops, storageDir := setupTestOps(t)

	if err := os.MkdirAll(storageDir, 0700); err != nil {
		t.Fatalf("Failed to create storage dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(storageDir, "broken.meta.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write sidecar: %v", err)
	}

	if _, err := ops.GetMetadata("broken.txt"); !errors.Is(err, sferrors.ErrMalformedMetadata) {
		t.Errorf("Expected ErrMalformedMetadata, got: %v", err)
	}
}
