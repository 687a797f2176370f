package workflows

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/HueCodes/Rust-Lock/internal/audit"
	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
)

func TestDecrypt_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	data := []byte("round trip through the workflows")
	encryptTestFile(t, store, "secret.txt", data)

	outputPath := filepath.Join(store.dir, "recovered.txt")
	result, err := Decrypt(context.Background(), DecryptOptions{
		ConfigPath: store.configPath,
		ObjectName: "secret.txt",
		OutputPath: outputPath,
	})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	if result.Bytes != uint64(len(data)) {
		t.Errorf("Expected %d bytes, got %d", len(data), result.Bytes)
	}
	if result.Mode != "buffer" {
		t.Errorf("Expected buffer mode, got %q", result.Mode)
	}
	if result.OutputPath != outputPath {
		t.Errorf("Expected output path %q, got %q", outputPath, result.OutputPath)
	}

	recovered, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !bytes.Equal(recovered, data) {
		t.Errorf("Expected %q, got %q", data, recovered)
	}
}

func TestDecrypt_StreamRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	data := []byte("streamed in, streamed out")
	inputPath := writeInputFile(t, store.dir, "streamed.txt", data)

	if _, err := Encrypt(context.Background(), EncryptOptions{
		ConfigPath: store.configPath,
		InputPath:  inputPath,
		Stream:     true,
	}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	outputPath := filepath.Join(store.dir, "streamed-out.txt")
	result, err := Decrypt(context.Background(), DecryptOptions{
		ConfigPath: store.configPath,
		ObjectName: "streamed.txt",
		OutputPath: outputPath,
		Stream:     true,
	})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if result.Mode != "stream" {
		t.Errorf("Expected stream mode, got %q", result.Mode)
	}

	recovered, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !bytes.Equal(recovered, data) {
		t.Errorf("Expected %q, got %q", data, recovered)
	}
}

// Format detection means the read mode never has to match the write mode.
func TestDecrypt_CrossModeReads(t *testing.T) {
	store := setupTestStore(t)
	bufferData := []byte("written in buffer mode")
	streamData := []byte("written in stream mode")

	encryptTestFile(t, store, "buffered.txt", bufferData)
	inputPath := writeInputFile(t, store.dir, "chunked.txt", streamData)
	if _, err := Encrypt(context.Background(), EncryptOptions{
		ConfigPath: store.configPath,
		InputPath:  inputPath,
		Stream:     true,
	}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	t.Run("stream read of buffer object", func(t *testing.T) {
		outputPath := filepath.Join(store.dir, "cross1.txt")
		if _, err := Decrypt(context.Background(), DecryptOptions{
			ConfigPath: store.configPath,
			ObjectName: "buffered.txt",
			OutputPath: outputPath,
			Stream:     true,
		}); err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		recovered, _ := os.ReadFile(outputPath)
		if !bytes.Equal(recovered, bufferData) {
			t.Errorf("Expected %q, got %q", bufferData, recovered)
		}
	})

	t.Run("buffer read of stream object", func(t *testing.T) {
		outputPath := filepath.Join(store.dir, "cross2.txt")
		if _, err := Decrypt(context.Background(), DecryptOptions{
			ConfigPath: store.configPath,
			ObjectName: "chunked.txt",
			OutputPath: outputPath,
		}); err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		recovered, _ := os.ReadFile(outputPath)
		if !bytes.Equal(recovered, streamData) {
			t.Errorf("Expected %q, got %q", streamData, recovered)
		}
	})
}

func TestDecrypt_CompressedRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	data := bytes.Repeat([]byte("compress me "), 100)
	inputPath := writeInputFile(t, store.dir, "zipped.txt", data)

	if _, err := Encrypt(context.Background(), EncryptOptions{
		ConfigPath: store.configPath,
		InputPath:  inputPath,
		Compress:   true,
	}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	outputPath := filepath.Join(store.dir, "unzipped.txt")
	result, err := Decrypt(context.Background(), DecryptOptions{
		ConfigPath: store.configPath,
		ObjectName: "zipped.txt",
		OutputPath: outputPath,
		Compress:   true,
	})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !result.Compressed {
		t.Error("Expected compressed result")
	}

	recovered, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !bytes.Equal(recovered, data) {
		t.Error("Round trip mismatch")
	}
}

func TestDecrypt_MissingObject(t *testing.T) {
	store := setupTestStore(t)

	_, err := Decrypt(context.Background(), DecryptOptions{
		ConfigPath: store.configPath,
		ObjectName: "missing.txt",
		OutputPath: filepath.Join(store.dir, "out.txt"),
	})
	if !errors.Is(err, sferrors.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got: %v", err)
	}
}

func TestDecrypt_RecordsAuditEntry(t *testing.T) {
	store := setupTestStore(t)
	encryptTestFile(t, store, "trail.txt", []byte("leave a trail"))

	outputPath := filepath.Join(store.dir, "trail-out.txt")
	if _, err := Decrypt(context.Background(), DecryptOptions{
		ConfigPath: store.configPath,
		ObjectName: "trail.txt",
		OutputPath: outputPath,
	}); err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	entries, err := audit.ReadEntries(store.storageDir)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected init, encrypt, decrypt entries, got %d", len(entries))
	}
	entry := entries[2]
	if entry.Operation != "decrypt" {
		t.Errorf("Expected decrypt entry, got %q", entry.Operation)
	}
	if entry.OutputPath != outputPath {
		t.Errorf("Expected output path recorded, got %q", entry.OutputPath)
	}
}
