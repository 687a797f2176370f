package securefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
)

// writeTestKey writes a deterministic 32-byte key for tests that need a
// stable cipher across KeyManager instances.
func writeTestKey(t *testing.T, path string) {
	t.Helper()
	key := bytes.Repeat([]byte{0x42}, KeySize)
	if err := os.WriteFile(path, key, 0600); err != nil {
		t.Fatalf("Failed to write test key: %v", err)
	}
}

func TestNewKeyManager_GeneratesKey(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "securefs-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	keyPath := filepath.Join(tmpDir, "securefs.key")
	if _, err := NewKeyManager(keyPath); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	info, err := os.Stat(keyPath)
	if err != nil {
		t.Fatalf("Expected key file to exist: %v", err)
	}
	if info.Size() != int64(KeySize) {
		t.Errorf("Expected %d-byte key file, got: %d", KeySize, info.Size())
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("Expected key file permissions 0600, got: %o", info.Mode().Perm())
	}
}

func TestNewKeyManager_LoadsExistingKey(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "securefs-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	keyPath := filepath.Join(tmpDir, "securefs.key")
	writeTestKey(t, keyPath)

	// Two managers over the same key file must derive the same cipher.
	km1, err := NewKeyManager(keyPath)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	km2, err := NewKeyManager(keyPath)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	plaintext := []byte("sealed by the first manager")
	sealed, err := NewEncryptor(km1.Cipher()).Encrypt(plaintext, nil)
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	opened, err := NewEncryptor(km2.Cipher()).Decrypt(sealed, nil)
	if err != nil {
		t.Fatalf("Failed to decrypt with second manager: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("Expected %q, got: %q", plaintext, opened)
	}
}

func TestNewKeyManager_RejectsInvalidKeyLength(t *testing.T) {
	lengths := []int{0, 16, 31, 33, 64}

	for _, length := range lengths {
		t.Run(fmt.Sprintf("%d bytes", length), func(t *testing.T) {
			tmpDir, err := os.MkdirTemp("", "securefs-test-*")
			if err != nil {
				t.Fatalf("Failed to create temp dir: %v", err)
			}
			defer os.RemoveAll(tmpDir)

			keyPath := filepath.Join(tmpDir, "bad.key")
			if err := os.WriteFile(keyPath, bytes.Repeat([]byte{0x42}, length), 0600); err != nil {
				t.Fatalf("Failed to write key file: %v", err)
			}

			_, err = NewKeyManager(keyPath)
			if err == nil {
				t.Fatalf("Expected error for %d-byte key, got nil", length)
			}
			if !errors.Is(err, sferrors.ErrInvalidKeyLength) {
				t.Errorf("Expected ErrInvalidKeyLength, got: %v", err)
			}
		})
	}
}

func TestNewKeyManager_CreatesKeyDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "securefs-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	keyPath := filepath.Join(tmpDir, "keys", "nested", "securefs.key")
	if _, err := NewKeyManager(keyPath); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("Expected key file in nested directory: %v", err)
	}
}

func TestNewKeyManager_GeneratedKeysDiffer(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "securefs-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	pathA := filepath.Join(tmpDir, "a.key")
	pathB := filepath.Join(tmpDir, "b.key")
	if _, err := NewKeyManager(pathA); err != nil {
		t.Fatalf("Failed to generate first key: %v", err)
	}
	if _, err := NewKeyManager(pathB); err != nil {
		t.Fatalf("Failed to generate second key: %v", err)
	}

	keyA, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatalf("Failed to read first key: %v", err)
	}
	keyB, err := os.ReadFile(pathB)
	if err != nil {
		t.Fatalf("Failed to read second key: %v", err)
	}
	if bytes.Equal(keyA, keyB) {
		t.Error("Expected independently generated keys to differ")
	}
}
