package securefs

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
)

// KeySize is the required master key length in bytes.
const KeySize = chacha20poly1305.KeySize

// KeyManager owns the master key lifecycle. It loads or generates the key
// file and derives the one AEAD shared by every encryption engine.
type KeyManager struct {
	aead cipher.AEAD
}

// NewKeyManager loads the key stored at keyPath, or generates and
// persists a fresh one when no file exists. The raw key bytes are wiped
// as soon as the cipher has been derived.
//
// Returns ErrInvalidKeyLength if an existing key file does not hold
// exactly KeySize bytes.
func NewKeyManager(keyPath string) (*KeyManager, error) {
	key, err := loadOrGenerateKey(keyPath)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(key)
	zeroBytes(key)
	if err != nil {
		return nil, fmt.Errorf("failed to derive cipher from key: %w", err)
	}

	return &KeyManager{aead: aead}, nil
}

// Cipher returns the AEAD derived from the master key. It is stateless
// and safe for concurrent use.
func (km *KeyManager) Cipher() cipher.AEAD {
	return km.aead
}

func loadOrGenerateKey(keyPath string) ([]byte, error) {
	_, err := os.Stat(keyPath)
	switch {
	case err == nil:
		return loadKey(keyPath)
	case errors.Is(err, fs.ErrNotExist):
		return generateKey(keyPath)
	default:
		return nil, fmt.Errorf("failed to check key file at %s: %w", keyPath, err)
	}
}

func loadKey(keyPath string) ([]byte, error) {
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file at %s: %w", keyPath, err)
	}
	if len(key) != KeySize {
		zeroBytes(key)
		return nil, fmt.Errorf("%w: expected %d-byte key at %s but found %d bytes",
			sferrors.ErrInvalidKeyLength, KeySize, keyPath, len(key))
	}
	return key, nil
}

func generateKey(keyPath string) ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key material: %w", err)
	}

	if dir := filepath.Dir(keyPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create key directory %s: %w", dir, err)
		}
	}

	// O_EXCL so a concurrent generator cannot silently clobber the key.
	f, err := os.OpenFile(keyPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to create key file at %s: %w", keyPath, err)
	}
	if _, err := f.Write(key); err != nil {
		f.Close()
		zeroBytes(key)
		return nil, fmt.Errorf("failed to write key file at %s: %w", keyPath, err)
	}
	if err := f.Close(); err != nil {
		zeroBytes(key)
		return nil, fmt.Errorf("failed to close key file at %s: %w", keyPath, err)
	}

	return key, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
