package securefs

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/crypto/chacha20poly1305"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
)

// Encryptor seals and opens whole buffers in the single-shot object
// format: a random 24-byte nonce followed by the AEAD ciphertext.
type Encryptor struct {
	aead cipher.AEAD
}

// NewEncryptor wraps the shared AEAD for buffer-mode operations.
func NewEncryptor(aead cipher.AEAD) *Encryptor {
	return &Encryptor{aead: aead}
}

// Encrypt seals plaintext bound to aad and returns nonce||ciphertext.
// A nil aad is valid and binds nothing.
func (e *Encryptor) Encrypt(plaintext, aad []byte) ([]byte, error) {
	nonce := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(plaintext)+e.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", sferrors.ErrEncryptionFailed, err)
	}
	return e.aead.Seal(nonce, nonce, plaintext, aad), nil
}

// Decrypt opens data produced by Encrypt under the same aad.
//
// Returns ErrDecryptionFailed for any short, tampered, or mismatched
// input. Callers cannot distinguish a wrong key from a modified object.
func (e *Encryptor) Decrypt(data, aad []byte) ([]byte, error) {
	if len(data) < chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("%w: input shorter than nonce", sferrors.ErrDecryptionFailed)
	}
	nonce, ciphertext := data[:chacha20poly1305.NonceSizeX], data[chacha20poly1305.NonceSizeX:]

	plaintext, err := e.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sferrors.ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// EncryptCompressed gzips plaintext and seals the compressed bytes.
func (e *Encryptor) EncryptCompressed(plaintext, aad []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(plaintext); err != nil {
		return nil, fmt.Errorf("%w: compression failed: %v", sferrors.ErrEncryptionFailed, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: compression failed: %v", sferrors.ErrEncryptionFailed, err)
	}
	return e.Encrypt(buf.Bytes(), aad)
}

// DecryptCompressed opens data and gunzips the verified plaintext. A
// decompression failure after successful authentication means the object
// was written without compression, so it reports ErrDecryptionFailed
// like any other mode mismatch.
func (e *Encryptor) DecryptCompressed(data, aad []byte) ([]byte, error) {
	compressed, err := e.Decrypt(data, aad)
	if err != nil {
		return nil, err
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: decompression failed: %v", sferrors.ErrDecryptionFailed, err)
	}
	defer zr.Close()

	plaintext, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: decompression failed: %v", sferrors.ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
