package securefs

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
)

const (
	// ChunkSize is the plaintext chunk length for streaming encryption.
	// Balances memory usage against per-chunk nonce and tag overhead.
	ChunkSize = 64 * 1024

	// VersionV2Stream is the leading version byte of the chunked format.
	VersionV2Stream byte = 2
)

const flagCompressed byte = 0x01

// FormatFlags describe per-object options carried in the stream header.
type FormatFlags struct {
	Compressed bool
}

func (f FormatFlags) toByte() byte {
	var b byte
	if f.Compressed {
		b |= flagCompressed
	}
	return b
}

// flagsFromByte decodes a header flags byte. Reserved bits are ignored
// so future writers can set them without breaking current readers.
func flagsFromByte(b byte) FormatFlags {
	return FormatFlags{Compressed: b&flagCompressed != 0}
}

// StreamEncryptor seals and opens data in fixed-size chunks so objects
// larger than memory never need to be held whole.
type StreamEncryptor struct {
	aead cipher.AEAD
}

// NewStreamEncryptor wraps the shared AEAD for chunked stream operations.
func NewStreamEncryptor(aead cipher.AEAD) *StreamEncryptor {
	return &StreamEncryptor{aead: aead}
}

// maxSealedChunk is the largest ciphertext length a well-formed chunk
// header can carry: one full plaintext chunk plus the AEAD tag.
func (s *StreamEncryptor) maxSealedChunk() int {
	return ChunkSize + s.aead.Overhead()
}

// EncryptStream reads plaintext from r and writes the chunked stream
// format to w: a two-byte header of version and flags, then one record
// per chunk of nonce, big-endian ciphertext length, and ciphertext.
// Every chunk is sealed with a fresh random nonce and bound to aad.
// Returns the number of plaintext bytes consumed.
func (s *StreamEncryptor) EncryptStream(r io.Reader, w io.Writer, flags FormatFlags, aad []byte) (uint64, error) {
	if _, err := w.Write([]byte{VersionV2Stream, flags.toByte()}); err != nil {
		return 0, fmt.Errorf("failed to write stream header: %w", err)
	}

	buf := make([]byte, ChunkSize)
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	var total uint64
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if _, err := rand.Read(nonce); err != nil {
				return total, fmt.Errorf("%w: %v", sferrors.ErrEncryptionFailed, err)
			}
			sealed := s.aead.Seal(nil, nonce, buf[:n], aad)

			if _, err := w.Write(nonce); err != nil {
				return total, fmt.Errorf("failed to write chunk nonce: %w", err)
			}
			if err := binary.Write(w, binary.BigEndian, uint32(len(sealed))); err != nil {
				return total, fmt.Errorf("failed to write chunk length: %w", err)
			}
			if _, err := w.Write(sealed); err != nil {
				return total, fmt.Errorf("failed to write chunk data: %w", err)
			}
			total += uint64(n)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return total, fmt.Errorf("failed to read plaintext chunk: %w", readErr)
		}
	}

	return total, nil
}

// DecryptStream reads the chunked stream format from r, verifies each
// chunk against aad, and writes the recovered plaintext to w as it is
// authenticated. The chunk loop may end only at a record boundary, with
// EOF exactly where the next nonce would begin; EOF anywhere else
// reports ErrTruncatedStream. Returns the plaintext byte count and the
// header flags.
//
// Returns ErrUnsupportedVersion if the leading byte is not a known
// version, before anything else is read.
func (s *StreamEncryptor) DecryptStream(r io.Reader, w io.Writer, aad []byte) (uint64, FormatFlags, error) {
	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return 0, FormatFlags{}, fmt.Errorf("%w: missing version byte", sferrors.ErrTruncatedStream)
	}
	if version[0] != VersionV2Stream {
		return 0, FormatFlags{}, fmt.Errorf("%w: %d", sferrors.ErrUnsupportedVersion, version[0])
	}

	var rawFlags [1]byte
	if _, err := io.ReadFull(r, rawFlags[:]); err != nil {
		return 0, FormatFlags{}, fmt.Errorf("%w: missing flags byte", sferrors.ErrTruncatedStream)
	}
	flags := flagsFromByte(rawFlags[0])

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	var total uint64
	for {
		if _, err := io.ReadFull(r, nonce); err != nil {
			if err == io.EOF {
				// Clean end of stream at a record boundary.
				break
			}
			return total, flags, fmt.Errorf("%w: stream ended mid-nonce", sferrors.ErrTruncatedStream)
		}

		var chunkLen uint32
		if err := binary.Read(r, binary.BigEndian, &chunkLen); err != nil {
			return total, flags, fmt.Errorf("%w: stream ended before chunk length", sferrors.ErrTruncatedStream)
		}
		if chunkLen > uint32(s.maxSealedChunk()) {
			return total, flags, fmt.Errorf("%w: chunk length %d exceeds maximum %d",
				sferrors.ErrMalformedChunk, chunkLen, s.maxSealedChunk())
		}

		ciphertext := make([]byte, chunkLen)
		if _, err := io.ReadFull(r, ciphertext); err != nil {
			return total, flags, fmt.Errorf("%w: stream ended mid-chunk", sferrors.ErrTruncatedStream)
		}

		plaintext, err := s.aead.Open(nil, nonce, ciphertext, aad)
		if err != nil {
			return total, flags, fmt.Errorf("%w: %v", sferrors.ErrDecryptionFailed, err)
		}
		if _, err := w.Write(plaintext); err != nil {
			return total, flags, fmt.Errorf("failed to write plaintext chunk: %w", err)
		}
		total += uint64(len(plaintext))
	}

	return total, flags, nil
}
