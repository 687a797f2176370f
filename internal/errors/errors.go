package errors

import "errors"

// Key errors indicate problems with the master key material.
var (
	// ErrInvalidKeyLength indicates the key file does not hold exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrKeyExists indicates a key file is already present at the target path.
	ErrKeyExists = errors.New("key file already exists")
)

// Cryptographic errors indicate failures while sealing or opening data.
var (
	// ErrEncryptionFailed indicates plaintext could not be compressed or sealed.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed indicates sealed data could not be authenticated or decompressed.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Storage errors indicate issues reading or writing encrypted objects.
var (
	// ErrFileNotFound indicates the named object does not exist in storage.
	ErrFileNotFound = errors.New("file not found in storage")

	// ErrEmptyObject indicates the stored object has zero length.
	ErrEmptyObject = errors.New("encrypted file is empty")

	// ErrTruncatedStream indicates an encrypted stream ended partway through a chunk record.
	ErrTruncatedStream = errors.New("truncated encrypted stream")

	// ErrMetadataNotFound indicates the metadata sidecar could not be located.
	ErrMetadataNotFound = errors.New("metadata not found")

	// ErrAuditLogNotFound indicates no audit log has been written yet.
	ErrAuditLogNotFound = errors.New("audit log not found")
)

// Format errors indicate malformed or unsupported on-disk encodings.
var (
	// ErrUnsupportedVersion indicates an unrecognized stream format version byte.
	ErrUnsupportedVersion = errors.New("unsupported file format version")

	// ErrMalformedChunk indicates a chunk header carries an impossible length.
	ErrMalformedChunk = errors.New("malformed chunk")

	// ErrMalformedMetadata indicates the metadata sidecar could not be parsed.
	ErrMalformedMetadata = errors.New("malformed metadata")
)

// Configuration errors indicate invalid or conflicting settings.
var (
	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigExists indicates a configuration file is already present at the target path.
	ErrConfigExists = errors.New("configuration file already exists")

	// ErrInvalidDateFormat indicates a date filter could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
