package workflows

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/HueCodes/Rust-Lock/internal/audit"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// ConfigPath is the explicit config file path. If empty, the path is
	// resolved from the environment and defaults.
	ConfigPath string

	// InputPath is the file to encrypt. "-" reads from stdin.
	InputPath string

	// ObjectName stores the object under this name. If empty, the input
	// filename is used.
	ObjectName string

	// Compress gzips the plaintext before sealing.
	Compress bool

	// Stream selects the chunked stream format instead of buffering the
	// whole input in memory.
	Stream bool

	// Logger receives structured progress output. Nil keeps the quiet
	// default.
	Logger *logrus.Logger
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// ObjectName is the logical name the object was stored under.
	ObjectName string

	// Bytes is the number of plaintext bytes consumed.
	Bytes uint64

	// Mode is "buffer" or "stream".
	Mode string

	// Compressed reports whether compression was requested for the write.
	Compressed bool

	// StorageDir is the storage root the object was written to.
	StorageDir string
}

// Encrypt stores a file (or stdin) as an encrypted object. Buffer mode
// seals the whole input as a single object; stream mode chunks it
// through the versioned stream format with the object name bound as
// associated data.
//
// Returns ErrInvalidConfig if the configuration is unusable.
// Returns ErrInvalidKeyLength if the key file is malformed.
// Returns ErrEncryptionFailed if compression or sealing fails.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	ops, config, err := openStore(opts.ConfigPath, opts.Compress, opts.Logger)
	if err != nil {
		return nil, err
	}

	name := opts.ObjectName
	if name == "" {
		name = filepath.Base(opts.InputPath)
	}

	result := &EncryptResult{
		ObjectName: name,
		Compressed: opts.Compress,
		StorageDir: config.StorageDir,
	}

	if opts.Stream {
		input, err := openInput(opts.InputPath)
		if err != nil {
			return nil, err
		}
		defer input.Close()

		written, err := ops.WriteEncryptedStream(name, input)
		if err != nil {
			return nil, err
		}
		result.Bytes = written
		result.Mode = "stream"
	} else {
		data, err := readInput(opts.InputPath)
		if err != nil {
			return nil, err
		}
		if err := ops.WriteEncrypted(name, data); err != nil {
			return nil, err
		}
		result.Bytes = uint64(len(data))
		result.Mode = "buffer"
	}

	entry := audit.NewEntry("encrypt")
	entry.Object = name
	entry.Bytes = result.Bytes
	entry.Mode = result.Mode
	entry.Compressed = result.Compressed
	audit.Log(config.StorageDir, entry)

	return result, nil
}
