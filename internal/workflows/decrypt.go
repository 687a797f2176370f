package workflows

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/HueCodes/Rust-Lock/internal/audit"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// ConfigPath is the explicit config file path. If empty, the path is
	// resolved from the environment and defaults.
	ConfigPath string

	// ObjectName is the logical name of the object to read.
	ObjectName string

	// OutputPath receives the plaintext. If empty, plaintext goes to
	// stdout.
	OutputPath string

	// Compress tells legacy single-shot reads to expect a compressed
	// payload. Stream-format objects carry their own compression flag and
	// ignore this.
	Compress bool

	// Stream decrypts incrementally into the output instead of buffering
	// the whole plaintext.
	Stream bool

	// Logger receives structured progress output. Nil keeps the quiet
	// default.
	Logger *logrus.Logger
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// ObjectName is the logical name that was read.
	ObjectName string

	// OutputPath is where the plaintext was written. Empty means stdout.
	OutputPath string

	// Bytes is the number of plaintext bytes recovered.
	Bytes uint64

	// Compressed reports whether the stored object was compressed. For
	// stream-format objects this comes from the header; for legacy
	// objects it echoes the requested setting.
	Compressed bool

	// Mode is "buffer" or "stream".
	Mode string
}

// Decrypt recovers an object's plaintext. The stored format is detected
// from the object itself, so legacy single-shot objects and chunked
// stream objects read the same way.
//
// Returns ErrFileNotFound if no object has that name.
// Returns ErrEmptyObject if the stored object has zero length.
// Returns ErrDecryptionFailed if authentication or decompression fails.
// Returns ErrUnsupportedVersion if the stream version byte is unknown.
// Returns ErrTruncatedStream if a stream object ends mid-record.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	ops, config, err := openStore(opts.ConfigPath, opts.Compress, opts.Logger)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if opts.OutputPath != "" {
		// #nosec G306 -- decrypted output belongs to the user, not the store.
		file, err := os.OpenFile(opts.OutputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file %s: %w", opts.OutputPath, err)
		}
		defer file.Close()
		out = file
	}

	result := &DecryptResult{
		ObjectName: opts.ObjectName,
		OutputPath: opts.OutputPath,
	}

	if opts.Stream {
		read, compressed, err := ops.ReadEncryptedStreamAuto(opts.ObjectName, out)
		if err != nil {
			return nil, err
		}
		result.Bytes = read
		result.Compressed = compressed
		result.Mode = "stream"
	} else {
		plaintext, compressed, err := ops.ReadEncryptedAuto(opts.ObjectName)
		if err != nil {
			return nil, err
		}
		if _, err := out.Write(plaintext); err != nil {
			return nil, fmt.Errorf("failed to write plaintext: %w", err)
		}
		result.Bytes = uint64(len(plaintext))
		result.Compressed = compressed
		result.Mode = "buffer"
	}

	entry := audit.NewEntry("decrypt")
	entry.Object = opts.ObjectName
	entry.Bytes = result.Bytes
	entry.Mode = result.Mode
	entry.Compressed = result.Compressed
	entry.OutputPath = opts.OutputPath
	audit.Log(config.StorageDir, entry)

	return result, nil
}
