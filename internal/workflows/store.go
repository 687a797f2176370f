package workflows

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/HueCodes/Rust-Lock/internal/configs"
	"github.com/HueCodes/Rust-Lock/internal/securefs"
	"github.com/HueCodes/Rust-Lock/internal/utils"
)

// openStore resolves configuration, prepares the master key, and builds
// the storage façade that encrypt and decrypt operate through. The key
// file is generated on first use, so only workflows that genuinely need
// key material should call this.
func openStore(configPath string, compress bool, log *logrus.Logger) (*securefs.SecureFileOps, *configs.Config, error) {
	config, err := configs.LoadWithEnv(configPath)
	if err != nil {
		return nil, nil, err
	}

	keyManager, err := securefs.NewKeyManager(config.KeyPath)
	if err != nil {
		return nil, nil, err
	}

	ops := securefs.NewSecureFileOps(keyManager, config.StorageDir).
		WithCompression(compress).
		WithLogger(log)
	return ops, config, nil
}

// openInput opens the named file for streaming reads. "-" means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	return file, nil
}

// readInput loads the named file whole. "-" means stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return utils.ReadStdin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return data, nil
}
