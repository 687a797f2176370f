package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/HueCodes/Rust-Lock/internal/audit"
	"github.com/HueCodes/Rust-Lock/internal/configs"
	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
	"github.com/HueCodes/Rust-Lock/internal/securefs"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// ConfigPath is where the config file is written. If empty, the path
	// is resolved from the environment and defaults.
	ConfigPath string

	// KeyPath is where the master key is generated.
	KeyPath string

	// StorageDir is the directory encrypted objects are stored in.
	StorageDir string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// ConfigPath is the config file that was written.
	ConfigPath string

	// KeyPath is the key file that was generated.
	KeyPath string

	// StorageDir is the storage directory that was created.
	StorageDir string

	// Warnings lists advisory problems with the chosen paths, such as a
	// key stored under a public directory.
	Warnings []string
}

// Init creates the configuration file, storage directory, and master key
// for a new store. It refuses to overwrite existing state: a store that
// has already been initialized keeps its key.
//
// Returns ErrInvalidConfig if the requested paths are empty.
// Returns ErrConfigExists if a config file is already present.
// Returns ErrKeyExists if a key file is already present.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	configPath := configs.ResolveConfigPath(opts.ConfigPath)

	config := &configs.Config{
		KeyPath:    opts.KeyPath,
		StorageDir: opts.StorageDir,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("%w: %s", sferrors.ErrConfigExists, configPath)
	}
	if _, err := os.Stat(config.KeyPath); err == nil {
		return nil, fmt.Errorf("%w: %s", sferrors.ErrKeyExists, config.KeyPath)
	}

	if err := os.MkdirAll(config.StorageDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", config.StorageDir, err)
	}

	if _, err := securefs.NewKeyManager(config.KeyPath); err != nil {
		return nil, err
	}

	// A freshly generated key guards no data yet, so it is safe to remove
	// if the config write fails and leave the store uninitialized.
	if err := config.SaveTo(configPath); err != nil {
		os.Remove(config.KeyPath)
		return nil, fmt.Errorf("failed to write config to %s: %w", configPath, err)
	}

	entry := audit.NewEntry("init")
	entry.KeyPath = config.KeyPath
	entry.StorageDir = config.StorageDir
	audit.Log(config.StorageDir, entry)

	return &InitResult{
		ConfigPath: configPath,
		KeyPath:    config.KeyPath,
		StorageDir: config.StorageDir,
		Warnings:   config.Warnings(),
	}, nil
}
