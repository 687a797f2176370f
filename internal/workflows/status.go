package workflows

import (
	"context"
	"os"

	"github.com/HueCodes/Rust-Lock/internal/configs"
	"github.com/HueCodes/Rust-Lock/internal/securefs"
)

// StatusOptions configures the status workflow.
type StatusOptions struct {
	// ConfigPath is the explicit config file path. If empty, the path is
	// resolved from the environment and defaults.
	ConfigPath string
}

// StatusResult contains the resolved configuration and storage statistics.
type StatusResult struct {
	// ConfigPath is the config file the settings came from.
	ConfigPath string

	// KeyPath is the configured master key location.
	KeyPath string

	// StorageDir is the configured storage root.
	StorageDir string

	// KeyPresent reports whether a key file exists at KeyPath.
	KeyPresent bool

	// TotalFiles counts the stored objects.
	TotalFiles int

	// TotalBytes sums the encrypted on-disk sizes of all stored objects.
	TotalBytes uint64

	// WithMetadata counts objects that have a metadata sidecar.
	WithMetadata int

	// Warnings lists advisory problems with the configured paths.
	Warnings []string
}

// Status reports the resolved configuration and storage statistics.
// Unlike encrypt and decrypt, it never constructs a key manager, so a
// missing key file is reported as missing instead of being generated as
// a side effect of asking.
//
// Status requires an existing config file. A missing one surfaces as an
// fs.ErrNotExist so callers can suggest running init.
//
// Returns ErrInvalidConfig if the configuration is unusable.
func Status(ctx context.Context, opts StatusOptions) (*StatusResult, error) {
	configPath := configs.ResolveConfigPath(opts.ConfigPath)

	// Pick up legacy JSON configs so status works mid-migration.
	if _, err := configs.MigrateLegacyConfig(configPath); err != nil {
		return nil, err
	}

	config, err := configs.Load(configPath)
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		ConfigPath: configPath,
		KeyPath:    config.KeyPath,
		StorageDir: config.StorageDir,
		Warnings:   config.Warnings(),
	}

	if _, err := os.Stat(config.KeyPath); err == nil {
		result.KeyPresent = true
	}

	files, err := securefs.ListObjects(config.StorageDir)
	if err != nil {
		return nil, err
	}

	result.TotalFiles = len(files)
	for _, file := range files {
		result.TotalBytes += file.Size
		if file.HasMetadata {
			result.WithMetadata++
		}
	}

	return result, nil
}
