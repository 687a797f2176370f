package workflows

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/HueCodes/Rust-Lock/internal/configs"
	"github.com/HueCodes/Rust-Lock/internal/securefs"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// ConfigPath is the explicit config file path. If empty, the path is
	// resolved from the environment and defaults.
	ConfigPath string

	// Pattern filters object names with a glob, such as "*.pdf" or
	// "reports/**". Empty keeps everything.
	Pattern string
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// Files are the matching objects, sorted by name.
	Files []securefs.FileInfo

	// TotalStored counts every stored object before pattern filtering.
	TotalStored int
}

// List enumerates stored objects. Listing reads directory entries only,
// never key material, so it works even when the key file is absent.
//
// Returns ErrInvalidConfig if the configuration is unusable.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	config, err := configs.LoadWithEnv(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	files, err := securefs.ListObjects(config.StorageDir)
	if err != nil {
		return nil, err
	}

	result := &ListResult{TotalStored: len(files)}

	if opts.Pattern == "" {
		result.Files = files
		return result, nil
	}

	for _, file := range files {
		matched, err := doublestar.Match(opts.Pattern, file.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", opts.Pattern, err)
		}
		if matched {
			result.Files = append(result.Files, file)
		}
	}

	return result, nil
}
