package workflows

import (
	"context"
	"fmt"

	"github.com/HueCodes/Rust-Lock/internal/audit"
	"github.com/HueCodes/Rust-Lock/internal/configs"
	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
	"github.com/HueCodes/Rust-Lock/internal/securefs"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	// ConfigPath is the explicit config file path. If empty, the path is
	// resolved from the environment and defaults.
	ConfigPath string

	// ObjectName is the logical name of the object to delete.
	ObjectName string

	// DryRun verifies the object exists without deleting anything, so
	// callers can prompt for confirmation before committing.
	DryRun bool
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	// ObjectName is the logical name that was (or would be) deleted.
	ObjectName string

	// StorageDir is the storage root the object lives in.
	StorageDir string

	// DryRun echoes whether this was a verification-only pass.
	DryRun bool
}

// Remove deletes a stored object and its metadata sidecar. Removal needs
// no key material, so objects stay deletable even after the key is lost.
//
// Returns ErrInvalidConfig if the configuration is unusable.
// Returns ErrFileNotFound if no object has that name.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	config, err := configs.LoadWithEnv(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if !securefs.ObjectExists(config.StorageDir, opts.ObjectName) {
		return nil, fmt.Errorf("%w: %s", sferrors.ErrFileNotFound, opts.ObjectName)
	}

	result := &RemoveResult{
		ObjectName: opts.ObjectName,
		StorageDir: config.StorageDir,
		DryRun:     opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	if err := securefs.DeleteObject(config.StorageDir, opts.ObjectName); err != nil {
		return nil, err
	}

	entry := audit.NewEntry("remove")
	entry.Object = opts.ObjectName
	audit.Log(config.StorageDir, entry)

	return result, nil
}
