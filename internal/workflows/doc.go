// Package workflows provides high-level orchestration for SecureFS commands.
//
// Workflows coordinate multiple operations across packages (configs,
// securefs, audit) to implement complete user-facing features. Each
// workflow handles a single command's business logic, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Resolving configuration (flags, environment, defaults)
//   - Preparing the master key and storage façade
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
// Each command has a corresponding workflow:
//
//   - Init: Creates the config file, storage directory, and master key
//   - Encrypt: Stores a file or stdin as an encrypted object
//   - Decrypt: Recovers an object's plaintext to a file or stdout
//   - List: Enumerates stored objects, optionally filtered by glob
//   - Remove: Deletes an object and its metadata sidecar
//   - Status: Reports resolved configuration and storage statistics
//   - Log: Reads and filters the audit trail
//
// Only Init, Encrypt, and Decrypt touch the master key. List, Remove,
// Status, and Log operate on storage alone, so they keep working when
// the key file is unavailable and never create one as a side effect.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, sferrors.ErrFileNotFound) {
//	    // Show user-friendly "no such object" message
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// This enables cancellation, timeouts, and passing request-scoped values.
package workflows
