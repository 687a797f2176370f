// Package errors provides typed error values for the SecureFS application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: Master key material issues (ErrInvalidKeyLength, ErrKeyExists)
//   - Crypto errors: Seal/open failures (ErrEncryptionFailed, ErrDecryptionFailed)
//   - Storage errors: Object access issues (ErrFileNotFound, ErrTruncatedStream)
//   - Format errors: On-disk encoding issues (ErrUnsupportedVersion, ErrMalformedChunk)
//   - Config errors: Settings issues (ErrInvalidConfig, ErrConfigExists)
//
// Format errors and crypto errors stay distinct on purpose: a bad version
// byte or an oversized chunk header is a framing problem, not an
// authentication failure, and callers dispatch on the difference.
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(key) != KeySize {
//	    return nil, errors.ErrInvalidKeyLength
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, sferrors.ErrFileNotFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading object %s: %w", name, errors.ErrFileNotFound)
package errors
