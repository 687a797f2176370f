// Package utils provides shared utility functions for the SecureFS CLI.
//
// This package contains general-purpose helpers used across multiple
// packages. Functions are organized into logical groups:
//
// # String Utilities
//
// Functions for formatting values in command output:
//   - FormatMB: renders a byte count as mebibytes
//   - Pluralize: picks the singular or plural form for a count
//
// # I/O Utilities
//
// Functions for reading from stdin and other I/O operations:
//   - ReadStdin: reads all piped data from standard input
//
// # Terminal Utilities
//
// Functions for terminal detection and interaction:
//   - IsTerminal: checks if stdin is a terminal
//   - Confirm: reads a yes/no answer from stdin
package utils
