// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for building test CLI instances,
// capturing output, and verifying expected store structures.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	logger "github.com/HueCodes/Rust-Lock/internal/logging"
)

// captureOutput captures both stdout and stderr during function execution.
// Commands print user-facing output with fmt directly, so the process
// streams have to be swapped for the duration of the call.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to copy captured stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to copy captured stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI builds the real root command ready to run one subcommand.
// Global flag state is reset first so earlier tests cannot leak flags
// into this run.
func createTestCLI(command string, args []string, stdout, stderr io.Writer, verboseFlag, debugFlag bool) *cobra.Command {
	ResetGlobalState()

	SetVerbose(verboseFlag)
	SetDebug(debugFlag)
	SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	root := GetRootCmd()
	if stdout != nil {
		root.SetOut(stdout)
	}
	if stderr != nil {
		root.SetErr(stderr)
	}

	argv := append([]string{command}, args...)
	if verboseFlag {
		argv = append(argv, "--verbose")
	}
	if debugFlag {
		argv = append(argv, "--debug")
	}
	root.SetArgs(argv)

	return root
}

// testStorePaths holds the file layout of a store initialized for a test.
type testStorePaths struct {
	dir        string
	configPath string
	keyPath    string
	storageDir string
}

// newTestStorePaths lays out store paths inside a fresh temp directory.
func newTestStorePaths(t *testing.T) testStorePaths {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "securefs-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	return testStorePaths{
		dir:        tempDir,
		configPath: filepath.Join(tempDir, "config.toml"),
		keyPath:    filepath.Join(tempDir, "securefs.key"),
		storageDir: filepath.Join(tempDir, "storage"),
	}
}

// initializeStore runs the real init command against the given paths.
func initializeStore(t *testing.T, store testStorePaths) {
	t.Helper()

	_, err := captureOutput(func() error {
		cmd := createTestCLI("init", []string{
			"--config", store.configPath,
			"--key-path", store.keyPath,
			"--storage-dir", store.storageDir,
		}, nil, nil, false, false)
		return cmd.Execute()
	})
	if err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
}

// verifyStoreStructure verifies that init created the expected files.
func verifyStoreStructure(t *testing.T, store testStorePaths) {
	t.Helper()

	if _, err := os.Stat(store.configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", store.configPath)
	}

	info, err := os.Stat(store.keyPath)
	if os.IsNotExist(err) {
		t.Errorf("Key file was not created at %s", store.keyPath)
	} else if err == nil && info.Size() != 32 {
		t.Errorf("Expected 32-byte key file, got %d bytes", info.Size())
	}

	if info, err := os.Stat(store.storageDir); os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		t.Errorf("Storage directory was not created at %s", store.storageDir)
	}
}

// writeTestInput creates a plaintext file for encrypt tests.
func writeTestInput(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write test input: %v", err)
	}
	return path
}

// clearSecureFSEnv unsets the SECUREFS_* variables so ambient settings
// cannot steer commands under test.
func clearSecureFSEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"SECUREFS_KEY_PATH", "SECUREFS_STORAGE_DIR", "SECUREFS_CONFIG"} {
		original, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, original)
			}
		})
	}
}
