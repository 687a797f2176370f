package cmd

import (
	"strings"
	"testing"
)

// TestInitCommand contains integration tests for `securefs init`.
func TestInitCommand(t *testing.T) {
	clearSecureFSEnv(t)

	t.Run("InitCreatesStore", func(t *testing.T) {
		testInitCreatesStore(t)
	})

	t.Run("InitRefusesSecondRun", func(t *testing.T) {
		testInitRefusesSecondRun(t)
	})

	t.Run("InitWithVerboseFlag", func(t *testing.T) {
		testInitWithVerboseFlag(t)
	})

	t.Run("InitWithDebugFlag", func(t *testing.T) {
		testInitWithDebugFlag(t)
	})
}

// testInitCreatesStore tests successful initialization into fresh paths.
func testInitCreatesStore(t *testing.T) {
	store := newTestStorePaths(t)

	output, err := captureOutput(func() error {
		cmd := createTestCLI("init", []string{
			"--config", store.configPath,
			"--key-path", store.keyPath,
			"--storage-dir", store.storageDir,
		}, nil, nil, false, false)
		return cmd.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
		t.Errorf("Output: %s", output)
	}

	verifyStoreStructure(t, store)

	if !strings.Contains(output, "Initialization complete!") {
		t.Errorf("Expected success message not found in output: %s", output)
	}
	if !strings.Contains(output, "Keep your key file secure") {
		t.Errorf("Expected key warning not found in output: %s", output)
	}
}

// testInitRefusesSecondRun tests that init will not overwrite an existing store.
func testInitRefusesSecondRun(t *testing.T) {
	store := newTestStorePaths(t)
	initializeStore(t, store)

	output, err := captureOutput(func() error {
		cmd := createTestCLI("init", []string{
			"--config", store.configPath,
			"--key-path", store.keyPath,
			"--storage-dir", store.storageDir,
		}, nil, nil, false, false)
		return cmd.Execute()
	})
	// Expected failures are reported as messages, not as command errors.
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	if !strings.Contains(output, "already exists") {
		t.Errorf("Expected already-exists message not found in output: %s", output)
	}
}

// testInitWithVerboseFlag tests initialization with the verbose flag.
func testInitWithVerboseFlag(t *testing.T) {
	store := newTestStorePaths(t)

	output, err := captureOutput(func() error {
		cmd := createTestCLI("init", []string{
			"--config", store.configPath,
			"--key-path", store.keyPath,
			"--storage-dir", store.storageDir,
		}, nil, nil, true, false)
		return cmd.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
		t.Errorf("Output: %s", output)
	}

	if !strings.Contains(output, "[info]") {
		t.Errorf("Expected verbose [info] messages not found in output: %s", output)
	}

	verifyStoreStructure(t, store)
}

// testInitWithDebugFlag tests initialization with the debug flag.
func testInitWithDebugFlag(t *testing.T) {
	store := newTestStorePaths(t)

	output, err := captureOutput(func() error {
		cmd := createTestCLI("init", []string{
			"--config", store.configPath,
			"--key-path", store.keyPath,
			"--storage-dir", store.storageDir,
		}, nil, nil, false, true)
		return cmd.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
		t.Errorf("Output: %s", output)
	}

	if !strings.Contains(output, "[debug]") {
		t.Errorf("Expected [debug] messages not found in output: %s", output)
	}

	verifyStoreStructure(t, store)
}
