package cmd

import (
	"strings"
	"testing"
)

// TestListCommand contains integration tests for `securefs list`.
func TestListCommand(t *testing.T) {
	clearSecureFSEnv(t)

	t.Run("ListEmptyStore", func(t *testing.T) {
		testListEmptyStore(t)
	})

	t.Run("ListShowsObjects", func(t *testing.T) {
		testListShowsObjects(t)
	})

	t.Run("ListLongFormat", func(t *testing.T) {
		testListLongFormat(t)
	})

	t.Run("ListPatternFilter", func(t *testing.T) {
		testListPatternFilter(t)
	})
}

// testListEmptyStore tests listing before anything is stored.
func testListEmptyStore(t *testing.T) {
	store := newTestStorePaths(t)
	initializeStore(t, store)

	output, err := captureOutput(func() error {
		cmd := createTestCLI("list", []string{
			"--config", store.configPath,
		}, nil, nil, false, false)
		return cmd.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	if !strings.Contains(output, "No encrypted files found") {
		t.Errorf("Expected empty-store message in output: %s", output)
	}
}

// testListShowsObjects tests the default compact listing.
func testListShowsObjects(t *testing.T) {
	store := newTestStorePaths(t)
	initializeStore(t, store)
	for _, name := range []string{"alpha.txt", "bravo.txt"} {
		inputPath := writeTestInput(t, store.dir, name, []byte("content of "+name))
		encryptForTest(t, store, inputPath)
	}

	output, err := captureOutput(func() error {
		cmd := createTestCLI("list", []string{
			"--config", store.configPath,
		}, nil, nil, false, false)
		return cmd.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	if !strings.Contains(output, "Encrypted files (2 total):") {
		t.Errorf("Expected file count in output: %s", output)
	}
	if !strings.Contains(output, "alpha.txt") || !strings.Contains(output, "bravo.txt") {
		t.Errorf("Expected object names in output: %s", output)
	}
}

// testListLongFormat tests the detailed table view.
func testListLongFormat(t *testing.T) {
	store := newTestStorePaths(t)
	initializeStore(t, store)
	inputPath := writeTestInput(t, store.dir, "detailed.txt", []byte("content"))
	encryptForTest(t, store, inputPath)

	output, err := captureOutput(func() error {
		cmd := createTestCLI("list", []string{
			"--config", store.configPath,
			"--long",
		}, nil, nil, false, false)
		return cmd.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	if !strings.Contains(output, "FILENAME") || !strings.Contains(output, "METADATA") {
		t.Errorf("Expected table header in output: %s", output)
	}
	if !strings.Contains(output, "yes") {
		t.Errorf("Expected metadata status in output: %s", output)
	}
}

// testListPatternFilter tests glob filtering and the no-match message.
func testListPatternFilter(t *testing.T) {
	store := newTestStorePaths(t)
	initializeStore(t, store)
	for _, name := range []string{"report.pdf", "notes.txt"} {
		inputPath := writeTestInput(t, store.dir, name, []byte("content"))
		encryptForTest(t, store, inputPath)
	}

	output, err := captureOutput(func() error {
		cmd := createTestCLI("list", []string{
			"--config", store.configPath,
			"--pattern", "*.pdf",
		}, nil, nil, false, false)
		return cmd.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	if !strings.Contains(output, "report.pdf") {
		t.Errorf("Expected matching object in output: %s", output)
	}
	if strings.Contains(output, "notes.txt") {
		t.Errorf("Expected filtered object to be absent from output: %s", output)
	}

	// A pattern that matches nothing says so rather than claiming an empty store.
	output, err = captureOutput(func() error {
		cmd := createTestCLI("list", []string{
			"--config", store.configPath,
			"--pattern", "*.zip",
		}, nil, nil, false, false)
		return cmd.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}
	if !strings.Contains(output, "No encrypted files match") {
		t.Errorf("Expected no-match message in output: %s", output)
	}
}
