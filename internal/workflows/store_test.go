package workflows

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/HueCodes/Rust-Lock/internal/configs"
)

// testStore holds the paths of a freshly initialized store.
type testStore struct {
	dir        string
	configPath string
	keyPath    string
	storageDir string
}

// clearStoreEnv unsets the SECUREFS_* variables for the duration of a
// test so ambient configuration cannot leak into workflow behavior.
func clearStoreEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{configs.EnvKeyPath, configs.EnvStorageDir, configs.EnvConfigPath} {
		original, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, original)
			}
		})
	}
}

// setupTestStore initializes a complete store in a temp directory.
func setupTestStore(t *testing.T) testStore {
	t.Helper()
	clearStoreEnv(t)

	tempDir, err := os.MkdirTemp("", "securefs-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store := testStore{
		dir:        tempDir,
		configPath: filepath.Join(tempDir, "config.toml"),
		keyPath:    filepath.Join(tempDir, "securefs.key"),
		storageDir: filepath.Join(tempDir, "storage"),
	}

	if _, err := Init(context.Background(), InitOptions{
		ConfigPath: store.configPath,
		KeyPath:    store.keyPath,
		StorageDir: store.storageDir,
	}); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	return store
}

// writeInputFile creates a plaintext file to feed into encrypt.
func writeInputFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}

// encryptTestFile stores content under name and returns the input path.
func encryptTestFile(t *testing.T, store testStore, name string, content []byte) string {
	t.Helper()
	inputPath := writeInputFile(t, store.dir, name, content)
	if _, err := Encrypt(context.Background(), EncryptOptions{
		ConfigPath: store.configPath,
		InputPath:  inputPath,
	}); err != nil {
		t.Fatalf("Failed to encrypt %s: %v", name, err)
	}
	return inputPath
}
