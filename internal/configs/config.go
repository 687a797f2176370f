package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	env "github.com/allisson/go-env"
	"github.com/joho/godotenv"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
)

// Environment variable names for configuration overrides.
const (
	EnvKeyPath    = "SECUREFS_KEY_PATH"
	EnvStorageDir = "SECUREFS_STORAGE_DIR"
	EnvConfigPath = "SECUREFS_CONFIG"
)

// DefaultConfigFile is used when neither the --config flag nor
// SECUREFS_CONFIG names a config file.
const DefaultConfigFile = "config.toml"

// Config holds the resolved SecureFS settings. The JSON tags exist for
// reading legacy config files during migration.
type Config struct {
	KeyPath    string `toml:"key_path" json:"key_path"`
	StorageDir string `toml:"storage_dir" json:"storage_dir"`
}

// DefaultConfig returns the built-in settings: a key file and storage
// root in the working directory.
func DefaultConfig() *Config {
	return &Config{
		KeyPath:    "./securefs.key",
		StorageDir: "./storage",
	}
}

// ResolveConfigPath picks the config file location. An explicit path
// wins, then SECUREFS_CONFIG, then DefaultConfigFile.
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fromEnv := env.GetString(EnvConfigPath, ""); fromEnv != "" {
		return fromEnv
	}
	return DefaultConfigFile
}

// Load reads the config file at path and applies environment overrides.
// Unlike LoadWithEnv, the file must exist.
func Load(path string) (*Config, error) {
	config, err := LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	config.applyEnvOverrides()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadWithEnv resolves and loads the configuration without requiring a
// config file. Priority: environment variables > config file > defaults.
// A missing file, even an explicitly named one, falls back to defaults.
// SECUREFS_* values from a local .env file are honored, and a legacy
// JSON config found beside the resolved path is migrated to TOML first.
func LoadWithEnv(explicitPath string) (*Config, error) {
	_ = godotenv.Load()

	path := ResolveConfigPath(explicitPath)

	if _, err := MigrateLegacyConfig(path); err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		config, err = LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to check config file %s: %w", path, err)
	}

	config.applyEnvOverrides()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnvOverrides() {
	if v := env.GetString(EnvKeyPath, ""); v != "" {
		c.KeyPath = v
	}
	if v := env.GetString(EnvStorageDir, ""); v != "" {
		c.StorageDir = v
	}
}

// Validate checks that the required paths are present.
//
// Returns ErrInvalidConfig when a path is empty after trimming.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.KeyPath) == "" {
		return fmt.Errorf("%w: key_path cannot be empty", sferrors.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.StorageDir) == "" {
		return fmt.Errorf("%w: storage_dir cannot be empty", sferrors.ErrInvalidConfig)
	}
	return nil
}

// Warnings reports suspicious but legal settings so callers can surface
// them without failing: a key file under a commonly web-served directory,
// or a key path with '..' segments.
func (c *Config) Warnings() []string {
	var warnings []string

	parent := strings.ToLower(filepath.ToSlash(filepath.Dir(c.KeyPath)))
	if strings.Contains(parent, "public") || strings.Contains(parent, "www") || strings.Contains(parent, "htdocs") {
		warnings = append(warnings,
			fmt.Sprintf("key file path %s appears to be in a public directory - this is a security risk", c.KeyPath))
	}

	if strings.Contains(c.KeyPath, "..") {
		warnings = append(warnings, "key_path contains '..' - consider using absolute paths")
	}

	return warnings
}
