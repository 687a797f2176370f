package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// MigrationResult contains information about a completed config migration.
type MigrationResult struct {
	LegacyPath string
	ConfigPath string
	BackupPath string
}

// legacyConfigPath maps a TOML config path to the JSON file earlier
// deployments wrote: config.toml becomes config.json.
func legacyConfigPath(tomlPath string) string {
	if strings.HasSuffix(tomlPath, ".toml") {
		return strings.TrimSuffix(tomlPath, ".toml") + ".json"
	}
	return tomlPath + ".json"
}

// IsLegacyConfig checks whether a JSON config from an earlier deployment
// sits beside tomlPath with no TOML file to supersede it.
func IsLegacyConfig(tomlPath string) bool {
	if _, err := os.Stat(tomlPath); err == nil {
		return false
	}
	_, err := os.Stat(legacyConfigPath(tomlPath))
	return err == nil
}

// MigrateLegacyConfig converts a legacy JSON config into the TOML file at
// tomlPath, keeping the original behind a timestamped backup name. When
// no legacy file applies it returns nil with no error.
func MigrateLegacyConfig(tomlPath string) (*MigrationResult, error) {
	if !IsLegacyConfig(tomlPath) {
		return nil, nil
	}
	jsonPath := legacyConfigPath(tomlPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy config %s: %w", jsonPath, err)
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse legacy config %s: %w", jsonPath, err)
	}

	if err := config.SaveTo(tomlPath); err != nil {
		return nil, fmt.Errorf("failed to write migrated config %s: %w", tomlPath, err)
	}

	backupPath := jsonPath + ".bak-" + time.Now().Format("20060102-150405")
	if err := os.Rename(jsonPath, backupPath); err != nil {
		return nil, fmt.Errorf("failed to back up legacy config %s: %w", jsonPath, err)
	}

	return &MigrationResult{
		LegacyPath: jsonPath,
		ConfigPath: tomlPath,
		BackupPath: backupPath,
	}, nil
}
