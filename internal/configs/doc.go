// Package configs manages SecureFS configuration.
//
// Configuration is stored in TOML format, with two fields: the master
// key file path and the storage root. Resolution layers, highest
// priority first:
//
//   - SECUREFS_KEY_PATH / SECUREFS_STORAGE_DIR environment variables
//   - The config file (--config flag, then SECUREFS_CONFIG, then ./config.toml)
//   - Built-in defaults (./securefs.key, ./storage)
//
// A .env file in the working directory is loaded before resolution so
// the SECUREFS_* variables can live there too.
//
// # Legacy Configs
//
// Earlier deployments wrote config.json. When the resolved TOML path is
// missing but its JSON sibling exists, the JSON file is parsed, rewritten
// as TOML, and kept behind a timestamped .bak name. Migration happens at
// most once per config location.
//
// # Validation
//
// Validate rejects empty paths. Warnings reports advisory findings
// (a key file under a web-served directory, '..' segments) without
// failing; commands print them but proceed.
package configs
