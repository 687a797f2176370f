package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
	"github.com/HueCodes/Rust-Lock/internal/ui"
	"github.com/HueCodes/Rust-Lock/internal/workflows"
)

var (
	initStorageDir string
	initKeyPath    string
)

func init() {
	initCmd.Flags().StringVarP(&initStorageDir, "storage-dir", "s", "./storage", "storage directory path")
	initCmd.Flags().StringVarP(&initKeyPath, "key-path", "k", "./securefs.key", "encryption key file path")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initStorageDir = "./storage"
	initKeyPath = "./securefs.key"
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize SecureFS (generate config and encryption key)",
	Long: `Creates the configuration file, storage directory, and master encryption key.

The key is 32 bytes of cryptographically secure randomness written with
owner-only permissions. Initialization refuses to overwrite an existing
config or key file, so it is safe to run in a directory you are not sure
about.

Examples:
  securefs init                                   # Defaults next to the binary
  securefs init -s /var/lib/securefs -k ~/.securefs.key
  securefs -c /etc/securefs/config.toml init      # Custom config location`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		fmt.Println("Initializing SecureFS...")

		result, err := workflows.Init(context.Background(), workflows.InitOptions{
			ConfigPath: configPath,
			KeyPath:    initKeyPath,
			StorageDir: initStorageDir,
		})
		if err != nil {
			switch {
			case errors.Is(err, sferrors.ErrConfigExists):
				fmt.Println(ui.Error.Sprint("✗") + " Configuration file already exists. Remove it first or use a different path.")
				return nil
			case errors.Is(err, sferrors.ErrKeyExists):
				fmt.Println(ui.Error.Sprint("✗") + " Key file already exists. Remove it first or use a different path.")
				return nil
			case errors.Is(err, sferrors.ErrInvalidConfig):
				fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
				return nil
			default:
				return Logger.ErrorfAndReturn("failed to initialize: %v", err)
			}
		}

		for _, warning := range result.Warnings {
			Logger.WarnfAlways("%s", warning)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Initialization complete!")
		fmt.Println("Config:  " + result.ConfigPath)
		fmt.Println("Key:     " + result.KeyPath)
		fmt.Println("Storage: " + result.StorageDir)
		fmt.Println()
		fmt.Println(ui.Warning.Sprint("IMPORTANT:") + " Keep your key file secure and backed up!")
		fmt.Println("Without it, your encrypted files cannot be recovered.")
		return nil
	},
}
