package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
	"github.com/HueCodes/Rust-Lock/internal/ui"
	"github.com/HueCodes/Rust-Lock/internal/utils"
	"github.com/HueCodes/Rust-Lock/internal/workflows"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show storage status and statistics",
	Long: `Shows the resolved configuration, whether the master key is present,
and statistics about the stored objects.

Status is read-only. In particular it never generates a key, so a
missing key file is reported rather than silently created.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")

		result, err := workflows.Status(context.Background(), workflows.StatusOptions{
			ConfigPath: configPath,
		})
		if err != nil {
			switch {
			case errors.Is(err, fs.ErrNotExist):
				fmt.Println(ui.Error.Sprint("✗") + " No configuration found")
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("securefs init") + " first")
				return nil
			case errors.Is(err, sferrors.ErrInvalidConfig):
				fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
				return nil
			default:
				return Logger.ErrorfAndReturn("failed to read status: %v", err)
			}
		}

		keyStatus := ui.Error.Sprint("Missing")
		if result.KeyPresent {
			keyStatus = ui.Success.Sprint("Present")
		}

		fmt.Println("SecureFS Status")
		fmt.Println()
		fmt.Println("Configuration:")
		fmt.Println("  Config file:   " + result.ConfigPath)
		fmt.Println("  Key file:      " + result.KeyPath)
		fmt.Println("  Storage dir:   " + result.StorageDir)
		fmt.Println()
		fmt.Println("Key Status:      " + keyStatus)
		fmt.Println()
		fmt.Println("Storage Statistics:")
		fmt.Printf("  Total files:       %d\n", result.TotalFiles)
		fmt.Printf("  Total size:        %d bytes (%s)\n", result.TotalBytes, utils.FormatMB(result.TotalBytes))
		fmt.Printf("  With metadata:     %d/%d\n", result.WithMetadata, result.TotalFiles)

		if missing := result.TotalFiles - result.WithMetadata; missing > 0 {
			fmt.Println()
			fmt.Printf("%s %d %s missing metadata\n", ui.Warning.Sprint("WARNING:"), missing, utils.Pluralize(missing, "file"))
		}

		for _, warning := range result.Warnings {
			Logger.WarnfAlways("%s", warning)
		}

		return nil
	},
}
