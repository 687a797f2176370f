package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
	"github.com/HueCodes/Rust-Lock/internal/ui"
	"github.com/HueCodes/Rust-Lock/internal/workflows"
)

var (
	listLong    bool
	listPattern string
)

func init() {
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "show detailed information")
	listCmd.Flags().StringVarP(&listPattern, "pattern", "p", "", "filter object names with a glob (supports ** and {a,b})")
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listLong = false
	listPattern = ""
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all encrypted files",
	Long: `Lists the objects in the storage directory, sorted by name.

Sizes are the encrypted on-disk sizes, which include per-object nonce and
authentication overhead. Listing reads directory entries only and never
touches the master key.

Examples:
  securefs list                     # All objects
  securefs list -l                  # Table with sizes and metadata status
  securefs list -p '*.pdf'          # Glob filter
  securefs list -p 'reports/**'     # Match nested names`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		result, err := workflows.List(context.Background(), workflows.ListOptions{
			ConfigPath: configPath,
			Pattern:    listPattern,
		})
		if err != nil {
			if errors.Is(err, sferrors.ErrInvalidConfig) {
				fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("securefs init") + " first")
				return nil
			}
			return Logger.ErrorfAndReturn("failed to list files: %v", err)
		}

		Logger.Debugf("Found %d files, %d after filtering", result.TotalStored, len(result.Files))

		if len(result.Files) == 0 {
			if listPattern != "" && result.TotalStored > 0 {
				fmt.Println("No encrypted files match " + ui.Highlight.Sprint(listPattern))
			} else {
				fmt.Println("No encrypted files found")
			}
			return nil
		}

		fmt.Printf("Encrypted files (%d total):\n", len(result.Files))
		fmt.Println()

		if listLong {
			fmt.Printf("%-40s %12s %10s\n", "FILENAME", "SIZE (bytes)", "METADATA")
			fmt.Println(strings.Repeat("-", 64))

			for _, file := range result.Files {
				metaStatus := "no"
				if file.HasMetadata {
					metaStatus = "yes"
				}
				fmt.Printf("%-40s %12d %10s\n", file.Name, file.Size, metaStatus)
			}
		} else {
			for _, file := range result.Files {
				fmt.Printf("  %s %s\n", file.Name, ui.Muted.Sprintf("%d bytes", file.Size))
			}
		}

		return nil
	},
}
