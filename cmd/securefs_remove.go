package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
	"github.com/HueCodes/Rust-Lock/internal/ui"
	"github.com/HueCodes/Rust-Lock/internal/utils"
	"github.com/HueCodes/Rust-Lock/internal/workflows"
)

var removeYes bool

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip confirmation prompt")
}

// resetRemoveCommandState resets the remove command's global state for testing.
func resetRemoveCommandState() {
	removeYes = false
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an encrypted file",
	Long: `Deletes an object and its metadata sidecar from storage.

Deletion is permanent; there is no trash. The command prompts for
confirmation unless --yes is given, which is meant for scripts.

Examples:
  securefs remove old-report.pdf
  securefs remove old-report.pdf -y     # No prompt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting remove command")
		name := args[0]

		// First pass only verifies the object exists, so the prompt never
		// asks about something that is not there.
		opts := workflows.RemoveOptions{
			ConfigPath: configPath,
			ObjectName: name,
			DryRun:     true,
		}
		if _, err := workflows.Remove(context.Background(), opts); err != nil {
			fmt.Println(formatRemoveError(err, name))
			if isStoreUnexpectedError(err) {
				return err
			}
			return nil
		}

		if !removeYes {
			if !utils.Confirm(fmt.Sprintf("Delete '%s'? This cannot be undone. [y/N]: ", name)) {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		opts.DryRun = false
		if _, err := workflows.Remove(context.Background(), opts); err != nil {
			fmt.Println(formatRemoveError(err, name))
			if isStoreUnexpectedError(err) {
				return err
			}
			return nil
		}

		Logger.Infof("Remove command completed successfully")
		fmt.Println(ui.Success.Sprint("✓") + " Deleted " + ui.Highlight.Sprint(name))
		return nil
	},
}

// formatRemoveError formats a remove error for display to the user.
func formatRemoveError(err error, name string) string {
	switch {
	case errors.Is(err, sferrors.ErrFileNotFound):
		return ui.Error.Sprint("✗") + " Object " + ui.Highlight.Sprint(name) + " not found in storage\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("securefs list") + " to see stored objects"

	case errors.Is(err, sferrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("securefs init") + " first"

	default:
		return ui.Error.Sprint("✗") + " Failed to remove: " + err.Error()
	}
}
