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
	decryptOutput   string
	decryptCompress bool
	decryptStream   bool
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "output file path (defaults to stdout)")
	decryptCmd.Flags().BoolVar(&decryptCompress, "compress", false, "treat legacy single-shot objects as compressed")
	decryptCmd.Flags().BoolVarP(&decryptStream, "stream", "s", false, "use streaming mode for large files")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptOutput = ""
	decryptCompress = false
	decryptStream = false
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <name>",
	Short: "Decrypt a stored object",
	Long: `Decrypts an object from storage and writes the plaintext.

Without --output the plaintext goes to stdout, so it can be piped into
other tools. The stored format is detected automatically; --compress only
matters for legacy objects that do not record their own compression flag.

Examples:
  securefs decrypt report.pdf -o report.pdf       # Restore to a file
  securefs decrypt notes | less                   # Pipe to stdout
  securefs decrypt backup.tar -s -o backup.tar    # Stream a large object`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		name := args[0]

		// No spinner when writing to stdout, it would corrupt piped output.
		toStdout := decryptOutput == ""

		opts := workflows.DecryptOptions{
			ConfigPath: configPath,
			ObjectName: name,
			OutputPath: decryptOutput,
			Compress:   decryptCompress,
			Stream:     decryptStream,
			Logger:     workflowLogger(),
		}

		if toStdout {
			result, err := workflows.Decrypt(context.Background(), opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatDecryptError(err, name))
				if isStoreUnexpectedError(err) {
					return err
				}
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Decrypted %d bytes to stdout\n", result.Bytes)
			return nil
		}

		spinner, cleanup := startSpinner("Decrypting "+name+"...", verbose)
		defer cleanup()

		result, err := workflows.Decrypt(context.Background(), opts)
		if err != nil {
			spinner.FinalMSG = formatDecryptError(err, name)
			if isStoreUnexpectedError(err) {
				return err
			}
			return nil
		}

		Logger.Infof("Decrypt command completed successfully: %d bytes", result.Bytes)

		compressNote := ""
		if result.Compressed {
			compressNote = " (was compressed)"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Decrypted %d bytes%s -> ", result.Bytes, compressNote) +
			ui.Path.Sprint(result.OutputPath)
		return nil
	},
}

// formatDecryptError formats a decrypt error for display to the user.
func formatDecryptError(err error, name string) string {
	switch {
	case errors.Is(err, sferrors.ErrFileNotFound):
		return ui.Error.Sprint("✗") + " Object " + ui.Highlight.Sprint(name) + " not found in storage\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("securefs list") + " to see stored objects"

	case errors.Is(err, sferrors.ErrEmptyObject):
		return ui.Error.Sprint("✗") + " Object " + ui.Highlight.Sprint(name) + " is empty on disk"

	case errors.Is(err, sferrors.ErrDecryptionFailed):
		return ui.Error.Sprint("✗") + " Decryption failed. The object may be corrupted, or it was encrypted with a different key."

	case errors.Is(err, sferrors.ErrUnsupportedVersion):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " This object was written by a newer version of securefs"

	case errors.Is(err, sferrors.ErrTruncatedStream), errors.Is(err, sferrors.ErrMalformedChunk):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " The stored object is damaged. Restore it from backup if you have one."

	case errors.Is(err, sferrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("securefs init") + " first"

	default:
		return ui.Error.Sprint("✗") + " Failed to decrypt: " + err.Error()
	}
}
