package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
	"github.com/HueCodes/Rust-Lock/internal/ui"
	"github.com/HueCodes/Rust-Lock/internal/workflows"
)

var (
	encryptOutput   string
	encryptCompress bool
	encryptStream   bool
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "encrypted filename in storage (defaults to input filename)")
	encryptCmd.Flags().BoolVar(&encryptCompress, "compress", false, "enable compression before encryption")
	encryptCmd.Flags().BoolVarP(&encryptStream, "stream", "s", false, "use streaming mode for large files (>10MB recommended)")
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptOutput = ""
	encryptCompress = false
	encryptStream = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <input>",
	Short: "Encrypt a file into storage",
	Long: `Encrypts a file and stores it as an object in the storage directory.

Buffer mode reads the whole file into memory before sealing it, which is
fine for most files. Streaming mode encrypts 64 KiB chunks as they are
read, so files larger than memory work too. Pass "-" as the input to
encrypt stdin; stdin requires --output since there is no filename to
fall back on.

Examples:
  securefs encrypt report.pdf                     # Store as "report.pdf"
  securefs encrypt report.pdf -o q3-report        # Store under another name
  securefs encrypt backup.tar -s --compress       # Stream with compression
  cat notes.txt | securefs encrypt - -o notes     # Encrypt stdin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		input := args[0]

		if input == "-" && encryptOutput == "" {
			fmt.Println(ui.Error.Sprint("✗") + " Encrypting stdin requires " + ui.Flag.Sprint("--output") + " to name the object")
			return nil
		}

		spinner, cleanup := startSpinner("Encrypting...", verbose)
		defer cleanup()

		result, err := workflows.Encrypt(context.Background(), workflows.EncryptOptions{
			ConfigPath: configPath,
			InputPath:  input,
			ObjectName: encryptOutput,
			Compress:   encryptCompress,
			Stream:     encryptStream,
			Logger:     workflowLogger(),
		})
		if err != nil {
			spinner.FinalMSG = formatEncryptError(err, input)
			if isStoreUnexpectedError(err) {
				return err
			}
			return nil
		}

		Logger.Infof("Encrypt command completed successfully: %d bytes", result.Bytes)

		compressNote := ""
		if result.Compressed {
			compressNote = ", compressed"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Encrypted %d bytes (%s%s)\n", result.Bytes, result.Mode, compressNote) +
			"  " + input + " -> " + ui.Highlight.Sprint(result.ObjectName)
		return nil
	},
}

// formatEncryptError formats an encrypt error for display to the user.
func formatEncryptError(err error, input string) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ui.Error.Sprint("✗") + " Input file " + ui.Path.Sprint(input) + " not found"

	case errors.Is(err, sferrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("securefs init") + " first"

	case errors.Is(err, sferrors.ErrInvalidKeyLength):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " The key file looks corrupted. Restore it from backup before encrypting."

	case errors.Is(err, sferrors.ErrEncryptionFailed):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to encrypt: " + err.Error()
	}
}

// isStoreUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isStoreUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, sferrors.ErrInvalidConfig),
		errors.Is(err, sferrors.ErrInvalidKeyLength),
		errors.Is(err, sferrors.ErrEncryptionFailed),
		errors.Is(err, sferrors.ErrDecryptionFailed),
		errors.Is(err, sferrors.ErrFileNotFound),
		errors.Is(err, sferrors.ErrEmptyObject),
		errors.Is(err, sferrors.ErrUnsupportedVersion),
		errors.Is(err, sferrors.ErrTruncatedStream),
		errors.Is(err, sferrors.ErrMalformedChunk):
		return false
	default:
		return true
	}
}
