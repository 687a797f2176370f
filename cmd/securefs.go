package cmd

import (
	"fmt"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/HueCodes/Rust-Lock/internal/logging"
)

var (
	configPath string
	verbose    bool
	debug      bool
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "securefs",
		Short: "SecureFS - encrypted file storage with XChaCha20-Poly1305",
		Long: `SecureFS is a command-line tool for storing files as encrypted objects.

Objects are sealed with XChaCha20-Poly1305 using a locally generated
256-bit key. Small files are encrypted in one shot; large files can be
streamed chunk by chunk so they never have to fit in memory.

Run 'securefs init' once to create a config file, storage directory, and
master key, then use encrypt, decrypt, list, remove, status, and log to
work with the store.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing securefs command with config=%s, verbose=%t, debug=%t", configPath, verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			figure.NewFigure("SecureFS", "", true).Print()
			fmt.Println()
			fmt.Println("Run 'securefs --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default \"config.toml\")")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(statusCmd)
}

// workflowLogger builds the structured logger handed to workflows. Debug
// wins over verbose; the default stays quiet so storage internals only
// surface warnings.
func workflowLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(RootCmd.ErrOrStderr())
	switch {
	case debug:
		log.SetLevel(logrus.DebugLevel)
	case verbose:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	configPath = ""
	verbose = false
	debug = false
	resetInitCommandState()
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetListCommandState()
	resetRemoveCommandState()
	resetLogCommandState()
	resetCobraFlagState()
}

// resetCobraFlagState clears the Changed bit on every registered flag to
// prevent test pollution between command runs.
func resetCobraFlagState() {
	RootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range RootCmd.Commands() {
		sub.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
