package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/HueCodes/Rust-Lock/internal/ui"
)

// startSpinner shows a progress spinner until the returned cleanup
// function runs. With --verbose or --debug the spinner stays off so log
// lines remain readable.
//
// Callers set s.FinalMSG (no trailing newline needed) and defer cleanup:
// cleanup clears the spinner line and prints the final message itself,
// newline-terminated, to stdout.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	quiet := !verbose && !debug

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if quiet {
		// Discard stdlib log output while the spinner owns the line.
		log.SetOutput(io.Discard)
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		// Print FinalMSG ourselves: Stop would emit it without a
		// trailing newline.
		finalMsg := s.FinalMSG
		s.FinalMSG = ""

		if quiet {
			s.Stop()
		}
		if finalMsg != "" {
			fmt.Print(ui.EnsureNewline(finalMsg))
		}
	}

	return s, cleanup
}
