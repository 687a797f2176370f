// Package ui provides semantic text formatting for CLI output.
//
// Commands never call fatih/color directly; they pick the formatter
// matching what a piece of text MEANS and let the package decide how it
// renders. With a capable terminal the text is colorized. With NO_COLOR
// set, TERM=dumb, or redirected output, each formatter falls back to a
// plain-text decoration so the distinction survives in logs and pipes.
//
// The formatters come in three groups:
//
// Outcome indicators, printed at the start of result lines:
//
//	ui.Success.Sprint("✓")
//	ui.Warning.Sprint("WARNING:")
//	ui.Error.Sprint("✗")
//
// Things the user can type or open:
//
//	ui.Code.Sprint("securefs init")    // `securefs init` without color
//	ui.Flag.Sprint("--output")
//	ui.Path.Sprint("./securefs.key")
//
// Values and annotations:
//
//	ui.Highlight.Sprint("report.pdf")  // 'report.pdf' without color
//	ui.Info.Sprint("→")
//	ui.Muted.Sprintf("%d bytes", n)    // (4096 bytes) without color
//
// Success, Warning, Error, Flag, Path, and Info carry no fallback
// decoration; their surrounding text already makes them readable.
package ui
