package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled output for CLI commands, gated by the --verbose
// and --debug flags. The zero value prints only errors and warnings
// routed through WarnfAlways.
type Logger struct {
	Verbose bool
	Debug   bool
}

// emit writes one tagged line. Info and debug go to stdout; warnings
// and errors go to stderr.
func emit(w *os.File, tag, msg string, args []any) {
	fmt.Fprintf(w, tag+msg+"\n", args...)
}

// Infof prints with --verbose or --debug.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		emit(os.Stdout, color.GreenString("[info] "), msg, args)
	}
}

// Debugf prints with --debug only.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		emit(os.Stdout, color.CyanString("[debug] "), msg, args)
	}
}

// Warnf prints with --verbose or --debug.
func (l Logger) Warnf(msg string, args ...any) {
	if l.Verbose || l.Debug {
		emit(os.Stderr, color.YellowString("[warn] "), msg, args)
	}
}

// WarnfAlways prints regardless of verbosity. Reserved for warnings the
// user must see, like validation findings on live configuration.
func (l Logger) WarnfAlways(msg string, args ...any) {
	emit(os.Stderr, color.YellowString("[warn] "), msg, args)
}

// Errorf prints regardless of verbosity.
func (l Logger) Errorf(msg string, args ...any) {
	emit(os.Stderr, color.RedString("[error] "), msg, args)
}

// ErrorfAndReturn prints the error and hands it back so RunE call sites
// can report and propagate in one statement.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	emit(os.Stderr, color.RedString("[error] "), "%s", []any{err})
	return err
}
