package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one semantic category of CLI text. With colors
// enabled it applies the category's color; without them it falls back
// to a plain-text decoration (backticks, quotes, parentheses).
type Formatter struct {
	color *color.Color
	open  string
	close string
}

func newFormatter(attr color.Attribute, open, close string) Formatter {
	return Formatter{color: color.New(attr), open: open, close: close}
}

// render applies color or the fallback decoration to formatted text.
func (f Formatter) render(text string) string {
	if noColor() {
		return f.open + text + f.close
	}
	return f.color.Sprint(text)
}

// Sprint formats its arguments like fmt.Sprint and renders the result.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and renders the result.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

// EnsureNewline appends a trailing newline unless s already ends with
// one. Spinner FinalMSG strings go through this so the shell prompt
// does not land mid-line.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor reports whether color output is disabled, either via the
// NO_COLOR convention (https://no-color.org/) or fatih/color's own
// terminal detection (TERM=dumb, redirected output).
func noColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

// Outcome indicators.
var (
	// Success marks completed operations. Green, no fallback decoration.
	Success = newFormatter(color.FgGreen, "", "")

	// Warning marks advisory problems. Yellow, no fallback decoration.
	Warning = newFormatter(color.FgYellow, "", "")

	// Error marks failures. Red, no fallback decoration.
	Error = newFormatter(color.FgRed, "", "")
)

// Things the user can type or open.
var (
	// Code marks runnable commands. Yellow, `backticks` as fallback.
	Code = newFormatter(color.FgYellow, "`", "`")

	// Flag marks CLI flags. Yellow, no fallback (the -- prefix is enough).
	Flag = newFormatter(color.FgYellow, "", "")

	// Path marks file and directory paths. Yellow, no fallback.
	Path = newFormatter(color.FgYellow, "", "")
)

// Values and annotations.
var (
	// Highlight marks user-supplied values such as object names.
	// Cyan, 'single quotes' as fallback.
	Highlight = newFormatter(color.FgCyan, "'", "'")

	// Info marks hints and suggested next steps. Cyan, no fallback.
	Info = newFormatter(color.FgCyan, "", "")

	// Muted marks secondary details. Gray, (parentheses) as fallback.
	Muted = newFormatter(color.FgHiBlack, "(", ")")
)
