package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// forceColor enables color output for the duration of a test.
func forceColor(t *testing.T) {
	t.Helper()
	os.Unsetenv("NO_COLOR")
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })
}

// disableColor sets NO_COLOR for the duration of a test.
func disableColor(t *testing.T) {
	t.Helper()
	os.Setenv("NO_COLOR", "1")
	t.Cleanup(func() { os.Unsetenv("NO_COLOR") })
}

func TestRenderWithColorEnabled(t *testing.T) {
	forceColor(t)

	got := Code.Sprint("securefs init")
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Code.Sprint with color should emit ANSI escapes, got %q", got)
	}
	if strings.Contains(got, "`") {
		t.Errorf("Code.Sprint with color should not add backticks, got %q", got)
	}

	got = Highlight.Sprintf("object: %s", "notes.txt")
	if strings.HasPrefix(got, "'") || strings.HasSuffix(got, "'") {
		t.Errorf("Highlight.Sprintf with color should not add quotes, got %q", got)
	}
	if !strings.Contains(got, "object: notes.txt") {
		t.Errorf("Highlight.Sprintf lost its text, got %q", got)
	}
}

func TestFallbackDecorations(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Success passes through", Success, "✓", "✓"},
		{"Warning passes through", Warning, "⚠", "⚠"},
		{"Error passes through", Error, "✗", "✗"},
		{"Code wraps in backticks", Code, "securefs init", "`securefs init`"},
		{"Flag passes through", Flag, "--stream", "--stream"},
		{"Path passes through", Path, "./securefs.key", "./securefs.key"},
		{"Highlight wraps in quotes", Highlight, "report.pdf", "'report.pdf'"},
		{"Info passes through", Info, "→", "→"},
		{"Muted wraps in parentheses", Muted, "no metadata", "(no metadata)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSprintfAppliesFallback(t *testing.T) {
	disableColor(t)

	got := Code.Sprintf("securefs %s", "encrypt")
	if want := "`securefs encrypt`"; got != want {
		t.Errorf("Code.Sprintf() = %q, want %q", got, want)
	}

	got = Muted.Sprintf("%d bytes", 4096)
	if want := "(4096 bytes)"; got != want {
		t.Errorf("Muted.Sprintf() = %q, want %q", got, want)
	}
}

func TestSprintJoinsArguments(t *testing.T) {
	disableColor(t)

	got := Code.Sprint("securefs", " ", "list")
	if want := "`securefs list`"; got != want {
		t.Errorf("Code.Sprint with multiple args = %q, want %q", got, want)
	}
}

func TestNoColorDetection(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should be true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	orig := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should be true when color.NoColor is true")
	}
	color.NoColor = orig
}

func TestFormattersInitialized(t *testing.T) {
	formatters := map[string]Formatter{
		"Success":   Success,
		"Warning":   Warning,
		"Error":     Error,
		"Code":      Code,
		"Flag":      Flag,
		"Path":      Path,
		"Highlight": Highlight,
		"Info":      Info,
		"Muted":     Muted,
	}

	for name, f := range formatters {
		if f.color == nil {
			t.Errorf("%s formatter has nil color", name)
		}
		if f.Sprint("x") == "" {
			t.Errorf("%s.Sprint returned an empty string", name)
		}
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "\n"},
		{"done", "done\n"},
		{"done\n", "done\n"},
		{"two\nlines", "two\nlines\n"},
	}

	for _, tt := range tests {
		if got := EnsureNewline(tt.in); got != tt.want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
