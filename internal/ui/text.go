package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands. Yellow, `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Profile formats profile names. Cyan, 'single quotes' without color.
	Profile = Formatter{color.New(color.FgCyan, color.Bold), "'", "'"}

	// Email formats email addresses. Green, <angle brackets> without color.
	Email = Formatter{color.New(color.FgGreen), "<", ">"}

	// Highlight formats other user supplied values such as names and keys.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats de-emphasized text. Gray, (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}
)

// Successf prints a green check mark line.
func Successf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", Success.Sprint("✓"), fmt.Sprintf(format, a...))
}

// Failf prints a red cross line.
func Failf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", Error.Sprint("✗"), fmt.Sprintf(format, a...))
}

// Warnf prints a yellow warning line.
func Warnf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", Warning.Sprint("⚠"), fmt.Sprintf(format, a...))
}

// Hintf prints a cyan arrow line, used for follow-up suggestions.
func Hintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", Info.Sprint("→"), fmt.Sprintf(format, a...))
}

// EnsureNewline returns s with exactly one trailing newline.
func EnsureNewline(s string) string {
	return strings.TrimRight(s, "\n") + "\n"
}
