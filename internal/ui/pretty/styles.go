// Package pretty renders run results for the terminal with lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles holds the lipgloss styles used for CLI output.
type Styles struct {
	// Outcome styles
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Changed   lipgloss.Style
	Unchanged lipgloss.Style

	FilePath lipgloss.Style
	Detail   lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is off.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newPlainStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	color := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return &Styles{
		Error:     color("9").Bold(true),
		Warning:   color("11").Bold(true),
		Changed:   color("11"),
		Unchanged: color("8"),

		FilePath: lipgloss.NewStyle().Bold(true),
		Detail:   color("8"),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    color("14"),
		DiffAdd:     color("10"),
		DiffRemove:  color("9"),
		DiffContext: color("8"),

		Success: color("10").Bold(true),
		Failure: color("9").Bold(true),

		TableHeader:    color("7").Bold(true),
		TableSeparator: color("8"),

		Dim:  color("8"),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newPlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Changed:        plain,
		Unchanged:      plain,
		FilePath:       plain,
		Detail:         plain,
		DiffHeader:     plain,
		DiffHunk:       plain,
		DiffAdd:        plain,
		DiffRemove:     plain,
		DiffContext:    plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled resolves a color mode ("auto", "always", "never") for a
// writer. Auto enables color for terminals unless NO_COLOR is set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := writer.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 100

// TerminalWidth returns the width of the terminal behind writer, or
// DefaultWidth.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
