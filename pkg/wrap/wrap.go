// Package wrap provides the default word wrapper used to re-flow class name
// lists.
package wrap

import (
	"context"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/yaklabco/classwrap/pkg/classname"
)

// Greedy fills each line with as many whitespace-separated words as fit in
// the requested width. Words are never split, so a word wider than the
// limit gets a line of its own. Hyphens are not treated as break points:
// class names such as "md:px-4" always stay whole.
type Greedy struct{}

// Compile-time interface check.
var _ classname.Rewrapper = Greedy{}

// Rewrap implements classname.Rewrapper.
func (Greedy) Rewrap(ctx context.Context, text string, opts classname.WrapOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return String(text, opts.Width), nil
}

// String wraps the words of text at width columns.
func String(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if width <= 1 {
		return strings.Join(words, "\n")
	}

	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	w.KeepNewlines = false
	// Writes to the underlying buffer cannot fail.
	_, _ = w.Write([]byte(strings.Join(words, " ")))
	_ = w.Close()

	var lines []string
	for _, line := range strings.Split(w.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
