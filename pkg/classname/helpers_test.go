package classname_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/classwrap/pkg/classname"
)

// greedy is a deterministic word wrapper: it fills each line with as many
// whitespace-separated words as fit in opts.Width characters.
func greedy(_ context.Context, text string, opts classname.WrapOptions) (string, error) {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= opts.Width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// classes returns "cFF cFF+1 ... cTT" with two-digit numbering.
func classes(from, to int) string {
	names := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		names = append(names, fmt.Sprintf("c%02d", i))
	}
	return strings.Join(names, " ")
}

// spanOf returns the span of the first occurrence of needle in text.
func spanOf(t *testing.T, text, needle string) classname.Span {
	t.Helper()
	start := strings.Index(text, needle)
	require.GreaterOrEqual(t, start, 0, "needle %q not found", needle)
	return classname.Span{Start: start, End: start + len(needle)}
}

// quotedSpan returns the span from the first quote at or after the end of
// marker to its matching closing quote.
func quotedSpan(t *testing.T, text, marker string) classname.Span {
	t.Helper()
	at := strings.Index(text, marker)
	require.GreaterOrEqual(t, at, 0, "marker %q not found", marker)
	start := at + len(marker)
	q := text[start]
	end := strings.IndexByte(text[start+1:], q)
	require.GreaterOrEqual(t, end, 0, "unterminated literal after %q", marker)
	return classname.Span{Start: start, End: start + 1 + end + 1}
}

func options(width int) classname.Options {
	opts := classname.DefaultOptions()
	opts.TargetWidth = width
	opts.TabWidth = 2
	return opts
}

func rewrite(t *testing.T, src string, nodes []classname.ClassNameNode, opts classname.Options) string {
	t.Helper()
	out, err := classname.Rewrite(context.Background(), src, nodes, opts, classname.RewrapFunc(greedy))
	require.NoError(t, err)
	return out
}
