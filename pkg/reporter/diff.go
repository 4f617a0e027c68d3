package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/classwrap/internal/ui/pretty"
	"github.com/yaklabco/classwrap/pkg/fix"
	"github.com/yaklabco/classwrap/pkg/runner"
)

// DiffReporter writes git-style unified diffs for changed files.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var files, additions, deletions int
	for i := range result.Files {
		file := &result.Files[i]
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatOutcome(file, r.opts.Check))
			continue
		}
		if !file.Diff.HasChanges() {
			continue
		}
		files++
		additions += file.Diff.Additions
		deletions += file.Diff.Deletions
		writeDiff(r.bw, r.styles, file.Diff)
	}

	if files > 0 && r.opts.ShowSummary {
		r.writeSummary(files, additions, deletions)
	}

	return changedFiles(result), nil
}

// writeDiff writes one file's diff with a git header and colored lines.
func writeDiff(w io.Writer, styles *pretty.Styles, diff *fix.Diff) {
	fmt.Fprintln(w, styles.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", diff.Path, diff.Path)))

	for _, line := range strings.Split(strings.TrimSuffix(diff.String(), "\n"), "\n") {
		style := styles.DiffContext
		switch {
		case strings.HasPrefix(line, "---"):
			style = styles.DiffRemove
		case strings.HasPrefix(line, "+++"):
			style = styles.DiffAdd
		case strings.HasPrefix(line, "@@"):
			style = styles.DiffHunk
		case strings.HasPrefix(line, "+"):
			style = styles.DiffAdd
		case strings.HasPrefix(line, "-"):
			style = styles.DiffRemove
		}
		fmt.Fprintln(w, style.Render(line))
	}
	fmt.Fprintln(w)
}

func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{fmt.Sprintf("%d %s changed", files, plural(files, "file", "files"))}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))))
	}
	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
