package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/classwrap/internal/ui/pretty"
	"github.com/yaklabco/classwrap/pkg/analysis"
	"github.com/yaklabco/classwrap/pkg/runner"
)

// TextReporter writes one styled line per file of interest, followed by
// its diff when one was generated.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	for i := range result.Files {
		file := &result.Files[i]
		if !r.opts.Verbose && file.Error == nil && !file.Skipped && !file.Changed {
			continue
		}
		fmt.Fprint(r.bw, r.styles.FormatOutcome(file, r.opts.Check))
		if file.Diff.HasChanges() {
			writeDiff(r.bw, r.styles, file.Diff)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, r.opts.Check))
		if r.opts.Verbose {
			r.writeDialects(result)
		}
	}

	return changedFiles(result), nil
}

// writeDialects prints one line per dialect seen in the run.
func (r *TextReporter) writeDialects(result *runner.Result) {
	opts := analysis.DefaultOptions()
	opts.IncludeByFile = false
	opts.SortBy = analysis.SortByAlpha

	for _, da := range analysis.Analyze(result, opts).ByDialect {
		line := fmt.Sprintf("  %s: %d files, %d changed, %d of %d literals rewrapped",
			da.Dialect, da.Files, da.Changed, da.Edits, da.Literals)
		fmt.Fprintln(r.bw, r.styles.Dim.Render(line))
	}
}
