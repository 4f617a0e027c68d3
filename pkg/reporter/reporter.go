// Package reporter writes the outcome of a formatting run.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/classwrap/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes output for result and returns the number of files
	// that changed or would change.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func changedFiles(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.FilesChanged
}
