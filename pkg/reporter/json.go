package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/classwrap/pkg/analysis"
	"github.com/yaklabco/classwrap/pkg/runner"
)

// jsonSchemaVersion identifies the layout of JSONOutput.
const jsonSchemaVersion = "1"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string                     `json:"version"`
	Files     []JSONFileResult           `json:"files"`
	ByDialect []analysis.DialectAnalysis `json:"byDialect,omitempty"`
	Summary   JSONSummary                `json:"summary"`
}

// JSONFileResult is one file's outcome.
type JSONFileResult struct {
	Path       string `json:"path"`
	Status     string `json:"status"`
	Dialect    string `json:"dialect,omitempty"`
	Literals   int    `json:"literals"`
	Edits      int    `json:"edits"`
	Changed    bool   `json:"changed"`
	Written    bool   `json:"written,omitempty"`
	Backup     string `json:"backup,omitempty"`
	SkipReason string `json:"skipReason,omitempty"`
	Error      string `json:"error,omitempty"`
	Diff       string `json:"diff,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	FilesChanged    int `json:"filesChanged"`
	FilesWritten    int `json:"filesWritten"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesFailed     int `json:"filesFailed"`
	Literals        int `json:"literals"`
	Edits           int `json:"edits"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(buildJSON(result)); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return changedFiles(result), nil
}

func buildJSON(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
	}
	if result == nil {
		return output
	}

	for i := range result.Files {
		file := &result.Files[i]
		entry := JSONFileResult{
			Path:       file.DisplayPath,
			Status:     file.Status(),
			Dialect:    string(file.Dialect),
			Literals:   file.Nodes,
			Edits:      file.Edits,
			Changed:    file.Changed,
			Written:    file.Written,
			Backup:     file.BackupPath,
			SkipReason: file.SkipReason,
			Diff:       file.Diff.String(),
		}
		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		output.Files = append(output.Files, entry)
	}

	opts := analysis.DefaultOptions()
	opts.IncludeByFile = false
	opts.SortBy = analysis.SortByAlpha
	output.ByDialect = analysis.Analyze(result, opts).ByDialect

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesProcessed:  stats.FilesProcessed,
		FilesChanged:    stats.FilesChanged,
		FilesWritten:    stats.FilesWritten,
		FilesSkipped:    stats.FilesSkipped,
		FilesFailed:     stats.FilesFailed,
		Literals:        stats.NodesTotal,
		Edits:           stats.EditsTotal,
	}
	return output
}
