package runner

import (
	"github.com/yaklabco/classwrap/pkg/classname"
	"github.com/yaklabco/classwrap/pkg/fix"
)

// FileOutcome is the result of formatting one file.
type FileOutcome struct {
	// Path is the absolute path of the file.
	Path string

	// DisplayPath is Path relative to the working directory when possible.
	DisplayPath string

	// Dialect is the dialect the file was formatted as.
	Dialect classname.Dialect

	// Nodes is the number of annotated spans.
	Nodes int

	// Edits is the number of top-level literals that changed.
	Edits int

	// Changed is true if formatting produced different content.
	Changed bool

	// Output is the formatted content.
	Output string

	// Diff is set for changed files when Options.Diff is on.
	Diff *fix.Diff

	// Written is true if the file was rewritten on disk.
	Written bool

	// BackupPath is set when a backup was made before writing.
	BackupPath string

	// Skipped is true if the file was left alone; SkipReason says why.
	Skipped    bool
	SkipReason string

	// Error is set if the file could not be formatted.
	Error error
}

// Status returns a short word describing the outcome.
func (o *FileOutcome) Status() string {
	switch {
	case o.Error != nil:
		return "error"
	case o.Skipped:
		return "skipped"
	case o.Written:
		return "formatted"
	case o.Changed:
		return "changed"
	default:
		return "unchanged"
	}
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesChanged    int
	FilesWritten    int
	FilesSkipped    int
	FilesFailed     int
	NodesTotal      int
	EditsTotal      int
}

// Result is the outcome of a run. Files are in discovery order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasChanges reports whether any file would change or was rewritten.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.NodesTotal += outcome.Nodes
	r.Stats.EditsTotal += outcome.Edits
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}
