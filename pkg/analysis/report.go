package analysis

import "time"

// Report contains pre-computed views of a format run.
// Computed once by Analyze, used by all renderers.
type Report struct {
	// ByFile lists files that changed, failed, or were skipped.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByDialect groups outcomes by template dialect.
	ByDialect []DialectAnalysis `json:"byDialect,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files    int `json:"files"`
	Changed  int `json:"changed"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
	Literals int `json:"literals"`
	Edits    int `json:"edits"`
}

// HasChanges returns true if any file changed.
func (t Totals) HasChanges() bool {
	return t.Changed > 0
}

// HasFailures returns true if any file failed.
func (t Totals) HasFailures() bool {
	return t.Failed > 0
}

// RewrapRatio is the share of annotated literals that were rewrapped.
func (t Totals) RewrapRatio() float64 {
	if t.Literals == 0 {
		return 0
	}
	return float64(t.Edits) / float64(t.Literals)
}

// FileAnalysis contains the outcome of a single file.
type FileAnalysis struct {
	Path     string `json:"path"`
	Dialect  string `json:"dialect,omitempty"`
	Status   string `json:"status"`
	Literals int    `json:"literals"`
	Edits    int    `json:"edits"`
}

// DialectAnalysis contains aggregated data for one dialect.
type DialectAnalysis struct {
	Dialect  string   `json:"dialect"`
	Files    int      `json:"files"`
	Changed  int      `json:"changed"`
	Failed   int      `json:"failed"`
	Literals int      `json:"literals"`
	Edits    int      `json:"edits"`
	Paths    []string `json:"paths,omitempty"`
}
