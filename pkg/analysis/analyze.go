// Package analysis summarizes a format run by file and by dialect.
package analysis

import (
	"cmp"
	"slices"
	"time"

	"github.com/yaklabco/classwrap/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// unknownDialect groups files that failed before a dialect was chosen.
const unknownDialect = "unknown"

// statusRank orders statuses for SortByStatus; lower sorts first.
var statusRank = map[string]int{
	"error":     0,
	"changed":   1,
	"formatted": 1,
	"skipped":   2,
	"unchanged": 3,
}

// Analyze transforms a runner.Result into a Report in a single pass.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	dialects := make(map[string]*DialectAnalysis)

	for i := range result.Files {
		file := &result.Files[i]
		status := file.Status()

		report.Totals.Files++
		report.Totals.Literals += file.Nodes
		report.Totals.Edits += file.Edits
		switch {
		case file.Error != nil:
			report.Totals.Failed++
		case file.Skipped:
			report.Totals.Skipped++
		case file.Changed:
			report.Totals.Changed++
		}

		name := cmp.Or(string(file.Dialect), unknownDialect)
		da, ok := dialects[name]
		if !ok {
			da = &DialectAnalysis{Dialect: name}
			dialects[name] = da
		}
		da.Files++
		da.Literals += file.Nodes
		da.Edits += file.Edits
		if file.Error != nil {
			da.Failed++
		} else if file.Changed {
			da.Changed++
		}
		da.Paths = append(da.Paths, file.DisplayPath)

		if opts.IncludeByFile && (opts.IncludeUnchanged || status != "unchanged") {
			report.ByFile = append(report.ByFile, FileAnalysis{
				Path:     file.DisplayPath,
				Dialect:  string(file.Dialect),
				Status:   status,
				Literals: file.Nodes,
				Edits:    file.Edits,
			})
		}
	}

	if opts.IncludeByDialect {
		report.ByDialect = make([]DialectAnalysis, 0, len(dialects))
		for _, da := range dialects {
			slices.Sort(da.Paths)
			report.ByDialect = append(report.ByDialect, *da)
		}
		sortDialectAnalysis(report.ByDialect, opts.SortBy, opts.SortDesc)
	}
	sortFileAnalysis(report.ByFile, opts.SortBy, opts.SortDesc)

	return report
}

func sortDialectAnalysis(dialects []DialectAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(dialects, func(left, right DialectAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Dialect, right.Dialect)
		case SortByStatus:
			result := cmp.Compare(right.Failed, left.Failed)
			if result == 0 {
				result = cmp.Compare(right.Changed, left.Changed)
			}
			return cmp.Or(result, cmp.Compare(left.Dialect, right.Dialect))
		default: // SortByCount
			result := cmp.Compare(left.Edits, right.Edits)
			if desc {
				result = -result
			}
			return cmp.Or(result, cmp.Compare(left.Dialect, right.Dialect))
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortByStatus:
			result := cmp.Compare(statusRank[left.Status], statusRank[right.Status])
			return cmp.Or(result, cmp.Compare(left.Path, right.Path))
		default: // SortByCount
			result := cmp.Compare(left.Edits, right.Edits)
			if desc {
				result = -result
			}
			return cmp.Or(result, cmp.Compare(left.Path, right.Path))
		}
	})
}
