package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/classwrap/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatOutcome renders one file as "path: status (details)". check
// selects the wording for files that would change.
func (s *Styles) FormatOutcome(o *runner.FileOutcome, check bool) string {
	path := s.FilePath.Render(o.DisplayPath)

	switch {
	case o.Error != nil:
		return fmt.Sprintf("%s: %s\n", path, s.Error.Render("error: "+o.Error.Error()))
	case o.Skipped:
		return fmt.Sprintf("%s: %s\n", path, s.Warning.Render("skipped: "+o.SkipReason))
	}

	var status string
	switch {
	case o.Written:
		status = s.Changed.Render("formatted")
	case o.Changed && check:
		status = s.Changed.Render("would reformat")
	case o.Changed:
		status = s.Changed.Render("changed")
	default:
		status = s.Unchanged.Render("unchanged")
	}

	details := []string{string(o.Dialect)}
	if o.Edits > 0 {
		details = append(details, fmt.Sprintf("%d of %d %s rewrapped", o.Edits, o.Nodes, plural(o.Nodes, "literal", "literals")))
	}
	if o.BackupPath != "" {
		details = append(details, "backup "+o.BackupPath)
	}
	return fmt.Sprintf("%s: %s %s\n", path, status, s.Detail.Render("("+strings.Join(details, ", ")+")"))
}

// FormatSummaryOneLine renders run statistics as one line, e.g.
// "2 files formatted, 5 unchanged, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, check bool) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No annotated files found") + "\n"
	}

	var parts []string
	switch {
	case stats.FilesWritten > 0:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s formatted",
			stats.FilesWritten, plural(stats.FilesWritten, wordFile, wordFiles))))
	case stats.FilesChanged > 0 && check:
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s would be reformatted",
			stats.FilesChanged, plural(stats.FilesChanged, wordFile, wordFiles))))
	case stats.FilesChanged > 0:
		parts = append(parts, s.Changed.Render(fmt.Sprintf("%d %s changed",
			stats.FilesChanged, plural(stats.FilesChanged, wordFile, wordFiles))))
	}

	unchanged := stats.FilesProcessed - stats.FilesChanged - stats.FilesSkipped
	if unchanged > 0 || len(parts) == 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d unchanged", unchanged)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}
	return strings.Join(parts, ", ") + "\n"
}
