package pretty

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/classwrap/pkg/runner"
)

const (
	columnGap      = 2
	minPathWidth   = 12
	heavySeparator = "="
	ellipsis       = "…"
)

// TableFormatter renders run results as a fixed-width table that fits
// the terminal.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a table formatter. A non-positive width
// selects DefaultWidth.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = DefaultWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

type tableRow struct {
	cells [5]string
	style lipgloss.Style
}

var tableHeader = [5]string{"FILE", "DIALECT", "LITERALS", "EDITS", "STATUS"}

// FormatTable renders one row per file.
func (t *TableFormatter) FormatTable(result *runner.Result, check bool) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := make([]tableRow, 0, len(result.Files))
	for i := range result.Files {
		rows = append(rows, t.row(&result.Files[i], check))
	}

	widths := t.widths(rows)
	total := columnGap * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}

	var b strings.Builder
	b.WriteString(t.styles.TableHeader.Render(t.line(tableHeader, widths)))
	b.WriteByte('\n')
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(row.style.Render(t.line(row.cells, widths)))
		b.WriteByte('\n')
	}
	return b.String()
}

func (t *TableFormatter) row(o *runner.FileOutcome, check bool) tableRow {
	status := o.Status()
	style := t.styles.Unchanged
	switch {
	case o.Error != nil:
		style = t.styles.Error
	case o.Skipped:
		style = t.styles.Warning
	case o.Changed:
		style = t.styles.Changed
		if check && !o.Written {
			status = "would reformat"
		}
	}
	return tableRow{
		cells: [5]string{
			o.DisplayPath,
			string(o.Dialect),
			strconv.Itoa(o.Nodes),
			strconv.Itoa(o.Edits),
			status,
		},
		style: style,
	}
}

// widths sizes each column to its widest cell. The path column shrinks
// to keep the table within the terminal.
func (t *TableFormatter) widths(rows []tableRow) [5]int {
	var widths [5]int
	for i, h := range tableHeader {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row.cells {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	rest := columnGap * (len(widths) - 1)
	for _, w := range widths[1:] {
		rest += w
	}
	if widths[0]+rest > t.termWidth {
		widths[0] = max(t.termWidth-rest, minPathWidth)
	}
	return widths
}

func (t *TableFormatter) line(cells [5]string, widths [5]int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		cell = runewidth.Truncate(cell, widths[i], ellipsis)
		if i == len(cells)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(parts, strings.Repeat(" ", columnGap))
}
