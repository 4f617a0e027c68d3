package reporter

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatDiff  Format = "diff"
)

// ParseFormat parses a format string. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if s == "" {
		f = FormatText
	}
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: text, table, json, diff", s)
	}
	return f, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is known.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}
