package config

// OutputFormat specifies the output format for per-file results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatDiff  OutputFormat = "diff"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// IsValid returns true if the quote style is known.
func (q QuoteStyle) IsValid() bool {
	return q == QuoteSingle || q == QuoteDouble
}

// IsValid returns true if the ending position is known.
func (e EndingPosition) IsValid() bool {
	switch e {
	case EndingRelative, EndingAbsolute, EndingAbsoluteWithIndent:
		return true
	default:
		return false
	}
}
