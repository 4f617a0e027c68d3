package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by rewrapped literal count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortByStatus sorts failures first, then changed files.
	SortByStatus SortField = "status"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortByStatus:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeByFile includes the per-file breakdown.
	IncludeByFile bool

	// IncludeByDialect includes the per-dialect breakdown.
	IncludeByDialect bool

	// IncludeUnchanged keeps unchanged files in ByFile.
	IncludeUnchanged bool

	// SortBy specifies how to sort ByFile and ByDialect.
	SortBy SortField

	// SortDesc sorts counts in descending order (highest first).
	SortDesc bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeByFile:    true,
		IncludeByDialect: true,
		SortBy:           SortByCount,
		SortDesc:         true,
	}
}
