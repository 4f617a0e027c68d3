package classname

import (
	"fmt"
	"strings"
)

// QuoteStyle is the preferred quote for expression literals.
type QuoteStyle string

const (
	QuoteSingle QuoteStyle = "single"
	QuoteDouble QuoteStyle = "double"
)

func (q QuoteStyle) delimiter() Delimiter {
	if q == QuoteSingle {
		return DelimiterSingle
	}
	return DelimiterDouble
}

// EndingPosition controls how line width is measured when wrapping.
type EndingPosition string

const (
	// EndingRelative measures each line from its own start.
	EndingRelative EndingPosition = "relative"

	// EndingAbsolute ends lines at an absolute column; continuation lines
	// sit at the base indentation.
	EndingAbsolute EndingPosition = "absolute"

	// EndingAbsoluteWithIndent ends lines at an absolute column and indents
	// continuation lines.
	EndingAbsoluteWithIndent EndingPosition = "absolute-with-indent"
)

// Options is the render configuration for one rewrite.
type Options struct {
	// TargetWidth is the line width literals are wrapped at.
	TargetWidth int

	// TabWidth is the width of one indentation level.
	TabWidth int

	// UseTabs indents continuation lines with tabs instead of spaces.
	UseTabs bool

	// PreferredQuote is the default quote for expression literals.
	PreferredQuote QuoteStyle

	// EndingPosition selects relative or absolute width accounting.
	EndingPosition EndingPosition

	// AllowSyntaxRewrite lets a multi-line attribute value become an
	// expression wrapper where the dialect requires one.
	AllowSyntaxRewrite bool

	// Dialect selects per-dialect delimiter rules.
	Dialect Dialect

	// Strict fails the rewrite when a frozen placeholder goes missing
	// instead of leaving it in the output.
	Strict bool
}

// DefaultOptions returns the default render configuration.
func DefaultOptions() Options {
	return Options{
		TargetWidth:    80,
		TabWidth:       2,
		PreferredQuote: QuoteDouble,
		EndingPosition: EndingRelative,
		Dialect:        DialectHTML,
	}
}

// withDefaults fills zero-valued enum fields with their defaults.
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.PreferredQuote == "" {
		o.PreferredQuote = defaults.PreferredQuote
	}
	if o.EndingPosition == "" {
		o.EndingPosition = defaults.EndingPosition
	}
	if o.Dialect == "" {
		o.Dialect = defaults.Dialect
	}
	return o
}

// Validate checks the options for unusable values.
func (o Options) Validate() error {
	if o.TargetWidth <= 0 {
		return fmt.Errorf("%w: target width must be positive, got %d", ErrInvalidOptions, o.TargetWidth)
	}
	if o.TabWidth <= 0 {
		return fmt.Errorf("%w: tab width must be positive, got %d", ErrInvalidOptions, o.TabWidth)
	}
	switch o.PreferredQuote {
	case QuoteSingle, QuoteDouble:
	default:
		return fmt.Errorf("%w: unknown quote style %q", ErrInvalidOptions, o.PreferredQuote)
	}
	switch o.EndingPosition {
	case EndingRelative, EndingAbsolute, EndingAbsoluteWithIndent:
	default:
		return fmt.Errorf("%w: unknown ending position %q", ErrInvalidOptions, o.EndingPosition)
	}
	if _, ok := dialectTable[o.Dialect]; !ok {
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidOptions, o.Dialect)
	}
	return nil
}

// indentUnit returns the string for one indentation level.
func (o Options) indentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.TabWidth)
}
