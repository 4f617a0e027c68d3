package classname

import "fmt"

// Dialect is the template syntax flavor the source text is written in.
type Dialect string

const (
	DialectHTML    Dialect = "html"
	DialectVue     Dialect = "vue"
	DialectAngular Dialect = "angular"
	DialectAstro   Dialect = "astro"
	DialectSvelte  Dialect = "svelte"
	DialectJSX     Dialect = "jsx"
)

// Dialects lists every supported dialect.
func Dialects() []Dialect {
	return []Dialect{DialectHTML, DialectVue, DialectAngular, DialectAstro, DialectSvelte, DialectJSX}
}

// ParseDialect converts a dialect name to a Dialect.
// "babel" and "typescript" are accepted as aliases for jsx.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "babel", "typescript", "tsx":
		return DialectJSX, nil
	}
	d := Dialect(name)
	if _, ok := dialectTable[d]; !ok {
		return "", fmt.Errorf("%w: unknown dialect %q", ErrInvalidOptions, name)
	}
	return d, nil
}

// dialectRules holds the per-dialect delimiter and indentation rules.
type dialectRules struct {
	// boundQuote is forced for literals inside bound attributes, whose
	// attribute value is itself double-quoted.
	boundQuote Delimiter

	// boundIndent is added to the indent level of bound-attribute literals.
	boundIndent int

	// templateLiterals reports whether bound expressions may use backticks.
	templateLiterals bool

	// attributeOpen and attributeClose replace the quotes of a plain
	// attribute value that became multi-line, when syntax rewriting is on.
	attributeOpen  string
	attributeClose string
}

//nolint:gochecknoglobals // Read-only lookup table.
var dialectTable = map[Dialect]dialectRules{
	DialectHTML: {
		templateLiterals: true,
	},
	DialectVue: {
		boundQuote:       DelimiterSingle,
		boundIndent:      1,
		templateLiterals: true,
	},
	DialectAngular: {
		boundQuote:  DelimiterSingle,
		boundIndent: 1,
	},
	DialectAstro: {
		templateLiterals: true,
		attributeOpen:    "{`",
		attributeClose:   "`}",
	},
	DialectSvelte: {
		templateLiterals: true,
		attributeOpen:    "{`",
		attributeClose:   "`}",
	},
	DialectJSX: {
		templateLiterals: true,
		attributeOpen:    "{`",
		attributeClose:   "`}",
	},
}
