package configloader

import "sort"

// optionAliases maps Prettier option names, and the spellings people
// commonly use for them, to classwrap config keys.
//
//nolint:gochecknoglobals // Read-only lookup table.
var optionAliases = map[string]string{
	"printWidth":  "print_width",
	"print-width": "print_width",
	"print_width": "print_width",

	"tabWidth":  "tab_width",
	"tab-width": "tab_width",
	"tab_width": "tab_width",

	"useTabs":  "use_tabs",
	"use-tabs": "use_tabs",
	"use_tabs": "use_tabs",

	"singleQuote":  "quote",
	"single-quote": "quote",
	"quote":        "quote",

	"endingPosition":  "ending_position",
	"ending-position": "ending_position",
	"ending_position": "ending_position",

	"syntaxTransformation":  "syntax_rewrite",
	"syntax-transformation": "syntax_rewrite",
	"syntax_rewrite":        "syntax_rewrite",

	"parser":  "dialect",
	"dialect": "dialect",
}

// ignoredOptions are Prettier options that have no classwrap counterpart.
// Importing them is silent rather than a warning.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ignoredOptions = map[string]struct{}{
	"$schema":                    {},
	"arrowParens":                {},
	"bracketSameLine":            {},
	"bracketSpacing":             {},
	"customAttributes":           {},
	"customFunctions":            {},
	"embeddedLanguageFormatting": {},
	"endOfLine":                  {},
	"htmlWhitespaceSensitivity":  {},
	"jsxSingleQuote":             {},
	"proseWrap":                  {},
	"quoteProps":                 {},
	"semi":                       {},
	"singleAttributePerLine":     {},
	"trailingComma":              {},
	"vueIndentScriptAndStyle":    {},
}

// NormalizeOptionKey returns the classwrap config key for a Prettier option
// name, or "" if the option has no counterpart.
func NormalizeOptionKey(key string) string {
	return optionAliases[key]
}

// IsIgnoredOption reports whether a Prettier option is known to have no
// classwrap counterpart.
func IsIgnoredOption(key string) bool {
	_, ok := ignoredOptions[key]
	return ok
}

// KnownConfigKeys returns the classwrap config keys an import can set, sorted.
func KnownConfigKeys() []string {
	seen := make(map[string]struct{})
	for _, key := range optionAliases {
		seen[key] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AliasesFor returns every option name that maps to the given config key, sorted.
func AliasesFor(configKey string) []string {
	var aliases []string
	for alias, key := range optionAliases {
		if key == configKey {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}
