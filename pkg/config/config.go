// Package config defines core configuration types for classwrap.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import "github.com/yaklabco/classwrap/pkg/classname"

// QuoteStyle is the preferred quote for expression literals.
type QuoteStyle string

const (
	QuoteSingle QuoteStyle = "single"
	QuoteDouble QuoteStyle = "double"
)

// EndingPosition selects how wrapped line width is measured.
type EndingPosition string

const (
	EndingRelative           EndingPosition = "relative"
	EndingAbsolute           EndingPosition = "absolute"
	EndingAbsoluteWithIndent EndingPosition = "absolute-with-indent"
)

// BackupsConfig controls backup behavior when writing files.
type BackupsConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Mode    string `yaml:"mode,omitempty"    toml:"mode,omitempty"` // "sidecar" or "none"
}

// Config is the root configuration structure for classwrap.
type Config struct {
	// PrintWidth is the line width class lists are wrapped at.
	PrintWidth int `yaml:"print_width" toml:"print_width"`

	// TabWidth is the width of one indentation level.
	TabWidth int `yaml:"tab_width" toml:"tab_width"`

	// UseTabs indents continuation lines with tabs.
	UseTabs *bool `yaml:"use_tabs,omitempty" toml:"use_tabs,omitempty"`

	// Quote is the preferred quote for expression literals.
	Quote QuoteStyle `yaml:"quote" toml:"quote"`

	// EndingPosition is "relative", "absolute" or "absolute-with-indent".
	EndingPosition EndingPosition `yaml:"ending_position" toml:"ending_position"`

	// SyntaxRewrite allows multi-line attribute values to become
	// expression wrappers in dialects that need one.
	SyntaxRewrite *bool `yaml:"syntax_rewrite,omitempty" toml:"syntax_rewrite,omitempty"`

	// Dialect forces a template dialect. Empty means detect per file.
	Dialect string `yaml:"dialect,omitempty" toml:"dialect,omitempty"`

	// Strict fails a file when a nested expression cannot be restored.
	Strict *bool `yaml:"strict,omitempty" toml:"strict,omitempty"`

	// Extensions overrides the file extensions picked up from directories.
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Backups configures backup behavior when writing.
	Backups BackupsConfig `yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// Write rewrites files in place.
	Write bool `yaml:"-" toml:"-"`

	// Check reports files that would change without writing them.
	Check bool `yaml:"-" toml:"-"`

	// Diff prints a unified diff for each changed file.
	Diff bool `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-" toml:"-"`

	// NoBackups disables backup creation when writing.
	NoBackups bool `yaml:"-" toml:"-"`

	// Annotations is an explicit annotation file for a single input.
	Annotations string `yaml:"-" toml:"-"`
}

// Defaults.
const (
	DefaultPrintWidth = 80
	DefaultTabWidth   = 2
)

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		PrintWidth:     DefaultPrintWidth,
		TabWidth:       DefaultTabWidth,
		Quote:          QuoteDouble,
		EndingPosition: EndingRelative,
		Backups: BackupsConfig{
			Enabled: BoolPtr(true),
			Mode:    "sidecar",
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}

// Bool dereferences an optional flag, treating nil as false.
func Bool(b *bool) bool {
	return b != nil && *b
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// RenderOptions returns the engine options for a file in the given dialect.
func (c *Config) RenderOptions(dialect classname.Dialect) classname.Options {
	return classname.Options{
		TargetWidth:        c.PrintWidth,
		TabWidth:           c.TabWidth,
		UseTabs:            Bool(c.UseTabs),
		PreferredQuote:     classname.QuoteStyle(c.Quote),
		EndingPosition:     classname.EndingPosition(c.EndingPosition),
		AllowSyntaxRewrite: Bool(c.SyntaxRewrite),
		Dialect:            dialect,
		Strict:             Bool(c.Strict),
	}
}

// BackupsEnabled reports whether backups should be written.
func (c *Config) BackupsEnabled() bool {
	return Bool(c.Backups.Enabled) && c.Backups.Mode != "none" && !c.NoBackups
}
