package configloader

import (
	"fmt"
	"path"
	"strings"

	"github.com/yaklabco/classwrap/pkg/classname"
	"github.com/yaklabco/classwrap/pkg/config"
	"github.com/yaklabco/classwrap/pkg/fsutil"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "backups.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// smallPrintWidth is the width below which almost every class wraps onto its own line.
const smallPrintWidth = 20

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	switch {
	case cfg.PrintWidth <= 0:
		result.fail("print_width", cfg.PrintWidth, "print width must be > 0")
	case cfg.PrintWidth < smallPrintWidth:
		result.warn("print_width", cfg.PrintWidth,
			"print width %d is very small; most classes will sit on their own line", cfg.PrintWidth)
	}

	if cfg.TabWidth <= 0 {
		result.fail("tab_width", cfg.TabWidth, "tab width must be > 0")
	}

	if cfg.Quote != "" && !cfg.Quote.IsValid() {
		result.fail("quote", cfg.Quote, "invalid quote %q; must be one of: single, double", cfg.Quote)
	}

	if cfg.EndingPosition != "" && !cfg.EndingPosition.IsValid() {
		result.fail("ending_position", cfg.EndingPosition,
			"invalid ending position %q; must be one of: relative, absolute, absolute-with-indent",
			cfg.EndingPosition)
	}

	if cfg.Dialect != "" {
		if _, err := classname.ParseDialect(cfg.Dialect); err != nil {
			result.fail("dialect", cfg.Dialect, "invalid dialect %q; must be one of: %s",
				cfg.Dialect, dialectNames())
		}
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, table, json, diff", cfg.Format)
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if _, err := fsutil.ParseBackupMode(cfg.Backups.Mode); err != nil {
		result.fail("backups.mode", cfg.Backups.Mode,
			"invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.warn(fmt.Sprintf("extensions[%d]", i), ext, "extension %q has no leading dot", ext)
		}
	}

	validateIgnorePatterns(cfg, result)

	return result
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// path.Match only fails on malformed patterns.
		if _, err := path.Match(pattern, ""); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

func dialectNames() string {
	dialects := classname.Dialects()
	names := make([]string, 0, len(dialects))
	for _, d := range dialects {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return f.IsValid()
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	_, err := fsutil.ParseBackupMode(mode)
	return err == nil
}
