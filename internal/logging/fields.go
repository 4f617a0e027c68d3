// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldDialect     = "dialect"
	FieldPrintWidth  = "print_width"
	FieldEnding      = "ending_position"
	FieldWrite       = "write"
	FieldCheck       = "check"
	FieldJobs        = "jobs"
	FieldConfigFiles = "config_files"

	// Annotation fields.
	FieldAnnotations = "annotations"
	FieldNodes       = "nodes"
	FieldEdits       = "edits"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesSkipped    = "files_skipped"
	FieldFilesFailed     = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
