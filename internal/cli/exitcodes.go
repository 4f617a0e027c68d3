package cli

import (
	"errors"

	"github.com/yaklabco/classwrap/internal/configloader"
	"github.com/yaklabco/classwrap/pkg/runner"
)

// Exit codes for classwrap.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitWouldReformat indicates --check found files that would change.
	ExitWouldReformat = 1

	// ExitFileErrors indicates one or more files could not be formatted.
	ExitFileErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

var (
	// ErrWouldReformat is returned by format --check when files would change.
	ErrWouldReformat = errors.New("files would be reformatted")

	// ErrFileErrors is returned when some files failed to format.
	ErrFileErrors = errors.New("some files could not be formatted")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")

	// ErrUsage wraps invalid flag or argument combinations.
	ErrUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code of a format run.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() {
		return ExitFileErrors
	}
	if check && result.HasChanges() {
		return ExitWouldReformat
	}
	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validation *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrWouldReformat):
		return ExitWouldReformat
	case errors.Is(err, ErrFileErrors):
		return ExitFileErrors
	case errors.Is(err, ErrConfig), errors.As(err, &validation):
		return ExitConfigError
	case errors.Is(err, ErrUsage), errors.Is(err, runner.ErrAnnotationsNeedOneFile):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}

// IsReported reports whether err only signals an exit status whose cause
// was already written to the output.
func IsReported(err error) bool {
	return errors.Is(err, ErrWouldReformat) || errors.Is(err, ErrFileErrors)
}
