// Package runner formats many files: it discovers sources with annotation
// sidecars and rewrites them concurrently, one worker per file.
package runner

import (
	"github.com/yaklabco/classwrap/pkg/config"
	"github.com/yaklabco/classwrap/pkg/dialect"
	"github.com/yaklabco/classwrap/pkg/fsutil"
)

// Options controls a run.
type Options struct {
	// Paths are files or directories to process. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths. Defaults to the process
	// working directory.
	WorkingDir string

	// Extensions are the lowercase extensions picked up from directories.
	// Defaults to dialect.Extensions.
	Extensions []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks walks into symlinked directories.
	FollowSymlinks bool

	// Annotations overrides the sidecar lookup. Only valid with a single
	// input file.
	Annotations string

	// Jobs is the maximum number of files processed at once. 0 or
	// negative means runtime.NumCPU().
	Jobs int

	// Write commits rewritten content to disk.
	Write bool

	// Diff attaches a unified diff to each changed file.
	Diff bool

	// Backup configures backups made before writing.
	Backup fsutil.BackupConfig

	// Config supplies render settings. Defaults to config.NewConfig().
	Config *config.Config
}

// OptionsFromConfig fills the run-level fields from a resolved config.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	mode, err := fsutil.ParseBackupMode(cfg.Backups.Mode)
	if err != nil {
		mode = fsutil.BackupModeSidecar
	}
	return Options{
		Paths:        paths,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Annotations:  cfg.Annotations,
		Jobs:         cfg.Jobs,
		Write:        cfg.Write,
		Diff:         cfg.Diff || cfg.Format == config.FormatDiff,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.BackupsEnabled(),
			Mode:    mode,
		},
		Config: cfg,
	}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return dialect.Extensions
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}
