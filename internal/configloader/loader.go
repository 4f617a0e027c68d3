// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, validation, and Prettier config import.
package configloader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/classwrap/internal/logging"
	"github.com/yaklabco/classwrap/pkg/config"
	"github.com/yaklabco/classwrap/pkg/fsutil"
)

// ProjectConfigName is the file written by init and by Prettier import.
const ProjectConfigName = ".classwrap.yml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// IgnorePrettier skips Prettier config detection and import.
	IgnorePrettier bool

	// NonInteractive disables interactive prompts (e.g., in CI).
	NonInteractive bool

	// Stdin and Stdout carry the import prompt. A non-nil Stdin counts as
	// interactive; nil falls back to the process stdin when it is a terminal.
	Stdin  io.Reader
	Stdout io.Writer

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string

	// MigrationPerformed is true if a Prettier config was imported.
	MigrationPerformed bool
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (CLASSWRAP_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.classwrap.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/classwrap/config.yaml)
//  6. System config (/etc/classwrap/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	if !opts.IgnorePrettier && !opts.IgnoreProjectConfig && opts.ExplicitPath == "" {
		migrated, err := handlePrettierImport(ctx, paths, result, opts, workDir)
		if err != nil {
			return nil, err
		}
		if migrated {
			paths, err = DiscoverPaths(ctx, workDir)
			if err != nil {
				return nil, fmt.Errorf("discover paths after import: %w", err)
			}
			paths.Explicit = opts.ExplicitPath
			result.Paths = paths
		}
	}

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{name: "system", path: paths.System, ignore: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, ignore: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, ignore: opts.IgnoreProjectConfig},
		{name: "explicit", path: opts.ExplicitPath},
	}

	cfg := config.NewConfig()
	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}
		layerCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, layerCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		logger.Debug("loaded config", logging.FieldPath, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	logger.Debug("resolved config",
		logging.FieldConfigFiles, result.LoadedFrom,
		logging.FieldPrintWidth, cfg.PrintWidth,
		logging.FieldEnding, cfg.EndingPosition,
	)

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML or TOML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.Unmarshal(path, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// handlePrettierImport checks for a Prettier config and offers to import it.
func handlePrettierImport(
	ctx context.Context,
	paths *ConfigPaths,
	result *LoadResult,
	opts LoadOptions,
	workDir string,
) (bool, error) {
	if paths.Prettier == "" {
		return false, nil
	}
	if paths.Project != "" {
		return false, nil
	}

	if !CanMigrate(paths.Prettier) {
		result.Warnings = append(result.Warnings, GetMigrationWarning(paths.Prettier))
		return false, nil
	}

	if opts.NonInteractive || (opts.Stdin == nil && !isInteractive()) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("found %s but no %s; run 'classwrap migrate' to import it", paths.Prettier, ProjectConfigName))
		return false, nil
	}

	shouldMigrate, err := promptMigration(opts, paths.Prettier)
	if err != nil {
		return false, err
	}
	if !shouldMigrate {
		return false, nil
	}

	migration, err := ConvertPrettierConfig(paths.Prettier)
	if err != nil {
		return false, fmt.Errorf("convert prettier config: %w", err)
	}
	result.Warnings = append(result.Warnings, migration.Warnings...)

	outputPath := filepath.Join(workDir, ProjectConfigName)
	if err := WriteConfig(ctx, migration.Config, outputPath, GenerateMigrationHeader(paths.Prettier)); err != nil {
		return false, fmt.Errorf("write imported config: %w", err)
	}

	result.MigrationPerformed = true
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("imported %s into %s", paths.Prettier, outputPath))

	return true, nil
}

// promptMigration asks the user whether to import the Prettier config.
func promptMigration(opts LoadOptions, prettierPath string) (bool, error) {
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	if _, err := fmt.Fprintf(stdout, "Found %s but no %s\nImport its settings? [Y/n] ",
		prettierPath, ProjectConfigName); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(stdin).ReadString('\n')
	if errors.Is(err, io.EOF) && response == "" {
		return false, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// WriteConfig writes a configuration atomically, choosing YAML or TOML from
// the file extension.
func WriteConfig(ctx context.Context, cfg *config.Config, path, header string) error {
	var (
		content []byte
		err     error
	)
	if config.IsTOML(path) {
		content, err = cfg.ToTOMLWithHeader(header)
	} else {
		content, err = cfg.ToYAMLWithHeader(header)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, path, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
