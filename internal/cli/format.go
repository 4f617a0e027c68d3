package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/classwrap/internal/configloader"
	"github.com/yaklabco/classwrap/internal/logging"
	"github.com/yaklabco/classwrap/pkg/config"
	"github.com/yaklabco/classwrap/pkg/reporter"
	"github.com/yaklabco/classwrap/pkg/runner"
	"github.com/yaklabco/classwrap/pkg/wrap"
)

type formatFlags struct {
	write          bool
	check          bool
	diff           bool
	backup         bool
	noBackup       bool
	jobs           int
	printWidth     int
	tabWidth       int
	useTabs        bool
	singleQuote    bool
	endingPosition string
	syntaxRewrite  bool
	dialect        string
	strict         bool
	format         string
	annotations    string
	ignore         []string
	extensions     []string
	verbose        bool
	compact        bool
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:     "format [paths...]",
		Aliases: []string{"fmt"},
		Short:   "Rewrap class lists in annotated files",
		Long:    formatLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	addFormatFlags(cmd, flags)

	return cmd
}

const formatLongDescription = `Rewrap class lists in files that have an annotation sidecar.

With a single file and no --write, --check or --diff, the formatted source
is printed to stdout. Otherwise every annotated file under the given paths
(default: the current directory) is processed and a report is printed.

Examples:
  classwrap format src/App.vue                 # Print the formatted file
  classwrap format --check .                   # Exit 1 if anything would change
  classwrap format --write src/                # Rewrite files in place
  classwrap format --diff --print-width 100    # Show what would change
  classwrap format --format json --check .     # Machine-readable report
  classwrap format --annotations spans.yaml page.html`

func addFormatFlags(cmd *cobra.Command, flags *formatFlags) {
	f := cmd.Flags()
	f.BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	f.BoolVar(&flags.check, "check", false, "report files that would change and exit non-zero")
	f.BoolVar(&flags.diff, "diff", false, "print a unified diff for each changed file")
	f.BoolVar(&flags.backup, "backup", true, "keep a backup of each file before rewriting it")
	f.BoolVar(&flags.noBackup, "no-backup", false, "do not keep backups when writing")
	f.IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	f.IntVar(&flags.printWidth, "print-width", config.DefaultPrintWidth, "line width class lists are wrapped at")
	f.IntVar(&flags.tabWidth, "tab-width", config.DefaultTabWidth, "width of one indentation level")
	f.BoolVar(&flags.useTabs, "use-tabs", false, "indent continuation lines with tabs")
	f.BoolVar(&flags.singleQuote, "single-quote", false, "prefer single quotes for expression literals")
	f.StringVar(&flags.endingPosition, "ending-position", string(config.EndingRelative),
		"width accounting: relative, absolute, absolute-with-indent")
	f.BoolVar(&flags.syntaxRewrite, "syntax-rewrite", false,
		"allow multi-line attributes to become expressions in jsx, astro and svelte")
	f.StringVar(&flags.dialect, "dialect", "", "force a dialect: html, vue, angular, astro, svelte, jsx")
	f.BoolVar(&flags.strict, "strict", false, "fail a file when a nested expression cannot be restored")
	f.StringVar(&flags.format, "format", string(config.FormatText), "report format: text, table, json, diff")
	f.StringVar(&flags.annotations, "annotations", "", "annotation file for a single input file")
	f.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	f.StringSliceVar(&flags.extensions, "ext", nil, "file extensions to pick up from directories")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "list unchanged files too")
	f.BoolVar(&flags.compact, "compact", false, "compact JSON output")
}

// cliConfig builds a config holding only the flags the user set, so that
// defaults never mask values from config files or the environment.
func cliConfig(fs *pflag.FlagSet, flags *formatFlags) *config.Config {
	cfg := &config.Config{
		Write:       flags.write,
		Check:       flags.check,
		Diff:        flags.diff,
		NoBackups:   flags.noBackup,
		Annotations: flags.annotations,
	}

	if fs.Changed("print-width") {
		cfg.PrintWidth = flags.printWidth
	}
	if fs.Changed("tab-width") {
		cfg.TabWidth = flags.tabWidth
	}
	if fs.Changed("use-tabs") {
		cfg.UseTabs = config.BoolPtr(flags.useTabs)
	}
	if fs.Changed("single-quote") {
		cfg.Quote = config.QuoteDouble
		if flags.singleQuote {
			cfg.Quote = config.QuoteSingle
		}
	}
	if fs.Changed("ending-position") {
		cfg.EndingPosition = config.EndingPosition(flags.endingPosition)
	}
	if fs.Changed("syntax-rewrite") {
		cfg.SyntaxRewrite = config.BoolPtr(flags.syntaxRewrite)
	}
	if fs.Changed("dialect") {
		cfg.Dialect = flags.dialect
	}
	if fs.Changed("strict") {
		cfg.Strict = config.BoolPtr(flags.strict)
	}
	if fs.Changed("backup") {
		cfg.Backups.Enabled = config.BoolPtr(flags.backup)
	}
	if fs.Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if fs.Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if fs.Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if fs.Changed("ext") {
		cfg.Extensions = normalizeExtensions(flags.extensions)
	}
	return cfg
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// loadConfig resolves the configuration for the working directory, logging
// loader warnings.
func loadConfig(cmd *cobra.Command, cli *config.Config) (*configloader.LoadResult, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Stdout:       cmd.ErrOrStderr(),
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	return loadResult, nil
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	if flags.write && flags.check {
		return fmt.Errorf("%w: --write and --check cannot be combined", ErrUsage)
	}
	if flags.noBackup && cmd.Flags().Changed("backup") && flags.backup {
		return fmt.Errorf("%w: --backup and --no-backup cannot be combined", ErrUsage)
	}

	loadResult, err := loadConfig(cmd, cliConfig(cmd.Flags(), flags))
	if err != nil {
		return err
	}
	cfg := loadResult.Config

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldWrite, runOpts.Write,
		logging.FieldCheck, cfg.Check,
	)

	result, err := runner.New(wrap.Greedy{}).Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("format run failed: %w", err)
	}

	logger.Debug("format run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
	)

	if printMode(cmd, cfg, args) && len(result.Files) == 1 {
		return printOutput(cmd, &result.Files[0])
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return errors.Join(ErrUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Verbose:     flags.verbose,
		Check:       !cfg.Write,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, cfg.Check) {
	case ExitFileErrors:
		return ErrFileErrors
	case ExitWouldReformat:
		return ErrWouldReformat
	default:
		return nil
	}
}

// printMode reports whether the formatted source of a single input file
// should be printed instead of a report.
func printMode(cmd *cobra.Command, cfg *config.Config, args []string) bool {
	if cfg.Write || cfg.Check || cfg.Diff || cmd.Flags().Changed("format") || len(args) != 1 {
		return false
	}
	info, err := os.Stat(args[0])
	return err == nil && info.Mode().IsRegular()
}

func printOutput(cmd *cobra.Command, outcome *runner.FileOutcome) error {
	logger := logging.FromContext(commandContext(cmd))
	if outcome.Error != nil {
		logger.Error("format failed", logging.FieldPath, outcome.DisplayPath, logging.FieldError, outcome.Error)
		return fmt.Errorf("%w: %s: %w", ErrFileErrors, outcome.DisplayPath, outcome.Error)
	}
	if outcome.Skipped {
		logger.Warn("file skipped",
			logging.FieldPath, outcome.DisplayPath, "reason", outcome.SkipReason)
		return nil
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), outcome.Output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
