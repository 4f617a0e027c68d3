package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/classwrap/internal/configloader"
	"github.com/yaklabco/classwrap/internal/logging"
	"github.com/yaklabco/classwrap/pkg/classname"
	"github.com/yaklabco/classwrap/pkg/config"
	"github.com/yaklabco/classwrap/pkg/fsutil"
)

type initFlags struct {
	force   bool
	format  string
	dialect string
	output  string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a classwrap configuration file",
		Long: `Create a .classwrap.yml configuration file in the current directory
with the default settings, each one commented.

Examples:
  classwrap init                    Create .classwrap.yml
  classwrap init --format toml      Create .classwrap.toml instead
  classwrap init --dialect vue      Pin the dialect instead of detecting it
  classwrap init -o ci/classwrap.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", config.TemplateYAML, "output format: yaml or toml")
	cmd.Flags().StringVar(&flags.dialect, "dialect", "", "pin a dialect in the generated file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: .classwrap.yml or .classwrap.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

	if flags.format != config.TemplateYAML && flags.format != config.TemplateTOML {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrUsage, flags.format)
	}
	if flags.dialect != "" {
		d, err := classname.ParseDialect(flags.dialect)
		if err != nil {
			return errors.Join(ErrUsage, err)
		}
		flags.dialect = string(d)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigName
		if flags.format == config.TemplateTOML {
			outputPath = ".classwrap.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Format:  flags.format,
		Dialect: flags.dialect,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'classwrap config' to see the resolved settings")

	return nil
}
