package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/classwrap/internal/configloader"
	"github.com/yaklabco/classwrap/internal/logging"
)

type migrateFlags struct {
	force  bool
	output string
	input  string
}

func newMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [input]",
		Short: "Import settings from a Prettier configuration",
		Long: `Import the settings classwrap shares with Prettier and
prettier-plugin-classnames (printWidth, tabWidth, useTabs, singleQuote,
endingPosition, syntaxTransformation, parser) into a classwrap config file.

If no input file is given, the current directory is searched for
.prettierrc, .prettierrc.json, .prettierrc.yaml or .prettierrc.toml.
JavaScript configuration files cannot be imported.

Examples:
  classwrap migrate                         Auto-detect and import
  classwrap migrate .prettierrc.json        Import a specific file
  classwrap migrate -o .classwrap.toml      Write TOML instead of YAML`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.input = args[0]
			}
			return runMigrate(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing output file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "output file path")

	return cmd
}

func runMigrate(cmd *cobra.Command, flags *migrateFlags) error {
	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

	inputPath := flags.input
	if inputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		inputPath = configloader.FindPrettierConfig(cwd)
		if inputPath == "" {
			return errors.New("no Prettier configuration file found in current directory")
		}
		logger.Info("found prettier config", logging.FieldPath, inputPath)
	}

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("%w: input file does not exist: %s", ErrUsage, inputPath)
	}
	if !configloader.CanMigrate(inputPath) {
		return fmt.Errorf("%w: %s", ErrUsage, configloader.GetMigrationWarning(inputPath))
	}

	absOutput, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if _, err := os.Stat(absOutput); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: output file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	result, err := configloader.ConvertPrettierConfig(inputPath)
	if err != nil {
		return fmt.Errorf("convert configuration: %w", err)
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	header := configloader.GenerateMigrationHeader(inputPath)
	if err := configloader.WriteConfig(commandContext(cmd), result.Config, absOutput, header); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	logger.Info("import complete",
		logging.FieldInput, inputPath,
		logging.FieldOutput, flags.output,
		"settings", result.Imported,
	)
	if len(result.Warnings) > 0 {
		logger.Warn("review warnings above and verify the imported configuration")
	}

	return nil
}
