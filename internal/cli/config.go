package cli

import (
	"bufio"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/classwrap/internal/configloader"
)

type configFlags struct {
	env    bool
	format string
}

func newConfigCommand() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration classwrap would use in the current directory,
after merging system, user, project and explicit config files with
CLASSWRAP_* environment variables.

Examples:
  classwrap config                 Resolved settings as YAML
  classwrap config --format toml   Resolved settings as TOML
  classwrap config --env           List supported environment variables`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.env {
				return printEnvVars(cmd)
			}
			return runConfig(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.env, "env", false, "list supported environment variables")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "output format: yaml or toml")

	return cmd
}

func runConfig(cmd *cobra.Command, flags *configFlags) error {
	loadResult, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	var body []byte
	switch flags.format {
	case "yaml":
		body, err = loadResult.Config.ToYAML()
	case "toml":
		body, err = loadResult.Config.ToTOML()
	default:
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrUsage, flags.format)
	}
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	if len(loadResult.LoadedFrom) == 0 {
		fmt.Fprintln(w, "# no config files found; showing defaults")
	}
	for _, path := range loadResult.LoadedFrom {
		fmt.Fprintf(w, "# loaded: %s\n", path)
	}
	_, _ = w.Write(body)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func printEnvVars(cmd *cobra.Command) error {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, name := range names {
		fmt.Fprintf(w, "%-*s  %s\n", width, name, vars[name])
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
