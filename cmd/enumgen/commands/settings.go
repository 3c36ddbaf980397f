package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/enumgen/config"
)

func newSettingsCmd(flags *globalFlags) *cobra.Command {
	var (
		format  string
		sources bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show effective settings",
		Long: `Show the settings in effect after applying defaults, enumgen.toml and
ENUMGEN_* environment variables.

Examples:
  enumgen settings                 # TOML
  enumgen settings --sources       # Where each value came from`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := config.ResolveRoot(flags.root, ".")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if sources {
				in, err := config.Introspect(root, flags.settings)
				if err != nil {
					return err
				}
				if in.SettingsFile != "" {
					fmt.Fprintf(out, "Settings file: %s\n", in.SettingsFile)
				} else {
					fmt.Fprintln(out, "Settings file: none")
				}
				for _, s := range in.Settings {
					line := fmt.Sprintf("  %s = %v (%s", s.Key, s.Value, s.Source)
					if s.SourcePath != "" {
						line += ": " + s.SourcePath
					}
					fmt.Fprintln(out, line+")")
				}
				return nil
			}

			settings, err := config.LoadSettings(root, flags.settings)
			if err != nil {
				return err
			}
			return writeFormatted(out, format, "enumgen settings", settings)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	cmd.Flags().BoolVar(&sources, "sources", false, "Show where each setting came from")
	return cmd
}
