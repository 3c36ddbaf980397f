package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/enumgen/config"
)

type modulesOutput struct {
	Root    string          `json:"root" yaml:"root" toml:"root"`
	File    string          `json:"modules_file" yaml:"modules_file" toml:"modules_file"`
	Modules []config.Module `json:"modules" yaml:"modules" toml:"modules"`
}

func newModulesCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List modules configured for generation",
		Long: `List the modules from the modules file that set
custom_string_convertible_dir, with resolved paths, in file order.

Examples:
  enumgen modules                  # Table
  enumgen modules --format json    # Machine readable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if format != "table" {
				return writeFormatted(out, format, "enumgen modules", modulesOutput{
					Root:    ws.Root,
					File:    ws.ModulesPath,
					Modules: ws.Modules,
				})
			}

			if len(ws.Modules) == 0 {
				fmt.Fprintf(out, "No modules in %s set custom_string_convertible_dir\n", relativePath(ws.Root, ws.ModulesPath))
				return nil
			}

			data := pterm.TableData{{"Module", "Sources", "Output"}}
			for _, m := range ws.Modules {
				data = append(data, []string{m.Name, relativePath(ws.Root, m.Root), relativePath(ws.Root, m.OutputDir)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(out).Render()
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, toml, json, yaml")
	return cmd
}
