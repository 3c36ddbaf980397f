package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/enumgen/generator"
)

func newGenerateCmd(flags *globalFlags) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write Enums+CustomStringConvertible.swift for every generating module",
		Long: `Scan each generating module and rewrite its generated file.

Nothing is written if the modules file is invalid or any source file cannot
be read. A module whose output cannot be written is reported and the others
are still generated. Output directories are never created.

A file whose content already matches is left untouched and reported as
unchanged, so an up-to-date output is not rewritten even if it is read-only.

Examples:
  enumgen generate                 # All generating modules
  enumgen generate -m Core -m UI   # Only Core and UI`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, only)
		},
	}
	cmd.Flags().StringSliceVarP(&only, "module", "m", nil, "Generate only these modules")
	return cmd
}

func runGenerate(cmd *cobra.Command, flags *globalFlags, only []string) error {
	ws, err := loadWorkspace(flags)
	if err != nil {
		return err
	}
	g, err := newGenerator(ws, only)
	if err != nil {
		return err
	}

	result, runErr := g.Run(cmd.Context())
	if result != nil {
		printResult(cmd, ws.Root, result)
	}
	return runErr
}

func printResult(cmd *cobra.Command, root string, result *generator.Result) {
	out := cmd.OutOrStdout()
	if len(result.Modules) == 0 {
		fmt.Fprintln(out, "No modules configured for generation")
		return
	}

	for _, m := range result.Modules {
		path := relativePath(root, m.Path)
		switch m.Status {
		case generator.StatusFailed:
			fmt.Fprintf(out, "✗ %s: %s\n", m.Module, path)
		case generator.StatusUnchanged:
			fmt.Fprintf(out, "= %s (unchanged)\n", path)
		default:
			fmt.Fprintf(out, "✓ Generated %s (%s, %d enums)\n", path, m.Status, m.Enums)
		}
	}
}
