package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/enumgen/emit"
	"github.com/teranos/enumgen/errors"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var (
		showDiff bool
		only     []string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check if generated files are up to date",
		Long: `Check if generated files match the current Swift sources.

Generates every module in memory and compares the result byte for byte with
the file on disk. A missing file is out of date. Nothing is written.

Exit codes:
  0 - Generated files are up to date
  1 - Generated files are out of date
  2 - Error during check

Examples:
  enumgen check                    # Check all modules
  enumgen check --diff             # Show a unified diff per stale file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}
			g, err := newGenerator(ws, only)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking generated files...")

			result, err := g.Check(cmd.Context())
			if err != nil {
				return err
			}
			if result.UpToDate {
				fmt.Fprintln(out, "✓ Generated files are up to date")
				return nil
			}

			fmt.Fprintln(out, "✗ Generated files are out of date.")
			for _, f := range result.Stale {
				state := "differs"
				if !f.Exists {
					state = "missing"
				}
				fmt.Fprintf(out, "  - %s (%s)\n", relativePath(ws.Root, f.Path), state)
			}

			if showDiff {
				for _, f := range result.Stale {
					diff, err := emit.Diff(f)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "\n%s", diff)
				}
			}

			return errors.WithHint(result.Err(), "run 'enumgen generate' to update")
		},
	}
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "Show a unified diff for each stale file")
	cmd.Flags().StringSliceVarP(&only, "module", "m", nil, "Check only these modules")
	return cmd
}
