package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/enumgen/config"
	"github.com/teranos/enumgen/enumfmt"
	"github.com/teranos/enumgen/enumscan"
	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/sourcefs"
)

func newScanCmd() *cobra.Command {
	var (
		archive string
		ext     string
		render  bool
	)

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Show the @objc enums found under a directory",
		Long: `Run only the extractor and print every matched enum with its cases in
output order. No settings or modules file is needed.

With --txtar the directory is looked up inside a txtar archive, which is
handy for reproducing extraction problems in a single file.

Examples:
  enumgen scan Core/Sources                 # List enums and cases
  enumgen scan --render Core/Sources        # Print the generated Swift body
  enumgen scan --txtar repro.txtar Core     # Scan an archive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			var fsys sourcefs.FS = sourcefs.NewOS()
			if archive != "" {
				data, err := os.ReadFile(archive)
				if err != nil {
					return errors.WrapSourceRead(err, "failed to read archive "+archive)
				}
				fsys = sourcefs.FromTxtar(data)
			}

			enums, err := enumscan.Extract(fsys, dir, ext)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if render {
				fmt.Fprint(out, enumfmt.Format(enums))
				return nil
			}

			if len(enums) == 0 {
				fmt.Fprintf(out, "No @objc enums under %s\n", dir)
				return nil
			}
			for _, e := range enums {
				fmt.Fprintf(out, "%s (%s)\n", e.Name, e.File)
				if e.Availability != "" {
					fmt.Fprintf(out, "  %s\n", e.Availability)
				}
				for _, c := range enumfmt.SortedCases(e) {
					fmt.Fprintf(out, "  .%s\n", c.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&archive, "txtar", "", "Scan a txtar archive instead of the file system")
	cmd.Flags().StringVar(&ext, "ext", config.DefaultSourceExt, "Source file extension")
	cmd.Flags().BoolVar(&render, "render", false, "Print the generated extensions instead of a listing")
	return cmd
}
