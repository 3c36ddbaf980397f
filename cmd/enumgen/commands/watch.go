package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/generator"
	"github.com/teranos/enumgen/logger"
	"github.com/teranos/enumgen/watch"
)

func newWatchCmd(flags *globalFlags) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate modules when their Swift sources change",
		Long: `Generate once, then watch every generating module and regenerate the
affected modules after sources change. Changes to the generated files
themselves are ignored. Stops on Ctrl-C.

Changes to modules.yaml or enumgen.toml require a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}
			g, err := newGenerator(ws, nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := g.Run(ctx)
			if result != nil {
				printResult(cmd, ws.Root, result)
			}
			if err != nil && !errors.IsOutputWriteError(err) {
				return err
			}

			outputs := make([]string, 0, len(g.Modules))
			for _, m := range g.Modules {
				outputs = append(outputs, g.OutputPath(m))
			}

			w, err := watch.New(watch.Options{
				Modules:  g.Modules,
				Ext:      ws.Settings.SourceExt,
				Outputs:  outputs,
				Debounce: debounce,
				OnChange: func(ctx context.Context, modules []string) error {
					return regenerate(ctx, cmd, ws.Root, g, modules)
				},
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %d modules (Ctrl-C to stop)\n", len(g.Modules))
			return w.Run(ctx)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Wait this long after the last change before regenerating")
	return cmd
}

func regenerate(ctx context.Context, cmd *cobra.Command, root string, g *generator.Generator, modules []string) error {
	selected, err := g.Select(modules...)
	if err != nil {
		return err
	}
	result, err := selected.Run(ctx)
	if result != nil {
		printResult(cmd, root, result)
	}
	if err != nil {
		// source errors are usually a save in progress; keep watching
		logger.Warnw("Regeneration incomplete", logger.FieldError, err)
		PrintError(cmd.ErrOrStderr(), err)
	}
	return nil
}
