package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/enumgen/config"
	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/generator"
	"github.com/teranos/enumgen/logger"
	"github.com/teranos/enumgen/sourcefs"
)

// Exit codes, as in the typegen check command
const (
	ExitOK    = 0
	ExitStale = 1 // out of date, or a module could not be written
	ExitError = 2 // configuration or source error
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	root      string
	settings  string
	modules   string
	jsonLogs  bool
	verbosity int
}

// NewRootCmd builds the enumgen command tree
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "enumgen",
		Short: "Generate CustomStringConvertible conformances for @objc enums",
		Long: `enumgen - CustomStringConvertible generator for Swift @objc enums.

enumgen scans the Swift sources of every module listed in modules.yaml that
sets custom_string_convertible_dir, and writes one
Enums+CustomStringConvertible.swift per module so debuggers and logs print
case names instead of raw values.

Workspace root (in order of precedence):
1. --root flag
2. The enclosing git work tree
3. The working directory

Settings come from enumgen.toml at the root and ENUMGEN_* variables.

Examples:
  enumgen                          # Generate all modules (same as 'generate')
  enumgen check --diff             # Fail if generated files are stale, show diffs
  enumgen watch                    # Regenerate on source changes
  enumgen modules                  # List generating modules
  enumgen scan Core/Sources        # Show what the extractor finds`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(logger.Options{
				JSON:      flags.jsonLogs,
				Verbosity: flags.verbosity,
			}); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.root, "root", "", "Workspace root (default: git work tree or working directory)")
	rootCmd.PersistentFlags().StringVar(&flags.settings, "settings", "", "Settings file (default: <root>/enumgen.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.modules, "modules", "", "Modules file, overrides modules_file")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(newGenerateCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newWatchCmd(flags))
	rootCmd.AddCommand(newModulesCmd(flags))
	rootCmd.AddCommand(newSettingsCmd(flags))
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadWorkspace resolves the workspace once for a command
func loadWorkspace(flags *globalFlags) (*config.Workspace, error) {
	ws, err := config.Load(sourcefs.NewOS(), config.LoadOptions{
		RootFlag:     flags.root,
		SettingsFlag: flags.settings,
		ModulesFlag:  flags.modules,
	})
	if err != nil {
		return nil, err
	}

	// log.json from the settings file applies once it is known
	if ws.Settings.Log.JSON && !flags.jsonLogs {
		if err := logger.Initialize(logger.Options{JSON: true, Verbosity: flags.verbosity}); err != nil {
			return nil, errors.Wrap(err, "failed to initialize logger")
		}
	}
	return ws, nil
}

func newGenerator(ws *config.Workspace, only []string) (*generator.Generator, error) {
	g := generator.New(sourcefs.NewOS(), ws.Settings, ws.Modules)
	return g.Select(only...)
}

// ExitCode maps an error to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsConfigError(err), errors.IsSourceReadError(err):
		return ExitError
	case errors.IsStaleError(err), errors.IsOutputWriteError(err):
		return ExitStale
	default:
		return ExitError
	}
}

// PrintError writes err and any hints attached to it
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
