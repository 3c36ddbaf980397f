package config

import (
	"os"
	"path/filepath"

	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/logger"
	"github.com/teranos/enumgen/sourcefs"
)

// LoadOptions carries the command line overrides
type LoadOptions struct {
	RootFlag     string // --root
	SettingsFlag string // --settings
	ModulesFlag  string // --modules, overrides settings.modules_file
	WorkDir      string // defaults to the process working directory
}

// Load resolves the workspace: root, settings, modules document and the
// generating modules. Called once per invocation; the result is passed down.
func Load(fsys sourcefs.FS, opts LoadOptions) (*Workspace, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.WrapConfig(err, "failed to get working directory")
		}
		workDir = wd
	}

	root, source, err := ResolveRoot(opts.RootFlag, workDir)
	if err != nil {
		return nil, err
	}

	settings, err := LoadSettings(root, opts.SettingsFlag)
	if err != nil {
		return nil, err
	}

	modulesFile := settings.ModulesFile
	if opts.ModulesFlag != "" {
		modulesFile = opts.ModulesFlag
	}
	modulesPath := modulesFile
	if !filepath.IsAbs(modulesPath) {
		modulesPath = filepath.Join(root, modulesPath)
	}

	entries, err := LoadModules(fsys, modulesPath)
	if err != nil {
		return nil, err
	}
	modules, err := Generating(root, entries)
	if err != nil {
		return nil, err
	}

	logger.Debugw("Workspace resolved",
		logger.FieldRoot, root,
		logger.FieldSource, source,
		"modules_file", modulesPath,
		"entries", len(entries),
		"generating", len(modules))

	return &Workspace{
		Root:        root,
		RootSource:  source,
		Settings:    settings,
		ModulesPath: modulesPath,
		Modules:     modules,
	}, nil
}
