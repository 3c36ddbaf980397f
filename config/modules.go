package config

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/sourcefs"
)

// ModuleEntry is one entry of the modules document as written
type ModuleEntry struct {
	FrameworkName string  `yaml:"framework_name"`
	OutputDir     *string `yaml:"custom_string_convertible_dir"`
}

type modulesDocument struct {
	Modules *[]ModuleEntry `yaml:"modules"`
}

// LoadModules reads the modules document. Keys other than framework_name and
// custom_string_convertible_dir are ignored. A missing, unreadable or
// malformed document, or one without a modules list, is a configuration error.
func LoadModules(fsys sourcefs.FS, path string) ([]ModuleEntry, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		missing := sourcefs.IsNotExist(err)
		err = errors.WrapConfig(err, "failed to read modules file "+path)
		if missing {
			err = errors.WithHint(err, "set modules_file in enumgen.toml or pass --modules")
		}
		return nil, err
	}

	var doc modulesDocument
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, errors.WrapConfig(err, "failed to parse modules file "+path)
	}
	if doc.Modules == nil {
		return nil, errors.NewConfigError("modules file %s has no modules list", path)
	}
	return *doc.Modules, nil
}

// Generating keeps the entries that request generation, in document order,
// and resolves their paths against root. An entry requests generation when
// its output directory is present and not blank.
func Generating(root string, entries []ModuleEntry) ([]Module, error) {
	var modules []Module
	for i, entry := range entries {
		if entry.OutputDir == nil || strings.TrimSpace(*entry.OutputDir) == "" {
			continue
		}
		if strings.TrimSpace(entry.FrameworkName) == "" {
			return nil, errors.NewConfigError("module #%d sets custom_string_convertible_dir but has no framework_name", i+1)
		}
		modules = append(modules, Module{
			Name:      entry.FrameworkName,
			Root:      resolve(root, entry.FrameworkName),
			OutputDir: resolve(root, *entry.OutputDir),
		})
	}
	return modules, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
