package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Default values
const (
	DefaultSettingsFile = "enumgen.toml"
	DefaultModulesFile  = "modules.yaml"
	DefaultSourceExt    = "swift"
	DefaultOutputName   = "Enums+CustomStringConvertible.swift"
)

// SetDefaults configures default values for all settings.
// Project and holder default to the workspace directory name.
func SetDefaults(v *viper.Viper, root string) {
	project := filepath.Base(root)

	v.SetDefault("modules_file", DefaultModulesFile)
	v.SetDefault("source_ext", DefaultSourceExt)
	v.SetDefault("output_name", DefaultOutputName)

	v.SetDefault("header.project", project)
	v.SetDefault("header.holder", project)
	v.SetDefault("header.year", 0)

	v.SetDefault("log.json", false)
}
