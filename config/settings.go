package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/enumgen/errors"
)

const envPrefix = "ENUMGEN"

// LoadSettings reads <root>/enumgen.toml, or settingsFile when non-empty.
// A missing default settings file is fine; a missing explicit one or a
// malformed one is a configuration error. ENUMGEN_* variables override the file.
func LoadSettings(root, settingsFile string) (*Settings, error) {
	v, err := loadViper(root, settingsFile)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, errors.WrapConfig(err, "failed to unmarshal settings")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func loadViper(root, settingsFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v, root)

	explicit := settingsFile != ""
	if !explicit {
		settingsFile = filepath.Join(root, DefaultSettingsFile)
	}

	v.SetConfigFile(settingsFile)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !isMissing(err) {
			return nil, errors.WrapConfig(err, "failed to read settings "+settingsFile)
		}
	}
	return v, nil
}

// Validate checks that the settings are usable
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.ModulesFile) == "" {
		return errors.NewConfigError("modules_file cannot be empty")
	}
	if s.SourceExt == "" || strings.HasPrefix(s.SourceExt, ".") {
		return errors.NewConfigError("source_ext must be a bare extension like %q, got %q", DefaultSourceExt, s.SourceExt)
	}
	if s.OutputName == "" || strings.ContainsAny(s.OutputName, `/\`) {
		return errors.NewConfigError("output_name must be a file name, got %q", s.OutputName)
	}
	if s.Header.Year < 0 {
		return errors.NewConfigError("header.year must be >= 0, got %d", s.Header.Year)
	}
	return nil
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || os.IsNotExist(err) || errors.Is(err, os.ErrNotExist)
}
