package config

import (
	"os"
	"sort"
	"strings"
)

// SettingSource represents where a setting value came from
type SettingSource string

const (
	SourceDefault     SettingSource = "default"
	SourceFile        SettingSource = "file"        // enumgen.toml
	SourceEnvironment SettingSource = "environment" // ENUMGEN_* env vars
)

// SettingInfo describes one effective setting
type SettingInfo struct {
	Key        string        `json:"key"`
	Value      interface{}   `json:"value"`
	Source     SettingSource `json:"source"`
	SourcePath string        `json:"source_path,omitempty"` // file path or env var name
}

// Introspection lists the effective settings and where each came from
type Introspection struct {
	SettingsFile string        `json:"settings_file,omitempty"` // empty when no file was read
	Settings     []SettingInfo `json:"settings"`
}

// Introspect loads settings the same way LoadSettings does and reports
// the source of every key, sorted by key.
func Introspect(root, settingsFile string) (*Introspection, error) {
	v, err := loadViper(root, settingsFile)
	if err != nil {
		return nil, err
	}

	in := &Introspection{SettingsFile: v.ConfigFileUsed()}
	if _, statErr := os.Stat(in.SettingsFile); statErr != nil {
		in.SettingsFile = ""
	}

	keys := v.AllKeys()
	sort.Strings(keys)
	for _, key := range keys {
		info := SettingInfo{Key: key, Value: v.Get(key), Source: SourceDefault}
		if in.SettingsFile != "" && v.InConfig(key) {
			info.Source = SourceFile
			info.SourcePath = in.SettingsFile
		}
		envKey := envName(key)
		if os.Getenv(envKey) != "" {
			info.Source = SourceEnvironment
			info.SourcePath = envKey
		}
		in.Settings = append(in.Settings, info)
	}
	return in, nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
