package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/sourcefs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v, "/work/Payments")

	assert.Equal(t, DefaultModulesFile, v.GetString("modules_file"))
	assert.Equal(t, "swift", v.GetString("source_ext"))
	assert.Equal(t, DefaultOutputName, v.GetString("output_name"))
	assert.Equal(t, "Payments", v.GetString("header.project"))
	assert.Equal(t, "Payments", v.GetString("header.holder"))
	assert.Equal(t, 0, v.GetInt("header.year"))
}

func TestLoadSettings_NoFile(t *testing.T) {
	root := t.TempDir()

	settings, err := LoadSettings(root, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultModulesFile, settings.ModulesFile)
	assert.Equal(t, DefaultOutputName, settings.OutputName)
	assert.Equal(t, filepath.Base(root), settings.Header.Project)
}

func TestLoadSettings_FromFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, DefaultSettingsFile), `
modules_file = "config/modules.yml"

[header]
project = "Wallet"
holder = "Acme Inc"
year = 2021
`)

	settings, err := LoadSettings(root, "")
	require.NoError(t, err)

	assert.Equal(t, "config/modules.yml", settings.ModulesFile)
	assert.Equal(t, "Wallet", settings.Header.Project)
	assert.Equal(t, "Acme Inc", settings.Header.Holder)
	assert.Equal(t, 2021, settings.Header.Year)
	assert.Equal(t, "swift", settings.SourceExt)
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENUMGEN_HEADER_HOLDER", "Env Holder")

	settings, err := LoadSettings(root, "")
	require.NoError(t, err)
	assert.Equal(t, "Env Holder", settings.Header.Holder)
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Run("malformed file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, DefaultSettingsFile), "modules_file = [unterminated")

		_, err := LoadSettings(root, "")
		require.Error(t, err)
		assert.True(t, errors.IsConfigError(err))
	})

	t.Run("explicit file missing", func(t *testing.T) {
		root := t.TempDir()

		_, err := LoadSettings(root, filepath.Join(root, "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsConfigError(err))
	})

	t.Run("invalid extension", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, DefaultSettingsFile), `source_ext = ".swift"`)

		_, err := LoadSettings(root, "")
		require.Error(t, err)
		assert.True(t, errors.IsConfigError(err))
	})
}

func TestValidate(t *testing.T) {
	valid := Settings{ModulesFile: "modules.yaml", SourceExt: "swift", OutputName: DefaultOutputName}

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{"defaults are valid", func(s *Settings) {}, false},
		{"empty modules file", func(s *Settings) { s.ModulesFile = " " }, true},
		{"empty extension", func(s *Settings) { s.SourceExt = "" }, true},
		{"output name with separator", func(s *Settings) { s.OutputName = "out/Enums.swift" }, true},
		{"negative year", func(s *Settings) { s.Header.Year = -1 }, true},
		{"explicit year", func(s *Settings) { s.Header.Year = 2020 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsConfigError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIntrospect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, DefaultSettingsFile), "output_name = \"Generated.swift\"\n")
	t.Setenv("ENUMGEN_SOURCE_EXT", "swiftinterface")

	in, err := Introspect(root, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, DefaultSettingsFile), in.SettingsFile)

	sources := map[string]SettingSource{}
	for _, s := range in.Settings {
		sources[s.Key] = s.Source
	}
	assert.Equal(t, SourceFile, sources["output_name"])
	assert.Equal(t, SourceEnvironment, sources["source_ext"])
	assert.Equal(t, SourceDefault, sources["modules_file"])
}

func TestLoadModules(t *testing.T) {
	fsys := sourcefs.NewMem()
	fsys.Add("/w/modules.yaml", `
modules:
  - framework_name: Core
    custom_string_convertible_dir: Core/Generated
    team: platform
  - framework_name: UI
  - framework_name: Blank
    custom_string_convertible_dir: "  "
`)

	entries, err := LoadModules(fsys, "/w/modules.yaml")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Core", entries[0].FrameworkName)
	assert.Nil(t, entries[1].OutputDir)

	modules, err := Generating("/w", entries)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, Module{Name: "Core", Root: "/w/Core", OutputDir: "/w/Core/Generated"}, modules[0])
}

func TestLoadModules_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		add     bool
	}{
		{"missing file", "", false},
		{"malformed yaml", "modules: [\n  - framework_name: Core", true},
		{"no modules key", "frameworks: []\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := sourcefs.NewMem()
			if tt.add {
				fsys.Add("/w/modules.yaml", tt.content)
			}
			_, err := LoadModules(fsys, "/w/modules.yaml")
			require.Error(t, err)
			assert.True(t, errors.IsConfigError(err))
		})
	}
}

func TestLoadModules_MissingFileHint(t *testing.T) {
	_, err := LoadModules(sourcefs.NewMem(), "/w/modules.yaml")
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestGenerating(t *testing.T) {
	dir := func(s string) *string { return &s }

	t.Run("keeps document order", func(t *testing.T) {
		modules, err := Generating("/w", []ModuleEntry{
			{FrameworkName: "Zeta", OutputDir: dir("Zeta/Gen")},
			{FrameworkName: "Alpha", OutputDir: dir("Alpha/Gen")},
		})
		require.NoError(t, err)
		require.Len(t, modules, 2)
		assert.Equal(t, "Zeta", modules[0].Name)
		assert.Equal(t, "Alpha", modules[1].Name)
	})

	t.Run("absolute output dir", func(t *testing.T) {
		modules, err := Generating("/w", []ModuleEntry{{FrameworkName: "Core", OutputDir: dir("/out/core")}})
		require.NoError(t, err)
		assert.Equal(t, "/out/core", modules[0].OutputDir)
	})

	t.Run("empty list", func(t *testing.T) {
		modules, err := Generating("/w", []ModuleEntry{})
		require.NoError(t, err)
		assert.Empty(t, modules)
	})

	t.Run("missing framework name", func(t *testing.T) {
		_, err := Generating("/w", []ModuleEntry{{OutputDir: dir("Gen")}})
		assert.True(t, errors.IsConfigError(err))
	})

	t.Run("missing framework name ignored when not generating", func(t *testing.T) {
		modules, err := Generating("/w", []ModuleEntry{{FrameworkName: ""}})
		require.NoError(t, err)
		assert.Empty(t, modules)
	})
}

func TestResolveRoot(t *testing.T) {
	t.Run("explicit flag", func(t *testing.T) {
		dir := t.TempDir()
		root, source, err := ResolveRoot(dir, "/somewhere/else")
		require.NoError(t, err)
		assert.Equal(t, dir, root)
		assert.Equal(t, RootFromFlag, source)
	})

	t.Run("explicit flag missing", func(t *testing.T) {
		_, _, err := ResolveRoot(filepath.Join(t.TempDir(), "missing"), "")
		assert.True(t, errors.IsConfigError(err))
	})

	t.Run("git work tree", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		sub := filepath.Join(dir, "Sources", "Core")
		require.NoError(t, os.MkdirAll(sub, 0755))

		root, source, err := ResolveRoot("", sub)
		require.NoError(t, err)
		assert.Equal(t, dir, root)
		assert.Equal(t, RootFromGit, source)
	})
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "modules.yaml"), `
modules:
  - framework_name: Core
    custom_string_convertible_dir: Core/Generated
`)

	ws, err := Load(sourcefs.NewOS(), LoadOptions{RootFlag: root})
	require.NoError(t, err)

	assert.Equal(t, root, ws.Root)
	assert.Equal(t, RootFromFlag, ws.RootSource)
	assert.Equal(t, filepath.Join(root, "modules.yaml"), ws.ModulesPath)
	require.Len(t, ws.Modules, 1)
	assert.Equal(t, filepath.Join(root, "Core"), ws.Modules[0].Root)
}

func TestLoad_ModulesFlag(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ci", "modules.yaml"), "modules: []\n")

	ws, err := Load(sourcefs.NewOS(), LoadOptions{RootFlag: root, ModulesFlag: "ci/modules.yaml"})
	require.NoError(t, err)
	assert.Empty(t, ws.Modules)
}
