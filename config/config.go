// Package config resolves where enumgen runs and what it generates:
// the workspace root, the optional enumgen.toml settings file, and the
// modules document listing which modules get a generated file.
package config

// Settings is the enumgen.toml configuration. SourceExt is the source file
// extension without the dot; OutputName is the generated file name inside
// each output directory.
type Settings struct {
	ModulesFile string         `mapstructure:"modules_file" toml:"modules_file" json:"modules_file" yaml:"modules_file"`
	SourceExt   string         `mapstructure:"source_ext" toml:"source_ext" json:"source_ext" yaml:"source_ext"`
	OutputName  string         `mapstructure:"output_name" toml:"output_name" json:"output_name" yaml:"output_name"`
	Header      HeaderSettings `mapstructure:"header" toml:"header" json:"header" yaml:"header"`
	Log         LogSettings    `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// HeaderSettings fills the comment block at the top of every generated file.
// Year 0 keeps the year already in the output file, else the current year.
type HeaderSettings struct {
	Project string `mapstructure:"project" toml:"project" json:"project" yaml:"project"`
	Holder  string `mapstructure:"holder" toml:"holder" json:"holder" yaml:"holder"`
	Year    int    `mapstructure:"year" toml:"year" json:"year" yaml:"year"`
}

// LogSettings configures logging
type LogSettings struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// Module is one module that requested generation. Paths are resolved
// against the workspace root.
type Module struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Root      string `json:"root" yaml:"root" toml:"root"`
	OutputDir string `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
}

// Workspace is everything resolved once at startup and handed to the generator
type Workspace struct {
	Root        string
	RootSource  string // "flag", "git", "cwd"
	Settings    *Settings
	ModulesPath string
	Modules     []Module
}
