package compiler

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ProjectConfig is the on-disk shape of an acacia.toml project file. Every
// field mirrors an Options field of the same concern; main.go merges this
// over Options defaults for any flag the user didn't pass explicitly
// (flag.Visit tells it which those are), so CLI flags always win.
type ProjectConfig struct {
	OutputDir        string `toml:"output_dir"`
	MCVersion        string `toml:"mc_version"`
	EducationEdition bool   `toml:"education_edition"`
	Scoreboard       string `toml:"scoreboard"`
	FunctionFolder   string `toml:"function_folder"`
	MainFile         string `toml:"main_file"`
	InitFile         string `toml:"init_file"`
	InternalFolder   string `toml:"internal_folder"`
	TagPrefix        string `toml:"tag_prefix"`
	DebugComments    bool   `toml:"debug_comments"`
	NoOptimize       bool   `toml:"no_optimize"`
	OverrideOld      bool   `toml:"override_old"`
	Encoding         string `toml:"encoding"`
	Verbose          bool   `toml:"verbose"`
	MaxInline        int    `toml:"max_inline"`
}

// LoadProjectConfig reads an acacia.toml file. A missing file is not an
// error: it returns a zero ProjectConfig, since a project config is
// optional and every field already has an Options-level default.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	var cfg ProjectConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading project config %s", path)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing project config %s", path)
	}
	return cfg, nil
}

// ApplyTo overlays the config's non-zero fields onto opts, leaving any
// field already set on opts (e.g. by an explicit CLI flag) untouched.
func (pc ProjectConfig) ApplyTo(opts Options) Options {
	if opts.OutputDir == "" {
		opts.OutputDir = pc.OutputDir
	}
	if opts.MCVersion == "" {
		opts.MCVersion = pc.MCVersion
	}
	if !opts.EducationEdition {
		opts.EducationEdition = pc.EducationEdition
	}
	if opts.Scoreboard == "" {
		opts.Scoreboard = pc.Scoreboard
	}
	if opts.FunctionFolder == "" {
		opts.FunctionFolder = pc.FunctionFolder
	}
	if opts.MainFile == "" {
		opts.MainFile = pc.MainFile
	}
	if opts.InitFile == "" {
		opts.InitFile = pc.InitFile
	}
	if opts.InternalFolder == "" {
		opts.InternalFolder = pc.InternalFolder
	}
	if opts.TagPrefix == "" {
		opts.TagPrefix = pc.TagPrefix
	}
	if !opts.DebugComments {
		opts.DebugComments = pc.DebugComments
	}
	if !opts.NoOptimize {
		opts.NoOptimize = pc.NoOptimize
	}
	if !opts.OverrideOld {
		opts.OverrideOld = pc.OverrideOld
	}
	if opts.Encoding == "" {
		opts.Encoding = pc.Encoding
	}
	if !opts.Verbose {
		opts.Verbose = pc.Verbose
	}
	if opts.MaxInline <= 0 {
		opts.MaxInline = pc.MaxInline
	}
	return opts
}
