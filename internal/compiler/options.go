package compiler

import (
	"fmt"

	"github.com/creepebucket/AcaciaMC/internal/utils/numeric"
)

// Options is spec.md §6's CLI surface, field for field. Everything has the
// default that section names; zero-value Options compiles whatever source
// is given against those defaults.
type Options struct {
	EntryFile string // positional source file path
	Code      string // in-memory source, bypassing EntryFile (WASM/embedding)

	OutputDir         string
	MCVersion         string // "X.Y.Z"
	EducationEdition  bool
	Scoreboard        string // default "acacia"
	FunctionFolder    string // default ""
	MainFile          string // default "main"
	InitFile          string // default "init"
	InternalFolder    string // default "_acacia"
	TagPrefix         string // default "acacia"
	DebugComments     bool
	NoOptimize        bool
	OverrideOld       bool
	Encoding          string // default "utf-8"
	Verbose           bool
	MaxInline         int // default 20; <= 0 means "use the default"
}

// withDefaults returns a copy of opts with every spec.md §6 default filled
// in for a field left at its zero value.
func (o Options) withDefaults() Options {
	if o.Scoreboard == "" {
		o.Scoreboard = "acacia"
	}
	if o.MainFile == "" {
		o.MainFile = "main"
	}
	if o.InitFile == "" {
		o.InitFile = "init"
	}
	if o.InternalFolder == "" {
		o.InternalFolder = "_acacia"
	}
	if o.TagPrefix == "" {
		o.TagPrefix = "acacia"
	}
	if o.Encoding == "" {
		o.Encoding = "utf-8"
	}
	if o.MaxInline <= 0 {
		o.MaxInline = 20
	}
	return o
}

// OptionError is `Acacia: error: option <name>: <reason>` (spec.md §6):
// identifier-shaped CLI options must be non-empty, not start with a digit,
// and contain only valid identifier characters.
type OptionError struct {
	Name   string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("Acacia: error: option %s: %s", e.Name, e.Reason)
}

// validateIdentifierOptions checks every identifier-shaped option (the
// scoreboard objective, tag prefix, and folder segments) against spec.md
// §6's rule, in a fixed order so repeated invalid input always reports the
// same first offender.
func (o Options) validateIdentifierOptions() error {
	checks := []struct {
		name  string
		value string
	}{
		{"scoreboard", o.Scoreboard},
		{"tag-prefix", o.TagPrefix},
		{"main-file", o.MainFile},
		{"init-file", o.InitFile},
		{"internal-folder", o.InternalFolder},
	}
	for _, c := range checks {
		if err := validateIdentifier(c.name, c.value); err != nil {
			return err
		}
	}
	if o.FunctionFolder != "" {
		for _, seg := range splitFolder(o.FunctionFolder) {
			if err := validateIdentifier("function-folder", seg); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateIdentifier(name, value string) error {
	if value == "" {
		return &OptionError{Name: name, Reason: "must not be empty"}
	}
	if numeric.IsDigit(value[0]) {
		return &OptionError{Name: name, Reason: "must not start with a digit"}
	}
	for i := 0; i < len(value); i++ {
		if !numeric.IsIdentPart(value[i]) {
			return &OptionError{Name: name, Reason: fmt.Sprintf("contains invalid character %q", value[i])}
		}
	}
	return nil
}

func splitFolder(path string) []string {
	var segs []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if i > start {
				segs = append(segs, path[start:i])
			}
			start = i + 1
		}
	}
	return segs
}
