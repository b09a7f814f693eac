// Package emitter is the last compilation stage (spec.md §4.7): it walks an
// ir.Program and renders it to command text, one string per .mcfunction file
// under the configured output layout. Everything about *where* a scoreboard
// slot lives or what a conditional's range test is was already decided by
// internal/analyzer; this package only decides how to spell that decision as
// Minecraft commands and how to split a body across files.
package emitter

import (
	"fmt"
	"path"
	"strings"

	"github.com/creepebucket/AcaciaMC/internal/ir"
)

// Config mirrors the emission-relevant slice of the CLI surface (spec.md §6):
// everything an invocation of Emit needs that isn't already baked into the
// ir.Program itself.
type Config struct {
	Namespace      string // datapack namespace used in `function ns:path` calls
	Scoreboard     string // objective name, default "acacia"
	FunctionFolder string // on-disk folder prefix under the output root, default ""
	MainFile       string // default "main"
	InitFile       string // default "init"
	InternalFolder string // folder for emitter-generated helper files
	MaxInline      int    // conditional/helper body line budget, default 20
	DebugComments  bool
	NoOptimize     bool // disable the singleton-inline pass below
}

func (c Config) scoreboard() string {
	if c.Scoreboard == "" {
		return "acacia"
	}
	return c.Scoreboard
}

func (c Config) mainFile() string {
	if c.MainFile == "" {
		return "main"
	}
	return c.MainFile
}

func (c Config) initFile() string {
	if c.InitFile == "" {
		return "init"
	}
	return c.InitFile
}

func (c Config) internalFolder() string {
	if c.InternalFolder == "" {
		return "_acacia"
	}
	return c.InternalFolder
}

func (c Config) maxInline() int {
	if c.MaxInline <= 0 {
		return 20
	}
	return c.MaxInline
}

// qualify turns a bare interface/helper path into the `namespace:path` form
// used inside a `function` command.
func (c Config) qualify(p string) string {
	ns := c.Namespace
	if ns == "" {
		ns = "acacia"
	}
	return ns + ":" + p
}

// filePath turns a bare path into its on-disk .mcfunction location.
func (c Config) filePath(p string) string {
	if c.FunctionFolder == "" {
		return p + ".mcfunction"
	}
	return path.Join(c.FunctionFolder, p) + ".mcfunction"
}

// ReservedPathError is *reservedinterfacepath* (spec.md §4.7): a declared
// interface's path collides with a name the emitter owns for itself.
type ReservedPathError struct {
	Path string
}

func (e *ReservedPathError) Error() string {
	return fmt.Sprintf("interface path %q collides with a reserved emitter path", e.Path)
}

type renderer struct {
	cfg       Config
	files     map[string][]string
	declared  map[string]bool
	helperNum int
}

func newRenderer(cfg Config) *renderer {
	return &renderer{cfg: cfg, files: map[string][]string{}, declared: map[string]bool{}}
}

func (r *renderer) setFile(p string, lines []string) {
	r.files[p] = lines
}

func (r *renderer) newHelperPath() string {
	r.helperNum++
	return fmt.Sprintf("%s/h%d", r.cfg.internalFolder(), r.helperNum)
}

// Emit renders prog to a map of on-disk relative path -> file contents.
func Emit(prog *ir.Program, cfg Config) (map[string]string, error) {
	r := newRenderer(cfg)

	reserved := map[string]bool{cfg.mainFile(): true, cfg.initFile(): true}
	internalPrefix := cfg.internalFolder() + "/"
	for _, iface := range prog.Interfaces {
		if reserved[iface.Path] || strings.HasPrefix(iface.Path, internalPrefix) {
			return nil, &ReservedPathError{Path: iface.Path}
		}
		r.declared[iface.Path] = true
	}

	initLines := []string{fmt.Sprintf("scoreboard objectives add %s dummy", cfg.scoreboard())}
	initLines = append(initLines, r.renderBlock(prog.Init)...)
	r.setFile(cfg.initFile(), initLines)
	r.declared[cfg.initFile()] = true

	r.setFile(cfg.mainFile(), r.renderBlock(prog.Main))
	r.declared[cfg.mainFile()] = true

	for _, iface := range prog.Interfaces {
		r.setFile(iface.Path, r.renderBlock(iface.Body))
	}

	if !cfg.NoOptimize {
		inlineSingletons(r)
	}

	out := make(map[string]string, len(r.files))
	for p, lines := range r.files {
		out[cfg.filePath(p)] = strings.Join(lines, "\n") + "\n"
	}
	return out, nil
}
