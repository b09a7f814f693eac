// Package module resolves import targets to either another source unit or
// a builtin module registered by the host, with cycle detection and a
// cache keyed by canonical path (spec.md §2 item 6, §5 module re-entrancy).
package module

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/frontend/lexer"
	"github.com/creepebucket/AcaciaMC/internal/frontend/parser"
	"github.com/creepebucket/AcaciaMC/internal/semantics/symbols"
)

// Phase is a module's position in the re-entrant loading state machine
// (spec.md §5): a given source path is at most one of not-started,
// in-progress, or done.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Done
)

// Builtin is a module supplied by the host rather than parsed from source
// (spec.md §2 item 6).
type Builtin interface {
	ImportPath() string
	Install(scope *symbols.Scope)
}

// Unit is one loaded module, either source-backed or builtin.
type Unit struct {
	ImportPath string
	FullPath   string // empty for a builtin
	Phase      Phase
	AST        *ast.Module
	Diags      *diagnostics.DiagnosticBag
	Scope      *symbols.Scope
	IsBuiltin  bool
}

// Loader resolves import paths against a root source directory, falling
// back to registered builtins, caching every unit it loads.
type Loader struct {
	RootDir  string
	Encoding string

	units    map[string]*Unit
	builtins map[string]Builtin
}

// NewLoader creates a loader rooted at rootDir (the entry file's
// directory), used to resolve relative import paths.
func NewLoader(rootDir string) *Loader {
	return &Loader{
		RootDir:  rootDir,
		Encoding: "utf-8",
		units:    make(map[string]*Unit),
		builtins: make(map[string]Builtin),
	}
}

// RegisterBuiltin installs a host-provided module under its own import
// path, making it resolvable by Load without touching the filesystem.
func (l *Loader) RegisterBuiltin(b Builtin) {
	l.builtins[b.ImportPath()] = b
}

// LoadEntry loads the compiler's entry file directly from source text
// (bypassing path resolution), used for both file and in-memory entry
// points.
func (l *Loader) LoadEntry(fullPath, importPath, src string) (*Unit, error) {
	return l.loadSource(fullPath, importPath, src)
}

// Load resolves importPath (relative to fromDir, or RootDir if empty) to a
// builtin or a `.aca` source file, re-entering the lex/parse stages for
// source units. Re-entering a module that is already in-progress is
// *circularparse*; a previously completed load returns the cached unit.
func (l *Loader) Load(importPath, fromDir string) (*Unit, error) {
	if b, ok := l.builtins[importPath]; ok {
		if u, cached := l.units[importPath]; cached {
			return u, nil
		}
		u := &Unit{ImportPath: importPath, Phase: Done, IsBuiltin: true, Scope: symbols.NewScope(nil)}
		b.Install(u.Scope)
		l.units[importPath] = u
		return u, nil
	}

	dir := fromDir
	if dir == "" {
		dir = l.RootDir
	}
	full, err := l.resolvePath(importPath, dir)
	if err != nil {
		return nil, err
	}

	if u, ok := l.units[full]; ok {
		if u.Phase == InProgress {
			return u, &CircularError{Path: full}
		}
		return u, nil
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, &IOError{Path: full, Err: err}
	}
	return l.loadSource(full, importPath, string(data))
}

func (l *Loader) loadSource(full, importPath, src string) (*Unit, error) {
	u := &Unit{ImportPath: importPath, FullPath: full, Phase: InProgress}
	l.units[full] = u

	diag := diagnostics.NewDiagnosticBag(full)
	diag.AddSourceContent(full, src)
	lx := lexer.New(full, src, diag)
	toks := lx.Tokenize(false)
	mod := parser.Parse(toks, full, diag)
	mod.FullPath = full
	mod.ImportPath = importPath

	u.AST = mod
	u.Diags = diag
	u.Scope = symbols.NewScope(nil)
	u.Scope.Runtime = true
	u.Phase = Done
	return u, nil
}

// resolvePath turns a dotted or slash-separated import path into a `.aca`
// file path, first relative to dir, then to RootDir.
func (l *Loader) resolvePath(importPath, dir string) (string, error) {
	rel := strings.ReplaceAll(importPath, ".", string(filepath.Separator)) + ".aca"
	candidates := []string{filepath.Join(dir, rel)}
	if dir != l.RootDir {
		candidates = append(candidates, filepath.Join(l.RootDir, rel))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return filepath.Clean(c), nil
		}
	}
	return "", &NotFoundError{ImportPath: importPath}
}

// CircularError is returned by Load when importPath is already in-progress
// higher up the same load stack (*circularparse*).
type CircularError struct{ Path string }

func (e *CircularError) Error() string { return "circular import: " + e.Path }

// NotFoundError is returned when no source file or builtin matches an
// import path (*module-not-found*).
type NotFoundError struct{ ImportPath string }

func (e *NotFoundError) Error() string { return "module not found: " + e.ImportPath }

// IOError wraps a filesystem failure while reading a source unit.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return "io error reading " + e.Path + ": " + e.Err.Error() }
