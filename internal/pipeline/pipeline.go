// Package pipeline wires the module loader, analyzer, and emitter into the
// single front-to-back pass spec.md §2 describes: load the entry module,
// analyze it to an ir.Program, and emit that program to command text. Only
// the entry module is loaded; its import statements are not followed.
// internal/compiler builds on this with the CLI-facing Options/Result types
// and filesystem I/O; pipeline itself reads no files, since the entry
// source arrives as text.
package pipeline

import (
	"path/filepath"

	"github.com/creepebucket/AcaciaMC/internal/analyzer"
	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/emitter"
	"github.com/creepebucket/AcaciaMC/internal/module"
)

// Config is the slice of spec.md §6's CLI surface the compilation pipeline
// itself needs, split across the stages that consume each field.
type Config struct {
	Analyzer analyzer.Config
	Emitter  emitter.Config
}

// Result is everything one pipeline run produced: the emitted files (empty
// on failure) and the diagnostics collected for the entry module.
type Result struct {
	Files map[string]string
	Diag  *diagnostics.DiagnosticBag
	OK    bool
}

// Run loads entryPath (already-read source text entrySrc), analyzes it, and
// emits command text for every interface/main/init file. A nil loader is
// replaced by one rooted at entryPath's directory. Run only uses loader to
// parse the entry module, so imported source files and host modules
// registered on it are never reached.
func Run(entryPath, entrySrc string, cfg Config, loader *module.Loader) Result {
	if loader == nil {
		loader = module.NewLoader(filepath.Dir(entryPath))
	}

	unit, err := loader.LoadEntry(entryPath, ".", entrySrc)
	if err != nil {
		diag := diagnostics.NewDiagnosticBag(entryPath)
		diag.Add(wrapLoadError(err))
		return Result{Diag: diag, OK: false}
	}
	diag := unit.Diags
	if diag.HasErrors() {
		return Result{Diag: diag, OK: false}
	}

	a := analyzer.New(entryPath, diag, cfg.Analyzer)
	prog, ok := a.Run(unit.AST)
	if !ok {
		return Result{Diag: diag, OK: false}
	}

	files, err := emitter.Emit(prog, cfg.Emitter)
	if err != nil {
		diag.Add(diagnostics.NewError(err.Error()).WithCode(diagnostics.ErrReservedIfacePath))
		return Result{Diag: diag, OK: false}
	}

	return Result{Files: files, Diag: diag, OK: true}
}

func wrapLoadError(err error) *diagnostics.Diagnostic {
	switch e := err.(type) {
	case *module.CircularError:
		return diagnostics.NewError(e.Error()).WithCode(diagnostics.ErrCircularParse)
	case *module.NotFoundError:
		return diagnostics.NewError(e.Error()).WithCode(diagnostics.ErrModuleNotFound)
	case *module.IOError:
		return diagnostics.NewError(e.Error()).WithCode(diagnostics.ErrIO)
	default:
		return diagnostics.NewError(err.Error()).WithCode(diagnostics.ErrInternal)
	}
}
