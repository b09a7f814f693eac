// Package compiler is the CLI-facing driver (spec.md §6): it turns Options
// into a pipeline.Config, runs internal/pipeline, and — unless the caller
// only wants the in-memory Result — writes the emitted .mcfunction tree to
// disk under OutputDir, following the output layout spec.md §6 describes.
package compiler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/creepebucket/AcaciaMC/internal/analyzer"
	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/emitter"
	"github.com/creepebucket/AcaciaMC/internal/pipeline"
)

// Result is everything one Compile call produced.
type Result struct {
	Success      bool
	Files        map[string]string // path (relative to OutputDir) -> contents
	WrittenFiles []string          // absolute paths actually written to disk
	Output       string            // rendered diagnostics (ANSI), for a caller that wants text instead of EmitAll to stderr
	BuildID      string            // verbose-mode identifier; never embedded in emitted command text
}

// Compile runs the full load/analyze/emit pipeline for opts and, on
// success, writes the result to opts.OutputDir. Diagnostics are always
// collected into the returned Result.Output; Compile itself never writes to
// stdout/stderr (the caller, typically main.go, decides how to surface
// Output or call diag.EmitAll() directly).
func Compile(opts Options) Result {
	opts = opts.withDefaults()

	if err := opts.validateIdentifierOptions(); err != nil {
		return Result{Output: err.Error()}
	}

	src := opts.Code
	entryPath := opts.EntryFile
	if src == "" {
		data, err := os.ReadFile(opts.EntryFile)
		if err != nil {
			diag := diagnostics.NewDiagnosticBag(opts.EntryFile)
			diag.Add(diagnostics.NewError(errors.Wrapf(err, "reading entry file %s", opts.EntryFile).Error()).WithCode(diagnostics.ErrIO))
			return Result{Output: diag.EmitAllToString()}
		}
		src = string(data)
	}
	if entryPath == "" {
		entryPath = "main.acacia"
	}

	cfg := pipeline.Config{
		Analyzer: analyzer.Config{
			MainFile:  opts.MainFile,
			InitFile:  opts.InitFile,
			TagPrefix: opts.TagPrefix,
		},
		Emitter: emitter.Config{
			Namespace:      namespaceFor(opts),
			Scoreboard:     opts.Scoreboard,
			FunctionFolder: opts.FunctionFolder,
			MainFile:       opts.MainFile,
			InitFile:       opts.InitFile,
			InternalFolder: opts.InternalFolder,
			MaxInline:      opts.MaxInline,
			DebugComments:  opts.DebugComments,
			NoOptimize:     opts.NoOptimize,
		},
	}

	res := pipeline.Run(entryPath, src, cfg, nil)
	out := Result{
		Success: res.OK,
		Files:   res.Files,
		Output:  res.Diag.EmitAllToString(),
	}
	if opts.Verbose {
		out.BuildID = uuid.New().String()
	}
	if !res.OK {
		return out
	}

	if opts.OutputDir == "" {
		return out
	}
	written, err := writeOutputs(opts.OutputDir, res.Files, opts.OverrideOld)
	out.WrittenFiles = written
	if err != nil {
		out.Success = false
		out.Output += "\nAcacia: error: " + err.Error()
		return out
	}
	if opts.Verbose {
		out.Output += verboseSummary(out.BuildID, res.Files, written)
	}
	return out
}

// namespaceFor derives the `function ns:path` namespace from the project
// directory's basename, the way the teacher derives its project name from
// the entry file's directory (internal/compiler/compiler.go, projectName).
// Falls back to "acacia" if the derived name is empty or not identifier-shaped.
func namespaceFor(opts Options) string {
	dir := filepath.Dir(opts.EntryFile)
	base := sanitizeNamespace(filepath.Base(dir))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "acacia"
	}
	if err := validateIdentifier("namespace", base); err != nil {
		return "acacia"
	}
	return base
}

func sanitizeNamespace(s string) string {
	return strings.ToLower(s)
}

func verboseSummary(buildID string, files map[string]string, written []string) string {
	var totalBytes uint64
	for _, content := range files {
		totalBytes += uint64(len(content))
	}
	return "\nAcacia: build " + buildID + ": wrote " + humanize.Comma(int64(len(written))) +
		" file(s), " + humanize.Bytes(totalBytes)
}
