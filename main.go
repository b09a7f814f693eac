//go:build !js && !wasm

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creepebucket/AcaciaMC/internal/compiler"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "show the compiler version")

	outputDir := flag.String("out", "", "output directory for emitted .mcfunction files")
	mcVersion := flag.String("mc-version", "", "target Minecraft version, X.Y.Z")
	education := flag.Bool("education-edition", false, "target Minecraft Education Edition")
	scoreboard := flag.String("scoreboard", "", "scoreboard objective name (default \"acacia\")")
	functionFolder := flag.String("function-folder", "", "on-disk folder prefix under the output root")
	mainFile := flag.String("main-file", "", "entry file name (default \"main\")")
	initFile := flag.String("init-file", "", "init file name (default \"init\")")
	internalFolder := flag.String("internal-folder", "", "folder for internal helper files (default \"_acacia\")")
	tagPrefix := flag.String("tag-prefix", "", "entity-tag prefix (default \"acacia\")")
	debugComments := flag.Bool("debug-comments", false, "emit debug comments alongside generated commands")
	noOptimize := flag.Bool("no-optimize", false, "disable the singleton-inline optimizer pass")
	overrideOld := flag.Bool("override-old", false, "overwrite an existing output directory")
	encoding := flag.String("encoding", "", "source file encoding (default \"utf-8\")")
	verbose := flag.Bool("verbose", false, "print a build summary after a successful compile")
	maxInline := flag.Int("max-inline", 0, "conditional/helper body line budget (default 20)")
	configPath := flag.String("config", "acacia.toml", "project config file to merge defaults from")

	flag.Parse()

	if *showVersion {
		fmt.Printf("Acacia compiler version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: acacia [options] <file>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	entryFile := args[0]

	opts := compiler.Options{
		EntryFile:        entryFile,
		OutputDir:        *outputDir,
		MCVersion:        *mcVersion,
		EducationEdition: *education,
		Scoreboard:       *scoreboard,
		FunctionFolder:   *functionFolder,
		MainFile:         *mainFile,
		InitFile:         *initFile,
		InternalFolder:   *internalFolder,
		TagPrefix:        *tagPrefix,
		DebugComments:    *debugComments,
		NoOptimize:       *noOptimize,
		OverrideOld:      *overrideOld,
		Encoding:         *encoding,
		Verbose:          *verbose,
		MaxInline:        *maxInline,
	}

	// A project config only fills in options still at their zero value
	// (ApplyTo skips every non-zero field), so a flag given a non-zero
	// value always wins.
	if cfgPath := *configPath; cfgPath != "" {
		if abs, err := filepath.Abs(cfgPath); err == nil {
			cfgPath = abs
		}
		if pc, err := compiler.LoadProjectConfig(cfgPath); err == nil {
			opts = pc.ApplyTo(opts)
		} else {
			fmt.Fprintf(os.Stderr, "Acacia: warning: %s\n", err)
		}
	}

	result := compiler.Compile(opts)
	if result.Output != "" {
		fmt.Fprint(os.Stderr, result.Output)
	}
	if !result.Success {
		os.Exit(1)
	}
}
