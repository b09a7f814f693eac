package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompileInMemorySucceedsWithoutTouchingDisk(t *testing.T) {
	res := Compile(Options{Code: "x := 0XF2e + 0b11\n"})
	if !res.Success {
		t.Fatalf("expected success, got output: %s", res.Output)
	}
	if !strings.Contains(res.Files["init.mcfunction"], "3889") {
		t.Errorf("expected folded constant in init file, got %v", res.Files)
	}
	if len(res.WrittenFiles) != 0 {
		t.Errorf("no OutputDir was given, nothing should have been written: %v", res.WrittenFiles)
	}
}

func TestCompileWritesOutputDir(t *testing.T) {
	dir := t.TempDir()
	res := Compile(Options{Code: "x := 1\n", OutputDir: dir})
	if !res.Success {
		t.Fatalf("expected success, got output: %s", res.Output)
	}
	if len(res.WrittenFiles) == 0 {
		t.Fatalf("expected files written to %s", dir)
	}
	if _, err := os.Stat(filepath.Join(dir, "main.mcfunction")); err != nil {
		t.Errorf("main.mcfunction missing on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "init.mcfunction")); err != nil {
		t.Errorf("init.mcfunction missing on disk: %v", err)
	}
}

func TestCompileRefusesToOverwriteWithoutOverrideOld(t *testing.T) {
	dir := t.TempDir()
	if res := Compile(Options{Code: "x := 1\n", OutputDir: dir}); !res.Success {
		t.Fatalf("first compile failed: %s", res.Output)
	}
	res := Compile(Options{Code: "x := 2\n", OutputDir: dir})
	if res.Success {
		t.Fatalf("expected failure on re-compile without --override-old")
	}
	if !strings.Contains(res.Output, "already exists") {
		t.Errorf("expected a conflict message, got %q", res.Output)
	}
}

func TestCompileOverrideOldAllowsRewrite(t *testing.T) {
	dir := t.TempDir()
	if res := Compile(Options{Code: "x := 1\n", OutputDir: dir}); !res.Success {
		t.Fatalf("first compile failed: %s", res.Output)
	}
	res := Compile(Options{Code: "x := 2\n", OutputDir: dir, OverrideOld: true})
	if !res.Success {
		t.Fatalf("expected success with --override-old, got: %s", res.Output)
	}
	data, err := os.ReadFile(filepath.Join(dir, "init.mcfunction"))
	if err != nil {
		t.Fatalf("reading init.mcfunction: %v", err)
	}
	if !strings.Contains(string(data), "2") {
		t.Errorf("expected the overwritten build's constant, got %q", string(data))
	}
}

func TestCompileRejectsInvalidIdentifierOption(t *testing.T) {
	res := Compile(Options{Code: "x := 1\n", Scoreboard: "9bad"})
	if res.Success {
		t.Fatalf("expected failure for a scoreboard name starting with a digit")
	}
	if !strings.Contains(res.Output, "Acacia: error: option scoreboard") {
		t.Errorf("got %q, want an \"Acacia: error: option scoreboard\" message", res.Output)
	}
}

func TestCompileVerboseSetsBuildID(t *testing.T) {
	res := Compile(Options{Code: "x := 1\n", Verbose: true})
	if res.BuildID == "" {
		t.Errorf("expected a build ID in verbose mode")
	}
	if strings.Contains(res.Files["main.mcfunction"], res.BuildID) || strings.Contains(res.Files["init.mcfunction"], res.BuildID) {
		t.Errorf("build ID must never leak into emitted command text")
	}
}

func TestCompileReportsReservedInterfacePath(t *testing.T) {
	res := Compile(Options{Code: "interface main:\n    /say oops\n"})
	if res.Success {
		t.Fatalf("expected failure for an interface path reserved by the entry file")
	}
}
