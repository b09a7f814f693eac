package pipeline

import (
	"strings"
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/analyzer"
	"github.com/creepebucket/AcaciaMC/internal/emitter"
)

func run(t *testing.T, src string) Result {
	t.Helper()
	cfg := Config{
		Analyzer: analyzer.Config{MainFile: "main", InitFile: "init", TagPrefix: "acacia"},
		Emitter:  emitter.Config{MaxInline: 20},
	}
	return Run("test.acacia", src, cfg, nil)
}

// TestConstantFoldingReachesInitFile is spec.md §8's S1 scenario end to end:
// a compile-time-constant expression folds during analysis and its literal
// result lands in the init file with no runtime add emitted.
func TestConstantFoldingReachesInitFile(t *testing.T) {
	res := run(t, "x := 0XF2e + 0b11\n")
	if !res.OK {
		t.Fatalf("pipeline failed: %v", res.Diag.Diagnostics())
	}
	init := res.Files["init.mcfunction"]
	if !strings.Contains(init, "scoreboard players set v0 acacia 3889") {
		t.Errorf("init file missing folded constant: %q", init)
	}
	if strings.Contains(init, "scoreboard players operation") {
		t.Errorf("no runtime add should be emitted for a fully constant expression: %q", init)
	}
}

func TestRuntimeIfProducesExecuteChainInMain(t *testing.T) {
	res := run(t, "x := 5\nif x > 3:\n    /say big\n")
	if !res.OK {
		t.Fatalf("pipeline failed: %v", res.Diag.Diagnostics())
	}
	main := res.Files["main.mcfunction"]
	if !strings.Contains(main, "execute if score") || !strings.Contains(main, "run say big") {
		t.Errorf("main file missing conditional execute chain: %q", main)
	}
}

func TestInterfaceGetsItsOwnFile(t *testing.T) {
	res := run(t, "interface combat.on_hit:\n    /say hit\n")
	if !res.OK {
		t.Fatalf("pipeline failed: %v", res.Diag.Diagnostics())
	}
	if !strings.Contains(res.Files["combat.on_hit.mcfunction"], "say hit") {
		t.Errorf("expected a combat.on_hit.mcfunction file, got %v", res.Files)
	}
}

func TestReservedInterfacePathFailsThePipeline(t *testing.T) {
	res := run(t, "interface main:\n    /say oops\n")
	if res.OK {
		t.Fatalf("expected failure for an interface path reserved by the entry file, got files %v", res.Files)
	}
	if !res.Diag.HasErrors() {
		t.Errorf("expected a reservedinterfacepath diagnostic")
	}
}
