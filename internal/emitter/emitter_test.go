package emitter

import (
	"strings"
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/ir"
)

func TestInitFileDeclaresObjectiveAndLiteralInit(t *testing.T) {
	prog := &ir.Program{
		Init: []*ir.Instr{{Kind: ir.OpAssignLiteral, Dst: &ir.Slot{Name: "x"}, Lit: 42}},
	}
	files, err := Emit(prog, Config{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	init := files["init.mcfunction"]
	if !strings.Contains(init, "scoreboard objectives add acacia dummy") {
		t.Errorf("init file missing objective declaration: %q", init)
	}
	if !strings.Contains(init, "scoreboard players set x acacia 42") {
		t.Errorf("init file missing literal init: %q", init)
	}
}

func TestSimpleMainBodyRendersScoreboardCommands(t *testing.T) {
	prog := &ir.Program{
		Main: []*ir.Instr{
			{Kind: ir.OpScoreAdd, Dst: &ir.Slot{Name: "x"}, Src: &ir.Slot{Name: "y"}},
			{Kind: ir.OpTellraw, Line: "hi"},
		},
	}
	files, err := Emit(prog, Config{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	main := files["main.mcfunction"]
	if !strings.Contains(main, "scoreboard players operation x acacia += y acacia") {
		t.Errorf("main missing score add: %q", main)
	}
	if !strings.Contains(main, `tellraw @a {"text":"hi"}`) {
		t.Errorf("main missing tellraw: %q", main)
	}
}

func TestConditionalInlinesWithinMaxInlineBudget(t *testing.T) {
	cond := &ir.Cond{Slot: &ir.Slot{Name: "x"}, Min: 1, Max: 1}
	prog := &ir.Program{
		Main: []*ir.Instr{{
			Kind: ir.OpConditional,
			Cond: cond,
			Then: []*ir.Instr{{Kind: ir.OpRaw, Line: "say big"}},
		}},
	}
	files, err := Emit(prog, Config{MaxInline: 20})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	main := files["main.mcfunction"]
	if !strings.Contains(main, "execute if score x acacia matches 1 run say big") {
		t.Errorf("got %q, want inlined execute run", main)
	}
	if len(files) != 2 { // main + init only, no helper spilled
		t.Errorf("got %d files, want 2 (no helper spill): %v", len(files), files)
	}
}

func TestConditionalSinksToHelperFileBeyondMaxInline(t *testing.T) {
	cond := &ir.Cond{Slot: &ir.Slot{Name: "x"}, Min: 1, Max: 1}
	body := []*ir.Instr{
		{Kind: ir.OpRaw, Line: "say a"},
		{Kind: ir.OpRaw, Line: "say b"},
		{Kind: ir.OpRaw, Line: "say c"},
	}
	prog := &ir.Program{
		Main: []*ir.Instr{{Kind: ir.OpConditional, Cond: cond, Then: body}},
	}
	files, err := Emit(prog, Config{MaxInline: 2})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	main := files["main.mcfunction"]
	if !strings.Contains(main, "execute if score x acacia matches 1 run function acacia:_acacia/h1") {
		t.Errorf("got %q, want a function call to the spilled helper", main)
	}
	helper, ok := files["_acacia/h1.mcfunction"]
	if !ok {
		t.Fatalf("expected helper file, got %v", files)
	}
	if !strings.Contains(helper, "say a") || !strings.Contains(helper, "say c") {
		t.Errorf("helper missing body lines: %q", helper)
	}
}

func TestReservedInterfacePathRejected(t *testing.T) {
	prog := &ir.Program{
		Interfaces: []*ir.Interface{{Path: "main", Body: nil}},
	}
	if _, err := Emit(prog, Config{}); err == nil {
		t.Fatalf("expected reserved-path error")
	}
}

func TestSingletonHelperInlinedAwayAtCallSite(t *testing.T) {
	cfg := Config{MaxInline: 5}
	r := newRenderer(cfg)
	r.declared["main"] = true
	r.setFile("main", []string{"function " + cfg.qualify("_acacia/h1")})
	r.setFile("_acacia/h1", []string{"say only"})

	inlineSingletons(r)

	if _, ok := r.files["_acacia/h1"]; ok {
		t.Errorf("expected singleton helper to be inlined away, got %v", r.files)
	}
	if got := r.files["main"][0]; got != "say only" {
		t.Errorf("got %q, want the helper's single line inlined at the call site", got)
	}
}

func TestDeclaredInterfaceSurvivesEvenAsSingleton(t *testing.T) {
	cfg := Config{MaxInline: 5}
	r := newRenderer(cfg)
	r.declared["main"] = true
	r.declared["util.helper"] = true
	r.setFile("main", []string{"function " + cfg.qualify("util.helper")})
	r.setFile("util.helper", []string{"say only"})

	inlineSingletons(r)

	if _, ok := r.files["util.helper"]; !ok {
		t.Errorf("declared interface must keep its own file even when it collapses to one line")
	}
	if got := r.files["main"][0]; got != "function "+cfg.qualify("util.helper") {
		t.Errorf("call site to a declared interface must not be rewritten, got %q", got)
	}
}
