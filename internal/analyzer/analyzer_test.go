package analyzer

import (
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/frontend/lexer"
	"github.com/creepebucket/AcaciaMC/internal/frontend/parser"
	"github.com/creepebucket/AcaciaMC/internal/ir"
	"github.com/creepebucket/AcaciaMC/internal/semantics/consteval"
)

func analyze(t *testing.T, src string) (*ir.Program, *Analyzer, *diagnostics.DiagnosticBag) {
	t.Helper()
	diag := diagnostics.NewDiagnosticBag("test.acacia")
	toks := lexer.New("test.acacia", src, diag).Tokenize(false)
	mod := parser.Parse(toks, "test.acacia", diag)
	if diag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", diag.Diagnostics())
	}
	a := New("test.acacia", diag, Config{MainFile: "main", InitFile: "init", TagPrefix: "acacia"})
	prog, ok := a.Run(mod)
	if !ok {
		t.Fatalf("unexpected analysis errors: %v", diag.Diagnostics())
	}
	return prog, a, diag
}

func TestConstIfOnlyEmitsTakenBranch(t *testing.T) {
	prog, _, _ := analyze(t, "if True:\n    /say then\nelse:\n    /say else\n")
	if len(prog.Main) != 1 || prog.Main[0].Kind != ir.OpRaw || prog.Main[0].Line != "say then" {
		t.Errorf("got %+v, want a single OpRaw 'say then'", prog.Main)
	}
}

func TestRuntimeIfLowersToConditional(t *testing.T) {
	prog, _, _ := analyze(t, "x := 5\nif x > 3:\n    /say big\n")
	var sawConditional bool
	for _, instr := range prog.Main {
		if instr.Kind == ir.OpConditional {
			sawConditional = true
			if instr.Cond == nil {
				t.Errorf("conditional instruction missing its Cond")
			}
		}
	}
	if !sawConditional {
		t.Errorf("expected a runtime conditional in %+v", prog.Main)
	}
}

func TestShadowedNameInSameFrameIsRejected(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag("test.acacia")
	toks := lexer.New("test.acacia", "x := 1\nx := 2\n", diag).Tokenize(false)
	mod := parser.Parse(toks, "test.acacia", diag)
	if diag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", diag.Diagnostics())
	}
	a := New("test.acacia", diag, Config{MainFile: "main", InitFile: "init", TagPrefix: "acacia"})
	_, ok := a.Run(mod)
	if ok {
		t.Fatalf("expected redeclaring x at module scope to fail")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrShadowedName {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrShadowedName)
	}
}

func TestConstFunctionCallFoldsWithoutRuntimeCall(t *testing.T) {
	prog, a, diag := analyze(t, "def sum(a: int, b: int) -> int:\n    result a + b\n\nsum(200, -184)\n")
	if len(prog.Main) != 0 {
		t.Errorf("expected no runtime instructions for a fully constant call, got %+v", prog.Main)
	}
	decl, ok := a.funcs["sum"]
	if !ok {
		t.Fatalf("sum was not collected as a top-level function")
	}
	v, ok := a.callConst(decl, constArgs(t, decl, 200, -184))
	if !ok {
		t.Fatalf("expected sum(200, -184) to fold: %v", diag.Diagnostics())
	}
	if v.I != 16 {
		t.Errorf("got %d, want 16", v.I)
	}
}

func constArgs(t *testing.T, decl *ast.FuncDecl, ints ...int32) []*consteval.Value {
	t.Helper()
	vals := make([]*consteval.Value, len(ints))
	for i, n := range ints {
		vals[i] = consteval.Int(n)
	}
	return vals
}

func TestEndlessWhileIsRejected(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag("test.acacia")
	toks := lexer.New("test.acacia", "while True:\n    pass\n", diag).Tokenize(false)
	mod := parser.Parse(toks, "test.acacia", diag)
	if diag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", diag.Diagnostics())
	}
	a := New("test.acacia", diag, Config{MainFile: "main", InitFile: "init", TagPrefix: "acacia"})
	_, ok := a.Run(mod)
	if ok {
		t.Fatalf("expected a constant-true while loop to be rejected")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrEndlessWhile {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrEndlessWhile)
	}
}

func TestForInUnrollsOverConstantList(t *testing.T) {
	prog, _, _ := analyze(t, "for n in [1, 2, 3]:\n    print(n)\n")
	if len(prog.Main) != 3 {
		t.Fatalf("got %d instructions, want 3 (one tellraw per element)", len(prog.Main))
	}
	for i, instr := range prog.Main {
		if instr.Kind != ir.OpTellraw {
			t.Errorf("instr %d: got kind %v, want OpTellraw", i, instr.Kind)
		}
	}
	if prog.Main[1].Line != "2" {
		t.Errorf("instr 1: got line %q, want %q", prog.Main[1].Line, "2")
	}
}

func TestWhileLowersToSelfRecursiveHelperInterface(t *testing.T) {
	prog, _, _ := analyze(t, "x := 0\nwhile x < 3:\n    x += 1\n")
	if len(prog.Interfaces) != 1 {
		t.Fatalf("got %d helper interfaces, want 1: %+v", len(prog.Interfaces), prog.Interfaces)
	}
	helper := prog.Interfaces[0]
	var sawSelfCall bool
	for _, instr := range helper.Body {
		if instr.Kind == ir.OpConditional {
			for _, inner := range instr.Then {
				if inner.Kind == ir.OpCall && inner.Target == helper.Path {
					sawSelfCall = true
				}
			}
		}
	}
	if !sawSelfCall {
		t.Errorf("expected the while helper to call itself, got %+v", helper.Body)
	}
}
