package consteval

import (
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/frontend/lexer"
	"github.com/creepebucket/AcaciaMC/internal/frontend/parser"
	"github.com/creepebucket/AcaciaMC/internal/semantics/symbols"
)

// evalExpr lexes, parses, and folds the single expression statement src
// reduces to, exercising the evaluator the way the analyzer's tryConst/
// mustConst helpers do.
func evalExpr(t *testing.T, src string) (*Value, *diagnostics.DiagnosticBag) {
	t.Helper()
	diag := diagnostics.NewDiagnosticBag("test.acacia")
	toks := lexer.New("test.acacia", src+"\n", diag).Tokenize(false)
	mod := parser.Parse(toks, "test.acacia", diag)
	if diag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", diag.Diagnostics())
	}
	exprStmt, ok := mod.Stmts[len(mod.Stmts)-1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("last statement is %T, want *ast.ExprStmt", mod.Stmts[len(mod.Stmts)-1])
	}
	e := &Evaluator{Diag: diag, FilePath: "test.acacia"}
	v, _ := e.Eval(exprStmt.X, symbols.NewScope(nil))
	return v, diag
}

func TestArithmeticFoldsToInt(t *testing.T) {
	v, diag := evalExpr(t, "3 + 4 * 2")
	if diag.HasErrors() {
		t.Fatalf("unexpected errors: %v", diag.Diagnostics())
	}
	if v.Kind != VInt || v.I != 11 {
		t.Errorf("got %+v, want int 11", v)
	}
}

func TestDivisionByZeroIsConstArithmeticError(t *testing.T) {
	_, diag := evalExpr(t, "1 / 0")
	if !diag.HasErrors() {
		t.Fatalf("expected a division-by-zero error")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrConstArithmetic {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrConstArithmetic)
	}
}

func TestIntOverflowIsConstArithmeticError(t *testing.T) {
	_, diag := evalExpr(t, "2147483647 + 1")
	if !diag.HasErrors() {
		t.Fatalf("expected an overflow error")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrConstArithmetic {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrConstArithmetic)
	}
}

func TestListIndexOutOfBounds(t *testing.T) {
	_, diag := evalExpr(t, "[1, 2, 3][5]")
	if !diag.HasErrors() {
		t.Fatalf("expected an out-of-bounds error")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrListIndexOOB {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrListIndexOOB)
	}
}

func TestNegativeListIndexWrapsAround(t *testing.T) {
	v, diag := evalExpr(t, "[1, 2, 3][-1]")
	if diag.HasErrors() {
		t.Fatalf("unexpected errors: %v", diag.Diagnostics())
	}
	if v.Kind != VInt || v.I != 3 {
		t.Errorf("got %+v, want int 3", v)
	}
}

func TestMapKeyNotFound(t *testing.T) {
	_, diag := evalExpr(t, `{"a": 1}["b"]`)
	if !diag.HasErrors() {
		t.Fatalf("expected a key-not-found error")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrMapKeyNotFound {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrMapKeyNotFound)
	}
}

func TestChainedComparison(t *testing.T) {
	v, diag := evalExpr(t, "1 < 2 < 3")
	if diag.HasErrors() {
		t.Fatalf("unexpected errors: %v", diag.Diagnostics())
	}
	if v.Kind != VBool || !v.B {
		t.Errorf("got %+v, want true", v)
	}
}

func TestChainedComparisonShortCircuitsOnFirstFailure(t *testing.T) {
	v, diag := evalExpr(t, "1 < 2 > 5")
	if diag.HasErrors() {
		t.Fatalf("unexpected errors: %v", diag.Diagnostics())
	}
	if v.Kind != VBool || v.B {
		t.Errorf("got %+v, want false", v)
	}
}

func TestListRepetitionRequiresLiteralFactor(t *testing.T) {
	_, diag := evalExpr(t, "[1] * (1 + 2)")
	if !diag.HasErrors() {
		t.Fatalf("expected a non-literal-factor error")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrListMultNonLiteral {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrListMultNonLiteral)
	}
}

func TestListRepetitionWithLiteralFactor(t *testing.T) {
	v, diag := evalExpr(t, "[1, 2] * 2")
	if diag.HasErrors() {
		t.Fatalf("unexpected errors: %v", diag.Diagnostics())
	}
	if len(v.List) != 4 {
		t.Fatalf("got %d elements, want 4", len(v.List))
	}
}

func TestDuplicateMapKeyIsInvalidMapKey(t *testing.T) {
	_, diag := evalExpr(t, `{"a": 1, "a": 2}`)
	if !diag.HasErrors() {
		t.Fatalf("expected a duplicate-key error")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrInvalidMapKey {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrInvalidMapKey)
	}
}
