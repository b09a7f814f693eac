package parser

import (
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/frontend/lexer"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

func parse(t *testing.T, src string) (*ast.Module, *diagnostics.DiagnosticBag) {
	t.Helper()
	diag := diagnostics.NewDiagnosticBag("test.acacia")
	l := lexer.New("test.acacia", src, diag)
	toks := l.Tokenize(false)
	mod := Parse(toks, "test.acacia", diag)
	return mod, diag
}

func requireNoErrors(t *testing.T, diag *diagnostics.DiagnosticBag) {
	t.Helper()
	if diag.HasErrors() {
		t.Fatalf("unexpected errors: %v", diag.Diagnostics())
	}
}

func TestParsesWalrusDeclAndAssign(t *testing.T) {
	mod, diag := parse(t, "x := 1\nx = 2\n")
	requireNoErrors(t, diag)
	if len(mod.Stmts) != 2 {
		t.Fatalf("want 2 statements, got %d", len(mod.Stmts))
	}
	decl, ok := mod.Stmts[0].(*ast.DeclAssignStmt)
	if !ok {
		t.Fatalf("stmt 0 is %T, want *ast.DeclAssignStmt", mod.Stmts[0])
	}
	if decl.Name.Name != "x" {
		t.Errorf("decl name = %q, want x", decl.Name.Name)
	}
	if _, ok := mod.Stmts[1].(*ast.AssignStmt); !ok {
		t.Fatalf("stmt 1 is %T, want *ast.AssignStmt", mod.Stmts[1])
	}
}

func TestAnnotatedVarDecl(t *testing.T) {
	mod, diag := parse(t, "health: Int = 20\n")
	requireNoErrors(t, diag)
	v, ok := mod.Stmts[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.VarDecl", mod.Stmts[0])
	}
	if v.Type == nil {
		t.Errorf("expected a type annotation")
	}
	if ident, ok := v.Type.(*ast.IdentifierExpr); !ok || ident.Name != "Int" {
		t.Errorf("type = %#v, want identifier Int", v.Type)
	}
}

func TestOperatorPrecedenceArithmeticOverComparison(t *testing.T) {
	// a + b < c * d  must parse as  (a + b) < (c * d), a single CompareExpr
	// whose two operands are themselves BinaryExprs.
	mod, diag := parse(t, "if a + b < c * d:\n    pass\n")
	requireNoErrors(t, diag)
	ifs, ok := mod.Stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStmt", mod.Stmts[0])
	}
	cmp, ok := ifs.Cond.(*ast.CompareExpr)
	if !ok {
		t.Fatalf("cond is %T, want *ast.CompareExpr", ifs.Cond)
	}
	if len(cmp.Operands) != 2 || len(cmp.Ops) != 1 || cmp.Ops[0] != tokens.LT {
		t.Fatalf("unexpected compare shape: %+v", cmp)
	}
	if _, ok := cmp.Operands[0].(*ast.BinaryExpr); !ok {
		t.Errorf("left operand is %T, want *ast.BinaryExpr (a + b)", cmp.Operands[0])
	}
	if _, ok := cmp.Operands[1].(*ast.BinaryExpr); !ok {
		t.Errorf("right operand is %T, want *ast.BinaryExpr (c * d)", cmp.Operands[1])
	}
}

func TestChainedComparisonIsOneCompareExpr(t *testing.T) {
	mod, diag := parse(t, "if a < b <= c:\n    pass\n")
	requireNoErrors(t, diag)
	ifs := mod.Stmts[0].(*ast.IfStmt)
	cmp, ok := ifs.Cond.(*ast.CompareExpr)
	if !ok {
		t.Fatalf("cond is %T, want *ast.CompareExpr", ifs.Cond)
	}
	if len(cmp.Operands) != 3 || len(cmp.Ops) != 2 {
		t.Fatalf("want a 3-operand chain, got %+v", cmp)
	}
}

func TestNotBindsLooserThanComparison(t *testing.T) {
	// `not a == b` must be `not (a == b)`, i.e. a UnaryExpr wrapping a
	// CompareExpr, never a comparison between `not a` and `b`.
	mod, diag := parse(t, "x := not a == b\n")
	requireNoErrors(t, diag)
	decl := mod.Stmts[0].(*ast.DeclAssignStmt)
	un, ok := decl.Rhs.(*ast.UnaryExpr)
	if !ok {
		t.Fatalf("rhs is %T, want *ast.UnaryExpr", decl.Rhs)
	}
	if un.Op != tokens.KW_NOT {
		t.Errorf("unary op = %v, want not", un.Op)
	}
	if _, ok := un.X.(*ast.CompareExpr); !ok {
		t.Errorf("unary operand is %T, want *ast.CompareExpr", un.X)
	}
}

func TestEmptyBlockReportsError(t *testing.T) {
	src := "if x == 1:\n\ny = 2\n"
	_, diag := parse(t, src)
	if !diag.HasErrors() {
		t.Fatalf("expected an empty-block error")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrEmptyBlock {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrEmptyBlock)
	}
}

func TestIfElifElseChain(t *testing.T) {
	src := "if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n"
	mod, diag := parse(t, src)
	requireNoErrors(t, diag)
	top := mod.Stmts[0].(*ast.IfStmt)
	elif, ok := top.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("top.Else is %T, want *ast.IfStmt (elif)", top.Else)
	}
	if _, ok := elif.Else.(*ast.Block); !ok {
		t.Fatalf("elif.Else is %T, want *ast.Block (else)", elif.Else)
	}
}

func TestFuncDeclFlavorKeywords(t *testing.T) {
	cases := []struct {
		src    string
		flavor types.Flavor
	}{
		{"def f():\n    pass\n", types.FlavorRuntime},
		{"inline def f():\n    pass\n", types.FlavorInline},
		{"const def f():\n    pass\n", types.FlavorCompileTime},
	}
	for _, c := range cases {
		mod, diag := parse(t, c.src)
		requireNoErrors(t, diag)
		fn, ok := mod.Stmts[0].(*ast.FuncDecl)
		if !ok {
			t.Fatalf("%q: got %T, want *ast.FuncDecl", c.src, mod.Stmts[0])
		}
		if fn.Flavor != c.flavor {
			t.Errorf("%q: flavor = %v, want %v", c.src, fn.Flavor, c.flavor)
		}
	}
}

func TestFuncDeclParamPortsAndDefault(t *testing.T) {
	src := "def heal(target: Int, reference out: Int, const amount: Int = 5):\n    pass\n"
	mod, diag := parse(t, src)
	requireNoErrors(t, diag)
	fn := mod.Stmts[0].(*ast.FuncDecl)
	if len(fn.Params) != 3 {
		t.Fatalf("want 3 params, got %d", len(fn.Params))
	}
	if fn.Params[0].Port != types.PortByValue {
		t.Errorf("param 0 port = %v, want by-value", fn.Params[0].Port)
	}
	if fn.Params[1].Port != types.PortByReference {
		t.Errorf("param 1 port = %v, want by-reference", fn.Params[1].Port)
	}
	if fn.Params[2].Port != types.PortConst || fn.Params[2].Default == nil {
		t.Errorf("param 2 = %+v, want const with a default", fn.Params[2])
	}
}

func TestEntityDeclExtractsTypeAndSpawnPos(t *testing.T) {
	src := "entity Zombie:\n" +
		"    const type = \"minecraft:zombie\"\n" +
		"    health: Int\n" +
		"    def attack():\n" +
		"        pass\n"
	mod, diag := parse(t, src)
	requireNoErrors(t, diag)
	ent, ok := mod.Stmts[0].(*ast.EntityDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.EntityDecl", mod.Stmts[0])
	}
	if ent.EntityType == nil {
		t.Fatalf("expected EntityType to be populated from 'const type = ...'")
	}
	if len(ent.Attributes) != 1 || ent.Attributes[0].Name.Name != "health" {
		t.Errorf("attributes = %+v, want one 'health' attribute", ent.Attributes)
	}
	if len(ent.Methods) != 1 || ent.Methods[0].Name.Name != "attack" {
		t.Errorf("methods = %+v, want one 'attack' method", ent.Methods)
	}
}

func TestEntityDeclWithBasesAndVirtualMethod(t *testing.T) {
	src := "entity Mob(Living):\n" +
		"    virtual def die():\n" +
		"        pass\n"
	mod, diag := parse(t, src)
	requireNoErrors(t, diag)
	ent := mod.Stmts[0].(*ast.EntityDecl)
	if len(ent.Bases) != 1 || ent.Bases[0].Name != "Living" {
		t.Fatalf("bases = %+v, want [Living]", ent.Bases)
	}
	if ent.Methods[0].Qualifier != ast.MQVirtual {
		t.Errorf("qualifier = %v, want MQVirtual", ent.Methods[0].Qualifier)
	}
}

func TestStructDeclFields(t *testing.T) {
	src := "struct Vec3:\n    x: Float\n    y: Float\n    z: Float\n"
	mod, diag := parse(t, src)
	requireNoErrors(t, diag)
	s, ok := mod.Stmts[0].(*ast.StructDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.StructDecl", mod.Stmts[0])
	}
	if len(s.Fields) != 3 {
		t.Fatalf("want 3 fields, got %d", len(s.Fields))
	}
}

func TestInterfaceDottedPath(t *testing.T) {
	src := "interface combat.on_hit:\n    pass\n"
	mod, diag := parse(t, src)
	requireNoErrors(t, diag)
	i, ok := mod.Stmts[0].(*ast.InterfaceDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.InterfaceDecl", mod.Stmts[0])
	}
	if i.Path != "combat.on_hit" {
		t.Errorf("path = %q, want combat.on_hit", i.Path)
	}
}

func TestForInAndWhile(t *testing.T) {
	mod, diag := parse(t, "for x in items:\n    pass\nwhile x < 10:\n    pass\n")
	requireNoErrors(t, diag)
	if _, ok := mod.Stmts[0].(*ast.ForInStmt); !ok {
		t.Fatalf("stmt 0 is %T, want *ast.ForInStmt", mod.Stmts[0])
	}
	if _, ok := mod.Stmts[1].(*ast.WhileStmt); !ok {
		t.Fatalf("stmt 1 is %T, want *ast.WhileStmt", mod.Stmts[1])
	}
}

func TestFormattedStringHoleIsParsedExpression(t *testing.T) {
	mod, diag := parse(t, "msg := \"hp: {hp + 1}\"\n")
	requireNoErrors(t, diag)
	decl := mod.Stmts[0].(*ast.DeclAssignStmt)
	fstr, ok := decl.Rhs.(*ast.FStringExpr)
	if !ok {
		t.Fatalf("rhs is %T, want *ast.FStringExpr", decl.Rhs)
	}
	var holeFound bool
	for _, seg := range fstr.Segments {
		if seg.Kind == ast.FSegHole {
			holeFound = true
			if _, ok := seg.Expr.(*ast.BinaryExpr); !ok {
				t.Errorf("hole expr is %T, want *ast.BinaryExpr", seg.Expr)
			}
		}
	}
	if !holeFound {
		t.Errorf("expected a hole segment in %+v", fstr.Segments)
	}
}

func TestSelectorLiteral(t *testing.T) {
	mod, diag := parse(t, "target := |sel: obj, c=1|\n")
	requireNoErrors(t, diag)
	decl := mod.Stmts[0].(*ast.DeclAssignStmt)
	sel, ok := decl.Rhs.(*ast.SelectorLitExpr)
	if !ok {
		t.Fatalf("rhs is %T, want *ast.SelectorLitExpr", decl.Rhs)
	}
	if sel.Kind != "sel" || len(sel.Args) != 2 {
		t.Fatalf("selector = %+v, want kind sel with 2 args", sel)
	}
}

func TestStructLiteral(t *testing.T) {
	mod, diag := parse(t, "p := Vec3{.x = 1, .y = 2, .z = 3}\n")
	requireNoErrors(t, diag)
	decl := mod.Stmts[0].(*ast.DeclAssignStmt)
	lit, ok := decl.Rhs.(*ast.StructLitExpr)
	if !ok {
		t.Fatalf("rhs is %T, want *ast.StructLitExpr", decl.Rhs)
	}
	if lit.Template.Name != "Vec3" || len(lit.Fields) != 3 {
		t.Fatalf("struct literal = %+v, want template Vec3 with 3 fields", lit)
	}
}

func TestRawCommandStatement(t *testing.T) {
	src := "x := 1\n/say hi ${x}\n"
	mod, diag := parse(t, src)
	requireNoErrors(t, diag)
	if _, ok := mod.Stmts[1].(*ast.RawCommandStmt); !ok {
		t.Fatalf("stmt 1 is %T, want *ast.RawCommandStmt", mod.Stmts[1])
	}
}

func TestResultAndNewCallStatements(t *testing.T) {
	src := "def f() -> Int:\n    result 1\n"
	mod, diag := parse(t, src)
	requireNoErrors(t, diag)
	fn := mod.Stmts[0].(*ast.FuncDecl)
	if _, ok := fn.Body.Stmts[0].(*ast.ResultStmt); !ok {
		t.Fatalf("body stmt is %T, want *ast.ResultStmt", fn.Body.Stmts[0])
	}
}

func TestImportWithAlias(t *testing.T) {
	mod, diag := parse(t, "import \"combat/utils\" as utils\n")
	requireNoErrors(t, diag)
	imp, ok := mod.Stmts[0].(*ast.ImportStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ImportStmt", mod.Stmts[0])
	}
	if imp.Path != "combat/utils" || imp.Alias == nil || imp.Alias.Name != "utils" {
		t.Errorf("import = %+v, want path combat/utils aliased utils", imp)
	}
}

func TestReferenceAndConstDecl(t *testing.T) {
	mod, diag := parse(t, "reference hp = target.health\nconst MAX = 20\n")
	requireNoErrors(t, diag)
	if _, ok := mod.Stmts[0].(*ast.ReferenceDecl); !ok {
		t.Fatalf("stmt 0 is %T, want *ast.ReferenceDecl", mod.Stmts[0])
	}
	if _, ok := mod.Stmts[1].(*ast.ConstDecl); !ok {
		t.Fatalf("stmt 1 is %T, want *ast.ConstDecl", mod.Stmts[1])
	}
}

func TestInvalidAssignTargetReportsError(t *testing.T) {
	_, diag := parse(t, "1 + 2 := 3\n")
	if !diag.HasErrors() {
		t.Fatalf("expected an invalid-assign-target error")
	}
}
