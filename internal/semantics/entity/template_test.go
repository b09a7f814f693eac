package entity

import (
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/source"
)

func name(n string) *ast.IdentifierExpr {
	return &ast.IdentifierExpr{Name: n}
}

func method(n string, q ast.MethodQualifier) *ast.FuncDecl {
	return &ast.FuncDecl{Name: name(n), Qualifier: q, Body: &ast.Block{}}
}

func buildOrFatal(t *testing.T, decl *ast.EntityDecl, bases []*Template) *Template {
	t.Helper()
	diag := diagnostics.NewDiagnosticBag("test.acacia")
	tpl, ok := Build(decl, bases, "test.acacia", diag)
	if !ok {
		t.Fatalf("Build failed unexpectedly: %v", diag.Diagnostics())
	}
	return tpl
}

func TestSingleBaseAttributesAndMethodsAreInherited(t *testing.T) {
	base := buildOrFatal(t, &ast.EntityDecl{
		Name:       name("Mob"),
		Attributes: []*ast.Attribute{{Name: name("health")}},
		Methods:    []*ast.FuncDecl{method("attack", ast.MQVirtual)},
	}, nil)

	derived := buildOrFatal(t, &ast.EntityDecl{
		Name:    name("Zombie"),
		Methods: []*ast.FuncDecl{method("attack", ast.MQOverride)},
	}, []*Template{base})

	if _, ok := derived.Attributes["health"]; !ok {
		t.Errorf("Zombie should inherit Mob's 'health' attribute")
	}
	if m, ok := derived.Methods["attack"]; !ok || m.DefinedBy != derived {
		t.Errorf("Zombie's own override of 'attack' should win, got %+v", m)
	}
	if len(derived.MRO) != 2 || derived.MRO[0] != derived || derived.MRO[1] != base {
		t.Errorf("unexpected MRO: %+v", derived.MRO)
	}
}

func TestOverrideWithoutQualifierIsRejected(t *testing.T) {
	base := buildOrFatal(t, &ast.EntityDecl{
		Name:    name("Mob"),
		Methods: []*ast.FuncDecl{method("attack", ast.MQVirtual)},
	}, nil)

	diag := diagnostics.NewDiagnosticBag("test.acacia")
	_, ok := Build(&ast.EntityDecl{
		Name:    name("Zombie"),
		Methods: []*ast.FuncDecl{method("attack", ast.MQNone)},
	}, []*Template{base}, "test.acacia", diag)

	if ok {
		t.Fatalf("expected Build to fail when shadowing a virtual method without 'override'")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrOverrideQualifier {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrOverrideQualifier)
	}
}

func TestOverrideOfNonVirtualIsNotOverriding(t *testing.T) {
	base := buildOrFatal(t, &ast.EntityDecl{
		Name:    name("Mob"),
		Methods: []*ast.FuncDecl{method("attack", ast.MQNone)},
	}, nil)

	diag := diagnostics.NewDiagnosticBag("test.acacia")
	_, ok := Build(&ast.EntityDecl{
		Name:    name("Zombie"),
		Methods: []*ast.FuncDecl{method("attack", ast.MQOverride)},
	}, []*Template{base}, "test.acacia", diag)

	if ok {
		t.Fatalf("expected Build to fail: 'attack' is not virtual in Mob")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrNotOverriding {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrNotOverriding)
	}
}

func TestAttributeMethodNameClashIsRejected(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag("test.acacia")
	_, ok := Build(&ast.EntityDecl{
		Name:       name("Thing"),
		Attributes: []*ast.Attribute{{Name: name("value")}},
		Methods:    []*ast.FuncDecl{method("value", ast.MQNone)},
	}, nil, "test.acacia", diag)

	if ok {
		t.Fatalf("expected Build to fail: 'value' is both an attribute and a method")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrMethodAttrConflict {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrMethodAttrConflict)
	}
}

func TestDiamondInheritanceLinearizesConsistently(t *testing.T) {
	root := buildOrFatal(t, &ast.EntityDecl{Name: name("Root")}, nil)
	left := buildOrFatal(t, &ast.EntityDecl{Name: name("Left")}, []*Template{root})
	right := buildOrFatal(t, &ast.EntityDecl{Name: name("Right")}, []*Template{root})
	diamond := buildOrFatal(t, &ast.EntityDecl{Name: name("Diamond")}, []*Template{left, right})

	if len(diamond.MRO) != 4 {
		t.Fatalf("got MRO length %d, want 4: %+v", len(diamond.MRO), diamond.MRO)
	}
	if diamond.MRO[0] != diamond || diamond.MRO[len(diamond.MRO)-1] != root {
		t.Errorf("unexpected MRO shape: %+v", diamond.MRO)
	}
}

func TestInconsistentMROIsRejected(t *testing.T) {
	a := buildOrFatal(t, &ast.EntityDecl{Name: name("A")}, nil)
	b := buildOrFatal(t, &ast.EntityDecl{Name: name("B")}, nil)
	// A fake base pair whose own MROs disagree about A-before-B vs B-before-A.
	x := &Template{Name: "X", MRO: []*Template{a, b}}
	y := &Template{Name: "Y", MRO: []*Template{b, a}}

	diag := diagnostics.NewDiagnosticBag("test.acacia")
	_, ok := Build(&ast.EntityDecl{Name: name("Z"), Location: source.Location{}}, []*Template{x, y}, "test.acacia", diag)
	if ok {
		t.Fatalf("expected an inconsistent MRO to fail Build")
	}
	if diag.Diagnostics()[0].Code != diagnostics.ErrMRO {
		t.Errorf("got code %q, want %q", diag.Diagnostics()[0].Code, diagnostics.ErrMRO)
	}
}
