package ast

import (
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

func loc() source.Location {
	start := &source.Position{Line: 1, Column: 1}
	end := &source.Position{Line: 1, Column: 2}
	return *source.NewLocation(nil, start, end)
}

func TestExpressionNodesSatisfyExpression(t *testing.T) {
	var exprs []Expression
	exprs = append(exprs,
		&BinaryExpr{Location: loc()},
		&CompareExpr{Location: loc()},
		&UnaryExpr{Location: loc()},
		&IdentifierExpr{Name: "x", Location: loc()},
		&CallExpr{Location: loc()},
		&AttributeExpr{Location: loc()},
		&SubscriptExpr{Location: loc()},
		&ListExpr{Location: loc()},
		&MapExpr{Location: loc()},
		&StructLitExpr{Location: loc()},
		&FStringExpr{Location: loc()},
		&SelectorLitExpr{Location: loc()},
		&ParenExpr{Location: loc()},
		&BasicLit{Kind: INT, Value: "1", Location: loc()},
	)
	for _, e := range exprs {
		if e.Loc() == nil {
			t.Errorf("%T.Loc() returned nil", e)
		}
	}
}

func TestStatementNodesSatisfyStatement(t *testing.T) {
	var stmts []Statement
	stmts = append(stmts,
		&AssignStmt{Location: loc()},
		&DeclAssignStmt{Location: loc()},
		&AugAssignStmt{Location: loc()},
		&VarDecl{Location: loc()},
		&ConstDecl{Location: loc()},
		&ReferenceDecl{Location: loc()},
		&RawCommandStmt{Location: loc()},
		&ResultStmt{Location: loc()},
		&NewCallStmt{Location: loc()},
		&ImportStmt{Location: loc()},
		&PassStmt{Location: loc()},
		&ExprStmt{Location: loc()},
		&IfStmt{Location: loc()},
		&WhileStmt{Location: loc()},
		&ForInStmt{Location: loc()},
	)
	for _, s := range stmts {
		if s.Loc() == nil {
			t.Errorf("%T.Loc() returned nil", s)
		}
	}
}

func TestFuncDeclFlavorDefaultsToRuntime(t *testing.T) {
	f := &FuncDecl{Name: &IdentifierExpr{Name: "f"}, Location: loc()}
	if f.Flavor != types.FlavorRuntime {
		t.Errorf("zero-value FuncDecl.Flavor = %v, want FlavorRuntime", f.Flavor)
	}
}

func TestEntityDeclAndStructDeclAreDecls(t *testing.T) {
	var decls []Decl
	decls = append(decls,
		&FuncDecl{Location: loc()},
		&EntityDecl{Location: loc()},
		&StructDecl{Location: loc()},
		&InterfaceDecl{Location: loc()},
		&VarDecl{Location: loc()},
		&ConstDecl{Location: loc()},
		&ReferenceDecl{Location: loc()},
	)
	for _, d := range decls {
		if d.Loc() == nil {
			t.Errorf("%T.Loc() returned nil", d)
		}
	}
}
