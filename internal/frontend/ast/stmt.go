package ast

import (
	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
)

// Module is one parsed source unit: its import path, and the top-level
// sequence of declarations and statements in source order.
type Module struct {
	FullPath   string
	ImportPath string
	Stmts      []Statement
	source.Location
}

func (m *Module) INode()                {}
func (m *Module) Loc() *source.Location { return &m.Location }

// AssignStmt is `lhs = rhs`, requiring lhs to already be declared with a
// type matching typeof(rhs) (spec.md §4.3).
type AssignStmt struct {
	Lhs Expression
	Rhs Expression
	source.Location
}

func (a *AssignStmt) INode()                {}
func (a *AssignStmt) Stmt()                 {}
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

// DeclAssignStmt is `name := rhs`: declares name in the current scope with
// typeof(rhs). Redeclaring an existing name in the same scope is
// *shadowedname* (caught by the analyzer, not the parser).
type DeclAssignStmt struct {
	Name *IdentifierExpr
	Rhs  Expression
	source.Location
}

func (d *DeclAssignStmt) INode()                {}
func (d *DeclAssignStmt) Stmt()                 {}
func (d *DeclAssignStmt) Loc() *source.Location { return &d.Location }

// AugAssignStmt is `lhs += rhs` and its `-=`/`*=`/`/=`/`%=` siblings.
type AugAssignStmt struct {
	Lhs Expression
	Op  tokens.Kind
	Rhs Expression
	source.Location
}

func (a *AugAssignStmt) INode()                {}
func (a *AugAssignStmt) Stmt()                 {}
func (a *AugAssignStmt) Loc() *source.Location { return &a.Location }

// VarDecl is a runtime variable declaration with a type annotation:
// `name: Type = init` (the unannotated `name := init` form is a
// DeclAssignStmt).
type VarDecl struct {
	Name *IdentifierExpr
	Type Expression // type-reference expression
	Init Expression
	source.Location
}

func (v *VarDecl) INode()                {}
func (v *VarDecl) Stmt()                 {}
func (v *VarDecl) Decl()                 {}
func (v *VarDecl) Loc() *source.Location { return &v.Location }

// ConstDecl is `const name = expr`, binding a compile-time constant.
type ConstDecl struct {
	Name *IdentifierExpr
	Init Expression
	source.Location
}

func (c *ConstDecl) INode()                {}
func (c *ConstDecl) Stmt()                 {}
func (c *ConstDecl) Decl()                 {}
func (c *ConstDecl) Loc() *source.Location { return &c.Location }

// ReferenceDecl is `reference name = target`, binding an alias to an
// assignable location.
type ReferenceDecl struct {
	Name   *IdentifierExpr
	Target Expression
	source.Location
}

func (r *ReferenceDecl) INode()                {}
func (r *ReferenceDecl) Stmt()                 {}
func (r *ReferenceDecl) Decl()                 {}
func (r *ReferenceDecl) Loc() *source.Location { return &r.Location }

// RawCommandStmt is a verbatim `/`-prefixed command line or `/* */` block,
// its text already split into text/interpolation segments by the lexer.
type RawCommandStmt struct {
	Segments []tokens.StringSegment
	source.Location
}

func (r *RawCommandStmt) INode()                {}
func (r *RawCommandStmt) Stmt()                 {}
func (r *RawCommandStmt) Loc() *source.Location { return &r.Location }

// ResultStmt is `result expr`, valid only inside a function body.
type ResultStmt struct {
	Value Expression // nil for a bare `result` (None-returning function)
	source.Location
}

func (r *ResultStmt) INode()                {}
func (r *ResultStmt) Stmt()                 {}
func (r *ResultStmt) Loc() *source.Location { return &r.Location }

// NewCallStmt is `new(args...)`, valid only inside an entity's `new`
// method, constructing and binding `self`.
type NewCallStmt struct {
	Args []Expression
	source.Location
}

func (n *NewCallStmt) INode()                {}
func (n *NewCallStmt) Stmt()                 {}
func (n *NewCallStmt) Loc() *source.Location { return &n.Location }

// ImportStmt is `import "path" [as alias]`.
type ImportStmt struct {
	Path  string
	Alias *IdentifierExpr // nil if no alias
	source.Location
}

func (i *ImportStmt) INode()                {}
func (i *ImportStmt) Stmt()                 {}
func (i *ImportStmt) Loc() *source.Location { return &i.Location }

// PassStmt is a no-op placeholder statement, required wherever the
// grammar demands a non-empty block but there is nothing to do.
type PassStmt struct {
	source.Location
}

func (p *PassStmt) INode()                {}
func (p *PassStmt) Stmt()                 {}
func (p *PassStmt) Loc() *source.Location { return &p.Location }

// ExprStmt is an expression evaluated for its side effect (typically a
// call) and discarded.
type ExprStmt struct {
	X Expression
	source.Location
}

func (e *ExprStmt) INode()                {}
func (e *ExprStmt) Stmt()                 {}
func (e *ExprStmt) Loc() *source.Location { return &e.Location }
