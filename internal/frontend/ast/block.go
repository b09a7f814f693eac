package ast

import (
	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// Block is a sequence of statements introduced by an indented suite.
type Block struct {
	Stmts []Statement
	source.Location
}

func (b *Block) INode()                {}
func (b *Block) Loc() *source.Location { return &b.Location }

// Param is one parameter of a function declaration. Type is nil when Default
// is present and no annotation was written (spec.md §4 Function: "declared
// type (optional if default is present)").
type Param struct {
	Name    *IdentifierExpr
	Type    Expression // type-reference expression, nil if inferred from Default
	Default Expression // compile-time constant expression, nil if absent
	Port    types.Port
}

// MethodQualifier is the entity-method modifier keyword, if any, preceding
// `def` inside an entity body (spec.md §4.5).
type MethodQualifier int

const (
	MQNone MethodQualifier = iota
	MQVirtual
	MQOverride
	MQStatic
)

// FuncDecl is a function definition: `[inline|const] def name(params) -> result:`.
// Flavor defaults to types.FlavorRuntime; the `inline` and `const` prefix
// keywords select FlavorInline and FlavorCompileTime respectively (the
// prefix reuses the same `const` keyword as a const-decl, since both mark
// "resolved during compilation rather than at runtime").
type FuncDecl struct {
	Name      *IdentifierExpr
	Params    []*Param
	Result    Expression // type-reference expression, nil for None result
	Body      *Block
	Flavor    types.Flavor
	Qualifier MethodQualifier // only meaningful when nested in an EntityDecl
	source.Location
}

func (f *FuncDecl) INode()                {}
func (f *FuncDecl) Stmt()                 {}
func (f *FuncDecl) Decl()                 {}
func (f *FuncDecl) Loc() *source.Location { return &f.Location }

// Attribute is one attribute declared in an entity or struct template body.
type Attribute struct {
	Name *IdentifierExpr
	Type Expression
}

// EntityDecl is an entity-template definition: name, direct bases, entity
// type string, optional spawn position, attributes, and methods (spec.md
// §3 Entity template, §4.5).
type EntityDecl struct {
	Name       *IdentifierExpr
	Bases      []*IdentifierExpr
	EntityType Expression // compile-time string expression naming the Minecraft entity type
	SpawnPos   Expression // optional
	Attributes []*Attribute
	Methods    []*FuncDecl
	source.Location
}

func (e *EntityDecl) INode()                {}
func (e *EntityDecl) Stmt()                 {}
func (e *EntityDecl) Decl()                 {}
func (e *EntityDecl) Loc() *source.Location { return &e.Location }

// StructDecl is a struct-template definition: name plus field name/type
// pairs (spec.md §3 Struct template).
type StructDecl struct {
	Name   *IdentifierExpr
	Fields []*Attribute
	source.Location
}

func (s *StructDecl) INode()                {}
func (s *StructDecl) Stmt()                 {}
func (s *StructDecl) Decl()                 {}
func (s *StructDecl) Loc() *source.Location { return &s.Location }

// InterfaceDecl is one `interface path.subpath:` declaration: a block of
// top-level runtime statements emitted into that interface's own
// `.mcfunction` file.
type InterfaceDecl struct {
	Path string // dotted path, e.g. "combat.on_hit"
	Body *Block
	source.Location
}

func (i *InterfaceDecl) INode()                {}
func (i *InterfaceDecl) Stmt()                 {}
func (i *InterfaceDecl) Decl()                 {}
func (i *InterfaceDecl) Loc() *source.Location { return &i.Location }

// IfStmt is `if cond: body` with an optional else branch, which is either
// another *IfStmt (elif) or a plain *Block (else).
type IfStmt struct {
	Cond Expression
	Body *Block
	Else Node
	source.Location
}

func (i *IfStmt) INode()                {}
func (i *IfStmt) Stmt()                 {}
func (i *IfStmt) Loc() *source.Location { return &i.Location }

// WhileStmt is `while cond: body`.
type WhileStmt struct {
	Cond Expression
	Body *Block
	source.Location
}

func (w *WhileStmt) INode()                {}
func (w *WhileStmt) Stmt()                 {}
func (w *WhileStmt) Loc() *source.Location { return &w.Location }

// ForInStmt is `for x in seq: body`, unrolled by the analyzer over a
// compile-time list or map (spec.md §4.3).
type ForInStmt struct {
	Var  *IdentifierExpr
	Seq  Expression
	Body *Block
	source.Location
}

func (f *ForInStmt) INode()                {}
func (f *ForInStmt) Stmt()                 {}
func (f *ForInStmt) Loc() *source.Location { return &f.Location }
