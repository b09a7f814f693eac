package ast

import (
	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// BinaryExpr is a binary operator expression (arithmetic, comparison-chain
// link, and/or).
type BinaryExpr struct {
	X, Y  Expression
	Op    tokens.Kind
	Type  types.Type
	World types.World
	source.Location
}

func (b *BinaryExpr) INode()                {}
func (b *BinaryExpr) Expr()                 {}
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// CompareExpr is a chained comparison (a < b <= c), evaluated as the
// conjunction of each adjacent pair (spec.md §4.2).
type CompareExpr struct {
	Operands []Expression
	Ops      []tokens.Kind // len(Ops) == len(Operands)-1
	Type     types.Type
	World    types.World
	source.Location
}

func (c *CompareExpr) INode()                {}
func (c *CompareExpr) Expr()                 {}
func (c *CompareExpr) Loc() *source.Location { return &c.Location }

// UnaryExpr is a prefix unary operator: -x, not x.
type UnaryExpr struct {
	Op    tokens.Kind
	X     Expression
	Type  types.Type
	World types.World
	source.Location
}

func (u *UnaryExpr) INode()                {}
func (u *UnaryExpr) Expr()                 {}
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }

// IdentifierExpr is a bare name reference, resolved by the analyzer
// against the lexical scope stack. Also used, unvalidated, as a
// type-reference expression (e.g. a var-decl annotation) until the
// analyzer fixes its meaning.
type IdentifierExpr struct {
	Name  string
	Type  types.Type
	World types.World
	source.Location
}

func (i *IdentifierExpr) INode()                {}
func (i *IdentifierExpr) Expr()                 {}
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// CallExpr is a function call. Args may include KeyValueExpr entries for
// named/keyword arguments (spec.md §4.4 default parameters).
type CallExpr struct {
	Fun   Expression
	Args  []Expression
	Type  types.Type
	World types.World
	source.Location
}

func (c *CallExpr) INode()                {}
func (c *CallExpr) Expr()                 {}
func (c *CallExpr) Loc() *source.Location { return &c.Location }

// AttributeExpr is attribute access (x.field), used for struct fields,
// entity attributes, and module members.
type AttributeExpr struct {
	X     Expression
	Attr  string
	Type  types.Type
	World types.World
	source.Location
}

func (a *AttributeExpr) INode()                {}
func (a *AttributeExpr) Expr()                 {}
func (a *AttributeExpr) Loc() *source.Location { return &a.Location }

// SubscriptExpr is indexing (x[i]) on a list, map, or formatted-string
// font scope.
type SubscriptExpr struct {
	X      Expression
	Index  Expression
	Type   types.Type
	World  types.World
	source.Location
}

func (s *SubscriptExpr) INode()                {}
func (s *SubscriptExpr) Expr()                 {}
func (s *SubscriptExpr) Loc() *source.Location { return &s.Location }

// ListExpr is a list literal: [e1, e2, ...].
type ListExpr struct {
	Elts  []Expression
	Type  types.Type
	World types.World
	source.Location
}

func (l *ListExpr) INode()                {}
func (l *ListExpr) Expr()                 {}
func (l *ListExpr) Loc() *source.Location { return &l.Location }

// MapEntry is one key/value pair of a MapExpr.
type MapEntry struct {
	Key, Value Expression
}

// MapExpr is a map literal: {k1: v1, k2: v2, ...}.
type MapExpr struct {
	Entries []MapEntry
	Type    types.Type
	World   types.World
	source.Location
}

func (m *MapExpr) INode()                {}
func (m *MapExpr) Expr()                 {}
func (m *MapExpr) Loc() *source.Location { return &m.Location }

// KeyValueExpr is a named-field or keyword-argument pair: `.field = value`
// in a struct literal, or `name=value` in a call's argument list.
type KeyValueExpr struct {
	Key   *IdentifierExpr
	Value Expression
	source.Location
}

func (k *KeyValueExpr) INode()                {}
func (k *KeyValueExpr) Expr()                 {}
func (k *KeyValueExpr) Loc() *source.Location { return &k.Location }

// StructLitExpr is a struct- or entity-template composite literal:
// Template{.a = 1, .b = 2}.
type StructLitExpr struct {
	Template *IdentifierExpr
	Fields   []*KeyValueExpr
	Type     types.Type
	World    types.World
	source.Location
}

func (s *StructLitExpr) INode()                {}
func (s *StructLitExpr) Expr()                 {}
func (s *StructLitExpr) Loc() *source.Location { return &s.Location }

// FStringSeg is one piece of a FStringExpr: either a literal text run, an
// interpolated expression hole, or a font-scope sub-expression.
type FStringSegKind int

const (
	FSegText FStringSegKind = iota
	FSegHole
	FSegFont
)

type FStringSeg struct {
	Kind FStringSegKind
	Text string     // set for FSegText
	Expr Expression // set for FSegHole only
	Font string     // font name, set only for FSegFont; applies to subsequent text, not a nested expression
}

// FStringExpr is a double-quoted string literal with `{...}` interpolation
// holes and `\font{name}{...}` scopes (spec.md §4.1).
type FStringExpr struct {
	Segments []FStringSeg
	Type     types.Type
	World    types.World
	source.Location
}

func (f *FStringExpr) INode()                {}
func (f *FStringExpr) Expr()                 {}
func (f *FStringExpr) Loc() *source.Location { return &f.Location }

// SelectorLitExpr is the `|sel: obj|` selector-literal form used to build
// an Enfilter value inline at a call site.
type SelectorLitExpr struct {
	Kind string // e.g. "sel", "p", "a", "e", "r" -- the selector base symbol
	Args []*KeyValueExpr // a positional item (the objective) has a nil Key
	Type  types.Type
	World types.World
	source.Location
}

func (s *SelectorLitExpr) INode()                {}
func (s *SelectorLitExpr) Expr()                 {}
func (s *SelectorLitExpr) Loc() *source.Location { return &s.Location }

// ParenExpr is a parenthesized expression, kept distinct only to preserve
// source spans; it carries no semantics of its own.
type ParenExpr struct {
	X     Expression
	Type  types.Type
	World types.World
	source.Location
}

func (p *ParenExpr) INode()                {}
func (p *ParenExpr) Expr()                 {}
func (p *ParenExpr) Loc() *source.Location { return &p.Location }
