package ast

import (
	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// LiteralKind distinguishes the surface form of a BasicLit.
type LiteralKind int

const (
	INT LiteralKind = iota
	FLOAT
	BOOL
	NONE
)

// BasicLit is an int, float, bool, or None literal.
type BasicLit struct {
	Kind  LiteralKind
	Value string // literal text as scanned, before numeric.ParseInt/ParseFloat
	Type  types.Type
	World types.World
	source.Location
}

func (b *BasicLit) INode()                {}
func (b *BasicLit) Expr()                 {}
func (b *BasicLit) Loc() *source.Location { return &b.Location }
