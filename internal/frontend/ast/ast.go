// Package ast defines Acacia's syntax tree. Declared types (a var's
// annotation, a parameter's type, a struct field's type, a function's
// result type) are stored as plain Expression values rather than a
// separate type-node family: spec.md's type-reference expressions parse
// as ordinary expressions and are only validated as types by the analyzer,
// so the grammar makes no syntactic distinction between "a name used as a
// value" and "a name used as a type".
package ast

import (
	"github.com/creepebucket/AcaciaMC/internal/source"
)

// Node is the base interface implemented by every syntax tree element.
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression is any node that produces a value (or, per the type-as-
// expression design, a type reference prior to analysis).
type Expression interface {
	Node
	Expr()
}

// Statement is any node that performs an action rather than yielding a
// value.
type Statement interface {
	Node
	Stmt()
}

// Decl is a declaration that introduces a name into its enclosing scope.
type Decl interface {
	Node
	Decl()
}
