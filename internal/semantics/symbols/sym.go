// Package symbols implements the scope stack spec.md §3 "Scope" describes:
// an ordered stack of frames, each holding a name-to-binding mapping, a
// flag for whether the frame is runtime-capable, and slots for self,
// result, and new-capture when applicable.
package symbols

import (
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// BindingKind classifies what a name in scope refers to (spec.md §3
// "Binding kinds").
type BindingKind int

const (
	BindRuntimeVar BindingKind = iota
	BindConst
	BindReference
	BindFunction
	BindEntityTemplate
	BindStructTemplate
	BindModule
)

// Binding is one declared name.
type Binding struct {
	Name  string
	Kind  BindingKind
	Type  types.Type
	World types.World
	Decl  ast.Node

	// Slot is set by the analyzer when the name is declared: the runtime
	// storage location for BindRuntimeVar and BindReference bindings, or
	// the folded compile-time value for BindConst bindings.
	Slot any
}

// Scope is one frame of the lexical scope stack.
type Scope struct {
	Parent  *Scope
	names   map[string]*Binding
	Runtime bool // true if code in this frame may emit runtime operations

	Self        *Binding // bound inside entity/struct methods
	ResultType  types.Type
	HasResult   bool // true inside a function body (result/out-of-scope check)
	InNewMethod bool // true inside an entity's `new` method
}

// NewScope creates a child frame of parent. parent may be nil for the
// module-level (universe-adjacent) scope.
func NewScope(parent *Scope) *Scope {
	s := &Scope{Parent: parent, names: make(map[string]*Binding)}
	if parent != nil {
		s.Runtime = parent.Runtime
		s.Self = parent.Self
		s.ResultType = parent.ResultType
		s.HasResult = parent.HasResult
		s.InNewMethod = parent.InNewMethod
	}
	return s
}

// Declare binds name in this frame only. ok is false if name is already
// bound in this same frame (the caller raises *shadowedname*).
func (s *Scope) Declare(b *Binding) (prev *Binding, ok bool) {
	if existing, found := s.names[b.Name]; found {
		return existing, false
	}
	s.names[b.Name] = b
	return nil, true
}

// Put forcibly (re)binds name in this frame, used for parameters and loop
// variables where redeclaration within the same synthesized frame is
// expected rather than an error.
func (s *Scope) Put(b *Binding) {
	s.names[b.Name] = b
}

// Lookup searches this frame and its ancestors.
func (s *Scope) Lookup(name string) (*Binding, bool) {
	for f := s; f != nil; f = f.Parent {
		if b, ok := f.names[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// LookupLocal searches this frame only.
func (s *Scope) LookupLocal(name string) (*Binding, bool) {
	b, ok := s.names[name]
	return b, ok
}
