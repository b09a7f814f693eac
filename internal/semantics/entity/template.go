// Package entity computes entity-template method-resolution order by C3
// linearization and merges attribute/method dictionaries along it
// (spec.md §4.5).
package entity

import (
	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// Attr is one merged attribute slot.
type Attr struct {
	Name      string
	Type      types.Type
	DefinedBy *Template
}

// Method is one merged method slot.
type Method struct {
	Name      string
	Decl      *ast.FuncDecl
	Qualifier ast.MethodQualifier
	DefinedBy *Template
}

// Template is a fully-resolved entity template: its MRO and its merged
// attribute/method dictionaries.
type Template struct {
	Name       string
	NameLoc    *source.Location
	Bases      []*Template
	EntityType string // the Minecraft entity type this template spawns as
	SpawnPos   ast.Expression

	MRO        []*Template // MRO[0] is always the template itself
	Attributes map[string]*Attr
	Methods    map[string]*Method
}

// Linearize computes the C3 linearization of t given its direct bases'
// own (already-computed) MROs. Returns *mro* if no consistent order
// exists.
func Linearize(name string, bases []*Template) ([]*Template, bool) {
	if len(bases) == 0 {
		return []*Template{}, true // caller prepends the template itself
	}

	seqs := make([][]*Template, 0, len(bases)+1)
	for _, b := range bases {
		seqs = append(seqs, append([]*Template{}, b.MRO...))
	}
	seqs = append(seqs, append([]*Template{}, bases...))

	var result []*Template
	for {
		allEmpty := true
		for _, s := range seqs {
			if len(s) > 0 {
				allEmpty = false
				break
			}
		}
		if allEmpty {
			return result, true
		}

		var head *Template
		for _, s := range seqs {
			if len(s) == 0 {
				continue
			}
			cand := s[0]
			if !appearsInTail(cand, seqs) {
				head = cand
				break
			}
		}
		if head == nil {
			return nil, false
		}
		result = append(result, head)
		for i, s := range seqs {
			seqs[i] = removeHead(s, head)
		}
	}
}

func appearsInTail(cand *Template, seqs [][]*Template) bool {
	for _, s := range seqs {
		for i := 1; i < len(s); i++ {
			if s[i] == cand {
				return true
			}
		}
	}
	return false
}

func removeHead(seq []*Template, t *Template) []*Template {
	if len(seq) > 0 && seq[0] == t {
		return seq[1:]
	}
	out := seq[:0:0]
	for _, x := range seq {
		if x != t {
			out = append(out, x)
		}
	}
	return out
}

// Build resolves a full Template from decl and its already-built direct
// bases, merging attributes and methods along the computed MRO. Every
// error appends to diag and Build returns (nil, false); partial templates
// are never registered (spec.md §8 property 2).
func Build(decl *ast.EntityDecl, bases []*Template, filePath string, diag *diagnostics.DiagnosticBag) (*Template, bool) {
	t := &Template{
		Name:       decl.Name.Name,
		NameLoc:    decl.Name.Loc(),
		Bases:      bases,
		EntityType: "",
		SpawnPos:   decl.SpawnPos,
		Attributes: map[string]*Attr{},
		Methods:    map[string]*Method{},
	}

	tail, ok := Linearize(t.Name, bases)
	if !ok {
		diag.Add(diagnostics.NewError("no consistent method resolution order for '"+t.Name+"'").
			WithCode(diagnostics.ErrMRO).
			WithPrimaryLabel(filePath, decl.Loc(), "inconsistent base ordering"))
		return nil, false
	}
	t.MRO = append([]*Template{t}, tail...)

	ok = true
	// Merge base attributes/methods first, farthest base first along the
	// MRO (excluding t itself), so nearer bases and then the template's own
	// declarations take precedence in the lookup but conflicts between two
	// unrelated bases are still caught.
	for i := len(t.MRO) - 1; i >= 1; i-- {
		base := t.MRO[i]
		for name, a := range base.Attributes {
			if !mergeAttr(t, &Attr{Name: name, Type: a.Type, DefinedBy: a.DefinedBy}, decl.Loc(), filePath, diag) {
				ok = false
			}
		}
		for _, m := range base.Methods {
			if !mergeMethod(t, m, decl.Loc(), filePath, diag) {
				ok = false
			}
		}
	}

	for _, attr := range decl.Attributes {
		if !mergeAttr(t, &Attr{Name: attr.Name.Name, DefinedBy: t}, attr.Name.Loc(), filePath, diag) {
			ok = false
		}
	}
	for _, m := range decl.Methods {
		if !mergeMethod(t, &Method{Name: m.Name.Name, Decl: m, Qualifier: m.Qualifier, DefinedBy: t}, m.Loc(), filePath, diag) {
			ok = false
		}
	}

	if !ok {
		return nil, false
	}

	return t, true
}

func mergeAttr(t *Template, a *Attr, loc *source.Location, filePath string, diag *diagnostics.DiagnosticBag) bool {
	if existingMethod, isMethod := t.Methods[a.Name]; isMethod {
		diag.Add(diagnostics.NewError("'"+a.Name+"' is both an attribute and a method").
			WithCode(diagnostics.ErrMethodAttrConflict).
			WithPrimaryLabel(filePath, loc, "attribute declared here").
			WithSecondaryLabel(filePath, existingMethod.Decl.Loc(), "method declared here"))
		return false
	}
	if existing, ok := t.Attributes[a.Name]; ok && existing.DefinedBy != a.DefinedBy {
		diag.Add(diagnostics.NewError("attribute '"+a.Name+"' is defined by more than one base template").
			WithCode(diagnostics.ErrEFieldMultipleDefs).
			WithPrimaryLabel(filePath, loc, "conflicting attribute"))
		return false
	}
	t.Attributes[a.Name] = a
	return true
}

func mergeMethod(t *Template, m *Method, loc *source.Location, filePath string, diag *diagnostics.DiagnosticBag) bool {
	if existingAttr, isAttr := t.Attributes[m.Name]; isAttr {
		diag.Add(diagnostics.NewError("'"+m.Name+"' is both a method and an attribute").
			WithCode(diagnostics.ErrMethodAttrConflict).
			WithPrimaryLabel(filePath, loc, "method declared here").
			WithSecondaryLabel(filePath, existingAttr.DefinedBy.NameLoc, "attribute declared here"))
		return false
	}

	existing, has := t.Methods[m.Name]
	if !has {
		if m.Qualifier == ast.MQOverride {
			diag.Add(diagnostics.NewError("method '"+m.Name+"' marked override does not override anything").
				WithCode(diagnostics.ErrNotOverriding).
				WithPrimaryLabel(filePath, loc, "no virtual method of this name in any base"))
			return false
		}
		t.Methods[m.Name] = m
		return true
	}

	if existing.DefinedBy == m.DefinedBy {
		// Redefinition within the same template body; the parser already
		// only produces one FuncDecl per name per body, so this can only
		// happen via the base-merge pass revisiting the same template --
		// keep the first.
		return true
	}

	if m.Name == "new" && existing.Qualifier == ast.MQNone && m.Qualifier == ast.MQNone {
		diag.Add(diagnostics.NewError("'new' is defined by more than one unrelated base template").
			WithCode(diagnostics.ErrMultipleNewMethods).
			WithPrimaryLabel(filePath, loc, "conflicting 'new' here").
			WithSecondaryLabel(filePath, existing.Decl.Loc(), "other 'new' here"))
		return false
	}

	switch {
	case existing.Qualifier == ast.MQStatic && m.Qualifier != ast.MQStatic:
		diag.Add(diagnostics.NewError("method '"+m.Name+"' overrides a static method as non-static").
			WithCode(diagnostics.ErrStaticOverrideInst).
			WithPrimaryLabel(filePath, loc, "non-static here").
			WithSecondaryLabel(filePath, existing.Decl.Loc(), "static here"))
		return false
	case existing.Qualifier != ast.MQStatic && m.Qualifier == ast.MQStatic:
		diag.Add(diagnostics.NewError("method '"+m.Name+"' overrides a non-static method as static").
			WithCode(diagnostics.ErrInstOverrideStatic).
			WithPrimaryLabel(filePath, loc, "static here").
			WithSecondaryLabel(filePath, existing.Decl.Loc(), "non-static here"))
		return false
	case existing.Qualifier == ast.MQVirtual || existing.Qualifier == ast.MQOverride:
		if m.Qualifier != ast.MQOverride {
			diag.Add(diagnostics.NewError("method '"+m.Name+"' must be declared 'override'").
				WithCode(diagnostics.ErrOverrideQualifier).
				WithPrimaryLabel(filePath, loc, "shadows a virtual method without 'override'"))
			return false
		}
		if !sameResultType(existing.Decl, m.Decl) {
			diag.Add(diagnostics.NewError("override of '"+m.Name+"' has a different result type").
				WithCode(diagnostics.ErrOverrideResultMismatch).
				WithPrimaryLabel(filePath, loc, "overriding method here").
				WithSecondaryLabel(filePath, existing.Decl.Loc(), "overridden virtual here"))
			return false
		}
		t.Methods[m.Name] = m
		return true
	case existing.Qualifier == ast.MQNone && m.Qualifier == ast.MQVirtual:
		diag.Add(diagnostics.NewError("method '"+m.Name+"' redeclares a non-virtual method of a base as virtual").
			WithCode(diagnostics.ErrMultipleVirtualMethod).
			WithPrimaryLabel(filePath, loc, "declared virtual here").
			WithSecondaryLabel(filePath, existing.Decl.Loc(), "non-virtual base method here"))
		return false
	default:
		if m.Qualifier == ast.MQOverride {
			diag.Add(diagnostics.NewError("method '"+m.Name+"' marked override does not override a virtual").
				WithCode(diagnostics.ErrNotOverriding).
				WithPrimaryLabel(filePath, loc, "no virtual method of this name above it in the MRO"))
			return false
		}
		t.Methods[m.Name] = m
		return true
	}
}

func sameResultType(a, b *ast.FuncDecl) bool {
	// Structural comparison of the result type-reference expression is
	// deferred to the analyzer, which has already resolved both to
	// types.Type by the time templates are finalized; at parse-merge time
	// we only compare the syntactic identifier form, the common case.
	an, aok := a.Result.(*ast.IdentifierExpr)
	bn, bok := b.Result.(*ast.IdentifierExpr)
	if a.Result == nil && b.Result == nil {
		return true
	}
	if aok && bok {
		return an.Name == bn.Name
	}
	return a.Result == nil && b.Result == nil
}

