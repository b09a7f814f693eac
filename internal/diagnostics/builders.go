package diagnostics

import (
	"fmt"

	"github.com/creepebucket/AcaciaMC/internal/source"
)

// Diagnostic builders, one per spec.md §7 error kind. No other package
// calls them: the parser, analyzer and emitter each build their
// diagnostics inline with NewError.

func NameNotDefined(filepath string, loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("name %q is not defined", name)).
		WithCode(ErrNameNotDefined).
		WithPrimaryLabel(filepath, loc, "not found in this or any enclosing scope")
}

func ShadowedName(filepath string, newLoc, prevLoc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("%q is already declared in this scope", name)).
		WithCode(ErrShadowedName).
		WithPrimaryLabel(filepath, newLoc, "redeclared here").
		WithSecondaryLabel(filepath, prevLoc, "previously declared here")
}

func NotConstName(filepath string, loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("%q is a runtime value and cannot be used here", name)).
		WithCode(ErrNotConstName).
		WithPrimaryLabel(filepath, loc, "compile-time value required").
		WithHelp("a runtime value can never become compile-time")
}

func NotConstAttr(filepath string, loc *source.Location, attr string) *Diagnostic {
	return NewError(fmt.Sprintf("attribute %q is a runtime value and cannot be used here", attr)).
		WithCode(ErrNotConstAttr).
		WithPrimaryLabel(filepath, loc, "compile-time value required")
}

func CantRef(filepath string, loc *source.Location) *Diagnostic {
	return NewError("expression is not assignable and cannot be referenced").
		WithCode(ErrCantRef).
		WithPrimaryLabel(filepath, loc, "not an assignable location")
}

func WrongAssignType(filepath string, loc *source.Location, declared, got string) *Diagnostic {
	return NewError(fmt.Sprintf("cannot assign %s to a variable of type %s", got, declared)).
		WithCode(ErrWrongAssignType).
		WithPrimaryLabel(filepath, loc, "type mismatch")
}

func MRO(filepath string, loc *source.Location, template string) *Diagnostic {
	return NewError(fmt.Sprintf("cannot compute a consistent method resolution order for %q", template)).
		WithCode(ErrMRO).
		WithPrimaryLabel(filepath, loc, "conflicting base template order")
}

func NotOverriding(filepath string, loc *source.Location, method, template string) *Diagnostic {
	return NewError(fmt.Sprintf("%q does not override any virtual method in %q's bases", method, template)).
		WithCode(ErrNotOverriding).
		WithPrimaryLabel(filepath, loc, "no matching virtual method found above in the MRO")
}

func CalleeDefinedAt(filepath string, loc *source.Location) Note {
	return Note{Message: fmt.Sprintf("callee defined at %s", loc.String())}
}

func CallingFrom(filepath string, loc *source.Location) Note {
	return Note{Message: fmt.Sprintf("calling from %s", loc.String())}
}
