// Package builtins is Acacia's native function surface: the tellraw/print
// helpers restored from tools/resultlib.py and the math module restored
// from modules/math.py (original_source/acaciamc), both carried as part
// of the supplemented-feature expansion rather than special-cased inline
// in the analyzer. Natives live in their own name-keyed registry, separate
// from user-declared functions: the analyzer consults it through Lookup
// only after finding no user function of that name.
package builtins

import (
	"github.com/creepebucket/AcaciaMC/internal/ir"
	"github.com/creepebucket/AcaciaMC/internal/semantics/consteval"
)

// Func is one native function. Eval folds a fully-constant call to its
// compile-time result and is nil for calls with no value (print/tellraw).
// Emit lowers a statement-position call to runtime instructions and is
// nil for calls that are pure compile-time expressions with no runtime
// effect (the math functions). Both may be non-nil reporting false/nil
// to mean "this call shape is not supported" (wrong arity or argument
// kind); the caller is responsible for raising the diagnostic, since
// only it has the call's source location.
type Func struct {
	Name string
	Eval func(args []*consteval.Value) (*consteval.Value, bool)
	Emit func(args []*consteval.Value) []*ir.Instr
}

var registry = map[string]*Func{}

func register(f *Func) { registry[f.Name] = f }

// Lookup finds a native function by call-site name. A user-declared
// function of the same name shadows nothing here — the analyzer checks
// user functions first and only falls back to builtins.Lookup, so a
// project-level `def print(...)` simply wins.
func Lookup(name string) (*Func, bool) {
	f, ok := registry[name]
	return f, ok
}
