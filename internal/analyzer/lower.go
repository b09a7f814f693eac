package analyzer

import (
	"math"

	"github.com/creepebucket/AcaciaMC/internal/builtins"
	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/ir"
	"github.com/creepebucket/AcaciaMC/internal/semantics/consteval"
	"github.com/creepebucket/AcaciaMC/internal/semantics/symbols"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// tryConst speculatively folds expr: callers use this wherever a
// compile-time value is welcome but not required, falling back to runtime
// lowering on failure. A non-call expression is evaluated against a
// scratch bag whose diagnostics are discarded. A call expression whose
// callee and every argument fold to constants is itself folded by
// interpreting the callee's body (see Analyzer.callConst); diagnostics
// raised while interpreting that body go to the analyzer's own bag.
func (a *Analyzer) tryConst(expr ast.Expression, scope *symbols.Scope) (*consteval.Value, bool) {
	if call, isCall := expr.(*ast.CallExpr); isCall {
		return a.tryConstCall(call, scope)
	}
	scratch := &consteval.Evaluator{Diag: diagnostics.NewDiagnosticBag(a.FilePath), FilePath: a.FilePath}
	v, ok := scratch.Eval(expr, scope)
	if !ok || scratch.Diag.HasErrors() {
		return nil, false
	}
	return v, true
}

// mustConst evaluates expr where only a compile-time value is valid,
// letting failures raise their real diagnostics (e.g. *notconstname*).
func (a *Analyzer) mustConst(expr ast.Expression, scope *symbols.Scope) (*consteval.Value, bool) {
	if call, isCall := expr.(*ast.CallExpr); isCall {
		v, ok := a.tryConstCall(call, scope)
		if !ok {
			a.Diag.Add(diagnostics.NewError("call is not a compile-time constant").
				WithCode(diagnostics.ErrArgNotConst).
				WithPrimaryLabel(a.FilePath, call.Loc(), "cannot be folded to a constant here"))
			a.fail()
		}
		return v, ok
	}
	v, ok := a.eval.Eval(expr, scope)
	if !ok {
		a.fail()
	}
	return v, ok
}

// tryConstCall folds a call to a plain identifier-named function whose
// arguments are all themselves compile-time constants (spec.md §8 S2).
// Calls through an attribute (method calls), calls passing a runtime
// argument, or calls whose callee is not a known function or native
// builtin all fail here; lowerExpr has no runtime lowering for a call
// expression and reports it as unsupported.
func (a *Analyzer) tryConstCall(call *ast.CallExpr, scope *symbols.Scope) (*consteval.Value, bool) {
	id, ok := call.Fun.(*ast.IdentifierExpr)
	if !ok {
		return nil, false
	}
	args := make([]*consteval.Value, 0, len(call.Args))
	for _, argExpr := range call.Args {
		if kv, isKV := argExpr.(*ast.KeyValueExpr); isKV {
			argExpr = kv.Value
		}
		v, ok := a.tryConst(argExpr, scope)
		if !ok {
			return nil, false
		}
		args = append(args, v)
	}
	if decl, ok := a.funcs[id.Name]; ok {
		return a.callConst(decl, args)
	}
	if fn, ok := builtins.Lookup(id.Name); ok && fn.Eval != nil {
		return fn.Eval(args)
	}
	return nil, false
}

func constToIntLit(v *consteval.Value) int32 {
	switch v.Kind {
	case consteval.VBool:
		if v.B {
			return 1
		}
		return 0
	default:
		return v.I
	}
}

// materialize allocates runtime storage for a compile-time value of a
// runtime-storable type, emitting its initializer (spec.md §4.3 "a
// compile-time constant... may be implicitly converted to runtime").
func (a *Analyzer) materialize(v *consteval.Value) (*ir.Slot, []*ir.Instr) {
	slot := a.newSlot()
	return slot, []*ir.Instr{{Kind: ir.OpAssignLiteral, Dst: slot, Lit: constToIntLit(v)}}
}

// lowerExpr lowers expr to a runtime scoreboard slot, folding compile-time
// subexpressions into literal assignments where it can. Returns the type
// of the produced value alongside the instructions that compute it.
func (a *Analyzer) lowerExpr(expr ast.Expression, scope *symbols.Scope) (*ir.Slot, []*ir.Instr, types.Type, bool) {
	if v, ok := a.tryConst(expr, scope); ok {
		if !v.Type.Storability().HasRuntimeForm {
			a.Diag.Add(diagnostics.NewError("value has no runtime representation").
				WithCode(diagnostics.ErrInvalidOperand).
				WithPrimaryLabel(a.FilePath, expr.Loc(), "cannot be used at runtime"))
			a.fail()
			return nil, nil, nil, false
		}
		slot, instrs := a.materialize(v)
		return slot, instrs, v.Type, true
	}

	switch x := expr.(type) {
	case *ast.IdentifierExpr:
		b, ok := scope.Lookup(x.Name)
		if !ok {
			a.Diag.Add(diagnostics.NewError("name '"+x.Name+"' is not defined").
				WithCode(diagnostics.ErrNameNotDefined).
				WithPrimaryLabel(a.FilePath, &x.Location, "undefined name"))
			a.fail()
			return nil, nil, nil, false
		}
		slot, ok := b.Slot.(*ir.Slot)
		if b.Kind != symbols.BindRuntimeVar && b.Kind != symbols.BindReference || !ok {
			a.Diag.Add(diagnostics.NewError("'"+x.Name+"' is not a runtime value").
				WithCode(diagnostics.ErrInvalidOperand).
				WithPrimaryLabel(a.FilePath, &x.Location, "not usable at runtime"))
			a.fail()
			return nil, nil, nil, false
		}
		return slot, nil, b.Type, true

	case *ast.ParenExpr:
		return a.lowerExpr(x.X, scope)

	case *ast.UnaryExpr:
		if x.Op == tokens.MINUS {
			src, instrs, t, ok := a.lowerExpr(x.X, scope)
			if !ok {
				return nil, nil, nil, false
			}
			dst := a.newSlot()
			instrs = append(instrs, &ir.Instr{Kind: ir.OpAssignLiteral, Dst: dst, Lit: 0})
			instrs = append(instrs, &ir.Instr{Kind: ir.OpScoreSub, Dst: dst, Src: src})
			return dst, instrs, t, true
		}

	case *ast.BinaryExpr:
		op, isArith := tokOpToIR(x.Op)
		if isArith {
			lslot, linstrs, lt, ok := a.lowerExpr(x.X, scope)
			if !ok {
				return nil, nil, nil, false
			}
			rslot, rinstrs, _, ok := a.lowerExpr(x.Y, scope)
			if !ok {
				return nil, nil, nil, false
			}
			dst := a.newSlot()
			instrs := append(linstrs, rinstrs...)
			instrs = append(instrs, &ir.Instr{Kind: ir.OpScoreCopy, Dst: dst, Src: lslot})
			instrs = append(instrs, &ir.Instr{Kind: op, Dst: dst, Src: rslot})
			return dst, instrs, lt, true
		}
	}

	a.Diag.Add(diagnostics.NewError("expression cannot be lowered to a runtime value").
		WithCode(diagnostics.ErrInvalidOperand).
		WithPrimaryLabel(a.FilePath, expr.Loc(), "unsupported runtime expression"))
	a.fail()
	return nil, nil, nil, false
}

// lowerCond lowers a boolean expression to an ir.Cond plus the instructions
// needed to compute it, folding a compile-time condition to a constant
// Cond that is always-true or always-false (spec.md §8 property 5: only
// the selected branch of a const-folded if/elif/else is emitted).
func (a *Analyzer) lowerCond(expr ast.Expression, scope *symbols.Scope) (*ir.Cond, []*ir.Instr, bool, bool) {
	if v, ok := a.tryConst(expr, scope); ok {
		if v.Kind != consteval.VBool {
			a.Diag.Add(diagnostics.NewError("condition must be bool").
				WithCode(diagnostics.ErrWrongIfCond).
				WithPrimaryLabel(a.FilePath, expr.Loc(), "not a bool value"))
			a.fail()
			return nil, nil, false, false
		}
		return nil, nil, v.B, true
	}

	cmp, ok := expr.(*ast.CompareExpr)
	if ok && len(cmp.Operands) == 2 {
		cond, instrs, ok := a.lowerComparePair(cmp.Ops[0], cmp.Operands[0], cmp.Operands[1], scope)
		return cond, instrs, false, ok
	}

	slot, instrs, t, ok := a.lowerExpr(expr, scope)
	if !ok {
		return nil, nil, false, false
	}
	if !types.IsBool(t) {
		a.Diag.Add(diagnostics.NewError("condition must be bool").
			WithCode(diagnostics.ErrWrongIfCond).
			WithPrimaryLabel(a.FilePath, expr.Loc(), "not a bool value"))
		a.fail()
		return nil, nil, false, false
	}
	return &ir.Cond{Slot: slot, Min: 1, Max: 1}, instrs, false, true
}

func (a *Analyzer) lowerComparePair(op tokens.Kind, lhs, rhs ast.Expression, scope *symbols.Scope) (*ir.Cond, []*ir.Instr, bool) {
	lv, lok := a.tryConst(lhs, scope)
	rv, rok := a.tryConst(rhs, scope)

	switch {
	case lok && rok:
		// Both sides folded; the whole comparison should already have been
		// caught by the outer tryConst in lowerCond. Reaching here means a
		// non-bool constant comparison slipped through some other path;
		// materialize it defensively.
		res, ok := compareConst(op, lv, rv)
		if !ok {
			a.Diag.Add(diagnostics.NewError("invalid operands for comparison").
				WithCode(diagnostics.ErrInvalidOperand).
				WithPrimaryLabel(a.FilePath, lhs.Loc(), "here"))
			a.fail()
			return nil, nil, false
		}
		slot := a.newSlot()
		lit := int32(0)
		if res {
			lit = 1
		}
		return &ir.Cond{Slot: slot, Min: 1, Max: 1}, []*ir.Instr{{Kind: ir.OpAssignLiteral, Dst: slot, Lit: lit}}, true

	case rok:
		lslot, linstrs, _, ok := a.lowerExpr(lhs, scope)
		if !ok {
			return nil, nil, false
		}
		lit := constToIntLit(rv)
		cond, ok := rangeFor(op, lslot, lit, false)
		return cond, linstrs, ok

	case lok:
		rslot, rinstrs, _, ok := a.lowerExpr(rhs, scope)
		if !ok {
			return nil, nil, false
		}
		lit := constToIntLit(lv)
		cond, ok := rangeFor(flip(op), rslot, lit, false)
		return cond, rinstrs, ok

	default:
		lslot, linstrs, _, ok := a.lowerExpr(lhs, scope)
		if !ok {
			return nil, nil, false
		}
		rslot, rinstrs, _, ok := a.lowerExpr(rhs, scope)
		if !ok {
			return nil, nil, false
		}
		diff := a.newSlot()
		instrs := append(linstrs, rinstrs...)
		instrs = append(instrs, &ir.Instr{Kind: ir.OpScoreCopy, Dst: diff, Src: lslot})
		instrs = append(instrs, &ir.Instr{Kind: ir.OpScoreSub, Dst: diff, Src: rslot})
		cond, ok := rangeFor(op, diff, 0, false)
		return cond, instrs, ok
	}
}

func flip(op tokens.Kind) tokens.Kind {
	switch op {
	case tokens.LT:
		return tokens.GT
	case tokens.LE:
		return tokens.GE
	case tokens.GT:
		return tokens.LT
	case tokens.GE:
		return tokens.LE
	default:
		return op
	}
}

func rangeFor(op tokens.Kind, slot *ir.Slot, lit int32, unless bool) (*ir.Cond, bool) {
	switch op {
	case tokens.EQ:
		return &ir.Cond{Slot: slot, Min: lit, Max: lit, Unless: unless}, true
	case tokens.NE:
		return &ir.Cond{Slot: slot, Min: lit, Max: lit, Unless: !unless}, true
	case tokens.LT:
		return &ir.Cond{Slot: slot, Min: math.MinInt32, Max: lit - 1, Unless: unless}, true
	case tokens.LE:
		return &ir.Cond{Slot: slot, Min: math.MinInt32, Max: lit, Unless: unless}, true
	case tokens.GT:
		return &ir.Cond{Slot: slot, Min: lit + 1, Max: math.MaxInt32, Unless: unless}, true
	case tokens.GE:
		return &ir.Cond{Slot: slot, Min: lit, Max: math.MaxInt32, Unless: unless}, true
	default:
		return nil, false
	}
}

func compareConst(op tokens.Kind, l, r *consteval.Value) (bool, bool) {
	switch op {
	case tokens.EQ:
		return l.Equals(r), true
	case tokens.NE:
		return !l.Equals(r), true
	}
	return false, false
}
