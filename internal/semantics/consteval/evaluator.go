package consteval

import (
	"math"
	"strings"

	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/semantics/symbols"
	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
	"github.com/creepebucket/AcaciaMC/internal/types"
	"github.com/creepebucket/AcaciaMC/internal/utils/numeric"
)

// Evaluator folds compile-time expressions, reporting errors into diag.
// Name lookups go through scope, which must already hold every const
// binding the expression can reach.
type Evaluator struct {
	Diag     *diagnostics.DiagnosticBag
	FilePath string
}

// Eval evaluates expr to a compile-time Value. ok is false once a
// diagnostic has already been raised for this expression or a subtree of
// it; callers should not attempt further folding of a failed result.
func (e *Evaluator) Eval(expr ast.Expression, scope *symbols.Scope) (*Value, bool) {
	switch x := expr.(type) {
	case *ast.BasicLit:
		return e.evalLit(x)
	case *ast.IdentifierExpr:
		return e.evalIdent(x, scope)
	case *ast.ParenExpr:
		return e.Eval(x.X, scope)
	case *ast.UnaryExpr:
		return e.evalUnary(x, scope)
	case *ast.BinaryExpr:
		return e.evalBinary(x, scope)
	case *ast.CompareExpr:
		return e.evalCompare(x, scope)
	case *ast.ListExpr:
		return e.evalList(x, scope)
	case *ast.MapExpr:
		return e.evalMap(x, scope)
	case *ast.SubscriptExpr:
		return e.evalSubscript(x, scope)
	case *ast.FStringExpr:
		var sb strings.Builder
		for _, seg := range x.Segments {
			if seg.Kind != ast.FSegText {
				e.errAt(expr.Loc(), diagnostics.ErrInvalidFExpr, "a string with holes or font scopes is not a compile-time constant")
				return nil, false
			}
			sb.WriteString(seg.Text)
		}
		return Str(sb.String()), true
	default:
		e.errAt(expr.Loc(), diagnostics.ErrInvalidFExpr, "expression is not a compile-time constant")
		return nil, false
	}
}

func (e *Evaluator) evalLit(x *ast.BasicLit) (*Value, bool) {
	switch x.Kind {
	case ast.INT:
		n, ok, err := numeric.ParseInt(x.Value)
		if err != nil || !ok {
			e.errAt(&x.Location, diagnostics.ErrIntOverflow, "integer literal out of 32-bit range")
			return nil, false
		}
		return Int(n), true
	case ast.FLOAT:
		f, err := numeric.ParseFloat(x.Value)
		if err != nil {
			e.errAt(&x.Location, diagnostics.ErrInvalidFExpr, "malformed float literal")
			return nil, false
		}
		return Float(f), true
	case ast.BOOL:
		return Bool(x.Value == "True"), true
	default:
		return NoneVal(), true
	}
}

func (e *Evaluator) evalIdent(x *ast.IdentifierExpr, scope *symbols.Scope) (*Value, bool) {
	b, ok := scope.Lookup(x.Name)
	if !ok {
		e.errAt(&x.Location, diagnostics.ErrNameNotDefined, "name '"+x.Name+"' is not defined")
		return nil, false
	}
	if b.Kind != symbols.BindConst {
		e.errAt(&x.Location, diagnostics.ErrNotConstName, "'"+x.Name+"' is not a compile-time constant")
		return nil, false
	}
	v, ok := b.Slot.(*Value)
	if !ok {
		e.errAt(&x.Location, diagnostics.ErrInternal, "constant '"+x.Name+"' has no evaluated value")
		return nil, false
	}
	return v, true
}

func (e *Evaluator) evalUnary(x *ast.UnaryExpr, scope *symbols.Scope) (*Value, bool) {
	v, ok := e.Eval(x.X, scope)
	if !ok {
		return nil, false
	}
	switch x.Op {
	case tokens.MINUS:
		switch v.Kind {
		case VInt:
			if v.I == math.MinInt32 {
				e.errAt(&x.Location, diagnostics.ErrConstArithmetic, "negation overflows a 32-bit scoreboard value")
				return nil, false
			}
			return Int(-v.I), true
		case VFloat:
			return Float(-v.F), true
		}
	case tokens.PLUS:
		if v.Kind == VInt || v.Kind == VFloat {
			return v, true
		}
	case tokens.KW_NOT:
		if v.Kind == VBool {
			return Bool(!v.B), true
		}
	}
	e.errAt(&x.Location, diagnostics.ErrInvalidOperand, "invalid operand for unary operator")
	return nil, false
}

func (e *Evaluator) evalBinary(x *ast.BinaryExpr, scope *symbols.Scope) (*Value, bool) {
	l, ok := e.Eval(x.X, scope)
	if !ok {
		return nil, false
	}

	switch x.Op {
	case tokens.KW_AND:
		if l.Kind != VBool {
			e.errAt(&x.Location, diagnostics.ErrInvalidOperand, "'and' requires bool operands")
			return nil, false
		}
		if !l.B {
			return Bool(false), true
		}
		r, ok := e.Eval(x.Y, scope)
		if !ok {
			return nil, false
		}
		return Bool(r.Kind == VBool && r.B), true
	case tokens.KW_OR:
		if l.Kind != VBool {
			e.errAt(&x.Location, diagnostics.ErrInvalidOperand, "'or' requires bool operands")
			return nil, false
		}
		if l.B {
			return Bool(true), true
		}
		r, ok := e.Eval(x.Y, scope)
		if !ok {
			return nil, false
		}
		return Bool(r.Kind == VBool && r.B), true
	}

	r, ok := e.Eval(x.Y, scope)
	if !ok {
		return nil, false
	}

	// List repetition: `list * n`, where n must be a literal integer
	// (*listmultimesnonliteral*).
	if x.Op == tokens.STAR && (l.Kind == VList || r.Kind == VList) {
		return e.evalListMul(x, l, r)
	}

	if !isNumeric(l.Kind) || !isNumeric(r.Kind) {
		if l.Kind == VString && r.Kind == VString && x.Op == tokens.PLUS {
			return Str(l.S + r.S), true
		}
		e.errAt(&x.Location, diagnostics.ErrInvalidOperand, "invalid operands for binary operator")
		return nil, false
	}

	bothInt := l.Kind == VInt && r.Kind == VInt
	switch x.Op {
	case tokens.PLUS, tokens.MINUS, tokens.STAR:
		if bothInt {
			a, b := int64(l.I), int64(r.I)
			var res int64
			switch x.Op {
			case tokens.PLUS:
				res = a + b
			case tokens.MINUS:
				res = a - b
			case tokens.STAR:
				res = a * b
			}
			if res < math.MinInt32 || res > math.MaxInt32 {
				e.errAt(&x.Location, diagnostics.ErrConstArithmetic, "arithmetic overflows a 32-bit scoreboard value")
				return nil, false
			}
			return Int(int32(res)), true
		}
		a, b := l.asFloat(), r.asFloat()
		switch x.Op {
		case tokens.PLUS:
			return Float(a + b), true
		case tokens.MINUS:
			return Float(a - b), true
		default:
			return Float(a * b), true
		}
	case tokens.SLASH:
		if bothInt {
			if r.I == 0 {
				e.errAt(&x.Location, diagnostics.ErrConstArithmetic, "division by zero")
				return nil, false
			}
			return Int(l.I / r.I), true
		}
		b := r.asFloat()
		if b == 0 {
			e.errAt(&x.Location, diagnostics.ErrConstArithmetic, "division by zero")
			return nil, false
		}
		return Float(l.asFloat() / b), true
	case tokens.PERCENT:
		if bothInt {
			if r.I == 0 {
				e.errAt(&x.Location, diagnostics.ErrConstArithmetic, "modulo by zero")
				return nil, false
			}
			return Int(l.I % r.I), true
		}
		b := r.asFloat()
		if b == 0 {
			e.errAt(&x.Location, diagnostics.ErrConstArithmetic, "modulo by zero")
			return nil, false
		}
		return Float(math.Mod(l.asFloat(), b)), true
	}

	e.errAt(&x.Location, diagnostics.ErrInvalidOperand, "invalid operands for binary operator")
	return nil, false
}

func (e *Evaluator) evalListMul(x *ast.BinaryExpr, l, r *Value) (*Value, bool) {
	list, factorExpr, factor := l, x.Y, r
	if l.Kind != VList {
		list, factorExpr, factor = r, x.X, l
	}
	if _, isLit := factorExpr.(*ast.BasicLit); !isLit || factor.Kind != VInt {
		e.errAt(&x.Location, diagnostics.ErrListMultNonLiteral, "list repetition factor must be a literal integer")
		return nil, false
	}
	if factor.I < 0 {
		e.errAt(&x.Location, diagnostics.ErrConstArithmetic, "list repetition factor must not be negative")
		return nil, false
	}
	var elemType types.Type = types.Any
	if len(list.List) > 0 {
		elemType = list.List[0].Type
	}
	out := make([]*Value, 0, len(list.List)*int(factor.I))
	for i := int32(0); i < factor.I; i++ {
		out = append(out, list.List...)
	}
	return List(elemType, out), true
}

func (e *Evaluator) evalCompare(x *ast.CompareExpr, scope *symbols.Scope) (*Value, bool) {
	operands := make([]*Value, len(x.Operands))
	for i, op := range x.Operands {
		v, ok := e.Eval(op, scope)
		if !ok {
			return nil, false
		}
		operands[i] = v
	}
	for i, op := range x.Ops {
		l, r := operands[i], operands[i+1]
		ok, res := compareOne(op, l, r)
		if !ok {
			e.errAt(&x.Location, diagnostics.ErrInvalidOperand, "invalid operands for comparison")
			return nil, false
		}
		if !res {
			return Bool(false), true
		}
	}
	return Bool(true), true
}

func compareOne(op tokens.Kind, l, r *Value) (ok, result bool) {
	if op == tokens.EQ {
		return true, l.Equals(r)
	}
	if op == tokens.NE {
		return true, !l.Equals(r)
	}
	if !isNumeric(l.Kind) || !isNumeric(r.Kind) {
		return false, false
	}
	a, b := l.asFloat(), r.asFloat()
	switch op {
	case tokens.LT:
		return true, a < b
	case tokens.LE:
		return true, a <= b
	case tokens.GT:
		return true, a > b
	case tokens.GE:
		return true, a >= b
	}
	return false, false
}

func (e *Evaluator) evalList(x *ast.ListExpr, scope *symbols.Scope) (*Value, bool) {
	elems := make([]*Value, len(x.Elts))
	for i, el := range x.Elts {
		v, ok := e.Eval(el, scope)
		if !ok {
			return nil, false
		}
		elems[i] = v
	}
	var elemType types.Type = types.Any
	if len(elems) > 0 {
		elemType = elems[0].Type
	}
	return List(elemType, elems), true
}

func (e *Evaluator) evalMap(x *ast.MapExpr, scope *symbols.Scope) (*Value, bool) {
	entries := make([]MapEntry, 0, len(x.Entries))
	seen := make(map[string]bool)
	var keyType, valType types.Type = types.Any, types.Any
	for _, en := range x.Entries {
		k, ok := e.Eval(en.Key, scope)
		if !ok {
			return nil, false
		}
		hk, hashable := k.HashKey()
		if !hashable {
			e.errAt(en.Key.Loc(), diagnostics.ErrInvalidMapKey, "map key is not a hashable compile-time value")
			return nil, false
		}
		if seen[hk] {
			e.errAt(en.Key.Loc(), diagnostics.ErrInvalidMapKey, "duplicate map key")
			return nil, false
		}
		seen[hk] = true
		v, ok := e.Eval(en.Value, scope)
		if !ok {
			return nil, false
		}
		if len(entries) == 0 {
			keyType, valType = k.Type, v.Type
		}
		entries = append(entries, MapEntry{Key: k, Value: v})
	}
	return Map(keyType, valType, entries), true
}

func (e *Evaluator) evalSubscript(x *ast.SubscriptExpr, scope *symbols.Scope) (*Value, bool) {
	container, ok := e.Eval(x.X, scope)
	if !ok {
		return nil, false
	}
	index, ok := e.Eval(x.Index, scope)
	if !ok {
		return nil, false
	}
	switch container.Kind {
	case VList:
		if index.Kind != VInt {
			e.errAt(x.Index.Loc(), diagnostics.ErrInvalidOperand, "list index must be int")
			return nil, false
		}
		i := int(index.I)
		if i < 0 {
			i += len(container.List)
		}
		if i < 0 || i >= len(container.List) {
			e.errAt(&x.Location, diagnostics.ErrListIndexOOB, "list index out of bounds")
			return nil, false
		}
		return container.List[i], true
	case VMap:
		hk, hashable := index.HashKey()
		if !hashable {
			e.errAt(x.Index.Loc(), diagnostics.ErrInvalidMapKey, "map key is not a hashable compile-time value")
			return nil, false
		}
		for _, en := range container.Map {
			if k, _ := en.Key.HashKey(); k == hk {
				return en.Value, true
			}
		}
		e.errAt(&x.Location, diagnostics.ErrMapKeyNotFound, "key not found in map")
		return nil, false
	default:
		e.errAt(&x.Location, diagnostics.ErrNoGetItem, "value does not support indexing")
		return nil, false
	}
}

func (e *Evaluator) errAt(loc *source.Location, code, msg string) {
	e.Diag.Add(diagnostics.NewError(msg).WithCode(code).WithPrimaryLabel(e.FilePath, loc, msg))
}
