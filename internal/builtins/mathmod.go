package builtins

import "github.com/creepebucket/AcaciaMC/internal/semantics/consteval"

func init() {
	register(&Func{Name: "min", Eval: evalMin})
	register(&Func{Name: "max", Eval: evalMax})
	register(&Func{Name: "pow", Eval: evalPow})
	register(&Func{Name: "sqrt", Eval: evalSqrt})
}

func evalMin(args []*consteval.Value) (*consteval.Value, bool) {
	if len(args) != 2 || args[0].Kind != consteval.VInt || args[1].Kind != consteval.VInt {
		return nil, false
	}
	if args[0].I < args[1].I {
		return args[0], true
	}
	return args[1], true
}

func evalMax(args []*consteval.Value) (*consteval.Value, bool) {
	if len(args) != 2 || args[0].Kind != consteval.VInt || args[1].Kind != consteval.VInt {
		return nil, false
	}
	if args[0].I > args[1].I {
		return args[0], true
	}
	return args[1], true
}

// evalPow computes base**exp by repeated multiplication; a negative exponent
// has no integer result and is rejected.
func evalPow(args []*consteval.Value) (*consteval.Value, bool) {
	if len(args) != 2 || args[0].Kind != consteval.VInt || args[1].Kind != consteval.VInt {
		return nil, false
	}
	base, exp := args[0].I, args[1].I
	if exp < 0 {
		return nil, false
	}
	var result int32 = 1
	for ; exp > 0; exp-- {
		result *= base
	}
	return consteval.Int(result), true
}

// evalSqrt computes the integer square root via Newton's method, matching
// modules/math.py's isqrt (original_source/acaciamc).
func evalSqrt(args []*consteval.Value) (*consteval.Value, bool) {
	if len(args) != 1 || args[0].Kind != consteval.VInt || args[0].I < 0 {
		return nil, false
	}
	n := args[0].I
	if n == 0 {
		return consteval.Int(0), true
	}
	x := n
	for {
		y := (x + n/x) / 2
		if y >= x {
			break
		}
		x = y
	}
	return consteval.Int(x), true
}
