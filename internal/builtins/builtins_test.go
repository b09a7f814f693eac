package builtins

import (
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/ir"
	"github.com/creepebucket/AcaciaMC/internal/semantics/consteval"
)

func TestMinMax(t *testing.T) {
	min, ok := Lookup("min")
	if !ok {
		t.Fatalf("min not registered")
	}
	v, ok := min.Eval([]*consteval.Value{consteval.Int(3), consteval.Int(-1)})
	if !ok || v.I != -1 {
		t.Errorf("min(3, -1) = %v, %v; want -1, true", v, ok)
	}

	max, ok := Lookup("max")
	if !ok {
		t.Fatalf("max not registered")
	}
	v, ok = max.Eval([]*consteval.Value{consteval.Int(3), consteval.Int(-1)})
	if !ok || v.I != 3 {
		t.Errorf("max(3, -1) = %v, %v; want 3, true", v, ok)
	}
}

func TestPowRejectsNegativeExponent(t *testing.T) {
	pow, _ := Lookup("pow")
	v, ok := pow.Eval([]*consteval.Value{consteval.Int(2), consteval.Int(10)})
	if !ok || v.I != 1024 {
		t.Errorf("pow(2, 10) = %v, %v; want 1024, true", v, ok)
	}
	if _, ok := pow.Eval([]*consteval.Value{consteval.Int(2), consteval.Int(-1)}); ok {
		t.Errorf("pow(2, -1) should fail: no integer result")
	}
}

func TestSqrtRoundsDown(t *testing.T) {
	sqrt, _ := Lookup("sqrt")
	cases := []struct {
		n    int32
		want int32
	}{{0, 0}, {1, 1}, {15, 3}, {16, 4}, {17, 4}}
	for _, c := range cases {
		v, ok := sqrt.Eval([]*consteval.Value{consteval.Int(c.n)})
		if !ok || v.I != c.want {
			t.Errorf("sqrt(%d) = %v, %v; want %d, true", c.n, v, ok, c.want)
		}
	}
	if _, ok := sqrt.Eval([]*consteval.Value{consteval.Int(-4)}); ok {
		t.Errorf("sqrt(-4) should fail")
	}
}

func TestPrintConcatenatesArgumentsIntoOneTellraw(t *testing.T) {
	print, ok := Lookup("print")
	if !ok {
		t.Fatalf("print not registered")
	}
	instrs := print.Emit([]*consteval.Value{consteval.Str("x = "), consteval.Int(5)})
	if len(instrs) != 1 || instrs[0].Kind != ir.OpTellraw {
		t.Fatalf("got %+v, want a single OpTellraw", instrs)
	}
	if instrs[0].Line != "x = 5" {
		t.Errorf("got line %q, want %q", instrs[0].Line, "x = 5")
	}
}
