// Package consteval implements the compile-time constant evaluator
// (spec.md §4.6): arithmetic, list/map construction, indexing, and
// comparison over Acacia's compile-time types; there is no slice form.
package consteval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creepebucket/AcaciaMC/internal/types"
)

// Kind tags the underlying representation of a Value.
type Kind int

const (
	VInt Kind = iota
	VFloat
	VBool
	VString
	VPos
	VRot
	VOffset
	VList
	VMap
	VNone
)

// MapEntry is one key/value pair of a VMap value, kept in insertion order
// so map iteration (spec.md §4.3 for-in) is deterministic.
type MapEntry struct {
	Key   *Value
	Value *Value
}

// Value is a fully-evaluated compile-time constant.
type Value struct {
	Kind Kind
	Type types.Type

	I    int32
	F    float64
	B    bool
	S    string
	Axes [3]float64 // Pos/Rot/Offset components

	List []*Value
	Map  []MapEntry
}

func Int(v int32) *Value    { return &Value{Kind: VInt, Type: types.Int, I: v} }
func Float(v float64) *Value { return &Value{Kind: VFloat, Type: types.Float, F: v} }
func Bool(v bool) *Value    { return &Value{Kind: VBool, Type: types.Bool, B: v} }
func Str(v string) *Value   { return &Value{Kind: VString, Type: types.String, S: v} }
func NoneVal() *Value       { return &Value{Kind: VNone, Type: types.None} }

func Pos3(kind Kind, t types.Type, x, y, z float64) *Value {
	return &Value{Kind: kind, Type: t, Axes: [3]float64{x, y, z}}
}

func List(elemType types.Type, elems []*Value) *Value {
	return &Value{Kind: VList, Type: types.NewList(elemType), List: elems}
}

func Map(keyType, valType types.Type, entries []MapEntry) *Value {
	return &Value{Kind: VMap, Type: types.NewMap(keyType, valType), Map: entries}
}

// HashKey returns a string uniquely identifying v for use as a map key, and
// false if v's kind cannot be a map key (*invalidmapkey* — only int, bool,
// and string are hashable).
func (v *Value) HashKey() (string, bool) {
	switch v.Kind {
	case VInt:
		return "i:" + strconv.FormatInt(int64(v.I), 10), true
	case VBool:
		return "b:" + strconv.FormatBool(v.B), true
	case VString:
		return "s:" + v.S, true
	default:
		return "", false
	}
}

// Text renders v the way a formatted-string hole or raw-command
// interpolation embeds it (spec.md §8 property 6).
func (v *Value) Text() string {
	switch v.Kind {
	case VInt:
		return strconv.FormatInt(int64(v.I), 10)
	case VFloat:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case VBool:
		return strconv.FormatBool(v.B)
	case VString:
		return v.S
	case VNone:
		return "None"
	case VPos, VRot, VOffset:
		return fmt.Sprintf("%g %g %g", v.Axes[0], v.Axes[1], v.Axes[2])
	case VList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.Text()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// Equals is compile-time value equality (spec.md §4.6 comparison).
func (v *Value) Equals(o *Value) bool {
	if v.Kind != o.Kind {
		// int/float compare numerically across kinds, like Acacia's closed
		// arithmetic type set does for operators.
		if isNumeric(v.Kind) && isNumeric(o.Kind) {
			return v.asFloat() == o.asFloat()
		}
		return false
	}
	switch v.Kind {
	case VInt:
		return v.I == o.I
	case VFloat:
		return v.F == o.F
	case VBool:
		return v.B == o.B
	case VString:
		return v.S == o.S
	case VNone:
		return true
	case VPos, VRot, VOffset:
		return v.Axes == o.Axes
	case VList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equals(o.List[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumeric(k Kind) bool { return k == VInt || k == VFloat }

func (v *Value) asFloat() float64 {
	if v.Kind == VInt {
		return float64(v.I)
	}
	return v.F
}
