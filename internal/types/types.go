// Package types models Acacia's closed type set (spec.md §3): the
// primitives int/bool/float/string, the compile-time geometry objects
// Pos/Rot/Offset, entity-group and entity-filter types, entity- and
// struct-template instance types, compile-time list/map/function types,
// None, and the untyped Any top type used before a compile-time value's
// eventual use fixes a concrete type.
//
// Every type additionally reports its storability (spec.md §3): whether it
// has a runtime form (materializable as scoreboards/selectors/tags),
// whether it has a compile-time form, and whether a value of it can be
// stored as an entity-template attribute or a struct-template field.
package types

import (
	"fmt"
	"strings"
)

// Storability is the three-axis tag spec.md §3 attaches to every type.
type Storability struct {
	HasRuntimeForm        bool
	HasCompileTimeForm    bool
	StorableAsEntityField bool
	StorableAsStructField bool
}

// Type is the semantic representation of an Acacia type. Equality is
// structural; two distinct *EntityType or *StructType values naming the
// same template compare equal.
type Type interface {
	String() string
	Equals(other Type) bool
	Storability() Storability
	isType()
}

// Primitive types (singletons; compare by identity or via Equals).

type primitiveKind int

const (
	kindInt primitiveKind = iota
	kindBool
	kindFloat
	kindString
	kindPos
	kindRot
	kindOffset
	kindEnfilter
	kindNone
	kindAny
)

type PrimitiveType struct {
	kind primitiveKind
	name string
	st   Storability
}

func (p *PrimitiveType) String() string          { return p.name }
func (p *PrimitiveType) Storability() Storability { return p.st }
func (p *PrimitiveType) isType()                  {}
func (p *PrimitiveType) Equals(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.kind == p.kind
}

var (
	Int = &PrimitiveType{kind: kindInt, name: "int", st: Storability{
		HasRuntimeForm: true, HasCompileTimeForm: true,
		StorableAsEntityField: true, StorableAsStructField: true,
	}}
	Bool = &PrimitiveType{kind: kindBool, name: "bool", st: Storability{
		HasRuntimeForm: true, HasCompileTimeForm: true,
		StorableAsEntityField: true, StorableAsStructField: true,
	}}
	Float = &PrimitiveType{kind: kindFloat, name: "float", st: Storability{
		HasCompileTimeForm: true, StorableAsStructField: true,
	}}
	String = &PrimitiveType{kind: kindString, name: "string", st: Storability{
		HasCompileTimeForm: true, StorableAsStructField: true,
	}}
	Pos = &PrimitiveType{kind: kindPos, name: "Pos", st: Storability{
		HasCompileTimeForm: true, StorableAsStructField: true,
	}}
	Rot = &PrimitiveType{kind: kindRot, name: "Rot", st: Storability{
		HasCompileTimeForm: true, StorableAsStructField: true,
	}}
	Offset = &PrimitiveType{kind: kindOffset, name: "Offset", st: Storability{
		HasCompileTimeForm: true, StorableAsStructField: true,
	}}
	Enfilter = &PrimitiveType{kind: kindEnfilter, name: "Enfilter", st: Storability{
		HasCompileTimeForm: true, StorableAsStructField: true,
	}}
	None = &PrimitiveType{kind: kindNone, name: "None", st: Storability{
		HasCompileTimeForm: true,
	}}
	// Any is the top type for untyped compile-time values (e.g. the
	// literal `None` before context fixes its use, or a value awaiting
	// its first contextual narrowing).
	Any = &PrimitiveType{kind: kindAny, name: "Any", st: Storability{
		HasCompileTimeForm: true,
	}}
)

// Engroup is an entity-group type: the runtime representation of "every
// entity currently matched by a selector of this template".
type EngroupType struct {
	Elem Type // entity-template instance type, or nil for an untyped group
}

func NewEngroup(elem Type) *EngroupType { return &EngroupType{Elem: elem} }

func (e *EngroupType) String() string {
	if e.Elem == nil {
		return "Engroup"
	}
	return fmt.Sprintf("Engroup[%s]", e.Elem.String())
}

func (e *EngroupType) Storability() Storability {
	return Storability{HasRuntimeForm: true}
}

func (e *EngroupType) isType() {}

func (e *EngroupType) Equals(other Type) bool {
	o, ok := other.(*EngroupType)
	if !ok {
		return false
	}
	if e.Elem == nil || o.Elem == nil {
		return e.Elem == o.Elem
	}
	return e.Elem.Equals(o.Elem)
}

// EntityType is the instance type of an entity template: every runtime
// value of this type is a single selected entity plus its attribute tags
// and scoreboard slots.
type EntityType struct {
	Template string
}

func NewEntity(template string) *EntityType { return &EntityType{Template: template} }

func (e *EntityType) String() string { return e.Template }
func (e *EntityType) isType()        {}
func (e *EntityType) Storability() Storability {
	return Storability{HasRuntimeForm: true}
}

func (e *EntityType) Equals(other Type) bool {
	o, ok := other.(*EntityType)
	return ok && o.Template == e.Template
}

// StructField is one field of a struct-template instance type.
type StructField struct {
	Name string
	Type Type
}

// StructType is the instance type of a struct template. Storability as an
// entity field is computed recursively: a struct is entity-storable only
// if every one of its fields is (spec.md §4.5 *unsupportedefieldinstruct*).
type StructType struct {
	Template string
	Fields   []StructField
}

func NewStruct(template string, fields []StructField) *StructType {
	return &StructType{Template: template, Fields: fields}
}

func (s *StructType) String() string { return s.Template }
func (s *StructType) isType()        {}

func (s *StructType) Storability() Storability {
	entityOK := true
	for _, f := range s.Fields {
		if !f.Type.Storability().StorableAsEntityField {
			entityOK = false
			break
		}
	}
	return Storability{
		HasCompileTimeForm:    true,
		StorableAsStructField: true,
		StorableAsEntityField: entityOK,
	}
}

func (s *StructType) Equals(other Type) bool {
	o, ok := other.(*StructType)
	return ok && o.Template == s.Template
}

// FieldOf returns the field named name and whether it exists.
func (s *StructType) FieldOf(name string) (StructField, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructField{}, false
}

// ListType is a compile-time-only homogeneous list.
type ListType struct {
	Elem Type
}

func NewList(elem Type) *ListType { return &ListType{Elem: elem} }

func (l *ListType) String() string { return fmt.Sprintf("list of %s", l.Elem.String()) }
func (l *ListType) isType()        {}
func (l *ListType) Storability() Storability {
	return Storability{HasCompileTimeForm: true, StorableAsStructField: true}
}

func (l *ListType) Equals(other Type) bool {
	o, ok := other.(*ListType)
	return ok && l.Elem.Equals(o.Elem)
}

// MapType is a compile-time-only key/value map.
type MapType struct {
	Key   Type
	Value Type
}

func NewMap(key, value Type) *MapType { return &MapType{Key: key, Value: value} }

func (m *MapType) String() string {
	return fmt.Sprintf("map from %s to %s", m.Key.String(), m.Value.String())
}
func (m *MapType) isType() {}
func (m *MapType) Storability() Storability {
	return Storability{HasCompileTimeForm: true, StorableAsStructField: true}
}

func (m *MapType) Equals(other Type) bool {
	o, ok := other.(*MapType)
	return ok && m.Key.Equals(o.Key) && m.Value.Equals(o.Value)
}

// Port is how a function parameter binds its actual argument (spec.md §4.4).
type Port int

const (
	PortByValue Port = iota
	PortByReference
	PortConst
)

func (p Port) String() string {
	switch p {
	case PortByReference:
		return "reference"
	case PortConst:
		return "const"
	default:
		return "value"
	}
}

// Flavor is a function's execution world (spec.md §4.4).
type Flavor int

const (
	FlavorRuntime Flavor = iota
	FlavorInline
	FlavorCompileTime
)

func (f Flavor) String() string {
	switch f {
	case FlavorInline:
		return "inline"
	case FlavorCompileTime:
		return "compile-time"
	default:
		return "runtime"
	}
}

// ParamType is one parameter of a FuncType.
type ParamType struct {
	Name    string
	Type    Type
	Port    Port
	Default bool // true if a default expression is present
}

// FuncType is a function's signature as a value type (for first-class
// references to functions, e.g. passing a builtin by name).
type FuncType struct {
	Params []ParamType
	Result Type
	Flavor Flavor
}

func NewFunc(params []ParamType, result Type, flavor Flavor) *FuncType {
	return &FuncType{Params: params, Result: result, Flavor: flavor}
}

func (f *FuncType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type.String())
	}
	result := "None"
	if f.Result != nil {
		result = f.Result.String()
	}
	return fmt.Sprintf("def(%s) -> %s", strings.Join(parts, ", "), result)
}

func (f *FuncType) isType() {}
func (f *FuncType) Storability() Storability {
	return Storability{HasCompileTimeForm: true}
}

func (f *FuncType) Equals(other Type) bool {
	o, ok := other.(*FuncType)
	if !ok || len(f.Params) != len(o.Params) || f.Flavor != o.Flavor {
		return false
	}
	if (f.Result == nil) != (o.Result == nil) {
		return false
	}
	if f.Result != nil && !f.Result.Equals(o.Result) {
		return false
	}
	for i := range f.Params {
		if f.Params[i].Port != o.Params[i].Port || !f.Params[i].Type.Equals(o.Params[i].Type) {
			return false
		}
	}
	return true
}

// World is the runtime/compile-time/reference classification spec.md §4.3
// attaches to every expression, alongside its static Type. A reference
// world means the expression names an assignable location (aliasing
// another one), distinct from the runtime-value world of that location's
// own contents.
type World int

const (
	WorldRuntime World = iota
	WorldCompileTime
	WorldReference
)

func (w World) String() string {
	switch w {
	case WorldCompileTime:
		return "compile-time"
	case WorldReference:
		return "reference"
	default:
		return "runtime"
	}
}

// IsNumeric reports whether t is int or float.
func IsNumeric(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && (p.kind == kindInt || p.kind == kindFloat)
}

// IsInt reports whether t is the int type.
func IsInt(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.kind == kindInt
}

// IsBool reports whether t is the bool type.
func IsBool(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.kind == kindBool
}
