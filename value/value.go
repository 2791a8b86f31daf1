// Package value implements the dynamically-typed Value that flows through
// the runtime: null, boolean, int32, int64, float64, arbitrary-precision
// decimal, string, ordered list, ordered-key map, method handle, class
// instance, and iterator. See spec.md §3 and §4.5.
//
// Value is a tagged struct rather than an interface, matching the
// allocation-conscious, dispatch-by-switch style the dynamic-typed builtins
// in this corpus favor over boxing every scalar behind an interface.
package value

import (
	"fmt"
	"strings"
)

// Kind identifies which alternative of the dynamic Value sum type a given
// Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindFloat64
	KindDecimal
	KindString
	KindList
	KindMap
	KindCallable
	KindInstance
	KindIterator
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt32:
		return "int"
	case KindInt64:
		return "long"
	case KindFloat64:
		return "double"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindCallable:
		return "function"
	case KindInstance:
		return "instance"
	case KindIterator:
		return "iterator"
	default:
		return "unknown"
	}
}

// Callable is the marker interface a method-handle Value wraps. The
// registry package supplies concrete implementations (bound methods,
// global functions, closures); value itself neither invokes nor inspects
// them beyond this interface, to avoid an import cycle back to registry.
type Callable interface {
	// CallableName returns the name used in error messages and printing.
	CallableName() string
}

// Instance is the marker interface a class-instance Value wraps; the class
// package supplies the concrete implementation.
type Instance interface {
	ClassName() string
	GetField(name string) (Value, bool)
	SetField(name string, v Value) bool
}

// Iterator is the marker interface an iterator Value wraps; the iterator
// package supplies concrete adapters. HasNext and Next may each suspend by
// panicking with a *cont.Continuation — value does not depend on package
// cont, so that possibility is not reflected in this signature, exactly as
// spec.md §3 describes both operations as "allowed to suspend".
type Iterator interface {
	HasNext() bool
	Next() Value
}

// Value is the dynamically-typed unit of data the runtime operates on.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	dec  Decimal
	s    string
	list *List
	m    *Map
	call Callable
	inst Instance
	iter Iterator
}

// Null is the singleton null Value.
var Null = Value{kind: KindNull}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int32 constructs an int32 Value.
func Int32(i int32) Value { return Value{kind: KindInt32, i: int64(i)} }

// Int64 constructs an int64 Value.
func Int64(i int64) Value { return Value{kind: KindInt64, i: i} }

// Float64 constructs a float64 Value.
func Float64(f float64) Value { return Value{kind: KindFloat64, f: f} }

// FromDecimal constructs a decimal Value.
func FromDecimal(d Decimal) Value { return Value{kind: KindDecimal, dec: d} }

// Str constructs a string Value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// FromList constructs a list Value.
func FromList(l *List) Value { return Value{kind: KindList, list: l} }

// FromMap constructs a map Value.
func FromMap(m *Map) Value { return Value{kind: KindMap, m: m} }

// FromCallable constructs a method-handle Value.
func FromCallable(c Callable) Value { return Value{kind: KindCallable, call: c} }

// FromInstance constructs a class-instance Value.
func FromInstance(i Instance) Value { return Value{kind: KindInstance, inst: i} }

// FromIterator constructs an iterator Value.
func FromIterator(it Iterator) Value { return Value{kind: KindIterator, iter: it} }

func (v Value) Kind() Kind  { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() bool       { return v.b }
func (v Value) AsInt32() int32     { return int32(v.i) }
func (v Value) AsInt64() int64     { return v.i }
func (v Value) AsFloat64() float64 { return v.f }
func (v Value) AsDecimal() Decimal { return v.dec }
func (v Value) AsString() string   { return v.s }
func (v Value) AsList() *List      { return v.list }
func (v Value) AsMap() *Map        { return v.m }
func (v Value) AsCallable() Callable { return v.call }
func (v Value) AsInstance() Instance { return v.inst }
func (v Value) AsIterator() Iterator { return v.iter }

// IsNumeric reports whether v is one of int32, int64, float64, or decimal.
func (v Value) IsNumeric() bool {
	switch v.kind {
	case KindInt32, KindInt64, KindFloat64, KindDecimal:
		return true
	default:
		return false
	}
}

// Truthy implements the specification's dynamic truthiness rules: null is
// false; a boolean is itself; a number is true iff non-zero; a string,
// list, or map is true iff non-empty; an instance is always true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindInt32, KindInt64:
		return v.i != 0
	case KindFloat64:
		return v.f != 0
	case KindDecimal:
		return !v.dec.IsZero()
	case KindString:
		return v.s != ""
	case KindList:
		return v.list != nil && v.list.Len() > 0
	case KindMap:
		return v.m != nil && v.m.Len() > 0
	default:
		return true
	}
}

// String renders v for display/printf purposes. Cyclic lists, maps and
// instances are detected by identity using a stack-local seen set (per
// DESIGN NOTES §9, "Cyclic graphs in value printing" — the seen set lives
// on the call stack, not in a package-level or struct field, so concurrent
// printing of disjoint graphs never interferes).
func (v Value) String() string {
	var sb strings.Builder
	writeValue(&sb, v, nil)
	return sb.String()
}

func (v Value) GoString() string { return fmt.Sprintf("value.Value(%s: %s)", v.kind, v.String()) }
