// Package iterator implements the lazy, suspension-transparent async
// iterator chain: source coercion into an Iterator, the composite adapters
// (filter, map, mapWithIndex, flatMap, unique, limit, skip, grouped,
// stream), and the terminal consumers (each, collect, collectEntries,
// join, reduce, sort).
//
// Every adapter and terminal here is "async-transparent" per package cont:
// its HasNext/Next (or, for terminals, its single call) may call an
// upstream iterator or a user closure that suspends, and that suspension
// propagates as an ordinary Go panic all the way out to the [cont.Run]
// driver. Resumption never re-invokes the original call; it re-enters via
// the closure [cont.Await] chained at the suspend point, which is why none
// of the exported functions in this package take an explicit continuation
// parameter the way spec.md describes the source language's own compiled
// functions doing — Go's closures make that encoding unnecessary here (see
// DESIGN.md).
package iterator

import (
	"github.com/scriptrt/scriptrt/rterrors"
	"github.com/scriptrt/scriptrt/value"
)

// Iterator is the pull-source interface every adapter both consumes and
// produces. It is exactly value.Iterator, re-exported under this package's
// name for readability at call sites that don't otherwise touch value.
type Iterator = value.Iterator

// Func is a user closure callable from within an adapter or terminal. It
// may suspend by panicking with a *cont.Continuation (indirectly, via a
// registry-dispatched call); adapters must call it only from within an
// Await-protected position.
type Func func(args ...value.Value) value.Value

// MakeIterator coerces v into an Iterator per spec.md §4.3's source
// coercion table: list → its iterator; map → iterator of [key,value]
// entries; string → iterator of one-character strings; integer n →
// iterator of 0..n-1; iterator → itself. Any other shape is a type error.
func MakeIterator(v value.Value, source string, offset int) (Iterator, error) {
	switch v.Kind() {
	case value.KindList:
		return &listIterator{list: v.AsList()}, nil
	case value.KindMap:
		return &listIterator{entries: v.AsMap().Entries()}, nil
	case value.KindString:
		return &stringIterator{runes: []rune(v.AsString())}, nil
	case value.KindInt32:
		return &rangeIterator{n: int64(v.AsInt32())}, nil
	case value.KindInt64:
		return &rangeIterator{n: v.AsInt64()}, nil
	case value.KindIterator:
		return v.AsIterator(), nil
	default:
		return nil, rterrors.NewType("value of type "+v.Kind().String()+" is not iterable", source, offset)
	}
}

// listIterator walks a *value.List, or a precomputed slice of [key,value]
// entry lists when coercing a map (see MakeIterator).
type listIterator struct {
	list    *value.List
	entries []*value.List
	i       int
}

func (it *listIterator) HasNext() bool {
	if it.list != nil {
		return it.i < it.list.Len()
	}
	return it.i < len(it.entries)
}

func (it *listIterator) Next() value.Value {
	if it.list != nil {
		v, _ := it.list.Get(it.i)
		it.i++
		return v
	}
	v := it.entries[it.i]
	it.i++
	return value.FromList(v)
}

// stringIterator walks a string's runes, one single-character string at a
// time (matching spec.md's "string → iterator of one-character strings").
type stringIterator struct {
	runes []rune
	i     int
}

func (it *stringIterator) HasNext() bool { return it.i < len(it.runes) }

func (it *stringIterator) Next() value.Value {
	v := value.Str(string(it.runes[it.i]))
	it.i++
	return v
}

// rangeIterator produces 0..n-1, for an integer n coerced into an
// iterator.
type rangeIterator struct {
	n int64
	i int64
}

func (it *rangeIterator) HasNext() bool { return it.i < it.n }

func (it *rangeIterator) Next() value.Value {
	v := value.Int64(it.i)
	it.i++
	return v
}

