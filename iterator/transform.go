package iterator

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/value"
)

// filterIterator holds a one-element lookahead slot, filled lazily by
// advancing the upstream iterator until pred returns truthy or upstream is
// exhausted. Preserves encounter order (spec.md §4.3).
//
// fill takes an explicit continuation (done) rather than simply returning
// a bool: every step here may suspend, and a suspending call's resumption
// re-enters only the closure chained at the suspend point, never any plain
// Go statement written after the call — so whatever HasNext or Next needs
// to do once the lookahead slot is settled must itself be part of that
// chain, passed in as done, not run after fill returns (see DESIGN.md,
// "continuation-threaded adapters").
type filterIterator struct {
	upstream  Iterator
	pred      Func
	lookahead value.Value
	has       bool
	done      bool
}

// Filter returns an Iterator yielding only the elements of upstream for
// which pred is truthy. A nil pred is the identity predicate (keep every
// truthy element).
func Filter(upstream Iterator, pred Func) Iterator {
	if pred == nil {
		pred = func(args ...value.Value) value.Value { return args[0] }
	}
	return &filterIterator{upstream: upstream, pred: pred}
}

func (it *filterIterator) fill(done func(found bool) any) any {
	if it.done {
		return done(false)
	}
	return cont.AwaitT[bool](
		func() any { return it.upstream.HasNext() },
		func(hasNext bool) any {
			if !hasNext {
				it.done = true
				return done(false)
			}
			return cont.AwaitT[value.Value](
				func() any { return it.upstream.Next() },
				func(elem value.Value) any {
					return cont.AwaitT[value.Value](
						func() any { return it.pred(elem) },
						func(keep value.Value) any {
							if keep.Truthy() {
								it.lookahead = elem
								it.has = true
								return done(true)
							}
							return it.fill(done)
						},
					)
				},
			)
		},
	)
}

func (it *filterIterator) HasNext() bool {
	if it.has {
		return true
	}
	return it.fill(func(found bool) any { return found }).(bool)
}

func (it *filterIterator) Next() value.Value {
	if it.has {
		return it.takeLookahead()
	}
	return it.fill(func(bool) any { return it.takeLookahead() }).(value.Value)
}

func (it *filterIterator) takeLookahead() value.Value {
	v := it.lookahead
	it.has = false
	it.lookahead = value.Null
	return v
}

// mapIterator applies fn to each upstream element as it is pulled.
type mapIterator struct {
	upstream Iterator
	fn       Func
}

// Map returns an Iterator yielding fn(element) for each element of
// upstream.
func Map(upstream Iterator, fn Func) Iterator {
	return &mapIterator{upstream: upstream, fn: fn}
}

func (it *mapIterator) HasNext() bool {
	return cont.AwaitT[bool](
		func() any { return it.upstream.HasNext() },
		func(hasNext bool) any { return hasNext },
	).(bool)
}

func (it *mapIterator) Next() value.Value {
	return cont.AwaitT[value.Value](
		func() any { return it.upstream.Next() },
		func(elem value.Value) any { return it.fn(elem) },
	).(value.Value)
}

// mapWithIndexIterator is Map, with a running index passed as the
// closure's second argument.
type mapWithIndexIterator struct {
	upstream Iterator
	fn       Func
	i        int64
}

// MapWithIndex returns an Iterator yielding fn(element, index) for each
// element of upstream, index starting at 0.
func MapWithIndex(upstream Iterator, fn Func) Iterator {
	return &mapWithIndexIterator{upstream: upstream, fn: fn}
}

func (it *mapWithIndexIterator) HasNext() bool {
	return cont.AwaitT[bool](
		func() any { return it.upstream.HasNext() },
		func(hasNext bool) any { return hasNext },
	).(bool)
}

func (it *mapWithIndexIterator) Next() value.Value {
	return cont.AwaitT[value.Value](
		func() any { return it.upstream.Next() },
		func(elem value.Value) any {
			idx := it.i
			it.i++
			return it.fn(elem, value.Int64(idx))
		},
	).(value.Value)
}
