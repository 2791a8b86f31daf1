package iterator

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/value"
)

// flatMapIterator transforms each upstream element into a sub-iterable via
// fn and flattens the results; a sub-result of null skips the element
// entirely. Holds a sub-iterator reference across suspensions, per
// spec.md §4.3.
type flatMapIterator struct {
	upstream  Iterator
	fn        Func
	sub       Iterator
	lookahead value.Value
	has       bool
	done      bool
}

// FlatMap returns an Iterator flattening fn(element) for each element of
// upstream; fn may return an iterator, list, map, string, or null.
func FlatMap(upstream Iterator, fn Func) Iterator {
	return &flatMapIterator{upstream: upstream, fn: fn}
}

// fill ensures the lookahead slot is populated (or upstream proven
// exhausted), then calls done — see filterIterator's fill for why done
// must carry whatever the caller needs to do next, rather than running
// after fill returns.
func (it *flatMapIterator) fill(done func(found bool) any) any {
	if it.done {
		return done(false)
	}
	if it.sub != nil {
		return it.drainSub(done)
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
						func() any { return it.fn(elem) },
						func(mapped value.Value) any {
							if mapped.IsNull() {
								return it.fill(done)
							}
							sub, err := MakeIterator(mapped, "", 0)
							if err != nil {
								panic(err)
							}
							it.sub = sub
							return it.drainSub(done)
						},
					)
				},
			)
		},
	)
}

func (it *flatMapIterator) drainSub(done func(found bool) any) any {
	return cont.AwaitT[bool](
		func() any { return it.sub.HasNext() },
		func(hasNext bool) any {
			if !hasNext {
				it.sub = nil
				return it.fill(done)
			}
			return cont.AwaitT[value.Value](
				func() any { return it.sub.Next() },
				func(elem value.Value) any {
					it.lookahead = elem
					it.has = true
					return done(true)
				},
			)
		},
	)
}

func (it *flatMapIterator) HasNext() bool {
	if it.has {
		return true
	}
	return it.fill(func(found bool) any { return found }).(bool)
}

func (it *flatMapIterator) Next() value.Value {
	if it.has {
		return it.takeLookahead()
	}
	return it.fill(func(bool) any { return it.takeLookahead() }).(value.Value)
}

func (it *flatMapIterator) takeLookahead() value.Value {
	v := it.lookahead
	it.has = false
	it.lookahead = value.Null
	return v
}
