package iterator

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/value"
)

// uniqueIterator filters out elements equal (by value.Equal) to one
// already seen, remembering seen values and preserving order, per
// spec.md §4.3.
type uniqueIterator struct {
	upstream  Iterator
	seen      []value.Value
	lookahead value.Value
	has       bool
	done      bool
}

// Unique returns an Iterator over upstream's distinct elements, in
// first-occurrence order.
func Unique(upstream Iterator) Iterator {
	return &uniqueIterator{upstream: upstream}
}

func (it *uniqueIterator) fill(done func(found bool) any) any {
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
					for _, s := range it.seen {
						if value.Equal(s, elem) {
							return it.fill(done)
						}
					}
					it.seen = append(it.seen, elem)
					it.lookahead = elem
					it.has = true
					return done(true)
				},
			)
		},
	)
}

func (it *uniqueIterator) HasNext() bool {
	if it.has {
		return true
	}
	return it.fill(func(found bool) any { return found }).(bool)
}

func (it *uniqueIterator) Next() value.Value {
	if it.has {
		return it.takeLookahead()
	}
	return it.fill(func(bool) any { return it.takeLookahead() }).(value.Value)
}

func (it *uniqueIterator) takeLookahead() value.Value {
	v := it.lookahead
	it.has = false
	it.lookahead = value.Null
	return v
}
