package iterator

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/value"
)

// streamIterator unfolds by repeatedly invoking producer, terminating once
// producer yields null, per spec.md §4.3. It holds a one-element lookahead
// so HasNext can observe termination before Next is called.
type streamIterator struct {
	producer  Func
	lookahead value.Value
	has       bool
	done      bool
}

// Stream returns an Iterator that unfolds by calling producer() repeatedly
// until it yields null.
func Stream(producer Func) Iterator {
	return &streamIterator{producer: producer}
}

func (it *streamIterator) fill(done func(found bool) any) any {
	if it.done {
		return done(false)
	}
	return cont.AwaitT[value.Value](
		func() any { return it.producer() },
		func(produced value.Value) any {
			if produced.IsNull() {
				it.done = true
				return done(false)
			}
			it.lookahead = produced
			it.has = true
			return done(true)
		},
	)
}

func (it *streamIterator) HasNext() bool {
	if it.has {
		return true
	}
	return it.fill(func(found bool) any { return found }).(bool)
}

func (it *streamIterator) Next() value.Value {
	if it.has {
		return it.takeLookahead()
	}
	return it.fill(func(bool) any { return it.takeLookahead() }).(value.Value)
}

func (it *streamIterator) takeLookahead() value.Value {
	v := it.lookahead
	it.has = false
	it.lookahead = value.Null
	return v
}
