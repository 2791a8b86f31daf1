package iterator

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/value"
)

// limitCountIterator implements limit(n) for n>=0: pass through the first
// n elements, then stop.
type limitCountIterator struct {
	upstream  Iterator
	remaining int64
}

// Limit returns an Iterator implementing limit(n) per spec.md §4.3: n>=0
// yields the first n elements; n<0 yields all but the last |n| (via
// [reserveIterator], the same held-back-tail mechanism as negative
// skip).
func Limit(upstream Iterator, n int64) Iterator {
	if n >= 0 {
		return &limitCountIterator{upstream: upstream, remaining: n}
	}
	return newReserveIterator(upstream, -n)
}

func (it *limitCountIterator) HasNext() bool {
	if it.remaining <= 0 {
		return false
	}
	return cont.AwaitT[bool](
		func() any { return it.upstream.HasNext() },
		func(hasNext bool) any { return hasNext },
	).(bool)
}

func (it *limitCountIterator) Next() value.Value {
	it.remaining--
	return cont.AwaitT[value.Value](
		func() any { return it.upstream.Next() },
		func(elem value.Value) any { return elem },
	).(value.Value)
}

// skipCountIterator implements skip(n) for n>=0: discard the first n
// elements, then pass the rest through.
type skipCountIterator struct {
	upstream Iterator
	toSkip   int64
	skipped  bool
}

// Skip returns an Iterator implementing skip(n) per spec.md §4.3: n>=0
// drops the first n elements; n<0 drops the last |n| (via
// [reserveIterator]).
func Skip(upstream Iterator, n int64) Iterator {
	if n >= 0 {
		return &skipCountIterator{upstream: upstream, toSkip: n}
	}
	return newReserveIterator(upstream, -n)
}

// ensureSkipped discards elements until toSkip reaches zero (or upstream is
// exhausted), then calls done. Everything the caller needs to happen once
// skipping is settled must be passed in as done: a suspending call here
// resumes only the chained closure, never statements written after
// ensureSkipped's call site.
func (it *skipCountIterator) ensureSkipped(done func() any) any {
	if it.skipped {
		return done()
	}
	if it.toSkip <= 0 {
		it.skipped = true
		return done()
	}
	return cont.AwaitT[bool](
		func() any { return it.upstream.HasNext() },
		func(hasNext bool) any {
			if !hasNext {
				it.skipped = true
				return done()
			}
			return cont.AwaitT[value.Value](
				func() any { return it.upstream.Next() },
				func(value.Value) any {
					it.toSkip--
					return it.ensureSkipped(done)
				},
			)
		},
	)
}

func (it *skipCountIterator) HasNext() bool {
	return it.ensureSkipped(func() any {
		return cont.AwaitT[bool](
			func() any { return it.upstream.HasNext() },
			func(hasNext bool) any { return hasNext },
		)
	}).(bool)
}

func (it *skipCountIterator) Next() value.Value {
	return it.ensureSkipped(func() any {
		return cont.AwaitT[value.Value](
			func() any { return it.upstream.Next() },
			func(elem value.Value) any { return elem },
		)
	}).(value.Value)
}

// reserveIterator is the shared held-back-tail mechanism behind both
// limit(n<0) and skip(n<0): those two adapters describe the same
// observable result (every element except the final |n|) with differing
// buffer-size framing in spec.md §4.3, so both are implemented here once.
// It holds reserve elements in a FIFO queue at all times once primed;
// pulling a new upstream element past that point evicts and yields the
// oldest, guaranteeing the evicted element has at least reserve elements
// still ahead of it and so cannot be among the final reserve elements of
// the stream.
type reserveIterator struct {
	upstream  Iterator
	reserve   int64
	buf       []value.Value
	lookahead value.Value
	has       bool
	done      bool
}

func newReserveIterator(upstream Iterator, reserve int64) *reserveIterator {
	return &reserveIterator{upstream: upstream, reserve: reserve}
}

func (it *reserveIterator) fill(done func(found bool) any) any {
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
					it.buf = append(it.buf, elem)
					if int64(len(it.buf)) <= it.reserve {
						return it.fill(done)
					}
					it.lookahead = it.buf[0]
					it.buf = it.buf[1:]
					it.has = true
					return done(true)
				},
			)
		},
	)
}

func (it *reserveIterator) HasNext() bool {
	if it.has {
		return true
	}
	if it.done {
		return false
	}
	return it.fill(func(found bool) any { return found }).(bool)
}

func (it *reserveIterator) Next() value.Value {
	if it.has {
		return it.takeLookahead()
	}
	return it.fill(func(bool) any { return it.takeLookahead() }).(value.Value)
}

func (it *reserveIterator) takeLookahead() value.Value {
	v := it.lookahead
	it.has = false
	it.lookahead = value.Null
	return v
}
