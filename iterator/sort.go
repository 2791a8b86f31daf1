package iterator

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/value"
)

// sortIterator materializes upstream eagerly (itself suspension-aware),
// sorts the materialized slice with a bottom-up iterative merge sort whose
// merge step is a resumable state machine, then yields the sorted elements
// lazily. cmp is the user comparator, called as cmp(a, b) and expected to
// return a numeric Value whose sign gives the ordering (the <=> operator's
// contract); a nil cmp falls back to the runtime's natural ordering via
// value.Compare, which never suspends. Per spec.md §4.3, ties (cmp==0) keep
// their relative input order.
type sortIterator struct {
	upstream Iterator
	cmp      Func
	source   string
	offset   int

	sorted []value.Value
	i      int
	ready  bool
}

// Sort returns an Iterator yielding upstream's elements in sorted order.
// cmp may be nil, selecting natural ordering.
func Sort(upstream Iterator, cmp Func, source string, offset int) Iterator {
	return &sortIterator{upstream: upstream, cmp: cmp, source: source, offset: offset}
}

func (it *sortIterator) HasNext() bool {
	return it.ensureSorted(func() any {
		return it.i < len(it.sorted)
	}).(bool)
}

func (it *sortIterator) Next() value.Value {
	return it.ensureSorted(func() any {
		v := it.sorted[it.i]
		it.i++
		return v
	}).(value.Value)
}

func (it *sortIterator) ensureSorted(done func() any) any {
	if it.ready {
		return done()
	}
	return it.drain(nil, done)
}

func (it *sortIterator) drain(acc []value.Value, done func() any) any {
	return cont.AwaitT[bool](
		func() any { return it.upstream.HasNext() },
		func(hasNext bool) any {
			if !hasNext {
				return it.mergeSort(acc, done)
			}
			return cont.AwaitT[value.Value](
				func() any { return it.upstream.Next() },
				func(elem value.Value) any {
					return it.drain(append(acc, elem), done)
				},
			)
		},
	)
}

// mergeSort runs the bottom-up passes (width 1, 2, 4, ...) until the whole
// slice is one sorted run, then calls done.
func (it *sortIterator) mergeSort(src []value.Value, done func() any) any {
	n := len(src)
	if n < 2 {
		it.sorted = src
		it.ready = true
		return done()
	}
	return it.passAt(src, 1, done)
}

func (it *sortIterator) passAt(src []value.Value, width int, done func() any) any {
	n := len(src)
	if width >= n {
		it.sorted = src
		it.ready = true
		return done()
	}
	dst := make([]value.Value, n)
	return it.mergeAt(src, dst, 0, width, done)
}

// mergeAt merges the run pair starting at i, writes the result into dst,
// and recurses to the next pair (i+2*width) until the whole slice is
// covered, then advances to the next pass.
func (it *sortIterator) mergeAt(src, dst []value.Value, i, width int, done func() any) any {
	n := len(src)
	if i >= n {
		return it.passAt(dst, width*2, done)
	}
	lo, mid := i, min(i+width, n)
	hi := min(mid+width, n)
	return it.mergeRun(src, dst, lo, mid, mid, hi, lo, func() any {
		return it.mergeAt(src, dst, i+2*width, width, done)
	})
}

// mergeRun stably merges src[a:aEnd] and src[b:bEnd] into dst starting at
// out, then calls next. a and b advance independently; once one side is
// exhausted the remainder of the other copies without further comparison.
func (it *sortIterator) mergeRun(src []value.Value, dst []value.Value, a, aEnd, b, bEnd, out int, next func() any) any {
	if a >= aEnd {
		copy(dst[out:], src[b:bEnd])
		return next()
	}
	if b >= bEnd {
		copy(dst[out:], src[a:aEnd])
		return next()
	}
	left, right := src[a], src[b]
	return it.compare(left, right, func(c int) any {
		if c <= 0 {
			dst[out] = left
			return it.mergeRun(src, dst, a+1, aEnd, b, bEnd, out+1, next)
		}
		dst[out] = right
		return it.mergeRun(src, dst, a, aEnd, b+1, bEnd, out+1, next)
	})
}

// compare evaluates the ordering of a and b, calling done with a negative,
// zero, or positive int per the usual comparator contract.
func (it *sortIterator) compare(a, b value.Value, done func(c int) any) any {
	if it.cmp == nil {
		c, err := value.Compare(a, b, it.source, it.offset)
		if err != nil {
			panic(err)
		}
		return done(c)
	}
	return cont.AwaitT[value.Value](
		func() any { return it.cmp(a, b) },
		func(result value.Value) any {
			c, err := value.Compare(result, value.Int64(0), it.source, it.offset)
			if err != nil {
				panic(err)
			}
			return done(c)
		},
	)
}
