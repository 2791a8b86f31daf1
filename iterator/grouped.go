package iterator

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/rterrors"
	"github.com/scriptrt/scriptrt/value"
)

// groupedIterator bundles upstream elements into sublists of size k; the
// final group may be shorter than k, per spec.md §4.3.
type groupedIterator struct {
	upstream Iterator
	k        int64
	done     bool
}

// Grouped returns an Iterator yielding upstream's elements bundled into
// lists of size k. k=0 returns upstream unchanged; k<0 is a type error per
// spec.md §4.3.
func Grouped(upstream Iterator, k int64, source string, offset int) (Iterator, error) {
	if k < 0 {
		return nil, rterrors.NewType("grouped() size must not be negative", source, offset)
	}
	if k == 0 {
		return upstream, nil
	}
	return &groupedIterator{upstream: upstream, k: k}, nil
}

func (it *groupedIterator) HasNext() bool {
	if it.done {
		return false
	}
	return cont.AwaitT[bool](
		func() any { return it.upstream.HasNext() },
		func(hasNext bool) any { return hasNext },
	).(bool)
}

func (it *groupedIterator) Next() value.Value {
	group := value.NewList()
	return it.fill(group, 0)
}

func (it *groupedIterator) fill(group *value.List, count int64) value.Value {
	if count >= it.k {
		return value.FromList(group)
	}
	return cont.AwaitT[bool](
		func() any { return it.upstream.HasNext() },
		func(hasNext bool) any {
			if !hasNext {
				it.done = true
				return value.FromList(group)
			}
			return cont.AwaitT[value.Value](
				func() any { return it.upstream.Next() },
				func(elem value.Value) any {
					group.Append(elem)
					return it.fill(group, count+1)
				},
			)
		},
	).(value.Value)
}
