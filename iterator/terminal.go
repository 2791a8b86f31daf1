package iterator

import (
	"strings"

	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/rterrors"
	"github.com/scriptrt/scriptrt/value"
)

func identity(args ...value.Value) value.Value { return args[0] }

// Each drains it, invoking fn(element) for each one, then calls done.
// done carries whatever the caller needs once the drain completes — every
// step here may suspend, and a suspending call's resumption re-enters only
// the closure chained at the suspend point, never a plain Go statement
// written after Each returns, so callers thread their finalization through
// done rather than running it after Each(...) returns (see DESIGN.md,
// "continuation-threaded adapters").
func Each(it Iterator, fn Func, done func() any) any {
	return cont.AwaitT[bool](
		func() any { return it.HasNext() },
		func(hasNext bool) any {
			if !hasNext {
				return done()
			}
			return cont.AwaitT[value.Value](
				func() any { return it.Next() },
				func(elem value.Value) any {
					return cont.AwaitT[value.Value](
						func() any { return fn(elem) },
						func(value.Value) any {
							return Each(it, fn, done)
						},
					)
				},
			)
		},
	)
}

// Collect accumulates fn(element) for every element of it into an ordered
// list and returns it. fn nil is the identity.
func Collect(it Iterator, fn Func) value.Value {
	if fn == nil {
		fn = identity
	}
	out := value.NewList()
	return Each(it, func(args ...value.Value) value.Value {
		return cont.AwaitT[value.Value](
			func() any { return fn(args[0]) },
			func(v value.Value) any {
				out.Append(v)
				return value.Null
			},
		).(value.Value)
	}, func() any {
		return value.FromList(out)
	}).(value.Value)
}

// CollectEntries accumulates fn(element) for every element of it into an
// order-preserving map; each result must be a 2-element [key, value] list
// whose key is a string.
func CollectEntries(it Iterator, fn Func, source string, offset int) value.Value {
	if fn == nil {
		fn = identity
	}
	out := value.NewMap()
	return Each(it, func(args ...value.Value) value.Value {
		return cont.AwaitT[value.Value](
			func() any { return fn(args[0]) },
			func(pair value.Value) any {
				entry, err := asPairList(pair, source, offset)
				if err != nil {
					panic(err)
				}
				key, val := entry[0], entry[1]
				if key.Kind() != value.KindString {
					panic(rterrors.NewType("collectEntries: key must be a string", source, offset))
				}
				out.Set(key.AsString(), val)
				return value.Null
			},
		).(value.Value)
	}, func() any {
		return value.FromMap(out)
	}).(value.Value)
}

func asPairList(v value.Value, source string, offset int) ([2]value.Value, error) {
	if v.Kind() != value.KindList || v.AsList().Len() != 2 {
		return [2]value.Value{}, rterrors.NewType("collectEntries: closure must return a 2-element list", source, offset)
	}
	k, _ := v.AsList().Get(0)
	val, _ := v.AsList().Get(1)
	return [2]value.Value{k, val}, nil
}

// Join string-joins the display form of every element of it, using sep as
// the separator (no separator if hasSep is false, per spec.md §4.3's
// "separator null ⇒ no separator").
func Join(it Iterator, sep string, hasSep bool) string {
	var sb strings.Builder
	first := true
	return Each(it, func(args ...value.Value) value.Value {
		if !first && hasSep {
			sb.WriteString(sep)
		}
		sb.WriteString(args[0].String())
		first = false
		return value.Null
	}, func() any {
		return sb.String()
	}).(string)
}

// Reduce folds it into a single value: fn receives [accumulator, element]
// and returns the next accumulator.
func Reduce(it Iterator, initial value.Value, fn Func) value.Value {
	acc := initial
	return Each(it, func(args ...value.Value) value.Value {
		return cont.AwaitT[value.Value](
			func() any { return fn(acc, args[0]) },
			func(v value.Value) any {
				acc = v
				return value.Null
			},
		).(value.Value)
	}, func() any {
		return acc
	}).(value.Value)
}
