package registry

import (
	"fmt"

	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/rterrors"
	"github.com/scriptrt/scriptrt/value"
)

// Call dispatches a positional-style invocation of d, implementing rules
// (2)-(5) of spec.md §4.4's dispatch algorithm: a lone list argument is
// unpacked to positional args when d's arity makes that unambiguous (rule
// 2); otherwise args are taken as-is (rule 3); arity is validated and
// trailing optional defaults are folded in (rule 4); and the shaped vector
// is handed to d's Wrapper (rule 5). Named-argument calls go through
// CallNamed instead (rule 1) — spec.md §8's dispatch-equivalence property
// holds between the two entry points for any call expressible both ways.
func Call(d *Descriptor, receiver value.Value, k *cont.Continuation, source string, offset int, args []value.Value) (value.Value, error) {
	if len(args) == 1 && listHeuristicApplies(d) && args[0].Kind() == value.KindList {
		args = args[0].AsList().Items()
	}
	shaped, err := shapePositional(d, source, offset, args)
	if err != nil {
		return value.Null, err
	}
	return d.wrap(receiver, k, source, offset, shaped)
}

// CallNamed dispatches a named-argument invocation of d, implementing rule
// (1) of spec.md §4.4's dispatch algorithm: named is the tagged named-args
// map a call site built from `name: value` syntax, distinct from an
// ordinary value.Map passed as a single positional argument (which Call
// handles under rules 2/3 instead).
func CallNamed(d *Descriptor, receiver value.Value, k *cont.Continuation, source string, offset int, named *value.Map) (value.Value, error) {
	out := make([]value.Value, len(d.Params))
	seen := make(map[string]bool, named.Len())
	for i, p := range d.Params {
		if v, ok := named.Get(p.Name); ok {
			out[i] = v
			seen[p.Name] = true
			continue
		}
		if p.Default == nil {
			return value.Null, rterrors.NewMissingArg(p.Name, source, offset)
		}
		out[i] = *p.Default
	}
	for _, key := range named.Keys() {
		if !seen[key] {
			return value.Null, rterrors.NewUnknownArg(key, source, offset)
		}
	}
	return d.wrap(receiver, k, source, offset, out)
}

// listHeuristicApplies reports whether a lone list argument should be
// unpacked as positional args, per spec.md §4.4 rule 2: the function must
// take more than one positional argument (>=2 mandatory params, or more
// than one declared param overall), so a single-list-argument call can only
// ever mean "here are my positional args", never "my one argument happens
// to be a list".
func listHeuristicApplies(d *Descriptor) bool {
	return d.Mandatory >= 2 || len(d.Params) > 1
}

// shapePositional validates arg count against d's mandatory/max bounds and
// folds in defaults for missing trailing optional parameters, per spec.md
// §4.4 rule 4.
func shapePositional(d *Descriptor, source string, offset int, args []value.Value) ([]value.Value, error) {
	max := len(d.Params)
	if len(args) < d.Mandatory {
		return nil, rterrors.NewMissingArg(d.Params[len(args)].Name, source, offset)
	}
	if !d.Variadic && len(args) > max {
		return nil, rterrors.NewUnknownArg(fmt.Sprintf("argument %d", max+1), source, offset)
	}

	out := make([]value.Value, max)
	n := len(args)
	if n > max {
		n = max
	}
	copy(out, args[:n])
	for i := len(args); i < max; i++ {
		out[i] = *d.Params[i].Default
	}
	if d.Variadic && len(args) > max {
		out = append(out, args[max:]...)
	}
	return out, nil
}

// IsAsyncCall implements spec.md §4.4's async-propagation rule: a call is
// async iff d itself is Async, and either d.AsyncArgs is empty (the
// function is unconditionally async whenever called) or at least one
// listed argument index is itself async. Index 0 names the receiver;
// indices 1..n name args in order. An argument counts as "async" if it is
// a callable or iterator — either could suspend when invoked or driven,
// the only two value kinds capable of propagating suspension into a caller
// through an argument rather than a direct await.
func IsAsyncCall(d *Descriptor, receiver value.Value, args []value.Value) bool {
	if !d.Async {
		return false
	}
	set := d.asyncArgSet()
	if set == nil {
		return true
	}
	if d.HasReceiver() && set[0] && isAsyncValue(receiver) {
		return true
	}
	for i, a := range args {
		if set[i+1] && isAsyncValue(a) {
			return true
		}
	}
	return false
}

func isAsyncValue(v value.Value) bool {
	switch v.Kind() {
	case value.KindCallable, value.KindIterator:
		return true
	default:
		return false
	}
}
