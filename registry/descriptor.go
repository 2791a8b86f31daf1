package registry

import (
	"reflect"

	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/value"
)

// Param describes one declared dynamic parameter of a registered function
// or method: the ones visible to script code, excluding the reserved
// receiver/continuation/source/offset prefix a Wrapper's Go implementation
// may also accept. See spec.md §3.
type Param struct {
	// Name is the parameter's declared name, used for named-argument
	// expansion (see Spec) and in missing/unknown-argument error messages.
	Name string

	// Default is the value substituted when the parameter is omitted. Nil
	// means the parameter is mandatory.
	Default *value.Value

	// Async marks that an async argument at this position (a
	// value.KindCallable or value.KindIterator Value) forces the whole call
	// to be treated as async, per the async-propagation rule in
	// IsAsyncCall's doc comment. Meaningless (and rejected at registration) on
	// a Descriptor that is not itself Async.
	Async bool
}

// Wrapper is the uniform call shape every registered function or method is
// normalized to, per spec.md §3: a receiver (the zero value.Value for
// global functions), the continuation to resume on if the call suspends (nil
// for a first invocation), source/offset for error locations, and the
// shaped positional argument vector.
//
// Unlike spec.md's literal "-> Value" signature, Wrapper also returns an
// error: every other runtime entry point in this corpus (value, iterator)
// threads errors back explicitly rather than overloading the return value,
// and Call's own argument-shaping failures (missing/unknown argument,
// arity mismatch) are themselves *rterrors.RuntimeError values, so Wrapper
// follows the same convention its callers already expect.
type Wrapper func(receiver value.Value, k *cont.Continuation, source string, offset int, args []value.Value) (value.Value, error)

// Descriptor is a fully-registered function or method: the reflected shape
// derived from its Go implementation at registration time, plus the
// normalized Wrapper used to invoke it. See spec.md §3 ("FunctionDescriptor").
type Descriptor struct {
	// Name is the function or method's primary registered name.
	Name string

	// Aliases are additional names that resolve to the same Descriptor.
	Aliases []string

	// ReceiverType is the Go type of the receiver this method is registered
	// against, or nil for a global function.
	ReceiverType reflect.Type

	// ReturnType is the Go type of the implementation's declared dynamic
	// return value.
	ReturnType reflect.Type

	// Params is the ordered list of declared dynamic parameters.
	Params []Param

	// Mandatory is the count of leading Params with no Default.
	Mandatory int

	// Variadic is true if the implementation accepts a trailing []value.Value
	// collecting any number of extra positional arguments beyond Params.
	Variadic bool

	// NeedsLocation is true if the implementation's Go signature declared a
	// (source string, offset int) pair immediately following the
	// continuation slot, so the Wrapper injects the call's source/offset
	// into the positional arg vector handed to the implementation.
	NeedsLocation bool

	// Async is true if the implementation's Go signature declared a
	// *cont.Continuation parameter, meaning it may suspend.
	Async bool

	// AsyncArgs holds the indices (0 = receiver, 1..n = Params in order) of
	// arguments whose own async-ness forces this call to be treated as
	// async. An empty AsyncArgs on an Async Descriptor means "always async
	// regardless of which arguments are themselves async" (spec.md §4.4).
	AsyncArgs []int

	wrap Wrapper
}

// HasReceiver reports whether d is a method (true) or a global function
// (false).
func (d *Descriptor) HasReceiver() bool { return d.ReceiverType != nil }

// Max returns the maximum number of positional arguments a non-variadic
// Descriptor accepts; for a Variadic Descriptor the call accepts any count
// >= Mandatory.
func (d *Descriptor) Max() int { return len(d.Params) }

// asyncArgSet lazily builds a membership set over AsyncArgs for
// IsAsyncCall's propagation check.
func (d *Descriptor) asyncArgSet() map[int]bool {
	if len(d.AsyncArgs) == 0 {
		return nil
	}
	set := make(map[int]bool, len(d.AsyncArgs))
	for _, i := range d.AsyncArgs {
		set[i] = true
	}
	return set
}
