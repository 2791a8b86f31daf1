package registry

import "github.com/scriptrt/scriptrt/value"

// ParamSpec is the caller-supplied metadata for one declared dynamic
// parameter that Go's own reflection cannot recover: its script-visible
// name, default value, and whether it participates in async propagation.
// See Param, which Spec.Params is reflected into at registration time.
type ParamSpec struct {
	Name    string
	Default *value.Value
	Async   bool
}

// Spec is what a caller supplies to register a function or method: the Go
// implementation, plus the metadata describing its declared dynamic
// parameters. The implementation's Go signature must be:
//
//	func([Receiver,] [*cont.Continuation,] [string, int,] value.Value...) (value.Value, error)
//
// with the bracketed prefixes optional and detected by reflection, in that
// order (see RegisterGlobalFunction and RegisterMethod): a *cont.Continuation
// parameter marks the function Async; a following (string, int) pair marks
// NeedsLocation; the implementation may end with a variadic ...value.Value
// to mark Variadic. Every fixed, non-prefix parameter must be value.Value;
// Spec.Params must have exactly one entry per fixed parameter, in order.
type Spec struct {
	// Name is the function or method's primary registered name.
	Name string

	// Aliases are additional names that resolve to the same Descriptor.
	Aliases []string

	// Params describes each fixed declared dynamic parameter of Impl, in
	// order; its length must match Impl's fixed value.Value parameter count.
	Params []ParamSpec

	// Impl is the Go implementation, matching the signature shape documented
	// above.
	Impl any
}
