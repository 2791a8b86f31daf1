package cont

// Await is the building block hand-written (non-codegen) async-transparent
// functions in this runtime use to call a possibly-suspending operation and
// continue with its result, without manually encoding an even/odd
// code-location tag and saved-locals array the way compiled script bodies
// must (see the protocol's state-machine discipline in cont.go's package
// doc). Because Go already gives every caller a real closure and call
// stack, the resume handle built here simply closes over whatever the
// caller needs; Location, Primitive and Object are left at their zero
// values — this realization of the protocol has no use for them outside
// generated code.
//
// Await runs fn. If fn returns without suspending, Await calls next with
// fn's result and returns next's result directly. If fn suspends, Await
// chains a frame whose Resume handle calls next with the eventual result,
// and panics with the resulting Continuation; a later [Continue] call
// re-enters exactly at that point by invoking the chained closure, never by
// calling fn or Await again.
//
// next may itself suspend (by calling Await again, or Suspend directly);
// that suspension propagates through Continue's own recover-and-Splice
// handling unchanged, so chains of Await calls compose without the caller
// doing anything special.
func Await(fn func() any, next func(result any) any) any {
	result, susp, suspended := Catch(fn)
	if suspended {
		panic(Chain(susp, &Frame{
			Resume: func(k *Continuation) any {
				return next(k.Head.LastResult)
			},
		}))
	}
	return next(result)
}

// AwaitT is Await for callers that know fn's synchronous result type,
// saving a type assertion at every call site. T must match whatever fn
// and the eventual resumed result both produce.
func AwaitT[T any](fn func() any, next func(T) any) any {
	return Await(fn, func(result any) any { return next(result.(T)) })
}

// AwaitErr adapts Await for the common shape where fn and next operate in
// terms of (any, error) rather than a single any, since most runtime
// operations that can suspend can also fail synchronously.
func AwaitErr(fn func() (any, error), next func(result any, err error) any) any {
	return Await(
		func() any {
			v, err := fn()
			if err != nil {
				return err
			}
			return v
		},
		func(result any) any {
			if err, isErr := result.(error); isErr {
				return next(nil, err)
			}
			return next(result, nil)
		},
	)
}
