package script

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/rtstate"
	"github.com/scriptrt/scriptrt/value"
)

// CompiledScript is the narrow interface the (out-of-scope) code generator
// is expected to satisfy, per spec.md §6 and SPEC_FULL.md §6: a single
// entry point taking the invocation-scoped Runtime, the continuation to
// resume on (nil for a fresh invocation), and the script's global bindings.
//
// Invoke may suspend by panicking with a *cont.Continuation (via
// cont.Suspend/SuspendBlocking/SuspendNonBlocking, directly or
// transitively through registry.Call); [Runtime.Run]/[Runtime.RunSync]
// catch that the same way they catch any other compiled frame's
// suspension.
type CompiledScript interface {
	Invoke(rt *Runtime, k *cont.Continuation, globals map[string]value.Value) (value.Value, error)
}

// Run executes compiled against globals, driving it through cont.Run with
// rt's Host. It is non-blocking: if compiled completes synchronously,
// done is invoked before Run returns; otherwise Run returns immediately
// and done fires later from a Host callback. See spec.md §6's `run`.
func (rt *Runtime) Run(compiled CompiledScript, globals map[string]value.Value, input rtstate.LineReader, output func(string), done func(value.Value, error)) {
	view := rt.invocationView(input, output)
	cont.Run(rt.Host, func() any {
		v, err := compiled.Invoke(view, nil, globals)
		if err != nil {
			return err
		}
		return v
	}, func(result any, err error) {
		if err != nil {
			done(value.Null, err)
			return
		}
		v, _ := result.(value.Value)
		done(v, nil)
	})
}

// RunSync is the blocking variant of Run: it drives compiled to completion
// on the calling goroutine, per spec.md §6's `run-sync`. Callers on an
// event-loop thread must not use RunSync if compiled can suspend — doing
// so would block that event-loop thread waiting on itself, exactly as
// cont.RunSync's doc comment warns.
func (rt *Runtime) RunSync(compiled CompiledScript, globals map[string]value.Value, input rtstate.LineReader, output func(string)) (value.Value, error) {
	view := rt.invocationView(input, output)
	result, err := cont.RunSync(rt.Host, func() any {
		v, ierr := compiled.Invoke(view, nil, globals)
		if ierr != nil {
			return ierr
		}
		return v
	})
	if err != nil {
		return value.Null, err
	}
	v, _ := result.(value.Value)
	return v, nil
}
