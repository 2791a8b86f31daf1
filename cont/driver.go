package cont

import (
	"github.com/scriptrt/scriptrt/host"
	"github.com/scriptrt/scriptrt/rterrors"
)

// Completion is the callback invoked exactly once, on completion of a
// [Run] call, with either the script's final value or an error.
type Completion func(result any, err error)

// Run executes fn — a function whose body may call [Suspend] (directly or
// transitively) — to completion, dispatching any resulting suspension
// chain to h, and invoking done exactly once with the final result or
// error. Run never blocks the calling goroutine: if fn completes
// synchronously, done is invoked before Run returns; otherwise Run returns
// immediately and done fires later, from a Host callback.
//
// This is the script-boundary driver described by the continuation
// protocol: it is the outermost catch that extracts the head frame's
// AsyncTask and hands it to h. Unlike the inner [Catch] that compiled
// frames use (which only ever intercepts a *Continuation and re-panics
// anything else, so a genuine fault keeps unwinding toward whoever can
// handle it), Run is that final handler: runtime faults throughout this
// package and its callers are raised as ordinary panics of an error value
// — the same exception-based unwinding the suspension protocol itself is
// built on, per spec.md's framing — and Run's boundaryCatch converts
// exactly those into a done(nil, err) call. A panic of anything else (a
// genuine implementation bug, not a runtime fault) is left to crash
// loudly rather than be reported as a script error.
func Run(h host.Host, fn func() any, done Completion) {
	result, susp, suspended, err := boundaryCatch(fn)
	if err != nil {
		done(nil, err)
		return
	}
	if suspended {
		dispatch(h, susp, done)
		return
	}
	if e, isErr := result.(error); isErr {
		done(nil, e)
		return
	}
	done(result, nil)
}

// boundaryCatch is Run/resumeChain's outermost recover: it distinguishes a
// suspending Continuation, a runtime fault (any error panic), and a
// genuine bug (anything else, re-panicked).
func boundaryCatch(fn func() any) (result any, susp Suspension, suspended bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if k, isCont := r.(*Continuation); isCont {
				susp = k
				suspended = true
				return
			}
			if e, isErr := r.(error); isErr {
				err = e
				return
			}
			panic(r)
		}
	}()
	result = fn()
	return
}

// RunSync is the blocking variant of Run: it drives fn to completion on the
// calling goroutine, returning only once the result is available. Callers
// on an event-loop thread must not call RunSync if the script can suspend:
// doing so would block that event-loop thread waiting on itself.
func RunSync(h host.Host, fn func() any) (any, error) {
	type outcome struct {
		result any
		err    error
	}
	ch := make(chan outcome, 1)
	Run(h, fn, func(result any, err error) {
		ch <- outcome{result, err}
	})
	o := <-ch
	return o.result, o.err
}

// dispatch hands the head frame's async task to h, and arranges for
// Continue to be called with its eventual result.
func dispatch(h host.Host, k *Continuation, done Completion) {
	head := k.Head
	task := head.Task
	if task == nil {
		done(nil, rterrors.NewStackInternal("cont: suspended continuation has no async task on its head frame", "", 0))
		return
	}

	switch t := task.(type) {
	case *BlockingAsyncTask:
		affinity, _ := t.Affinity.(host.Token)
		h.ScheduleBlocking(func() {
			result, err := t.Work()
			h.ScheduleEvent(affinity, func() {
				resumeChain(h, k, result, err, done)
			})
		})

	case *NonBlockingAsyncTask:
		h.ScheduleEvent(nil, func() {
			t.Initiator(func(result any, err error) {
				resumeChain(h, k, result, err, done)
			})
		})

	default:
		done(nil, rterrors.NewStackInternal("cont: unrecognized async task type", "", 0))
	}
}

// resumeChain calls Continue with the task's outcome and either finishes
// the Run call (done) or re-dispatches a freshly suspended continuation.
func resumeChain(h host.Host, k *Continuation, result any, err error, done Completion) {
	if err != nil {
		result = err
	}
	final, susp, suspended, boundaryErr := boundaryCatch(func() any { return Continue(k, result) })
	if boundaryErr != nil {
		done(nil, boundaryErr)
		return
	}
	if suspended {
		dispatch(h, susp, done)
		return
	}
	if e, isErr := final.(error); isErr {
		done(nil, e)
		return
	}
	done(final, nil)
}

// Continue resumes a suspended Continuation with result, the value
// produced by the head frame's async task. It walks the chain from head to
// tail, invoking each frame's resume handle in turn and feeding its return
// value to the next frame as LastResult. Continue does not restore any
// thread-local runtime state: each frame's State is carried along the
// chain as an opaque value and is left as it is.
//
// If any frame's resume handle itself suspends, Continue splices the
// remaining, not-yet-resumed tail of the original chain onto the new
// continuation's parent chain (via [Splice]) and re-panics, so that a later
// Continue call picks up exactly where this one left off.
func Continue(k *Continuation, result any) any {
	frame := k.Head
	for frame != nil {
		frame.LastResult = result
		remainingParent := frame.Parent

		next, susp, suspended := Catch(func() any { return frame.Resume(&Continuation{Head: frame}) })
		if suspended {
			panic(Splice(susp, remainingParent))
		}
		result = next
		frame = remainingParent
	}
	return result
}
