// Package host defines the narrow interface the cooperative-suspension
// runtime (package cont) requires from its embedding application: a way to
// identify the current event-loop thread, schedule work on one, schedule
// delayed work, and schedule blocking work on a worker thread distinct from
// the event-loop pool. See [Host].
//
// The package also ships a production-grade default implementation,
// [loopbridge.Loop], adapted from a high-throughput Go event-loop
// implementation.
package host

import "time"

// Token identifies a specific event-loop thread, as returned by
// [Host.CurrentThreadToken]. Its zero value, nil, means "no thread
// affinity is available"; schedulers must degrade gracefully to "any
// thread" in that case.
type Token any

// Host is the minimal interface the continuation protocol's driver needs
// from its embedding event-loop application. It mirrors the external Host
// interface named by the specification: thread identity, event-loop
// scheduling (immediate and delayed), and a distinct blocking-worker pool.
//
// Implementations must guarantee: ScheduleEvent and ScheduleEventAfter run
// fn on an event-loop thread, never the calling goroutine synchronously;
// ScheduleBlocking runs fn on a worker thread distinct from the event-loop
// pool; and any resumption callback a caller invokes as a consequence of
// ScheduleBlocking or the completion of work registered via ScheduleEvent
// always happens by re-entering through ScheduleEvent, so that resumption
// is always on an event-loop thread.
type Host interface {
	// CurrentThreadToken identifies the calling event-loop thread, or
	// returns nil if the host has no notion of thread affinity.
	CurrentThreadToken() Token

	// ScheduleEvent enqueues fn to run on an event-loop thread. If token is
	// non-nil, the host should prefer the thread it identifies, but may run
	// fn elsewhere if that thread is unavailable (thread affinity is
	// best-effort, never guaranteed).
	ScheduleEvent(token Token, fn func())

	// ScheduleEventAfter is ScheduleEvent with a minimum delay.
	ScheduleEventAfter(token Token, fn func(), delay time.Duration)

	// ScheduleBlocking enqueues fn to run on a worker thread distinct from
	// the event-loop pool, for work that may block (synchronous I/O, CPU-
	// bound work the script must wait on).
	ScheduleBlocking(fn func())
}

// CheckpointHost is implemented by hosts that support persisting and
// discarding checkpoints of a suspended script. It is optional: the core
// runtime works without it, and the checkpoint *encoding* itself is an
// external collaborator (see package checkpoint) — this interface only
// describes how the runtime asks the host to persist or discard bytes it
// has already produced.
type CheckpointHost interface {
	// SaveCheckpoint asks the host to durably persist bytes for
	// (scriptID, checkpointID), then invoke resume with the eventual
	// result (or a RuntimeError value) once the enclosing call may
	// proceed.
	SaveCheckpoint(scriptID, checkpointID string, bytes []byte, source string, offset int, result any, resume func(any, error))

	// DeleteCheckpoint is a best-effort request to discard all checkpoints
	// up to and including lastCheckpointID for scriptID.
	DeleteCheckpoint(scriptID, lastCheckpointID string)
}
