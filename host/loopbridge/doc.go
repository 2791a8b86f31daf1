// Package loopbridge provides Loop, a production-grade default
// implementation of host.Host.
//
// Loop is adapted from the teacher's "Maximum Performance" event loop
// (eventloop.Loop): a lock-free FastState state machine drives the
// run/sleep/terminate transitions, a mutex-guarded chunked task queue
// (ChunkedIngress) accepts external submissions with better cache
// locality than per-task allocation, a microtask ring drains same-tick
// follow-up work before the next external batch, and a container/heap
// timer heap backs ScheduleEventAfter. None of the teacher's I/O-poller,
// wake-pipe, or Promise/A+ machinery is reused: those exist to give a
// JS-flavored runtime epoll-driven socket/timer multiplexing and
// thenable chaining, neither of which host.Host's four-method contract
// needs, so carrying them over would be unwired weight. What is adapted
// is the concurrency *shape* — one goroutine owns the tick loop, every
// other goroutine only ever enqueues — repurposed so that
// ScheduleEvent/ScheduleEventAfter/ScheduleBlocking/CurrentThreadToken
// satisfy host.Host instead of exposing a Promise API.
package loopbridge
