package loopbridge

import "sync/atomic"

// runState mirrors the teacher's FastState: a lock-free state machine
// driving the loop's run/sleep/terminate transitions via pure CAS, no
// mutex, matching eventloop.FastState's "no transition validation,
// trusts the caller" design.
type runState uint32

const (
	stateAwake runState = iota
	stateRunning
	stateSleeping
	stateTerminating
	stateTerminated
)

func (s runState) String() string {
	switch s {
	case stateAwake:
		return "awake"
	case stateRunning:
		return "running"
	case stateSleeping:
		return "sleeping"
	case stateTerminating:
		return "terminating"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// fastState is runState behind an atomic, matching eventloop.FastState's
// Load/Store/TryTransition trio.
type fastState struct {
	v atomic.Uint32
}

func newFastState() *fastState {
	s := &fastState{}
	s.v.Store(uint32(stateAwake))
	return s
}

func (s *fastState) Load() runState { return runState(s.v.Load()) }

func (s *fastState) Store(v runState) { s.v.Store(uint32(v)) }

func (s *fastState) TryTransition(from, to runState) bool {
	return s.v.CompareAndSwap(uint32(from), uint32(to))
}

func (s *fastState) IsTerminal() bool { return s.Load() == stateTerminated }
