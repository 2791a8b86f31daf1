package loopbridge

import (
	"container/heap"
	"sync"
	"sync/atomic"
	"time"

	"github.com/scriptrt/scriptrt/host"
)

var loopIDCounter atomic.Uint64

// threadToken identifies a Loop's single tick goroutine. Since a Loop
// never runs two tasks concurrently (single-flight, cooperative, exactly
// like eventloop.Loop's state machine), a Loop's own identity is already
// a sufficient "thread" token for host.Host.CurrentThreadToken: scheduling
// with this token back onto the same Loop is the best affinity guarantee
// either implementation can offer.
type threadToken struct{ loopID uint64 }

// Loop is the default host.Host implementation: a single goroutine drains
// an external task queue and a timer heap, dispatching onto itself in
// strict submission order, matching eventloop.Loop's single-flight tick
// discipline (see doc.go).
type Loop struct {
	id    uint64
	state *fastState
	opts  *options

	external chunkedIngress

	timersMu sync.Mutex
	timers   timerHeap

	microMu sync.Mutex
	micro   []func()

	wakeCh chan struct{}
	stopCh chan struct{}

	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New constructs a Loop. The returned Loop does not start processing
// tasks until Run is called.
func New(opts ...Option) *Loop {
	return &Loop{
		id:     loopIDCounter.Add(1),
		state:  newFastState(),
		opts:   resolve(opts),
		wakeCh: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
	}
}

// Run starts the tick goroutine. It returns ErrAlreadyRunning or
// ErrTerminated if the Loop cannot transition out of stateAwake.
func (l *Loop) Run() error {
	if !l.state.TryTransition(stateAwake, stateRunning) {
		switch l.state.Load() {
		case stateTerminated, stateTerminating:
			return ErrTerminated
		default:
			return ErrAlreadyRunning
		}
	}
	l.wg.Add(1)
	go l.run()
	return nil
}

// Shutdown requests termination and blocks until the tick goroutine has
// exited. It is safe to call more than once.
func (l *Loop) Shutdown() {
	l.stopOnce.Do(func() {
		for {
			cur := l.state.Load()
			if cur == stateTerminated {
				return
			}
			if l.state.TryTransition(cur, stateTerminating) {
				break
			}
		}
		close(l.stopCh)
	})
	l.wg.Wait()
}

// CurrentThreadToken implements host.Host.
func (l *Loop) CurrentThreadToken() host.Token {
	return threadToken{l.id}
}

// ScheduleEvent implements host.Host. token is accepted for interface
// conformance but otherwise unused: a Loop has exactly one event-loop
// goroutine, so every submission already lands on "the" thread the token
// would have named.
func (l *Loop) ScheduleEvent(_ host.Token, fn func()) {
	l.external.push(fn)
	l.wake()
}

// ScheduleEventAfter implements host.Host.
func (l *Loop) ScheduleEventAfter(token host.Token, fn func(), delay time.Duration) {
	l.timersMu.Lock()
	heap.Push(&l.timers, &scheduledEvent{when: time.Now().Add(delay), token: token, fn: fn})
	l.timersMu.Unlock()
	l.wake()
}

// ScheduleBlocking implements host.Host: it runs fn on a fresh goroutine,
// distinct from the loop's own tick goroutine, per the Host contract.
func (l *Loop) ScheduleBlocking(fn func()) {
	go fn()
}

// ScheduleMicrotask queues fn to run before the tick loop pulls its next
// external batch, the same same-tick-follow-up-work role eventloop's
// MicrotaskRing plays, for callers that need finer-grained-than-a-full-tick
// ordering. Nothing else in this module calls it.
func (l *Loop) ScheduleMicrotask(fn func()) {
	l.microMu.Lock()
	l.micro = append(l.micro, fn)
	l.microMu.Unlock()
	l.wake()
}

func (l *Loop) wake() {
	select {
	case l.wakeCh <- struct{}{}:
	default:
	}
}

func (l *Loop) run() {
	defer l.wg.Done()
	var batch []func()
	for {
		if l.state.Load() == stateTerminating {
			l.state.Store(stateTerminated)
			return
		}

		batch = l.external.drainInto(batch[:0])
		now := time.Now()
		l.timersMu.Lock()
		due := popDue(&l.timers, now)
		l.timersMu.Unlock()
		for _, d := range due {
			batch = append(batch, d.fn)
		}

		if l.opts.queueBudget > 0 && len(batch) > l.opts.queueBudget && l.opts.onOverload != nil {
			l.opts.onOverload(ErrTerminated) // placeholder cause; overload is advisory only
		}

		for _, fn := range batch {
			fn()
			l.drainMicrotasks()
		}

		if len(batch) == 0 {
			l.sleep()
		}
	}
}

func (l *Loop) drainMicrotasks() {
	for {
		l.microMu.Lock()
		if len(l.micro) == 0 {
			l.microMu.Unlock()
			return
		}
		fn := l.micro[0]
		l.micro = l.micro[1:]
		l.microMu.Unlock()
		fn()
	}
}

func (l *Loop) sleep() {
	if !l.state.TryTransition(stateRunning, stateSleeping) {
		return
	}
	defer l.state.TryTransition(stateSleeping, stateRunning)

	l.timersMu.Lock()
	deadline, hasDeadline := nextDeadline(&l.timers)
	l.timersMu.Unlock()

	if !hasDeadline {
		select {
		case <-l.wakeCh:
		case <-l.stopCh:
		}
		return
	}

	d := time.Until(deadline)
	if d < 0 {
		d = 0
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-l.wakeCh:
	case <-timer.C:
	case <-l.stopCh:
	}
}
