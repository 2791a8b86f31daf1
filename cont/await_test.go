package cont_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/host"
)

// fakeHost is a minimal, deterministic host.Host test double: events queue
// up for explicit draining, and blocking work runs on a goroutine before
// rejoining the event queue, mirroring loopbridge's real affinity contract
// closely enough to exercise the suspension protocol end to end.
type fakeHost struct {
	mu    sync.Mutex
	queue []func()
}

func (h *fakeHost) CurrentThreadToken() host.Token { return nil }

func (h *fakeHost) ScheduleEvent(_ host.Token, fn func()) {
	h.mu.Lock()
	h.queue = append(h.queue, fn)
	h.mu.Unlock()
}

func (h *fakeHost) ScheduleEventAfter(token host.Token, fn func(), _ time.Duration) {
	h.ScheduleEvent(token, fn)
}

func (h *fakeHost) ScheduleBlocking(fn func()) {
	go fn()
}

// drainUntil pops and runs queued events until none remain, waiting briefly
// between checks for async work scheduled via ScheduleBlocking to land.
func (h *fakeHost) drainUntil(t *testing.T, done <-chan struct{}) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		select {
		case <-done:
			return
		default:
		}
		h.mu.Lock()
		if len(h.queue) == 0 {
			h.mu.Unlock()
			if time.Now().After(deadline) {
				t.Fatal("fakeHost.drainUntil: deadline exceeded waiting for completion")
			}
			time.Sleep(time.Millisecond)
			continue
		}
		fn := h.queue[0]
		h.queue = h.queue[1:]
		h.mu.Unlock()
		fn()
	}
}

func runToCompletion(t *testing.T, h *fakeHost, fn func() any) (any, error) {
	t.Helper()
	done := make(chan struct{})
	var result any
	var err error
	cont.Run(h, fn, func(r any, e error) {
		result, err = r, e
		close(done)
	})
	h.drainUntil(t, done)
	return result, err
}

func suspendingValue(h *fakeHost, v any) func() any {
	return func() any {
		var out any
		cont.SuspendNonBlocking(func(resume func(any, error)) {
			h.ScheduleEvent(nil, func() { resume(v, nil) })
		}, nil)
		return out
	}
}

func TestAwaitSynchronousPath(t *testing.T) {
	result := cont.Await(func() any { return 41 }, func(v any) any {
		return v.(int) + 1
	})
	assert.Equal(t, 42, result)
}

func TestAwaitSuspendingPath(t *testing.T) {
	h := &fakeHost{}
	result, err := runToCompletion(t, h, func() any {
		return cont.Await(suspendingValue(h, 10), func(v any) any {
			return v.(int) * 2
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 20, result)
}

func TestAwaitTTypeAsserts(t *testing.T) {
	result := cont.AwaitT[int](func() any { return 7 }, func(v int) any {
		return v * v
	})
	assert.Equal(t, 49, result)
}

func TestAwaitChainedSuspensions(t *testing.T) {
	h := &fakeHost{}
	result, err := runToCompletion(t, h, func() any {
		return cont.Await(suspendingValue(h, 1), func(a any) any {
			return cont.Await(suspendingValue(h, 2), func(b any) any {
				return a.(int) + b.(int)
			})
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result)
}

func TestAwaitErrPropagatesError(t *testing.T) {
	h := &fakeHost{}
	boom := errors.New("boom")
	result, err := runToCompletion(t, h, func() any {
		return cont.AwaitErr(func() (any, error) { return nil, boom }, func(v any, e error) any {
			if e != nil {
				return e
			}
			return v
		})
	})
	assert.Nil(t, result)
	assert.Same(t, boom, err)
}

func TestRunFaultPanicBecomesError(t *testing.T) {
	h := &fakeHost{}
	boom := errors.New("fault")
	result, err := runToCompletion(t, h, func() any {
		panic(boom)
	})
	assert.Nil(t, result)
	assert.Same(t, boom, err)
}

func TestRunNonErrorPanicCrashes(t *testing.T) {
	h := &fakeHost{}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, "not an error", r)
	}()
	_, _ = runToCompletion(t, h, func() any {
		panic("not an error")
	})
}
