package loopbridge_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptrt/scriptrt/host/loopbridge"
)

func TestLoop_ScheduleEvent_runsOnLoopGoroutine(t *testing.T) {
	l := loopbridge.New()
	require.NoError(t, l.Run())
	defer l.Shutdown()

	done := make(chan struct{})
	var ran atomic.Bool
	l.ScheduleEvent(l.CurrentThreadToken(), func() {
		ran.Store(true)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for scheduled event")
	}
	assert.True(t, ran.Load())
}

func TestLoop_ScheduleEvent_preservesSubmissionOrder(t *testing.T) {
	l := loopbridge.New()
	require.NoError(t, l.Run())
	defer l.Shutdown()

	const n = 500
	var mu sync.Mutex
	var order []int
	done := make(chan struct{})

	for i := 0; i < n; i++ {
		i := i
		l.ScheduleEvent(nil, func() {
			mu.Lock()
			order = append(order, i)
			complete := len(order) == n
			mu.Unlock()
			if complete {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for submission order test to complete")
	}
	require.Len(t, order, n)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestLoop_ScheduleEventAfter_respectsDelayOrdering(t *testing.T) {
	l := loopbridge.New()
	require.NoError(t, l.Run())
	defer l.Shutdown()

	var mu sync.Mutex
	var order []string
	var wg sync.WaitGroup
	wg.Add(2)

	l.ScheduleEventAfter(nil, func() {
		mu.Lock()
		order = append(order, "late")
		mu.Unlock()
		wg.Done()
	}, 40*time.Millisecond)

	l.ScheduleEventAfter(nil, func() {
		mu.Lock()
		order = append(order, "early")
		mu.Unlock()
		wg.Done()
	}, 5*time.Millisecond)

	waitTimeout(t, &wg, 2*time.Second)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"early", "late"}, order)
}

func TestLoop_ScheduleBlocking_runsOffLoopGoroutine(t *testing.T) {
	l := loopbridge.New()
	require.NoError(t, l.Run())
	defer l.Shutdown()

	loopGoroutine := make(chan struct{})
	l.ScheduleEvent(nil, func() { close(loopGoroutine) })
	<-loopGoroutine

	done := make(chan struct{})
	l.ScheduleBlocking(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for blocking task")
	}
}

func TestLoop_Run_rejectsDoubleStart(t *testing.T) {
	l := loopbridge.New()
	require.NoError(t, l.Run())
	defer l.Shutdown()

	err := l.Run()
	assert.ErrorIs(t, err, loopbridge.ErrAlreadyRunning)
}

func TestLoop_Run_rejectsAfterShutdown(t *testing.T) {
	l := loopbridge.New()
	require.NoError(t, l.Run())
	l.Shutdown()

	err := l.Run()
	assert.ErrorIs(t, err, loopbridge.ErrTerminated)
}

func TestLoop_Shutdown_isIdempotent(t *testing.T) {
	l := loopbridge.New()
	require.NoError(t, l.Run())
	l.Shutdown()
	l.Shutdown()
}

func TestLoop_WithOverloadCallback_firesOnBurst(t *testing.T) {
	var fired atomic.Bool
	l := loopbridge.New(
		loopbridge.WithQueueBudget(2),
		loopbridge.WithOverloadCallback(func(error) { fired.Store(true) }),
	)
	require.NoError(t, l.Run())
	defer l.Shutdown()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		l.ScheduleEvent(nil, func() { wg.Done() })
	}
	go func() { wg.Wait(); close(done) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for burst to drain")
	}
	assert.True(t, fired.Load())
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("timed out waiting for wait group")
	}
}
