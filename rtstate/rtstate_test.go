package rtstate_test

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/host"
	"github.com/scriptrt/scriptrt/rtstate"
)

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
func (h *fakeHost) ScheduleBlocking(fn func()) { go fn() }

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
				t.Fatal("fakeHost.drainUntil: deadline exceeded")
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

func TestState_NextLine_readyImmediately(t *testing.T) {
	s := rtstate.New(rtstate.NewLineReader(strings.NewReader("one\ntwo\n")), nil, nil, 0)

	h := &fakeHost{}
	done := make(chan struct{})
	var got string
	cont.Run(h, func() any {
		return s.NextLine(func(line string, err error) any {
			got = line
			return nil
		})
	}, func(result any, err error) {
		require.NoError(t, err)
		close(done)
	})
	h.drainUntil(t, done)
	assert.Equal(t, "one", got)
}

func TestState_NextLine_suspendsWhenNotReady(t *testing.T) {
	pr, pw := io.Pipe()
	s := rtstate.New(rtstate.NewLineReader(pr), nil, nil, 0)

	h := &fakeHost{}
	done := make(chan struct{})
	var got string
	cont.Run(h, func() any {
		return s.NextLine(func(line string, err error) any {
			got = line
			return nil
		})
	}, func(result any, err error) {
		require.NoError(t, err)
		close(done)
	})

	go func() {
		time.Sleep(10 * time.Millisecond)
		_, _ = pw.Write([]byte("hello\n"))
	}()

	h.drainUntil(t, done)
	assert.Equal(t, "hello", got)
}

func TestState_GlobalFind_continuesAcrossCalls(t *testing.T) {
	s := rtstate.New(nil, nil, nil, 0)

	input := "a1 b2 c3"
	m1, ok, err := s.GlobalFind(`[a-z](\d)`, "", input)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a1", "1"}, m1)

	m2, ok, err := s.GlobalFind(`[a-z](\d)`, "", input)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"b2", "2"}, m2)

	m3, ok, err := s.GlobalFind(`[a-z](\d)`, "", input)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"c3", "3"}, m3)

	_, ok, err = s.GlobalFind(`[a-z](\d)`, "", input)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestState_GlobalFind_resetsOnInputChange(t *testing.T) {
	s := rtstate.New(nil, nil, nil, 0)

	_, ok, err := s.GlobalFind(`\d+`, "", "12 34")
	require.NoError(t, err)
	require.True(t, ok)

	m, ok, err := s.GlobalFind(`\d+`, "", "56 78")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"56"}, m)
}

func TestState_GlobalFind_resetsExplicitly(t *testing.T) {
	s := rtstate.New(nil, nil, nil, 0)

	_, ok, err := s.GlobalFind(`\d+`, "", "12 34")
	require.NoError(t, err)
	require.True(t, ok)

	s.ResetMatch()

	m, ok, err := s.GlobalFind(`\d+`, "", "12 34")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"12"}, m)
}

func TestState_GlobalFind_cachesCompiledPattern(t *testing.T) {
	s := rtstate.New(nil, nil, nil, 2)

	for i := 0; i < 5; i++ {
		_, _, err := s.GlobalFind(`\d+`, "", "42")
		require.NoError(t, err)
	}
}
