package script_test

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptrt/scriptrt/class"
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/host"
	"github.com/scriptrt/scriptrt/registry"
	"github.com/scriptrt/scriptrt/rtstate"
	"github.com/scriptrt/scriptrt/script"
	"github.com/scriptrt/scriptrt/value"
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

type echoScript struct{}

func (echoScript) Invoke(rt *script.Runtime, k *cont.Continuation, globals map[string]value.Value) (value.Value, error) {
	return globals["x"], nil
}

func TestRuntime_RunSync_returnsInvokeResult(t *testing.T) {
	rt := script.NewRuntime(&fakeHost{})
	result, err := rt.RunSync(echoScript{}, map[string]value.Value{"x": value.Int64(42)}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.AsInt64())
}

type suspendingScript struct{}

func (s *suspendingScript) Invoke(rt *script.Runtime, k *cont.Continuation, globals map[string]value.Value) (value.Value, error) {
	return rt.State.NextLine(func(line string, err error) any {
		if err != nil {
			return value.Null
		}
		return value.Str(line)
	}).(value.Value), nil
}

func TestRuntime_Run_suspendsAndResumesThroughHost(t *testing.T) {
	h := &fakeHost{}
	rt := script.NewRuntime(h)

	pr, pw := io.Pipe()
	defer pw.Close()

	done := make(chan struct{})
	var got value.Value
	rt.Run(&suspendingScript{}, nil, rtstate.NewLineReader(pr), nil, func(v value.Value, err error) {
		require.NoError(t, err)
		got = v
		close(done)
	})

	go func() {
		time.Sleep(10 * time.Millisecond)
		_, _ = pw.Write([]byte("hello\n"))
	}()

	h.drainUntil(t, done)
	assert.Equal(t, "hello", got.AsString())
}

func TestRuntime_RegisterAndDeregisterGlobalFunction(t *testing.T) {
	rt := script.NewRuntime(&fakeHost{})

	d, err := rt.RegisterGlobalFunction(registry.Spec{
		Name: "double",
		Params: []registry.ParamSpec{
			{Name: "n"},
		},
		Impl: func(n value.Value) (value.Value, error) {
			return value.Int64(n.AsInt64() * 2), nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "double", d.Name)

	got, ok := rt.Registry.Lookup("double")
	require.True(t, ok)
	assert.Same(t, d, got)

	assert.True(t, rt.Deregister("double"))
	_, ok = rt.Registry.Lookup("double")
	assert.False(t, ok)
}

func TestRuntime_CreateClass_buildsBaseChainAndMethods(t *testing.T) {
	rt := script.NewRuntime(&fakeHost{})

	base, err := rt.CreateClass("Base").
		Field(class.FieldDescriptor{Name: "x", Type: value.KindInt64, Mandatory: true}).
		Register()
	require.NoError(t, err)

	sub, err := rt.CreateClass("Sub").
		Base("Base").
		Field(class.FieldDescriptor{Name: "y", Type: value.KindInt64}).
		Method(registry.Spec{
			Name: "sum",
			Impl: func(recv *class.Instance) (value.Value, error) {
				x, _ := recv.GetField("x")
				y, _ := recv.GetField("y")
				return value.Int64(x.AsInt64() + y.AsInt64()), nil
			},
		}).
		Register()
	require.NoError(t, err)

	assert.Same(t, base, sub.BaseClass)

	_, owner, ok := sub.LookupField("x")
	require.True(t, ok)
	assert.Same(t, base, owner)

	inst, err := class.NewInstance(sub, map[string]value.Value{"x": value.Int64(3), "y": value.Int64(4)})
	require.NoError(t, err)

	m, _, ok := sub.LookupMethod("sum")
	require.True(t, ok)

	result, err := registry.Call(m, value.FromInstance(inst), nil, "", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.AsInt64())
}

func TestRuntime_CreateClass_rejectsUnknownBase(t *testing.T) {
	rt := script.NewRuntime(&fakeHost{})
	_, err := rt.CreateClass("Sub").Base("Nonexistent").Register()
	assert.Error(t, err)
}
