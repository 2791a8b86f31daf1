package script

import (
	"reflect"
	"sync"

	"github.com/scriptrt/scriptrt/class"
	"github.com/scriptrt/scriptrt/host"
	"github.com/scriptrt/scriptrt/registry"
	"github.com/scriptrt/scriptrt/rtstate"
)

// Runtime is the embedding surface spec.md §6 names: the registry and
// class table a host application builds up during startup, plus the host
// bridge every script invocation is driven through. One Runtime is shared
// across every script run against it; [Runtime.Run] hands each invocation
// its own [rtstate.State].
type Runtime struct {
	Host     host.Host
	Registry *registry.Registry

	opts *options

	classesMu sync.RWMutex
	classes   map[string]*class.Descriptor

	// State is only meaningful on the per-invocation copy Run/RunSync
	// construct (see invocationView); on the shared Runtime returned by
	// NewRuntime it is always nil.
	State *rtstate.State
}

// NewRuntime constructs a Runtime bound to h, with an empty Registry ready
// for RegisterGlobalFunction/RegisterMethod calls.
func NewRuntime(h host.Host, opts ...Option) *Runtime {
	return &Runtime{
		Host:     h,
		Registry: registry.New(),
		opts:     resolve(opts),
		classes:  make(map[string]*class.Descriptor),
	}
}

// RegisterGlobalFunction reflects spec and adds it to rt's Registry under
// its Name and every Alias, per spec.md §6's `register-global-function`.
func (rt *Runtime) RegisterGlobalFunction(spec registry.Spec) (*registry.Descriptor, error) {
	return rt.Registry.RegisterGlobalFunction(spec)
}

// RegisterMethod reflects spec against receiverType and adds it to rt's
// Registry, per spec.md §6's `register-method`.
func (rt *Runtime) RegisterMethod(receiverType reflect.Type, spec registry.Spec) (*registry.Descriptor, error) {
	return rt.Registry.RegisterMethod(receiverType, spec)
}

// Deregister removes name from rt's Registry, per spec.md §6's
// `deregister`.
func (rt *Runtime) Deregister(name string) bool {
	return rt.Registry.Deregister(name)
}

// Seal freezes rt's Registry against further registration, so Lookup is
// safe to call concurrently once every script run begins.
func (rt *Runtime) Seal() {
	rt.Registry.Seal()
}

// Class looks up a previously-registered class.Descriptor by name.
func (rt *Runtime) Class(name string) (*class.Descriptor, bool) {
	rt.classesMu.RLock()
	defer rt.classesMu.RUnlock()
	d, ok := rt.classes[name]
	return d, ok
}

func (rt *Runtime) registerClass(d *class.Descriptor) {
	rt.classesMu.Lock()
	rt.classes[d.Name] = d
	rt.classesMu.Unlock()
}

// invocationView returns a shallow copy of rt carrying a freshly-built
// rtstate.State, for one script invocation to read via rt.State. Copying
// by value (rather than mutating the shared Runtime) is what lets many
// concurrent invocations share one Registry/class table safely while each
// gets its own thread-local state, matching spec.md §3's "RuntimeState...
// captured by value" framing extended from Continuation frames to the
// Runtime handle a CompiledScript is given.
func (rt *Runtime) invocationView(input rtstate.LineReader, output func(string)) *Runtime {
	view := *rt
	view.State = rtstate.New(input, output, rt.Host.CurrentThreadToken(), rt.opts.patternCacheSize)
	return &view
}
