package loopbridge

import "time"

// options holds Loop construction configuration, matching
// eventloop/options.go's unexported-struct-plus-Option-interface idiom.
type options struct {
	tickInterval time.Duration
	onOverload   func(error)
	queueBudget  int
}

// Option configures a Loop instance.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithTickInterval records a poll interval in the Loop's options (default
// 1ms). The loop does not read it: with no pending work it sleeps until it
// is woken, the next timer falls due, or it is stopped.
func WithTickInterval(d time.Duration) Option {
	return optionFunc(func(o *options) { o.tickInterval = d })
}

// WithOverloadCallback registers a callback invoked when a single tick's
// queue length exceeds the configured budget, matching eventloop.Loop's
// OnOverload hook.
func WithOverloadCallback(fn func(error)) Option {
	return optionFunc(func(o *options) { o.onOverload = fn })
}

// WithQueueBudget sets the per-tick task-count threshold that triggers
// the overload callback. Zero (the default) disables the check.
func WithQueueBudget(n int) Option {
	return optionFunc(func(o *options) { o.queueBudget = n })
}

func resolve(opts []Option) *options {
	cfg := &options{tickInterval: time.Millisecond}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	return cfg
}
