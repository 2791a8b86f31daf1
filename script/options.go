package script

// options holds Runtime construction configuration, following
// eventloop/options.go's unexported-struct-plus-Option-interface idiom
// (see host/loopbridge/options.go for this corpus's other adaptation of
// the same pattern).
type options struct {
	patternCacheSize int
}

// Option configures a Runtime at construction time.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithPatternCacheSize sets the per-script rtstate regex pattern cache
// capacity every invocation's State is constructed with. Zero (the
// default) selects rtstate's own default size.
func WithPatternCacheSize(n int) Option {
	return optionFunc(func(o *options) { o.patternCacheSize = n })
}

func resolve(opts []Option) *options {
	cfg := &options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	return cfg
}
