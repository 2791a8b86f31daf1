package rtstate

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru"
)

// defaultPatternCacheSize matches the common case of a script cycling
// through a modest, repeated set of regex literals inside a hot loop.
const defaultPatternCacheSize = 128

// patternKey identifies a compiled pattern by its source text and flags,
// per spec.md §4.5 ("keyed by (pattern, flags)").
type patternKey struct {
	pattern string
	flags   string
}

// patternCache is a per-thread LRU of compiled *regexp.Regexp, grounded on
// the teacher's eventloop/registry.go registry struct: that type is also a
// dense table looked up by a small key and built to evict under pressure,
// here via github.com/hashicorp/golang-lru's recency list instead of
// weak-pointer scavenging, since a *regexp.Regexp has no natural "this
// holder went away" signal to scavenge on.
type patternCache struct {
	cache *lru.Cache
}

func newPatternCache(size int) *patternCache {
	if size <= 0 {
		size = defaultPatternCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		panic(fmt.Errorf("rtstate: failed to construct pattern cache: %w", err))
	}
	return &patternCache{cache: c}
}

func (p *patternCache) compile(pattern, flags string) (*regexp.Regexp, error) {
	key := patternKey{pattern: pattern, flags: flags}
	if v, ok := p.cache.Get(key); ok {
		return v.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(applyFlags(pattern, flags))
	if err != nil {
		return nil, err
	}
	p.cache.Add(key, re)
	return re, nil
}

// applyFlags renders pattern with flags as a Go regexp inline flag group
// (e.g. "i" -> "(?i)pattern"), the same encoding regexp.Compile itself
// expects; an empty flags string is a no-op.
func applyFlags(pattern, flags string) string {
	if flags == "" {
		return pattern
	}
	return "(?" + flags + ")" + pattern
}
