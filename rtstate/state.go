package rtstate

import (
	"github.com/scriptrt/scriptrt/cont"
	"github.com/scriptrt/scriptrt/host"
)

// State is the thread-local runtime state a single script thread carries,
// per spec.md §4.6: its current input/output streams, the host's thread-
// affinity token, a private regex pattern cache, and the "last match"
// state backing `=~`'s global-find semantics.
//
// A State value is cheap to copy (it holds only pointers and a
// host.Token), matching spec.md's "captured by value when a Continuation
// is constructed" requirement.
type State struct {
	Input    LineReader
	Output   func(string)
	Affinity host.Token

	patterns *patternCache
	last     *lastMatch
}

// New constructs a State with a fresh, private pattern cache. cacheSize is
// the pattern cache's capacity; zero selects defaultPatternCacheSize.
func New(input LineReader, output func(string), affinity host.Token, cacheSize int) *State {
	return &State{
		Input:    input,
		Output:   output,
		Affinity: affinity,
		patterns: newPatternCache(cacheSize),
	}
}

// Snapshot returns a shallow copy of s suitable for capturing into a
// cont.Frame on suspension: it shares the pattern cache and last-match
// state (both are per-thread, not per-suspension), but is otherwise an
// independent value, matching spec.md §4.6's "deep-referenced into the new
// head frame" wording — the frame gets its own State value, not a pointer
// alias to the one the caller keeps mutating.
func (s *State) Snapshot() State { return *s }

// NextLine reads the next line from s.Input. If one is already buffered it
// calls next synchronously; otherwise it suspends via cont.SuspendBlocking
// and calls next once the host's blocking worker produces a line, per
// spec.md §4.6. This follows the continuation-parameter pattern: next
// receives the eventual (line, err) regardless of whether NextLine
// suspended to get it.
func (s *State) NextLine(next func(line string, err error) any) any {
	return cont.AwaitErr(
		func() (any, error) {
			if line, ready, err := s.Input.TryReadLine(); ready {
				return line, err
			}
			cont.SuspendBlocking(func() (any, error) {
				return s.Input.ReadLine()
			}, s.Affinity, s.Snapshot())
			panic("rtstate: unreachable: SuspendBlocking always panics")
		},
		func(result any, err error) any {
			line, _ := result.(string)
			return next(line, err)
		},
	)
}
