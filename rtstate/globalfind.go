package rtstate

// lastMatch is the "last regex state" spec.md §4.5 describes: the most
// recent pattern, input string, and match end a thread's `=~` operator
// produced, so a following `=~` against the *same* pattern and input can
// continue from where the last one left off (global-find semantics)
// instead of restarting from offset zero.
type lastMatch struct {
	pattern string
	input   string
	end     int
}

// GlobalFind implements the `=~` operator's stateful matching rule from
// spec.md §4.5/§4.6: compile pattern (via the per-thread pattern cache),
// then search input starting from the end of the previous match if pattern
// and input are unchanged from the last call, or from the start otherwise.
// Any change to pattern or input resets to a fresh match.
//
// match holds the full match followed by each capture group (empty string
// for an unmatched optional group); ok is false if nothing matched, which
// also clears the continuation state so the next call starts fresh.
func (s *State) GlobalFind(pattern, flags, input string) (match []string, ok bool, err error) {
	re, err := s.patterns.compile(pattern, flags)
	if err != nil {
		s.last = nil
		return nil, false, err
	}

	start := 0
	if s.last != nil && s.last.pattern == pattern && s.last.input == input {
		start = s.last.end
	}
	if start > len(input) {
		s.last = nil
		return nil, false, nil
	}

	loc := re.FindStringSubmatchIndex(input[start:])
	if loc == nil {
		s.last = nil
		return nil, false, nil
	}

	groups := make([]string, len(loc)/2)
	for i := range groups {
		a, b := loc[2*i], loc[2*i+1]
		if a < 0 {
			continue
		}
		groups[i] = input[start+a : start+b]
	}

	end := start + loc[1]
	if loc[1] == loc[0] {
		// zero-width match: advance by one so the next call makes progress
		// instead of matching the same empty span forever.
		end++
	}
	s.last = &lastMatch{pattern: pattern, input: input, end: end}
	return groups, true, nil
}

// ResetMatch clears any in-progress global-find state, forcing the next
// GlobalFind call to start from the beginning of its input regardless of
// whether pattern and input happen to match the previous call's.
func (s *State) ResetMatch() { s.last = nil }
