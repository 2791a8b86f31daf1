package value

// Map is the ordered-key-map Value variant: string-keyed, insertion-order
// preserving, matching spec.md's "ordered-key map of string→Value".
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap constructs an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order; callers must not mutate the
// returned slice.
func (m *Map) Keys() []string { return m.keys }

// Get returns the value for key, and whether it was present.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores v for key, appending key to the insertion order if it is new.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key, if present.
func (m *Map) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Copy returns a shallow copy preserving insertion order.
func (m *Map) Copy() *Map {
	out := &Map{keys: make([]string, len(m.keys)), values: make(map[string]Value, len(m.values))}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// MergeCopy returns a new map holding m's entries overlaid with other's;
// on key collision, other wins, per the '+' operator contract for
// map+map in spec.md §4.5. Key order is m's order, with other's new keys
// appended in other's order.
func (m *Map) MergeCopy(other *Map) *Map {
	out := m.Copy()
	for _, k := range other.keys {
		v, _ := other.values[k]
		out.Set(k, v)
	}
	return out
}

// Entries returns the map's entries as [key, value] pair lists, in
// insertion order — the representation spec.md §4.3 requires when a map is
// coerced into an iterator.
func (m *Map) Entries() []*List {
	out := make([]*List, 0, len(m.keys))
	for _, k := range m.keys {
		v, _ := m.values[k]
		out = append(out, NewList(Str(k), v))
	}
	return out
}
