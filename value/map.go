package value

import "sort"

// Map is an ordered string-keyed map of Value, used by the Compound
// variant. Keys iterate in sorted order regardless of insertion order,
// mirroring a BTreeMap<String, Value> rather than a Go map's random
// order — this is what lets Value.Hash produce the same result for two
// Compounds built in different insertion orders.
//
// Built on the standard library: nothing in the retrieval pack supplies
// a sorted-map type, and a plain sorted slice plus index is enough for
// NBT compounds, which are rarely large enough to need a tree.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Get returns the value stored under key, if any.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Set inserts or replaces the value stored under key, preserving sorted
// key order.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		i := sort.SearchStrings(m.keys, key)
		m.keys = append(m.keys, "")
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = key
	}

	m.values[key] = v
}

// Delete removes key, if present.
func (m *Map) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}

	delete(m.values, key)

	i := sort.SearchStrings(m.keys, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
}

// Keys returns the map's keys in sorted order. The returned slice must
// not be mutated by the caller.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return m.keys
}
