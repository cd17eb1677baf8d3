// Package overrides merges immutable default mappings with per-call overrides.
package overrides

import (
	"golang.org/x/exp/maps"
)

// Map is a read-only view over defaults layered with overrides.
// Overrides win; keys missing from both resolve to the fallback,
// if one was configured.
type Map[K comparable, V any] struct {
	values      map[K]V
	fallback    V
	hasFallback bool
}

// New copies defaults, so the caller's map is never mutated.
func New[K comparable, V any](defaults map[K]V) *Map[K, V] {
	values := maps.Clone(defaults)
	if values == nil {
		values = make(map[K]V)
	}
	return &Map[K, V]{values: values}
}

func (m *Map[K, V]) WithOverrides(overrides map[K]V) *Map[K, V] {
	maps.Copy(m.values, overrides)
	return m
}

func (m *Map[K, V]) WithFallback(fallback V) *Map[K, V] {
	m.fallback = fallback
	m.hasFallback = true
	return m
}

// Lookup returns the mapped value without applying the fallback.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// ValueOf returns the mapped value or the fallback. The boolean is false
// only when the key is unmapped and no fallback exists.
func (m *Map[K, V]) ValueOf(key K) (V, bool) {
	if v, ok := m.values[key]; ok {
		return v, true
	}
	return m.fallback, m.hasFallback
}

func (m *Map[K, V]) Len() int {
	return len(m.values)
}
