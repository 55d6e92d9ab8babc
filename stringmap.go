package hashtab

import "strings"

// StringEntry pairs a string key with a value; the item type StringMap
// stores in its underlying Table.
type StringEntry[V any] struct {
	Key   string
	Value V
}

// StringMap binds a Table to string keys so no hash or compare callbacks
// need to be written. Keys are hashed with XXHash unless a custom hasher is
// given. Like the underlying table, a StringMap is not safe for concurrent
// use.
type StringMap[V any] struct {
	tab *Table[StringEntry[V]]
}

// NewStringMap creates a StringMap configured by the given options.
func NewStringMap[V any](options ...func(*Config)) *StringMap[V] {
	return NewStringMapWithHasher[V](XXHash, options...)
}

// NewStringMapWithHasher creates a StringMap that hashes keys with the
// given function, e.g. one of the classic hashes in this package.
func NewStringMapWithHasher[V any](hasher func(key string) uint64, options ...func(*Config)) *StringMap[V] {
	if hasher == nil {
		panic("hashtab: nil key hasher")
	}
	return &StringMap[V]{
		tab: New(
			func(e StringEntry[V]) uint64 { return hasher(e.Key) },
			func(a, b StringEntry[V]) int { return strings.Compare(a.Key, b.Key) },
			options...,
		),
	}
}

// Add stores value under key, even if the key is already present. Use
// Insert for replace-or-add semantics. It returns the length of the table
// the entry landed in.
func (m *StringMap[V]) Add(key string, value V) int {
	return m.tab.Add(StringEntry[V]{Key: key, Value: value})
}

// Insert replaces the value stored under key and returns the previous one,
// or adds the entry when the key is absent. See Table.Insert for the
// semantics while a migration is in flight.
func (m *StringMap[V]) Insert(key string, value V) (prev V, replaced bool) {
	e, replaced := m.tab.Insert(StringEntry[V]{Key: key, Value: value})
	return e.Value, replaced
}

// Find returns the value stored under key.
func (m *StringMap[V]) Find(key string) (value V, ok bool) {
	e, ok := m.tab.Find(StringEntry[V]{Key: key})
	return e.Value, ok
}

// Remove deletes the entry stored under key and returns its value.
func (m *StringMap[V]) Remove(key string) (value V, ok bool) {
	e, ok := m.tab.Remove(StringEntry[V]{Key: key})
	return e.Value, ok
}

// Range calls f for every entry until f returns false. The iteration order
// is unspecified; f must not mutate the map.
func (m *StringMap[V]) Range(f func(key string, value V) bool) {
	m.tab.Range(func(e StringEntry[V]) bool {
		return f(e.Key, e.Value)
	})
}

// Len returns the total number of entries.
func (m *StringMap[V]) Len() int { return m.tab.Len() }

// Size returns the slot count of the underlying table.
func (m *StringMap[V]) Size() int { return m.tab.Size() }

// Load returns the load factor of the underlying table.
func (m *StringMap[V]) Load() float64 { return m.tab.Load() }

// Grows returns how often the underlying table has grown.
func (m *StringMap[V]) Grows() int { return m.tab.Grows() }

// Shrinks returns how often the underlying table has shrunk.
func (m *StringMap[V]) Shrinks() int { return m.tab.Shrinks() }
