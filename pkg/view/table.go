package view

import "slices"

// Table is one side table: identity to value, with a merge applied when an
// identity is registered twice. Insertion order is kept for iteration.
type Table[T any] struct {
	entries map[Identity]T
	order   []Identity
	merge   func(old, next T) T
}

// NewTable creates a table. A nil merge makes later registrations replace
// earlier ones.
func NewTable[T any](merge func(old, next T) T) *Table[T] {
	return &Table[T]{entries: make(map[Identity]T), merge: merge}
}

// Register stores v for id, merging into an existing value.
func (t *Table[T]) Register(id Identity, v T) {
	old, ok := t.entries[id]
	if !ok {
		t.order = append(t.order, id)
	} else if t.merge != nil {
		v = t.merge(old, v)
	}
	t.entries[id] = v
}

// Lookup returns the value for id.
func (t *Table[T]) Lookup(id Identity) (T, bool) {
	v, ok := t.entries[id]
	return v, ok
}

// Len returns the number of identities with a value.
func (t *Table[T]) Len() int { return len(t.entries) }

// Identities returns the registered identities in first-registration order.
func (t *Table[T]) Identities() []Identity { return slices.Clone(t.order) }

// Reset removes every entry.
func (t *Table[T]) Reset() {
	clear(t.entries)
	t.order = t.order[:0]
}

// replace is the merge for single-valued tables.
func replace[T any](_, next T) T { return next }
