// Package repository provides the two in-memory record collections used by
// the demos: an append-only list Repository and an id-keyed
// InventoryRepository that enforces key uniqueness.
package repository

import (
	"sync"
)

// Repository is an in-memory list of records of one type. It never rejects
// an insert, so duplicates are tolerated; lookups and removals take a
// caller-supplied predicate.
type Repository[T any] struct {
	mu    sync.RWMutex
	items []T
}

// New creates an empty Repository.
func New[T any]() *Repository[T] {
	return &Repository[T]{items: []T{}}
}

// Add appends item.
func (r *Repository[T]) Add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
}

// All returns a copy of the stored records in insertion order.
func (r *Repository[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]T{}, r.items...)
}

// Find returns the first record matching pred. The boolean is false, and
// the record the zero value, when nothing matches.
func (r *Repository[T]) Find(pred func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(pred)
	if idx == -1 {
		var zero T
		return zero, false
	}

	return r.items[idx], true
}

// Remove deletes the first record matching pred and reports whether one
// was found.
func (r *Repository[T]) Remove(pred func(T) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(pred)
	if idx == -1 {
		return false
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)

	return true
}

// Len returns the number of stored records.
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// indexOf returns the index of the first record matching pred, or -1.
func (r *Repository[T]) indexOf(pred func(T) bool) int {
	for i, item := range r.items {
		if pred(item) {
			return i
		}
	}

	return -1
}
