package repository

import (
	"sync"

	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// InventoryRepository is an in-memory collection of inventory items keyed
// by their ID. No two stored items share a key.
//
// Items are stored by reference: the value returned from Get is the stored
// item, so quantity changes made through it are visible to the repository.
type InventoryRepository[T types.InventoryItem] struct {
	mu    sync.RWMutex
	items map[int]T
	order []int
}

// NewInventory creates an empty InventoryRepository.
func NewInventory[T types.InventoryItem]() *InventoryRepository[T] {
	return &InventoryRepository[T]{items: make(map[int]T)}
}

// Add stores item. If an item with the same key already exists, or the
// item's quantity is negative, the repository is left unchanged and a
// KindDuplicateKey or KindInvalidQuantity error is returned.
func (r *InventoryRepository[T]) Add(item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := item.Key()
	if _, ok := r.items[id]; ok {
		return duplicateKey("add", id)
	}
	if item.StockQuantity() < 0 {
		return invalidQuantity("add", id)
	}
	r.items[id] = item
	r.order = append(r.order, id)

	return nil
}

// Get returns the item stored under id, or a KindNotFound error.
func (r *InventoryRepository[T]) Get(id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, notFound("get", id)
	}

	return item, nil
}

// Remove deletes the item stored under id, or returns a KindNotFound error.
func (r *InventoryRepository[T]) Remove(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return notFound("remove", id)
	}
	delete(r.items, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

// UpdateQuantity sets the quantity of the item stored under id. A negative
// quantity is rejected before the lookup.
func (r *InventoryRepository[T]) UpdateQuantity(id, quantity int) error {
	if quantity < 0 {
		return invalidQuantity("update_quantity", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return notFound("update_quantity", id)
	}
	item.SetStockQuantity(quantity)

	return nil
}

// All returns a snapshot of the stored items in insertion order.
func (r *InventoryRepository[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}

	return items
}

// Len returns the number of stored items.
func (r *InventoryRepository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
