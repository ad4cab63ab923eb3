// Package warehouse manages the electronics and grocery inventories.
//
// Stock operations never return repository errors to the caller. They are
// folded into a types.Outcome whose Err still carries the original
// *repository.Error for callers that need the kind.
package warehouse

import (
	"fmt"
	"math"
	"strings"

	"github.com/ginjaninja78/recordkeeper/internal/logger"
	"github.com/ginjaninja78/recordkeeper/internal/repository"
	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// Category names one of the two inventories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryGroceries   Category = "groceries"
)

// ParseCategory accepts "electronics"/"electronic" and "groceries"/"grocery".
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "electronics", "electronic":
		return CategoryElectronics, nil
	case "groceries", "grocery":
		return CategoryGroceries, nil
	default:
		return "", fmt.Errorf("unknown inventory category %q", s)
	}
}

// Manager owns the two keyed inventories.
type Manager struct {
	lggr        logger.Logger
	electronics *repository.InventoryRepository[*types.ElectronicItem]
	groceries   *repository.InventoryRepository[*types.GroceryItem]
}

// NewManager creates a Manager with empty inventories.
func NewManager(lggr logger.Logger) *Manager {
	return &Manager{
		lggr:        lggr.Named("warehouse"),
		electronics: repository.NewInventory[*types.ElectronicItem](),
		groceries:   repository.NewInventory[*types.GroceryItem](),
	}
}

// Electronics returns the electronics inventory.
func (m *Manager) Electronics() *repository.InventoryRepository[*types.ElectronicItem] {
	return m.electronics
}

// Groceries returns the grocery inventory.
func (m *Manager) Groceries() *repository.InventoryRepository[*types.GroceryItem] {
	return m.groceries
}

// SeedData adds the initial items. It stops at the first failure and
// reports it.
func (m *Manager) SeedData(electronics []*types.ElectronicItem, groceries []*types.GroceryItem) types.Outcome {
	for _, item := range electronics {
		if err := m.electronics.Add(item); err != nil {
			m.lggr.Errorw("seed failed", "category", CategoryElectronics, "id", item.ID, "err", err)
			return types.Failed("SeedData Error", err)
		}
	}
	for _, item := range groceries {
		if err := m.groceries.Add(item); err != nil {
			m.lggr.Errorw("seed failed", "category", CategoryGroceries, "id", item.ID, "err", err)
			return types.Failed("SeedData Error", err)
		}
	}

	m.lggr.Infow("seeded", "electronics", len(electronics), "groceries", len(groceries))
	return types.Succeeded("Seeded %d electronic and %d grocery items.", len(electronics), len(groceries))
}

// IncreaseStock adds delta to the quantity of item id in repo.
func IncreaseStock[T types.InventoryItem](m *Manager, repo *repository.InventoryRepository[T], id, delta int) types.Outcome {
	item, err := repo.Get(id)
	if err != nil {
		m.lggr.Warnw("increase stock failed", "id", id, "err", err)
		return types.Failed("IncreaseStock Error", err)
	}
	current := item.StockQuantity()
	if delta > 0 && current > math.MaxInt-delta {
		err := fmt.Errorf("Increasing quantity %d of item ID %d by %d exceeds the maximum stock level.", current, id, delta)
		m.lggr.Warnw("increase stock failed", "id", id, "delta", delta, "err", err)
		return types.Failed("IncreaseStock Error", err)
	}
	if err := repo.UpdateQuantity(id, current+delta); err != nil {
		m.lggr.Warnw("increase stock failed", "id", id, "delta", delta, "err", err)
		return types.Failed("IncreaseStock Error", err)
	}

	m.lggr.Infow("stock increased", "id", id, "quantity", item.StockQuantity())
	return types.Succeeded("Stock increased for item ID %d. New quantity: %d", id, item.StockQuantity())
}

// RemoveItemByID deletes item id from repo.
func RemoveItemByID[T types.InventoryItem](m *Manager, repo *repository.InventoryRepository[T], id int) types.Outcome {
	if err := repo.Remove(id); err != nil {
		m.lggr.Warnw("remove item failed", "id", id, "err", err)
		return types.Failed("RemoveItem Error", err)
	}

	m.lggr.Infow("item removed", "id", id)
	return types.Succeeded("Item with ID %d removed.", id)
}

// IncreaseStockIn dispatches IncreaseStock to the inventory for category.
func (m *Manager) IncreaseStockIn(category Category, id, delta int) types.Outcome {
	switch category {
	case CategoryElectronics:
		return IncreaseStock(m, m.electronics, id, delta)
	case CategoryGroceries:
		return IncreaseStock(m, m.groceries, id, delta)
	default:
		return types.Failed("IncreaseStock Error", fmt.Errorf("unknown inventory category %q", category))
	}
}

// RemoveItemIn dispatches RemoveItemByID to the inventory for category.
func (m *Manager) RemoveItemIn(category Category, id int) types.Outcome {
	switch category {
	case CategoryElectronics:
		return RemoveItemByID(m, m.electronics, id)
	case CategoryGroceries:
		return RemoveItemByID(m, m.groceries, id)
	default:
		return types.Failed("RemoveItem Error", fmt.Errorf("unknown inventory category %q", category))
	}
}
