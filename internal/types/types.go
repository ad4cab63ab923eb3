// =============================================================================
// recordkeeper - Shared Types
// =============================================================================
//
// This package contains the record types shared by the finance, health and
// warehouse packages, together with the Outcome type that managers use to
// report success or failure to their callers. Keeping them here avoids
// import cycles between:
//   - repository
//   - finance / health / warehouse
//   - report / xmlwriter / xlsxwriter
//
// =============================================================================

package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DisplayDateLayout is the dd/MM/yyyy layout used by the display hooks.
const DisplayDateLayout = "02/01/2006"

// =============================================================================
// FINANCE RECORDS
// =============================================================================

// Transaction is a single debit against an account.
type Transaction struct {
	ID       int
	Date     time.Time
	Amount   decimal.Decimal
	Category string
}

// FormatAmount renders an amount with the given currency symbol and two
// decimal places, e.g. "¢150.00".
func FormatAmount(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// =============================================================================
// HEALTH RECORDS
// =============================================================================

// Patient is a registered patient.
type Patient struct {
	ID     int
	Name   string
	Age    int
	Gender string
}

// String implements fmt.Stringer.
func (p Patient) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Age: %d, Gender: %s", p.ID, p.Name, p.Age, p.Gender)
}

// Prescription is a medication issued to a patient.
type Prescription struct {
	ID             int
	PatientID      int
	MedicationName string
	DateIssued     time.Time
}

// String implements fmt.Stringer.
func (p Prescription) String() string {
	return fmt.Sprintf("Prescription ID: %d, Medication: %s, Date: %s",
		p.ID, p.MedicationName, p.DateIssued.Format(DisplayDateLayout))
}

// =============================================================================
// INVENTORY RECORDS
// =============================================================================

// InventoryItem is the capability set required by the keyed inventory
// repository: an identity, a name and a mutable quantity.
type InventoryItem interface {
	Key() int
	DisplayName() string
	StockQuantity() int
	SetStockQuantity(quantity int)
}

// InventoryBase holds the fields every inventory item shares. Embed it to
// satisfy InventoryItem.
type InventoryBase struct {
	ID       int
	Name     string
	Quantity int
}

// Key returns the item ID.
func (b *InventoryBase) Key() int { return b.ID }

// DisplayName returns the item name.
func (b *InventoryBase) DisplayName() string { return b.Name }

// StockQuantity returns the quantity currently in stock.
func (b *InventoryBase) StockQuantity() int { return b.Quantity }

// SetStockQuantity overwrites the quantity in stock.
func (b *InventoryBase) SetStockQuantity(quantity int) { b.Quantity = quantity }

// ElectronicItem is an inventory item with a brand and a warranty.
type ElectronicItem struct {
	InventoryBase
	Brand          string
	WarrantyMonths int
}

// NewElectronicItem creates an ElectronicItem.
func NewElectronicItem(id int, name string, quantity int, brand string, warrantyMonths int) *ElectronicItem {
	return &ElectronicItem{
		InventoryBase:  InventoryBase{ID: id, Name: name, Quantity: quantity},
		Brand:          brand,
		WarrantyMonths: warrantyMonths,
	}
}

// String implements fmt.Stringer.
func (e *ElectronicItem) String() string {
	return fmt.Sprintf("[Electronic] ID: %d, Name: %s, Brand: %s, Warranty: %d months, Quantity: %d",
		e.ID, e.Name, e.Brand, e.WarrantyMonths, e.Quantity)
}

// GroceryItem is a perishable inventory item.
type GroceryItem struct {
	InventoryBase
	ExpiryDate time.Time
}

// NewGroceryItem creates a GroceryItem.
func NewGroceryItem(id int, name string, quantity int, expiry time.Time) *GroceryItem {
	return &GroceryItem{
		InventoryBase: InventoryBase{ID: id, Name: name, Quantity: quantity},
		ExpiryDate:    expiry,
	}
}

// String implements fmt.Stringer.
func (g *GroceryItem) String() string {
	return fmt.Sprintf("[Grocery] ID: %d, Name: %s, Expiry: %s, Quantity: %d",
		g.ID, g.Name, g.ExpiryDate.Format(DisplayDateLayout), g.Quantity)
}

var (
	_ InventoryItem = (*ElectronicItem)(nil)
	_ InventoryItem = (*GroceryItem)(nil)
)

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome is the caller-visible result of a manager operation. Managers
// never return repository errors directly; they fold them into an Outcome
// and keep the original error in Err so callers can still classify it.
type Outcome struct {
	// Success is true when the operation was applied.
	Success bool

	// Message is a human-readable description of what happened.
	Message string

	// Err holds the underlying error when Success is false.
	Err error
}

// Succeeded builds a successful Outcome.
func Succeeded(format string, args ...any) Outcome {
	return Outcome{Success: true, Message: fmt.Sprintf(format, args...)}
}

// Failed builds a failed Outcome. The message is prefixed with the
// operation label, e.g. "[RemoveItem Error] Item with ID 99 not found."
func Failed(label string, err error) Outcome {
	return Outcome{
		Success: false,
		Message: fmt.Sprintf("[%s] %v", label, err),
		Err:     err,
	}
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	return o.Message
}
