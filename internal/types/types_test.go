package types

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDisplayFormats(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 10, 9, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		give interface{ String() string }
		want string
	}{
		{
			name: "patient",
			give: Patient{ID: 1, Name: "Alice Smith", Age: 30, Gender: "Female"},
			want: "ID: 1, Name: Alice Smith, Age: 30, Gender: Female",
		},
		{
			name: "prescription",
			give: Prescription{ID: 1, PatientID: 1, MedicationName: "Amoxicillin", DateIssued: day},
			want: "Prescription ID: 1, Medication: Amoxicillin, Date: 09/10/2026",
		},
		{
			name: "electronic item",
			give: NewElectronicItem(1, "Laptop", 10, "Dell", 24),
			want: "[Electronic] ID: 1, Name: Laptop, Brand: Dell, Warranty: 24 months, Quantity: 10",
		},
		{
			name: "grocery item",
			give: NewGroceryItem(2, "Bread", 25, day),
			want: "[Grocery] ID: 2, Name: Bread, Expiry: 09/10/2026, Quantity: 25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.give.String())
		})
	}
}

func TestInventoryBase(t *testing.T) {
	t.Parallel()

	var item InventoryItem = NewElectronicItem(7, "Camera", 3, "Canon", 12)
	assert.Equal(t, 7, item.Key())
	assert.Equal(t, "Camera", item.DisplayName())

	item.SetStockQuantity(9)
	assert.Equal(t, 9, item.StockQuantity())
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "¢150.00", FormatAmount("¢", decimal.NewFromInt(150)))
	assert.Equal(t, "$0.50", FormatAmount("$", decimal.RequireFromString("0.5")))
	assert.Equal(t, "-$20.00", FormatAmount("$", decimal.NewFromInt(-20)))
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	ok := Succeeded("Item with ID %d removed.", 3)
	assert.True(t, ok.Success)
	assert.Equal(t, "Item with ID 3 removed.", ok.String())
	assert.NoError(t, ok.Err)

	cause := errors.New("Item with ID 99 not found.")
	failed := Failed("RemoveItem Error", cause)
	assert.False(t, failed.Success)
	assert.Equal(t, "[RemoveItem Error] Item with ID 99 not found.", failed.Message)
	assert.ErrorIs(t, failed.Err, cause)
}
