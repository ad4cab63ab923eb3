package xlsxwriter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/recordkeeper/internal/finance"
	"github.com/ginjaninja78/recordkeeper/internal/types"
	"github.com/ginjaninja78/recordkeeper/internal/xlsxparser"
)

func TestWriteInventory_RoundTrip(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)
	electronics := []*types.ElectronicItem{
		types.NewElectronicItem(1, "Laptop", 10, "Dell", 24),
		types.NewElectronicItem(2, "Smartphone", 25, "Samsung", 12),
	}
	groceries := []*types.GroceryItem{
		types.NewGroceryItem(1, "Milk", 30, expiry),
	}

	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, WriteInventory(path, electronics, groceries))

	inv, err := xlsxparser.ParseInventory(path)
	require.NoError(t, err)
	assert.Equal(t, electronics, inv.Electronics)
	assert.Equal(t, groceries, inv.Groceries)
}

func TestWriteHistory(t *testing.T) {
	t.Parallel()

	entries := []finance.HistoryEntry{
		{
			Transaction: types.Transaction{
				ID:       1,
				Date:     time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
				Amount:   decimal.RequireFromString("150.5"),
				Category: "Groceries",
			},
			Channel: finance.ChannelMobileMoney,
			Applied: true,
		},
		{
			Transaction: types.Transaction{ID: 2, Amount: decimal.NewFromInt(2000), Category: "Car"},
			Channel:     finance.ChannelBankTransfer,
		},
	}

	path := filepath.Join(t.TempDir(), "history.xlsx")
	require.NoError(t, WriteHistory(path, entries))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(HistorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Date", "Amount", "Category", "Channel", "Applied"}, rows[0])
	assert.Equal(t, "2026-10-19 09:30:00", rows[1][1])
	assert.Equal(t, "150.5", rows[1][2])
	assert.Equal(t, "Mobile Money", rows[1][4])
	assert.Equal(t, "TRUE", rows[1][5])
	assert.Equal(t, "FALSE", rows[2][5])
}
