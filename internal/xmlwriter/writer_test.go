package xmlwriter

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/recordkeeper/internal/finance"
	"github.com/ginjaninja78/recordkeeper/internal/types"
)

func TestGenerateInventory(t *testing.T) {
	t.Parallel()

	electronics := []*types.ElectronicItem{
		types.NewElectronicItem(1, "Laptop", 10, "Dell", 24),
		types.NewElectronicItem(2, "Smart & Phone", 20, "Samsung", 12),
	}
	groceries := []*types.GroceryItem{
		types.NewGroceryItem(1, "Milk", 30, time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)),
	}

	out, err := GenerateInventory(electronics, groceries)
	require.NoError(t, err)

	doc := string(out)
	assert.True(t, strings.HasPrefix(doc, xml.Header))
	assert.Contains(t, doc, `<item n="1" id="1">`)
	assert.Contains(t, doc, `<item n="3" id="1">`)
	assert.Contains(t, doc, "<name>Smart &amp; Phone</name>")
	assert.Contains(t, doc, "<warrantyMonths>24</warrantyMonths>")
	assert.Contains(t, doc, "<expiryDate>2026-10-26</expiryDate>")

	var decoded inventoryDocument
	require.NoError(t, xml.Unmarshal(out, &decoded))
	require.Len(t, decoded.Electronics.Items, 2)
	require.Len(t, decoded.Groceries.Items, 1)
	assert.Equal(t, 20, decoded.Electronics.Items[1].Quantity)
	assert.Nil(t, decoded.Groceries.Items[0].WarrantyMonths)
}

func TestGenerateInventory_Empty(t *testing.T) {
	t.Parallel()

	out, err := GenerateInventoryWithOptions(nil, nil, GenerateOptions{Indent: "\t"})
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(string(out), "<?xml"))
	assert.Contains(t, string(out), "<electronics></electronics>")
}

func TestGenerateHistory(t *testing.T) {
	t.Parallel()

	account := finance.NewAccount("SA-001", finance.KindSavings, decimal.NewFromInt(600))
	entries := []finance.HistoryEntry{
		{
			Transaction: types.Transaction{
				ID:       1,
				Date:     time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
				Amount:   decimal.NewFromInt(150),
				Category: "Groceries",
			},
			Channel: finance.ChannelMobileMoney,
			Applied: true,
		},
		{
			Transaction: types.Transaction{ID: 2, Amount: decimal.NewFromInt(5000), Category: "Car"},
			Channel:     finance.ChannelBankTransfer,
		},
	}

	out, err := GenerateHistory(account, entries)
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, `<history account="SA-001" kind="savings" balance="600.00">`)
	assert.Contains(t, doc, `<transaction n="1" applied="true">`)
	assert.Contains(t, doc, `<transaction n="2" applied="false">`)
	assert.Contains(t, doc, "<date>2026-10-19T09:30:00Z</date>")
	assert.Contains(t, doc, "<amount>150.00</amount>")
	assert.Contains(t, doc, "<channel>mobile_money</channel>")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, WriteFile(path, []byte("<a/>")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<a/>", string(got))

	require.Error(t, WriteFile(filepath.Join(t.TempDir(), "missing", "out.xml"), nil))
}
