package xlsxparser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a workbook from sheet name -> rows.
func writeWorkbook(t *testing.T, sheets map[string][][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseInventory(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		ElectronicsSheet: {
			{"Name", "ID", "Brand", "Quantity", "WarrantyMonths"},
			{"Laptop", 1, "Dell", 10, 24},
			{},
			{"Headphones", 3, "Sony", 18, 18},
		},
		GroceriesSheet: {
			{"id", "name", "quantity", "expirydate"},
			{1, "Milk", 30, "2026-10-26"},
		},
	})

	inv, err := ParseInventory(path)
	require.NoError(t, err)

	require.Len(t, inv.Electronics, 2)
	assert.Equal(t, 1, inv.Electronics[0].ID)
	assert.Equal(t, "Laptop", inv.Electronics[0].Name)
	assert.Equal(t, "Dell", inv.Electronics[0].Brand)
	assert.Equal(t, 18, inv.Electronics[1].Quantity)

	require.Len(t, inv.Groceries, 1)
	assert.Equal(t, time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC), inv.Groceries[0].ExpiryDate)
}

func TestParseInventory_MissingSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		GroceriesSheet: {
			{"ID", "Name", "Quantity", "ExpiryDate"},
			{2, "Bread", 25, "2026-10-22"},
		},
	})

	inv, err := ParseInventory(path)
	require.NoError(t, err)
	assert.Empty(t, inv.Electronics)
	assert.Len(t, inv.Groceries, 1)
}

func TestParseInventory_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sheets  map[string][][]any
		wantErr string
	}{
		{
			name: "missing column",
			sheets: map[string][][]any{
				ElectronicsSheet: {{"ID", "Name", "Quantity"}},
			},
			wantErr: `missing column "Brand"`,
		},
		{
			name: "bad quantity",
			sheets: map[string][][]any{
				ElectronicsSheet: {
					{"ID", "Name", "Quantity", "Brand", "WarrantyMonths"},
					{1, "Laptop", "many", "Dell", 24},
				},
			},
			wantErr: "row 2: column Quantity",
		},
		{
			name: "bad date",
			sheets: map[string][][]any{
				GroceriesSheet: {
					{"ID", "Name", "Quantity", "ExpiryDate"},
					{1, "Milk", 30, "soon"},
				},
			},
			wantErr: `invalid date "soon"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseInventory(writeWorkbook(t, tt.sheets))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := ParseInventory(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := parseDate("45000")
	require.NoError(t, err)
	assert.Equal(t, 2023, got.Year())
}
