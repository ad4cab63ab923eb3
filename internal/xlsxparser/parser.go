// =============================================================================
// recordkeeper - XLSX Inventory Parser
// =============================================================================
//
// This module reads the initial warehouse inventory from an XLSX workbook.
//
// WORKBOOK LAYOUT:
//   Sheet "Electronics":
//   | ID | Name   | Quantity | Brand | WarrantyMonths |
//   | 1  | Laptop | 10       | Dell  | 24             |
//
//   Sheet "Groceries":
//   | ID | Name | Quantity | ExpiryDate |
//   | 1  | Milk | 30       | 2026-10-26 |
//
//   - Row 1 is the header row; columns are located by header name, so the
//     column order does not matter.
//   - Empty rows are skipped.
//   - A missing sheet yields an empty list for that category.
//
// The xlsxwriter package writes the same layout, so an exported inventory
// can be fed back in as seed data.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// Sheet names.
const (
	ElectronicsSheet = "Electronics"
	GroceriesSheet   = "Groceries"
)

// ExpiryDateLayout is the layout of the ExpiryDate column.
const ExpiryDateLayout = "2006-01-02"

// =============================================================================
// COLUMN CONFIGURATION
// =============================================================================

// InventoryColumns names the header of each column.
type InventoryColumns struct {
	ID             string
	Name           string
	Quantity       string
	Brand          string
	WarrantyMonths string
	ExpiryDate     string
}

// DefaultInventoryColumns returns the header names written by xlsxwriter.
func DefaultInventoryColumns() InventoryColumns {
	return InventoryColumns{
		ID:             "ID",
		Name:           "Name",
		Quantity:       "Quantity",
		Brand:          "Brand",
		WarrantyMonths: "WarrantyMonths",
		ExpiryDate:     "ExpiryDate",
	}
}

// Inventory is the parsed content of an inventory workbook.
type Inventory struct {
	SourceFile  string
	Electronics []*types.ElectronicItem
	Groceries   []*types.GroceryItem
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ParseInventory reads an inventory workbook with the default columns.
//
// PARAMETERS:
//   - workbookPath: The path to the XLSX file.
//
// RETURNS:
//   - The parsed inventory.
//   - An error if the file cannot be read or a row is malformed.
func ParseInventory(workbookPath string) (*Inventory, error) {
	return ParseInventoryWithConfig(workbookPath, DefaultInventoryColumns())
}

// ParseInventoryWithConfig reads an inventory workbook using custom header
// names.
func ParseInventoryWithConfig(workbookPath string, columns InventoryColumns) (*Inventory, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	inv := &Inventory{SourceFile: workbookPath}

	electronicRows, err := sheetRows(f, ElectronicsSheet)
	if err != nil {
		return nil, err
	}
	inv.Electronics, err = parseElectronics(electronicRows, columns)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", ElectronicsSheet, err)
	}

	groceryRows, err := sheetRows(f, GroceriesSheet)
	if err != nil {
		return nil, err
	}
	inv.Groceries, err = parseGroceries(groceryRows, columns)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", GroceriesSheet, err)
	}

	return inv, nil
}

// sheetRows returns all rows of a sheet, or nil if the sheet is missing.
func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %s: %w", sheet, err)
	}
	if idx == -1 {
		return nil, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %s: %w", sheet, err)
	}

	return rows, nil
}

func parseElectronics(rows [][]string, columns InventoryColumns) ([]*types.ElectronicItem, error) {
	items := []*types.ElectronicItem{}
	if len(rows) == 0 {
		return items, nil
	}

	index, err := headerIndex(rows[0], columns.ID, columns.Name, columns.Quantity, columns.Brand, columns.WarrantyMonths)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}
		cell := cellReader(row, index)

		id, err := cell.integer(columns.ID)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		quantity, err := cell.integer(columns.Quantity)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		warranty, err := cell.integer(columns.WarrantyMonths)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		items = append(items, types.NewElectronicItem(id, cell.text(columns.Name), quantity, cell.text(columns.Brand), warranty))
	}

	return items, nil
}

func parseGroceries(rows [][]string, columns InventoryColumns) ([]*types.GroceryItem, error) {
	items := []*types.GroceryItem{}
	if len(rows) == 0 {
		return items, nil
	}

	index, err := headerIndex(rows[0], columns.ID, columns.Name, columns.Quantity, columns.ExpiryDate)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}
		cell := cellReader(row, index)

		id, err := cell.integer(columns.ID)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		quantity, err := cell.integer(columns.Quantity)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		expiry, err := parseDate(cell.text(columns.ExpiryDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		items = append(items, types.NewGroceryItem(id, cell.text(columns.Name), quantity, expiry))
	}

	return items, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// headerIndex maps each required header (case-insensitive) to its column.
func headerIndex(header []string, required ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	out := make(map[string]int, len(required))
	for _, name := range required {
		i, ok := index[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		out[name] = i
	}

	return out, nil
}

type rowCells struct {
	row   []string
	index map[string]int
}

func cellReader(row []string, index map[string]int) rowCells {
	return rowCells{row: row, index: index}
}

func (c rowCells) text(column string) string {
	i := c.index[column]
	if i >= len(c.row) {
		return ""
	}
	return strings.TrimSpace(c.row[i])
}

func (c rowCells) integer(column string) (int, error) {
	raw := c.text(column)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", column, raw)
	}
	return n, nil
}

// parseDate accepts ExpiryDateLayout or an Excel serial date number.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(ExpiryDateLayout, raw); err == nil {
		return t, nil
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}

	return time.Time{}, fmt.Errorf("invalid date %q (want %s)", raw, ExpiryDateLayout)
}

// isRowEmpty checks if a row is completely empty.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
