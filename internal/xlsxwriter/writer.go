// =============================================================================
// recordkeeper - XLSX Export Module
// =============================================================================
//
// This module writes the warehouse inventory and the finance transaction
// history to XLSX workbooks.
//
// The inventory workbook uses the layout read by the xlsxparser package:
// one sheet per category, a bold header row, one item per row.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/recordkeeper/internal/finance"
	"github.com/ginjaninja78/recordkeeper/internal/types"
	"github.com/ginjaninja78/recordkeeper/internal/xlsxparser"
)

// HistorySheet is the sheet name of the history workbook.
const HistorySheet = "History"

// =============================================================================
// INVENTORY EXPORT
// =============================================================================

// WriteInventory writes electronics and groceries to a new workbook at path.
func WriteInventory(path string, electronics []*types.ElectronicItem, groceries []*types.GroceryItem) error {
	cols := xlsxparser.DefaultInventoryColumns()

	electronicRows := make([][]any, 0, len(electronics))
	for _, e := range electronics {
		electronicRows = append(electronicRows, []any{e.ID, e.Name, e.Quantity, e.Brand, e.WarrantyMonths})
	}

	groceryRows := make([][]any, 0, len(groceries))
	for _, g := range groceries {
		groceryRows = append(groceryRows, []any{g.ID, g.Name, g.Quantity, g.ExpiryDate.Format(xlsxparser.ExpiryDateLayout)})
	}

	return write(path, []sheet{
		{
			name:   xlsxparser.ElectronicsSheet,
			header: []any{cols.ID, cols.Name, cols.Quantity, cols.Brand, cols.WarrantyMonths},
			rows:   electronicRows,
		},
		{
			name:   xlsxparser.GroceriesSheet,
			header: []any{cols.ID, cols.Name, cols.Quantity, cols.ExpiryDate},
			rows:   groceryRows,
		},
	})
}

// =============================================================================
// HISTORY EXPORT
// =============================================================================

// WriteHistory writes the transaction history to a new workbook at path.
// Amounts are written as numbers; the Applied column is a boolean.
func WriteHistory(path string, entries []finance.HistoryEntry) error {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			e.Transaction.ID,
			e.Transaction.Date.Format("2006-01-02 15:04:05"),
			e.Transaction.Amount.InexactFloat64(),
			e.Transaction.Category,
			e.Channel.Label(),
			e.Applied,
		})
	}

	return write(path, []sheet{{
		name:   HistorySheet,
		header: []any{"ID", "Date", "Amount", "Category", "Channel", "Applied"},
		rows:   rows,
	}})
}

// =============================================================================
// WORKBOOK HELPERS
// =============================================================================

type sheet struct {
	name   string
	header []any
	rows   [][]any
}

// write builds a workbook with the given sheets, in order, and saves it.
func write(path string, sheets []sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}

		if err := writeRow(f, s.name, 1, s.header); err != nil {
			return err
		}
		if err := f.SetRowStyle(s.name, 1, 1, headerStyle); err != nil {
			return fmt.Errorf("failed to style header of %s: %w", s.name, err)
		}
		for r, row := range s.rows {
			if err := writeRow(f, s.name, r+2, row); err != nil {
				return err
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

func writeRow(f *excelize.File, sheetName string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", rowNum, sheetName, err)
	}

	return nil
}
