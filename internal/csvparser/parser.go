// =============================================================================
// recordkeeper - CSV Parser Module
// =============================================================================
//
// This module reads finance transactions from CSV files so they can be
// processed alongside the seeded ones.
//
// EXPECTED LAYOUT:
//   id,date,amount,category,channel
//   4,2026-10-18,75.50,Transport,mobile_money
//
//   - Header names are matched case-insensitively and may appear in any
//     order.
//   - "date" is optional; rows without it are dated at import time.
//   - "channel" is optional; rows without it default to bank_transfer.
//   - Column transforms from the CSV settings run on each row first.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/recordkeeper/internal/config"
	"github.com/ginjaninja78/recordkeeper/internal/finance"
	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// requiredHeaders must all be present in the header row.
var requiredHeaders = []string{"id", "amount", "category"}

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents a parsed CSV file.
type CSVData struct {
	// Headers contains the normalized (lower-case, trimmed) headers.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	Rows []map[string]string

	// SourceFile is the path to the source CSV file, if any.
	SourceFile string
}

// ImportedTransaction is a transaction read from a CSV row.
type ImportedTransaction struct {
	Transaction types.Transaction
	Channel     finance.Channel

	// RowNumber is the 1-based CSV record number, header included.
	RowNumber int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file into header-keyed rows.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV settings from the main configuration.
//
// RETURNS:
//   - A pointer to the CSVData struct containing the parsed data.
//   - An error if the file cannot be read or parsed.
func Parse(filePath string, settings config.CSVSettings) (*CSVData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := ParseReader(bufio.NewReader(file), settings)
	if err != nil {
		return nil, err
	}
	data.SourceFile = filePath

	return data, nil
}

// ParseReader reads CSV data from r.
func ParseReader(r io.Reader, settings config.CSVSettings) (*CSVData, error) {
	csvReader := csv.NewReader(r)
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := cleanHeaders(allRows[0])
	rows := make([]map[string]string, 0, len(allRows)-1)
	for _, raw := range allRows[1:] {
		if isRowEmpty(raw) {
			// rows of blank cells keep their slot so record numbers stay aligned
			rows = append(rows, nil)
			continue
		}
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = strings.TrimSpace(raw[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &CSVData{Headers: headers, Rows: rows}, nil
}

// ParseTransactions reads a transaction CSV file.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV settings from the main configuration.
//   - now: The date assigned to rows without a date column.
func ParseTransactions(filePath string, settings config.CSVSettings, now time.Time) ([]ImportedTransaction, error) {
	data, err := Parse(filePath, settings)
	if err != nil {
		return nil, err
	}

	return ToTransactions(data, settings, now)
}

// ToTransactions converts parsed rows into transactions.
func ToTransactions(data *CSVData, settings config.CSVSettings, now time.Time) ([]ImportedTransaction, error) {
	for _, required := range requiredHeaders {
		if !hasHeader(data.Headers, required) {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	transformer := NewTransformer(settings.Transforms)

	out := make([]ImportedTransaction, 0, len(data.Rows))
	for i, row := range data.Rows {
		if row == nil {
			continue
		}
		rowNumber := i + 2

		if err := transformer.Apply(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNumber, err)
		}
		tx, channel, err := parseRow(row, settings, now)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNumber, err)
		}
		out = append(out, ImportedTransaction{Transaction: tx, Channel: channel, RowNumber: rowNumber})
	}

	return out, nil
}

// parseRow converts one header-keyed row.
func parseRow(row map[string]string, settings config.CSVSettings, now time.Time) (types.Transaction, finance.Channel, error) {
	id, err := strconv.Atoi(row["id"])
	if err != nil {
		return types.Transaction{}, "", fmt.Errorf("invalid id %q", row["id"])
	}

	amount, err := decimal.NewFromString(row["amount"])
	if err != nil {
		return types.Transaction{}, "", fmt.Errorf("invalid amount %q", row["amount"])
	}

	date := now
	if raw := row["date"]; raw != "" {
		date, err = time.Parse(settings.DateLayout, raw)
		if err != nil {
			return types.Transaction{}, "", fmt.Errorf("invalid date %q (layout %s)", raw, settings.DateLayout)
		}
	}

	channel := finance.ChannelBankTransfer
	if raw := row["channel"]; raw != "" {
		channel, err = finance.ParseChannel(raw)
		if err != nil {
			return types.Transaction{}, "", err
		}
	}

	return types.Transaction{
		ID:       id,
		Date:     date,
		Amount:   amount,
		Category: row["category"],
	}, channel, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Allow variable number of fields per row.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
}

// cleanHeaders lower-cases and trims headers, dropping a UTF-8 BOM.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		h = strings.TrimPrefix(h, "\ufeff")
		cleaned[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return cleaned
}

func hasHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}

	return false
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
