// =============================================================================
// recordkeeper - XML Writer Module
// =============================================================================
//
// This module renders the warehouse inventory and the finance transaction
// history as XML documents.
//
// XML STRUCTURE:
//
//   <inventory>
//     <electronics>
//       <item n="1" id="1">
//         <name>Laptop</name>
//         <quantity>10</quantity>
//         <brand>Dell</brand>
//         <warrantyMonths>24</warrantyMonths>
//       </item>
//     </electronics>
//     <groceries>
//       <item n="2" id="1">               <!-- numbering continues -->
//         <name>Milk</name>
//         <quantity>30</quantity>
//         <expiryDate>2026-10-26</expiryDate>
//       </item>
//     </groceries>
//   </inventory>
//
//   <history account="SA-001" kind="savings" balance="600.00">
//     <transaction n="1" applied="true">
//       <id>1</id>
//       <date>2026-10-19T09:30:00Z</date>
//       <amount>150.00</amount>
//       <category>Groceries</category>
//       <channel>mobile_money</channel>
//     </transaction>
//   </history>
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/ginjaninja78/recordkeeper/internal/finance"
	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// ExpiryDateLayout is the layout of <expiryDate> values.
const ExpiryDateLayout = "2006-01-02"

// =============================================================================
// XML GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for XML generation.
type GenerateOptions struct {
	// Indent is the string used for indentation.
	// Default: "  " (two spaces)
	Indent string

	// IncludeXMLDeclaration determines whether to include the XML declaration.
	// Default: true
	IncludeXMLDeclaration bool
}

// DefaultGenerateOptions returns the default XML generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
	}
}

// =============================================================================
// DOCUMENT STRUCTURES
// =============================================================================

type inventoryDocument struct {
	XMLName     xml.Name  `xml:"inventory"`
	Electronics itemGroup `xml:"electronics"`
	Groceries   itemGroup `xml:"groceries"`
}

type itemGroup struct {
	Items []itemElement `xml:"item"`
}

type itemElement struct {
	N              int    `xml:"n,attr"`
	ID             int    `xml:"id,attr"`
	Name           string `xml:"name"`
	Quantity       int    `xml:"quantity"`
	Brand          string `xml:"brand,omitempty"`
	WarrantyMonths *int   `xml:"warrantyMonths,omitempty"`
	ExpiryDate     string `xml:"expiryDate,omitempty"`
}

type historyDocument struct {
	XMLName      xml.Name             `xml:"history"`
	Account      string               `xml:"account,attr"`
	Kind         string               `xml:"kind,attr"`
	Balance      string               `xml:"balance,attr"`
	Transactions []transactionElement `xml:"transaction"`
}

type transactionElement struct {
	N        int    `xml:"n,attr"`
	Applied  bool   `xml:"applied,attr"`
	ID       int    `xml:"id"`
	Date     string `xml:"date"`
	Amount   string `xml:"amount"`
	Category string `xml:"category"`
	Channel  string `xml:"channel"`
}

// =============================================================================
// MAIN GENERATION FUNCTIONS
// =============================================================================

// GenerateInventory renders the inventory document with default options.
//
// PARAMETERS:
//   - electronics: The electronic items, in listing order.
//   - groceries: The grocery items, in listing order.
//
// RETURNS:
//   - The XML document as a byte slice.
//   - An error if generation fails.
func GenerateInventory(electronics []*types.ElectronicItem, groceries []*types.GroceryItem) ([]byte, error) {
	return GenerateInventoryWithOptions(electronics, groceries, DefaultGenerateOptions())
}

// GenerateInventoryWithOptions renders the inventory document. Items are
// numbered with a running n attribute across both categories.
func GenerateInventoryWithOptions(electronics []*types.ElectronicItem, groceries []*types.GroceryItem, options GenerateOptions) ([]byte, error) {
	doc := inventoryDocument{}
	n := 0

	for _, e := range electronics {
		n++
		warranty := e.WarrantyMonths
		doc.Electronics.Items = append(doc.Electronics.Items, itemElement{
			N:              n,
			ID:             e.ID,
			Name:           e.Name,
			Quantity:       e.Quantity,
			Brand:          e.Brand,
			WarrantyMonths: &warranty,
		})
	}
	for _, g := range groceries {
		n++
		doc.Groceries.Items = append(doc.Groceries.Items, itemElement{
			N:          n,
			ID:         g.ID,
			Name:       g.Name,
			Quantity:   g.Quantity,
			ExpiryDate: g.ExpiryDate.Format(ExpiryDateLayout),
		})
	}

	return marshal(doc, options)
}

// GenerateHistory renders the transaction history of account with default
// options.
func GenerateHistory(account *finance.Account, entries []finance.HistoryEntry) ([]byte, error) {
	return GenerateHistoryWithOptions(account, entries, DefaultGenerateOptions())
}

// GenerateHistoryWithOptions renders the transaction history of account.
// Rejected transactions are included with applied="false".
func GenerateHistoryWithOptions(account *finance.Account, entries []finance.HistoryEntry, options GenerateOptions) ([]byte, error) {
	doc := historyDocument{
		Account: account.Number,
		Kind:    string(account.Kind),
		Balance: account.Balance().StringFixed(2),
	}

	for i, e := range entries {
		doc.Transactions = append(doc.Transactions, transactionElement{
			N:        i + 1,
			Applied:  e.Applied,
			ID:       e.Transaction.ID,
			Date:     e.Transaction.Date.Format(time.RFC3339),
			Amount:   e.Transaction.Amount.StringFixed(2),
			Category: e.Transaction.Category,
			Channel:  string(e.Channel),
		})
	}

	return marshal(doc, options)
}

// WriteFile writes a generated document to path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write XML file: %w", err)
	}

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// marshal encodes doc, prefixing the XML declaration when requested.
func marshal(doc any, options GenerateOptions) ([]byte, error) {
	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString(xml.Header)
	}

	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", options.Indent)
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode XML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode XML: %w", err)
	}
	buffer.WriteString("\n")

	return buffer.Bytes(), nil
}
