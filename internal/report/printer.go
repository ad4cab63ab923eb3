// =============================================================================
// recordkeeper - Report Printer
// =============================================================================
//
// This module renders the demos' records and outcomes as plain text. Every
// line goes to the writer the Printer was created with, so commands can
// point it at stdout and tests at a buffer.
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/recordkeeper/internal/finance"
	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// HistoryDateLayout is the layout of the Date column of the history table.
const HistoryDateLayout = "02/01/2006 15:04:05"

// Printer writes text reports.
type Printer struct {
	w        io.Writer
	currency string
}

// NewPrinter creates a Printer that formats amounts with currency.
func NewPrinter(w io.Writer, currency string) *Printer {
	return &Printer{w: w, currency: currency}
}

// Line writes a single line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Heading writes a section heading preceded by a blank line.
func (p *Printer) Heading(title string) {
	fmt.Fprintf(p.w, "\n=== %s ===\n", title)
}

// =============================================================================
// FINANCE
// =============================================================================

// Receipt writes the channel confirmation for a processed transaction.
func (p *Printer) Receipt(r finance.Receipt) {
	p.Line("[%s] Processed %s for %s.",
		r.Channel.Label(), p.amount(r.Transaction), r.Transaction.Category)
}

// Result writes the receipt, when the channel produced one, and the outcome.
func (p *Printer) Result(r finance.Result) {
	if r.Receipt.Channel != "" {
		p.Receipt(r.Receipt)
	}
	p.Outcome(r.Outcome)
}

// TransactionHistory writes the history table. Rejected transactions are
// marked with a trailing "(rejected)".
func (p *Printer) TransactionHistory(entries []finance.HistoryEntry) {
	p.Heading("Transaction History")
	p.Line("%-5s %-20s %-10s %-15s", "ID", "Date", "Amount", "Category")
	p.Line("%s", strings.Repeat("-", 55))

	for _, e := range entries {
		tx := e.Transaction
		row := fmt.Sprintf("%-5d %-20s %-10s %-15s",
			tx.ID, tx.Date.Format(HistoryDateLayout), p.amount(tx), tx.Category)
		if !e.Applied {
			row += " (rejected)"
		}
		p.Line("%s", strings.TrimRight(row, " "))
	}
}

func (p *Printer) amount(tx types.Transaction) string {
	return types.FormatAmount(p.currency, tx.Amount)
}

// =============================================================================
// HEALTH
// =============================================================================

// Patients writes every patient.
func (p *Printer) Patients(patients []types.Patient) {
	p.Heading("All Patients")
	for _, patient := range patients {
		p.Line("%s", patient)
	}
}

// Prescriptions writes the prescriptions of patient.
func (p *Printer) Prescriptions(patient types.Patient, prescriptions []types.Prescription) {
	p.Heading("Prescriptions for " + patient.Name)
	if len(prescriptions) == 0 {
		p.Line("No prescriptions found.")
		return
	}
	for _, rx := range prescriptions {
		p.Line("%s", rx)
	}
}

// =============================================================================
// WAREHOUSE
// =============================================================================

// Items writes a titled inventory listing.
func Items[T fmt.Stringer](p *Printer, title string, items []T) {
	p.Line("%s:", title)
	if len(items) == 0 {
		p.Line("(none)")
		return
	}
	for _, item := range items {
		p.Line("%s", item)
	}
}

// Outcome writes the outcome message.
func (p *Printer) Outcome(o types.Outcome) {
	p.Line("%s", o.Message)
}
