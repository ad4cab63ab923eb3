package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// =============================================================================
// SEED SECTIONS
// =============================================================================
// Amounts are strings so that YAML never rounds them through a float.
// Dates are offsets from the moment the seed is built.

// FinanceSeed describes the account and the transactions applied to it.
type FinanceSeed struct {
	AccountNumber  string            `yaml:"account_number"`
	AccountKind    string            `yaml:"account_kind"`
	InitialBalance string            `yaml:"initial_balance"`
	Transactions   []TransactionSeed `yaml:"transactions"`
}

// TransactionSeed is one seeded transaction.
type TransactionSeed struct {
	ID       int    `yaml:"id"`
	DaysAgo  int    `yaml:"days_ago"`
	Amount   string `yaml:"amount"`
	Category string `yaml:"category"`
	Channel  string `yaml:"channel"`
}

// HealthSeed lists the patients and their prescriptions.
type HealthSeed struct {
	Patients      []PatientSeed      `yaml:"patients"`
	Prescriptions []PrescriptionSeed `yaml:"prescriptions"`
}

// PatientSeed is one seeded patient.
type PatientSeed struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Age    int    `yaml:"age"`
	Gender string `yaml:"gender"`
}

// PrescriptionSeed is one seeded prescription.
type PrescriptionSeed struct {
	ID            int    `yaml:"id"`
	PatientID     int    `yaml:"patient_id"`
	Medication    string `yaml:"medication"`
	IssuedDaysAgo int    `yaml:"issued_days_ago"`
}

// WarehouseSeed lists the initial inventory. When Workbook is set the
// inventory is read from that XLSX file instead of the inline lists.
type WarehouseSeed struct {
	Workbook    string           `yaml:"workbook"`
	Electronics []ElectronicSeed `yaml:"electronics"`
	Groceries   []GrocerySeed    `yaml:"groceries"`
}

// ElectronicSeed is one seeded electronic item.
type ElectronicSeed struct {
	ID             int    `yaml:"id"`
	Name           string `yaml:"name"`
	Quantity       int    `yaml:"quantity"`
	Brand          string `yaml:"brand"`
	WarrantyMonths int    `yaml:"warranty_months"`
}

// GrocerySeed is one seeded grocery item.
type GrocerySeed struct {
	ID            int    `yaml:"id"`
	Name          string `yaml:"name"`
	Quantity      int    `yaml:"quantity"`
	ExpiresInDays int    `yaml:"expires_in_days"`
}

// =============================================================================
// SEED BUILDERS
// =============================================================================

// SeededTransaction is a built transaction and the channel name it was
// seeded with. The channel is parsed by the finance package.
type SeededTransaction struct {
	Transaction types.Transaction
	Channel     string
}

// Balance parses the initial balance.
func (s FinanceSeed) Balance() (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(s.InitialBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("initial_balance %q: %w", s.InitialBalance, err)
	}

	return balance, nil
}

// Build resolves the transactions against now.
func (s FinanceSeed) Build(now time.Time) ([]SeededTransaction, error) {
	out := make([]SeededTransaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: amount %q: %w", t.ID, t.Amount, err)
		}
		out = append(out, SeededTransaction{
			Transaction: types.Transaction{
				ID:       t.ID,
				Date:     now.AddDate(0, 0, -t.DaysAgo),
				Amount:   amount,
				Category: t.Category,
			},
			Channel: t.Channel,
		})
	}

	return out, nil
}

// Build returns the seeded patients and prescriptions resolved against now.
func (s HealthSeed) Build(now time.Time) ([]types.Patient, []types.Prescription) {
	patients := make([]types.Patient, 0, len(s.Patients))
	for _, p := range s.Patients {
		patients = append(patients, types.Patient{ID: p.ID, Name: p.Name, Age: p.Age, Gender: p.Gender})
	}

	prescriptions := make([]types.Prescription, 0, len(s.Prescriptions))
	for _, p := range s.Prescriptions {
		prescriptions = append(prescriptions, types.Prescription{
			ID:             p.ID,
			PatientID:      p.PatientID,
			MedicationName: p.Medication,
			DateIssued:     now.AddDate(0, 0, -p.IssuedDaysAgo),
		})
	}

	return patients, prescriptions
}

// Build returns fresh inventory items resolved against now. Every call
// allocates new items, so repositories seeded from it never share state.
func (s WarehouseSeed) Build(now time.Time) ([]*types.ElectronicItem, []*types.GroceryItem) {
	electronics := make([]*types.ElectronicItem, 0, len(s.Electronics))
	for _, e := range s.Electronics {
		electronics = append(electronics, types.NewElectronicItem(e.ID, e.Name, e.Quantity, e.Brand, e.WarrantyMonths))
	}

	groceries := make([]*types.GroceryItem, 0, len(s.Groceries))
	for _, g := range s.Groceries {
		groceries = append(groceries, types.NewGroceryItem(g.ID, g.Name, g.Quantity, now.AddDate(0, 0, g.ExpiresInDays)))
	}

	return electronics, groceries
}
