// =============================================================================
// recordkeeper - Validation Engine
// =============================================================================
//
// This module validates the seed data in a MainConfig before it is loaded
// into the repositories. The repositories enforce their own invariants at
// insert time; this pass catches the rest up front and reports every
// problem at once instead of stopping at the first.
//
// VALIDATION STRATEGY:
//   1. Field-level: required names, non-negative numbers, parsable amounts
//   2. Record-level: channels and account kinds are known values
//   3. Section-level: duplicate ids, prescriptions pointing at patients
//
// ERROR HANDLING:
//   - Errors are collected, not returned immediately
//   - "error" findings make the result invalid
//   - "warning" findings are reported but do not block seeding
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/recordkeeper/internal/config"
	"github.com/ginjaninja78/recordkeeper/internal/csvparser"
	"github.com/ginjaninja78/recordkeeper/internal/finance"
	"github.com/ginjaninja78/recordkeeper/internal/xlsxparser"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidationError represents a single validation finding.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Section is the seed section, e.g. "warehouse.electronics".
	Section string

	// RecordID is the id of the offending record, 0 for section settings.
	RecordID int

	// Field is the name of the field that failed validation.
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s #%d, Field '%s': %s",
		strings.ToUpper(e.Severity),
		e.Section,
		e.RecordID,
		e.Field,
		e.Message,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no error-severity findings.
	IsValid bool

	// Errors contains all findings, warnings included.
	Errors []*ValidationError

	// ErrorCount is the number of error-severity findings.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int

	// RecordsValidated is the total number of seed records checked.
	RecordsValidated int
}

func (r *ValidationResult) add(severity, section string, id int, field, format string, args ...any) {
	r.Errors = append(r.Errors, &ValidationError{
		Severity: severity,
		Section:  section,
		RecordID: id,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
	if severity == SeverityError {
		r.ErrorCount++
	} else {
		r.WarningCount++
	}
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// ValidateConfig checks every seed section of cfg.
func ValidateConfig(cfg *config.MainConfig) *ValidationResult {
	return ValidateConfigWithInventory(cfg, nil)
}

// ValidateConfigWithInventory checks cfg like ValidateConfig, except that
// when inv is non-nil the warehouse is checked against the items read from
// the inventory workbook instead of the inline seed lists.
func ValidateConfigWithInventory(cfg *config.MainConfig, inv *xlsxparser.Inventory) *ValidationResult {
	result := &ValidationResult{Errors: []*ValidationError{}}

	validateCSV(cfg.CSV, result)
	validateFinance(cfg.Finance, result)
	validateHealth(cfg.Health, result)
	if inv != nil {
		validateInventory(inv, result)
	} else {
		validateWarehouse(cfg.Warehouse, result)
	}

	result.IsValid = result.ErrorCount == 0
	return result
}

// validateCSV dry-runs every transform action so a bad rule is reported
// before an import reaches it.
func validateCSV(settings config.CSVSettings, r *ValidationResult) {
	for _, rule := range settings.Transforms {
		if strings.TrimSpace(rule.Column) == "" {
			r.add(SeverityError, "csv.transforms", 0, "column", "column is required")
		}
		for _, action := range rule.Actions {
			if _, err := csvparser.ApplyAction("", action, map[string]string{}); err != nil {
				r.add(SeverityError, "csv.transforms", 0, rule.Column, "%v", err)
			}
		}
	}
}

func validateFinance(seed config.FinanceSeed, r *ValidationResult) {
	const section = "finance"

	if strings.TrimSpace(seed.AccountNumber) == "" {
		r.add(SeverityError, section, 0, "account_number", "account number is required")
	}
	if _, err := finance.ParseAccountKind(seed.AccountKind); err != nil {
		r.add(SeverityError, section, 0, "account_kind", "%v", err)
	}
	if balance, err := seed.Balance(); err != nil {
		r.add(SeverityError, section, 0, "initial_balance", "not a decimal number (value: '%s')", seed.InitialBalance)
	} else if balance.IsNegative() {
		r.add(SeverityError, section, 0, "initial_balance", "cannot be negative (value: '%s')", seed.InitialBalance)
	}

	seen := map[int]bool{}
	for _, t := range seed.Transactions {
		r.RecordsValidated++
		if seen[t.ID] {
			r.add(SeverityWarning, section+".transactions", t.ID, "id", "duplicate transaction id")
		}
		seen[t.ID] = true

		amount, err := decimal.NewFromString(t.Amount)
		switch {
		case err != nil:
			r.add(SeverityError, section+".transactions", t.ID, "amount", "not a decimal number (value: '%s')", t.Amount)
		case !amount.IsPositive():
			r.add(SeverityError, section+".transactions", t.ID, "amount", "must be positive (value: '%s')", t.Amount)
		}
		if strings.TrimSpace(t.Category) == "" {
			r.add(SeverityError, section+".transactions", t.ID, "category", "category is required")
		}
		if _, err := finance.ParseChannel(t.Channel); err != nil {
			r.add(SeverityError, section+".transactions", t.ID, "channel", "%v", err)
		}
		if t.DaysAgo < 0 {
			r.add(SeverityWarning, section+".transactions", t.ID, "days_ago", "transaction is dated in the future")
		}
	}
}

func validateHealth(seed config.HealthSeed, r *ValidationResult) {
	patients := map[int]bool{}
	for _, p := range seed.Patients {
		r.RecordsValidated++
		if patients[p.ID] {
			r.add(SeverityWarning, "health.patients", p.ID, "id", "duplicate patient id; lookups return the first")
		}
		patients[p.ID] = true

		if strings.TrimSpace(p.Name) == "" {
			r.add(SeverityError, "health.patients", p.ID, "name", "name is required")
		}
		if p.Age < 0 || p.Age > 150 {
			r.add(SeverityError, "health.patients", p.ID, "age", "age out of range (value: '%d')", p.Age)
		}
		if strings.TrimSpace(p.Gender) == "" {
			r.add(SeverityWarning, "health.patients", p.ID, "gender", "gender is empty")
		}
	}

	prescriptions := map[int]bool{}
	for _, p := range seed.Prescriptions {
		r.RecordsValidated++
		if prescriptions[p.ID] {
			r.add(SeverityWarning, "health.prescriptions", p.ID, "id", "duplicate prescription id")
		}
		prescriptions[p.ID] = true

		if strings.TrimSpace(p.Medication) == "" {
			r.add(SeverityError, "health.prescriptions", p.ID, "medication", "medication is required")
		}
		if !patients[p.PatientID] {
			r.add(SeverityError, "health.prescriptions", p.ID, "patient_id", "unknown patient (value: '%d')", p.PatientID)
		}
	}
}

func validateWarehouse(seed config.WarehouseSeed, r *ValidationResult) {
	electronics := map[int]bool{}
	for _, e := range seed.Electronics {
		r.RecordsValidated++
		if electronics[e.ID] {
			r.add(SeverityError, "warehouse.electronics", e.ID, "id", "duplicate item id")
		}
		electronics[e.ID] = true

		validateItem("warehouse.electronics", e.ID, e.Name, e.Quantity, r)
		if e.WarrantyMonths < 0 {
			r.add(SeverityError, "warehouse.electronics", e.ID, "warranty_months", "cannot be negative (value: '%d')", e.WarrantyMonths)
		}
	}

	groceries := map[int]bool{}
	for _, g := range seed.Groceries {
		r.RecordsValidated++
		if groceries[g.ID] {
			r.add(SeverityError, "warehouse.groceries", g.ID, "id", "duplicate item id")
		}
		groceries[g.ID] = true

		validateItem("warehouse.groceries", g.ID, g.Name, g.Quantity, r)
		if g.ExpiresInDays < 0 {
			r.add(SeverityWarning, "warehouse.groceries", g.ID, "expires_in_days", "item is already expired")
		}
	}
}

// validateInventory checks the items of an inventory workbook.
func validateInventory(inv *xlsxparser.Inventory, r *ValidationResult) {
	electronics := map[int]bool{}
	for _, e := range inv.Electronics {
		r.RecordsValidated++
		if electronics[e.ID] {
			r.add(SeverityError, "workbook.electronics", e.ID, "id", "duplicate item id")
		}
		electronics[e.ID] = true

		validateItem("workbook.electronics", e.ID, e.Name, e.Quantity, r)
		if e.WarrantyMonths < 0 {
			r.add(SeverityError, "workbook.electronics", e.ID, "warranty_months", "cannot be negative (value: '%d')", e.WarrantyMonths)
		}
	}

	groceries := map[int]bool{}
	for _, g := range inv.Groceries {
		r.RecordsValidated++
		if groceries[g.ID] {
			r.add(SeverityError, "workbook.groceries", g.ID, "id", "duplicate item id")
		}
		groceries[g.ID] = true

		validateItem("workbook.groceries", g.ID, g.Name, g.Quantity, r)
	}
}

func validateItem(section string, id int, name string, quantity int, r *ValidationResult) {
	if strings.TrimSpace(name) == "" {
		r.add(SeverityError, section, id, "name", "name is required")
	}
	if quantity < 0 {
		r.add(SeverityError, section, id, "quantity", "Quantity cannot be negative. (value: '%d')", quantity)
	}
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats findings for display, one per line.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d validation issue(s):\n", len(errors))
	for i, err := range errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}
