package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/recordkeeper/internal/config"
	"github.com/ginjaninja78/recordkeeper/internal/types"
	"github.com/ginjaninja78/recordkeeper/internal/xlsxparser"
)

func TestValidateConfig_Default(t *testing.T) {
	t.Parallel()

	result := ValidateConfig(config.Default())

	assert.True(t, result.IsValid, FormatErrors(result.Errors))
	assert.Empty(t, result.Errors)
	assert.Equal(t, 3+3+5+3+3, result.RecordsValidated)
}

func findField(result *ValidationResult, section, field string) *ValidationError {
	for _, e := range result.Errors {
		if e.Section == section && e.Field == field {
			return e
		}
	}
	return nil
}

func TestValidateConfig_Findings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		mutate           func(cfg *config.MainConfig)
		expectedSection  string
		expectedField    string
		expectedSeverity string
	}{
		{
			name:             "negative balance",
			mutate:           func(cfg *config.MainConfig) { cfg.Finance.InitialBalance = "-1" },
			expectedSection:  "finance",
			expectedField:    "initial_balance",
			expectedSeverity: SeverityError,
		},
		{
			name:             "unknown account kind",
			mutate:           func(cfg *config.MainConfig) { cfg.Finance.AccountKind = "overdraft" },
			expectedSection:  "finance",
			expectedField:    "account_kind",
			expectedSeverity: SeverityError,
		},
		{
			name:             "zero amount",
			mutate:           func(cfg *config.MainConfig) { cfg.Finance.Transactions[0].Amount = "0" },
			expectedSection:  "finance.transactions",
			expectedField:    "amount",
			expectedSeverity: SeverityError,
		},
		{
			name:             "unknown channel",
			mutate:           func(cfg *config.MainConfig) { cfg.Finance.Transactions[1].Channel = "cheque" },
			expectedSection:  "finance.transactions",
			expectedField:    "channel",
			expectedSeverity: SeverityError,
		},
		{
			name: "prescription for unknown patient",
			mutate: func(cfg *config.MainConfig) {
				cfg.Health.Prescriptions[0].PatientID = 42
			},
			expectedSection:  "health.prescriptions",
			expectedField:    "patient_id",
			expectedSeverity: SeverityError,
		},
		{
			name: "duplicate patient is a warning",
			mutate: func(cfg *config.MainConfig) {
				cfg.Health.Patients[1].ID = 1
				cfg.Health.Prescriptions = nil
			},
			expectedSection:  "health.patients",
			expectedField:    "id",
			expectedSeverity: SeverityWarning,
		},
		{
			name:             "duplicate electronic item",
			mutate:           func(cfg *config.MainConfig) { cfg.Warehouse.Electronics[2].ID = 1 },
			expectedSection:  "warehouse.electronics",
			expectedField:    "id",
			expectedSeverity: SeverityError,
		},
		{
			name: "unknown csv transform",
			mutate: func(cfg *config.MainConfig) {
				cfg.CSV.Transforms = []config.ColumnTransform{
					{Column: "category", Actions: []config.TransformAction{{Type: "shout"}}},
				}
			},
			expectedSection:  "csv.transforms",
			expectedField:    "category",
			expectedSeverity: SeverityError,
		},
		{
			name:             "negative grocery quantity",
			mutate:           func(cfg *config.MainConfig) { cfg.Warehouse.Groceries[0].Quantity = -3 },
			expectedSection:  "warehouse.groceries",
			expectedField:    "quantity",
			expectedSeverity: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(cfg)

			result := ValidateConfig(cfg)
			finding := findField(result, tt.expectedSection, tt.expectedField)
			require.NotNil(t, finding, FormatErrors(result.Errors))
			assert.Equal(t, tt.expectedSeverity, finding.Severity)
			assert.Equal(t, tt.expectedSeverity != SeverityError, result.IsValid)
		})
	}
}

func TestValidateConfigWithInventory(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	// inline seed is ignored when a workbook inventory is given
	cfg.Warehouse.Electronics[0].Quantity = -1

	inv := &xlsxparser.Inventory{
		Electronics: []*types.ElectronicItem{
			types.NewElectronicItem(1, "Laptop", -40, "Dell", 24),
			types.NewElectronicItem(1, "Tablet", 5, "Apple", 12),
		},
		Groceries: []*types.GroceryItem{},
	}

	result := ValidateConfigWithInventory(cfg, inv)
	assert.False(t, result.IsValid)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 3+5+3+2, result.RecordsValidated)

	quantity := findField(result, "workbook.electronics", "quantity")
	require.NotNil(t, quantity)
	assert.Equal(t, 1, quantity.RecordID)
	assert.Contains(t, quantity.Message, "Quantity cannot be negative.")
	require.NotNil(t, findField(result, "workbook.electronics", "id"))
	assert.Nil(t, findField(result, "warehouse.electronics", "quantity"))
}

func TestFormatErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No validation errors.", FormatErrors(nil))

	out := FormatErrors([]*ValidationError{{
		Severity: SeverityError,
		Section:  "warehouse.groceries",
		RecordID: 1,
		Field:    "quantity",
		Message:  "Quantity cannot be negative. (value: '-3')",
	}})
	assert.Contains(t, out, "Found 1 validation issue(s):")
	assert.Contains(t, out, "1. [ERROR] warehouse.groceries #1, Field 'quantity': Quantity cannot be negative. (value: '-3')")
}
