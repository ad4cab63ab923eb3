// =============================================================================
// recordkeeper - Configuration Module
// =============================================================================
//
// This module loads the main configuration file. The same file carries the
// global settings (output directory, currency symbol, log level) and the
// seed data for the three demos.
//
// CONFIGURATION FILE:
//   config.yaml - optional. When it is absent the built-in seed data from
//   Default() is used. Sections present in the file replace the matching
//   default section; sections left out keep their defaults.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory where exports (XML, XLSX) are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// OutputFileFormat is the naming pattern for export files.
	// Placeholders: {kind}, {timestamp}, {date}, {time}, {uuid}
	// Default: "{kind}_{timestamp}_{uuid}"
	OutputFileFormat string `yaml:"output_file_format"`

	// CurrencySymbol prefixes every displayed amount.
	// Default: "¢"
	CurrencySymbol string `yaml:"currency_symbol"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is one of debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// IMPORT SETTINGS
	// =========================================================================

	// CSV controls how transaction CSV files are read.
	CSV CSVSettings `yaml:"csv"`

	// =========================================================================
	// SEED DATA
	// =========================================================================

	Finance   FinanceSeed   `yaml:"finance"`
	Health    HealthSeed    `yaml:"health"`
	Warehouse WarehouseSeed `yaml:"warehouse"`
}

// CSVSettings contains CSV parsing settings for transaction imports.
type CSVSettings struct {
	// Delimiter is the field separator. "tab", "pipe" and "semicolon" are
	// accepted as names.
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// DateLayout is the Go time layout of the date column.
	// Default: "2006-01-02"
	DateLayout string `yaml:"date_layout"`

	// Transforms rewrite column values before a row is converted.
	// Example: map a legacy "momo" channel code to "mobile_money".
	Transforms []ColumnTransform `yaml:"transforms"`
}

// ColumnTransform lists the actions applied to one CSV column.
type ColumnTransform struct {
	// Column is the header name, matched case-insensitively.
	Column string `yaml:"column"`

	// Actions are applied in order.
	Actions []TransformAction `yaml:"actions"`
}

// TransformAction defines a single transformation action.
type TransformAction struct {
	// Type is one of:
	//   - "trim", "uppercase", "lowercase", "title_case"
	//   - "normalize_whitespace" : Collapse runs of whitespace
	//   - "prepend_string"       : Add Value to the beginning
	//   - "append_string"        : Add Value to the end
	//   - "replace"              : Replace Find with Value
	//   - "extract_digits"       : Keep digits only
	//   - "if_empty_use_default" : Use Value when the cell is empty
	//   - "if_empty_use_field"   : Use the column named by Value when empty
	//   - "lookup"               : Replace through LookupTable, keep unknowns
	//   - "lookup_with_default"  : Replace through LookupTable, Value otherwise
	Type string `yaml:"type"`

	Value       string            `yaml:"value"`
	Find        string            `yaml:"find"`
	LookupTable map[string]string `yaml:"lookup_table"`
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration file at configPath on top of Default().
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read or parsed.
func Load(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration data on top of Default().
func Parse(data []byte) (*MainConfig, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(config)

	return config, nil
}

// LoadOrDefault loads configPath if it exists. A missing file is not an
// error unless required is set; the built-in defaults are returned instead.
func LoadOrDefault(configPath string, required bool) (*MainConfig, bool, error) {
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) && !required {
			return Default(), false, nil
		}
		return nil, false, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, false, err
	}

	return config, true, nil
}

// applyDefaults sets default values for any unset scalar options.
func applyDefaults(config *MainConfig) {
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.OutputFileFormat == "" {
		config.OutputFileFormat = "{kind}_{timestamp}_{uuid}"
	}
	if config.CurrencySymbol == "" {
		config.CurrencySymbol = "¢"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.CSV.Delimiter == "" {
		config.CSV.Delimiter = ","
	}
	if config.CSV.DateLayout == "" {
		config.CSV.DateLayout = "2006-01-02"
	}
	if config.Finance.AccountNumber == "" {
		config.Finance.AccountNumber = "SA-001"
	}
	if config.Finance.AccountKind == "" {
		config.Finance.AccountKind = "savings"
	}
	if config.Finance.InitialBalance == "" {
		config.Finance.InitialBalance = "0"
	}
}

// Default returns the configuration used when no file is provided. Its
// seed data is the fixed data set the demos start from.
func Default() *MainConfig {
	config := &MainConfig{
		Finance: FinanceSeed{
			AccountNumber:  "SA-001",
			AccountKind:    "savings",
			InitialBalance: "1000",
			Transactions: []TransactionSeed{
				{ID: 1, Amount: "150", Category: "Groceries", Channel: "mobile_money"},
				{ID: 2, Amount: "200", Category: "Utilities", Channel: "bank_transfer"},
				{ID: 3, Amount: "50", Category: "Entertainment", Channel: "crypto_wallet"},
			},
		},
		Health: HealthSeed{
			Patients: []PatientSeed{
				{ID: 1, Name: "Alice Smith", Age: 30, Gender: "Female"},
				{ID: 2, Name: "Bob Johnson", Age: 45, Gender: "Male"},
				{ID: 3, Name: "Carol Lee", Age: 28, Gender: "Female"},
			},
			Prescriptions: []PrescriptionSeed{
				{ID: 1, PatientID: 1, Medication: "Amoxicillin", IssuedDaysAgo: 10},
				{ID: 2, PatientID: 1, Medication: "Ibuprofen", IssuedDaysAgo: 5},
				{ID: 3, PatientID: 2, Medication: "Metformin", IssuedDaysAgo: 7},
				{ID: 4, PatientID: 3, Medication: "Lisinopril", IssuedDaysAgo: 2},
				{ID: 5, PatientID: 2, Medication: "Atorvastatin", IssuedDaysAgo: 1},
			},
		},
		Warehouse: WarehouseSeed{
			Electronics: []ElectronicSeed{
				{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Dell", WarrantyMonths: 24},
				{ID: 2, Name: "Smartphone", Quantity: 20, Brand: "Samsung", WarrantyMonths: 12},
				{ID: 3, Name: "Headphones", Quantity: 18, Brand: "Sony", WarrantyMonths: 18},
			},
			Groceries: []GrocerySeed{
				{ID: 1, Name: "Milk", Quantity: 30, ExpiresInDays: 7},
				{ID: 2, Name: "Bread", Quantity: 25, ExpiresInDays: 3},
				{ID: 3, Name: "Eggs", Quantity: 50, ExpiresInDays: 10},
			},
		},
	}
	applyDefaults(config)

	return config
}
