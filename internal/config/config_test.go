package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "¢", cfg.CurrencySymbol)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "SA-001", cfg.Finance.AccountNumber)
	assert.Len(t, cfg.Finance.Transactions, 3)
	assert.Len(t, cfg.Health.Patients, 3)
	assert.Len(t, cfg.Health.Prescriptions, 5)
	assert.Len(t, cfg.Warehouse.Electronics, 3)
	assert.Len(t, cfg.Warehouse.Groceries, 3)
	assert.Equal(t, ElectronicSeed{ID: 3, Name: "Headphones", Quantity: 18, Brand: "Sony", WarrantyMonths: 18}, cfg.Warehouse.Electronics[2])

	balance, err := cfg.Finance.Balance()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(balance))
}

func TestParse_OverridesSections(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
currency_symbol: "$"
output_dir: /tmp/exports
warehouse:
  electronics:
    - id: 1
      name: Laptop
      quantity: 10
      brand: Dell
      warranty_months: 24
    - id: 2
      name: Smartphone
      quantity: 20
      brand: Samsung
      warranty_months: 12
    - id: 3
      name: Headphones
      quantity: 18
      brand: Sony
      warranty_months: 18
`))
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, "/tmp/exports", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	require.Len(t, cfg.Warehouse.Electronics, 3)
	assert.Equal(t, 18, cfg.Warehouse.Electronics[2].Quantity)

	// untouched sections keep their defaults
	assert.Len(t, cfg.Warehouse.Groceries, 3)
	assert.Len(t, cfg.Health.Patients, 3)
	assert.Equal(t, "1000", cfg.Finance.InitialBalance)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("finance: [not, a, map]"))
	require.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "config.yaml")

	cfg, found, err := LoadOrDefault(missing, false)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Default(), cfg)

	_, _, err = LoadOrDefault(missing, true)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(missing, []byte("log_level: debug\n"), 0o644))
	cfg, found, err = LoadOrDefault(missing, true)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFinanceSeed_Build(t *testing.T) {
	t.Parallel()

	seed := FinanceSeed{Transactions: []TransactionSeed{
		{ID: 1, DaysAgo: 2, Amount: "150.25", Category: "Groceries", Channel: "mobile_money"},
	}}

	txs, err := seed.Build(now)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "mobile_money", txs[0].Channel)
	assert.Equal(t, now.AddDate(0, 0, -2), txs[0].Transaction.Date)
	assert.True(t, decimal.RequireFromString("150.25").Equal(txs[0].Transaction.Amount))

	seed.Transactions[0].Amount = "lots"
	_, err = seed.Build(now)
	require.Error(t, err)

	_, err = FinanceSeed{InitialBalance: "x"}.Balance()
	require.Error(t, err)
}

func TestHealthSeed_Build(t *testing.T) {
	t.Parallel()

	patients, prescriptions := Default().Health.Build(now)

	require.Len(t, patients, 3)
	assert.Equal(t, "Bob Johnson", patients[1].Name)
	require.Len(t, prescriptions, 5)
	assert.Equal(t, "Atorvastatin", prescriptions[4].MedicationName)
	assert.Equal(t, now.AddDate(0, 0, -10), prescriptions[0].DateIssued)
}

func TestWarehouseSeed_Build(t *testing.T) {
	t.Parallel()

	seed := Default().Warehouse
	electronics, groceries := seed.Build(now)

	require.Len(t, electronics, 3)
	assert.Equal(t, "Samsung", electronics[1].Brand)
	require.Len(t, groceries, 3)
	assert.Equal(t, now.AddDate(0, 0, 3), groceries[1].ExpiryDate)

	// each build hands out fresh items
	again, _ := seed.Build(now)
	again[0].SetStockQuantity(0)
	assert.Equal(t, 10, electronics[0].Quantity)
}

func TestParse_CSVTransforms(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
csv:
  delimiter: ";"
  transforms:
    - column: channel
      actions:
        - type: lowercase
        - type: lookup
          lookup_table:
            momo: mobile_money
`))
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, "2006-01-02", cfg.CSV.DateLayout)
	require.Len(t, cfg.CSV.Transforms, 1)
	assert.Equal(t, "channel", cfg.CSV.Transforms[0].Column)
	require.Len(t, cfg.CSV.Transforms[0].Actions, 2)
	assert.Equal(t, map[string]string{"momo": "mobile_money"}, cfg.CSV.Transforms[0].Actions[1].LookupTable)
}
