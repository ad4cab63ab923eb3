// =============================================================================
// recordkeeper - Finance Command
// =============================================================================
//
// COMMAND USAGE:
//   recordkeeper finance [flags]
//
// FLAGS:
//   --import  : CSV file of additional transactions, processed after the
//               seeded ones
//   --export  : Export formats for the transaction history (xml, xlsx)
//
// PROCESSING PIPELINE:
//   1. Build the account and the seeded transactions from the configuration
//   2. Append the imported CSV transactions, if any
//   3. Process every transaction through its channel, printing the receipt
//      and the outcome
//   4. Print the transaction history
//   5. Export the history
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/recordkeeper/internal/csvparser"
	"github.com/ginjaninja78/recordkeeper/internal/finance"
	"github.com/ginjaninja78/recordkeeper/internal/xlsxwriter"
	"github.com/ginjaninja78/recordkeeper/internal/xmlwriter"
)

func newFinanceCmd(a *app) *cobra.Command {
	var (
		importPath string
		exports    []string
	)

	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Apply the seeded transactions to the account and print the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFinance(cmd, importPath, exports)
		},
	}

	cmd.Flags().StringVar(&importPath, "import", "", "CSV file of additional transactions")
	cmd.Flags().StringSliceVar(&exports, "export", nil, "Export the history as xml and/or xlsx")

	return cmd
}

func (a *app) runFinance(cmd *cobra.Command, importPath string, exports []string) error {
	formats, err := parseExportFormats(exports)
	if err != nil {
		return err
	}

	now := a.now()
	seed := a.cfg.Finance

	kind, err := finance.ParseAccountKind(seed.AccountKind)
	if err != nil {
		return err
	}
	balance, err := seed.Balance()
	if err != nil {
		return err
	}
	seeded, err := seed.Build(now)
	if err != nil {
		return err
	}

	scheduled := make([]finance.Scheduled, 0, len(seeded))
	for _, s := range seeded {
		channel, err := finance.ParseChannel(s.Channel)
		if err != nil {
			// kept as-is so the app reports it as a processing failure
			channel = finance.Channel(s.Channel)
		}
		scheduled = append(scheduled, finance.Scheduled{Transaction: s.Transaction, Channel: channel})
	}

	if importPath != "" {
		imported, err := csvparser.ParseTransactions(importPath, a.cfg.CSV, now)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", importPath, err)
		}
		for _, it := range imported {
			scheduled = append(scheduled, finance.Scheduled{Transaction: it.Transaction, Channel: it.Channel})
		}
		a.lggr.Infow("transactions imported", "path", importPath, "count", len(imported))
	}

	account := finance.NewAccount(seed.AccountNumber, kind, balance)
	fin := finance.NewApp(a.lggr, account, a.cfg.CurrencySymbol)

	p := a.printer(cmd)
	for _, r := range fin.Run(scheduled) {
		p.Result(r)
	}
	history := fin.History()
	p.TransactionHistory(history)

	return a.export(cmd, formats, exporter{
		kind: "history",
		xml: func() ([]byte, error) {
			return xmlwriter.GenerateHistory(account, history)
		},
		xlsx: func(path string) error {
			return xlsxwriter.WriteHistory(path, history)
		},
	})
}
