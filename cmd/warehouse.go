// =============================================================================
// recordkeeper - Warehouse Command
// =============================================================================
//
// COMMAND USAGE:
//   recordkeeper warehouse [flags]
//
// FLAGS:
//   --workbook  : XLSX workbook to seed the inventory from
//   --increase  : category:id:delta, repeatable
//   --remove    : category:id, repeatable
//   --scenario  : Run the error-handling walkthrough after the operations
//   --export    : Export the final inventory (xml, xlsx)
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/recordkeeper/internal/report"
	"github.com/ginjaninja78/recordkeeper/internal/repository"
	"github.com/ginjaninja78/recordkeeper/internal/types"
	"github.com/ginjaninja78/recordkeeper/internal/warehouse"
	"github.com/ginjaninja78/recordkeeper/internal/xlsxparser"
	"github.com/ginjaninja78/recordkeeper/internal/xlsxwriter"
	"github.com/ginjaninja78/recordkeeper/internal/xmlwriter"
)

type warehouseOptions struct {
	workbook  string
	increases []string
	removals  []string
	scenario  bool
	exports   []string
}

// stockChange is a parsed --increase or --remove value.
type stockChange struct {
	category warehouse.Category
	id       int
	delta    int
}

func newWarehouseCmd(a *app) *cobra.Command {
	opts := &warehouseOptions{}

	cmd := &cobra.Command{
		Use:   "warehouse",
		Short: "Seed the inventories, apply stock changes and print the items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWarehouse(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.workbook, "workbook", "", "XLSX workbook to seed the inventory from")
	flags.StringArrayVar(&opts.increases, "increase", nil, "Increase stock, as category:id:delta")
	flags.StringArrayVar(&opts.removals, "remove", nil, "Remove an item, as category:id")
	flags.BoolVar(&opts.scenario, "scenario", false, "Run the duplicate/missing/invalid quantity walkthrough")
	flags.StringSliceVar(&opts.exports, "export", nil, "Export the inventory as xml and/or xlsx")

	return cmd
}

func (a *app) runWarehouse(cmd *cobra.Command, opts *warehouseOptions) error {
	formats, err := parseExportFormats(opts.exports)
	if err != nil {
		return err
	}
	increases, err := parseStockChanges(opts.increases, true)
	if err != nil {
		return err
	}
	removals, err := parseStockChanges(opts.removals, false)
	if err != nil {
		return err
	}

	electronics, groceries, err := a.inventorySeed(opts.workbook)
	if err != nil {
		return err
	}

	m := warehouse.NewManager(a.lggr)
	if outcome := m.SeedData(electronics, groceries); !outcome.Success {
		return errors.New(outcome.Message)
	}

	p := a.printer(cmd)
	printInventory(p, m)

	if len(increases)+len(removals) > 0 {
		p.Blank()
		for _, c := range increases {
			p.Outcome(m.IncreaseStockIn(c.category, c.id, c.delta))
		}
		for _, c := range removals {
			p.Outcome(m.RemoveItemIn(c.category, c.id))
		}
	}

	if opts.scenario {
		runScenario(p, m)
	}

	return a.export(cmd, formats, exporter{
		kind: "inventory",
		xml: func() ([]byte, error) {
			return xmlwriter.GenerateInventory(m.Electronics().All(), m.Groceries().All())
		},
		xlsx: func(path string) error {
			return xlsxwriter.WriteInventory(path, m.Electronics().All(), m.Groceries().All())
		},
	})
}

// inventorySeed returns the initial items from the workbook given on the
// command line, the configured workbook, or the inline seed, in that order.
func (a *app) inventorySeed(workbook string) ([]*types.ElectronicItem, []*types.GroceryItem, error) {
	if workbook == "" {
		workbook = a.cfg.Warehouse.Workbook
	}
	if workbook == "" {
		electronics, groceries := a.cfg.Warehouse.Build(a.now())
		return electronics, groceries, nil
	}

	inv, err := xlsxparser.ParseInventory(workbook)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read workbook %s: %w", workbook, err)
	}
	a.lggr.Infow("inventory workbook loaded",
		"path", workbook, "electronics", len(inv.Electronics), "groceries", len(inv.Groceries))

	return inv.Electronics, inv.Groceries, nil
}

func printInventory(p *report.Printer, m *warehouse.Manager) {
	report.Items(p, "Grocery Items", m.Groceries().All())
	p.Blank()
	report.Items(p, "Electronic Items", m.Electronics().All())
}

// runScenario walks through the three repository failure kinds. The
// duplicate and invalid quantity cases call the repository directly and
// classify the error themselves.
func runScenario(p *report.Printer, m *warehouse.Manager) {
	p.Blank()
	p.Line("Attempting to add duplicate electronic item:")
	err := m.Electronics().Add(types.NewElectronicItem(1, "Tablet", 5, "Apple", 12))
	if errors.Is(err, repository.ErrDuplicateKey) {
		p.Line("[DuplicateKey] %v", err)
	}

	p.Blank()
	p.Line("Attempting to remove non-existent grocery item:")
	p.Outcome(warehouse.RemoveItemByID(m, m.Groceries(), 99))

	p.Blank()
	p.Line("Attempting to update electronic item with invalid quantity:")
	err = m.Electronics().UpdateQuantity(2, -5)
	if repository.IsKind(err, repository.KindInvalidQuantity) {
		p.Line("[InvalidQuantity] %v", err)
	}
}

// parseStockChanges parses category:id[:delta] values.
func parseStockChanges(values []string, withDelta bool) ([]stockChange, error) {
	want := 2
	usage := "category:id"
	if withDelta {
		want = 3
		usage = "category:id:delta"
	}

	changes := make([]stockChange, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ":")
		if len(parts) != want {
			return nil, fmt.Errorf("invalid value %q (want %s)", v, usage)
		}

		category, err := warehouse.ParseCategory(parts[0])
		if err != nil {
			return nil, err
		}
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid item id in %q", v)
		}
		c := stockChange{category: category, id: id}
		if withDelta {
			if c.delta, err = strconv.Atoi(parts[2]); err != nil {
				return nil, fmt.Errorf("invalid delta in %q", v)
			}
		}
		changes = append(changes, c)
	}

	return changes, nil
}
