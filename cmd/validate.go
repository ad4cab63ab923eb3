package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/recordkeeper/internal/validation"
	"github.com/ginjaninja78/recordkeeper/internal/xlsxparser"
	"github.com/ginjaninja78/recordkeeper/pkg/utils"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		writeLog bool
		workbook string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the seed data without running any demo",
		Long: `Check every seed section of the configuration and report all findings.
When an inventory workbook is configured, or given with --workbook, its
items are checked in place of the inline warehouse seed.
Errors make the command fail; warnings are reported only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runValidate(cmd, workbook, writeLog)
		},
	}

	cmd.Flags().StringVar(&workbook, "workbook", "", "XLSX inventory workbook to validate")
	cmd.Flags().BoolVar(&writeLog, "write-log", false, "Also write the findings to a log file in the output directory")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, workbook string, writeLog bool) error {
	if workbook == "" {
		workbook = a.cfg.Warehouse.Workbook
	}

	var inv *xlsxparser.Inventory
	if workbook != "" {
		var err error
		if inv, err = xlsxparser.ParseInventory(workbook); err != nil {
			return fmt.Errorf("failed to read workbook %s: %w", workbook, err)
		}
	}
	result := validation.ValidateConfigWithInventory(a.cfg, inv)

	p := a.printer(cmd)
	p.Line("Validated %d seed record(s): %d error(s), %d warning(s).",
		result.RecordsValidated, result.ErrorCount, result.WarningCount)
	fmt.Fprint(cmd.OutOrStdout(), validation.FormatErrors(result.Errors))
	if len(result.Errors) == 0 {
		p.Blank()
	}

	if writeLog && len(result.Errors) > 0 {
		fm := utils.NewFileManager(a.cfg.OutputDir, a.cfg.OutputFileFormat)
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}

		entries := make([]utils.ErrorLogEntry, 0, len(result.Errors))
		for _, e := range result.Errors {
			entries = append(entries, utils.ErrorLogEntry{
				Severity: e.Severity,
				Section:  e.Section,
				RecordID: e.RecordID,
				Field:    e.Field,
				Message:  e.Message,
			})
		}
		path, err := utils.WriteErrorLog(entries, fm.OutputDir, a.now())
		if err != nil {
			return err
		}
		p.Line("Validation log written to %s", path)
	}

	if !result.IsValid {
		a.lggr.Warnw("configuration invalid", "errors", result.ErrorCount, "warnings", result.WarningCount)
		return fmt.Errorf("configuration has %d validation error(s)", result.ErrorCount)
	}

	return nil
}
