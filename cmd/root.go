// =============================================================================
// recordkeeper - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every demo is a
// subcommand of it.
//
// COBRA CLI STRUCTURE:
//   root (recordkeeper)
//   ├── finance    (recordkeeper finance)
//   ├── health     (recordkeeper health)
//   ├── warehouse  (recordkeeper warehouse)
//   ├── validate   (recordkeeper validate)
//   └── version    (recordkeeper version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Loads the main configuration file (or the built-in defaults)
//   2. Applies flag and RECORDKEEPER_* environment overrides through Viper
//   3. Builds the zap logger at the configured level
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ginjaninja78/recordkeeper/internal/config"
	"github.com/ginjaninja78/recordkeeper/internal/logger"
	"github.com/ginjaninja78/recordkeeper/internal/report"
)

// =============================================================================
// OVERRIDES
// =============================================================================

// envBindings maps the override keys to the environment variables that can
// provide them. Flags with the same key take precedence.
var envBindings = map[string][]string{
	"log_level":       {"RECORDKEEPER_LOG_LEVEL"},
	"output_dir":      {"RECORDKEEPER_OUTPUT_DIR"},
	"currency_symbol": {"RECORDKEEPER_CURRENCY"},
}

// =============================================================================
// SHARED COMMAND STATE
// =============================================================================

// app is the state shared by all subcommands. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfgFile string
	verbose bool

	v    *viper.Viper
	cfg  *config.MainConfig
	lggr logger.Logger // never nil

	// now is the clock seed dates are resolved against.
	now func() time.Time

	// logOutputs overrides where log lines are written; nil means stderr.
	logOutputs []string
}

// printer returns a report Printer writing to the command's output.
func (a *app) printer(cmd *cobra.Command) *report.Printer {
	return report.NewPrinter(cmd.OutOrStdout(), a.cfg.CurrencySymbol)
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	a.v = viper.New()
	// replaced in load; commands that skip loading log nowhere
	a.lggr = logger.Nop()

	cmd := &cobra.Command{
		Use:   "recordkeeper",
		Short: "recordkeeper - finance, health and warehouse record demos",
		Long: `recordkeeper runs three small record-keeping demos over seeded
in-memory data:

  finance    applies transactions to an account through payment channels
  health     lists patients and looks up their prescriptions
  warehouse  manages keyed electronics and grocery inventories

Seed data comes from config.yaml when present and from built-in defaults
otherwise. Results can be exported as XML or XLSX.

Example Usage:
  recordkeeper finance --import transactions.csv --export xml
  recordkeeper health --patient 2
  recordkeeper warehouse --scenario
  recordkeeper validate --config ./my.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.lggr.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "config.yaml", "Path to the main configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("output-dir", "", "Directory for exported files")
	flags.String("currency", "", "Currency symbol used when printing amounts")

	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("output_dir", flags.Lookup("output-dir"))
	_ = a.v.BindPFlag("currency_symbol", flags.Lookup("currency"))

	cmd.AddCommand(
		newFinanceCmd(a),
		newHealthCmd(a),
		newWarehouseCmd(a),
		newValidateCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// load reads the configuration, applies overrides and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	required := cmd.Flags().Changed("config")
	cfg, found, err := config.LoadOrDefault(a.cfgFile, required)
	if err != nil {
		return err
	}

	if err := bindEnvs(a.v); err != nil {
		return fmt.Errorf("failed to bind environment: %w", err)
	}
	applyOverrides(a.v, cfg)
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	lggr, err := logger.Config{Level: cfg.LogLevel, OutputPaths: a.logOutputs}.New()
	if err != nil {
		return err
	}
	a.lggr = lggr

	if found {
		a.lggr.Debugw("configuration loaded", "path", a.cfgFile)
	} else {
		a.lggr.Debugw("configuration file not found, using defaults", "path", a.cfgFile)
	}

	return nil
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := append([]string{key}, envs...)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}

// applyOverrides copies every flag or environment value that was set onto
// cfg.
func applyOverrides(v *viper.Viper, cfg *config.MainConfig) {
	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("output_dir") {
		cfg.OutputDir = v.GetString("output_dir")
	}
	if v.IsSet("currency_symbol") {
		cfg.CurrencySymbol = v.GetString("currency_symbol")
	}
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
