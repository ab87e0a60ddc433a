package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
	"github.com/penwyp/go-datetime-bench/internal/config"
	"github.com/penwyp/go-datetime-bench/internal/core/constants"
	"github.com/penwyp/go-datetime-bench/internal/data/parsing"
	"github.com/penwyp/go-datetime-bench/internal/export"
	"github.com/penwyp/go-datetime-bench/internal/presentation/formatter"
	"github.com/penwyp/go-datetime-bench/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug     bool
	logFile   string
	logFormat string

	// Dataset
	records  int
	seed     int64
	timezone string

	// Parsing
	strategies []string
	sampleSize int
	verify     bool

	// Output related
	outputFormat string
	previewRows  int
	noColor      bool
	exportPath   string
	metricsPath  string

	rootCmd = &cobra.Command{
		Use:   "go-datetime-bench [flags]",
		Short: "Benchmark datetime parsing strategies on synthetic time series",
		Long: `go-datetime-bench generates synthetic (timestamp, value) records, converts the
MM/DD/YY HH:MM timestamp column with several parsing strategies, times each one,
sums the values per calendar day and estimates the record count from the
variance of the daily sums.

Defaults can be set with DTBENCH_* environment variables; flags win.

Examples:
  go-datetime-bench                                   # 1,000,000 records, all strategies
  go-datetime-bench --records 100000 --timezone UTC   # Smaller run in UTC
  go-datetime-bench --strategies explicit,inferred    # Time a subset
  go-datetime-bench -o json                           # JSON report
  go-datetime-bench --export report.xlsx              # Save timings and daily sums
  go-datetime-bench --metrics-file bench.prom         # Prometheus textfile metrics`,
		SilenceUsage: true,
		RunE:         runBenchmark,
	}
)

func init() {
	// Dataset, shared with subcommands
	rootCmd.PersistentFlags().IntVarP(&records, "records", "n", constants.DefaultRecordCount,
		"Number of synthetic records to generate")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", constants.DefaultSeed,
		"Random seed for the generator")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone timestamps are generated and parsed in (e.g., Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().IntVar(&sampleSize, "sample-size", constants.InferenceSampleSize,
		"Values sampled by the inferred strategy to pick a layout")

	// Output configuration
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", config.OutputTable,
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.PersistentFlags().StringVar(&metricsPath, "metrics-file", "",
		"Write Prometheus textfile metrics to this path")

	// Benchmark only
	rootCmd.Flags().StringSliceVar(&strategies, "strategies", nil,
		"Strategies to time, in order (generic, explicit, inferred; default all)")
	rootCmd.Flags().BoolVar(&verify, "verify", true,
		"Check that all strategies produce identical instants")
	rootCmd.Flags().IntVar(&previewRows, "preview", constants.DefaultPreviewRows,
		"Rows of the raw and parsed tables to show")
	rootCmd.Flags().StringVar(&exportPath, "export", "",
		"Export timings and daily sums to a .xlsx or .csv file")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode (log to stderr)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"Log line format (text, json)")
}

// setup loads the environment configuration, applies explicitly set flags on
// top and initializes logging and the time provider.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if noColor {
		util.SetColorEnabled(false)
	}

	logLevel := cfg.LogLevel
	if debug {
		logLevel = "debug"
	}
	opts := util.LoggerOptions{
		Level:   logLevel,
		Format:  util.LogFormat(cfg.LogFormat),
		Console: debug,
	}
	if cfg.LogFile != "" {
		opts.File = expandPath(cfg.LogFile)
		if err := ensureDir(filepath.Dir(opts.File)); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	if err := util.InitLogger(opts); err != nil {
		return nil, err
	}

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}
	util.LogDebug("configuration loaded",
		util.F("records", cfg.Records),
		util.F("seed", cfg.Seed),
		util.F("timezone", cfg.Timezone),
		util.F("output", cfg.Output))
	return cfg, nil
}

// applyFlags overrides environment values with flags given on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("records") {
		cfg.Records = records
	}
	if changed("seed") {
		cfg.Seed = seed
	}
	if changed("timezone") {
		cfg.Timezone = timezone
	}
	if changed("sample-size") {
		cfg.SampleSize = sampleSize
	}
	if changed("output") {
		cfg.Output = outputFormat
	}
	if changed("metrics-file") {
		cfg.MetricsPath = metricsPath
	}
	if changed("strategies") {
		cfg.Strategies = strategies
	}
	if changed("verify") {
		cfg.Verify = verify
	}
	if changed("preview") {
		cfg.PreviewRows = previewRows
	}
	if changed("export") {
		cfg.ExportPath = exportPath
	}
	if changed("trials") {
		cfg.Trials = trials
	}
	if changed("parallel") {
		cfg.Parallelism = parallelism
	}
	if changed("log-file") {
		cfg.LogFile = logFile
	}
	if changed("log-format") {
		cfg.LogFormat = logFormat
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	registry := parsing.DefaultRegistry(cfg.SampleSize)
	selected, err := registry.Select(cfg.Strategies)
	if err != nil {
		return err
	}

	f, err := formatter.New(cfg.Output)
	if err != nil {
		return err
	}

	a := analyzer.New(&analyzer.Config{
		Records:     cfg.Records,
		Seed:        cfg.Seed,
		Location:    util.GetTimeProvider().Location(),
		Strategies:  selected,
		Verify:      cfg.Verify,
		PreviewRows: cfg.PreviewRows,
	})
	report, err := a.Run()
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	if err := f.Format(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if cfg.ExportPath != "" {
		path := expandPath(cfg.ExportPath)
		if err := export.WriteReport(path, report); err != nil {
			return err
		}
		util.LogInfo("report exported", util.F("path", path))
	}
	if cfg.MetricsPath != "" {
		path := expandPath(cfg.MetricsPath)
		if err := export.WriteMetrics(path, report); err != nil {
			return err
		}
		util.LogInfo("metrics written", util.F("path", path))
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
