package commands

import (
	"fmt"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
	"github.com/penwyp/go-datetime-bench/internal/core/constants"
	"github.com/penwyp/go-datetime-bench/internal/export"
	"github.com/penwyp/go-datetime-bench/internal/presentation/formatter"
	"github.com/penwyp/go-datetime-bench/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Estimate command flags
	trials      int
	parallelism int
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Repeat the record count estimate over independent datasets",
	Long: `Runs the generate, parse, aggregate and estimate pipeline once per trial with
seeds seed, seed+1, ... and reports every estimate with their mean. A single
estimate scatters around the true count; the mean converges on it.

Trials are independent and run in parallel; nothing here is timed.`,
	SilenceUsage: true,
	RunE:         runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().IntVarP(&trials, "trials", "t", constants.DefaultTrials,
		"Number of independent trials")
	estimateCmd.Flags().IntVarP(&parallelism, "parallel", "p", 0,
		"Trials run at once (0 = number of CPUs)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	f, err := formatter.New(cfg.Output)
	if err != nil {
		return err
	}

	summary, err := analyzer.RunTrials(cmd.Context(), analyzer.TrialConfig{
		Records:     cfg.Records,
		Seed:        cfg.Seed,
		Trials:      cfg.Trials,
		Parallelism: cfg.Parallelism,
		Location:    util.GetTimeProvider().Location(),
	})
	if err != nil {
		return fmt.Errorf("estimator trials failed: %w", err)
	}
	util.LogInfo("trials finished",
		util.F("trials", len(summary.Results)),
		util.F("mean_estimate", summary.MeanEstimate),
		util.F("elapsed", summary.Elapsed))

	if err := f.FormatTrials(cmd.OutOrStdout(), summary); err != nil {
		return fmt.Errorf("failed to format trials: %w", err)
	}

	if cfg.MetricsPath != "" {
		if err := export.WriteTrialMetrics(expandPath(cfg.MetricsPath), summary); err != nil {
			return err
		}
	}
	return nil
}
