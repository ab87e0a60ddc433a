package analyzer

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/penwyp/go-datetime-bench/internal/data/aggregator"
	"github.com/penwyp/go-datetime-bench/internal/data/generator"
	"github.com/penwyp/go-datetime-bench/internal/data/parsing"
	"github.com/penwyp/go-datetime-bench/internal/data/table"
	"github.com/penwyp/go-datetime-bench/internal/util"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// TrialConfig describes a batch of independent estimator runs. Trial i uses
// seed Seed+i.
type TrialConfig struct {
	Records     int
	Seed        int64
	Trials      int
	Parallelism int // 0 means runtime.NumCPU()
	Location    *time.Location
	Now         time.Time
}

// TrialResult is the estimate of one trial
type TrialResult struct {
	Trial    int      `json:"trial"`
	Seed     int64    `json:"seed"`
	Estimate Estimate `json:"estimate"`
}

// TrialSummary aggregates trial estimates. The mean estimate converges on
// the true count as trials are added, while single trials scatter around it.
type TrialSummary struct {
	Records         int           `json:"records"`
	Results         []TrialResult `json:"results"`
	MeanEstimate    float64       `json:"meanEstimate"`
	StdDevEstimate  float64       `json:"stdDevEstimate"`
	MeanErrorPct    float64       `json:"meanErrorPct"`
	MeanAbsErrorPct float64       `json:"meanAbsErrorPct"`
	Elapsed         time.Duration `json:"elapsedNs"`
}

// RunTrials runs the generate, parse, aggregate and estimate pipeline once per
// trial. Trials are untimed and independent, so they run concurrently.
func RunTrials(ctx context.Context, cfg TrialConfig) (*TrialSummary, error) {
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}
	if cfg.Records <= 0 {
		return nil, ErrNoRecords
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	limit := cfg.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	start := time.Now()
	results := make([]TrialResult, cfg.Trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < cfg.Trials; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := cfg.Seed + int64(i)
			est, err := runTrial(cfg.Records, seed, cfg.Location, now)
			if err != nil {
				return fmt.Errorf("trial %d (seed %d): %w", i, seed, err)
			}
			results[i] = TrialResult{Trial: i, Seed: seed, Estimate: est}
			util.LogDebug("trial finished", util.F("trial", i), util.F("estimated", est.EstimatedRecordCount))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	estimates := make([]float64, len(results))
	errorPcts := make([]float64, len(results))
	absErrorPcts := make([]float64, len(results))
	for i, r := range results {
		estimates[i] = r.Estimate.EstimatedRecordCount
		errorPcts[i] = r.Estimate.ErrorPct
		absErrorPcts[i] = math.Abs(r.Estimate.ErrorPct)
	}

	summary := &TrialSummary{
		Records:         cfg.Records,
		Results:         results,
		MeanEstimate:    stat.Mean(estimates, nil),
		MeanErrorPct:    stat.Mean(errorPcts, nil),
		MeanAbsErrorPct: stat.Mean(absErrorPcts, nil),
		Elapsed:         time.Since(start),
	}
	if len(estimates) > 1 {
		summary.StdDevEstimate = stat.StdDev(estimates, nil)
	}
	return summary, nil
}

func runTrial(records int, seed int64, loc *time.Location, now time.Time) (Estimate, error) {
	ds := generator.New(seed, loc, now).Generate(records)
	parsed, err := table.Reindex(table.FromRecords(ds), parsing.NewExplicitStrategy(), loc)
	if err != nil {
		return Estimate{}, err
	}
	return EstimateRecordCount(aggregator.AggregateByDay(parsed), records)
}
