package analyzer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/penwyp/go-datetime-bench/internal/core/model"
	"github.com/penwyp/go-datetime-bench/internal/data/aggregator"
	"github.com/penwyp/go-datetime-bench/internal/data/generator"
	"github.com/penwyp/go-datetime-bench/internal/data/parsing"
	"github.com/penwyp/go-datetime-bench/internal/data/table"
	"github.com/penwyp/go-datetime-bench/internal/util"
)

type Config struct {
	Records     int
	Seed        int64
	Location    *time.Location
	Now         time.Time // upper bound of generated timestamps; zero means time.Now()
	Strategies  []parsing.Strategy
	Verify      bool // compare every strategy's output row by row
	PreviewRows int
}

// ParsedRow is one row of the date-time indexed table
type ParsedRow struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Report is everything a run measured
type Report struct {
	RunID         string                     `json:"runId"`
	StartedAt     time.Time                  `json:"startedAt"`
	Records       int                        `json:"records"`
	Seed          int64                      `json:"seed"`
	Timezone      string                     `json:"timezone"`
	Timings       []model.StrategyTiming     `json:"timings"`
	Verified      bool                       `json:"verified"`
	Mismatches    int                        `json:"mismatches"`
	Daily         *aggregator.DailyAggregate `json:"-"`
	FirstDay      string                     `json:"firstDay,omitempty"`
	LastDay       string                     `json:"lastDay,omitempty"`
	Estimate      Estimate                   `json:"estimate"`
	RawPreview    []model.Record             `json:"rawPreview,omitempty"`
	ParsedPreview []ParsedRow                `json:"parsedPreview,omitempty"`
	Phases        []Phase                    `json:"phases"`
}

// Fastest returns the quickest successful timing, or false if none succeeded
func (r *Report) Fastest() (model.StrategyTiming, bool) {
	var best model.StrategyTiming
	found := false
	for _, t := range r.Timings {
		if t.Failed() {
			continue
		}
		if !found || t.Elapsed < best.Elapsed {
			best = t
			found = true
		}
	}
	return best, found
}

type Analyzer struct {
	config *Config
}

func New(config *Config) *Analyzer {
	if config.Location == nil {
		config.Location = time.Local
	}
	if len(config.Strategies) == 0 {
		config.Strategies = parsing.DefaultRegistry(0).List()
	}
	return &Analyzer{config: config}
}

// Run generates the dataset, times every strategy on its own copy of the
// string-indexed table, aggregates by day and estimates the record count.
func (a *Analyzer) Run() (*Report, error) {
	cfg := a.config
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Records:   cfg.Records,
		Seed:      cfg.Seed,
		Timezone:  cfg.Location.String(),
	}
	log := util.GetLogger()
	if log != nil {
		log = log.With(util.F("run", report.RunID))
	}
	logInfo(log, "starting benchmark", util.F("records", cfg.Records), util.F("seed", cfg.Seed))

	phases := &phaseRecorder{}

	// Phase 1: generate
	done := phases.track("generate")
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	dataset := generator.New(cfg.Seed, cfg.Location, now).Generate(cfg.Records)
	done()

	// Phase 2: build the string-indexed table
	done = phases.track("build")
	raw := table.FromRecords(dataset)
	done()
	report.RawPreview = dataset[:min(cfg.PreviewRows, len(dataset))]

	// Phase 3: time each strategy on an isolated copy
	var reference *table.Table[time.Time]
	parsedTables := make([]*table.Table[time.Time], 0, len(cfg.Strategies))
	for _, s := range cfg.Strategies {
		work := raw.Copy()
		runtime.GC()

		start := time.Now()
		parsed, err := table.Reindex(work, s, cfg.Location)
		elapsed := time.Since(start)

		timing := model.StrategyTiming{
			Strategy:    s.Name(),
			Description: s.Description(),
			Rows:        work.Len(),
			Elapsed:     elapsed,
		}
		if err != nil {
			timing.Err = err.Error()
			logWarn(log, "strategy failed", util.F("strategy", s.Name()), util.F("error", err))
		} else {
			if reference == nil {
				reference = parsed
			}
			parsedTables = append(parsedTables, parsed)
			logInfo(log, "strategy finished", util.F("strategy", s.Name()), util.F("elapsed", elapsed))
		}
		if ins, ok := s.(parsing.Inspector); ok {
			inspection := ins.Inspect(work.Index())
			timing.Layout = inspection.Layout
			timing.Fallbacks = inspection.Fallbacks
		}
		report.Timings = append(report.Timings, timing)
		phases.phases = append(phases.phases, Phase{Name: "parse:" + s.Name(), Elapsed: elapsed})
	}

	if reference == nil {
		return report, fmt.Errorf("all %d parsing strategies failed", len(cfg.Strategies))
	}

	if cfg.Verify {
		done = phases.track("verify")
		report.Mismatches = countMismatches(reference, parsedTables[1:])
		report.Verified = true
		done()
		if report.Mismatches > 0 {
			logWarn(log, "strategies disagree", util.F("rows", report.Mismatches))
		}
	}

	head := reference.Head(cfg.PreviewRows)
	for i := 0; i < head.Len(); i++ {
		ts, v := head.Row(i)
		report.ParsedPreview = append(report.ParsedPreview, ParsedRow{Timestamp: ts, Value: v})
	}

	// Phase 4: aggregate by day
	done = phases.track("aggregate")
	daily := aggregator.AggregateByDay(reference)
	done()
	report.Daily = daily
	if first, last, ok := daily.Span(); ok {
		report.FirstDay = first.String()
		report.LastDay = last.String()
	}

	// Phase 5: estimate
	done = phases.track("estimate")
	estimate, err := EstimateRecordCount(daily, cfg.Records)
	done()
	report.Phases = phases.phases
	if err != nil {
		return report, fmt.Errorf("failed to estimate record count: %w", err)
	}
	report.Estimate = estimate

	logInfo(log, "benchmark finished",
		util.F("days", estimate.NumDays),
		util.F("estimated", estimate.EstimatedRecordCount),
		util.F("error_pct", estimate.ErrorPct),
		util.F("total", phases.total()))

	return report, nil
}

// countMismatches counts rows where any table disagrees with the reference
func countMismatches(reference *table.Table[time.Time], others []*table.Table[time.Time]) int {
	mismatches := 0
	want := reference.Index()
	for i := range want {
		for _, other := range others {
			if !other.Index()[i].Equal(want[i]) {
				mismatches++
				break
			}
		}
	}
	return mismatches
}

func logInfo(log util.LoggerInterface, msg string, fields ...util.Field) {
	if log != nil {
		log.Info(msg, fields...)
	}
}

func logWarn(log util.LoggerInterface, msg string, fields ...util.Field) {
	if log != nil {
		log.Warn(msg, fields...)
	}
}
