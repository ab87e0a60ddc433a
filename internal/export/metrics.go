package export

import (
	"fmt"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dtbench"

// reportCollectors holds the gauges describing one benchmark run
type reportCollectors struct {
	parseSeconds *prometheus.GaugeVec
	parseFailed  *prometheus.GaugeVec
	fallbacks    *prometheus.GaugeVec
	records      prometheus.Gauge
	days         prometheus.Gauge
	estimated    prometheus.Gauge
	errorPct     prometheus.Gauge
	mismatches   prometheus.Gauge
}

func newReportCollectors(reg prometheus.Registerer) *reportCollectors {
	c := &reportCollectors{
		parseSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Time to convert the timestamp column, per strategy.",
		}, []string{"strategy"}),
		parseFailed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "parse_failed",
			Help:      "1 when the strategy failed to convert the column.",
		}, []string{"strategy"}),
		fallbacks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "parse_fallback_rows",
			Help:      "Rows that needed per-value autodetection.",
		}, []string{"strategy"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Generated record count.",
		}),
		days: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "days",
			Help:      "Distinct calendar days in the aggregate.",
		}),
		estimated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "estimated_records",
			Help:      "Record count estimated from the variance of daily sums.",
		}),
		errorPct: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "estimate_error_percent",
			Help:      "Signed percentage error of the estimate.",
		}),
		mismatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "verify_mismatched_rows",
			Help:      "Rows where strategies disagreed.",
		}),
	}
	reg.MustRegister(c.parseSeconds, c.parseFailed, c.fallbacks,
		c.records, c.days, c.estimated, c.errorPct, c.mismatches)
	return c
}

func (c *reportCollectors) observe(report *analyzer.Report) {
	for _, t := range report.Timings {
		c.parseSeconds.WithLabelValues(t.Strategy).Set(t.Elapsed.Seconds())
		failed := 0.0
		if t.Failed() {
			failed = 1
		}
		c.parseFailed.WithLabelValues(t.Strategy).Set(failed)
		c.fallbacks.WithLabelValues(t.Strategy).Set(float64(t.Fallbacks))
	}
	c.records.Set(float64(report.Records))
	c.days.Set(float64(report.Estimate.NumDays))
	c.estimated.Set(report.Estimate.EstimatedRecordCount)
	c.errorPct.Set(report.Estimate.ErrorPct)
	c.mismatches.Set(float64(report.Mismatches))
}

// WriteMetrics writes the report as a Prometheus textfile for the node
// exporter textfile collector.
func WriteMetrics(path string, report *analyzer.Report) error {
	reg := prometheus.NewRegistry()
	newReportCollectors(reg).observe(report)
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// WriteTrialMetrics writes the estimator trial summary as a Prometheus textfile
func WriteTrialMetrics(path string, summary *analyzer.TrialSummary) error {
	reg := prometheus.NewRegistry()

	trialError := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "trial_estimate_error_percent",
		Help:      "Signed percentage error of each trial estimate.",
	}, []string{"trial"})
	mean := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "trials_mean_estimated_records",
		Help:      "Mean estimate across trials.",
	})
	meanAbs := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "trials_mean_abs_error_percent",
		Help:      "Mean absolute percentage error across trials.",
	})
	reg.MustRegister(trialError, mean, meanAbs)

	for _, r := range summary.Results {
		trialError.WithLabelValues(fmt.Sprintf("%d", r.Trial)).Set(r.Estimate.ErrorPct)
	}
	mean.Set(summary.MeanEstimate)
	meanAbs.Set(summary.MeanAbsErrorPct)

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
