package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
	"github.com/penwyp/go-datetime-bench/internal/util"
)

// SummaryFormatter prints the headline numbers without tables.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format prints the estimate and one line per strategy.
func (f *SummaryFormatter) Format(w io.Writer, report *analyzer.Report) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Datetime Parsing Benchmark Summary")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Records: %s (seed %d, timezone %s)\n",
		util.FormatNumber(report.Records), report.Seed, report.Timezone)
	if report.FirstDay != "" {
		if report.FirstDay == report.LastDay {
			fmt.Fprintf(w, "Date Range: %s\n", report.FirstDay)
		} else {
			fmt.Fprintf(w, "Date Range: %s to %s\n", report.FirstDay, report.LastDay)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Estimate:")
	fmt.Fprintf(w, "  Estimated records: %s\n", util.FormatNumber(int(report.Estimate.EstimatedRecordCount+0.5)))
	fmt.Fprintf(w, "  Error: %s\n", util.FormatPercent(report.Estimate.ErrorPct))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Parsing:")
	for _, t := range report.Timings {
		if t.Failed() {
			fmt.Fprintf(w, "  %-10s failed: %s\n", t.Strategy, t.Err)
			continue
		}
		fmt.Fprintf(w, "  %-10s %s\n", t.Strategy, util.FormatDuration(t.Elapsed))
	}
	if fastest, ok := report.Fastest(); ok {
		fmt.Fprintf(w, "  Fastest: %s\n", fastest.Strategy)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}

func (f *SummaryFormatter) FormatTrials(w io.Writer, summary *analyzer.TrialSummary) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Record Count Estimator Summary")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Records: %s\n", util.FormatNumber(summary.Records))
	fmt.Fprintf(w, "Trials: %d\n", len(summary.Results))
	fmt.Fprintf(w, "Mean estimate: %s\n", util.FormatNumber(int(summary.MeanEstimate+0.5)))
	fmt.Fprintf(w, "Mean error: %s\n", util.FormatPercent(summary.MeanErrorPct))
	fmt.Fprintf(w, "Mean absolute error: %.3f%%\n", summary.MeanAbsErrorPct)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}
