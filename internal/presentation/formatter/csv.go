package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes one row per strategy followed by the estimate as metric,value rows
func (f *CSVFormatter) Format(w io.Writer, report *analyzer.Report) error {
	cw := csv.NewWriter(w)

	headers := []string{"strategy", "rows", "elapsed_ns", "ns_per_row", "layout", "fallbacks", "error"}
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, t := range report.Timings {
		perRow := ""
		if t.Rows > 0 {
			perRow = strconv.FormatInt(t.Elapsed.Nanoseconds()/int64(t.Rows), 10)
		}
		record := []string{
			t.Strategy,
			strconv.Itoa(t.Rows),
			strconv.FormatInt(t.Elapsed.Nanoseconds(), 10),
			perRow,
			t.Layout,
			strconv.Itoa(t.Fallbacks),
			t.Err,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	est := report.Estimate
	metrics := [][]string{
		{"metric", "value"},
		{"records", strconv.Itoa(report.Records)},
		{"seed", strconv.FormatInt(report.Seed, 10)},
		{"mismatches", strconv.Itoa(report.Mismatches)},
		{"num_days", strconv.Itoa(est.NumDays)},
		{"variance", formatFloat(est.Variance)},
		{"estimated_records", formatFloat(est.EstimatedRecordCount)},
		{"error_pct", formatFloat(est.ErrorPct)},
	}
	if err := cw.WriteAll(metrics); err != nil {
		return err
	}
	return cw.Error()
}

func (f *CSVFormatter) FormatTrials(w io.Writer, summary *analyzer.TrialSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"trial", "seed", "num_days", "variance", "estimated_records", "error_pct"}); err != nil {
		return err
	}
	for _, r := range summary.Results {
		record := []string{
			strconv.Itoa(r.Trial),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Estimate.NumDays),
			formatFloat(r.Estimate.Variance),
			formatFloat(r.Estimate.EstimatedRecordCount),
			formatFloat(r.Estimate.ErrorPct),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
