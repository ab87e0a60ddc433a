package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
	"github.com/penwyp/go-datetime-bench/internal/util"
)

type TableFormatter struct{}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func (f *TableFormatter) Format(w io.Writer, report *analyzer.Report) error {
	fmt.Fprintln(w, util.FormatHeaderTitle("Datetime Parsing Benchmark"))
	fmt.Fprintf(w, "Run %s  records %s  seed %d  timezone %s\n",
		report.RunID, util.FormatNumber(report.Records), report.Seed, report.Timezone)
	fmt.Fprintln(w, util.FormatSectionSeparator())
	fmt.Fprintln(w)

	writePreview(w, report)

	fmt.Fprintln(w, util.FormatDataTitle("Parsing strategies"))
	timingGrid(report).render(w)
	if report.Verified {
		if report.Mismatches == 0 {
			fmt.Fprintln(w, "Verification: all strategies agree row by row")
		} else {
			fmt.Fprintln(w, util.FormatErrorText(fmt.Sprintf("Verification: %s rows disagree",
				util.FormatNumber(report.Mismatches))))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, util.FormatDataTitle("Record count estimate"))
	estimateGrid(report).render(w)

	return nil
}

func (f *TableFormatter) FormatTrials(w io.Writer, summary *analyzer.TrialSummary) error {
	fmt.Fprintln(w, util.FormatHeaderTitle("Record Count Estimator Trials"))
	fmt.Fprintf(w, "records %s  trials %d  elapsed %s\n",
		util.FormatNumber(summary.Records), len(summary.Results), util.FormatDuration(summary.Elapsed))
	fmt.Fprintln(w, util.FormatSectionSeparator())

	g := newGrid("Trial", "Seed", "Days", "Variance", "Estimated", "Error").alignRight(0, 1, 2, 3, 4, 5)
	for _, r := range summary.Results {
		g.add(
			fmt.Sprintf("%d", r.Trial),
			fmt.Sprintf("%d", r.Seed),
			util.FormatNumber(r.Estimate.NumDays),
			fmt.Sprintf("%.3f", r.Estimate.Variance),
			util.FormatNumber(int(r.Estimate.EstimatedRecordCount+0.5)),
			util.FormatPercent(r.Estimate.ErrorPct),
		)
	}
	g.footer = []string{
		"Mean", "", "", "",
		util.FormatNumber(int(summary.MeanEstimate + 0.5)),
		util.FormatPercent(summary.MeanErrorPct),
	}
	g.render(w)

	fmt.Fprintf(w, "Std dev of estimates: %s\n", util.FormatNumber(int(summary.StdDevEstimate+0.5)))
	fmt.Fprintf(w, "Mean absolute error:  %.3f%%\n", summary.MeanAbsErrorPct)
	return nil
}

// timingGrid lists every strategy with its elapsed time relative to the fastest
func timingGrid(report *analyzer.Report) *grid {
	fastest, ok := report.Fastest()

	g := newGrid("Strategy", "Rows", "Elapsed", "Per row", "vs fastest", "Layout", "Fallbacks", "Status").
		alignRight(1, 2, 3, 4, 6)
	for _, t := range report.Timings {
		ratio := "-"
		if ok {
			ratio = util.FormatRatio(t.Elapsed, fastest.Elapsed)
		}
		layout := t.Layout
		if layout == "" {
			layout = "-"
		}
		status := "ok"
		if t.Failed() {
			status = util.FormatErrorText(t.Err)
			ratio = "-"
		}
		g.add(
			t.Strategy,
			util.FormatNumber(t.Rows),
			util.FormatDuration(t.Elapsed),
			util.FormatPerRow(t.Elapsed, t.Rows),
			ratio,
			layout,
			util.FormatNumber(t.Fallbacks),
			status,
		)
	}
	return g
}

func estimateGrid(report *analyzer.Report) *grid {
	est := report.Estimate
	g := newGrid("Metric", "Value").alignRight(1)

	span := "-"
	if report.FirstDay != "" {
		span = report.FirstDay + " .. " + report.LastDay
	}
	g.add("Day span", span)
	g.add("Days", util.FormatNumber(est.NumDays))
	g.add("Variance of daily sums", fmt.Sprintf("%.4f", est.Variance))
	g.add("Estimated records", util.FormatNumber(int(est.EstimatedRecordCount+0.5)))
	g.add("True records", util.FormatNumber(est.TrueRecordCount))
	g.add("Error", util.FormatPercent(est.ErrorPct))
	return g
}
