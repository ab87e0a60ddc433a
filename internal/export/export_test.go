package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
	"github.com/penwyp/go-datetime-bench/internal/core/model"
	"github.com/penwyp/go-datetime-bench/internal/data/aggregator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *analyzer.Report {
	day := func(y int, m time.Month, d int) aggregator.Day {
		return aggregator.DayOf(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}
	return &analyzer.Report{
		RunID:    "run-1",
		Records:  3,
		Seed:     42,
		Timezone: "UTC",
		Timings: []model.StrategyTiming{
			{Strategy: "generic", Rows: 3, Elapsed: 1500 * time.Microsecond},
			{Strategy: "explicit", Rows: 3, Elapsed: 20 * time.Microsecond, Layout: "01/02/06 15:04"},
			{Strategy: "broken", Rows: 3, Err: "row 0: bad"},
		},
		Daily: &aggregator.DailyAggregate{Days: []aggregator.DaySum{
			{Day: day(1978, 5, 29), Sum: 1.5, Count: 1},
			{Day: day(1988, 4, 3), Sum: -0.25, Count: 1},
			{Day: day(1998, 8, 9), Sum: 0.75, Count: 1},
		}},
		Estimate: analyzer.Estimate{Variance: 0.8125, NumDays: 3, EstimatedRecordCount: 2.4375, TrueRecordCount: 3, ErrorPct: -18.75},
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteReport(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetTimings, SheetDaily, SheetEstimate}, f.GetSheetList())

	timings, err := f.GetRows(SheetTimings)
	require.NoError(t, err)
	require.Len(t, timings, 4)
	assert.Equal(t, "Strategy", timings[0][0])
	assert.Equal(t, "explicit", timings[2][0])
	assert.Equal(t, "20000", timings[2][3])

	daily, err := f.GetRows(SheetDaily)
	require.NoError(t, err)
	require.Len(t, daily, 4)
	assert.Equal(t, []string{"1978-05-29", "1.5", "1"}, daily[1])

	estimate, err := f.GetRows(SheetEstimate)
	require.NoError(t, err)
	assert.Equal(t, "run-1", estimate[1][1])
}

func TestWriteDailyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.csv")
	require.NoError(t, WriteReport(path, sampleReport()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"day", "sum", "count"},
		{"1978-05-29", "1.5", "1"},
		{"1988-04-03", "-0.25", "1"},
		{"1998-08-09", "0.75", "1"},
	}, records)
}

func TestWriteReportWithoutDaily(t *testing.T) {
	report := sampleReport()
	report.Daily = nil
	path := filepath.Join(t.TempDir(), "daily.csv")
	require.NoError(t, WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "day,sum,count\n", string(data))
}

func TestWriteReportUnsupportedExtension(t *testing.T) {
	err := WriteReport(filepath.Join(t.TempDir(), "report.txt"), sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".txt")
}

func TestWriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.prom")
	require.NoError(t, WriteMetrics(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `dtbench_parse_duration_seconds{strategy="explicit"} 2e-05`)
	assert.Contains(t, text, `dtbench_parse_failed{strategy="broken"} 1`)
	assert.Contains(t, text, `dtbench_parse_failed{strategy="generic"} 0`)
	assert.Contains(t, text, "dtbench_records 3")
	assert.Contains(t, text, "dtbench_days 3")
	assert.Contains(t, text, "dtbench_estimate_error_percent -18.75")
	assert.True(t, strings.Contains(text, "# HELP dtbench_estimated_records"))
}

func TestWriteTrialMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trials.prom")
	summary := &analyzer.TrialSummary{
		Records: 100,
		Results: []analyzer.TrialResult{
			{Trial: 0, Estimate: analyzer.Estimate{ErrorPct: 2.5}},
			{Trial: 1, Estimate: analyzer.Estimate{ErrorPct: -1.5}},
		},
		MeanEstimate:    100.5,
		MeanAbsErrorPct: 2,
	}
	require.NoError(t, WriteTrialMetrics(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `dtbench_trial_estimate_error_percent{trial="1"} -1.5`)
	assert.Contains(t, string(data), "dtbench_trials_mean_estimated_records 100.5")
}

func TestWriteMetricsBadPath(t *testing.T) {
	err := WriteMetrics(filepath.Join(t.TempDir(), "missing", "bench.prom"), sampleReport())
	assert.Error(t, err)
}
