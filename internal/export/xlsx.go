package export

import (
	"fmt"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook
const (
	SheetTimings  = "Timings"
	SheetDaily    = "Daily"
	SheetEstimate = "Estimate"
)

// WriteXLSX saves timings, daily sums and the estimate as three sheets
func WriteXLSX(path string, report *analyzer.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetTimings); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeTimingsSheet(f, report); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetDaily); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetDaily, err)
	}
	if err := writeDailySheet(f, report); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetEstimate); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetEstimate, err)
	}
	if err := writeEstimateSheet(f, report); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeTimingsSheet(f *excelize.File, report *analyzer.Report) error {
	rows := [][]interface{}{
		{"Strategy", "Description", "Rows", "Elapsed (ns)", "Layout", "Fallbacks", "Error"},
	}
	for _, t := range report.Timings {
		rows = append(rows, []interface{}{
			t.Strategy, t.Description, t.Rows, t.Elapsed.Nanoseconds(), t.Layout, t.Fallbacks, t.Err,
		})
	}
	return writeRows(f, SheetTimings, rows)
}

func writeDailySheet(f *excelize.File, report *analyzer.Report) error {
	rows := [][]interface{}{{"Day", "Sum", "Count"}}
	if report.Daily != nil {
		for _, d := range report.Daily.Days {
			rows = append(rows, []interface{}{d.Day.String(), d.Sum, d.Count})
		}
	}
	return writeRows(f, SheetDaily, rows)
}

func writeEstimateSheet(f *excelize.File, report *analyzer.Report) error {
	est := report.Estimate
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Run ID", report.RunID},
		{"Records", report.Records},
		{"Seed", report.Seed},
		{"Timezone", report.Timezone},
		{"Days", est.NumDays},
		{"Variance", est.Variance},
		{"Estimated records", est.EstimatedRecordCount},
		{"Error %", est.ErrorPct},
	}
	return writeRows(f, SheetEstimate, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
