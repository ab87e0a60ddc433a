package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
)

// WriteDailyCSV saves the daily aggregate as day,sum,count rows
func WriteDailyCSV(path string, report *analyzer.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"day", "sum", "count"}); err != nil {
		return err
	}
	if report.Daily != nil {
		for _, d := range report.Daily.Days {
			record := []string{
				d.Day.String(),
				strconv.FormatFloat(d.Sum, 'f', -1, 64),
				strconv.Itoa(d.Count),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}
