// Package export writes a benchmark report to files for later inspection:
// spreadsheets, daily-sum CSV files and Prometheus textfile metrics.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
)

// WriteReport picks the file format from the extension of path
func WriteReport(path string, report *analyzer.Report) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(path, report)
	case ".csv":
		return WriteDailyCSV(path, report)
	default:
		return fmt.Errorf("unsupported export format %q (use .xlsx or .csv)", filepath.Ext(path))
	}
}
