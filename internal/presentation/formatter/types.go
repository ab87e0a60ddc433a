// Package formatter renders benchmark reports and estimator trial summaries.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
)

// Formatter writes a benchmark report or a trial summary to w
type Formatter interface {
	Format(w io.Writer, report *analyzer.Report) error
	FormatTrials(w io.Writer, summary *analyzer.TrialSummary) error
}

// New returns the formatter for an output name (table, json, csv, summary)
func New(output string) (Formatter, error) {
	switch strings.ToLower(output) {
	case "", "table":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
}

// ParsedTimeLayout is how parsed timestamps are shown in human-readable output
const ParsedTimeLayout = "2006-01-02 15:04:05 MST"
