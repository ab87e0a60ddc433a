package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-datetime-bench/internal/analyzer"
	"github.com/penwyp/go-datetime-bench/internal/util"
)

// writePreview shows the head of the string-indexed and date-indexed tables
// side by side, so the conversion can be checked by eye.
func writePreview(w io.Writer, report *analyzer.Report) {
	if len(report.RawPreview) == 0 {
		return
	}

	fmt.Fprintln(w, util.FormatDataTitle(fmt.Sprintf("Dataset preview (first %d rows)", len(report.RawPreview))))
	g := newGrid("#", "Raw timestamp", "Parsed timestamp", "Value").alignRight(0, 3)
	for i, raw := range report.RawPreview {
		parsed := "-"
		if i < len(report.ParsedPreview) {
			parsed = report.ParsedPreview[i].Timestamp.Format(ParsedTimeLayout)
		}
		g.add(fmt.Sprintf("%d", i), raw.Timestamp, parsed, formatValue(raw.Value))
	}
	g.render(w)
	fmt.Fprintln(w)
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
