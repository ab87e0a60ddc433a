package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatNumber renders an integer with thousands separators
func FormatNumber(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}

// FormatCompact renders large counts as 1.2K / 3.4M
func FormatCompact(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatDuration renders a benchmark timing with a unit suited to its size
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// FormatPerRow renders the average cost of one row
func FormatPerRow(d time.Duration, rows int) string {
	if rows <= 0 {
		return "-"
	}
	return FormatDuration(d/time.Duration(rows)) + "/row"
}

// FormatPercent renders a signed percentage with three decimals
func FormatPercent(pct float64) string {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%+.3f%%", pct)
}

// FormatRatio renders how many times slower a timing is than a baseline
func FormatRatio(d, baseline time.Duration) string {
	if baseline <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(d)/float64(baseline))
}
