package aggregator

import (
	"sort"
	"time"

	"github.com/penwyp/go-datetime-bench/internal/core/constants"
	"github.com/penwyp/go-datetime-bench/internal/data/table"
)

// Day is a calendar date with no time of day or zone attached
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the wall-clock date of t in its own location
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// String renders the day as YYYY-MM-DD
func (d Day) String() string {
	return d.Time(time.UTC).Format(constants.DayLayout)
}

// Time returns midnight of the day in loc
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is earlier than other
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DaySum holds the total and row count of one calendar day
type DaySum struct {
	Day   Day     `json:"day"`
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// DailyAggregate is the per-day sum of the value column. Only days that
// have rows are present.
type DailyAggregate struct {
	Days []DaySum `json:"days"`
}

// AggregateByDay groups rows by calendar day and sums their values.
// Days come out in ascending order; empty days are not filled in.
func AggregateByDay(t *table.Table[time.Time]) *DailyAggregate {
	index := t.Index()
	values := t.Values()

	positions := make(map[Day]int)
	days := make([]DaySum, 0)
	for i, ts := range index {
		day := DayOf(ts)
		pos, ok := positions[day]
		if !ok {
			pos = len(days)
			positions[day] = pos
			days = append(days, DaySum{Day: day})
		}
		days[pos].Sum += values[i]
		days[pos].Count++
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})

	return &DailyAggregate{Days: days}
}

// NumDays returns the number of distinct days
func (a *DailyAggregate) NumDays() int {
	return len(a.Days)
}

// Sums returns the per-day sums in day order
func (a *DailyAggregate) Sums() []float64 {
	out := make([]float64, len(a.Days))
	for i, d := range a.Days {
		out[i] = d.Sum
	}
	return out
}

// Total adds up all daily sums
func (a *DailyAggregate) Total() float64 {
	var total float64
	for _, d := range a.Days {
		total += d.Sum
	}
	return total
}

// RecordCount returns the number of rows aggregated
func (a *DailyAggregate) RecordCount() int {
	n := 0
	for _, d := range a.Days {
		n += d.Count
	}
	return n
}

// Span returns the first and last day, or false when empty
func (a *DailyAggregate) Span() (first, last Day, ok bool) {
	if len(a.Days) == 0 {
		return Day{}, Day{}, false
	}
	return a.Days[0].Day, a.Days[len(a.Days)-1].Day, true
}
