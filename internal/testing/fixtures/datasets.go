// Package fixtures provides small hand-built datasets for tests.
package fixtures

import (
	"time"

	"github.com/penwyp/go-datetime-bench/internal/core/constants"
	"github.com/penwyp/go-datetime-bench/internal/core/model"
)

// ScenarioDataset returns three records whose two-digit years land in
// 1998, 1988 and 1978.
func ScenarioDataset() model.Dataset {
	return model.Dataset{
		{Timestamp: "10/12/98 18:03", Value: 0.4967},
		{Timestamp: "11/16/88 08:49", Value: -0.1383},
		{Timestamp: "03/21/78 21:13", Value: 0.6477},
	}
}

// SingleDayDataset returns n records spread one minute apart from midnight
// of day, wrapping within the day. Values are 1, 2, ..., n.
func SingleDayDataset(day time.Time, n int) model.Dataset {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	ds := make(model.Dataset, n)
	for i := range ds {
		ts := midnight.Add(time.Duration(i%(24*60)) * time.Minute)
		ds[i] = model.Record{
			Timestamp: ts.Format(constants.TimestampLayout),
			Value:     float64(i + 1),
		}
	}
	return ds
}

// MalformedTimestamps are values the explicit layout must reject
func MalformedTimestamps() []string {
	return []string{
		"",
		"1/2/98 18:03",
		"10/12/1998 18:03",
		"10-12-98 18:03",
		"13/12/98 18:03",
		"02/30/98 18:03",
		"10/12/98 24:00",
		"10/12/98 18:60",
		"10/12/98 18:03:00",
		"aa/bb/cc dd:ee",
	}
}
