package analyzer

import (
	"errors"

	"github.com/penwyp/go-datetime-bench/internal/data/aggregator"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNoRecords is returned when the ground-truth record count is not positive.
	ErrNoRecords = errors.New("true record count must be positive")

	// ErrInsufficientDays is returned when fewer than two days are present,
	// leaving the sample variance undefined.
	ErrInsufficientDays = errors.New("at least two distinct days are required")
)

// Estimate is the record count recovered from the spread of daily sums.
//
// Each daily sum adds k standard normal draws, so its variance is k. With
// roughly equal buckets, variance times the number of days approximates the
// total record count. It is a single-sample estimate and carries sampling
// error of order sqrt(2/(days-1)).
type Estimate struct {
	Variance             float64 `json:"variance"`
	NumDays              int     `json:"numDays"`
	EstimatedRecordCount float64 `json:"estimatedRecordCount"`
	TrueRecordCount      int     `json:"trueRecordCount"`
	ErrorPct             float64 `json:"errorPct"`
}

// EstimateRecordCount derives the estimate from a daily aggregate
func EstimateRecordCount(daily *aggregator.DailyAggregate, trueCount int) (Estimate, error) {
	if trueCount <= 0 {
		return Estimate{}, ErrNoRecords
	}
	if daily.NumDays() < 2 {
		return Estimate{}, ErrInsufficientDays
	}

	variance := stat.Variance(daily.Sums(), nil)
	estimated := variance * float64(daily.NumDays())

	return Estimate{
		Variance:             variance,
		NumDays:              daily.NumDays(),
		EstimatedRecordCount: estimated,
		TrueRecordCount:      trueCount,
		ErrorPct:             100 * (estimated - float64(trueCount)) / float64(trueCount),
	}, nil
}
