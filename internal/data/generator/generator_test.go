package generator

import (
	"math"
	"testing"
	"time"

	"github.com/penwyp/go-datetime-bench/internal/core/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateIsDeterministic(t *testing.T) {
	a := New(42, time.UTC, fixedNow).Generate(500)
	b := New(42, time.UTC, fixedNow).Generate(500)
	c := New(43, time.UTC, fixedNow).Generate(500)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateTimestampLayout(t *testing.T) {
	ds := New(7, time.UTC, fixedNow).Generate(1000)
	require.Len(t, ds, 1000)

	for _, r := range ds {
		require.Len(t, r.Timestamp, len("01/02/06 15:04"))
		parsed, err := time.ParseInLocation(constants.TimestampLayout, r.Timestamp, time.UTC)
		require.NoError(t, err, r.Timestamp)
		assert.False(t, parsed.After(fixedNow))
		assert.False(t, parsed.Before(time.Unix(0, 0).UTC()))
	}
}

func TestGenerateValuesLookStandardNormal(t *testing.T) {
	ds := New(1, time.UTC, fixedNow).Generate(50000)

	var sum, sumSq float64
	for _, v := range ds.Values() {
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(len(ds))
	variance := sumSq/float64(len(ds)) - mean*mean

	assert.InDelta(t, 0, mean, 0.03)
	assert.InDelta(t, 1, variance, 0.05)
	assert.False(t, math.IsNaN(variance))
}

func TestGenerateWithRange(t *testing.T) {
	from := time.Date(2023, 3, 14, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	ds := NewWithRange(3, time.UTC, from, to).Generate(200)
	for _, r := range ds {
		assert.Equal(t, "03/14/23", r.Timestamp[:8])
	}
}

func TestGenerateUsesLocation(t *testing.T) {
	east := time.FixedZone("UTC+10", 10*3600)
	from := time.Date(2020, 1, 1, 20, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	ds := NewWithRange(9, east, from, to).Generate(10)
	for _, r := range ds {
		assert.Equal(t, "01/02/20 06", r.Timestamp[:11])
	}
}

func TestGenerateZeroAndNegative(t *testing.T) {
	g := New(42, time.UTC, fixedNow)
	assert.Empty(t, g.Generate(0))
	assert.Panics(t, func() { g.Generate(-1) })
}

func TestNewWithEmptyRangePanics(t *testing.T) {
	assert.Panics(t, func() { NewWithRange(1, time.UTC, fixedNow, fixedNow) })
}
