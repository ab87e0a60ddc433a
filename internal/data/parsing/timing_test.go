package parsing

import (
	"testing"
	"time"

	"github.com/penwyp/go-datetime-bench/internal/data/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchmarkValues(n int) []string {
	return generator.New(42, time.UTC, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Generate(n).Timestamps()
}

func fastest(t *testing.T, s Strategy, values []string, runs int) time.Duration {
	best := time.Duration(1<<63 - 1)
	for i := 0; i < runs; i++ {
		start := time.Now()
		_, err := s.ParseColumn(values, time.UTC)
		elapsed := time.Since(start)
		require.NoError(t, err)
		if elapsed < best {
			best = elapsed
		}
	}
	return best
}

func TestStrategyTimingOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("timing comparison skipped in short mode")
	}

	values := benchmarkValues(200000)
	explicit := fastest(t, NewExplicitStrategy(), values, 3)
	inferred := fastest(t, NewInferredStrategy(0), values, 3)
	generic := fastest(t, NewGenericStrategy(), values, 3)

	t.Logf("explicit=%s inferred=%s generic=%s", explicit, inferred, generic)
	assert.Less(t, explicit, inferred)
	assert.Less(t, inferred, generic)
}

func benchmarkStrategy(b *testing.B, s Strategy) {
	values := benchmarkValues(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.ParseColumn(values, time.UTC); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenericStrategy(b *testing.B) {
	benchmarkStrategy(b, NewGenericStrategy())
}

func BenchmarkExplicitStrategy(b *testing.B) {
	benchmarkStrategy(b, NewExplicitStrategy())
}

func BenchmarkInferredStrategy(b *testing.B) {
	benchmarkStrategy(b, NewInferredStrategy(0))
}
