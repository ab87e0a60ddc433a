package analyzer

import (
	"time"

	"github.com/penwyp/go-datetime-bench/internal/util"
)

// Phase is the wall-clock duration of one pipeline step
type Phase struct {
	Name    string        `json:"name"`
	Elapsed time.Duration `json:"elapsedNs"`
}

// phaseRecorder collects phase durations in the order they finish
type phaseRecorder struct {
	phases []Phase
}

// track starts timing name; the returned func stops it
func (r *phaseRecorder) track(name string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		r.phases = append(r.phases, Phase{Name: name, Elapsed: elapsed})
		util.LogDebug("phase finished", util.F("phase", name), util.F("elapsed", elapsed))
	}
}

func (r *phaseRecorder) total() time.Duration {
	var total time.Duration
	for _, p := range r.phases {
		total += p.Elapsed
	}
	return total
}
