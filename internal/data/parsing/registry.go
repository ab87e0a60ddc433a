package parsing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/penwyp/go-datetime-bench/internal/util"
)

// Registry holds the available strategies in registration order
type Registry struct {
	strategies []Strategy
	mu         sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{strategies: make([]Strategy, 0)}
}

// DefaultRegistry registers the three built-in strategies in benchmark order
func DefaultRegistry(sampleSize int) *Registry {
	r := NewRegistry()
	r.Register(NewGenericStrategy())
	r.Register(NewExplicitStrategy())
	r.Register(NewInferredStrategy(sampleSize))
	return r
}

// Register adds a strategy, replacing any strategy with the same name in place
func (r *Registry) Register(strategy Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.strategies {
		if existing.Name() == strategy.Name() {
			r.strategies[i] = strategy
			util.LogDebug("replaced parsing strategy", util.F("strategy", strategy.Name()))
			return
		}
	}
	r.strategies = append(r.strategies, strategy)
}

// Get returns a strategy by name
func (r *Registry) Get(name string) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.strategies {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// List returns a copy of the registered strategies
func (r *Registry) List() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)
	return out
}

// Names returns the registered strategy names in order
func (r *Registry) Names() []string {
	list := r.List()
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name()
	}
	return names
}

// Select resolves names to strategies, keeping the caller's order. An empty
// selection means every registered strategy.
func (r *Registry) Select(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return r.List(), nil
	}

	selected := make([]Strategy, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			continue
		}
		s, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(r.Names(), ", "))
		}
		seen[name] = true
		selected = append(selected, s)
	}
	return selected, nil
}

// Summary returns a human-readable listing of the registered strategies
func (r *Registry) Summary() string {
	var b strings.Builder
	list := r.List()
	fmt.Fprintf(&b, "%d strategies registered\n", len(list))
	for _, s := range list {
		fmt.Fprintf(&b, "  - %s: %s\n", s.Name(), s.Description())
	}
	return b.String()
}
