package util

import (
	"fmt"
	"sync"
	"time"
)

// TimeProvider resolves the wall-clock location that timestamps are generated,
// parsed and bucketed in. Every stage of a run shares one provider so that the
// local-naive strings round-trip to the same instants.
type TimeProvider struct {
	location *time.Location
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	tpMu               sync.Mutex
)

// NewTimeProvider creates a provider for the named timezone ("" or "Local"
// means the process local zone).
func NewTimeProvider(timezone string) (*TimeProvider, error) {
	provider := &TimeProvider{}
	if err := provider.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return provider, nil
}

// InitializeTimeProvider initializes the global time provider with the specified timezone
func InitializeTimeProvider(timezone string) error {
	provider, err := NewTimeProvider(timezone)
	if err != nil {
		return err
	}

	tpMu.Lock()
	globalTimeProvider = provider
	tpMu.Unlock()
	return nil
}

// GetTimeProvider returns the global time provider instance.
// If not initialized, it defaults to the Local timezone.
func GetTimeProvider() *TimeProvider {
	tpMu.Lock()
	defer tpMu.Unlock()
	if globalTimeProvider == nil {
		globalTimeProvider = &TimeProvider{location: time.Local}
	}
	return globalTimeProvider
}

// SetTimezone updates the timezone for the time provider
func (tp *TimeProvider) SetTimezone(timezone string) error {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Shanghai, Europe/London", timezone, err)
		}
		loc = l
	}

	tp.mu.Lock()
	tp.location = loc
	tp.mu.Unlock()
	return nil
}

// Location returns the configured location
func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.location
}

// Now returns the current time in the configured timezone
func (tp *TimeProvider) Now() time.Time {
	return time.Now().In(tp.Location())
}

// In converts a time to the configured timezone
func (tp *TimeProvider) In(t time.Time) time.Time {
	return t.In(tp.Location())
}

// Format formats a time according to the layout in the configured timezone
func (tp *TimeProvider) Format(t time.Time, layout string) string {
	return t.In(tp.Location()).Format(layout)
}
