package engine

import (
	"context"
	"sync"
	"time"
)

// ManualClock is a controllable clock for tests
// Sleep advances the clock instead of blocking and records the requested duration
type ManualClock struct {
	mu      sync.RWMutex
	current time.Time
	sleeps  []time.Duration

	// OnNow, if set, runs on every Now call; used to simulate work taking time
	OnNow func(c *ManualClock)
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	if m.OnNow != nil {
		m.OnNow(m)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Advance moves the clock forward by d
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Sleep records d and advances the clock by it
func (m *ManualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.current = m.current.Add(d)
	m.mu.Unlock()
	return nil
}

// Sleeps returns a copy of every duration passed to Sleep
func (m *ManualClock) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
