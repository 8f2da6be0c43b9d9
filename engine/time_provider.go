package engine

import (
	"sync"
	"time"
)

// TimeProvider is the wall clock seen by the driver for run timestamps
// Ticks never read it; the frame cadence is the ticker's
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider provides the real system time with monotonic clock readings
type SystemTimeProvider struct{}

// NewSystemTimeProvider creates a new monotonic time provider
func NewSystemTimeProvider() SystemTimeProvider {
	return SystemTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (SystemTimeProvider) Now() time.Time {
	return time.Now()
}

// SteppedTimeProvider is a manually advanced clock for tests
type SteppedTimeProvider struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSteppedTimeProvider creates a stepped clock at start
func NewSteppedTimeProvider(start time.Time) *SteppedTimeProvider {
	return &SteppedTimeProvider{current: start}
}

func (p *SteppedTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Advance moves the clock forward by d
func (p *SteppedTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.current.Add(d)
}
