package engine

import (
	"sync"
	"time"
)

// ManualClock only moves when told to
// Paired with ManualScheduler it gives frames an exact dt, Advance returns the stamp to pass to Fire
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

var _ Clock = (*ManualClock)(nil)

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set jumps to t, backwards jumps are allowed and show up as a negative dt to the driver
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock by d and returns the new time
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
