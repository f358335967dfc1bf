package sim

import (
	"sync"
	"time"
)

// Clock is a virtual ir.Clock. Sleep advances the time instead of
// blocking, so a transmission completes instantly with exact timing.
type Clock struct {
	now  time.Duration
	lock sync.Mutex
}

// NewClock creates a Clock starting at start.
func NewClock(start time.Duration) *Clock {
	return &Clock{now: start}
}

// Now implements ir.Clock.
func (c *Clock) Now() time.Duration {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

// Sleep implements ir.Clock.
func (c *Clock) Sleep(d time.Duration) {
	c.Advance(d)
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *Clock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.lock.Lock()
	c.now += d
	c.lock.Unlock()
}
