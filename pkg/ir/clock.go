package ir

import "time"

// SystemClock is a Clock based on the runtime monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a SystemClock whose zero is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now implements Clock.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// Sleep implements Clock.
func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
