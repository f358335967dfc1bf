package sim

import (
	"time"

	"github.com/robotalks/irlink/pkg/ir"
)

// Loopback is a Link whose transmitter feeds its own receiver through a
// Channel on a virtual Clock.
type Loopback struct {
	*ir.Link
	Clock   *Clock
	Channel *Channel
}

// NewLoopback creates a Loopback on a virtual clock starting at zero.
func NewLoopback() *Loopback {
	return NewLoopbackAt(0)
}

// NewLoopbackAt creates a Loopback on a virtual clock starting at start.
func NewLoopbackAt(start time.Duration) *Loopback {
	clock := NewClock(start)
	ch := NewChannel(clock)
	return &Loopback{
		Link:    ir.NewLink(ch, clock, ch),
		Clock:   clock,
		Channel: ch,
	}
}
