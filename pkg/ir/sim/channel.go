package sim

import (
	"sync"
	"time"

	"github.com/robotalks/irlink/pkg/ir"
)

// Transition is a recorded change of the carrier.
type Transition struct {
	On bool
	At time.Duration
}

// Channel is a zero-latency IR medium. The transmit side drives it as an
// ir.Carrier and every off to on transition is delivered as a falling edge
// to the handler registered through Listen.
type Channel struct {
	Clock ir.Clock

	on          bool
	transitions []Transition
	handler     ir.EdgeHandler
	lock        sync.Mutex
}

// NewChannel creates a Channel timestamping with clock.
func NewChannel(clock ir.Clock) *Channel {
	return &Channel{Clock: clock}
}

// Listen implements ir.EdgeSource.
func (c *Channel) Listen(h ir.EdgeHandler) error {
	c.lock.Lock()
	c.handler = h
	c.lock.Unlock()
	return nil
}

// On implements ir.Carrier.
func (c *Channel) On() {
	ts := c.Clock.Now()
	c.lock.Lock()
	if c.on {
		c.lock.Unlock()
		return
	}
	c.on = true
	c.transitions = append(c.transitions, Transition{On: true, At: ts})
	h := c.handler
	c.lock.Unlock()
	if h != nil {
		h.HandleEdge(ts)
	}
}

// Off implements ir.Carrier.
func (c *Channel) Off() {
	ts := c.Clock.Now()
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.on {
		return
	}
	c.on = false
	c.transitions = append(c.transitions, Transition{On: false, At: ts})
}

// Inject delivers an edge at ts without recording a transition.
func (c *Channel) Inject(ts time.Duration) {
	c.lock.Lock()
	h := c.handler
	c.lock.Unlock()
	if h != nil {
		h.HandleEdge(ts)
	}
}

// Transitions returns a copy of the recorded transitions.
func (c *Channel) Transitions() []Transition {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]Transition(nil), c.transitions...)
}

// Pulses converts the recorded transitions into pulses. The space of the
// last pulse lasts until the current time of the clock.
func (c *Channel) Pulses() []ir.Pulse {
	now := c.Clock.Now()
	trs := c.Transitions()
	var pulses []ir.Pulse
	for i := 0; i < len(trs); i++ {
		if !trs[i].On {
			continue
		}
		p := ir.Pulse{}
		end := now
		if i+1 < len(trs) {
			end = trs[i+1].At
		}
		p.Mark = end - trs[i].At
		if i+2 < len(trs) {
			p.Space = trs[i+2].At - end
		} else if i+1 < len(trs) {
			p.Space = now - end
		}
		pulses = append(pulses, p)
	}
	return pulses
}

// Edges returns the timestamps of all recorded falling edges.
func (c *Channel) Edges() []time.Duration {
	var edges []time.Duration
	for _, tr := range c.Transitions() {
		if tr.On {
			edges = append(edges, tr.At)
		}
	}
	return edges
}

// Clear discards the recorded transitions.
func (c *Channel) Clear() {
	c.lock.Lock()
	c.transitions = nil
	c.lock.Unlock()
}
