package ir

import "time"

// Carrier switches the modulated output on and off.
type Carrier interface {
	On()
	Off()
}

// Clock provides a monotonic time base and a blocking delay.
type Clock interface {
	// Now returns the time elapsed since an arbitrary fixed origin.
	Now() time.Duration
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// EdgeHandler is called on every falling edge of the received signal.
type EdgeHandler interface {
	HandleEdge(ts time.Duration)
}

// HandleEdgeFunc is func type of EdgeHandler.
type HandleEdgeFunc func(ts time.Duration)

// HandleEdge implements EdgeHandler.
func (f HandleEdgeFunc) HandleEdge(ts time.Duration) {
	f(ts)
}

// EdgeSource delivers falling edges with a timestamp taken from the same
// time base as the Clock of the peer.
type EdgeSource interface {
	// Listen registers the handler. Registering again replaces the
	// previous handler.
	Listen(EdgeHandler) error
}

// Pulse is one mark followed by one space.
type Pulse struct {
	Mark  time.Duration
	Space time.Duration
}

// Duration returns the total length of the pulse.
func (p Pulse) Duration() time.Duration {
	return p.Mark + p.Space
}
