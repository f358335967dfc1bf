//go:build tinygo
// +build tinygo

package hw

import (
	"machine"

	"github.com/robotalks/irlink/pkg/ir"
)

// EdgeSource reports falling edges of a demodulating receiver output.
type EdgeSource struct {
	Pin   machine.Pin
	Clock ir.Clock
}

// NewEdgeSource configures pin as a pulled-up input.
func NewEdgeSource(pin machine.Pin, clock ir.Clock) *EdgeSource {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &EdgeSource{Pin: pin, Clock: clock}
}

// Listen implements ir.EdgeSource. The handler runs in interrupt context.
func (s *EdgeSource) Listen(h ir.EdgeHandler) error {
	clock := s.Clock
	return s.Pin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		h.HandleEdge(clock.Now())
	})
}
