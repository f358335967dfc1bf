//go:build tinygo
// +build tinygo

package hw

import (
	"machine"

	"github.com/robotalks/irlink/pkg/ir"
)

// Default pins of the reference board.
const (
	DefaultTxPin machine.Pin = 9
	DefaultRxPin machine.Pin = 2
)

// Config selects the peripherals of a Link.
type Config struct {
	PWM   PWM
	TxPin machine.Pin
	RxPin machine.Pin
}

// NewLink creates an ir.Link driving cfg.TxPin and listening on cfg.RxPin.
// The receiver is guarded by an InterruptLock.
func NewLink(cfg Config) (*ir.Link, error) {
	clock := ir.NewSystemClock()
	carrier, err := NewCarrier(cfg.PWM, cfg.TxPin)
	if err != nil {
		return nil, err
	}
	link := ir.NewLink(carrier, clock, NewEdgeSource(cfg.RxPin, clock))
	link.Receiver.Lock = &InterruptLock{}
	return link, nil
}
