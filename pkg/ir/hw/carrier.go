//go:build tinygo
// +build tinygo

package hw

import (
	"machine"

	"github.com/robotalks/irlink/pkg/ir"
)

// PWM is the subset of a TinyGo PWM peripheral used for the carrier.
type PWM interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Carrier modulates a pin at ir.CarrierFrequency with a 50% duty cycle
// while on.
type Carrier struct {
	pwm  PWM
	ch   uint8
	duty uint32
}

// NewCarrier configures pin for PWM output and returns a Carrier that is off.
func NewCarrier(pwm PWM, pin machine.Pin) (*Carrier, error) {
	if err := pwm.Configure(machine.PWMConfig{Period: uint64(1e9) / ir.CarrierFrequency}); err != nil {
		return nil, err
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	pwm.Set(ch, 0)
	return &Carrier{pwm: pwm, ch: ch, duty: pwm.Top() / 2}, nil
}

// On implements ir.Carrier.
func (c *Carrier) On() {
	c.pwm.Set(c.ch, c.duty)
}

// Off implements ir.Carrier.
func (c *Carrier) Off() {
	c.pwm.Set(c.ch, 0)
}
