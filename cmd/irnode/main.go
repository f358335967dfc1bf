//go:build tinygo
// +build tinygo

package main

import (
	"machine"
	"time"

	"github.com/robotalks/irlink/pkg/ir/hw"
)

// Firmware echoing every received byte back.
func main() {
	link, err := hw.NewLink(hw.Config{
		PWM:   machine.PWM0,
		TxPin: hw.DefaultTxPin,
		RxPin: hw.DefaultRxPin,
	})
	if err != nil {
		println("ir:", err.Error())
		return
	}
	if err := link.Begin(); err != nil {
		println("ir:", err.Error())
		return
	}
	for {
		for link.Available() > 0 {
			b := link.Read()
			println("rx", b)
			link.Send(b)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
