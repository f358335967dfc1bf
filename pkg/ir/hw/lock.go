//go:build tinygo
// +build tinygo

package hw

import "runtime/interrupt"

// InterruptLock is a sync.Locker masking interrupts while held. It keeps
// edge interrupts out of the receiver while the foreground reads it.
type InterruptLock struct {
	state interrupt.State
}

// Lock implements sync.Locker.
func (l *InterruptLock) Lock() {
	state := interrupt.Disable()
	l.state = state
}

// Unlock implements sync.Locker.
func (l *InterruptLock) Unlock() {
	interrupt.Restore(l.state)
}
