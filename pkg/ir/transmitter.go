package ir

import (
	"sync"
	"time"
)

// Transmitter sends bytes as IR frames by driving a Carrier.
type Transmitter struct {
	Carrier Carrier
	Clock   Clock

	lastFrameEnd time.Duration
	frame        [FramePulses]Pulse
	lock         sync.Mutex
}

// NewTransmitter creates a Transmitter.
func NewTransmitter(carrier Carrier, clock Clock) *Transmitter {
	return &Transmitter{Carrier: carrier, Clock: clock}
}

// Begin turns the carrier off and resets the frame spacing.
func (t *Transmitter) Begin() {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.Carrier.Off()
	t.lastFrameEnd = 0
}

// LastFrameEnd returns the clock value recorded at the end of the last
// frame's stop mark.
func (t *Transmitter) LastFrameEnd() time.Duration {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.lastFrameEnd
}

// Send transmits one byte. It blocks until the minimum frame interval has
// passed and then for the whole frame. It can't be canceled.
func (t *Transmitter) Send(b byte) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if wait := MinFrameInterval - (t.Clock.Now() - t.lastFrameEnd); wait > 0 {
		t.Clock.Sleep(wait)
	}
	encodeFrame(&t.frame, b)
	for _, p := range t.frame {
		t.Carrier.On()
		t.Clock.Sleep(p.Mark)
		t.Carrier.Off()
		t.Clock.Sleep(p.Space)
	}
	t.lastFrameEnd = t.Clock.Now() - FrameEndPullback
}

// WriteByte implements io.ByteWriter. It never fails.
func (t *Transmitter) WriteByte(b byte) error {
	t.Send(b)
	return nil
}

// Write implements io.Writer, sending one frame per byte.
func (t *Transmitter) Write(p []byte) (int, error) {
	for _, b := range p {
		t.Send(b)
	}
	return len(p), nil
}
