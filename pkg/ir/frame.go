package ir

import "time"

var (
	headerPulse = Pulse{Mark: HeaderMark, Space: HeaderSpace}
	zeroPulse   = Pulse{Mark: BitMark, Space: ZeroSpace}
	onePulse    = Pulse{Mark: BitMark, Space: OneSpace}
	stopPulse   = Pulse{Mark: StopMark, Space: StopSpace}
)

// EncodeFrame returns the pulse train transmitting b.
func EncodeFrame(b byte) []Pulse {
	var frame [FramePulses]Pulse
	encodeFrame(&frame, b)
	return frame[:]
}

func encodeFrame(frame *[FramePulses]Pulse, b byte) {
	frame[0] = headerPulse
	for i := 0; i < FrameBits; i++ {
		if b&(0x80>>uint(i)) != 0 {
			frame[i+1] = onePulse
		} else {
			frame[i+1] = zeroPulse
		}
	}
	frame[FramePulses-1] = stopPulse
}

// FrameDuration returns the air time of the frame transmitting b.
func FrameDuration(b byte) (d time.Duration) {
	for _, p := range EncodeFrame(b) {
		d += p.Duration()
	}
	return
}

// FrameEdges returns the falling edge timestamps a receiver observes when
// the frame for b starts at start. There is one edge at the start of every
// mark.
func FrameEdges(start time.Duration, b byte) []time.Duration {
	edges := make([]time.Duration, 0, FramePulses)
	ts := start
	for _, p := range EncodeFrame(b) {
		edges = append(edges, ts)
		ts += p.Duration()
	}
	return edges
}
