package ir

import "time"

// DecodeEvent identifies the transition taken for an edge.
type DecodeEvent int

// Decode events.
const (
	// EventFrameStart is reported when the gap exceeds NewFrameGap.
	EventFrameStart DecodeEvent = iota
	// EventHeader is reported on the first edge after a frame start.
	EventHeader
	// EventBit is reported when a bit is shifted in.
	EventBit
)

func (e DecodeEvent) String() string {
	switch e {
	case EventFrameStart:
		return "frame-start"
	case EventHeader:
		return "header"
	case EventBit:
		return "bit"
	}
	return "unknown"
}

// DecodeResult is the outcome of a single edge.
type DecodeResult struct {
	Event DecodeEvent
	// Byte is the completed value, valid only when Ready is true.
	Byte  byte
	Ready bool
}

// DecoderState is a snapshot of the decoder accumulator.
type DecoderState struct {
	HeaderSeen    bool
	BitCount      int
	ShiftRegister byte
	PreviousEdge  time.Duration
}

// Decoder classifies falling-edge gaps and reassembles bytes.
// A byte is complete after 7 shifts, so only the 7 most significant
// transmitted bits survive, shifted right by one.
// Decoder is not safe for concurrent use.
type Decoder struct {
	headerSeen bool
	bitCount   int
	shiftReg   byte
	prevEdge   time.Duration
}

// Edge processes a falling edge observed at ts.
func (d *Decoder) Edge(ts time.Duration) (r DecodeResult) {
	gap := ts - d.prevEdge
	d.prevEdge = ts
	switch {
	case gap > NewFrameGap:
		d.headerSeen = false
		r.Event = EventFrameStart
	case !d.headerSeen:
		d.headerSeen = true
		d.shiftReg, d.bitCount = 0, 0
		r.Event = EventHeader
	default:
		d.shiftReg <<= 1
		if gap > BitThreshold {
			d.shiftReg |= 1
		}
		d.bitCount++
		r.Event = EventBit
		if d.bitCount == DecodeBits {
			r.Byte, r.Ready = d.shiftReg, true
			d.shiftReg, d.bitCount = 0, 0
		}
	}
	return
}

// State returns a snapshot of the accumulator.
func (d *Decoder) State() DecoderState {
	return DecoderState{
		HeaderSeen:    d.headerSeen,
		BitCount:      d.bitCount,
		ShiftRegister: d.shiftReg,
		PreviousEdge:  d.prevEdge,
	}
}

// Reset returns the decoder to its initial state.
func (d *Decoder) Reset() {
	*d = Decoder{}
}
