package ir

import "time"

// Transmit timings.
const (
	HeaderMark  = 9000 * time.Microsecond
	HeaderSpace = 4500 * time.Microsecond
	BitMark     = 562 * time.Microsecond
	ZeroSpace   = 562 * time.Microsecond
	OneSpace    = 1687 * time.Microsecond
	StopMark    = 562 * time.Microsecond
	StopSpace   = 1000 * time.Microsecond

	// MinFrameInterval is the minimum time between the end of the stop mark
	// and the next header mark.
	MinFrameInterval = 16000 * time.Microsecond
	// FrameEndPullback is subtracted from the clock when a frame completes,
	// so the recorded frame end is the end of the stop mark.
	FrameEndPullback = 1000 * time.Microsecond
)

// Receive thresholds.
const (
	// NewFrameGap resets decoding when exceeded between two edges.
	NewFrameGap = 15000 * time.Microsecond
	// BitThreshold classifies a data bit: a gap above it is a 1.
	BitThreshold = 1500 * time.Microsecond
)

// CarrierFrequency is the modulation frequency of marks in Hz.
const CarrierFrequency = 38000

const (
	// FrameBits is the number of data bits transmitted per frame.
	FrameBits = 8
	// DecodeBits is the number of data bits after which the receiver
	// completes a byte.
	DecodeBits = 7
	// FramePulses is the number of mark/space pairs in a frame.
	FramePulses = FrameBits + 2
)
