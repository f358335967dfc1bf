// Package ir provides a single-byte infrared link.
//
// The link uses NEC-like pulse-distance timing with a simplified frame:
//
//	header mark | header space | 8 x (bit mark | bit space) | stop mark | stop space
//
// Bits are sent MSB first and a bit is 1 when the space after its mark is
// long. There is no address, no checksum and no acknowledgement. Every byte
// is an isolated frame and the transmitter keeps a minimum distance between
// frames so the receiver can detect frame boundaries by the gap alone.
//
// The receiver only looks at falling edges (start of each mark) and
// classifies the time between successive edges. It completes a byte after
// 7 data-bit edges, so only the 7 most significant bits of the transmitted
// byte are delivered, shifted right by one.
//
// Nothing in this package logs or allocates on the edge path; HandleEdge may
// run in interrupt context.
package ir
