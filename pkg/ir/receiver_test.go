package ir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func framesEdges(start time.Duration, bytes ...byte) (edges []time.Duration) {
	for _, b := range bytes {
		edges = append(edges, FrameEdges(start, b)...)
		start += FrameDuration(b) - StopSpace + MinFrameInterval
	}
	return
}

func TestReceiverBeginWithoutSource(t *testing.T) {
	r := NewReceiver(nil)
	require.Equal(t, ErrNoEdgeSource, r.Begin())
}

func TestReceiverEmpty(t *testing.T) {
	src := &testEdgeSource{}
	r := NewReceiver(src)
	require.NoError(t, r.Begin())
	require.Equal(t, 1, src.listens)
	require.Equal(t, 0, r.Available())
	require.Equal(t, byte(0), r.Read())
	b, err := r.ReadByte()
	require.Equal(t, ErrNoData, err)
	require.Equal(t, byte(0), b)
	require.Equal(t, 0, r.Available())
}

func TestReceiverReceive(t *testing.T) {
	src := &testEdgeSource{}
	r := NewReceiver(src)
	require.NoError(t, r.Begin())
	src.edges(framesEdges(us(20000), 0xAC, 0x00, 0xFF)...)
	require.Equal(t, 3, r.Available())
	require.Equal(t, byte(0x56), r.Read())
	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0), b)
	require.Equal(t, byte(0x7F), r.Read())
	require.Equal(t, 0, r.Available())

	st := r.Stats()
	require.Equal(t, uint64(3*FramePulses), st.Edges)
	require.Equal(t, uint64(3), st.Frames)
	require.Equal(t, uint64(3), st.Bytes)
	require.Equal(t, uint64(0), st.Overwritten)
}

func TestReceiverOverflow(t *testing.T) {
	src := &testEdgeSource{}
	r := NewReceiver(src)
	require.NoError(t, r.Begin())
	var in []byte
	for i := 1; i <= 9; i++ {
		in = append(in, byte(i<<1))
	}
	src.edges(framesEdges(us(20000), in...)...)
	require.Equal(t, QueueCapacity, r.Available())
	var out []byte
	for r.Available() > 0 {
		out = append(out, r.Read())
	}
	require.Equal(t, []byte{3, 4, 5, 6, 7, 8, 9}, out)
	require.Equal(t, uint64(2), r.Stats().Overwritten)
}

func TestReceiverBeginResets(t *testing.T) {
	src := &testEdgeSource{}
	r := NewReceiver(src)
	require.NoError(t, r.Begin())
	src.edges(framesEdges(us(20000), 0x10)...)
	require.Equal(t, 1, r.Available())
	require.NoError(t, r.Begin())
	require.Equal(t, 0, r.Available())
	require.Equal(t, ReceiverStats{}, r.Stats())
	require.Equal(t, 2, src.listens)
}

func TestReceiverCustomLock(t *testing.T) {
	src := &testEdgeSource{}
	l := &countingLocker{}
	r := NewReceiver(src)
	r.Lock = l
	require.NoError(t, r.Begin())
	src.edges(us(20000))
	r.Available()
	require.Equal(t, 3, l.locks)
}
