package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeFrame(t *testing.T) {
	pulses := EncodeFrame(0xAC)
	require.Len(t, pulses, FramePulses)
	require.Equal(t, Pulse{Mark: us(9000), Space: us(4500)}, pulses[0])
	one := Pulse{Mark: us(562), Space: us(1687)}
	zero := Pulse{Mark: us(562), Space: us(562)}
	require.Equal(t, []Pulse{one, zero, one, zero, one, one, zero, zero}, pulses[1:9])
	require.Equal(t, Pulse{Mark: us(562), Space: us(1000)}, pulses[9])
}

func TestFrameDuration(t *testing.T) {
	require.Equal(t, us(13500+4*2249+4*1124+1562), FrameDuration(0xAC))
	require.Equal(t, us(13500+8*1124+1562), FrameDuration(0x00))
	require.Equal(t, us(13500+8*2249+1562), FrameDuration(0xFF))
}

func TestFrameEdges(t *testing.T) {
	edges := FrameEdges(us(1000), 0x80)
	require.Len(t, edges, FramePulses)
	require.Equal(t, us(1000), edges[0])
	require.Equal(t, us(1000+13500), edges[1])
	require.Equal(t, us(1000+13500+2249), edges[2])
	require.Equal(t, us(1000+13500+2249+7*1124), edges[9])
}
