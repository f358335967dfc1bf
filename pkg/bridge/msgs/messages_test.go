package msgs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestByteReceivedWire(t *testing.T) {
	at := time.Unix(1, 2000)
	data, err := Encode(NewByteReceived(0x56, 300, at))
	require.NoError(t, err)
	// field 1 varint 0x56, field 2 varint 300, field 3 varint 1000002
	require.Equal(t, []byte{0x08, 0x56, 0x10, 0xac, 0x02, 0x18, 0xc2, 0x84, 0x3d}, data)

	msg, err := DecodeByteReceived(data)
	require.NoError(t, err)
	require.Equal(t, uint32(0x56), msg.Value)
	require.Equal(t, uint64(300), msg.Seq)
	require.Equal(t, at, msg.Time())
}

func TestSendByteWire(t *testing.T) {
	msg, err := DecodeSendByte([]byte{0x08, 0xac, 0x01})
	require.NoError(t, err)
	require.Equal(t, uint32(0xAC), msg.Value)

	data, err := Encode(&SendByte{})
	require.NoError(t, err)
	require.Empty(t, data)

	_, err = DecodeSendByte([]byte{0x08})
	require.Error(t, err)
}
