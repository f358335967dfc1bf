package msgs

import (
	"time"

	"github.com/golang/protobuf/proto"
)

// ByteReceived is published for every byte read from the link.
type ByteReceived struct {
	Value       uint32 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
	Seq         uint64 `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	TimestampUs int64  `protobuf:"varint,3,opt,name=timestamp_us,json=timestampUs,proto3" json:"timestamp_us,omitempty"`
}

// NewByteReceived creates a ByteReceived.
func NewByteReceived(b byte, seq uint64, at time.Time) *ByteReceived {
	return &ByteReceived{
		Value:       uint32(b),
		Seq:         seq,
		TimestampUs: at.UnixNano() / int64(time.Microsecond),
	}
}

func (m *ByteReceived) Reset()         { *m = ByteReceived{} }
func (m *ByteReceived) String() string { return proto.CompactTextString(m) }
func (*ByteReceived) ProtoMessage()    {}

// Time returns the receive time.
func (m *ByteReceived) Time() time.Time {
	return time.Unix(0, m.TimestampUs*int64(time.Microsecond))
}

// SendByte requests a byte to be transmitted.
type SendByte struct {
	Value uint32 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *SendByte) Reset()         { *m = SendByte{} }
func (m *SendByte) String() string { return proto.CompactTextString(m) }
func (*SendByte) ProtoMessage()    {}

// Encode serializes a message.
func Encode(msg proto.Message) ([]byte, error) {
	return proto.Marshal(msg)
}

// DecodeByteReceived parses a ByteReceived.
func DecodeByteReceived(data []byte) (*ByteReceived, error) {
	var msg ByteReceived
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DecodeSendByte parses a SendByte.
func DecodeSendByte(data []byte) (*SendByte, error) {
	var msg SendByte
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
