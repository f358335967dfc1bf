package bridge

import (
	"io"
	"path"
)

// Link is the part of an IR link the bridge drives.
type Link interface {
	Send(b byte)
	ReadByte() (byte, error)
}

// Handler is the callback when a message is received.
type Handler func(topic string, payload []byte)

// Publisher delivers a payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Subscriber registers handlers on topics.
type Subscriber interface {
	Subscribe(topic string, handler Handler) (io.Closer, error)
}

// Topic suffixes under the device id.
const (
	RxSuffix = "rx"
	TxSuffix = "tx"
)

// RxTopic is where received bytes of device are published.
func RxTopic(device string) string {
	return path.Join(device, RxSuffix)
}

// TxTopic is where bytes to be sent by device are accepted.
func TxTopic(device string) string {
	return path.Join(device, TxSuffix)
}
