package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/irlink/pkg/bridge/msgs"
	"github.com/robotalks/irlink/pkg/ir"
)

// DefaultSendQueueSize is the number of pending send requests a Bridge
// accepts before rejecting more.
const DefaultSendQueueSize = 16

// Bridge connects a Link to a message bus. Bytes read from the link are
// published on the rx topic, SendByte requests from the tx topic are
// transmitted.
type Bridge struct {
	Device     string
	Link       Link
	Publisher  Publisher
	Subscriber Subscriber
	// OnSent is called after each transmitted byte, if set.
	OnSent func()

	seq     uint64
	pending *msgs.ByteReceived
	sendCh  chan byte
	stats   Stats
	lock    sync.Mutex
}

// Stats are counters maintained by a Bridge.
type Stats struct {
	Published uint64
	Sent      uint64
	Rejected  uint64
}

// New creates a Bridge.
func New(device string, link Link, pub Publisher, sub Subscriber) *Bridge {
	return &Bridge{
		Device:     device,
		Link:       link,
		Publisher:  pub,
		Subscriber: sub,
		sendCh:     make(chan byte, DefaultSendQueueSize),
	}
}

// Name implements framework.Named.
func (b *Bridge) Name() string {
	return "bridge"
}

// Poll drains the link and publishes every byte. It implements
// framework.Poller. A byte that fails to publish is kept, with its seq and
// timestamp, and published first on the next Poll.
func (b *Bridge) Poll(ctx context.Context, now time.Time) error {
	for {
		b.lock.Lock()
		msg := b.pending
		b.lock.Unlock()
		if msg == nil {
			v, err := b.Link.ReadByte()
			if err == ir.ErrNoData {
				return nil
			}
			if err != nil {
				return err
			}
			b.lock.Lock()
			b.seq++
			msg = msgs.NewByteReceived(v, b.seq, now)
			b.pending = msg
			b.lock.Unlock()
			glog.V(2).Infof("RX %#02x seq %d", v, msg.Seq)
		}
		if err := b.publish(msg); err != nil {
			return err
		}
		b.lock.Lock()
		b.pending = nil
		b.stats.Published++
		b.lock.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

func (b *Bridge) publish(msg *msgs.ByteReceived) error {
	data, err := msgs.Encode(msg)
	if err != nil {
		return err
	}
	if b.Publisher == nil {
		return nil
	}
	return b.Publisher.Publish(RxTopic(b.Device), data)
}

// HandleSendByte decodes a SendByte payload and queues it for
// transmission.
func (b *Bridge) HandleSendByte(topic string, payload []byte) {
	msg, err := msgs.DecodeSendByte(payload)
	if err == nil {
		err = b.Enqueue(msg.Value)
	}
	if err != nil {
		glog.Warningf("reject %q: %v", topic, err)
	}
}

// Enqueue queues value for transmission without blocking.
func (b *Bridge) Enqueue(value uint32) error {
	if value > 0xff {
		b.reject()
		return ErrValueRange
	}
	select {
	case b.sendCh <- byte(value):
		return nil
	default:
		b.reject()
		return ErrSendQueueFull
	}
}

func (b *Bridge) reject() {
	b.lock.Lock()
	b.stats.Rejected++
	b.lock.Unlock()
}

// Stats returns a copy of the counters.
func (b *Bridge) Stats() Stats {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.stats
}

// Run subscribes to the tx topic and transmits queued bytes until ctx is
// done. It implements framework.Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	if b.Subscriber != nil {
		topic := TxTopic(b.Device)
		sub, err := b.Subscriber.Subscribe(topic, b.HandleSendByte)
		if err != nil {
			return err
		}
		defer sub.Close()
		glog.Infof("bridge listening on %q", topic)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case v := <-b.sendCh:
			glog.V(2).Infof("TX %#02x", v)
			b.Link.Send(v)
			b.lock.Lock()
			b.stats.Sent++
			b.lock.Unlock()
			if b.OnSent != nil {
				b.OnSent()
			}
		}
	}
}
