package bridge

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/irlink/pkg/bridge/msgs"
	"github.com/robotalks/irlink/pkg/ir/sim"
)

type published struct {
	topic   string
	payload []byte
}

type testBus struct {
	lock     sync.Mutex
	msgs     []published
	handlers map[string]Handler
	err      error
	subCh    chan string
}

func newTestBus() *testBus {
	return &testBus{handlers: make(map[string]Handler), subCh: make(chan string, 1)}
}

func (b *testBus) Publish(topic string, payload []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.err != nil {
		return b.err
	}
	b.msgs = append(b.msgs, published{topic: topic, payload: payload})
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func (b *testBus) Subscribe(topic string, handler Handler) (io.Closer, error) {
	b.lock.Lock()
	b.handlers[topic] = handler
	b.lock.Unlock()
	b.subCh <- topic
	return closerFunc(func() error {
		b.lock.Lock()
		delete(b.handlers, topic)
		b.lock.Unlock()
		return nil
	}), nil
}

func (b *testBus) deliver(topic string, payload []byte) {
	b.lock.Lock()
	h := b.handlers[topic]
	b.lock.Unlock()
	if h != nil {
		h(topic, payload)
	}
}

func (b *testBus) received(t *testing.T) (out []*msgs.ByteReceived) {
	b.lock.Lock()
	defer b.lock.Unlock()
	for _, m := range b.msgs {
		require.Equal(t, "dev/rx", m.topic)
		msg, err := msgs.DecodeByteReceived(m.payload)
		require.NoError(t, err)
		out = append(out, msg)
	}
	return
}

func newTestBridge(t *testing.T) (*Bridge, *sim.Loopback, *testBus) {
	link := sim.NewLoopback()
	require.NoError(t, link.Begin())
	bus := newTestBus()
	return New("dev", link, bus, bus), link, bus
}

func TestTopics(t *testing.T) {
	require.Equal(t, "dev/rx", RxTopic("dev"))
	require.Equal(t, "dev/tx", TxTopic("dev/"))
}

func TestBridgePoll(t *testing.T) {
	b, link, bus := newTestBridge(t)
	require.NoError(t, b.Poll(context.Background(), time.Unix(10, 0)))
	require.Empty(t, bus.msgs)

	for _, v := range []byte{0xAC, 0x00, 0xFF} {
		link.Send(v)
	}
	require.NoError(t, b.Poll(context.Background(), time.Unix(10, 0)))
	out := bus.received(t)
	require.Len(t, out, 3)
	for i, expect := range []uint32{0x56, 0x00, 0x7F} {
		require.Equal(t, expect, out[i].Value)
		require.Equal(t, uint64(i+1), out[i].Seq)
		require.Equal(t, int64(10000000), out[i].TimestampUs)
	}
	require.Equal(t, 0, link.Available())
	require.Equal(t, uint64(3), b.Stats().Published)
}

func TestBridgePollPublishError(t *testing.T) {
	b, link, bus := newTestBridge(t)
	bus.err = errors.New("offline")
	link.Send(0x10)
	link.Send(0x20)
	require.Equal(t, bus.err, b.Poll(context.Background(), time.Unix(1, 0)))
	require.Equal(t, uint64(0), b.Stats().Published)
	require.Equal(t, 1, link.Available())

	// the failed byte is published first, keeping its seq and timestamp
	bus.err = nil
	require.NoError(t, b.Poll(context.Background(), time.Unix(2, 0)))
	out := bus.received(t)
	require.Len(t, out, 2)
	require.Equal(t, uint32(0x08), out[0].Value)
	require.Equal(t, uint64(1), out[0].Seq)
	require.Equal(t, int64(1000000), out[0].TimestampUs)
	require.Equal(t, uint32(0x10), out[1].Value)
	require.Equal(t, uint64(2), out[1].Seq)
	require.Equal(t, int64(2000000), out[1].TimestampUs)
	require.Equal(t, uint64(2), b.Stats().Published)
	require.Equal(t, 0, link.Available())
}

func TestBridgeEnqueue(t *testing.T) {
	b, _, _ := newTestBridge(t)
	require.Equal(t, ErrValueRange, b.Enqueue(0x100))
	for i := 0; i < DefaultSendQueueSize; i++ {
		require.NoError(t, b.Enqueue(uint32(i)))
	}
	require.Equal(t, ErrSendQueueFull, b.Enqueue(1))
	require.Equal(t, uint64(2), b.Stats().Rejected)
}

func TestBridgeRun(t *testing.T) {
	b, link, bus := newTestBridge(t)
	sentCh := make(chan struct{}, 1)
	b.OnSent = func() { sentCh <- struct{}{} }
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()
	require.Equal(t, "dev/tx", <-bus.subCh)

	payload, err := msgs.Encode(&msgs.SendByte{Value: 0x42})
	require.NoError(t, err)
	bus.deliver("dev/tx", payload)
	bus.deliver("dev/tx", []byte{0x08})

	deadline := time.Now().Add(5 * time.Second)
	for link.Available() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, byte(0x21), link.Read())
	select {
	case <-sentCh:
	case <-time.After(5 * time.Second):
		t.Fatal("OnSent not called")
	}

	cancel()
	require.Equal(t, context.Canceled, <-done)
	require.Equal(t, uint64(1), b.Stats().Sent)
	bus.lock.Lock()
	require.Empty(t, bus.handlers)
	bus.lock.Unlock()
}

func TestPublishers(t *testing.T) {
	ok, failing := newTestBus(), newTestBus()
	failing.err = errors.New("down")
	err := Publishers{failing, ok}.Publish("a", []byte{1})
	require.Error(t, err)
	pubErr, isPubErr := err.(*PublishError)
	require.True(t, isPubErr)
	require.Equal(t, "a", pubErr.Topic)
	require.Len(t, ok.msgs, 1)
	require.NoError(t, Publishers{ok}.Publish("b", nil))
}

func TestSubscribers(t *testing.T) {
	b1, b2 := newTestBus(), newTestBus()
	var got []string
	c, err := Subscribers{b1, b2}.Subscribe("t", func(topic string, _ []byte) {
		got = append(got, topic)
	})
	require.NoError(t, err)
	b1.deliver("t", nil)
	b2.deliver("t", nil)
	require.Equal(t, []string{"t", "t"}, got)
	require.NoError(t, c.Close())
	require.Empty(t, b1.handlers)
	require.Empty(t, b2.handlers)
}
