package ir

import (
	"sync"
	"time"
)

// ReceiverStats are counters maintained by a Receiver.
type ReceiverStats struct {
	Edges       uint64
	Frames      uint64
	Bytes       uint64
	Overwritten uint64
}

// Receiver decodes edges from an EdgeSource into a Queue.
type Receiver struct {
	Source EdgeSource
	// Lock guards the decoder and the queue between the edge context and
	// the foreground. It defaults to a sync.Mutex. On targets where edges
	// are delivered from an interrupt, use a lock that masks the interrupt.
	Lock sync.Locker

	decoder Decoder
	queue   Queue
	stats   ReceiverStats
	mutex   sync.Mutex
}

// NewReceiver creates a Receiver.
func NewReceiver(src EdgeSource) *Receiver {
	return &Receiver{Source: src}
}

func (r *Receiver) locker() sync.Locker {
	if r.Lock != nil {
		return r.Lock
	}
	return &r.mutex
}

// Begin resets the decoder and the queue and starts listening for edges.
// It can be called again to restart the receiver.
func (r *Receiver) Begin() error {
	if r.Source == nil {
		return ErrNoEdgeSource
	}
	l := r.locker()
	l.Lock()
	r.decoder.Reset()
	r.queue.Reset()
	r.stats = ReceiverStats{}
	l.Unlock()
	return r.Source.Listen(r)
}

// HandleEdge implements EdgeHandler.
func (r *Receiver) HandleEdge(ts time.Duration) {
	l := r.locker()
	l.Lock()
	r.stats.Edges++
	res := r.decoder.Edge(ts)
	switch {
	case res.Event == EventFrameStart:
		r.stats.Frames++
	case res.Ready:
		r.stats.Bytes++
		if r.queue.Push(res.Byte) {
			r.stats.Overwritten++
		}
	}
	l.Unlock()
}

// Available returns the number of unread bytes.
func (r *Receiver) Available() int {
	l := r.locker()
	l.Lock()
	defer l.Unlock()
	return r.queue.Len()
}

// Read returns the oldest unread byte, or 0 when nothing is available.
func (r *Receiver) Read() byte {
	l := r.locker()
	l.Lock()
	defer l.Unlock()
	return r.queue.Read()
}

// ReadByte implements io.ByteReader. It returns ErrNoData when nothing is
// available.
func (r *Receiver) ReadByte() (byte, error) {
	l := r.locker()
	l.Lock()
	defer l.Unlock()
	if r.queue.Len() == 0 {
		return 0, ErrNoData
	}
	return r.queue.Read(), nil
}

// Stats returns a copy of the counters.
func (r *Receiver) Stats() ReceiverStats {
	l := r.locker()
	l.Lock()
	defer l.Unlock()
	return r.stats
}
