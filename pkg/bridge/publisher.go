package bridge

import (
	"io"

	"github.com/golang/glog"

	fx "github.com/robotalks/irlink/pkg/framework"
)

// Publishers fans a payload out to all publishers.
type Publishers []Publisher

// Publish implements Publisher. Every publisher is tried and the errors
// are aggregated.
func (p Publishers) Publish(topic string, payload []byte) error {
	var errs fx.AggregatedError
	for _, pub := range p {
		if err := pub.Publish(topic, payload); err != nil {
			errs.Add(&PublishError{Topic: topic, Err: err})
		}
	}
	return errs.Aggregate()
}

// Subscribers registers a handler with all subscribers.
type Subscribers []Subscriber

type closers []io.Closer

func (c closers) Close() error {
	var errs fx.AggregatedError
	for _, closer := range c {
		errs.Add(closer.Close())
	}
	return errs.Aggregate()
}

// Subscribe implements Subscriber. On failure, the subscriptions already
// made are closed.
func (s Subscribers) Subscribe(topic string, handler Handler) (io.Closer, error) {
	subs := make(closers, 0, len(s))
	for _, sub := range s {
		c, err := sub.Subscribe(topic, handler)
		if err != nil {
			if cerr := subs.Close(); cerr != nil {
				glog.Warningf("unsubscribe %q: %v", topic, cerr)
			}
			return nil, err
		}
		subs = append(subs, c)
	}
	return subs, nil
}
