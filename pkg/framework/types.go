package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Poller is invoked periodically by a PollLoop.
type Poller interface {
	Poll(ctx context.Context, now time.Time) error
}

// PollFunc is the func form of Poller.
type PollFunc func(ctx context.Context, now time.Time) error

// Poll implements Poller.
func (f PollFunc) Poll(ctx context.Context, now time.Time) error {
	return f(ctx, now)
}
