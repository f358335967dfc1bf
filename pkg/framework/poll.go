package framework

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// DefaultPollInterval is used when PollLoop.Interval is zero.
const DefaultPollInterval = 20 * time.Millisecond

// PollLoop runs Pollers on a fixed interval, or immediately when
// triggered.
type PollLoop struct {
	Interval time.Duration

	pollers  []Poller
	wakeUpCh chan struct{}
}

// NewPollLoop creates a PollLoop.
func NewPollLoop(interval time.Duration, pollers ...Poller) *PollLoop {
	return &PollLoop{
		Interval: interval,
		pollers:  pollers,
		wakeUpCh: make(chan struct{}, 1),
	}
}

// TriggerNext schedules an iteration right away.
func (l *PollLoop) TriggerNext() {
	select {
	case l.wakeUpCh <- struct{}{}:
	default:
	}
}

// Name implements Named.
func (l *PollLoop) Name() string {
	return "poll"
}

// Run implements Runnable.
func (l *PollLoop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.poll(ctx, now)
		case <-l.wakeUpCh:
			l.poll(ctx, time.Now())
		}
	}
}

func (l *PollLoop) poll(ctx context.Context, now time.Time) {
	for _, p := range l.pollers {
		if err := p.Poll(ctx, now); err != nil {
			glog.Errorf("poll error: %v", err)
		}
	}
}
