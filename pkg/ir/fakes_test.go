package ir

import (
	"sync"
	"time"
)

type testClock struct {
	now time.Duration
}

func (c *testClock) Now() time.Duration {
	return c.now
}

func (c *testClock) Sleep(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

type carrierEvent struct {
	on bool
	at time.Duration
}

type testCarrier struct {
	clock  Clock
	events []carrierEvent
}

func (c *testCarrier) On() {
	c.events = append(c.events, carrierEvent{on: true, at: c.clock.Now()})
}

func (c *testCarrier) Off() {
	c.events = append(c.events, carrierEvent{on: false, at: c.clock.Now()})
}

// pulses converts recorded on/off pairs to pulses, ignoring leading offs.
func (c *testCarrier) pulses() (pulses []Pulse) {
	evs := c.events
	for len(evs) > 0 && !evs[0].on {
		evs = evs[1:]
	}
	for i := 0; i+1 < len(evs); i += 2 {
		p := Pulse{Mark: evs[i+1].at - evs[i].at}
		if i+2 < len(evs) {
			p.Space = evs[i+2].at - evs[i+1].at
		} else {
			p.Space = c.clock.Now() - evs[i+1].at
		}
		pulses = append(pulses, p)
	}
	return
}

func (c *testCarrier) marks() (starts []time.Duration) {
	for _, ev := range c.events {
		if ev.on {
			starts = append(starts, ev.at)
		}
	}
	return
}

type testEdgeSource struct {
	handler EdgeHandler
	listens int
}

func (s *testEdgeSource) Listen(h EdgeHandler) error {
	s.handler = h
	s.listens++
	return nil
}

func (s *testEdgeSource) edges(ts ...time.Duration) {
	for _, t := range ts {
		s.handler.HandleEdge(t)
	}
}

type countingLocker struct {
	sync.Mutex
	locks int
}

func (l *countingLocker) Lock() {
	l.Mutex.Lock()
	l.locks++
}

func us(n int) time.Duration {
	return time.Duration(n) * time.Microsecond
}
