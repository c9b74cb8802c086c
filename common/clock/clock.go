// Package clock lets the scheduler and the simulated runtime read and wait on
// time through an interface, so tests can step it by hand.
package clock

import (
	"context"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx's error in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// NewRealClock returns a Clock backed by the time package.
func NewRealClock() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FakeClock only moves when told to. Sleep advances it by the requested
// duration and returns immediately.
type FakeClock struct {
	l   sync.Mutex
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.l.Lock()
	defer c.l.Unlock()
	return c.now
}

func (c *FakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Tick(d)
	return nil
}

// Tick moves the clock forward by d.
func (c *FakeClock) Tick(d time.Duration) {
	c.l.Lock()
	c.now = c.now.Add(d)
	c.l.Unlock()
}
