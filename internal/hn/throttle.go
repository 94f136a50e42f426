package hn

import (
	"context"
	"sync"
	"time"
)

// throttle ensures a minimum interval between successive requests.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.interval <= 0 {
		return ctx.Err()
	}
	for {
		t.mu.Lock()
		wait := time.Until(t.next)
		if wait <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return ctx.Err()
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
