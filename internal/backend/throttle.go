package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces out tmux queries so a burst of refresh requests costs at
// most one fetch per interval.
type throttle struct {
	gap time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(gap time.Duration) *throttle {
	if gap <= 0 {
		return &throttle{}
	}
	return &throttle{gap: gap}
}

// wait blocks until the next slot is free and claims it. It returns false
// when ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.gap <= 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	now := time.Now()
	slot := t.next
	if slot.Before(now) {
		slot = now
	}
	t.next = slot.Add(t.gap)
	t.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
