package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
)

// minFetchGap bounds how often tmux is queried, however often a refresh is
// requested.
const minFetchGap = 250 * time.Millisecond

// Fetcher reads the current tmux state.
type Fetcher func() (tmux.Snapshot, error)

// Event conveys a fresh snapshot or the error that prevented one. Snapshot
// may be partially filled when Err is set.
type Event struct {
	Snapshot tmux.Snapshot
	Err      error
}

// Watcher polls tmux at a fixed interval and publishes snapshots.
type Watcher struct {
	fetch    Fetcher
	interval time.Duration
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	refresh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher starts polling fetch every interval. The first snapshot is
// fetched immediately.
func NewWatcher(fetch Fetcher, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fetch:    fetch,
		interval: interval,
		throttle: newThrottle(minFetchGap),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		refresh:  make(chan struct{}, 1),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events. It is closed once the watcher
// has stopped.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks for a snapshot ahead of the next tick, typically right after
// an action changed tmux. Requests made while one is pending are merged.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	emit := func() bool {
		if !w.throttle.wait(w.ctx) {
			return false
		}
		snap, err := w.fetch()
		events.Backend.Snapshot(err)
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- Event{Snapshot: snap, Err: err}:
			return true
		}
	}

	if !emit() {
		return
	}

	interval := w.interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		case <-w.refresh:
		}
		if !emit() {
			return
		}
	}
}
