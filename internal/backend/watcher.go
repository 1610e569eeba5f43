package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/timegraph/internal/capture"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindCapture Kind = iota
)

// Event conveys a capture snapshot or an error from a provider poll.
type Event struct {
	Kind Kind
	Data *capture.Capture
	Err  error
}

// minPollGap bounds how often the provider is asked for a snapshot, however
// small the configured interval.
const minPollGap = 100 * time.Millisecond

// Watcher polls a capture provider at a fixed interval and publishes events.
type Watcher struct {
	provider capture.Provider
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that asks provider for a snapshot every
// interval. The first snapshot is fetched immediately.
func NewWatcher(provider capture.Provider, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		provider: provider,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startCapturePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events. It is closed once every poller
// has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startCapturePoller() {
	throttle := newThrottle(minPollGap)
	w.wg.Add(1)
	go w.poll(KindCapture, func(ctx context.Context) (*capture.Capture, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, err
		}
		return w.provider.Snapshot(ctx)
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (*capture.Capture, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}
	if w.interval <= 0 {
		// one-shot: a static capture never changes
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
