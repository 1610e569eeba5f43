package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces provider snapshots at least gap apart, so a short poll
// interval or a manual reload cannot hammer a live capture.
type throttle struct {
	gap time.Duration
	now func() time.Time

	mu   sync.Mutex
	last time.Time
}

func newThrottle(gap time.Duration) *throttle {
	return &throttle{gap: max(gap, 0), now: time.Now}
}

// wait blocks until the next snapshot may be taken or ctx is done. The slot is
// reserved before returning, so concurrent callers queue up behind each other.
func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.gap == 0 {
		return ctx.Err()
	}
	t.mu.Lock()
	now := t.now()
	slot := now
	if !t.last.IsZero() {
		if earliest := t.last.Add(t.gap); earliest.After(now) {
			slot = earliest
		}
	}
	t.last = slot
	t.mu.Unlock()

	delay := slot.Sub(now)
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
