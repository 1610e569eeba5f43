package capture

import (
	"context"
	"sync"
)

// Provider hands out capture snapshots. Each call may return a newer version.
type Provider interface {
	Snapshot(ctx context.Context) (*Capture, error)
}

// Static serves one fixed capture.
type Static struct {
	Capture *Capture
}

// Snapshot implements Provider.
func (s Static) Snapshot(ctx context.Context) (*Capture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Capture, nil
}

// Live emulates a capture that is still recording: every snapshot extends the
// synthetic capture by Step ticks until Limit is reached.
type Live struct {
	mu       sync.Mutex
	opts     SynthOptions
	step     Tick
	limit    Tick
	current  *Capture
	duration Tick
}

// NewLive starts a live capture at opts.Duration.
func NewLive(opts SynthOptions, step, limit Tick) *Live {
	if limit < opts.Duration {
		limit = opts.Duration
	}
	return &Live{opts: opts, step: step, limit: limit}
}

// Snapshot implements Provider. Once the limit is reached the last snapshot is
// returned unchanged.
func (l *Live) Snapshot(ctx context.Context) (*Capture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil && l.duration >= l.limit {
		return l.current, nil
	}
	next := l.opts.Duration
	if l.current != nil {
		next = l.duration + l.step
	}
	if next > l.limit {
		next = l.limit
	}
	opts := l.opts
	opts.Duration = next
	opts.Version = l.current.Version() + 1
	c, err := Synthesize(opts)
	if err != nil {
		return nil, err
	}
	l.current = c
	l.duration = next
	return c, nil
}
