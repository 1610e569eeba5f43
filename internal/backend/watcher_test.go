package backend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/testutil"
)

type countingProvider struct {
	calls atomic.Int32
	data  *capture.Capture
	err   error
}

func (p *countingProvider) Snapshot(ctx context.Context) (*capture.Capture, error) {
	p.calls.Add(1)
	return p.data, p.err
}

func TestStaticWatcherEmitsOnce(t *testing.T) {
	c := testutil.TwoStates(t)
	w := NewWatcher(capture.Static{Capture: c}, 0)
	var got []Event
	for evt := range w.Events() {
		got = append(got, evt)
	}
	if len(got) != 1 || got[0].Data != c || got[0].Kind != KindCapture {
		t.Fatalf("expected one capture event, got %#v", got)
	}
}

func TestWatcherPollsUntilStopped(t *testing.T) {
	p := &countingProvider{data: testutil.TwoStates(t)}
	w := NewWatcher(p, 10*time.Millisecond)
	for i := 0; i < 2; i++ {
		select {
		case <-w.Events():
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
	w.Stop()
	for range w.Events() {
	}
	w.Wait()
	if p.calls.Load() < 2 {
		t.Fatalf("expected at least two polls, got %d", p.calls.Load())
	}
}

func TestWatcherForwardsErrors(t *testing.T) {
	boom := errors.New("boom")
	w := NewWatcher(&countingProvider{err: boom}, 0)
	evt, ok := <-w.Events()
	if !ok || !errors.Is(evt.Err, boom) {
		t.Fatalf("expected error event, got %#v", evt)
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(time.Hour)
	base := time.Unix(1000, 0)
	th.now = func() time.Time { return base }
	if err := th.wait(context.Background()); err != nil {
		t.Fatalf("expected first call to pass, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 2; i++ {
		if err := th.wait(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected cancelled wait, got %v", err)
		}
	}
	if !th.last.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("expected slots reserved back to back, got %v", th.last)
	}
}

func TestZeroThrottleNeverBlocks(t *testing.T) {
	th := newThrottle(0)
	for i := 0; i < 3; i++ {
		if err := th.wait(context.Background()); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}
}
