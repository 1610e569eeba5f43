package app

import (
	"context"
	"testing"
	"time"

	"github.com/atomicstack/timegraph/internal/capture"
)

func TestProviderStatic(t *testing.T) {
	p, interval, err := Provider(Config{Threads: 2, Duration: time.Millisecond, Seed: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interval != 0 {
		t.Fatalf("expected one-shot polling, got %s", interval)
	}
	if _, ok := p.(capture.Static); !ok {
		t.Fatalf("expected static provider, got %T", p)
	}
	c, err := p.Snapshot(context.Background())
	if err != nil || c == nil {
		t.Fatalf("expected capture, got %v / %v", c, err)
	}
	if len(c.Threads()) != 2 {
		t.Fatalf("expected 2 threads, got %v", c.Threads())
	}
}

func TestProviderLiveGrows(t *testing.T) {
	p, interval, err := Provider(Config{Threads: 1, Duration: 10 * time.Millisecond, Live: true, LiveInterval: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interval != time.Second {
		t.Fatalf("expected live interval, got %s", interval)
	}
	first, err := p.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("first snapshot: %v", err)
	}
	second, err := p.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("second snapshot: %v", err)
	}
	if second.Version() <= first.Version() {
		t.Fatalf("expected version to grow, got %d then %d", first.Version(), second.Version())
	}
}

func TestProviderRejectsEmptyCapture(t *testing.T) {
	if _, _, err := Provider(Config{Threads: 0, Duration: time.Second}); err == nil {
		t.Fatal("expected error for zero threads")
	}
}
