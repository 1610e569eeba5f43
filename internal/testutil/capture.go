package testutil

import (
	"testing"

	"github.com/atomicstack/timegraph/internal/capture"
)

// Fixture thread ids used by Small.
const (
	FixturePID  int32            = 100
	MainThread  capture.ThreadID = 101
	IOThread    capture.ThreadID = 102
	OtherThread capture.ThreadID = 900
)

// MustBuild finalises b or fails the test.
func MustBuild(t testing.TB, b *capture.Builder) *capture.Capture {
	t.Helper()
	c, err := b.Build()
	if err != nil {
		t.Fatalf("build capture: %v", err)
	}
	return c
}

// TwoStates is a single thread that runs over [100, 200] and waits on the run
// queue over [200, 350].
func TwoStates(t testing.TB) *capture.Capture {
	t.Helper()
	b := capture.NewBuilder(FixturePID, "two-states").
		AddThread(MainThread, "main").
		AddThreadState(MainThread, capture.StateRunning, 100, 200).
		AddThreadState(MainThread, capture.StateRunnable, 200, 350)
	return MustBuild(t, b)
}

// Small is a two thread capture carrying every kind of record over
// [0, 1000]. The io thread has thread states only; tracepoints hit by another
// process only show up on the system-wide series.
func Small(t testing.TB) *capture.Capture {
	t.Helper()
	b := capture.NewBuilder(FixturePID, "fixture").SetVersion(1).
		AddThread(MainThread, "main").
		AddThread(IOThread, "io")

	b.AddThreadState(MainThread, capture.StateRunning, 0, 400).
		AddThreadState(MainThread, capture.StateInterruptibleSleep, 400, 600).
		AddThreadState(MainThread, capture.StateRunning, 600, 1000).
		AddThreadState(IOThread, capture.StateUninterruptibleSleep, 0, 1000)

	b.AddTracepointInfo(1, "sched", "sched_switch").
		AddTracepointInfo(2, "syscalls", "sys_enter_read").
		AddTracepoint(capture.TracepointEvent{Time: 150, Pid: FixturePID, Tid: MainThread, CPU: 0, InfoKey: 1}).
		AddTracepoint(capture.TracepointEvent{Time: 500, Pid: FixturePID, Tid: MainThread, CPU: 1, InfoKey: 2}).
		AddTracepoint(capture.TracepointEvent{Time: 700, Pid: 7, Tid: OtherThread, CPU: 2, InfoKey: 1})

	loop := b.AddFunction("libapp.so", "main_loop", 0x1000, 0x100)
	work := b.AddFunction("libapp.so", "do_work", 0x2000, 0x100)
	b.AddCallstack(1, 0x2010, 0x1010).
		AddCallstack(2, 0x1020).
		AddCallstackEvent(MainThread, 100, 1).
		AddCallstackEvent(MainThread, 300, 2).
		AddCallstackEvent(MainThread, 800, 1)

	b.AddTimer(capture.Timer{Tid: MainThread, Start: 0, End: 400, Depth: 0, Function: loop}).
		AddTimer(capture.Timer{Tid: MainThread, Start: 50, End: 250, Depth: 1, Function: work})
	return MustBuild(t, b)
}

// Synthetic returns a deterministic generated capture with the given number of
// threads spanning 10ms.
func Synthetic(t testing.TB, threads int) *capture.Capture {
	t.Helper()
	c, err := capture.Synthesize(capture.SynthOptions{
		ProcessID:   4200,
		ProcessName: "synthetic",
		Threads:     threads,
		Duration:    10_000_000,
		Seed:        1,
	})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return c
}
