package capture

import (
	"fmt"
	"math/rand/v2"
)

// SynthOptions controls the synthetic capture generator used by the demo
// front-end and by tests that need a dense dataset.
type SynthOptions struct {
	ProcessID   int32
	ProcessName string
	Threads     int
	Duration    Tick
	Seed        uint64
	Version     uint64
}

var synthFunctions = []struct {
	module string
	name   string
}{
	{"libgame.so", "GameLoop::Tick"},
	{"libgame.so", "Physics::Step"},
	{"libgame.so", "Renderer::SubmitFrame"},
	{"libgame.so", "Audio::Mix"},
	{"libc.so.6", "memcpy"},
	{"libc.so.6", "pthread_cond_wait"},
	{"libvulkan.so", "vkQueueSubmit"},
	{"libgame.so", "Assets::Stream"},
}

const (
	synthFunctionBase = 0x400000
	synthFunctionSize = 0x1000
)

// Synthesize generates a deterministic capture. Every thread draws from its
// own random stream, so growing Duration keeps earlier data unchanged.
func Synthesize(opts SynthOptions) (*Capture, error) {
	if opts.Threads <= 0 {
		return nil, fmt.Errorf("synthesize: threads must be > 0 (got %d)", opts.Threads)
	}
	if opts.Duration == 0 {
		return nil, fmt.Errorf("synthesize: duration must be > 0")
	}
	name := opts.ProcessName
	if name == "" {
		name = "synthetic"
	}
	b := NewBuilder(opts.ProcessID, name).SetVersion(opts.Version)

	keys := make([]FunctionKey, len(synthFunctions))
	for i, fn := range synthFunctions {
		keys[i] = b.AddFunction(fn.module, fn.name, synthFunctionBase+uint64(i)*synthFunctionSize, synthFunctionSize)
	}
	for i := range synthFunctions {
		// callstack i: function i called from the game loop
		b.AddCallstack(uint64(i+1), synthFunctionBase+uint64(i)*synthFunctionSize+0x10, synthFunctionBase+0x20)
	}
	b.AddTracepointInfo(1, "sched", "sched_switch")
	b.AddTracepointInfo(2, "syscalls", "sys_enter_futex")
	b.AddTracepointInfo(3, "block", "block_rq_issue")

	for t := 0; t < opts.Threads; t++ {
		tid := ThreadID(int(opts.ProcessID) + t + 1)
		b.AddThread(tid, fmt.Sprintf("worker-%d", t))
		rng := rand.New(rand.NewPCG(opts.Seed, uint64(tid)))
		synthThread(b, rng, tid, opts, keys)
	}
	return b.Build()
}

func synthThread(b *Builder, rng *rand.Rand, tid ThreadID, opts SynthOptions, keys []FunctionKey) {
	const (
		minSlice   = 2_000
		burstSlice = 50
	)
	var now Tick
	for now < opts.Duration {
		state := ThreadStates[rng.IntN(4)]
		length := Tick(minSlice + rng.IntN(400_000))
		if rng.IntN(8) == 0 {
			// bursts of tiny slices exercise coalescing when zoomed out
			length = Tick(burstSlice + rng.IntN(burstSlice))
		}
		end := now + length
		if end > opts.Duration {
			end = opts.Duration
		}
		b.AddThreadState(tid, state, now, end)
		if state == StateRunning {
			synthRunning(b, rng, tid, now, end, keys)
		}
		if rng.IntN(6) == 0 {
			pid := opts.ProcessID
			if rng.IntN(3) == 0 {
				pid = opts.ProcessID + 1000
			}
			b.AddTracepoint(TracepointEvent{
				Time: now, Pid: pid, Tid: tid, CPU: int32(rng.IntN(8)), InfoKey: uint64(1 + rng.IntN(3)),
			})
		}
		now = end
	}
}

func synthRunning(b *Builder, rng *rand.Rand, tid ThreadID, begin, end Tick, keys []FunctionKey) {
	const sampleEvery = 10_000
	for t := begin + sampleEvery; t < end; t += sampleEvery {
		b.AddCallstackEvent(tid, t, uint64(1+rng.IntN(len(keys))))
	}
	span := end - begin
	if span < 1_000 {
		return
	}
	outer := keys[rng.IntN(len(keys))]
	b.AddTimer(Timer{Tid: tid, Start: begin + span/10, End: end - span/10, Depth: 0, Function: outer})
	inner := keys[rng.IntN(len(keys))]
	b.AddTimer(Timer{Tid: tid, Start: begin + span/4, End: begin + span/2, Depth: 1, Function: inner})
	if rng.IntN(2) == 0 {
		leaf := keys[rng.IntN(len(keys))]
		b.AddTimer(Timer{Tid: tid, Start: begin + span/4 + span/20, End: begin + span/3, Depth: 2, Function: leaf})
	}
}
