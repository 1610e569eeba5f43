package capture

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is returned by Build when a record is inconsistent.
var ErrInvalidRecord = errors.New("invalid capture record")

// Builder assembles a Capture. It is not safe for concurrent use.
type Builder struct {
	processID   int32
	processName string
	version     uint64

	threadNames     map[ThreadID]string
	threadStates    []ThreadStateSlice
	tracepoints     []TracepointEvent
	tracepointInfos map[uint64]TracepointInfo
	callstackEvents []CallstackEvent
	callstacks      map[uint64]Callstack
	timers          []Timer
	symbols         *SymbolTable
}

// NewBuilder starts a capture for the given process.
func NewBuilder(pid int32, processName string) *Builder {
	return &Builder{
		processID:       pid,
		processName:     processName,
		threadNames:     make(map[ThreadID]string),
		tracepointInfos: make(map[uint64]TracepointInfo),
		callstacks:      make(map[uint64]Callstack),
		symbols:         NewSymbolTable(),
	}
}

// SetVersion stamps the snapshot version.
func (b *Builder) SetVersion(v uint64) *Builder {
	b.version = v
	return b
}

// AddThread names a thread.
func (b *Builder) AddThread(tid ThreadID, name string) *Builder {
	b.threadNames[tid] = name
	return b
}

// AddThreadState records a thread state slice.
func (b *Builder) AddThreadState(tid ThreadID, state ThreadState, begin, end Tick) *Builder {
	b.threadStates = append(b.threadStates, ThreadStateSlice{Thread: tid, State: state, Begin: begin, End: end})
	return b
}

// AddTracepointInfo registers a tracepoint class.
func (b *Builder) AddTracepointInfo(key uint64, category, name string) *Builder {
	b.tracepointInfos[key] = TracepointInfo{Key: key, Category: category, Name: name}
	return b
}

// AddTracepoint records a tracepoint hit.
func (b *Builder) AddTracepoint(ev TracepointEvent) *Builder {
	b.tracepoints = append(b.tracepoints, ev)
	return b
}

// AddCallstack registers a unique callstack.
func (b *Builder) AddCallstack(id uint64, frames ...uint64) *Builder {
	b.callstacks[id] = Callstack{ID: id, Frames: append([]uint64(nil), frames...)}
	return b
}

// AddCallstackEvent records a sample.
func (b *Builder) AddCallstackEvent(tid ThreadID, time Tick, callstackID uint64) *Builder {
	b.callstackEvents = append(b.callstackEvents, CallstackEvent{Time: time, Tid: tid, CallstackID: callstackID})
	return b
}

// AddFunction registers a symbol and returns its key.
func (b *Builder) AddFunction(module, name string, address, size uint64) FunctionKey {
	return b.symbols.Register(Function{Module: module, Name: name, Address: address, Size: size})
}

// AddTimer records an instrumented call.
func (b *Builder) AddTimer(t Timer) *Builder {
	b.timers = append(b.timers, t)
	return b
}

// Build validates the collected records and indexes them.
func (b *Builder) Build() (*Capture, error) {
	c := &Capture{
		processID:       b.processID,
		processName:     b.processName,
		version:         b.version,
		threadNames:     copyMap(b.threadNames),
		threadStates:    append([]ThreadStateSlice(nil), b.threadStates...),
		tracepoints:     append([]TracepointEvent(nil), b.tracepoints...),
		tracepointInfos: copyMap(b.tracepointInfos),
		callstackEvents: append([]CallstackEvent(nil), b.callstackEvents...),
		callstacks:      copyMap(b.callstacks),
		timers:          append([]Timer(nil), b.timers...),
		symbols:         b.symbols.clone(),
	}

	buckets := make(map[SourceKey][]Record)
	add := func(key SourceKey, r Record) {
		buckets[key] = append(buckets[key], r)
	}

	for i, s := range c.threadStates {
		if s.End < s.Begin {
			return nil, fmt.Errorf("thread state %d of thread %d ends before it begins: %w", i, s.Thread, ErrInvalidRecord)
		}
		add(SourceKey{Kind: KindThreadStates, Thread: s.Thread}, Record{
			Start: s.Begin, Duration: s.End - s.Begin, Discriminator: uint64(s.State), Index: i,
		})
	}
	for i, tp := range c.tracepoints {
		if _, ok := c.tracepointInfos[tp.InfoKey]; !ok {
			return nil, fmt.Errorf("tracepoint %d references unknown info %d: %w", i, tp.InfoKey, ErrInvalidRecord)
		}
		r := Record{Start: tp.Time, Discriminator: tp.InfoKey, Index: i}
		if tp.Pid == c.processID {
			add(SourceKey{Kind: KindTracepoints, Thread: tp.Tid}, r)
		}
		add(SourceKey{Kind: KindTracepoints, Thread: AllThreadsOfAllProcesses}, r)
	}
	for i, ev := range c.callstackEvents {
		if _, ok := c.callstacks[ev.CallstackID]; !ok {
			return nil, fmt.Errorf("sample %d references unknown callstack %d: %w", i, ev.CallstackID, ErrInvalidRecord)
		}
		r := Record{Start: ev.Time, Discriminator: ev.CallstackID, Index: i}
		add(SourceKey{Kind: KindCallstacks, Thread: ev.Tid}, r)
		add(SourceKey{Kind: KindCallstacks, Thread: AllProcessThreads}, r)
	}
	for i, t := range c.timers {
		if t.End < t.Start {
			return nil, fmt.Errorf("timer %d of thread %d ends before it starts: %w", i, t.Tid, ErrInvalidRecord)
		}
		add(SourceKey{Kind: KindTimers, Thread: t.Tid}, Record{
			Start: t.Start, Duration: t.End - t.Start, Discriminator: uint64(t.Function), Depth: t.Depth, Index: i,
		})
	}

	c.series = make(map[SourceKey]*series, len(buckets))
	first := true
	for key, records := range buckets {
		s := newSeries(records)
		c.series[key] = s
		lo, hi, ok := s.bounds()
		if !ok {
			continue
		}
		if first || lo < c.min {
			c.min = lo
		}
		if first || hi > c.max {
			c.max = hi
		}
		first = false
	}
	return c, nil
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
