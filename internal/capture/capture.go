package capture

import "sort"

// Source is the query contract the timeline consumes. Implementations are
// read-only for the lifetime of a frame.
type Source interface {
	// QueryRecords returns the records of key intersecting [min, max],
	// ordered by start tick.
	QueryRecords(key SourceKey, min, max Tick) []Record
	// ForEachRecord is the allocation-free form of QueryRecords. Iteration
	// stops when fn returns false.
	ForEachRecord(key SourceKey, min, max Tick, fn func(Record) bool)
	// IsEmpty reports whether key holds no records at all.
	IsEmpty(key SourceKey) bool
}

// Capture is an immutable, fully indexed profiling capture.
type Capture struct {
	processID   int32
	processName string
	version     uint64

	threadNames map[ThreadID]string

	threadStates    []ThreadStateSlice
	tracepoints     []TracepointEvent
	tracepointInfos map[uint64]TracepointInfo
	callstackEvents []CallstackEvent
	callstacks      map[uint64]Callstack
	timers          []Timer
	symbols         *SymbolTable

	series map[SourceKey]*series
	min    Tick
	max    Tick
}

var _ Source = (*Capture)(nil)

// QueryRecords implements Source.
func (c *Capture) QueryRecords(key SourceKey, min, max Tick) []Record {
	var out []Record
	c.ForEachRecord(key, min, max, func(r Record) bool {
		out = append(out, r)
		return true
	})
	return out
}

// ForEachRecord implements Source.
func (c *Capture) ForEachRecord(key SourceKey, min, max Tick, fn func(Record) bool) {
	if c == nil || fn == nil {
		return
	}
	c.series[key].each(min, max, fn)
}

// IsEmpty implements Source.
func (c *Capture) IsEmpty(key SourceKey) bool {
	if c == nil {
		return true
	}
	return c.series[key].len() == 0
}

// Count returns the number of records stored for key.
func (c *Capture) Count(key SourceKey) int {
	if c == nil {
		return 0
	}
	return c.series[key].len()
}

// Range returns the first and last tick recorded anywhere in the capture.
func (c *Capture) Range() (Tick, Tick) {
	if c == nil {
		return 0, 0
	}
	return c.min, c.max
}

// ProcessID returns the captured process id.
func (c *Capture) ProcessID() int32 {
	return c.processID
}

// ProcessName returns the captured process name.
func (c *Capture) ProcessName() string {
	return c.processName
}

// Version identifies the snapshot; live captures bump it on every update.
func (c *Capture) Version() uint64 {
	if c == nil {
		return 0
	}
	return c.version
}

// ThreadName returns the recorded name of tid, or its numeric form.
func (c *Capture) ThreadName(tid ThreadID) string {
	if c != nil {
		if name, ok := c.threadNames[tid]; ok && name != "" {
			return name
		}
	}
	return UnknownName
}

// Threads returns every real thread that owns at least one record, ascending.
func (c *Capture) Threads() []ThreadID {
	if c == nil {
		return nil
	}
	seen := make(map[ThreadID]struct{})
	for key, s := range c.series {
		if key.Thread < 0 || s.len() == 0 {
			continue
		}
		seen[key.Thread] = struct{}{}
	}
	for tid := range c.threadNames {
		if tid >= 0 {
			seen[tid] = struct{}{}
		}
	}
	out := make([]ThreadID, 0, len(seen))
	for tid := range seen {
		out = append(out, tid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ThreadStateSlice returns the slice at index.
func (c *Capture) ThreadStateSlice(index int) (ThreadStateSlice, bool) {
	if c == nil || index < 0 || index >= len(c.threadStates) {
		return ThreadStateSlice{}, false
	}
	return c.threadStates[index], true
}

// Tracepoint returns the tracepoint event at index.
func (c *Capture) Tracepoint(index int) (TracepointEvent, bool) {
	if c == nil || index < 0 || index >= len(c.tracepoints) {
		return TracepointEvent{}, false
	}
	return c.tracepoints[index], true
}

// TracepointInfo resolves a tracepoint class.
func (c *Capture) TracepointInfo(key uint64) (TracepointInfo, bool) {
	if c == nil {
		return TracepointInfo{}, false
	}
	info, ok := c.tracepointInfos[key]
	return info, ok
}

// CallstackEvent returns the sample at index.
func (c *Capture) CallstackEvent(index int) (CallstackEvent, bool) {
	if c == nil || index < 0 || index >= len(c.callstackEvents) {
		return CallstackEvent{}, false
	}
	return c.callstackEvents[index], true
}

// Callstack resolves a callstack by id.
func (c *Capture) Callstack(id uint64) (Callstack, bool) {
	if c == nil {
		return Callstack{}, false
	}
	cs, ok := c.callstacks[id]
	return cs, ok
}

// Timer returns the timer at index.
func (c *Capture) Timer(index int) (Timer, bool) {
	if c == nil || index < 0 || index >= len(c.timers) {
		return Timer{}, false
	}
	return c.timers[index], true
}

// Symbols returns the capture's symbol table.
func (c *Capture) Symbols() *SymbolTable {
	if c == nil {
		return nil
	}
	return c.symbols
}

// TimerDepth returns the number of timer rows recorded for tid.
func (c *Capture) TimerDepth(tid ThreadID) uint32 {
	var depth uint32
	if c == nil {
		return 0
	}
	s := c.series[SourceKey{Kind: KindTimers, Thread: tid}]
	if s == nil {
		return 0
	}
	for _, r := range s.records {
		if r.Depth+1 > depth {
			depth = r.Depth + 1
		}
	}
	return depth
}
