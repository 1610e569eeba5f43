package capture

// Tick is a monotonic capture timestamp in nanoseconds.
type Tick uint64

// ThreadID identifies a thread. Negative values are pseudo threads.
type ThreadID int32

const (
	// AllProcessThreads aggregates every thread of the captured process.
	AllProcessThreads ThreadID = -1
	// AllThreadsOfAllProcesses aggregates system-wide data such as
	// tracepoints hit by other processes.
	AllThreadsOfAllProcesses ThreadID = -2
)

// DataKind selects one of the per-thread data series held by a capture.
type DataKind uint8

const (
	KindThreadStates DataKind = iota
	KindTracepoints
	KindCallstacks
	KindTimers
)

func (k DataKind) String() string {
	switch k {
	case KindThreadStates:
		return "thread-states"
	case KindTracepoints:
		return "tracepoints"
	case KindCallstacks:
		return "callstacks"
	case KindTimers:
		return "timers"
	default:
		return "unknown"
	}
}

// SourceKey addresses one data series: the logical data source of a track.
type SourceKey struct {
	Kind   DataKind
	Thread ThreadID
}

// Record is the uniform view of one timed item returned by queries.
type Record struct {
	Start    Tick
	Duration Tick
	// Discriminator is the state or category of the record; its meaning
	// depends on the series kind.
	Discriminator uint64
	Depth         uint32
	// Index addresses the typed record through the capture lookups.
	Index int
}

// End returns the last tick covered by the record.
func (r Record) End() Tick {
	return r.Start + r.Duration
}

// Intersects reports whether the record overlaps the closed range [min, max].
func (r Record) Intersects(min, max Tick) bool {
	return r.Start <= max && r.End() >= min
}

// ThreadState is the scheduler state of a thread during a slice.
type ThreadState uint8

const (
	StateRunning ThreadState = iota
	StateRunnable
	StateInterruptibleSleep
	StateUninterruptibleSleep
	StateStopped
	StateTraced
	StateDead
	StateZombie
	StateParked
	StateIdle
)

// ThreadStates lists every state in declaration order.
var ThreadStates = []ThreadState{
	StateRunning, StateRunnable, StateInterruptibleSleep, StateUninterruptibleSleep,
	StateStopped, StateTraced, StateDead, StateZombie, StateParked, StateIdle,
}

func (s ThreadState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateRunnable:
		return "Runnable"
	case StateInterruptibleSleep:
		return "Interruptible sleep"
	case StateUninterruptibleSleep:
		return "Uninterruptible sleep"
	case StateStopped:
		return "Stopped"
	case StateTraced:
		return "Traced"
	case StateDead:
		return "Dead"
	case StateZombie:
		return "Zombie"
	case StateParked:
		return "Parked"
	case StateIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// ThreadStateSlice is a span during which a thread stayed in one state.
type ThreadStateSlice struct {
	Thread ThreadID
	State  ThreadState
	Begin  Tick
	End    Tick
}

// TracepointInfo describes a tracepoint class.
type TracepointInfo struct {
	Key      uint64
	Category string
	Name     string
}

// TracepointEvent is one tracepoint hit.
type TracepointEvent struct {
	Time    Tick
	Pid     int32
	Tid     ThreadID
	CPU     int32
	InfoKey uint64
}

// CallstackEvent is one sample taken on a thread.
type CallstackEvent struct {
	Time        Tick
	Tid         ThreadID
	CallstackID uint64
}

// Callstack holds sampled return addresses, innermost frame first.
type Callstack struct {
	ID     uint64
	Frames []uint64
}

// FunctionKey is a stable identity for a function, derived once from its
// module and name when the function is registered.
type FunctionKey uint64

// Function is one entry of the symbol table.
type Function struct {
	Key     FunctionKey
	Module  string
	Name    string
	Address uint64
	Size    uint64
}

// Contains reports whether addr falls inside the function body.
func (f Function) Contains(addr uint64) bool {
	return addr >= f.Address && addr < f.Address+f.Size
}

// Timer is one instrumented function call.
type Timer struct {
	Tid      ThreadID
	Start    Tick
	End      Tick
	Depth    uint32
	Function FunctionKey
}

// UnknownName is returned by symbol lookups that do not resolve.
const UnknownName = "???"
