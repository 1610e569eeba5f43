package capture

import (
	"encoding/binary"
	"sort"

	"github.com/zeebo/blake3"
)

// SymbolTable resolves functions by key or by address. Entries are stored by
// value; callers receive copies.
type SymbolTable struct {
	byKey     map[FunctionKey]Function
	byAddress []FunctionKey
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byKey: make(map[FunctionKey]Function)}
}

// KeyFor derives the stable key of a function from its module and name.
func KeyFor(module, name string) FunctionKey {
	h := blake3.New()
	_, _ = h.Write([]byte(module))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(name))
	sum := h.Sum(nil)
	return FunctionKey(binary.LittleEndian.Uint64(sum[:8]))
}

// Register adds fn and returns its key. Registering the same module and name
// twice keeps the latest address range.
func (t *SymbolTable) Register(fn Function) FunctionKey {
	fn.Key = KeyFor(fn.Module, fn.Name)
	if _, exists := t.byKey[fn.Key]; !exists {
		t.byAddress = append(t.byAddress, fn.Key)
	}
	t.byKey[fn.Key] = fn
	sort.Slice(t.byAddress, func(i, j int) bool {
		return t.byKey[t.byAddress[i]].Address < t.byKey[t.byAddress[j]].Address
	})
	return fn.Key
}

// Function returns the function registered under key.
func (t *SymbolTable) Function(key FunctionKey) (Function, bool) {
	if t == nil {
		return Function{}, false
	}
	fn, ok := t.byKey[key]
	return fn, ok
}

// FunctionAt returns the function whose body contains addr.
func (t *SymbolTable) FunctionAt(addr uint64) (Function, bool) {
	if t == nil || len(t.byAddress) == 0 {
		return Function{}, false
	}
	i := sort.Search(len(t.byAddress), func(i int) bool {
		return t.byKey[t.byAddress[i]].Address > addr
	})
	if i == 0 {
		return Function{}, false
	}
	fn := t.byKey[t.byAddress[i-1]]
	if !fn.Contains(addr) {
		return Function{}, false
	}
	return fn, true
}

// NameAt returns the function name for addr, or UnknownName.
func (t *SymbolTable) NameAt(addr uint64) string {
	if fn, ok := t.FunctionAt(addr); ok {
		return fn.Name
	}
	return UnknownName
}

// Len returns the number of registered functions.
func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byKey)
}

func (t *SymbolTable) clone() *SymbolTable {
	out := NewSymbolTable()
	if t == nil {
		return out
	}
	for k, v := range t.byKey {
		out.byKey[k] = v
	}
	out.byAddress = append(out.byAddress, t.byAddress...)
	return out
}
