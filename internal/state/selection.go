package state

import (
	"sort"

	"github.com/atomicstack/timegraph/internal/capture"
)

// SelectionStore records what the user selected in the time graph: one thread
// and any number of samples.
type SelectionStore interface {
	SelectedThread() (capture.ThreadID, bool)
	SelectThread(tid capture.ThreadID)
	ClearThread()
	SampleSelected(index int) bool
	SelectSamples(tid capture.ThreadID, indices []int)
	SelectedSamples() []int
	SamplesThread() capture.ThreadID
	Clear()
}

type selectionStore struct {
	thread      capture.ThreadID
	hasThread   bool
	samples     map[int]struct{}
	samplesFrom capture.ThreadID
}

func NewSelectionStore() SelectionStore {
	return &selectionStore{samples: make(map[int]struct{})}
}

func (s *selectionStore) SelectedThread() (capture.ThreadID, bool) {
	return s.thread, s.hasThread
}

func (s *selectionStore) SelectThread(tid capture.ThreadID) {
	s.thread = tid
	s.hasThread = true
}

func (s *selectionStore) ClearThread() {
	s.thread = 0
	s.hasThread = false
}

func (s *selectionStore) SampleSelected(index int) bool {
	_, ok := s.samples[index]
	return ok
}

// SelectSamples replaces the sample selection.
func (s *selectionStore) SelectSamples(tid capture.ThreadID, indices []int) {
	clear(s.samples)
	for _, i := range indices {
		s.samples[i] = struct{}{}
	}
	s.samplesFrom = tid
}

func (s *selectionStore) SelectedSamples() []int {
	if len(s.samples) == 0 {
		return nil
	}
	out := make([]int, 0, len(s.samples))
	for i := range s.samples {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (s *selectionStore) SamplesThread() capture.ThreadID {
	return s.samplesFrom
}

func (s *selectionStore) Clear() {
	s.ClearThread()
	clear(s.samples)
	s.samplesFrom = 0
}
