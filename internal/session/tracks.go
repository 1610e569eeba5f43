package session

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/track"
	"github.com/atomicstack/timegraph/internal/view"
)

// TrackManager owns the top-level tracks of a session, their user-defined
// order, the name filter and the vertical layout.
type TrackManager struct {
	root      *Root
	registry  *view.Registry
	selection track.Selection

	tracks  map[capture.ThreadID]*track.ThreadTrack
	order   []capture.ThreadID
	visible []*track.ThreadTrack
	filter  string
	height  float64
}

func NewTrackManager(root *Root, registry *view.Registry, sel track.Selection) *TrackManager {
	return &TrackManager{
		root:      root,
		registry:  registry,
		selection: sel,
		tracks:    make(map[capture.ThreadID]*track.ThreadTrack),
	}
}

// Rebuild replaces every track with one bound to data. Threads that existed
// before keep their place; new threads are appended in id order after the
// process-wide tracks.
func (m *TrackManager) Rebuild(data *capture.Capture) {
	for _, t := range m.tracks {
		m.registry.Unregister(t)
	}
	m.root.RemoveChildren()
	m.tracks = make(map[capture.ThreadID]*track.ThreadTrack)
	m.visible = nil

	ids := append([]capture.ThreadID{capture.AllProcessThreads, capture.AllThreadsOfAllProcesses}, data.Threads()...)
	known := make(map[capture.ThreadID]bool, len(ids))
	for _, tid := range ids {
		known[tid] = true
	}
	var order []capture.ThreadID
	seen := make(map[capture.ThreadID]bool, len(ids))
	for _, tid := range m.order {
		if known[tid] && !seen[tid] {
			order = append(order, tid)
			seen[tid] = true
		}
	}
	for _, tid := range ids {
		if !seen[tid] {
			order = append(order, tid)
			seen[tid] = true
		}
	}
	m.order = order

	for _, tid := range m.order {
		t := track.NewThreadTrack(data, tid, m.selection)
		m.register(t)
		m.tracks[tid] = t
		m.root.AddChild(m.root, t)
	}
}

func (m *TrackManager) register(e view.Element) {
	view.Walk(e, func(el view.Element) bool {
		m.registry.Register(el)
		return true
	})
}

// Track returns the track of tid.
func (m *TrackManager) Track(tid capture.ThreadID) (*track.ThreadTrack, bool) {
	t, ok := m.tracks[tid]
	return t, ok
}

// Order returns the thread ids in display order, hidden tracks included.
func (m *TrackManager) Order() []capture.ThreadID {
	return append([]capture.ThreadID(nil), m.order...)
}

// Visible returns the tracks laid out by the last Layout call.
func (m *TrackManager) Visible() []*track.ThreadTrack {
	return m.visible
}

// SetFilter hides tracks whose name does not fuzzy-match query. An empty
// query shows every track.
func (m *TrackManager) SetFilter(query string) {
	m.filter = strings.TrimSpace(query)
}

func (m *TrackManager) Filter() string { return m.filter }

func (m *TrackManager) matches(t *track.ThreadTrack) bool {
	if m.filter == "" {
		return true
	}
	return fuzzy.MatchNormalizedFold(m.filter, t.Label(1<<16))
}

// Layout stacks the visible tracks top-down. Empty and filtered tracks take
// no space; a track being dragged keeps the position the drag gave it. It
// returns the total height.
func (m *TrackManager) Layout(l timegraph.Layout, width float64) float64 {
	m.visible = m.visible[:0]
	y := 0.0
	for _, tid := range m.order {
		t := m.tracks[tid]
		if t == nil {
			continue
		}
		if !m.matches(t) {
			t.Collapse(width)
			continue
		}
		t.Layout(l, width)
		if t.IsEmpty() {
			continue
		}
		if len(m.visible) > 0 {
			y += l.SpaceBetweenTracks
		}
		if !t.Picked() {
			t.SetPos(0, y)
		}
		y += t.Size().Y
		m.visible = append(m.visible, t)
	}
	m.height = y
	return y
}

// Height is the total height computed by the last Layout.
func (m *TrackManager) Height() float64 { return m.height }

// SortByPosition reorders the shown tracks by their current vertical
// position. Hidden tracks keep their slots. Called when a dragged track is
// released.
func (m *TrackManager) SortByPosition() {
	var slots []int
	var shown []capture.ThreadID
	for i, tid := range m.order {
		t := m.tracks[tid]
		if t == nil || t.IsEmpty() || !m.matches(t) {
			continue
		}
		slots = append(slots, i)
		shown = append(shown, tid)
	}
	sort.SliceStable(shown, func(i, j int) bool {
		return m.tracks[shown[i]].Pos().Y < m.tracks[shown[j]].Pos().Y
	})
	for i, slot := range slots {
		m.order[slot] = shown[i]
	}
	children := make([]view.Element, 0, len(m.order))
	for _, tid := range m.order {
		children = append(children, m.tracks[tid])
	}
	m.root.SetChildren(children)
}
