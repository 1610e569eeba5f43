package track

import (
	"strings"
	"testing"

	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/testutil"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/view"
)

func newThreadFixture(t *testing.T, tid capture.ThreadID, sel Selection) *ThreadTrack {
	t.Helper()
	tr := NewThreadTrack(testutil.Small(t), tid, sel)
	register(tr)
	tr.Layout(timegraph.DefaultLayout(), 1000)
	return tr
}

func TestThreadTrackStacksSubtracks(t *testing.T) {
	tr := newThreadFixture(t, testutil.MainThread, nil)
	if tr.Size().Y != 5 {
		t.Fatalf("expected three bars and two timer rows, got height %v", tr.Size().Y)
	}
	if tr.StateTrack().Pos().Y != 0 || tr.EventTrack().Pos().Y != 1 || tr.TracepointTrack().Pos().Y != 2 {
		t.Fatalf("unexpected sub-track positions %v %v %v",
			tr.StateTrack().Pos().Y, tr.EventTrack().Pos().Y, tr.TracepointTrack().Pos().Y)
	}
	if len(tr.VisibleChildren()) != 3 {
		t.Fatalf("expected 3 visible sub-tracks, got %d", len(tr.VisibleChildren()))
	}
}

func TestThreadTrackSkipsEmptySubtracks(t *testing.T) {
	tr := newThreadFixture(t, testutil.IOThread, nil)
	if tr.Size().Y != 1 {
		t.Fatalf("expected only the state strip, got height %v", tr.Size().Y)
	}
	if tr.EventTrack().Size().Y != 0 || tr.TracepointTrack().Size().Y != 0 {
		t.Fatalf("expected empty bars to take no space")
	}
}

func TestEmptyThreadTrackCollapses(t *testing.T) {
	tr := newThreadFixture(t, 555, nil)
	if !tr.IsEmpty() || tr.Size().Y != 0 {
		t.Fatalf("expected collapsed empty track, got height %v", tr.Size().Y)
	}
	c := newCanvas(unitFrame())
	tr.Draw(c, view.PickingNone, 0)
	tr.UpdatePrimitives(c.b, c.f, view.PickingNone, 0)
	if c.b.Len() != 0 {
		t.Fatalf("expected nothing drawn, got %d primitives", c.b.Len())
	}
}

func TestThreadTrackDrawsTimerRows(t *testing.T) {
	tr := newThreadFixture(t, testutil.MainThread, nil)
	c := newCanvas(unitFrame())
	tr.Draw(c, view.PickingNone, 0)
	tr.UpdatePrimitives(c.b, c.f, view.PickingNone, 0)
	var rows []float64
	for _, p := range boxesAt(c.b, batch.ZBox, batch.KindBox) {
		if p.ID.Element() == tr.ElementID() {
			rows = append(rows, p.Rect.Pos.Y)
		}
	}
	if len(rows) != 2 || rows[0] != 3 || rows[1] != 4 {
		t.Fatalf("expected timers on rows 3 and 4, got %v", rows)
	}
	var labels []string
	for _, p := range c.b.Primitives() {
		if p.Shape == batch.ShapeText {
			labels = append(labels, p.Text)
		}
	}
	joined := strings.Join(labels, "|")
	if !strings.Contains(joined, "main_loop") || !strings.Contains(joined, "main [101]") {
		t.Fatalf("expected timer and tab labels, got %q", joined)
	}
}

func TestThreadTrackHighlightsSelectedTab(t *testing.T) {
	sel := &recorder{}
	tr := newThreadFixture(t, testutil.MainThread, sel)
	tr.OnPick(5, 0)
	if sel.thread != testutil.MainThread {
		t.Fatalf("expected pick to select the thread")
	}
	tr.OnRelease()
	c := newCanvas(unitFrame())
	tr.Draw(c, view.PickingNone, 0)
	var tab bool
	for _, p := range c.b.Primitives() {
		if p.Z == batch.ZTrackTab && p.Color == colorTabSelected {
			tab = true
		}
	}
	if !tab {
		t.Fatalf("expected highlighted tab")
	}
}

func TestThreadTrackDragsVerticallyOnly(t *testing.T) {
	tr := newThreadFixture(t, testutil.MainThread, nil)
	tr.SetPos(0, 10)
	tr.OnPick(30, 10)
	tr.OnDrag(60, 14)
	if tr.Pos().X != 0 || tr.Pos().Y != 14 {
		t.Fatalf("expected (0,14), got %#v", tr.Pos())
	}
	if tr.StateTrack().ScreenRect().Pos.Y != 14 {
		t.Fatalf("expected sub-tracks to move with the track")
	}
}

func TestThreadTrackTooltips(t *testing.T) {
	tr := newThreadFixture(t, testutil.MainThread, nil)
	tip := tr.Tooltip(batch.NewID(batch.KindElement, tr.ElementID(), 0))
	for _, want := range []string{"main", "(Thread track)", "fixture [100]", "Samples:", "Calls:"} {
		if !strings.Contains(tip, want) {
			t.Fatalf("expected %q in track tooltip:\n%s", want, tip)
		}
	}
	tip = tr.Tooltip(batch.NewID(batch.KindBox, tr.ElementID(), 1))
	if !strings.HasPrefix(tip, "do_work\n(Instrumented call)") || !strings.Contains(tip, "libapp.so") {
		t.Fatalf("unexpected timer tooltip:\n%s", tip)
	}
}

func TestPseudoThreadNames(t *testing.T) {
	data := testutil.Small(t)
	if got := NewThreadTrack(data, capture.AllProcessThreads, nil).Name(); got != "fixture (all threads)" {
		t.Fatalf("unexpected process track name %q", got)
	}
	all := NewThreadTrack(data, capture.AllThreadsOfAllProcesses, nil)
	if all.Name() != "All tracepoint events" || all.Label(40) != "All tracepoint events" {
		t.Fatalf("unexpected system track name %q", all.Label(40))
	}
}

func TestFitLabelKeepsSuffix(t *testing.T) {
	cases := []struct {
		name, suffix string
		width        int
		want         string
	}{
		{"main", " [101]", 20, "main [101]"},
		{"main", " [101]", 8, "m… [101]"},
		{"verylongname", " [1]", 3, "ve…"},
		{"x", "", 0, ""},
	}
	for _, tc := range cases {
		if got := FitLabel(tc.name, tc.suffix, tc.width); got != tc.want {
			t.Fatalf("FitLabel(%q, %q, %d): expected %q, got %q", tc.name, tc.suffix, tc.width, tc.want, got)
		}
	}
}

func TestAccessibleTrackTree(t *testing.T) {
	tr := newThreadFixture(t, testutil.MainThread, nil)
	c := newCanvas(unitFrame())
	tr.Draw(c, view.PickingNone, 0)
	node := a11y.Snapshot(tr.GetOrCreateAccessibleInterface())
	if node.Role != a11y.RoleGrouping || node.Name != "main" {
		t.Fatalf("unexpected root node %#v", node)
	}
	tab, ok := node.Find("main_tab")
	if !ok || tab.Rect.Size.X != timegraph.DefaultLayout().TrackTabWidth {
		t.Fatalf("expected tab sized to the tab width, got %#v", tab)
	}
	content, ok := node.Find("main_content")
	if !ok || len(content.Children) != 4 {
		t.Fatalf("expected three bars and the timers pane, got %#v", content)
	}
	timers, ok := node.Find("Timers")
	if !ok || timers.Rect.Pos.Y != 3 || timers.Rect.Size.Y != 2 {
		t.Fatalf("unexpected timers pane %#v", timers)
	}
	if tr.GetOrCreateAccessibleInterface() != tr.GetOrCreateAccessibleInterface() {
		t.Fatalf("expected cached facade")
	}
}

func TestThreadTrackTabIsPickableAboveBars(t *testing.T) {
	tr := newThreadFixture(t, testutil.MainThread, &recorder{})
	c := newCanvas(unitFrame())
	tr.Draw(c, view.PickingClick, 0)
	var tab, label batch.ID
	for _, p := range c.b.Primitives() {
		switch p.Z {
		case batch.ZTrackTab:
			tab = p.ID
		case batch.ZTrackTabText:
			label = p.ID
		}
	}
	if !tab.Valid() || tab == batch.NewID(batch.KindElement, tr.ElementID(), 0) {
		t.Fatalf("expected the tab to carry its own id, got %s", tab)
	}
	if label.Kind() != batch.KindText {
		t.Fatalf("expected a pickable label, got %s", label)
	}
	for _, id := range []batch.ID{tab, label} {
		if target, ok := c.b.Target(id); !ok || target != batch.Target(tr) {
			t.Fatalf("expected %s to resolve to the thread track", id)
		}
		if tip := tr.Tooltip(id); !strings.Contains(tip, "Thread track") {
			t.Fatalf("expected track tooltip for %s, got %q", id, tip)
		}
	}
}

func TestThreadTrackTabBrightensWhileHeld(t *testing.T) {
	tr := newThreadFixture(t, testutil.MainThread, &recorder{})
	tr.OnPick(5, 0)
	c := newCanvas(unitFrame())
	tr.Draw(c, view.PickingNone, 0)
	want := colorTabSelected.Lighten(tabPickedLighten)
	found := false
	for _, p := range c.b.Primitives() {
		if p.Z == batch.ZTrackTab && p.Color == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the held tab drawn lighter")
	}
}
