package track

import (
	"strings"
	"testing"

	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/picking"
	"github.com/atomicstack/timegraph/internal/testutil"
	"github.com/atomicstack/timegraph/internal/view"
)

func TestTwoStatesPickAndDescribe(t *testing.T) {
	registry := view.NewRegistry()
	tr := NewThreadStateTrack(testutil.TwoStates(t), testutil.MainThread, nil)
	registry.Register(tr)
	tr.SetSize(1000, 1)

	c := newCanvas(unitFrame())
	tr.Draw(c, view.PickingHover, 0)
	tr.UpdatePrimitives(c.b, c.f, view.PickingHover, 0)
	buffer := batch.NewPickBuffer(0, 0)
	buffer.Rasterize(c.b, 1000, 1)
	manager := picking.New(registry, c.b, buffer)
	manager.SetRoot(tr)

	boxes := boxesAt(c.b, batch.ZBox, batch.KindBox)
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(boxes))
	}
	first, second := boxes[0], boxes[1]
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %s twice", first.ID)
	}
	if first.Rect.Max().X > second.Rect.Pos.X {
		t.Fatalf("expected disjoint extents, got %#v and %#v", first.Rect, second.Rect)
	}
	if first.Color == second.Color {
		t.Fatalf("expected distinct state colours")
	}

	centre := first.Rect.Pos.X + first.Rect.Size.X/2
	if got := buffer.At(int(centre), 0); got != first.ID {
		t.Fatalf("expected %s under the first box, got %s", first.ID, got)
	}
	tip := manager.Tooltip(centre, 0)
	if !strings.HasPrefix(tip, "Running") {
		t.Fatalf("expected tooltip to start with Running, got %q", tip)
	}
	if tip := manager.Tooltip(second.Rect.Pos.X, 0); !strings.HasPrefix(tip, "Runnable") {
		t.Fatalf("expected Runnable at the second box, got %q", tip)
	}
}
