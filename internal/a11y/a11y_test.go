package a11y

import (
	"strings"
	"testing"

	"github.com/atomicstack/timegraph/internal/geom"
)

func testTree() *Virtual {
	leaf := &Virtual{Name: "tab", Role: RolePageTab, Rect: func() geom.Rect { return geom.RectOf(0, 1, 20, 1) }}
	track := &Virtual{Name: "main", Role: RoleGrouping, Children: func() []Accessible { return []Accessible{leaf, nil} }}
	return &Virtual{Name: "root", Role: RolePane, Children: func() []Accessible { return []Accessible{track} }}
}

func TestSnapshotSkipsNilChildren(t *testing.T) {
	n := Snapshot(testTree())
	if n.Count() != 3 {
		t.Fatalf("expected 3 nodes, got %d", n.Count())
	}
	tab, ok := n.Find("tab")
	if !ok || tab.Role != RolePageTab || tab.Rect.Size.X != 20 {
		t.Fatalf("unexpected tab node %#v", tab)
	}
	if _, ok := n.Find("missing"); ok {
		t.Fatalf("expected missing name not to be found")
	}
}

func TestSnapshotNilRoot(t *testing.T) {
	if n := Snapshot(nil); n.Count() != 1 || n.Role != RoleNone {
		t.Fatalf("expected zero node, got %#v", n)
	}
}

func TestOutlineIndentsByDepth(t *testing.T) {
	lines := strings.Split(Snapshot(testTree()).Outline(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if lines[0] != `pane "root" (0,0 0x0)` {
		t.Fatalf("unexpected root line %q", lines[0])
	}
	if lines[2] != `    page-tab "tab" (0,1 20x1)` {
		t.Fatalf("unexpected leaf line %q", lines[2])
	}
}
