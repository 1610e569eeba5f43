// Package a11y describes the accessibility facade exposed by timeline
// elements: a tree of (role, bounding rect, name) nodes that mirrors the view
// element tree.
package a11y

import (
	"fmt"
	"strings"

	"github.com/atomicstack/timegraph/internal/geom"
)

type Role int

const (
	RoleNone Role = iota
	RoleGrouping
	RolePane
	RolePageTab
	RoleGraphic
	RoleChart
)

func (r Role) String() string {
	switch r {
	case RoleGrouping:
		return "grouping"
	case RolePane:
		return "pane"
	case RolePageTab:
		return "page-tab"
	case RoleGraphic:
		return "graphic"
	case RoleChart:
		return "chart"
	default:
		return "none"
	}
}

// Accessible is the facade of one element. Implementations compute their
// answers on demand from the element they describe.
type Accessible interface {
	AccessibleName() string
	AccessibleRole() Role
	AccessibleRect() geom.Rect
	AccessibleChildren() []Accessible
}

// Node is a detached snapshot of an Accessible tree.
type Node struct {
	Role     Role
	Name     string
	Rect     geom.Rect
	Children []Node
}

// Snapshot walks root and copies it into a Node tree. A nil root yields the
// zero Node.
func Snapshot(root Accessible) Node {
	if root == nil {
		return Node{}
	}
	n := Node{Role: root.AccessibleRole(), Name: root.AccessibleName(), Rect: root.AccessibleRect()}
	for _, child := range root.AccessibleChildren() {
		if child == nil {
			continue
		}
		n.Children = append(n.Children, Snapshot(child))
	}
	return n
}

// Find returns the first node in depth-first order whose name matches.
func (n Node) Find(name string) (Node, bool) {
	if n.Name == name {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(name); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Count returns the number of nodes in the tree rooted at n.
func (n Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Outline renders the tree one node per line, indented by depth.
func (n Node) Outline() string {
	var b strings.Builder
	n.outline(&b, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func (n Node) outline(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s %q (%g,%g %gx%g)\n", strings.Repeat("  ", depth), n.Role, n.Name,
		n.Rect.Pos.X, n.Rect.Pos.Y, n.Rect.Size.X, n.Rect.Size.Y)
	for _, c := range n.Children {
		c.outline(b, depth+1)
	}
}

// Virtual is an accessible node that has no view element of its own, such as
// the tab and content halves of a track.
type Virtual struct {
	Name     string
	Role     Role
	Rect     func() geom.Rect
	Children func() []Accessible
}

func (v *Virtual) AccessibleName() string { return v.Name }
func (v *Virtual) AccessibleRole() Role   { return v.Role }

func (v *Virtual) AccessibleRect() geom.Rect {
	if v.Rect == nil {
		return geom.Rect{}
	}
	return v.Rect()
}

func (v *Virtual) AccessibleChildren() []Accessible {
	if v.Children == nil {
		return nil
	}
	return v.Children()
}
