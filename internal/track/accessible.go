package track

import (
	"github.com/atomicstack/timegraph/internal/a11y"
	"github.com/atomicstack/timegraph/internal/geom"
	"github.com/atomicstack/timegraph/internal/view"
)

// accessibleBar exposes a sub-track bar.
type accessibleBar struct {
	el   view.Element
	name string
}

func (a *accessibleBar) AccessibleName() string                { return a.name }
func (a *accessibleBar) AccessibleRole() a11y.Role             { return a11y.RoleGraphic }
func (a *accessibleBar) AccessibleRect() geom.Rect             { return a.el.Node().ScreenRect() }
func (a *accessibleBar) AccessibleChildren() []a11y.Accessible { return nil }

// accessibleTrack exposes a thread track as two virtual children: the tab and
// the content. The content lists the visible bars and, when a call is in
// view, a "Timers" pane.
type accessibleTrack struct {
	t       *ThreadTrack
	tab     *a11y.Virtual
	content *a11y.Virtual
	timers  *a11y.Virtual
}

func newAccessibleTrack(t *ThreadTrack) *accessibleTrack {
	a := &accessibleTrack{t: t}
	a.tab = &a11y.Virtual{
		Name: t.Name() + "_tab",
		Role: a11y.RolePageTab,
		Rect: func() geom.Rect {
			r := t.ScreenRect()
			if c := t.Canvas(); c != nil {
				r.Size.X = c.Frame().Layout.TrackTabWidth
			}
			return r
		},
	}
	a.content = &a11y.Virtual{
		Name: t.Name() + "_content",
		Role: a11y.RolePane,
		Rect: func() geom.Rect {
			r := t.ScreenRect()
			if c := t.Canvas(); c != nil {
				left := c.Frame().Layout.TrackTabWidth
				r.Pos.X += left
				r.Size.X -= left
			}
			return r
		},
		Children: a.contentChildren,
	}
	a.timers = &a11y.Virtual{
		Name: "Timers",
		Role: a11y.RolePane,
		Rect: func() geom.Rect {
			r := t.ScreenRect()
			r.Pos.Y += t.timerTop
			r.Size.Y -= t.timerTop
			return r
		},
	}
	return a
}

func (a *accessibleTrack) AccessibleName() string    { return a.t.Name() }
func (a *accessibleTrack) AccessibleRole() a11y.Role { return a11y.RoleGrouping }
func (a *accessibleTrack) AccessibleRect() geom.Rect { return a.t.ScreenRect() }

func (a *accessibleTrack) AccessibleChildren() []a11y.Accessible {
	return []a11y.Accessible{a.tab, a.content}
}

func (a *accessibleTrack) contentChildren() []a11y.Accessible {
	var out []a11y.Accessible
	for _, c := range a.t.VisibleChildren() {
		if acc := c.Node().GetOrCreateAccessibleInterface(); acc != nil {
			out = append(out, acc)
		}
	}
	if c := a.t.Canvas(); c != nil {
		f := c.Frame()
		if a.t.VisibleTimers(f.Min, f.Max) {
			out = append(out, a.timers)
		}
	}
	return out
}
