package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/atomicstack/timegraph/internal/batch"
	"github.com/atomicstack/timegraph/internal/geom"
)

// cell is one terminal cell of the canvas. An empty ch is the trailing half of
// a wide grapheme and renders as nothing.
type cell struct {
	ch string
	fg geom.Color
	bg geom.Color
}

// grid rasterizes a frame's primitives into terminal cells. Primitives are
// painted in z order and composited with geom.Color.Over, so translucent
// boxes tint whatever lies beneath them.
type grid struct {
	width  int
	height int
	cells  []cell
}

func newGrid(width, height int, bg geom.Color) *grid {
	width, height = max(width, 0), max(height, 0)
	g := &grid{width: width, height: height, cells: make([]cell, width*height)}
	for i := range g.cells {
		g.cells[i] = cell{ch: " ", fg: bg, bg: bg}
	}
	return g
}

func (g *grid) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// paint draws prims, which must already be in z order.
func (g *grid) paint(prims []batch.Primitive) {
	for _, p := range prims {
		if p.Color.Invisible() {
			continue
		}
		switch p.Shape {
		case batch.ShapeText:
			g.text(int(p.Rect.Pos.X), int(p.Rect.Pos.Y), p.Text, p.Color)
		default:
			p.Cover(g.width, g.height, func(x, y int) {
				c := g.at(x, y)
				c.bg = p.Color.Over(c.bg)
				if p.Color.Opaque() {
					c.ch = " "
				}
			})
		}
	}
}

// text writes s from (x, y) keeping the background of each cell it covers.
func (g *grid) text(x, y int, s string, color geom.Color) {
	if y < 0 || y >= g.height {
		return
	}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := ansi.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if x+w > g.width {
			return
		}
		if x >= 0 {
			c := g.at(x, y)
			c.ch = cluster
			c.fg = color.Over(c.bg)
			for i := 1; i < w; i++ {
				if tail := g.at(x+i, y); tail != nil {
					tail.ch = ""
					tail.bg = c.bg
				}
			}
		}
		x += w
	}
}

// box fills a rectangle of cells with bg and writes lines into it, one per
// row, starting one column in.
func (g *grid) box(x, y, w, h int, lines []string, fg, bg geom.Color) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if c := g.at(x+col, y+row); c != nil {
				*c = cell{ch: " ", fg: fg, bg: bg}
			}
		}
	}
	for i, line := range lines {
		if i >= h {
			break
		}
		g.text(x+1, y+i, line, fg)
	}
}

type styleKey struct {
	fg, bg geom.Color
}

// render turns the grid into styled lines, one style run per stretch of cells
// sharing colours.
func (g *grid) render() []string {
	cache := map[styleKey]lipgloss.Style{}
	style := func(k styleKey) lipgloss.Style {
		s, ok := cache[k]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(k.fg.Hex())).Background(lipgloss.Color(k.bg.Hex()))
			cache[k] = s
		}
		return s
	}
	lines := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var line, run strings.Builder
		var key styleKey
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(style(key).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			k := styleKey{fg: c.fg, bg: c.bg}
			if x > 0 && k != key {
				flush()
			}
			key = k
			run.WriteString(c.ch)
		}
		flush()
		lines[y] = line.String()
	}
	return lines
}

// plain returns the grid text without styling.
func (g *grid) plain() []string {
	lines := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		for x := 0; x < g.width; x++ {
			b.WriteString(g.cells[y*g.width+x].ch)
		}
		lines[y] = b.String()
	}
	return lines
}
