package geom

import (
	"encoding/binary"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/zeebo/blake3"
)

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a colour.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Transparent is used for pick-only geometry.
var Transparent = Color{}

// Opaque reports whether the colour fully covers what is beneath it.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// Invisible reports whether nothing of the colour would be displayed.
func (c Color) Invisible() bool {
	return c.A == 0
}

// WithAlpha returns c with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex renders the colour as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Over composites c on top of dst. The result is always opaque, which is what
// terminal cells can display.
func (c Color) Over(dst Color) Color {
	if c.Opaque() {
		return c
	}
	if c.Invisible() {
		return dst.WithAlpha(0xff)
	}
	t := float64(c.A) / 255
	blended := dst.colorful().BlendRgb(c.colorful(), t).Clamped()
	r, g, b := blended.RGB255()
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Lighten mixes the colour towards white by t in [0,1].
func (c Color) Lighten(t float64) Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	blended := c.colorful().BlendRgb(white, t).Clamped()
	r, g, b := blended.RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

// ColorFromName derives a stable, saturated colour from a name so that the same
// category is always drawn with the same colour across sessions.
func ColorFromName(name string) Color {
	sum := blake3.Sum256([]byte(name))
	h := binary.LittleEndian.Uint64(sum[:8])
	hue := float64(h%360) + float64((h>>16)%100)/100
	c := colorful.Hsv(hue, 0.55, 0.85).Clamped()
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 0xff}
}
