package draw

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style carries the flat appearance of a primitive. Walls get dimmer with
// distance; there is no lighting model beyond that.
type Style struct {
	Color tcell.Color
	Fill  bool // rects and polygons: fill the interior instead of stroking
}

// Stroke returns an outline style in the given color.
func Stroke(c tcell.Color) Style { return Style{Color: c} }

// Filled returns a fill style in the given color.
func Filled(c tcell.Color) Style { return Style{Color: c, Fill: true} }

// Shade attenuates a color toward black by depth in [0, 1]; 0 leaves the
// color untouched, 1 is fully dark. Blending runs in Lab space so mid
// distances stay readable instead of collapsing into murk.
func Shade(base tcell.Color, depth float64) tcell.Color {
	if depth <= 0 {
		return base
	}
	if depth > 1 {
		depth = 1
	}
	r, g, b := base.TrueColor().RGB()
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	dark := colorful.Color{}
	out := c.BlendLab(dark, depth).Clamped()
	or, og, ob := out.RGB255()
	return tcell.NewRGBColor(int32(or), int32(og), int32(ob))
}
