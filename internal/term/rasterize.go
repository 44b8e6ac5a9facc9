// Package term turns screen-space draw primitives into terminal cells on a
// tcell screen, and carries the small text helpers the HUD and overlays use.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"wireframe-crawler/internal/draw"
)

// Rasterizer paints primitive lists onto a rectangular cell region of a tcell
// screen. The region lets a caller keep part of the screen (a HUD strip, a
// sidebar) out of the viewport.
type Rasterizer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewRasterizer builds a Rasterizer covering width×height cells from the
// screen's top-left corner.
func NewRasterizer(screen tcell.Screen, width, height int) *Rasterizer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Rasterizer{screen: screen, width: width, height: height}
}

// Size reports the viewport dimensions in cells.
func (r *Rasterizer) Size() (int, int) { return r.width, r.height }

// Draw paints the primitives in list order. The list is painter-ordered by
// its producer, so no sorting happens here.
func (r *Rasterizer) Draw(prims []draw.Primitive) {
	for _, p := range prims {
		switch p.Kind {
		case draw.KindRect:
			if len(p.Points) < 2 {
				continue
			}
			x0, y0 := r.toCell(p.Points[0])
			x1, y1 := r.toCell(p.Points[1])
			if p.Style.Fill {
				r.fillRect(x0, y0, x1, y1, p.Style.Color)
			} else {
				r.strokeRect(x0, y0, x1, y1, p.Style.Color)
			}
		case draw.KindLine:
			r.strokePath(p.Points, false, p.Style.Color)
		case draw.KindPolygon:
			r.strokePath(p.Points, true, p.Style.Color)
		}
	}
}

// toCell maps a viewport coordinate to a cell index. Primitive coordinates
// span [0, width]×[0, height]; the far edge lands on the last cell.
func (r *Rasterizer) toCell(p draw.Point) (int, int) {
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	if x >= r.width {
		x = r.width - 1
	}
	if y >= r.height {
		y = r.height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

func (r *Rasterizer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// fillRect paints the rectangle with background color so any rune can later
// be drawn over it.
func (r *Rasterizer) fillRect(x0, y0, x1, y1 int, color tcell.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	style := tcell.StyleDefault.Background(color)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.set(x, y, ' ', style)
		}
	}
}

// strokeRect outlines the rectangle with box-drawing runes.
func (r *Rasterizer) strokeRect(x0, y0, x1, y1 int, color tcell.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	style := tcell.StyleDefault.Foreground(color)
	for x := x0 + 1; x < x1; x++ {
		r.set(x, y0, '─', style)
		r.set(x, y1, '─', style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.set(x0, y, '│', style)
		r.set(x1, y, '│', style)
	}
	if x0 == x1 && y0 == y1 {
		r.set(x0, y0, '□', style)
		return
	}
	r.set(x0, y0, '┌', style)
	r.set(x1, y0, '┐', style)
	r.set(x0, y1, '└', style)
	r.set(x1, y1, '┘', style)
}

// strokePath draws consecutive segments through the points, closing the loop
// for polygons.
func (r *Rasterizer) strokePath(points []draw.Point, closed bool, color tcell.Color) {
	if len(points) == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(color)
	if len(points) == 1 {
		x, y := r.toCell(points[0])
		r.set(x, y, '·', style)
		return
	}
	for i := 1; i < len(points); i++ {
		x0, y0 := r.toCell(points[i-1])
		x1, y1 := r.toCell(points[i])
		r.line(x0, y0, x1, y1, style)
	}
	if closed {
		x0, y0 := r.toCell(points[len(points)-1])
		x1, y1 := r.toCell(points[0])
		r.line(x0, y0, x1, y1, style)
	}
}

// line walks the segment with Bresenham's algorithm, picking one rune for the
// whole segment from its slope.
func (r *Rasterizer) line(x0, y0, x1, y1 int, style tcell.Style) {
	ch := segmentRune(x1-x0, y1-y0)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		r.set(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// segmentRune picks the stroke rune for a segment: near-horizontal and
// near-vertical runs get straight bars, everything else a diagonal matching
// the slope sign (y grows downward, so same-sign dx and dy lean like '╲').
func segmentRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady*2 <= adx:
		return '─'
	case adx*2 <= ady:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
