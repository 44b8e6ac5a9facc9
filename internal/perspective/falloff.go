package perspective

import "math"

// falloffRate tunes how fast geometry contracts toward the vanishing point.
const falloffRate = 0.9

// scale returns the perspective contraction factor at integer distance d,
// hyperbolic like a raycaster's height/distance rule. It decreases
// monotonically from 1 at d=0, approaches 0 without reaching it, and never
// goes negative, so projected widths stay finite at any distance.
func scale(d int) float64 {
	if d < 0 {
		d = 0
	}
	return 1 / (1 + falloffRate*float64(d))
}

// frame is the rectangle a distance step projects onto: nested boxes that
// converge toward the vanishing point at the viewport center.
type frame struct {
	leftX, rightX float64
	topY, bottomY float64
}

// frameAt computes the frame for distance d in a w×h viewport. Frame 0 is
// the full viewport. Degenerate sizes collapse to an empty centered frame
// instead of producing negative or non-finite bounds.
func frameAt(d int, w, h float64) frame {
	if !(w > 0) || math.IsInf(w, 0) {
		w = 0
	}
	if !(h > 0) || math.IsInf(h, 0) {
		h = 0
	}
	s := scale(d)
	cx, cy := w/2, h/2
	return frame{
		leftX:   cx - cx*s,
		rightX:  cx + cx*s,
		topY:    cy - cy*s,
		bottomY: cy + cy*s,
	}
}

// depth maps a distance to a [0, 1) dimming amount using the same falloff
// as the geometry, so style and size agree about how far away things look.
func depth(d int) float64 {
	return 1 - scale(d)
}
