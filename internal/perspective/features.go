package perspective

import (
	"github.com/gdamore/tcell/v2"

	"wireframe-crawler/internal/draw"
	"wireframe-crawler/internal/dungeon"
	"wireframe-crawler/internal/vision"
)

var (
	doorColor     = tcell.ColorSandyBrown
	treasureColor = tcell.ColorGold
	monsterColor  = tcell.ColorRed
	unknownColor  = tcell.ColorGray
)

// lane is the screen region a feature occupies: the center corridor or one
// of the flanking tiles of its distance slice.
type lane struct {
	cx          float64 // horizontal center
	top, bottom float64
	width       float64
}

// laneBounds locates the lane for an offset (-1 left, 0 center, +1 right)
// between the near and far frames of a distance slice. Side lanes sit on the
// trapezoid between the two frames; vertical bounds are the slice midpoints
// so features scale with the same falloff as the walls around them.
func laneBounds(offset int, near, far frame) lane {
	top := (near.topY + far.topY) / 2
	bottom := (near.bottomY + far.bottomY) / 2
	switch offset {
	case -1:
		return lane{
			cx:    (near.leftX + far.leftX) / 2,
			top:   top, bottom: bottom,
			width: far.leftX - near.leftX,
		}
	case +1:
		return lane{
			cx:    (near.rightX + far.rightX) / 2,
			top:   top, bottom: bottom,
			width: near.rightX - far.rightX,
		}
	default:
		return lane{
			cx:    (near.leftX + near.rightX) / 2,
			top:   top, bottom: bottom,
			width: far.rightX - far.leftX,
		}
	}
}

// appendFeature emits the overlay for one sighting. A feature whose kind is
// unknown, or whose kind requires a label it does not have, renders as a
// generic placeholder box — one bad record never costs the whole frame.
func appendFeature(dst []draw.Primitive, s vision.Sighting, distance int, near, far frame) []draw.Primitive {
	f := s.Feature
	if f == nil {
		return dst
	}
	ln := laneBounds(s.Offset, near, far)
	if ln.width < 0 {
		ln.width = -ln.width
	}

	switch f.Kind {
	case dungeon.FeatureDoor:
		if f.Hidden && !f.Open {
			return dst // concealed: reads as plain wall until revealed
		}
		return appendDoor(dst, f, distance, ln)
	case dungeon.FeatureTreasure:
		if f.Label == "" {
			return appendPlaceholder(dst, distance, ln)
		}
		return appendTreasure(dst, distance, ln)
	case dungeon.FeatureEncounter:
		if f.Label == "" {
			return appendPlaceholder(dst, distance, ln)
		}
		return appendMonster(dst, distance, ln)
	default:
		return appendPlaceholder(dst, distance, ln)
	}
}

// appendDoor draws a door frame filling most of its lane. A closed door is a
// full outline with a knob mark; an open door is just the posts and lintel
// around the opening.
func appendDoor(dst []draw.Primitive, f *dungeon.Feature, distance int, ln lane) []draw.Primitive {
	shade := draw.Shade(doorColor, depth(distance))
	halfW := ln.width * 0.28
	top := ln.bottom - (ln.bottom-ln.top)*0.85

	if f.Open {
		return append(dst, draw.Line(draw.TagFeature, distance, draw.Stroke(shade),
			draw.Point{X: ln.cx - halfW, Y: ln.bottom},
			draw.Point{X: ln.cx - halfW, Y: top},
			draw.Point{X: ln.cx + halfW, Y: top},
			draw.Point{X: ln.cx + halfW, Y: ln.bottom},
		))
	}
	dst = append(dst, draw.Rect(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: ln.cx - halfW, Y: top},
		draw.Point{X: ln.cx + halfW, Y: ln.bottom}))
	// Knob.
	knobY := top + (ln.bottom-top)*0.55
	return append(dst, draw.Line(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: ln.cx + halfW*0.55, Y: knobY},
		draw.Point{X: ln.cx + halfW*0.75, Y: knobY},
	))
}

// appendTreasure draws a chest: a filled body with a lid line.
func appendTreasure(dst []draw.Primitive, distance int, ln lane) []draw.Primitive {
	shade := draw.Shade(treasureColor, depth(distance))
	halfW := ln.width * 0.22
	height := (ln.bottom - ln.top) * 0.3
	top := ln.bottom - height
	dst = append(dst, draw.Rect(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: ln.cx - halfW, Y: top},
		draw.Point{X: ln.cx + halfW, Y: ln.bottom}))
	return append(dst, draw.Line(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: ln.cx - halfW, Y: top + height*0.35},
		draw.Point{X: ln.cx + halfW, Y: top + height*0.35},
	))
}

// appendMonster draws an encounter silhouette: a diamond standing on the
// lane floor.
func appendMonster(dst []draw.Primitive, distance int, ln lane) []draw.Primitive {
	shade := draw.Shade(monsterColor, depth(distance))
	height := (ln.bottom - ln.top) * 0.55
	halfW := ln.width * 0.18
	return append(dst, draw.Polygon(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: ln.cx, Y: ln.bottom - height},
		draw.Point{X: ln.cx + halfW, Y: ln.bottom - height/2},
		draw.Point{X: ln.cx, Y: ln.bottom},
		draw.Point{X: ln.cx - halfW, Y: ln.bottom - height/2},
	))
}

// appendPlaceholder draws the generic crossed box used when a feature cannot
// be identified well enough to draw properly.
func appendPlaceholder(dst []draw.Primitive, distance int, ln lane) []draw.Primitive {
	shade := draw.Shade(unknownColor, depth(distance))
	halfW := ln.width * 0.2
	height := (ln.bottom - ln.top) * 0.4
	top := ln.bottom - height
	dst = append(dst, draw.Rect(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: ln.cx - halfW, Y: top},
		draw.Point{X: ln.cx + halfW, Y: ln.bottom}))
	dst = append(dst, draw.Line(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: ln.cx - halfW, Y: top},
		draw.Point{X: ln.cx + halfW, Y: ln.bottom}))
	return append(dst, draw.Line(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: ln.cx - halfW, Y: ln.bottom},
		draw.Point{X: ln.cx + halfW, Y: top}))
}
