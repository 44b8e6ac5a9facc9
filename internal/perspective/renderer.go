// Package perspective converts visibility records into a screen-space
// wireframe draw list: nested frames converging on a vanishing point, side
// walls as trapezoid slices between consecutive frames, and feature overlays
// scaled by the same falloff. It holds no state between frames.
package perspective

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"wireframe-crawler/internal/draw"
	"wireframe-crawler/internal/gamemap"
	"wireframe-crawler/internal/vision"
)

var (
	wallColor    = tcell.ColorGreen
	faceFill     = tcell.NewRGBColor(0, 26, 0)
	ceilingColor = tcell.NewRGBColor(16, 16, 28)
	floorColor   = tcell.NewRGBColor(30, 24, 14)
	voidColor    = tcell.ColorBlack
)

// Render converts visibility records into an ordered draw list for a
// width×height viewport. Primitives are emitted back-to-front: background
// fills first, then wall slices from the deepest record toward the viewer,
// so nearer geometry occludes farther geometry on any painter-style surface.
//
// Malformed input degrades to an empty frame: no records, or a degenerate
// viewport, yields nil rather than an error, because a momentarily empty
// scan must not break the caller's draw loop.
func Render(records []vision.Record, width, height int) []draw.Primitive {
	if len(records) == 0 || width <= 0 || height <= 0 {
		return nil
	}
	w, h := float64(width), float64(height)

	deepest := records[len(records)-1]
	horizon := frameAt(deepest.Distance, w, h)
	if deepest.CenterBlocked {
		// The front wall face sits one frame nearer than the blocking tile.
		horizon = frameAt(deepest.Distance-1, w, h)
	}

	prims := make([]draw.Primitive, 0, 4+len(records)*3)

	// Background fills, bounded by the deepest visible geometry.
	prims = append(prims,
		draw.Rect(draw.TagCeiling, deepest.Distance, draw.Filled(ceilingColor),
			draw.Point{X: 0, Y: 0}, draw.Point{X: w, Y: horizon.topY}),
		draw.Rect(draw.TagFloor, deepest.Distance, draw.Filled(floorColor),
			draw.Point{X: 0, Y: horizon.bottomY}, draw.Point{X: w, Y: h}),
	)
	if !deepest.CenterBlocked {
		// The corridor runs past max range: fill the vanishing region with
		// darkness instead of a wall face.
		prims = append(prims, draw.Rect(draw.TagVoid, deepest.Distance, draw.Filled(voidColor),
			draw.Point{X: horizon.leftX, Y: horizon.topY},
			draw.Point{X: horizon.rightX, Y: horizon.bottomY}))
	}

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		near := frameAt(rec.Distance-1, w, h)
		far := frameAt(rec.Distance, w, h)

		if rec.LeftWall {
			prims = appendSideWall(prims, rec.Distance, rec.LeftOpenPrev,
				near.leftX, far.leftX, near, far)
		}
		if rec.RightWall {
			prims = appendSideWall(prims, rec.Distance, rec.RightOpenPrev,
				near.rightX, far.rightX, near, far)
		}

		if rec.CenterBlocked {
			shade := draw.Shade(wallColor, depth(rec.Distance))
			prims = append(prims,
				draw.Rect(draw.TagFrontWall, rec.Distance, draw.Filled(faceFill),
					draw.Point{X: near.leftX, Y: near.topY},
					draw.Point{X: near.rightX, Y: near.bottomY}),
				draw.Rect(draw.TagFrontWall, rec.Distance, draw.Stroke(shade),
					draw.Point{X: near.leftX, Y: near.topY},
					draw.Point{X: near.rightX, Y: near.bottomY}),
			)
		} else {
			prims = appendPortal(prims, rec.CenterTile, rec.Distance, near, far)
		}

		for _, s := range rec.Features {
			prims = appendFeature(prims, s, rec.Distance, near, far)
		}
	}

	clampPrims(prims, w, h)
	return prims
}

// appendSideWall emits one wall slice spanning the depth between the near
// and far frames on one side. The outline runs near-top → far-top →
// far-bottom → near-bottom in a single stroke.
//
// At distance 1 the near frame is the viewport itself, so the outline's
// first and last points are the screen's outer corners: that polyline is the
// corner connector, and it is the only place one is ever emitted. Slices at
// any greater distance attach to the previous frame, never to the corners.
//
// When the side was open one step nearer, the wall begins here and its near
// edge is visible: a vertical leading-edge cap closes the slice. A wall
// continuing from the previous slice gets no cap, so no line is drawn where
// no wall boundary exists.
func appendSideWall(dst []draw.Primitive, distance int, openPrev bool, nearX, farX float64, near, far frame) []draw.Primitive {
	shade := draw.Shade(wallColor, depth(distance))
	tag := draw.TagSideWall
	if distance == 1 {
		tag = draw.TagConnector
	}
	dst = append(dst, draw.Line(tag, distance, draw.Stroke(shade),
		draw.Point{X: nearX, Y: near.topY},
		draw.Point{X: farX, Y: far.topY},
		draw.Point{X: farX, Y: far.bottomY},
		draw.Point{X: nearX, Y: near.bottomY},
	))
	if distance > 1 && openPrev {
		dst = append(dst, draw.Line(draw.TagWallEdge, distance, draw.Stroke(shade),
			draw.Point{X: nearX, Y: near.topY},
			draw.Point{X: nearX, Y: near.bottomY},
		))
	}
	return dst
}

// appendPortal overlays stairs and exit markers when the open center tile at
// this distance is one. These come from the tile kind, not a feature record.
func appendPortal(dst []draw.Primitive, kind gamemap.TileKind, distance int, near, far frame) []draw.Primitive {
	switch kind {
	case gamemap.TileStairsUp, gamemap.TileStairsDown, gamemap.TileExit:
	default:
		return dst
	}

	cx := (near.leftX + near.rightX) / 2
	top := (near.topY + far.topY) / 2
	bottom := (near.bottomY + far.bottomY) / 2
	halfW := (far.rightX - far.leftX) * 0.3
	shade := draw.Shade(tcell.ColorAqua, depth(distance))

	dst = append(dst, draw.Rect(draw.TagFeature, distance, draw.Stroke(shade),
		draw.Point{X: cx - halfW, Y: top},
		draw.Point{X: cx + halfW, Y: bottom}))

	switch kind {
	case gamemap.TileStairsDown:
		dst = append(dst, draw.Line(draw.TagFeature, distance, draw.Stroke(shade),
			draw.Point{X: cx - halfW/2, Y: top + (bottom-top)*0.4},
			draw.Point{X: cx, Y: top + (bottom-top)*0.7},
			draw.Point{X: cx + halfW/2, Y: top + (bottom-top)*0.4},
		))
	case gamemap.TileStairsUp:
		dst = append(dst, draw.Line(draw.TagFeature, distance, draw.Stroke(shade),
			draw.Point{X: cx - halfW/2, Y: top + (bottom-top)*0.7},
			draw.Point{X: cx, Y: top + (bottom-top)*0.4},
			draw.Point{X: cx + halfW/2, Y: top + (bottom-top)*0.7},
		))
	case gamemap.TileExit:
		dst = append(dst, draw.Rect(draw.TagFeature, distance, draw.Stroke(shade),
			draw.Point{X: cx - halfW*0.55, Y: top + (bottom-top)*0.25},
			draw.Point{X: cx + halfW*0.55, Y: bottom - (bottom-top)*0.1}))
	}
	return dst
}

// clampPrims pins every coordinate inside the viewport and scrubs non-finite
// values. Degenerate geometry is recovered here, never passed downstream.
func clampPrims(prims []draw.Primitive, w, h float64) {
	for i := range prims {
		for j := range prims[i].Points {
			p := &prims[i].Points[j]
			p.X = clamp(p.X, 0, w)
			p.Y = clamp(p.Y, 0, h)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
