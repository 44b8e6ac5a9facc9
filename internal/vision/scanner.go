// Package vision walks the tile grid along the viewer's facing axis and
// reports, per distance step, what the first-person renderer needs to draw:
// the forward tile, whether the line of sight is blocked, the wall state of
// the flanking tiles, and any fixed features in view.
package vision

import (
	"errors"

	"wireframe-crawler/internal/dungeon"
	"wireframe-crawler/internal/gamemap"
)

// Grid is the read-only tile access the scanner needs. TileAt must return
// the wall sentinel for out-of-bounds coordinates (gamemap.GameMap does).
type Grid interface {
	TileAt(x, y int) gamemap.TileKind
	InBounds(x, y int) bool
}

// FeatureSource looks up fixed features by tile coordinate. A nil source is
// treated as "no features anywhere".
type FeatureSource interface {
	At(x, y int) []*dungeon.Feature
}

// Sighting ties a fixed feature to the lane it was seen in.
type Sighting struct {
	Feature *dungeon.Feature
	Offset  int // -1 left lane, 0 center, +1 right lane
}

// Record is the visibility result for one distance step along the facing
// axis. Every field is derived directly from the grid for that distance;
// nothing is carried over from earlier records, so a single wrong step
// cannot compound into the rest of the scan.
type Record struct {
	Distance   int
	CenterTile gamemap.TileKind

	// CenterBlocked is true when the forward line of sight ends at this
	// distance (wall, closed door, or map edge). The record itself is still
	// complete: its side data describes the flanks of the blocking tile.
	CenterBlocked bool

	// LeftWall / RightWall report a sight-blocking tile at the perpendicular
	// offset for this distance. Independent of CenterBlocked.
	LeftWall  bool
	RightWall bool

	// LeftOpenPrev / RightOpenPrev report whether the same side was open one
	// step nearer the viewer. The renderer uses this to decide whether a
	// side wall continues from the previous slice or begins here with a
	// visible leading edge.
	LeftOpenPrev  bool
	RightOpenPrev bool

	Features []Sighting
}

var (
	// ErrInvalidFacing reports a pose with a non-cardinal facing. This is an
	// upstream state bug, never clamped to a default direction.
	ErrInvalidFacing = errors.New("vision: facing is not a cardinal direction")

	// ErrPoseOutOfBounds reports a pose standing outside the grid.
	ErrPoseOutOfBounds = errors.New("vision: pose is outside the grid")
)

// Scan produces visibility records for distances 1..maxDistance, stopping
// early after the record whose center tile blocks the view. Distance 0 is
// the viewer's own tile and is never reported. maxDistance values below 1
// are clamped to 1. Scan is a pure function of its inputs: scanning twice
// with the same grid and pose yields identical records.
func Scan(grid Grid, features FeatureSource, pose dungeon.Pose, maxDistance int) ([]Record, error) {
	if !pose.Facing.Valid() {
		return nil, ErrInvalidFacing
	}
	if !grid.InBounds(pose.X, pose.Y) {
		return nil, ErrPoseOutOfBounds
	}
	if maxDistance < 1 {
		maxDistance = 1
	}

	fx, fy := pose.Facing.Forward()
	rx, ry := pose.Facing.Right()
	lx, ly := -rx, -ry

	records := make([]Record, 0, maxDistance)
	for d := 1; d <= maxDistance; d++ {
		cx, cy := pose.X+fx*d, pose.Y+fy*d
		px, py := pose.X+fx*(d-1), pose.Y+fy*(d-1)

		rec := Record{
			Distance:      d,
			CenterTile:    grid.TileAt(cx, cy),
			CenterBlocked: blocksSight(grid, features, cx, cy),
			LeftWall:      blocksSight(grid, features, cx+lx, cy+ly),
			RightWall:     blocksSight(grid, features, cx+rx, cy+ry),
			LeftOpenPrev:  !blocksSight(grid, features, px+lx, py+ly),
			RightOpenPrev: !blocksSight(grid, features, px+rx, py+ry),
		}
		rec.Features = collect(features, rec.Features, cx+lx, cy+ly, -1)
		rec.Features = collect(features, rec.Features, cx, cy, 0)
		rec.Features = collect(features, rec.Features, cx+rx, cy+ry, +1)

		records = append(records, rec)
		if rec.CenterBlocked {
			break
		}
	}
	return records, nil
}

// blocksSight reports whether the tile at (x, y) terminates a line of sight.
// Out-of-bounds reads come back as wall from the grid, so map edges block.
// Doors block only while closed; their open state comes from the door
// feature when one exists, and an unrecorded door reads as closed. Tile
// kinds this package does not know are treated as wall — fail safe, never
// see through undefined geometry.
func blocksSight(grid Grid, features FeatureSource, x, y int) bool {
	switch grid.TileAt(x, y) {
	case gamemap.TileFloor, gamemap.TileStairsUp, gamemap.TileStairsDown,
		gamemap.TileTreasure, gamemap.TileExit:
		return false
	case gamemap.TileDoor, gamemap.TileHiddenDoor:
		return !doorOpen(features, x, y)
	default: // TileWall and anything unrecognized
		return true
	}
}

// doorOpen reports the open state of the door at (x, y).
func doorOpen(features FeatureSource, x, y int) bool {
	if features == nil {
		return false
	}
	for _, f := range features.At(x, y) {
		if f.Kind == dungeon.FeatureDoor {
			return f.Open
		}
	}
	return false
}

// collect appends sightings for every feature at (x, y), tagged with the
// lane offset.
func collect(features FeatureSource, dst []Sighting, x, y, offset int) []Sighting {
	if features == nil {
		return dst
	}
	for _, f := range features.At(x, y) {
		dst = append(dst, Sighting{Feature: f, Offset: offset})
	}
	return dst
}
