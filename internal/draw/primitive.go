// Package draw defines the screen-space primitive list the perspective
// renderer emits and a drawing surface consumes. The list is plain data so
// rendering stays testable without a display.
package draw

// Kind selects the primitive geometry.
type Kind uint8

const (
	// KindLine is a polyline through two or more points.
	KindLine Kind = iota
	// KindRect is an axis-aligned rectangle given as [min, max] corners.
	KindRect
	// KindPolygon is a closed outline through three or more vertices.
	KindPolygon
)

// Tag names what a primitive depicts, so consumers can style consistently
// and tests can find specific geometry in the list.
type Tag uint8

const (
	TagCeiling Tag = iota
	TagFloor
	TagVoid      // open darkness past the deepest visible distance
	TagFrontWall // wall face terminating the forward corridor
	TagSideWall  // flanking wall slice
	TagConnector // side wall adjacent to the viewer, anchored at the screen corners
	TagWallEdge  // leading edge where a side wall begins after an opening
	TagFeature   // door frame, treasure, portal, silhouette, placeholder
)

// Point is a screen-space coordinate. Y grows downward.
type Point struct {
	X, Y float64
}

// Primitive is one draw call. Points holds a polyline for KindLine, the two
// opposite corners for KindRect, and the vertex ring for KindPolygon.
type Primitive struct {
	Kind     Kind
	Tag      Tag
	Distance int // the visibility distance this geometry came from
	Points   []Point
	Style    Style
}

// Line builds a polyline primitive.
func Line(tag Tag, distance int, style Style, pts ...Point) Primitive {
	return Primitive{Kind: KindLine, Tag: tag, Distance: distance, Points: pts, Style: style}
}

// Rect builds a rectangle primitive from its min and max corners.
func Rect(tag Tag, distance int, style Style, min, max Point) Primitive {
	return Primitive{Kind: KindRect, Tag: tag, Distance: distance, Points: []Point{min, max}, Style: style}
}

// Polygon builds a closed-outline primitive.
func Polygon(tag Tag, distance int, style Style, pts ...Point) Primitive {
	return Primitive{Kind: KindPolygon, Tag: tag, Distance: distance, Points: pts, Style: style}
}
