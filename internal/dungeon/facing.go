package dungeon

// Facing is one of the four cardinal directions the viewer can be oriented
// toward. It selects the forward and perpendicular scan axes.
type Facing uint8

const (
	North Facing = iota
	East
	South
	West
)

// basis maps each facing to its forward and right-hand unit vectors in grid
// space. Grid Y grows southward, so North is (0,-1) and its right hand is
// East; for South the right hand flips to West. A single table keeps the
// left/right mapping consistent across all four facings instead of spreading
// it over per-direction branches.
var basis = [4]struct {
	fx, fy int // forward
	rx, ry int // right (left is the negation)
}{
	North: {0, -1, 1, 0},
	East:  {1, 0, 0, 1},
	South: {0, 1, -1, 0},
	West:  {-1, 0, 0, -1},
}

// Valid reports whether f is one of the four cardinal directions.
func (f Facing) Valid() bool { return f <= West }

// Forward returns the unit step vector along the facing axis.
func (f Facing) Forward() (dx, dy int) {
	b := basis[f]
	return b.fx, b.fy
}

// Right returns the unit vector perpendicular to the facing axis, on the
// viewer's right-hand side. The left-hand vector is its negation.
func (f Facing) Right() (dx, dy int) {
	b := basis[f]
	return b.rx, b.ry
}

// TurnLeft returns the facing rotated 90° counterclockwise.
func (f Facing) TurnLeft() Facing { return (f + 3) % 4 }

// TurnRight returns the facing rotated 90° clockwise.
func (f Facing) TurnRight() Facing { return (f + 1) % 4 }

// String returns the compass name of the facing.
func (f Facing) String() string {
	switch f {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "invalid"
}

// Pose is the viewer's grid-aligned position and orientation. There is no
// sub-tile position or free rotation; movement logic replaces the whole pose
// between frames.
type Pose struct {
	X, Y   int
	Facing Facing
}

// Ahead returns the coordinate dist steps in front of the pose.
func (p Pose) Ahead(dist int) (x, y int) {
	fx, fy := p.Facing.Forward()
	return p.X + fx*dist, p.Y + fy*dist
}
