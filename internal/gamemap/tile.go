package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileHiddenDoor
	TileStairsUp
	TileStairsDown
	TileTreasure
	TileExit
)

// String returns a short name for the tile kind, for messages and tests.
func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoor:
		return "door"
	case TileHiddenDoor:
		return "hidden door"
	case TileStairsUp:
		return "stairs up"
	case TileStairsDown:
		return "stairs down"
	case TileTreasure:
		return "treasure"
	case TileExit:
		return "exit"
	}
	return "unknown"
}

// Tile holds the kind and automap state for one map cell.
type Tile struct {
	Kind     TileKind
	Explored bool
}

// MakeWall returns a solid wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall}
}

// MakeFloor returns an open floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor}
}

// Make returns a tile of the given kind.
func Make(k TileKind) Tile {
	return Tile{Kind: k}
}
