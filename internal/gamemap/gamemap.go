package gamemap

// GameMap holds the tile grid for one maze level. It is immutable during a
// render pass; only movement logic between frames replaces tiles (opening a
// door, collecting treasure).
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// TileAt returns the kind of the tile at (x, y). Out-of-bounds coordinates
// report TileWall so map edges read as solid and callers never index past the
// grid.
func (m *GameMap) TileAt(x, y int) TileKind {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x].Kind
}

// MarkExplored records that (x, y) has been seen, for the automap overlay.
// Out-of-bounds coordinates are ignored.
func (m *GameMap) MarkExplored(x, y int) {
	if m.InBounds(x, y) {
		m.Tiles[y][x].Explored = true
	}
}
