package dungeon

// FeatureKind identifies the type of a fixed feature.
type FeatureKind uint8

const (
	FeatureDoor FeatureKind = iota
	FeatureTreasure
	FeatureEncounter
)

// Feature is a coordinate-anchored game object overlaid on the rendered
// geometry: a door with open/closed state, a treasure chest, or an encounter
// marker. Ownership stays with the dungeon model; the scanner and renderer
// hold only per-frame references.
type Feature struct {
	X, Y int
	Kind FeatureKind

	// Door state. Hidden doors read as walls until revealed.
	Open   bool
	Hidden bool

	// Label names the feature in messages and on the automap. An encounter
	// or treasure without a label is missing its payload; the renderer
	// substitutes a placeholder shape rather than failing the frame.
	Label string
}

// Point is an integer tile coordinate, used as the feature index key.
type Point struct {
	X, Y int
}

// FeatureStore indexes fixed features by tile coordinate. Lookup order is
// insertion order per tile.
type FeatureStore struct {
	byTile map[Point][]*Feature
}

// NewFeatureStore creates an empty store.
func NewFeatureStore() *FeatureStore {
	return &FeatureStore{byTile: make(map[Point][]*Feature)}
}

// Add inserts a feature and returns the stored pointer, through which state
// such as a door's Open flag can be mutated later.
func (s *FeatureStore) Add(f Feature) *Feature {
	p := Point{f.X, f.Y}
	stored := &f
	s.byTile[p] = append(s.byTile[p], stored)
	return stored
}

// At returns the features anchored at (x, y), or nil.
func (s *FeatureStore) At(x, y int) []*Feature {
	return s.byTile[Point{x, y}]
}

// Door returns the door feature at (x, y), or nil when the tile has none.
func (s *FeatureStore) Door(x, y int) *Feature {
	for _, f := range s.byTile[Point{x, y}] {
		if f.Kind == FeatureDoor {
			return f
		}
	}
	return nil
}

// Remove deletes the feature from its tile. Removing a feature that was
// never stored is a no-op.
func (s *FeatureStore) Remove(f *Feature) {
	p := Point{f.X, f.Y}
	list := s.byTile[p]
	for i, stored := range list {
		if stored == f {
			s.byTile[p] = append(list[:i], list[i+1:]...)
			if len(s.byTile[p]) == 0 {
				delete(s.byTile, p)
			}
			return
		}
	}
}
