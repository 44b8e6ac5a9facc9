package vision

import (
	"reflect"
	"testing"

	"wireframe-crawler/internal/dungeon"
	"wireframe-crawler/internal/gamemap"
)

// mapFrom builds a GameMap from rows of '#' (wall) and '.' (floor).
func mapFrom(rows []string) *gamemap.GameMap {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	m := gamemap.New(width, len(rows))
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				m.Set(x, y, gamemap.MakeFloor())
			}
		}
	}
	return m
}

// openMap creates a fully-open (all floor) map.
func openMap(width, height int) *gamemap.GameMap {
	m := gamemap.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
	return m
}

// mirrorRows flips the row order, mirroring the layout across the X axis.
func mirrorRows(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = row
	}
	return out
}

func TestScanOpenToMaxDistance(t *testing.T) {
	// With floor at every distance, nothing blocks and the deepest record
	// is exactly maxDistance.
	m := openMap(20, 20)
	recs, err := Scan(m, nil, dungeon.Pose{X: 10, Y: 10, Facing: dungeon.North}, 6)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(recs) != 6 {
		t.Fatalf("got %d records, want 6", len(recs))
	}
	for i, r := range recs {
		if r.Distance != i+1 {
			t.Errorf("record %d has Distance=%d, want %d", i, r.Distance, i+1)
		}
		if r.CenterBlocked {
			t.Errorf("distance %d blocked on an open map", r.Distance)
		}
	}
	if recs[len(recs)-1].Distance != 6 {
		t.Error("deepest record must sit at maxDistance")
	}
}

func TestScanStopsAtWall(t *testing.T) {
	rows := []string{
		"###",
		"#.#",
		"#.#",
		"#.#",
		"###",
	}
	m := mapFrom(rows)
	// Facing North from (1,3): distance 1 → (1,2), 2 → (1,1), 3 → (1,0) wall.
	recs, err := Scan(m, nil, dungeon.Pose{X: 1, Y: 3, Facing: dungeon.North}, 6)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3 (blocked at the wall)", len(recs))
	}
	last := recs[2]
	if !last.CenterBlocked || last.CenterTile != gamemap.TileWall {
		t.Errorf("last record %+v, want blocked wall", last)
	}
	// Earlier records stay unblocked and keep their side data.
	for _, r := range recs[:2] {
		if r.CenterBlocked {
			t.Errorf("distance %d should not be blocked", r.Distance)
		}
		if !r.LeftWall || !r.RightWall {
			t.Errorf("distance %d in the corridor should have walls both sides", r.Distance)
		}
	}
}

func TestScanOutOfBoundsReadsAsWall(t *testing.T) {
	// Scanning toward the map edge must block at the first virtual tile
	// past the last valid column, not error or run on.
	m := openMap(5, 5)
	recs, err := Scan(m, nil, dungeon.Pose{X: 3, Y: 2, Facing: dungeon.East}, 6)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	// Distance 1 → (4,2) floor, distance 2 → (5,2) off-grid.
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if !recs[1].CenterBlocked || recs[1].CenterTile != gamemap.TileWall {
		t.Errorf("record at the edge = %+v, want blocked wall sentinel", recs[1])
	}
}

func TestScanSidesIndependentOfBlockedCenter(t *testing.T) {
	// A wall dead ahead with open flanks: the blocking record still reports
	// its sides as open, and vice versa nothing forces flanks shut.
	rows := []string{
		"#####",
		"#.#.#",
		".....",
		"#####",
	}
	m := mapFrom(rows)
	// Facing North from (2,2): distance 1 → (2,1) wall, flanks (1,1) and
	// (3,1) are floor.
	recs, err := Scan(m, nil, dungeon.Pose{X: 2, Y: 2, Facing: dungeon.North}, 4)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if !r.CenterBlocked {
		t.Error("center should be blocked by the wall at (2,1)")
	}
	if r.LeftWall || r.RightWall {
		t.Errorf("flanks of the blocking tile should be open, got L=%v R=%v", r.LeftWall, r.RightWall)
	}
}

func TestScanIdempotent(t *testing.T) {
	rows := []string{
		"#######",
		"#..#..#",
		"#.....#",
		"#######",
	}
	m := mapFrom(rows)
	pose := dungeon.Pose{X: 1, Y: 2, Facing: dungeon.East}
	a, err := Scan(m, nil, pose, 5)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	b, err := Scan(m, nil, pose, 5)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two scans of identical inputs must produce identical records")
	}
}

func TestScanMirrorSymmetry(t *testing.T) {
	// An asymmetric layout scanned facing North must match the row-mirrored
	// layout scanned facing South from the mirrored position, with left and
	// right swapped in every record.
	rows := []string{
		"#######",
		"#.#...#",
		"#.....#",
		"#...#.#",
		"#.....#",
		"#######",
	}
	m := mapFrom(rows)
	mm := mapFrom(mirrorRows(rows))

	pose := dungeon.Pose{X: 3, Y: 4, Facing: dungeon.North}
	mirrored := dungeon.Pose{X: 3, Y: len(rows) - 1 - 4, Facing: dungeon.South}

	a, err := Scan(m, nil, pose, 5)
	if err != nil {
		t.Fatalf("Scan north: %v", err)
	}
	b, err := Scan(mm, nil, mirrored, 5)
	if err != nil {
		t.Fatalf("Scan south: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("record counts differ: north %d, south %d", len(a), len(b))
	}
	for i := range a {
		an, bs := a[i], b[i]
		if an.Distance != bs.Distance || an.CenterTile != bs.CenterTile || an.CenterBlocked != bs.CenterBlocked {
			t.Errorf("record %d center data differs: %+v vs %+v", i, an, bs)
		}
		if an.LeftWall != bs.RightWall || an.RightWall != bs.LeftWall {
			t.Errorf("record %d walls not mirrored: %+v vs %+v", i, an, bs)
		}
		if an.LeftOpenPrev != bs.RightOpenPrev || an.RightOpenPrev != bs.LeftOpenPrev {
			t.Errorf("record %d open-previous not mirrored: %+v vs %+v", i, an, bs)
		}
	}
}

func TestScanAllFacingsAgreeOnGeometry(t *testing.T) {
	// One corridor viewed from both ends: the wall on the corridor's west
	// side is on the left when facing North and on the right when facing
	// South.
	rows := []string{
		"######",
		"#.#..#",
		"#.#..#",
		"#.#..#",
		"######",
	}
	m := mapFrom(rows)

	north, err := Scan(m, nil, dungeon.Pose{X: 3, Y: 3, Facing: dungeon.North}, 2)
	if err != nil {
		t.Fatalf("Scan north: %v", err)
	}
	south, err := Scan(m, nil, dungeon.Pose{X: 3, Y: 1, Facing: dungeon.South}, 2)
	if err != nil {
		t.Fatalf("Scan south: %v", err)
	}

	if !north[0].LeftWall || north[0].RightWall {
		t.Errorf("facing North the center column must be on the left, got %+v", north[0])
	}
	if !south[0].RightWall || south[0].LeftWall {
		t.Errorf("facing South the center column must be on the right, got %+v", south[0])
	}
}

func TestScanTwoRoomsAndCorridor(t *testing.T) {
	// 9×5: rooms left and right, connected by a corridor on row 2 whose
	// mouth columns 3-4 are walled above and below. Player at (1,2) facing
	// East sees: open room, walled corridor, then open room again, and the
	// scan runs to maxDistance without blocking.
	m := openMap(9, 5)
	for x := 0; x < 9; x++ {
		m.Set(x, 0, gamemap.MakeWall())
		m.Set(x, 4, gamemap.MakeWall())
	}
	for _, p := range [][2]int{{3, 1}, {4, 1}, {3, 3}, {4, 3}} {
		m.Set(p[0], p[1], gamemap.MakeWall())
	}

	recs, err := Scan(m, nil, dungeon.Pose{X: 1, Y: 2, Facing: dungeon.East}, 6)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(recs) != 6 {
		t.Fatalf("got %d records, want 6", len(recs))
	}

	cases := []struct {
		distance                 int
		leftWall, rightWall      bool
		leftOpenPrev, rightOpenPrev bool
	}{
		{1, false, false, true, true},  // room interior at (2,2)
		{2, true, true, true, true},    // corridor mouth (3,1)/(3,3) walls
		{3, true, true, false, false},  // corridor body (4,1)/(4,3) walls
		{4, false, false, false, false}, // (5,2): sides open again
		{5, false, false, true, true},  // room B interior
		{6, false, false, true, true},
	}
	for _, c := range cases {
		r := recs[c.distance-1]
		if r.CenterBlocked {
			t.Errorf("distance %d should be open floor", c.distance)
		}
		if r.LeftWall != c.leftWall || r.RightWall != c.rightWall {
			t.Errorf("distance %d walls L=%v R=%v, want L=%v R=%v",
				c.distance, r.LeftWall, r.RightWall, c.leftWall, c.rightWall)
		}
		if r.LeftOpenPrev != c.leftOpenPrev || r.RightOpenPrev != c.rightOpenPrev {
			t.Errorf("distance %d open-prev L=%v R=%v, want L=%v R=%v",
				c.distance, r.LeftOpenPrev, r.RightOpenPrev, c.leftOpenPrev, c.rightOpenPrev)
		}
	}
}

func TestScanDoors(t *testing.T) {
	rows := []string{
		"#####",
		"#...#",
		"#####",
	}
	m := mapFrom(rows)
	m.Set(2, 1, gamemap.Make(gamemap.TileDoor))
	pose := dungeon.Pose{X: 1, Y: 1, Facing: dungeon.East}

	// A door tile with no feature record reads as closed.
	recs, err := Scan(m, nil, pose, 3)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(recs) != 1 || !recs[0].CenterBlocked {
		t.Fatalf("unrecorded door should block: %+v", recs)
	}

	// A closed door feature blocks; opening it lets the scan continue.
	fs := dungeon.NewFeatureStore()
	door := fs.Add(dungeon.Feature{X: 2, Y: 1, Kind: dungeon.FeatureDoor})
	recs, _ = Scan(m, fs, pose, 3)
	if len(recs) != 1 || !recs[0].CenterBlocked {
		t.Fatalf("closed door should block: %+v", recs)
	}

	door.Open = true
	recs, _ = Scan(m, fs, pose, 3)
	if len(recs) != 3 {
		t.Fatalf("open door should not block, got %d records", len(recs))
	}
	if recs[0].CenterBlocked {
		t.Error("open door tile must not set CenterBlocked")
	}
}

func TestScanHiddenDoorReadsAsWall(t *testing.T) {
	m := mapFrom([]string{
		"###",
		"#.#",
		"###",
	})
	m.Set(1, 0, gamemap.Make(gamemap.TileHiddenDoor))
	fs := dungeon.NewFeatureStore()
	fs.Add(dungeon.Feature{X: 1, Y: 0, Kind: dungeon.FeatureDoor, Hidden: true})

	recs, err := Scan(m, fs, dungeon.Pose{X: 1, Y: 1, Facing: dungeon.North}, 3)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(recs) != 1 || !recs[0].CenterBlocked {
		t.Errorf("an unopened hidden door must block like a wall: %+v", recs)
	}
}

func TestScanFeatureSightings(t *testing.T) {
	m := openMap(7, 7)
	fs := dungeon.NewFeatureStore()
	fs.Add(dungeon.Feature{X: 3, Y: 1, Kind: dungeon.FeatureTreasure, Label: "chest"}) // center, distance 2
	fs.Add(dungeon.Feature{X: 2, Y: 2, Kind: dungeon.FeatureEncounter, Label: "shape"}) // left of distance 1
	fs.Add(dungeon.Feature{X: 4, Y: 2, Kind: dungeon.FeatureEncounter, Label: "shape"}) // right of distance 1

	recs, err := Scan(m, fs, dungeon.Pose{X: 3, Y: 3, Facing: dungeon.North}, 3)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	d1 := recs[0]
	if len(d1.Features) != 2 {
		t.Fatalf("distance 1 has %d sightings, want 2", len(d1.Features))
	}
	if d1.Features[0].Offset != -1 || d1.Features[1].Offset != +1 {
		t.Errorf("distance 1 offsets = %d,%d, want -1,+1", d1.Features[0].Offset, d1.Features[1].Offset)
	}

	d2 := recs[1]
	if len(d2.Features) != 1 || d2.Features[0].Offset != 0 {
		t.Fatalf("distance 2 sightings = %+v, want one center sighting", d2.Features)
	}
	if d2.Features[0].Feature.Label != "chest" {
		t.Errorf("distance 2 feature = %q, want the chest", d2.Features[0].Feature.Label)
	}
}

func TestScanMaxDistanceClamped(t *testing.T) {
	m := openMap(5, 5)
	for _, bad := range []int{0, -3} {
		recs, err := Scan(m, nil, dungeon.Pose{X: 2, Y: 2, Facing: dungeon.North}, bad)
		if err != nil {
			t.Fatalf("Scan(%d): %v", bad, err)
		}
		if len(recs) != 1 {
			t.Errorf("Scan with maxDistance=%d should clamp to 1 record, got %d", bad, len(recs))
		}
	}
}

func TestScanInvalidPose(t *testing.T) {
	m := openMap(5, 5)
	if _, err := Scan(m, nil, dungeon.Pose{X: 2, Y: 2, Facing: dungeon.Facing(7)}, 3); err != ErrInvalidFacing {
		t.Errorf("bad facing: err=%v, want ErrInvalidFacing", err)
	}
	if _, err := Scan(m, nil, dungeon.Pose{X: -1, Y: 2, Facing: dungeon.North}, 3); err != ErrPoseOutOfBounds {
		t.Errorf("out-of-grid pose: err=%v, want ErrPoseOutOfBounds", err)
	}
}
