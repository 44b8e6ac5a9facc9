package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestTileAtOutOfBoundsIsWall(t *testing.T) {
	m := New(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			m.Set(x, y, MakeFloor())
		}
	}
	cases := []struct {
		x, y int
	}{
		{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {-3, -3}, {100, 100},
	}
	for _, c := range cases {
		if got := m.TileAt(c.x, c.y); got != TileWall {
			t.Errorf("TileAt(%d,%d)=%v, want wall sentinel", c.x, c.y, got)
		}
	}
	// In-bounds tiles still report their real kind.
	if got := m.TileAt(2, 2); got != TileFloor {
		t.Errorf("TileAt(2,2)=%v, want floor", got)
	}
}

func TestAtAndSet(t *testing.T) {
	m := New(5, 5)
	// Default tiles are walls; At returns a pointer into the map.
	if m.At(2, 3).Kind != TileWall {
		t.Fatal("expected TileWall at (2,3) before any Set")
	}
	m.Set(2, 3, Make(TileDoor))
	if m.At(2, 3).Kind != TileDoor {
		t.Fatal("Set should be reflected by subsequent At")
	}
}

func TestMarkExplored(t *testing.T) {
	m := New(4, 4)
	m.MarkExplored(1, 2)
	if !m.At(1, 2).Explored {
		t.Error("MarkExplored should set the Explored flag")
	}
	// Out of bounds must be a no-op, not a panic.
	m.MarkExplored(-1, 0)
	m.MarkExplored(4, 4)
}

func TestTileKindString(t *testing.T) {
	cases := []struct {
		kind TileKind
		want string
	}{
		{TileWall, "wall"},
		{TileDoor, "door"},
		{TileHiddenDoor, "hidden door"},
		{TileExit, "exit"},
		{TileKind(250), "unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("TileKind(%d).String()=%q, want %q", c.kind, got, c.want)
		}
	}
}
