package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"wireframe-crawler/internal/draw"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(w, h)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	return ss
}

func cellRune(s tcell.Screen, x, y int) rune {
	mainc, _, _, _ := s.GetContent(x, y)
	return mainc
}

func TestDrawHorizontalLine(t *testing.T) {
	ss := newTestScreen(t, 20, 10)
	r := NewRasterizer(ss, 20, 10)

	r.Draw([]draw.Primitive{
		draw.Line(draw.TagSideWall, 1, draw.Stroke(tcell.ColorGreen),
			draw.Point{X: 0, Y: 5}, draw.Point{X: 20, Y: 5}),
	})

	for x := 0; x < 20; x++ {
		if got := cellRune(ss, x, 5); got != '─' {
			t.Fatalf("cell (%d,5) = %q, want horizontal bar", x, got)
		}
	}
}

func TestSegmentRuneMatchesSlope(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   rune
	}{
		{10, 0, '─'},
		{10, 3, '─'},
		{0, 10, '│'},
		{3, 10, '│'},
		{8, 8, '╲'},
		{-8, -8, '╲'},
		{8, -8, '╱'},
		{-8, 8, '╱'},
	}
	for _, c := range cases {
		if got := segmentRune(c.dx, c.dy); got != c.want {
			t.Errorf("segmentRune(%d, %d) = %q, want %q", c.dx, c.dy, got, c.want)
		}
	}
}

func TestDrawDiagonals(t *testing.T) {
	ss := newTestScreen(t, 10, 10)
	r := NewRasterizer(ss, 10, 10)

	r.Draw([]draw.Primitive{
		draw.Line(draw.TagConnector, 1, draw.Stroke(tcell.ColorGreen),
			draw.Point{X: 0, Y: 0}, draw.Point{X: 9, Y: 9}),
	})
	for i := 0; i < 10; i++ {
		if got := cellRune(ss, i, i); got != '╲' {
			t.Fatalf("cell (%d,%d) = %q, want falling diagonal", i, i, got)
		}
	}

	r.Draw([]draw.Primitive{
		draw.Line(draw.TagConnector, 1, draw.Stroke(tcell.ColorGreen),
			draw.Point{X: 0, Y: 9}, draw.Point{X: 9, Y: 0}),
	})
	if got := cellRune(ss, 0, 9); got != '╱' {
		t.Errorf("cell (0,9) = %q, want rising diagonal", got)
	}
	if got := cellRune(ss, 9, 0); got != '╱' {
		t.Errorf("cell (9,0) = %q, want rising diagonal", got)
	}
}

func TestFillRectPaintsBackground(t *testing.T) {
	ss := newTestScreen(t, 12, 8)
	r := NewRasterizer(ss, 12, 8)
	fill := tcell.NewRGBColor(16, 16, 28)

	r.Draw([]draw.Primitive{
		draw.Rect(draw.TagCeiling, 1, draw.Filled(fill),
			draw.Point{X: 2, Y: 2}, draw.Point{X: 5, Y: 4}),
	})

	for y := 2; y <= 4; y++ {
		for x := 2; x <= 5; x++ {
			_, _, style, _ := ss.GetContent(x, y)
			_, bg, _ := style.Decompose()
			if bg != fill {
				t.Fatalf("cell (%d,%d) background %v, want %v", x, y, bg, fill)
			}
		}
	}
	// Outside the rect stays untouched.
	_, _, style, _ := ss.GetContent(7, 3)
	_, bg, _ := style.Decompose()
	if bg == fill {
		t.Error("fill leaked outside the rectangle")
	}
}

func TestStrokeRectDrawsBoxOutline(t *testing.T) {
	ss := newTestScreen(t, 12, 8)
	r := NewRasterizer(ss, 12, 8)

	r.Draw([]draw.Primitive{
		draw.Rect(draw.TagFrontWall, 2, draw.Stroke(tcell.ColorGreen),
			draw.Point{X: 1, Y: 1}, draw.Point{X: 6, Y: 5}),
	})

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {6, 1, '┐'}, {1, 5, '└'}, {6, 5, '┘'},
	}
	for _, c := range corners {
		if got := cellRune(ss, c.x, c.y); got != c.want {
			t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	if got := cellRune(ss, 3, 1); got != '─' {
		t.Errorf("top edge = %q, want horizontal bar", got)
	}
	if got := cellRune(ss, 1, 3); got != '│' {
		t.Errorf("left edge = %q, want vertical bar", got)
	}
	if got := cellRune(ss, 3, 3); got == '─' || got == '│' {
		t.Error("stroked rect must not paint its interior")
	}
}

func TestPolygonClosesTheLoop(t *testing.T) {
	ss := newTestScreen(t, 12, 12)
	r := NewRasterizer(ss, 12, 12)

	// A triangle: the closing edge from the last vertex back to the first
	// must be drawn without being listed.
	r.Draw([]draw.Primitive{
		draw.Polygon(draw.TagFeature, 1, draw.Stroke(tcell.ColorRed),
			draw.Point{X: 5, Y: 1},
			draw.Point{X: 9, Y: 9},
			draw.Point{X: 1, Y: 9}),
	})

	if got := cellRune(ss, 3, 5); got == ' ' || got == 0 {
		t.Error("closing edge of the polygon was not drawn")
	}
	if got := cellRune(ss, 5, 9); got == ' ' || got == 0 {
		t.Error("bottom edge of the polygon was not drawn")
	}
}

func TestViewportClipsSmallerThanScreen(t *testing.T) {
	ss := newTestScreen(t, 20, 10)
	r := NewRasterizer(ss, 20, 6) // bottom 4 rows reserved

	r.Draw([]draw.Primitive{
		draw.Line(draw.TagSideWall, 1, draw.Stroke(tcell.ColorGreen),
			draw.Point{X: 3, Y: 0}, draw.Point{X: 3, Y: 6}),
	})

	if got := cellRune(ss, 3, 5); got != '│' {
		t.Errorf("cell inside viewport = %q, want vertical bar", got)
	}
	for y := 6; y < 10; y++ {
		if got := cellRune(ss, 3, y); got == '│' {
			t.Fatalf("reserved row %d was painted", y)
		}
	}
}

func TestDrawTextAdvancesByRuneWidth(t *testing.T) {
	ss := newTestScreen(t, 20, 4)

	end := DrawText(ss, 0, 1, "N 3,4", tcell.StyleDefault)
	if end != 5 {
		t.Errorf("DrawText returned column %d, want 5", end)
	}
	if got := cellRune(ss, 0, 1); got != 'N' {
		t.Errorf("cell (0,1) = %q, want 'N'", got)
	}
	if got := cellRune(ss, 2, 1); got != '3' {
		t.Errorf("cell (2,1) = %q, want '3'", got)
	}
}

func TestPutGlyphPadsWideGlyph(t *testing.T) {
	ss := newTestScreen(t, 10, 2)

	ss.SetContent(1, 0, 'X', nil, tcell.StyleDefault)
	PutGlyph(ss, 0, 0, "你", tcell.StyleDefault)

	if got := cellRune(ss, 1, 0); got != ' ' {
		t.Errorf("second column of wide glyph = %q, want padding space", got)
	}
}
