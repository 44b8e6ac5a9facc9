package game

import (
	"github.com/gdamore/tcell/v2"

	"wireframe-crawler/internal/gamemap"
	"wireframe-crawler/internal/term"
)

// drawAutomap overlays the explored portion of the floor on the viewport,
// centered on the explorer. Unexplored tiles stay dark; a concealed door
// keeps pretending to be wall until it has been found.
func (g *Game) drawAutomap(w, h int) {
	lvl := g.level()
	offX := w/2 - g.pose.X
	offY := h/2 - g.pose.Y
	dim := tcell.StyleDefault.Foreground(tcell.ColorDarkSeaGreen)

	for y := 0; y < lvl.Map.Height; y++ {
		for x := 0; x < lvl.Map.Width; x++ {
			tile := lvl.Map.At(x, y)
			if tile == nil || !tile.Explored {
				continue
			}
			sx, sy := x+offX, y+offY
			if sx < 0 || sx >= w || sy < 0 || sy >= h {
				continue
			}
			term.PutGlyph(g.screen, sx, sy, string(g.mapGlyph(x, y, tile.Kind)), dim)
		}
	}

	// The explorer, drawn as the direction faced.
	cx, cy := g.pose.X+offX, g.pose.Y+offY
	if cx >= 0 && cx < w && cy >= 0 && cy < h {
		term.PutGlyph(g.screen, cx, cy, string(facingArrows[g.pose.Facing]),
			tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}
}

func (g *Game) mapGlyph(x, y int, kind gamemap.TileKind) rune {
	switch kind {
	case gamemap.TileWall:
		return '#'
	case gamemap.TileFloor:
		return '·'
	case gamemap.TileDoor, gamemap.TileHiddenDoor:
		door := g.level().Features.Door(x, y)
		switch {
		case door == nil || door.Hidden:
			return '#'
		case door.Open:
			return '\''
		default:
			return '+'
		}
	case gamemap.TileStairsUp:
		return '<'
	case gamemap.TileStairsDown:
		return '>'
	case gamemap.TileTreasure:
		return '$'
	case gamemap.TileExit:
		return 'Ω'
	}
	return '·'
}
