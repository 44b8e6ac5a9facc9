package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"wireframe-crawler/internal/dungeon"
	"wireframe-crawler/internal/term"
)

var facingArrows = map[dungeon.Facing]rune{
	dungeon.North: '↑',
	dungeon.East:  '→',
	dungeon.South: '↓',
	dungeon.West:  '←',
}

// drawHUD renders the status line and message log at the bottom of the
// screen.
func (g *Game) drawHUD(w, h int) {
	hudY := h - hudRows
	if hudY < 0 {
		return
	}
	term.DrawHLine(g.screen, hudY, w, tcell.ColorGray)

	status := fmt.Sprintf("%s  %c %s  (%d,%d)  Chests: %d  Turns: %d",
		g.level().Name,
		facingArrows[g.pose.Facing], g.pose.Facing,
		g.pose.X, g.pose.Y,
		g.log.TreasuresTaken, g.log.Turns)
	term.DrawText(g.screen, 0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := len(g.messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range g.messages[start:] {
		term.DrawText(g.screen, 0, hudY+2+i, msg,
			tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}
