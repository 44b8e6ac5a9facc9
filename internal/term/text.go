package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes a string starting at (x, y), advancing by the display width
// of each rune so wide runes keep the column count honest. It returns the
// column after the last rune.
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		s.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}

// DrawHLine draws a horizontal separator across the given width.
func DrawHLine(s tcell.Screen, y, width int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < width; x++ {
		s.SetContent(x, y, '─', nil, style)
	}
}

// PutGlyph draws a glyph that may be a multi-rune cluster, padding the second
// column when the glyph is double-width so stale cells never show through.
func PutGlyph(s tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	s.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		s.SetContent(x+1, y, ' ', nil, style)
	}
}
