package render

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-sweeper/board"
	"github.com/lixenwraith/vi-sweeper/constants"
)

// View is the read-only snapshot drawn each frame
type View struct {
	Grid      [][]board.Cell
	Stats     board.Stats
	Mines     int
	CursorRow int
	CursorCol int
}

// Renderer draws a frame snapshot
type Renderer interface {
	Draw(v View)
	Sync()
}

// BoardRenderer draws the grid and status lines onto a tcell screen
type BoardRenderer struct {
	screen  tcell.Screen
	glyphs  GlyphSet
	numbers [9]tcell.Style
	info    tcell.Style
}

// NewBoardRenderer creates a renderer for the given screen and glyph set
func NewBoardRenderer(screen tcell.Screen, glyphs GlyphSet) *BoardRenderer {
	return &BoardRenderer{
		screen:  screen,
		glyphs:  glyphs,
		numbers: numberStyles(),
		info:    tcell.StyleDefault.Foreground(constants.ColorInfoText),
	}
}

// Draw renders the full frame and shows it
func (r *BoardRenderer) Draw(v View) {
	r.screen.Clear()

	for row := range v.Grid {
		for col, cell := range v.Grid[row] {
			style := r.cellStyle(cell)
			if row == v.CursorRow && col == v.CursorCol {
				style = style.Background(constants.ColorCursorBg)
			}
			r.putCell(col*constants.CellWidth, row, CellGlyph(cell, r.glyphs), style)
		}
	}

	y := len(v.Grid)
	for i, line := range StatusLines(v.Stats, v.Mines) {
		r.putText(0, y+i, line, r.info)
	}

	r.screen.Show()
}

// Sync repaints the whole terminal after a resize
func (r *BoardRenderer) Sync() {
	r.screen.Sync()
}

// StatusLines returns the info lines shown under the grid
func StatusLines(s board.Stats, mines int) [constants.InfoLineCount]string {
	return [constants.InfoLineCount]string{
		fmt.Sprintf("Flagged: %d", s.Flagged),
		fmt.Sprintf("Revealed: %d", s.Revealed),
		fmt.Sprintf("Mines: %d", mines),
		"Status: " + StatusText(s),
	}
}

// StatusText names the game state; a win is reported even if a mine was also revealed
func StatusText(s board.Stats) string {
	switch {
	case s.IsWin:
		return constants.StatusWin
	case s.IsLost:
		return constants.StatusLost
	default:
		return constants.StatusPlaying
	}
}

func (r *BoardRenderer) cellStyle(cell board.Cell) tcell.Style {
	if r.glyphs == GlyphsASCII && cell.Revealed && cell.Value > 0 {
		return r.numbers[cell.Value]
	}
	return tcell.StyleDefault
}

// putCell writes one glyph cluster and pads to the fixed cell width
func (r *BoardRenderer) putCell(x, y int, glyph string, style tcell.Style) {
	w := r.putCluster(x, y, glyph, style)
	for pad := w; pad < constants.CellWidth; pad++ {
		r.screen.SetContent(x+pad, y, ' ', nil, style)
	}
}

// putCluster writes the first rune with the rest of the cluster as combining runes
// Returns the cluster's display width, capped at the cell width
func (r *BoardRenderer) putCluster(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return 0
	}

	var combc []rune
	for _, c := range runes[1:] {
		if isCombining(c) {
			combc = append(combc, c)
		}
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	return min(runewidth.StringWidth(glyph), constants.CellWidth)
}

// isCombining reports marks and variation selectors that attach to the preceding rune
// go-runewidth gives U+FE0F a width of 1, so width alone cannot identify it
func isCombining(c rune) bool {
	if c >= 0xFE00 && c <= 0xFE0F {
		return true
	}
	return unicode.In(c, unicode.Mn, unicode.Me)
}

func (r *BoardRenderer) putText(x, y int, text string, style tcell.Style) {
	for _, c := range text {
		r.screen.SetContent(x, y, c, nil, style)
		x += runewidth.RuneWidth(c)
	}
}
