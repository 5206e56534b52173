package render

import (
	"github.com/lixenwraith/vi-sweeper/board"
	"github.com/lixenwraith/vi-sweeper/constants"
)

// GlyphSet selects how cells are drawn
type GlyphSet int

const (
	GlyphsEmoji GlyphSet = iota
	GlyphsASCII
)

// ParseGlyphSet maps a config value to a GlyphSet, defaulting to emoji
func ParseGlyphSet(name string) GlyphSet {
	if name == "ascii" {
		return GlyphsASCII
	}
	return GlyphsEmoji
}

// CellGlyph returns the text drawn for a cell
// Reveal state takes precedence over the flag, matching what the player can see
func CellGlyph(cell board.Cell, set GlyphSet) string {
	if set == GlyphsASCII {
		return string(asciiGlyph(cell))
	}

	switch {
	case cell.Revealed && cell.IsMine():
		return constants.IconMine
	case cell.Revealed && cell.Value == 0:
		return constants.IconRevealed
	case cell.Revealed:
		return constants.IconNumbers[cell.Value]
	case cell.Flagged:
		return constants.IconFlag
	default:
		return constants.IconUnrevealed
	}
}

func asciiGlyph(cell board.Cell) rune {
	switch {
	case cell.Revealed && cell.IsMine():
		return constants.ASCIIMine
	case cell.Revealed && cell.Value == 0:
		return constants.ASCIIRevealed
	case cell.Revealed:
		return rune('0' + cell.Value)
	case cell.Flagged:
		return constants.ASCIIFlag
	default:
		return constants.ASCIIUnrevealed
	}
}
