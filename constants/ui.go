package constants

import "github.com/gdamore/tcell/v2"

// Emoji glyphs for board cells
const (
	IconMine       = "💣"
	IconFlag       = "🚩"
	IconRevealed   = "🔘"
	IconUnrevealed = "⬜"
)

// IconNumbers maps a cell value 1..8 to its keycap glyph, index 0 unused
var IconNumbers = [9]string{
	"",
	"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣",
}

// ASCII glyphs for terminals without emoji support
const (
	ASCIIMine       = '*'
	ASCIIFlag       = 'F'
	ASCIIRevealed   = '.'
	ASCIIUnrevealed = '#'
)

// UI Layout
const (
	// CellWidth is the number of terminal columns each board cell occupies
	CellWidth = 2

	// InfoLineCount is the number of status lines drawn under the grid
	InfoLineCount = 4
)

// UI Colors
var (
	ColorCursorBg = tcell.ColorDarkMagenta
	ColorInfoText = tcell.ColorDarkCyan
)

// Status line texts
const (
	StatusPlaying = "PLAYING"
	StatusWin     = "WIN"
	StatusLost    = "LOST, New: CTRL-N, Replay: CTRL-R, Exit: CTRL-C"
)
