// Package board implements the minesweeper board engine: mine placement,
// adjacency values, flood-fill reveal, flagging and derived game status.
// It performs no I/O and holds no package-level state.
package board

import (
	"fmt"
	"strings"
)

// Board owns the grid and its fixed configuration
type Board struct {
	rows, cols int
	mineCount  int
	grid       [][]Cell
	rng        Rand
}

// New validates the configuration, builds the grid and places mines
func New(rows, cols, mineCount int, opts ...Option) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfiguration, rows, cols)
	}
	if mineCount < 0 || mineCount > rows*cols {
		return nil, fmt.Errorf("%w: mine count %d outside [0, %d]", ErrInvalidConfiguration, mineCount, rows*cols)
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = defaultRand()
	}

	b.SetupBoard()
	return b, nil
}

// Rows returns the number of grid rows
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of grid columns
func (b *Board) Cols() int { return b.cols }

// MineCount returns the configured number of mines
func (b *Board) MineCount() int { return b.mineCount }

// SetupBoard replaces the grid with fresh cells, places mines and computes values
func (b *Board) SetupBoard() {
	grid := make([][]Cell, b.rows)
	for row := range grid {
		grid[row] = make([]Cell, b.cols)
		for col := range grid[row] {
			grid[row][col] = Cell{Row: row, Col: col}
		}
	}
	b.grid = grid

	b.placeMines()
	b.updateValues()
}

// ResetBoard clears reveal and flag state, keeping mines and values
func (b *Board) ResetBoard() {
	for row := range b.grid {
		for col := range b.grid[row] {
			b.grid[row][col].Revealed = false
			b.grid[row][col].Flagged = false
		}
	}
}

// placeMines samples mineCount distinct cells without replacement
func (b *Board) placeMines() {
	remaining := make([]int, b.rows*b.cols)
	for i := range remaining {
		remaining[i] = i
	}

	for placed := 0; placed < b.mineCount; placed++ {
		i := b.rng.IntN(len(remaining))
		idx := remaining[i]
		b.grid[idx/b.cols][idx%b.cols].setMine()
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
}

func (b *Board) updateValues() {
	for row := range b.grid {
		for col := range b.grid[row] {
			cell := &b.grid[row][col]
			if cell.IsMine() {
				continue
			}
			count := 0
			b.forEachNeighbor(row, col, func(n *Cell) {
				if n.IsMine() {
					count++
				}
			})
			cell.Value = count
		}
	}
}

// forEachNeighbor visits the in-bounds 8-neighborhood of (row, col), no wraparound
func (b *Board) forEachNeighbor(row, col int, fn func(*Cell)) {
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i == 0 && j == 0 {
				continue
			}
			r, c := row+i, col+j
			if !b.inBounds(r, c) {
				continue
			}
			fn(&b.grid[r][c])
		}
	}
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell returns a copy of the cell at (row, col)
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.inBounds(row, col) {
		return Cell{}, false
	}
	return b.grid[row][col], true
}

// Grid returns a copy of the grid for rendering
func (b *Board) Grid() [][]Cell {
	out := make([][]Cell, b.rows)
	for row := range b.grid {
		out[row] = make([]Cell, b.cols)
		copy(out[row], b.grid[row])
	}
	return out
}

// String dumps the board: '#' hidden, 'F' flag, '*' revealed mine, '.' revealed zero, digit otherwise
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.grid {
		for _, cell := range b.grid[row] {
			switch {
			case cell.Flagged:
				sb.WriteByte('F')
			case !cell.Revealed:
				sb.WriteByte('#')
			case cell.IsMine():
				sb.WriteByte('*')
			case cell.Value == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + cell.Value))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
