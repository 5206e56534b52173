package board

// RevealCell reveals the cell at (row, col)
// Revealed and flagged cells are left untouched. A zero-value cell cascades
// to its neighbors through an explicit worklist; the Revealed check at pop
// time is the only re-entrancy guard, so each cell is processed at most once.
func (b *Board) RevealCell(row, col int) {
	if !b.inBounds(row, col) {
		return
	}

	stack := []*Cell{&b.grid[row][col]}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cell.Revealed || cell.Flagged {
			continue
		}
		cell.Revealed = true

		// Loss is derived from Stats
		if cell.IsMine() {
			continue
		}

		if cell.Value == 0 {
			b.forEachNeighbor(cell.Row, cell.Col, func(n *Cell) {
				if !n.Revealed && !n.Flagged {
					stack = append(stack, n)
				}
			})
		}
	}
}

// FlagCell toggles the flag on an unrevealed cell
func (b *Board) FlagCell(row, col int) {
	if !b.inBounds(row, col) {
		return
	}
	cell := &b.grid[row][col]
	if cell.Revealed {
		return
	}
	cell.Flagged = !cell.Flagged
}
