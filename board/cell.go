package board

// MineValue is the sentinel Value of a mined cell
const MineValue = -1

// Cell is one grid position
// Value holds MineValue for a mine, otherwise the number of adjacent mines (0..8)
type Cell struct {
	Row, Col int
	Value    int
	Revealed bool
	Flagged  bool
}

// IsMine reports whether the cell holds a mine
func (c Cell) IsMine() bool {
	return c.Value == MineValue
}

// setMine overwrites any prior count; mines are only ever set during setup
func (c *Cell) setMine() {
	c.Value = MineValue
}
