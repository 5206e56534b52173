package board

// Stats is the derived game status, recomputed from the grid on every call
type Stats struct {
	Revealed  int
	Flagged   int
	IsLost    bool
	IsWin     bool
	IsPlaying bool
}

// Stats scans the grid
// A win requires exactly mineCount flags with every other cell revealed.
// Flag positions are not checked against mines: flagging mineCount safe
// cells while revealing the rest also counts as a win.
func (b *Board) Stats() Stats {
	var s Stats
	for row := range b.grid {
		for _, cell := range b.grid[row] {
			if cell.Revealed {
				s.Revealed++
				if cell.IsMine() {
					s.IsLost = true
				}
			}
			if cell.Flagged {
				s.Flagged++
			}
		}
	}

	s.IsWin = s.Flagged == b.mineCount && s.Revealed+s.Flagged == b.rows*b.cols
	s.IsPlaying = !s.IsWin && !s.IsLost
	return s
}
