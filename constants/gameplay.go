package constants

// Difficulty is a board size preset
type Difficulty struct {
	Name  string
	Rows  int
	Cols  int
	Mines int
}

// Difficulty presets, selected by the LEVEL environment variable
var (
	LevelEasy   = Difficulty{Name: "easy", Rows: 8, Cols: 8, Mines: 10}
	LevelMedium = Difficulty{Name: "medium", Rows: 16, Cols: 16, Mines: 40}
	LevelHard   = Difficulty{Name: "hard", Rows: 16, Cols: 30, Mines: 99}

	// LevelDefault applies when LEVEL is empty or unrecognized
	LevelDefault = Difficulty{Name: "default", Rows: 8, Cols: 8, Mines: 10}
)

// LookupLevel resolves a preset by name
// Unknown names report false; callers fall back to LevelDefault
func LookupLevel(name string) (Difficulty, bool) {
	switch name {
	case LevelEasy.Name:
		return LevelEasy, true
	case LevelMedium.Name:
		return LevelMedium, true
	case LevelHard.Name:
		return LevelHard, true
	case "", LevelDefault.Name:
		return LevelDefault, true
	}
	return LevelDefault, false
}
