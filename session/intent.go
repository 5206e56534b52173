package session

// Intent is a semantic action decoded from a key
type Intent uint8

const (
	IntentNone Intent = iota

	// Cursor motions, always allowed
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Board actions, gated on an active game
	IntentReveal
	IntentFlag

	// System intents, allowed any time
	IntentNewGame
	IntentReplay
	IntentToggleMute
	IntentQuit
)

var intentNames = map[Intent]string{
	IntentNone:       "none",
	IntentUp:         "up",
	IntentDown:       "down",
	IntentLeft:       "left",
	IntentRight:      "right",
	IntentReveal:     "reveal",
	IntentFlag:       "flag",
	IntentNewGame:    "new_game",
	IntentReplay:     "replay",
	IntentToggleMute: "toggle_mute",
	IntentQuit:       "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// IsMotion reports whether the intent only moves the cursor
func (i Intent) IsMotion() bool {
	return i >= IntentUp && i <= IntentRight
}

// IsGated reports whether the intent requires a game in progress
func (i Intent) IsGated() bool {
	return i == IntentReveal || i == IntentFlag
}
