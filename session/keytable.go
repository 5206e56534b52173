package session

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]Intent

	// Plain rune bindings
	Runes map[rune]Intent

	// Rune bindings reported with the Ctrl modifier
	CtrlRunes map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows, wasd and hjkl move
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEnter:  IntentReveal,
			tcell.KeyCtrlN:  IntentNewGame,
			tcell.KeyCtrlR:  IntentReplay,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},

		Runes: map[rune]Intent{
			'w': IntentUp,
			's': IntentDown,
			'a': IntentLeft,
			'd': IntentRight,

			'k': IntentUp,
			'j': IntentDown,
			'h': IntentLeft,
			'l': IntentRight,

			'r': IntentReveal,
			'x': IntentReveal,
			'f': IntentFlag,
			' ': IntentFlag,

			'q': IntentQuit,
		},

		CtrlRunes: map[rune]Intent{
			'n': IntentNewGame,
			'r': IntentReplay,
			's': IntentToggleMute,
			'c': IntentQuit,
			'q': IntentQuit,
		},
	}
}

// Lookup decodes a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if intent, ok := kt.CtrlRunes[unicode.ToLower(ev.Rune())]; ok {
				return intent
			}
			return IntentNone
		}
		if intent, ok := kt.Runes[ev.Rune()]; ok {
			return intent
		}
		return IntentNone
	}
	if intent, ok := kt.SpecialKeys[ev.Key()]; ok {
		return intent
	}
	return IntentNone
}
