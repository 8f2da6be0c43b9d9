package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentAction,
			tcell.KeyUp:     IntentPitchUp,
			tcell.KeyDown:   IntentPitchDown,
			tcell.KeyLeft:   IntentRollLeft,
			tcell.KeyRight:  IntentRollRight,
		},

		Runes: map[rune]Intent{
			'q': IntentQuit,
			'p': IntentPause,
			'm': IntentMute,
			' ': IntentAction,
			'r': IntentRestart,

			// vi-style aliases for the arrows
			'k': IntentPitchUp,
			'j': IntentPitchDown,
			'h': IntentRollLeft,
			'l': IntentRollRight,

			'w': IntentThrottleUp,
			'+': IntentThrottleUp,
			'=': IntentThrottleUp,
			's': IntentThrottleDown,
			'-': IntentThrottleDown,
		},
	}
}

// Lookup resolves a key event, returns IntentNone for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
