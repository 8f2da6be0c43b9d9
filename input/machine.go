package input

import "github.com/gdamore/tcell/v2"

// Machine translates tcell events into Events
// Tracks pointer button state so a held button yields one click
type Machine struct {
	keyTable    *KeyTable
	lastButtons tcell.ButtonMask
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return NewMachineWithTable(DefaultKeyTable())
}

// NewMachineWithTable creates a machine with custom bindings
func NewMachineWithTable(kt *KeyTable) *Machine {
	return &Machine{keyTable: kt}
}

// Translate converts a tcell event, false when the event carries no intent
func (m *Machine) Translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := m.keyTable.Lookup(ev)
		if intent == IntentNone {
			return Event{}, false
		}
		return Event{Intent: intent}, true

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && m.lastButtons&tcell.Button1 == 0
		m.lastButtons = buttons
		if !pressed {
			return Event{}, false
		}
		x, y := ev.Position()
		return Event{Intent: IntentAction, Click: true, X: x, Y: y}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Intent: IntentResize, Width: w, Height: h}, true
	}

	return Event{}, false
}
