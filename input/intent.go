package input

// Intent discriminates semantic actions, decoupled from physical keys
type Intent uint8

const (
	IntentNone Intent = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentPause  // p
	IntentMute   // m
	IntentResize // Terminal resize event

	// Game triggers
	IntentAction  // Space, Enter, click: start, restart, flap
	IntentRestart // r: restart from the end-of-run overlay

	// Flight controls
	IntentPitchUp      // Up arrow, k
	IntentPitchDown    // Down arrow, j
	IntentRollLeft     // Left arrow, h
	IntentRollRight    // Right arrow, l
	IntentThrottleUp   // w, +
	IntentThrottleDown // s, -
)

var intentNames = map[Intent]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentPause:        "pause",
	IntentMute:         "mute",
	IntentResize:       "resize",
	IntentAction:       "action",
	IntentRestart:      "restart",
	IntentPitchUp:      "pitch_up",
	IntentPitchDown:    "pitch_down",
	IntentRollLeft:     "roll_left",
	IntentRollRight:    "roll_right",
	IntentThrottleUp:   "throttle_up",
	IntentThrottleDown: "throttle_down",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// IsTrigger reports whether the intent starts or restarts a run
func (i Intent) IsTrigger() bool {
	return i == IntentAction || i == IntentRestart
}

// Event is a translated input delivered to the driver between ticks
type Event struct {
	Intent Intent

	// Click is set for pointer-originated events, X/Y in terminal cells
	Click bool
	X, Y  int

	// Width/Height carry the new terminal size for IntentResize
	Width, Height int
}
