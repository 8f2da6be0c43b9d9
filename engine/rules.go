package engine

import (
	"github.com/lixenwraith/skyfolio/input"
	"github.com/lixenwraith/skyfolio/render"
)

// Phase is the driver state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Outcome describes how a run ended
type Outcome struct {
	// Crashed distinguishes a failure from a clean finish
	Crashed bool
	Reason  string
}

// View is what rules need to draw the current phase
type View struct {
	Phase     Phase
	Score     int
	HighScore int
	NewRecord bool
	Outcome   Outcome
	Paused    bool
}

// Rules is one game plugged into the driver
// Every method runs on the tick goroutine
type Rules interface {
	// Name doubles as the high-score key
	Name() string

	// Init resets all run state to the pre-start pose
	Init()

	// OnInput receives input while running; start and restart triggers are consumed by the driver
	OnInput(ev input.Event)

	// Tick advances one frame of simulation
	Tick()

	// Render draws the frame for the given view
	Render(s render.Surface, v View)

	// Terminal reports a finished run after Tick
	Terminal() (Outcome, bool)

	// Score is the current run score, non-decreasing within a run
	Score() int
}

// Restarter is optionally implemented by rules that skip Idle on restart
type Restarter interface {
	RestartToIdle() bool
}
