// Package skysim is the pseudo-3D flight game: fly over a terrain ring,
// through clouds, collecting stars, until altitude drops to the crash floor.
package skysim

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfolio/camera"
	"github.com/lixenwraith/skyfolio/engine"
	"github.com/lixenwraith/skyfolio/flight"
	"github.com/lixenwraith/skyfolio/input"
	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/world"
)

// Rules owns the whole flight game state; the driver goroutine is its only user
type Rules struct {
	sink engine.Sink
	log  zerolog.Logger

	width, height float64

	state      flight.State
	integrator flight.Integrator
	controls   flight.Controls
	world      *world.World

	score   int
	ticks   int
	crashed bool
	reason  string
}

// New creates flight rules for a surface of the given logical size
func New(rng *rand.Rand, sink engine.Sink, width, height int, log zerolog.Logger) *Rules {
	if sink == nil {
		sink = engine.Discard
	}
	return &Rules{
		sink:   sink,
		log:    log.With().Str("component", "skysim").Logger(),
		width:  float64(width),
		height: float64(height),
		world:  world.New(rng),
	}
}

func (r *Rules) Name() string { return parameter.GameSkySim }

// Init restores the start pose, clears the sprite pools and regenerates terrain
func (r *Rules) Init() {
	r.state = flight.NewState()
	r.integrator.Reset()
	r.controls = flight.Controls{}
	r.world.Reset()
	r.score = 0
	r.ticks = 0
	r.crashed = false
	r.reason = ""
}

// OnInput adds one control step per key event to the mailbox
func (r *Rules) OnInput(ev input.Event) {
	switch ev.Intent {
	case input.IntentPitchUp:
		r.controls.Add(flight.Controls{Pitch: parameter.ControlPitchStep})
	case input.IntentPitchDown:
		r.controls.Add(flight.Controls{Pitch: -parameter.ControlPitchStep})
	case input.IntentRollLeft:
		r.controls.Add(flight.Controls{Roll: -parameter.ControlRollStep})
	case input.IntentRollRight:
		r.controls.Add(flight.Controls{Roll: parameter.ControlRollStep})
	case input.IntentThrottleUp:
		r.controls.Add(flight.Controls{Throttle: parameter.ControlThrottleStep})
	case input.IntentThrottleDown:
		r.controls.Add(flight.Controls{Throttle: -parameter.ControlThrottleStep})
	}
}

// Tick integrates flight, then steps the pools with the updated camera
func (r *Rules) Tick() {
	if r.crashed {
		return
	}
	r.ticks++

	res := r.integrator.Step(&r.state, r.controls.Drain())
	r.score += res.Points

	collected := r.world.Step(r.Camera(), r.state.Speed)
	for i := 0; i < collected; i++ {
		r.score += parameter.StarBonus
		r.sink.Emit(engine.Event{Kind: engine.EventCollect, Game: parameter.GameSkySim, Value: parameter.StarBonus})
	}

	if res.Crashed {
		r.crashed = true
		r.reason = res.Reason

		terrain, clouds, stars := r.Population()
		r.log.Debug().
			Int("ticks", r.ticks).
			Int("score", r.score).
			Int("terrain", terrain).
			Int("clouds", clouds).
			Int("stars", stars).
			Msg("Crashed")
	}
}

func (r *Rules) Terminal() (engine.Outcome, bool) {
	if !r.crashed {
		return engine.Outcome{}, false
	}
	return engine.Outcome{Crashed: true, Reason: r.reason}, true
}

func (r *Rules) Score() int { return r.score }

// RestartToIdle returns to the title frame after a crash
func (r *Rules) RestartToIdle() bool { return true }

// State returns a copy of the flight record
func (r *Rules) State() flight.State { return r.state }

// Camera derives the view for the current flight state
func (r *Rules) Camera() camera.Camera {
	return camera.Camera{
		Heading:  r.state.Heading,
		Pitch:    r.state.Pitch,
		Roll:     r.state.Roll,
		Altitude: r.state.Altitude,
		Width:    r.width,
		Height:   r.height,
	}
}

// World exposes the entity pools for inspection
func (r *Rules) World() *world.World { return r.world }
