// Package flight integrates aircraft attitude, altitude, speed and distance score
// once per tick from the control deltas accumulated since the previous tick.
package flight

import (
	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/vmath"
)

// State is the flight record mutated every tick
// Pitch and Roll stay in [-FlightAttitudeLimit, FlightAttitudeLimit], Speed in [FlightMinSpeed, FlightMaxSpeed]
type State struct {
	Pitch    float64
	Roll     float64
	Heading  float64
	Altitude float64
	Speed    float64
}

// NewState returns the game-start record
func NewState() State {
	return State{
		Altitude: parameter.FlightStartAltitude,
		Speed:    parameter.FlightStartSpeed,
	}
}

// Controls is the single-writer single-reader mailbox between input events and the tick
// Input adds deltas, the tick drains and resets it
type Controls struct {
	Pitch    float64
	Roll     float64
	Throttle float64
}

// Add accumulates another delta set
func (c *Controls) Add(d Controls) {
	c.Pitch += d.Pitch
	c.Roll += d.Roll
	c.Throttle += d.Throttle
}

// Drain returns the accumulated deltas and resets the mailbox
func (c *Controls) Drain() Controls {
	d := *c
	*c = Controls{}
	return d
}

// clampAttitude keeps an attitude axis inside the legal range
func clampAttitude(v float64) float64 {
	return vmath.Clamp(v, -parameter.FlightAttitudeLimit, parameter.FlightAttitudeLimit)
}

// clampSpeed keeps speed inside the throttle range
func clampSpeed(v float64) float64 {
	return vmath.Clamp(v, parameter.FlightMinSpeed, parameter.FlightMaxSpeed)
}
