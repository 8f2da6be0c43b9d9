package flight

import (
	"math"

	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/vmath"
)

// Result reports what a single Step produced
type Result struct {
	// Points is the whole distance score earned this tick
	Points int

	Crashed bool
	Reason  string
}

// Integrator advances State by one tick
// It owns the fractional distance carry so integer score stays monotone
type Integrator struct {
	carry float64
}

// Reset drops the distance carry for a new run
func (in *Integrator) Reset() {
	in.carry = 0
}

// Step applies controls to s in order: auto-level, attitude input, banking turn,
// throttle, altitude, distance score, crash check
func (in *Integrator) Step(s *State, c Controls) Result {
	// Auto-level only the axes the pilot is not holding
	if c.Pitch == 0 {
		s.Pitch *= parameter.FlightDamping
	}
	if c.Roll == 0 {
		s.Roll *= parameter.FlightDamping
	}

	s.Pitch = clampAttitude(s.Pitch + c.Pitch)
	s.Roll = clampAttitude(s.Roll + c.Roll)

	s.Heading = vmath.WrapAngle(s.Heading + s.Roll*parameter.FlightTurnRate)

	s.Speed = clampSpeed(s.Speed + c.Throttle)

	// Negative pitch is nose-down
	s.Altitude += s.Pitch * s.Speed * parameter.FlightClimbScale

	in.carry += s.Speed * parameter.FlightScoreRate
	whole := math.Floor(in.carry)
	in.carry -= whole

	res := Result{Points: int(whole)}
	if s.Altitude <= parameter.FlightCrashFloor {
		res.Crashed = true
		res.Reason = parameter.FlightCrashReason
	}
	return res
}
