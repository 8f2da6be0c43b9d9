// Package camera maps world-space points onto a fixed-size screen using a
// yaw rotation, a perspective divide by depth plus altitude, and a pitch-driven
// horizon offset. There is no depth buffer; callers order draws themselves.
package camera

import (
	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/vmath"
)

// Camera is the per-frame view derived from flight state and surface size
// Roll is carried for horizon and HUD drawing, projection ignores it
type Camera struct {
	Heading  float64
	Pitch    float64
	Roll     float64
	Altitude float64

	Width  float64
	Height float64
}

// Screen is a projected point in surface pixels
type Screen struct {
	X, Y  float64
	Scale float64

	// Depth is the rotated depth rz, used for fade and collection checks
	Depth float64
}

// Center returns the surface centre
func (c Camera) Center() vmath.Vec2 {
	return vmath.Vec2{X: c.Width / 2, Y: c.Height / 2}
}

// HorizonY is the screen row of the horizon for the current pitch
func (c Camera) HorizonY() float64 {
	return c.Height/2 + c.Pitch*parameter.PitchSensitivity
}

// Rotate yaws a world point into camera space
func (c Camera) Rotate(p vmath.Vec3) vmath.Vec3 {
	return vmath.RotateXZ(p, c.Heading)
}

// Behind reports whether a rotated depth has passed the near plane
func (c Camera) Behind(rz float64) bool {
	return rz <= -c.Altitude
}

// Project maps a world point to screen space
// Returns false when the point is at or behind the near plane
func (c Camera) Project(p vmath.Vec3) (Screen, bool) {
	r := c.Rotate(p)
	if c.Behind(r.Z) {
		return Screen{}, false
	}

	scale := parameter.ProjectionStrength / (r.Z + c.Altitude + parameter.ProjectionEpsilon)
	return Screen{
		X:     c.Width/2 + r.X*scale,
		Y:     c.HorizonY() + p.Y*scale,
		Scale: scale,
		Depth: r.Z,
	}, true
}

// ProjectClipped is Project with an additional horizontal bounds reject
// Used for terrain; sprites are allowed to intrude from off-screen
func (c Camera) ProjectClipped(p vmath.Vec3) (Screen, bool) {
	s, ok := c.Project(p)
	if !ok || s.X < 0 || s.X > c.Width {
		return Screen{}, false
	}
	return s, true
}

// Opacity is the depth fade for sprites: full at FadeNear, MinOpacity at FadeFar
func Opacity(rz float64) float64 {
	t := vmath.InvLerp(parameter.FadeNear, parameter.FadeFar, rz)
	return vmath.Clamp(vmath.Lerp(1, parameter.MinOpacity, t), parameter.MinOpacity, 1)
}
