package vmath

import "math"

// Vec3 is a float64 world-space point or offset
// Z is signed depth along the camera forward axis, positive ahead
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a screen-space point in surface pixels
type Vec2 struct {
	X, Y float64
}

// RotateXZ yaws a point around the vertical axis by angle radians
// Y is untouched
func RotateXZ(p Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: p.X*cos - p.Z*sin,
		Y: p.Y,
		Z: p.X*sin + p.Z*cos,
	}
}

// Dist returns the euclidean distance between two screen points
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
