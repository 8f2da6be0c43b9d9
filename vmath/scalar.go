package vmath

import "math"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a to b by t, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InvLerp returns where v sits between a and b, unclamped
// Degenerate range returns 0
func InvLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// WrapAngle normalizes an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// RandRange maps a unit sample in [0,1) onto [lo, hi)
func RandRange(unit, lo, hi float64) float64 {
	return lo + unit*(hi-lo)
}
