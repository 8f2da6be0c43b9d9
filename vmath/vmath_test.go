package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.2, -0.5, 0.5, 0.2},
		{"below", -3, -0.5, 0.5, -0.5},
		{"above", 12, 1, 10, 10},
		{"on bound", 0.5, -0.5, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestLerpInvLerp(t *testing.T) {
	if got := Lerp(1, 0.25, 0.5); got != 0.625 {
		t.Errorf("Expected 0.625, got %f", got)
	}
	if got := InvLerp(300, 1200, 750); got != 0.5 {
		t.Errorf("Expected 0.5, got %f", got)
	}
	if got := InvLerp(5, 5, 9); got != 0 {
		t.Errorf("Expected degenerate range to give 0, got %f", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-0.01, 2*math.Pi - 0.01},
		{2*math.Pi + 0.25, 0.25},
		{-4 * math.Pi, 0},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapAngle(%f): expected %f, got %f", tt.in, tt.want, got)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("WrapAngle(%f) = %f outside [0, 2π)", tt.in, got)
		}
	}
}

func TestRotateXZ(t *testing.T) {
	p := Vec3{X: 3, Y: -7, Z: 4}
	if r := RotateXZ(p, 0); r != p {
		t.Errorf("Expected identity at zero angle, got %+v", r)
	}

	r := RotateXZ(p, math.Pi)
	if math.Abs(r.X+3) > 1e-9 || math.Abs(r.Z+4) > 1e-9 || r.Y != -7 {
		t.Errorf("Expected (-3,-7,-4), got %+v", r)
	}
}

func TestRandRangeAndDist(t *testing.T) {
	if got := RandRange(0, 40, 160); got != 40 {
		t.Errorf("Expected lower bound, got %f", got)
	}
	if got := RandRange(0.5, -600, 600); got != 0 {
		t.Errorf("Expected midpoint, got %f", got)
	}
	if got := Dist(Vec2{X: 400, Y: 250}, Vec2{X: 403, Y: 254}); got != 5 {
		t.Errorf("Expected 5, got %f", got)
	}
}
