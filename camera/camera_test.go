package camera

import (
	"math"
	"testing"

	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/vmath"
)

const eps = 1e-9

func level() Camera {
	return Camera{Altitude: 500, Width: 800, Height: 500}
}

// TestRotateIdentityAtZeroHeading verifies rotated coordinates equal world coordinates when level
func TestRotateIdentityAtZeroHeading(t *testing.T) {
	cam := level()
	points := []vmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 120, Y: -40, Z: 900},
		{X: -600, Y: 150, Z: 50},
		{X: 3.5, Y: 0, Z: -499},
	}
	for _, p := range points {
		r := cam.Rotate(p)
		if math.Abs(r.X-p.X) > eps || math.Abs(r.Z-p.Z) > eps || r.Y != p.Y {
			t.Errorf("Expected rotation identity for %+v, got %+v", p, r)
		}
	}
}

// TestRotateQuarterTurn checks the yaw formula against a known quarter turn
func TestRotateQuarterTurn(t *testing.T) {
	cam := level()
	cam.Heading = math.Pi / 2

	r := cam.Rotate(vmath.Vec3{X: 0, Z: 100})
	// rx = x*cos - z*sin = -100, rz = x*sin + z*cos = 0
	if math.Abs(r.X+100) > 1e-6 || math.Abs(r.Z) > 1e-6 {
		t.Errorf("Expected (-100, 0), got (%f, %f)", r.X, r.Z)
	}
}

// TestProjectCentreLine verifies points on the forward axis land on screen centre x
func TestProjectCentreLine(t *testing.T) {
	cam := level()
	s, ok := cam.Project(vmath.Vec3{X: 0, Y: 0, Z: 300})
	if !ok {
		t.Fatal("Expected point ahead to project")
	}
	if s.X != 400 {
		t.Errorf("Expected x 400, got %f", s.X)
	}
	if s.Y != 250 {
		t.Errorf("Expected y on horizon 250, got %f", s.Y)
	}
	want := parameter.ProjectionStrength / (300 + 500 + parameter.ProjectionEpsilon)
	if math.Abs(s.Scale-want) > eps {
		t.Errorf("Expected scale %f, got %f", want, s.Scale)
	}
	if s.Depth != 300 {
		t.Errorf("Expected depth 300, got %f", s.Depth)
	}
}

// TestProjectScaleShrinksWithDepth verifies farther points get smaller scale
func TestProjectScaleShrinksWithDepth(t *testing.T) {
	cam := level()
	near, _ := cam.Project(vmath.Vec3{X: 100, Z: 100})
	far, _ := cam.Project(vmath.Vec3{X: 100, Z: 1000})
	if far.Scale >= near.Scale {
		t.Errorf("Expected far scale < near scale, got %f >= %f", far.Scale, near.Scale)
	}
	if far.X >= near.X {
		t.Errorf("Expected far point closer to centre, got far %f near %f", far.X, near.X)
	}
}

// TestProjectNearPlaneCull verifies the rz <= -altitude reject boundary
func TestProjectNearPlaneCull(t *testing.T) {
	cam := level()
	if _, ok := cam.Project(vmath.Vec3{Z: -500}); ok {
		t.Error("Expected point exactly on near plane to be rejected")
	}
	if _, ok := cam.Project(vmath.Vec3{Z: -700}); ok {
		t.Error("Expected point behind near plane to be rejected")
	}
	if _, ok := cam.Project(vmath.Vec3{Z: -499}); !ok {
		t.Error("Expected point just ahead of near plane to project")
	}
}

// TestHorizonFollowsPitch verifies horizon shift per radian of pitch
func TestHorizonFollowsPitch(t *testing.T) {
	cam := level()
	cam.Pitch = -0.25
	want := 250 - 0.25*parameter.PitchSensitivity
	if cam.HorizonY() != want {
		t.Errorf("Expected horizon %f, got %f", want, cam.HorizonY())
	}

	s, _ := cam.Project(vmath.Vec3{Y: 0, Z: 100})
	if s.Y != want {
		t.Errorf("Expected projected y on shifted horizon %f, got %f", want, s.Y)
	}
}

// TestProjectClippedRejectsOffscreen verifies terrain clipping is x-only
func TestProjectClippedRejectsOffscreen(t *testing.T) {
	cam := level()
	wide := vmath.Vec3{X: 5000, Z: 10}
	if _, ok := cam.Project(wide); !ok {
		t.Fatal("Expected unclipped projection to accept off-screen x")
	}
	if _, ok := cam.ProjectClipped(wide); ok {
		t.Error("Expected clipped projection to reject off-screen x")
	}

	tall := vmath.Vec3{X: 0, Y: 10000, Z: 10}
	if _, ok := cam.ProjectClipped(tall); !ok {
		t.Error("Expected clipped projection to ignore y bounds")
	}
}

// TestOpacityWindow verifies linear fade clamped to [MinOpacity, 1]
func TestOpacityWindow(t *testing.T) {
	tests := []struct {
		rz   float64
		want float64
	}{
		{-100, 1},
		{parameter.FadeNear, 1},
		{(parameter.FadeNear + parameter.FadeFar) / 2, (1 + parameter.MinOpacity) / 2},
		{parameter.FadeFar, parameter.MinOpacity},
		{5000, parameter.MinOpacity},
	}
	for _, tt := range tests {
		got := Opacity(tt.rz)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Opacity(%f): expected %f, got %f", tt.rz, tt.want, got)
		}
	}
}
