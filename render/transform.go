package render

import (
	"math"

	"github.com/lixenwraith/skyfolio/vmath"
)

// affine is a 2x3 matrix: x' = a*x + c*y + e, y' = b*x + d*y + f
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: m.a*p.X + m.c*p.Y + m.e,
		Y: m.b*p.X + m.d*p.Y + m.f,
	}
}

// mul returns m followed by n applied in local space (canvas semantics)
func (m affine) mul(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

// transformStack implements the Save/Restore/Translate/Rotate half of Surface
type transformStack struct {
	current affine
	saved   []affine
}

func newTransformStack() transformStack {
	return transformStack{current: identity}
}

func (t *transformStack) Save() {
	t.saved = append(t.saved, t.current)
}

// Restore pops the last saved transform, unbalanced calls reset to identity
func (t *transformStack) Restore() {
	if len(t.saved) == 0 {
		t.current = identity
		return
	}
	t.current = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

func (t *transformStack) Translate(dx, dy float64) {
	t.current = t.current.mul(affine{a: 1, d: 1, e: dx, f: dy})
}

func (t *transformStack) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	t.current = t.current.mul(affine{a: cos, b: sin, c: -sin, d: cos})
}

// ResetTransform sets identity without touching the save stack
func (t *transformStack) ResetTransform() {
	t.current = identity
}

func (t *transformStack) point(x, y float64) vmath.Vec2 {
	return t.current.apply(vmath.Vec2{X: x, Y: y})
}

func (t *transformStack) points(pts []vmath.Vec2) []vmath.Vec2 {
	out := make([]vmath.Vec2, len(pts))
	for i, p := range pts {
		out[i] = t.current.apply(p)
	}
	return out
}

func rectPath(x, y, w, h float64) []vmath.Vec2 {
	return []vmath.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}
