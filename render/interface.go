package render

import "github.com/lixenwraith/skyfolio/vmath"

// Align controls horizontal text anchoring
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a fixed-size 2D drawing target in logical pixels
// Coordinates pass through the current affine transform (translate/rotate only)
type Surface interface {
	Size() (width, height int)
	Clear(c Color)

	FillRect(x, y, w, h float64, c Color)
	FillPath(pts []vmath.Vec2, c Color)
	StrokePath(pts []vmath.Vec2, closed bool, c Color)
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r float64, c Color)
	Text(x, y float64, s string, align Align, c Color)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(angle float64)
	ResetTransform()
}
