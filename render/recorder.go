package render

import "github.com/lixenwraith/skyfolio/vmath"

// OpKind names a recorded draw call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillPath
	OpStrokePath
	OpFillCircle
	OpStrokeCircle
	OpText
)

// Op is one recorded draw call with points already in surface space
type Op struct {
	Kind   OpKind
	Points []vmath.Vec2
	Radius float64
	Text   string
	Align  Align
	Color  Color
	Tag    string
}

// Recorder is a Surface that logs draw calls instead of rasterising them
// Tag labels subsequent ops so tests can locate what a renderer drew
type Recorder struct {
	transformStack

	width, height int
	tag           string
	ops           []Op
}

// NewRecorder creates a recorder reporting the given surface size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		transformStack: newTransformStack(),
		width:          width,
		height:         height,
	}
}

// SetTag labels ops recorded from now on
func (r *Recorder) SetTag(tag string) {
	r.tag = tag
}

// Ops returns every recorded op in draw order
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Tagged returns ops carrying the given tag in draw order
func (r *Recorder) Tagged(tag string) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Tag == tag {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every recorded string in draw order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops recorded ops and the transform
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.tag = ""
	r.transformStack = newTransformStack()
}

func (r *Recorder) record(op Op) {
	op.Tag = r.tag
	r.ops = append(r.ops, op)
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) Clear(c Color) {
	r.record(Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.record(Op{Kind: OpFillRect, Points: r.points(rectPath(x, y, w, h)), Color: c})
}

func (r *Recorder) FillPath(pts []vmath.Vec2, c Color) {
	r.record(Op{Kind: OpFillPath, Points: r.points(pts), Color: c})
}

func (r *Recorder) StrokePath(pts []vmath.Vec2, closed bool, c Color) {
	r.record(Op{Kind: OpStrokePath, Points: r.points(pts), Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	r.record(Op{Kind: OpFillCircle, Points: []vmath.Vec2{r.point(cx, cy)}, Radius: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius float64, c Color) {
	r.record(Op{Kind: OpStrokeCircle, Points: []vmath.Vec2{r.point(cx, cy)}, Radius: radius, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, align Align, c Color) {
	r.record(Op{Kind: OpText, Points: []vmath.Vec2{r.point(x, y)}, Text: s, Align: align, Color: c})
}
