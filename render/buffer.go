package render

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/skyfolio/vmath"
)

// halfBlock paints the upper raster pixel as foreground and the lower as background
const halfBlock = '▀'

// circleSegments is the polyline resolution for stroked circles
const circleSegments = 24

type textRun struct {
	col, row int
	s        string
	fg       Color
}

// Canvas is a Surface backed by a pixel grid two pixels per terminal cell high
// Logical width x height coordinates are scaled onto cols x rows*2 raster pixels
type Canvas struct {
	transformStack

	width, height int
	cols, rows    int
	rw, rh        int
	sx, sy        float64

	pixels []Color
	texts  []textRun
}

// NewCanvas creates a canvas with fixed logical size mapped onto a terminal area
func NewCanvas(width, height, cols, rows int) *Canvas {
	c := &Canvas{
		transformStack: newTransformStack(),
		width:          width,
		height:         height,
	}
	c.Resize(cols, rows)
	return c
}

// Resize remaps the logical surface onto a new terminal area, reallocates only if capacity insufficient
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
	c.rw = c.cols
	c.rh = c.rows * 2
	c.sx = float64(c.rw) / float64(c.width)
	c.sy = float64(c.rh) / float64(c.height)

	size := c.rw * c.rh
	if cap(c.pixels) < size {
		c.pixels = make([]Color, size)
	} else {
		c.pixels = c.pixels[:size]
	}
	c.Clear(RgbBackground)
}

// Size returns the logical surface dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Raster returns the backing pixel grid dimensions
func (c *Canvas) Raster() (int, int) {
	return c.rw, c.rh
}

// Clear fills every pixel using exponential copy and drops pending text
func (c *Canvas) Clear(col Color) {
	c.texts = c.texts[:0]
	if len(c.pixels) == 0 {
		return
	}
	col.A = 255
	c.pixels[0] = col
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
}

// At returns the raster pixel, out of bounds yields the zero color
func (c *Canvas) At(x, y int) Color {
	if !c.inBounds(x, y) {
		return Color{}
	}
	return c.pixels[y*c.rw+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.rw && y >= 0 && y < c.rh
}

func (c *Canvas) plot(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.rw + x
	c.pixels[idx] = Over(c.pixels[idx], col)
}

// toRaster maps a transformed logical point into raster space
func (c *Canvas) toRaster(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{X: p.X * c.sx, Y: p.Y * c.sy}
}

func (c *Canvas) rasterPath(pts []vmath.Vec2) []vmath.Vec2 {
	out := c.points(pts)
	for i := range out {
		out[i] = c.toRaster(out[i])
	}
	return out
}

// ===== PRIMITIVES =====

func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	c.FillPath(rectPath(x, y, w, h), col)
}

// FillPath scanline-fills a polygon with the even-odd rule, sampling at pixel centres
func (c *Canvas) FillPath(pts []vmath.Vec2, col Color) {
	if len(pts) < 3 || col.A == 0 {
		return
	}
	poly := c.rasterPath(pts)

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(int(math.Floor(minY)), 0)
	y1 := min(int(math.Ceil(maxY)), c.rh-1)

	xs := make([]float64, 0, len(poly))
	for y := y0; y <= y1; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			if (a.Y <= sy && b.Y > sy) || (b.Y <= sy && a.Y > sy) {
				t := (sy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			from := max(int(math.Ceil(xs[i]-0.5)), 0)
			to := min(int(math.Floor(xs[i+1]-0.5)), c.rw-1)
			for x := from; x <= to; x++ {
				c.plot(x, y, col)
			}
		}
	}
}

// StrokePath draws one raster pixel wide segments between consecutive points
func (c *Canvas) StrokePath(pts []vmath.Vec2, closed bool, col Color) {
	if len(pts) == 0 || col.A == 0 {
		return
	}
	poly := c.rasterPath(pts)
	if len(poly) == 1 {
		c.plot(int(poly[0].X), int(poly[0].Y), col)
		return
	}
	for i := 0; i+1 < len(poly); i++ {
		c.line(poly[i], poly[i+1], col)
	}
	if closed && len(poly) > 2 {
		c.line(poly[len(poly)-1], poly[0], col)
	}
}

// line is integer Bresenham in raster space
func (c *Canvas) line(a, b vmath.Vec2, col Color) {
	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}
	err := dx + dy
	for {
		c.plot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += stepX
		}
		if e2 <= dx {
			err += dx
			y0 += stepY
		}
	}
}

// FillCircle fills an ellipse in raster space, the logical circle under non-uniform scaling
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 || col.A == 0 {
		return
	}
	center := c.toRaster(c.point(cx, cy))
	rx, ry := r*c.sx, r*c.sy
	if rx < 0.5 && ry < 0.5 {
		c.plot(int(center.X), int(center.Y), col)
		return
	}
	y0 := max(int(math.Floor(center.Y-ry)), 0)
	y1 := min(int(math.Ceil(center.Y+ry)), c.rh-1)
	x0 := max(int(math.Floor(center.X-rx)), 0)
	x1 := min(int(math.Ceil(center.X+rx)), c.rw-1)
	for y := y0; y <= y1; y++ {
		ny := (float64(y) + 0.5 - center.Y) / ry
		for x := x0; x <= x1; x++ {
			nx := (float64(x) + 0.5 - center.X) / rx
			if nx*nx+ny*ny <= 1 {
				c.plot(x, y, col)
			}
		}
	}
}

func (c *Canvas) StrokeCircle(cx, cy, r float64, col Color) {
	if r <= 0 {
		return
	}
	pts := make([]vmath.Vec2, circleSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = vmath.Vec2{X: cx + r*cos, Y: cy + r*sin}
	}
	c.StrokePath(pts, true, col)
}

// Text queues a run anchored at the logical point, composited over pixels on Flush
func (c *Canvas) Text(x, y float64, s string, align Align, col Color) {
	if s == "" {
		return
	}
	p := c.toRaster(c.point(x, y))
	col0 := int(math.Floor(p.X))
	row := int(math.Floor(p.Y / 2))

	w := runewidth.StringWidth(s)
	switch align {
	case AlignCenter:
		col0 -= w / 2
	case AlignRight:
		col0 -= w
	}
	c.texts = append(c.texts, textRun{col: col0, row: row, s: s, fg: col})
}

// ===== OUTPUT =====

// Flush writes the canvas into the screen at the origin and shows it
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(2*row)*c.rw+col]
			bottom := c.pixels[(2*row+1)*c.rw+col]
			style := tcell.StyleDefault.Foreground(top.TCell()).Background(bottom.TCell())
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	for _, t := range c.texts {
		if t.row < 0 || t.row >= c.rows {
			continue
		}
		col := t.col
		for _, r := range t.s {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if col >= 0 && col < c.cols {
				top := c.pixels[(2*t.row)*c.rw+col]
				bottom := c.pixels[(2*t.row+1)*c.rw+col]
				style := tcell.StyleDefault.Foreground(t.fg.TCell()).Background(Mix(top, bottom, 0.5).TCell())
				screen.SetContent(col, t.row, r, nil, style)
			}
			col += w
		}
	}

	screen.Show()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
