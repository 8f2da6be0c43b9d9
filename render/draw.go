package render

import "github.com/lixenwraith/skyfolio/vmath"

// gradientBands is the number of flat bands a vertical gradient is split into
const gradientBands = 16

// FillGradient fills a rect with a vertical gradient from top to bottom color
func FillGradient(s Surface, x, y, w, h float64, top, bottom Color) {
	if h <= 0 {
		return
	}
	band := h / gradientBands
	for i := 0; i < gradientBands; i++ {
		t := float64(i) / float64(gradientBands-1)
		s.FillRect(x, y+float64(i)*band, w, band+0.5, Mix(top, bottom, t))
	}
}

// DrawOverlay shades the whole surface and centres a title with follow-up lines
func DrawOverlay(s Surface, title string, titleColor Color, lines ...string) {
	w, h := s.Size()
	s.FillRect(0, 0, float64(w), float64(h), RgbShade)

	cx, cy := float64(w)/2, float64(h)/2
	s.Text(cx, cy-50, title, AlignCenter, titleColor)
	for i, line := range lines {
		s.Text(cx, cy+float64(i)*40, line, AlignCenter, RgbText)
	}
}

// Polyline is a convenience builder for paths from flat coordinate pairs
func Polyline(coords ...float64) []vmath.Vec2 {
	pts := make([]vmath.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, vmath.Vec2{X: coords[i], Y: coords[i+1]})
	}
	return pts
}
