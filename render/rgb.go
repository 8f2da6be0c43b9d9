package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is straight 8-bit RGBA, A=255 is opaque
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex parses "#rrggbb", panics on malformed input (palette literals only)
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b)
}

// WithAlpha returns c with opacity a in [0,1]
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp(a * 255.0)
	return c
}

// Opacity returns alpha as [0,1]
func (c Color) Opacity() float64 {
	return float64(c.A) / 255.0
}

// TCell converts to a tcell truecolor value, alpha dropped
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// Over composites src onto opaque dst using src alpha
func Over(dst, src Color) Color {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	mixed := dst.colorful().BlendRgb(src.colorful(), src.Opacity()).Clamped()
	r, g, b := mixed.RGB255()
	return RGB(r, g, b)
}

// Mix blends two opaque colors in Lab space, used for gradients where RGB mixing muddies
func Mix(a, b Color, t float64) Color {
	mixed := a.colorful().BlendLab(b.colorful(), t).Clamped()
	r, g, bl := mixed.RGB255()
	return RGB(r, g, bl)
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}
