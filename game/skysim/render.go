package skysim

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/skyfolio/camera"
	"github.com/lixenwraith/skyfolio/engine"
	"github.com/lixenwraith/skyfolio/render"
	"github.com/lixenwraith/skyfolio/vmath"
)

// Draw tags label recorded ops per layer
const (
	TagSky     = "sky"
	TagGround  = "ground"
	TagTerrain = "terrain"
	TagCloud   = "cloud"
	TagStar    = "star"
	TagPlane   = "plane"
	TagHUD     = "hud"
)

// tagger is implemented by surfaces that label ops, e.g. render.Recorder
type tagger interface {
	SetTag(tag string)
}

// Star sprite spin per tick in radians
const starSpin = 0.05

// Render draws back to front: sky, ground, terrain, clouds, stars, plane, HUD, phase overlay
func (r *Rules) Render(s render.Surface, v engine.View) {
	cam := r.Camera()
	tag := func(string) {}
	if t, ok := s.(tagger); ok {
		tag = t.SetTag
	}

	s.ResetTransform()
	s.Clear(render.RgbBackground)

	tag(TagSky)
	render.FillGradient(s, 0, 0, cam.Width, cam.Height, render.RgbSkyTop, render.RgbSkyHorizon)

	tag(TagGround)
	r.drawGround(s, cam)

	tag(TagTerrain)
	r.drawTerrain(s, cam)

	tag(TagCloud)
	r.drawClouds(s, cam)

	tag(TagStar)
	r.drawStars(s, cam)

	tag(TagPlane)
	r.drawPlane(s, cam)

	tag(TagHUD)
	r.drawHUD(s, cam, v)

	tag("")
	switch v.Phase {
	case engine.PhaseIdle:
		r.drawIdle(s, v)
	case engine.PhaseTerminal:
		r.drawTerminal(s, v)
	}
}

// drawGround fills below the horizon, tilted against the bank angle
func (r *Rules) drawGround(s render.Surface, cam camera.Camera) {
	span := 2 * math.Max(cam.Width, cam.Height)

	s.Save()
	s.Translate(cam.Width/2, cam.HorizonY())
	s.Rotate(-cam.Roll)
	render.FillGradient(s, -span, 0, 2*span, cam.Height/3, render.RgbGroundFar, render.RgbGround)
	s.FillRect(-span, cam.Height/3, 2*span, span, render.RgbGround)
	s.Restore()
}

// drawTerrain draws each ring point as a peak standing on the horizon plane
func (r *Rules) drawTerrain(s render.Surface, cam camera.Camera) {
	for _, e := range r.world.Terrain {
		base, ok := cam.ProjectClipped(vmath.Vec3{X: e.Pos.X, Y: 0, Z: e.Pos.Z})
		if !ok {
			continue
		}
		peakY := base.Y - e.Pos.Y*base.Scale
		half := 0.6 * e.Pos.Y * base.Scale

		s.FillPath([]vmath.Vec2{
			{X: base.X - half, Y: base.Y},
			{X: base.X, Y: peakY},
			{X: base.X + half, Y: base.Y},
		}, render.RgbTerrain)

		// Snow cap on the top fifth
		capY := peakY + (base.Y-peakY)*0.2
		s.FillPath([]vmath.Vec2{
			{X: base.X - half*0.2, Y: capY},
			{X: base.X, Y: peakY},
			{X: base.X + half*0.2, Y: capY},
		}, render.RgbTerrainPeak)
	}
}

// drawClouds relies on the pool being sorted back to front after the tick
func (r *Rules) drawClouds(s render.Surface, cam camera.Camera) {
	for _, e := range r.world.Clouds {
		p, ok := cam.Project(e.Pos)
		if !ok {
			continue
		}
		radius := e.Size * p.Scale
		col := render.RgbCloud.WithAlpha(camera.Opacity(p.Depth))

		s.FillCircle(p.X, p.Y, radius, col)
		s.FillCircle(p.X-radius*0.8, p.Y+radius*0.2, radius*0.7, col)
		s.FillCircle(p.X+radius*0.8, p.Y+radius*0.2, radius*0.7, col)
	}
}

func (r *Rules) drawStars(s render.Surface, cam camera.Camera) {
	for _, e := range r.world.Stars {
		if e.Collected {
			continue
		}
		p, ok := cam.Project(e.Pos)
		if !ok {
			continue
		}
		col := render.RgbStar.WithAlpha(camera.Opacity(p.Depth))

		s.Save()
		s.Translate(p.X, p.Y)
		s.Rotate(float64(r.ticks) * starSpin)
		s.FillPath(starPath(e.Size*p.Scale), col)
		s.Restore()
	}
}

// starPath is a five-pointed star centred on the origin
func starPath(outer float64) []vmath.Vec2 {
	inner := outer * 0.45
	pts := make([]vmath.Vec2, 0, 10)
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		sin, cos := math.Sincos(float64(i)*math.Pi/5 - math.Pi/2)
		pts = append(pts, vmath.Vec2{X: radius * cos, Y: radius * sin})
	}
	return pts
}

// drawPlane draws the aircraft from behind, banked with roll
func (r *Rules) drawPlane(s render.Surface, cam camera.Camera) {
	s.Save()
	s.Translate(cam.Width/2, cam.Height*0.78)
	s.Rotate(cam.Roll)

	s.FillPath(render.Polyline(-70, 4, 0, -6, 70, 4, 0, 10), render.RgbPlaneWing)
	s.FillPath(render.Polyline(-22, -22, 0, -30, 22, -22, 0, -16), render.RgbPlaneWing)
	s.FillCircle(0, 0, 12, render.RgbPlaneBody)
	s.FillPath(render.Polyline(-2, -12, 0, -34, 2, -12), render.RgbPlaneBody)

	s.Restore()
}

// drawHUD draws the readouts and the attitude indicator
func (r *Rules) drawHUD(s render.Surface, cam camera.Camera, v engine.View) {
	s.FillRect(8, 8, 190, 108, render.RgbHUDPanel)

	heading := int(math.Round(cam.Heading*180/math.Pi)) % 360
	lines := []string{
		fmt.Sprintf("ALT %s", humanize.Comma(int64(math.Round(r.state.Altitude)))),
		fmt.Sprintf("SPD %.1f", r.state.Speed),
		fmt.Sprintf("HDG %03d", heading),
		fmt.Sprintf("SCORE %s", humanize.Comma(int64(v.Score))),
		fmt.Sprintf("BEST %s", humanize.Comma(int64(v.HighScore))),
	}
	for i, line := range lines {
		s.Text(20, 20+float64(i)*20, line, render.AlignLeft, render.RgbHUD)
	}

	// Attitude indicator: horizon line counter-rotated by roll, offset by pitch
	const radius = 44.0
	cx, cy := cam.Width-radius-16, radius+16

	s.FillCircle(cx, cy, radius, render.RgbHUDPanel)
	s.StrokeCircle(cx, cy, radius, render.RgbHUD)

	s.Save()
	s.Translate(cx, cy)
	s.Rotate(-cam.Roll)
	offset := vmath.Clamp(cam.Pitch*radius, -radius+4, radius-4)
	s.StrokePath(render.Polyline(-radius+6, offset, radius-6, offset), false, render.RgbHUD)
	s.Restore()

	s.StrokePath(render.Polyline(cx-14, cy, cx-4, cy, cx, cy+4, cx+4, cy, cx+14, cy), false, render.RgbWarning)
}

func (r *Rules) drawIdle(s render.Surface, v engine.View) {
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2

	s.Text(cx, cy-40, "Click or press SPACE to start", render.AlignCenter, render.RgbText)
	s.Text(cx, cy-10, "Arrows or hjkl to fly, W/S throttle", render.AlignCenter, render.RgbTextDim)
	s.Text(cx, cy+20, "Collect stars, stay above the floor", render.AlignCenter, render.RgbTextDim)
	if v.HighScore > 0 {
		s.Text(cx, cy+50, "Best: "+humanize.Comma(int64(v.HighScore)), render.AlignCenter, render.RgbAccent)
	}
}

func (r *Rules) drawTerminal(s render.Surface, v engine.View) {
	best := "Best: " + humanize.Comma(int64(v.HighScore))
	if v.NewRecord {
		best = "New high score!"
	}
	render.DrawOverlay(s, "Crashed!", render.RgbDanger,
		v.Outcome.Reason,
		"Score: "+humanize.Comma(int64(v.Score)),
		best,
		"Press R or SPACE to restart",
	)
}

// Population reports pool sizes, logged on crash
func (r *Rules) Population() (terrain, clouds, stars int) {
	return r.world.Population()
}

