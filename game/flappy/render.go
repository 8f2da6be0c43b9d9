package flappy

import (
	"strconv"

	"github.com/lixenwraith/skyfolio/engine"
	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/render"
)

func (r *Rules) Render(s render.Surface, v engine.View) {
	s.ResetTransform()
	s.Clear(render.RgbFlappySky)

	for _, p := range r.pipes {
		s.FillRect(p.X, 0, parameter.FlappyPipeWidth, p.Height, render.RgbFlappyPipe)
		bottom := p.Height + parameter.FlappyPipeGap
		s.FillRect(p.X, bottom, parameter.FlappyPipeWidth, r.height-bottom, render.RgbFlappyPipe)
	}

	r.drawBird(s)

	s.Text(r.width/2, 24, strconv.Itoa(v.Score), render.AlignCenter, render.RgbText)
	s.Text(r.width-8, 24, "Best "+strconv.Itoa(v.HighScore), render.AlignRight, render.RgbTextDim)

	switch v.Phase {
	case engine.PhaseIdle:
		s.Text(r.width/2, r.height/2, "Click or press SPACE to Start", render.AlignCenter, render.RgbAccent)
	case engine.PhaseTerminal:
		render.DrawOverlay(s, "Game Over!", render.RgbWarning,
			"Score: "+strconv.Itoa(v.Score),
			"Click or press SPACE to restart",
		)
	}
}

func (r *Rules) drawBird(s render.Surface) {
	b := r.bird
	s.Save()
	s.FillRect(b.X, b.Y, parameter.FlappyBirdWidth, parameter.FlappyBirdHeight, render.RgbFlappyBird)

	// Wing
	s.FillRect(b.X, b.Y+8, 10, 8, render.RgbFlappyPipe)

	// Eye
	s.FillCircle(b.X+22, b.Y+8, 4, render.RgbEyeWhite)
	s.FillCircle(b.X+24, b.Y+8, 2, render.RgbEyePupil)
	s.Restore()
}
