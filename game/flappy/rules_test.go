package flappy

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyfolio/engine"
	"github.com/lixenwraith/skyfolio/input"
	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/render"
)

func newTestRules(seed uint64, sink engine.Sink) *Rules {
	r := New(rand.New(rand.NewPCG(seed, seed*31+7)), sink)
	r.Init()
	return r
}

var flap = input.Event{Intent: input.IntentAction}

func TestInitPose(t *testing.T) {
	r := newTestRules(1, nil)
	b := r.Bird()
	assert.Equal(t, parameter.FlappyBirdX, b.X)
	assert.Equal(t, parameter.FlappyBirdStartY, b.Y)
	assert.Zero(t, b.Velocity)
	assert.Empty(t, r.Pipes())
	assert.False(t, r.RestartToIdle())
}

// TestFreeFallHitsFloor lets gravity act alone: y = 240 + 0.25*n*(n+1) reaches 456 on tick 29
func TestFreeFallHitsFloor(t *testing.T) {
	r := newTestRules(2, nil)

	tick := 0
	for tick < 100 {
		r.Tick()
		tick++
		if _, done := r.Terminal(); done {
			break
		}
	}

	outcome, done := r.Terminal()
	require.True(t, done)
	assert.Equal(t, 29, tick)
	assert.Equal(t, ReasonFloor, outcome.Reason)
}

func TestFlapToCeiling(t *testing.T) {
	var flaps int
	r := newTestRules(3, engine.SinkFunc(func(ev engine.Event) {
		if ev.Kind == engine.EventFlap {
			flaps++
		}
	}))

	tick := 0
	for tick < 100 {
		r.OnInput(flap)
		r.Tick()
		tick++
		if _, done := r.Terminal(); done {
			break
		}
	}

	outcome, done := r.Terminal()
	require.True(t, done)
	assert.Equal(t, ReasonCeiling, outcome.Reason)
	assert.Equal(t, 26, tick)
	assert.Equal(t, tick, flaps)

	// Input after game over does not flap
	r.OnInput(flap)
	assert.Equal(t, tick, flaps)
}

func TestFlapSetsVelocity(t *testing.T) {
	r := newTestRules(4, nil)
	r.OnInput(flap)
	assert.Equal(t, parameter.FlappyFlapVelocity, r.Bird().Velocity)

	r.OnInput(input.Event{Intent: input.IntentPitchUp})
	assert.Equal(t, parameter.FlappyFlapVelocity, r.Bird().Velocity, "non-action input ignored")
}

// TestScoringThroughGaps steers the bird into each gap and counts passes
func TestScoringThroughGaps(t *testing.T) {
	var points int
	r := newTestRules(5, engine.SinkFunc(func(ev engine.Event) {
		if ev.Kind == engine.EventPoint {
			points++
		}
	}))

	for i := 0; i < 800; i++ {
		for _, p := range r.Pipes() {
			if p.X+parameter.FlappyPipeWidth+parameter.FlappyPipeSpeed >= r.bird.X {
				r.bird.Y = p.Height + (parameter.FlappyPipeGap-parameter.FlappyBirdHeight)/2 - parameter.FlappyGravity
				break
			}
		}
		r.bird.Velocity = 0

		r.Tick()
		_, done := r.Terminal()
		require.False(t, done, "bird crashed at tick %d", i)
	}

	assert.GreaterOrEqual(t, r.Score(), 3)
	assert.Equal(t, r.Score(), points)
}

func TestPipeGeneration(t *testing.T) {
	r := newTestRules(6, nil)

	for i := 0; i < 2000; i++ {
		r.bird.Y = parameter.FlappyBirdStartY
		r.bird.Velocity = 0
		r.over = false
		r.Tick()

		pipes := r.Pipes()
		for j, p := range pipes {
			assert.GreaterOrEqual(t, p.Height, parameter.FlappyPipeMinHeight)
			assert.LessOrEqual(t, p.Height, parameter.FlappyHeight-parameter.FlappyPipeGap-parameter.FlappyPipeMinHeight)
			assert.Equal(t, math.Floor(p.Height), p.Height)
			if j > 0 {
				assert.GreaterOrEqual(t, p.X-pipes[j-1].X, parameter.FlappyPipeSpacing)
			}
			assert.Greater(t, p.X+parameter.FlappyPipeWidth, -parameter.FlappyPipeSpeed)
		}
	}
}

func TestRestartClearsRun(t *testing.T) {
	r := newTestRules(7, nil)
	for i := 0; i < 50; i++ {
		r.Tick()
	}
	_, done := r.Terminal()
	require.True(t, done)

	r.Init()
	_, done = r.Terminal()
	assert.False(t, done)
	assert.Empty(t, r.Pipes())
	assert.Equal(t, parameter.FlappyBirdStartY, r.Bird().Y)
	assert.Zero(t, r.Score())
}

func TestRender(t *testing.T) {
	r := newTestRules(8, nil)
	rec := render.NewRecorder(parameter.FlappyWidth, parameter.FlappyHeight)

	r.Render(rec, engine.View{Phase: engine.PhaseIdle})
	assert.Contains(t, rec.Texts(), "Click or press SPACE to Start")

	r.Tick()
	rec.Reset()
	r.Render(rec, engine.View{Phase: engine.PhaseRunning, Score: 3})
	rects := 0
	for _, op := range rec.Ops() {
		if op.Kind == render.OpFillRect {
			rects++
		}
	}
	// Two per pipe plus bird body and wing
	assert.Equal(t, 2*len(r.Pipes())+2, rects)
	assert.Contains(t, rec.Texts(), "3")

	rec.Reset()
	r.Render(rec, engine.View{Phase: engine.PhaseTerminal, Score: 3})
	assert.Contains(t, rec.Texts(), "Game Over!")
	assert.Contains(t, rec.Texts(), "Score: 3")
}
