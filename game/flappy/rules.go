// Package flappy is the side-scrolling bird game: flap through gaps between
// pipes, one point per pipe passed, over on any contact.
package flappy

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/skyfolio/engine"
	"github.com/lixenwraith/skyfolio/input"
	"github.com/lixenwraith/skyfolio/parameter"
)

// Game-over reasons
const (
	ReasonFloor   = "Hit the ground"
	ReasonCeiling = "Hit the ceiling"
	ReasonPipe    = "Hit a pipe"
)

// Bird is an axis-aligned box, Y is its top edge
type Bird struct {
	X, Y     float64
	Velocity float64
}

// Pipe is a top and bottom pair; Height is the top pipe's length, the gap follows it
type Pipe struct {
	X      float64
	Height float64
	Passed bool
}

// Rules owns the flappy state
type Rules struct {
	rng  *rand.Rand
	sink engine.Sink

	width, height float64

	bird    Bird
	pipes   []Pipe
	score   int
	started bool
	over    bool
	reason  string
}

// New creates flappy rules; the surface is always FlappyWidth x FlappyHeight logical pixels
func New(rng *rand.Rand, sink engine.Sink) *Rules {
	if sink == nil {
		sink = engine.Discard
	}
	return &Rules{
		rng:    rng,
		sink:   sink,
		width:  parameter.FlappyWidth,
		height: parameter.FlappyHeight,
	}
}

func (r *Rules) Name() string { return parameter.GameFlappy }

func (r *Rules) Init() {
	r.bird = Bird{X: parameter.FlappyBirdX, Y: parameter.FlappyBirdStartY}
	r.pipes = r.pipes[:0]
	r.score = 0
	r.started = false
	r.over = false
	r.reason = ""
}

// OnInput flaps on the action trigger
func (r *Rules) OnInput(ev input.Event) {
	if ev.Intent != input.IntentAction || r.over {
		return
	}
	r.bird.Velocity = parameter.FlappyFlapVelocity
	r.sink.Emit(engine.Event{Kind: engine.EventFlap, Game: parameter.GameFlappy})
}

// Tick applies gravity, scrolls and checks pipes, then spawns when the last pipe has moved far enough
func (r *Rules) Tick() {
	if r.over {
		return
	}
	if !r.started {
		r.started = true
		r.spawnPipe()
	}

	r.bird.Velocity += parameter.FlappyGravity
	r.bird.Y += r.bird.Velocity

	switch {
	case r.bird.Y+parameter.FlappyBirdHeight >= r.height:
		r.end(ReasonFloor)
	case r.bird.Y <= 0:
		r.end(ReasonCeiling)
	}

	r.updatePipes()

	if len(r.pipes) == 0 || r.pipes[len(r.pipes)-1].X < r.width-parameter.FlappyPipeSpacing {
		r.spawnPipe()
	}
}

func (r *Rules) updatePipes() {
	r.pipes = slices.DeleteFunc(r.pipes, func(p Pipe) bool {
		return p.X+parameter.FlappyPipeWidth <= 0
	})

	for i := range r.pipes {
		p := &r.pipes[i]
		p.X -= parameter.FlappyPipeSpeed

		if r.collides(*p) {
			r.end(ReasonPipe)
			return
		}

		if !p.Passed && r.bird.X > p.X+parameter.FlappyPipeWidth {
			p.Passed = true
			r.score++
			r.sink.Emit(engine.Event{Kind: engine.EventPoint, Game: parameter.GameFlappy, Value: r.score})
		}
	}
}

func (r *Rules) collides(p Pipe) bool {
	b := r.bird
	overlapX := b.X+parameter.FlappyBirdWidth > p.X && b.X < p.X+parameter.FlappyPipeWidth
	outsideGap := b.Y < p.Height || b.Y+parameter.FlappyBirdHeight > p.Height+parameter.FlappyPipeGap
	return overlapX && outsideGap
}

// spawnPipe adds a pipe at the right edge with an integer top height in [min, height-gap-min]
func (r *Rules) spawnPipe() {
	lo := parameter.FlappyPipeMinHeight
	hi := r.height - parameter.FlappyPipeGap - parameter.FlappyPipeMinHeight
	h := math.Floor(r.rng.Float64()*(hi-lo+1)) + lo
	r.pipes = append(r.pipes, Pipe{X: r.width, Height: h})
}

func (r *Rules) end(reason string) {
	if r.over {
		return
	}
	r.over = true
	r.reason = reason
}

func (r *Rules) Terminal() (engine.Outcome, bool) {
	if !r.over {
		return engine.Outcome{}, false
	}
	return engine.Outcome{Crashed: true, Reason: r.reason}, true
}

func (r *Rules) Score() int { return r.score }

// RestartToIdle is false: after game over the next trigger starts a new run immediately
func (r *Rules) RestartToIdle() bool { return false }

// Bird returns the current bird box
func (r *Rules) Bird() Bird { return r.bird }

// Pipes returns the live pipes, oldest first
func (r *Rules) Pipes() []Pipe { return r.pipes }
