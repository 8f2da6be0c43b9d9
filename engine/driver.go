package engine

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfolio/input"
	"github.com/lixenwraith/skyfolio/render"
	"github.com/lixenwraith/skyfolio/store"
)

// Scores is the persistence the driver needs at run end
type Scores interface {
	HighScore(ctx context.Context, game string) (int, error)
	SetHighScore(ctx context.Context, game string, score int) error
	RecordRun(ctx context.Context, run store.Run) error
}

// Options carries optional driver collaborators, zero values are tolerated
type Options struct {
	Scores  Scores
	Sink    Sink
	Clock   TimeProvider
	Logger  zerolog.Logger
	Metrics *Metrics

	// Present is called after every rendered frame, e.g. to flush a canvas
	Present func()
}

// Driver runs the phase state machine around one Rules
// Not safe for concurrent use; the Scheduler goroutine owns it
type Driver struct {
	rules   Rules
	surface render.Surface
	scores  Scores
	sink    Sink
	clock   TimeProvider
	log     zerolog.Logger
	metrics *Metrics
	present func()

	phase     Phase
	paused    bool
	highScore int
	newRecord bool
	outcome   Outcome
	runStart  store.Run
}

// NewDriver wires rules to a surface
func NewDriver(rules Rules, surface render.Surface, opts Options) *Driver {
	d := &Driver{
		rules:   rules,
		surface: surface,
		scores:  opts.Scores,
		sink:    opts.Sink,
		clock:   opts.Clock,
		log:     opts.Logger.With().Str("component", "driver").Str("game", rules.Name()).Logger(),
		metrics: opts.Metrics,
		present: opts.Present,
	}
	if d.sink == nil {
		d.sink = Discard
	}
	if d.clock == nil {
		d.clock = NewSystemTimeProvider()
	}
	return d
}

// Start initialises the rules, loads the high score and draws the idle frame
func (d *Driver) Start(ctx context.Context) {
	d.rules.Init()
	d.phase = PhaseIdle
	d.paused = false

	if d.scores != nil {
		high, err := d.scores.HighScore(ctx, d.rules.Name())
		if err != nil {
			d.log.Warn().Err(err).Msg("High score unavailable, starting from zero")
		}
		d.highScore = high
	}

	d.log.Info().Int("high_score", d.highScore).Msg("Driver started")
	d.Redraw()
}

// Phase returns the current phase
func (d *Driver) Phase() Phase {
	return d.phase
}

// Paused reports whether a running game is paused
func (d *Driver) Paused() bool {
	return d.paused
}

// HighScore returns the best score known for the rules
func (d *Driver) HighScore() int {
	return d.highScore
}

// Scheduled reports whether the next ticker fire should produce a frame
func (d *Driver) Scheduled() bool {
	return d.phase == PhaseRunning && !d.paused
}

// HandleInput applies one translated event between ticks
func (d *Driver) HandleInput(ctx context.Context, ev input.Event) {
	switch {
	case ev.Intent == input.IntentPause:
		if d.phase != PhaseRunning {
			return
		}
		d.paused = !d.paused
		d.log.Debug().Bool("paused", d.paused).Msg("Pause toggled")
		d.Redraw()

	case d.phase == PhaseIdle && ev.Intent == input.IntentAction:
		// The start trigger is consumed, rules see input from the next event on
		d.begin(ctx)
		d.Redraw()

	case d.phase == PhaseTerminal && ev.Intent.IsTrigger():
		d.restart(ctx)

	case d.phase == PhaseRunning && !d.paused:
		d.rules.OnInput(ev)
	}
}

// Frame runs one tick and renders it; it is a no-op unless Scheduled
func (d *Driver) Frame(ctx context.Context) {
	if !d.Scheduled() {
		return
	}

	d.rules.Tick()
	d.metrics.frame(ctx, d.rules.Name())

	if outcome, done := d.rules.Terminal(); done {
		d.finish(ctx, outcome)
	}
	d.Redraw()
}

// Redraw renders the current phase without advancing simulation
func (d *Driver) Redraw() {
	v := View{
		Phase:     d.phase,
		Score:     d.rules.Score(),
		HighScore: d.highScore,
		NewRecord: d.newRecord,
		Outcome:   d.outcome,
		Paused:    d.paused,
	}
	d.rules.Render(d.surface, v)

	if d.paused {
		d.surface.ResetTransform()
		render.DrawOverlay(d.surface, "Paused", render.RgbAccent, "Press p to resume")
	}

	if d.present != nil {
		d.present()
	}
}

func (d *Driver) begin(ctx context.Context) {
	d.phase = PhaseRunning
	d.paused = false
	d.newRecord = false
	d.outcome = Outcome{}
	d.runStart = store.Run{Game: d.rules.Name(), StartedAt: d.clock.Now()}

	d.sink.Emit(Event{Kind: EventRunStart, Game: d.rules.Name()})
	d.log.Debug().Msg("Run started")
}

func (d *Driver) restart(ctx context.Context) {
	d.rules.Init()

	toIdle := true
	if r, ok := d.rules.(Restarter); ok {
		toIdle = r.RestartToIdle()
	}

	if toIdle {
		d.phase = PhaseIdle
		d.newRecord = false
		d.outcome = Outcome{}
		d.Redraw()
		return
	}
	d.begin(ctx)
	d.Redraw()
}

func (d *Driver) finish(ctx context.Context, outcome Outcome) {
	d.phase = PhaseTerminal
	d.outcome = outcome
	game := d.rules.Name()
	score := d.rules.Score()

	if score > d.highScore {
		d.highScore = score
		d.newRecord = true
		d.sink.Emit(Event{Kind: EventHighScore, Game: game, Value: score})
		if d.scores != nil {
			if err := d.scores.SetHighScore(ctx, game, score); err != nil {
				d.log.Error().Err(err).Int("score", score).Msg("Failed to persist high score")
			}
		}
	}

	run := d.runStart
	run.Score = score
	run.Reason = outcome.Reason
	run.EndedAt = d.clock.Now()
	if d.scores != nil {
		if err := d.scores.RecordRun(ctx, run); err != nil {
			d.log.Error().Err(err).Msg("Failed to record run")
		}
	}

	if outcome.Crashed {
		d.sink.Emit(Event{Kind: EventCrash, Game: game, Value: score, Reason: outcome.Reason})
	}
	d.sink.Emit(Event{Kind: EventRunEnd, Game: game, Value: score, Reason: outcome.Reason})
	d.metrics.run(ctx, game, outcome.Crashed)

	d.log.Info().
		Int("score", score).
		Bool("new_record", d.newRecord).
		Str("reason", outcome.Reason).
		Dur("duration", run.EndedAt.Sub(run.StartedAt)).
		Msg("Run ended")
}
