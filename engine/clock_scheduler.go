package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfolio/input"
)

// Scheduler owns the driver goroutine: a fixed ticker for frames and the input channel
// No delta-time normalisation; a late tick simulates the same step as an early one
type Scheduler struct {
	driver       *Driver
	inputs       <-chan input.Event
	tickInterval time.Duration
	log          zerolog.Logger

	// OnResize is called for resize events before the redraw
	OnResize func(width, height int)

	tickCount atomic.Uint64
	running   atomic.Bool
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// NewScheduler creates a scheduler reading inputs and ticking every tickInterval
func NewScheduler(driver *Driver, inputs <-chan input.Event, tickInterval time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		driver:       driver,
		inputs:       inputs,
		tickInterval: tickInterval,
		log:          log.With().Str("component", "scheduler").Logger(),
		stopChan:     make(chan struct{}),
	}
}

// Run blocks until quit input, Stop, a closed input channel, or ctx cancellation
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	s.driver.Start(ctx)
	s.log.Info().Dur("tick", s.tickInterval).Msg("Scheduler running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-s.stopChan:
			return nil

		case ev, ok := <-s.inputs:
			if !ok {
				return nil
			}
			switch ev.Intent {
			case input.IntentQuit:
				s.log.Info().Uint64("ticks", s.tickCount.Load()).Msg("Quit requested")
				return nil
			case input.IntentResize:
				if s.OnResize != nil {
					s.OnResize(ev.Width, ev.Height)
				}
				s.driver.Redraw()
			default:
				s.driver.HandleInput(ctx, ev)
			}

		case <-ticker.C:
			if s.driver.Scheduled() {
				s.driver.Frame(ctx)
				s.tickCount.Add(1)
			}
		}
	}
}

// Stop ends Run, safe to call more than once
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

// TickCount returns frames simulated since creation
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

// IsRunning reports whether Run is active
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}
