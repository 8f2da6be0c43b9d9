package engine

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfolio/input"
)

func runScheduler(t *testing.T, s *Scheduler, ctx context.Context) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	return done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Scheduler did not stop")
		return nil
	}
}

// TestSchedulerTicksUntilTerminal verifies the ticker drives frames only while running
func TestSchedulerTicksUntilTerminal(t *testing.T) {
	rules := &scriptedRules{crashAfter: 5, toIdle: true}
	d, _ := newTestDriver(rules, nil, nil)
	inputs := make(chan input.Event, 8)
	s := NewScheduler(d, inputs, time.Millisecond, zerolog.Nop())

	done := runScheduler(t, s, context.Background())
	inputs <- input.Event{Intent: input.IntentAction}

	deadline := time.Now().Add(2 * time.Second)
	for s.TickCount() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	// Allow extra ticker fires; terminal must stop scheduling
	time.Sleep(20 * time.Millisecond)

	inputs <- input.Event{Intent: input.IntentQuit}
	if err := waitDone(t, done); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}

	if got := s.TickCount(); got != 5 {
		t.Errorf("Expected 5 ticks, got %d", got)
	}
	if d.Phase() != PhaseTerminal {
		t.Errorf("Expected terminal phase, got %v", d.Phase())
	}
}

func TestSchedulerResize(t *testing.T) {
	rules := &scriptedRules{crashAfter: 5, toIdle: true}
	d, _ := newTestDriver(rules, nil, nil)
	inputs := make(chan input.Event, 8)
	s := NewScheduler(d, inputs, time.Hour, zerolog.Nop())

	resized := make(chan [2]int, 1)
	s.OnResize = func(w, h int) { resized <- [2]int{w, h} }

	done := runScheduler(t, s, context.Background())
	inputs <- input.Event{Intent: input.IntentResize, Width: 100, Height: 30}

	select {
	case got := <-resized:
		if got != [2]int{100, 30} {
			t.Errorf("Expected 100x30, got %v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected resize callback")
	}

	s.Stop()
	s.Stop()
	if err := waitDone(t, done); err != nil {
		t.Fatalf("Expected nil after Stop, got %v", err)
	}
}

func TestSchedulerContextCancel(t *testing.T) {
	d, _ := newTestDriver(&scriptedRules{crashAfter: 1}, nil, nil)
	s := NewScheduler(d, make(chan input.Event), time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := runScheduler(t, s, ctx)
	cancel()

	if err := waitDone(t, done); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if s.IsRunning() {
		t.Error("Expected scheduler to report stopped")
	}
}

func TestSteppedTimeProvider(t *testing.T) {
	start := time.Unix(100, 0)
	p := NewSteppedTimeProvider(start)
	p.Advance(3 * time.Second)
	if got := p.Now().Sub(start); got != 3*time.Second {
		t.Errorf("Expected 3s, got %v", got)
	}
}
