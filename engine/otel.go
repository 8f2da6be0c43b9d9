package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/skyfolio/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics counts frames, finished runs and feedback events
// Uses the global OTel meter, no-op unless a provider is installed
type Metrics struct {
	frames metric.Int64Counter
	runs   metric.Int64Counter
	events metric.Int64Counter
}

// NewMetrics registers the engine instruments
func NewMetrics() (*Metrics, error) {
	m := meter()

	frames, err := m.Int64Counter(
		"skyfolio.frames",
		metric.WithDescription("Frames simulated while running"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}

	runs, err := m.Int64Counter(
		"skyfolio.runs",
		metric.WithDescription("Runs that reached a terminal state"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	events, err := m.Int64Counter(
		"skyfolio.events",
		metric.WithDescription("Feedback events by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	return &Metrics{frames: frames, runs: runs, events: events}, nil
}

func (m *Metrics) frame(ctx context.Context, game string) {
	if m == nil {
		return
	}
	m.frames.Add(ctx, 1, metric.WithAttributes(attribute.String("game", game)))
}

func (m *Metrics) run(ctx context.Context, game string, crashed bool) {
	if m == nil {
		return
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("game", game),
		attribute.Bool("crashed", crashed),
	))
}

// Emit makes Metrics a Sink counting events by kind
func (m *Metrics) Emit(ev Event) {
	if m == nil {
		return
	}
	m.events.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("game", ev.Game),
		attribute.String("kind", ev.Kind.String()),
	))
}
