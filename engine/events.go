package engine

// EventKind is the type of game feedback event
type EventKind uint8

const (
	EventRunStart EventKind = iota
	EventRunEnd
	EventCollect
	EventCrash
	EventFlap
	EventPoint
	EventHighScore
)

var eventNames = [...]string{
	EventRunStart:  "run_start",
	EventRunEnd:    "run_end",
	EventCollect:   "collect",
	EventCrash:     "crash",
	EventFlap:      "flap",
	EventPoint:     "point",
	EventHighScore: "high_score",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is feedback emitted by rules or the driver
// Consumers (audio, metrics, logs) react; nothing feeds back into simulation
type Event struct {
	Kind   EventKind
	Game   string
	Value  int
	Reason string
}

// Sink receives events synchronously on the tick goroutine
type Sink interface {
	Emit(ev Event)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ev Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

// Bus fans events out to subscribers in registration order
type Bus struct {
	sinks []Sink
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a sink, nil is ignored
func (b *Bus) Subscribe(s Sink) {
	if s == nil {
		return
	}
	b.sinks = append(b.sinks, s)
}

func (b *Bus) Emit(ev Event) {
	for _, s := range b.sinks {
		s.Emit(ev)
	}
}

// Discard is a Sink that drops everything
var Discard Sink = SinkFunc(func(Event) {})
