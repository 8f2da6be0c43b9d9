package parameter

import "time"

// Engine defaults, overridable through config
const (
	// DefaultTickInterval approximates a 30fps frame callback
	DefaultTickInterval = 33 * time.Millisecond

	// InputQueueSize bounds events buffered between ticks
	InputQueueSize = 128

	FlightSurfaceWidth  = 800
	FlightSurfaceHeight = 500
)

// Game names double as high-score keys
const (
	GameSkySim = "skysim"
	GameFlappy = "flappy"
)
