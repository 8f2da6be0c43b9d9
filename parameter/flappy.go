package parameter

// Flappy surface and bird
const (
	FlappyWidth  = 320
	FlappyHeight = 480

	FlappyBirdX      = 80.0
	FlappyBirdStartY = 240.0
	FlappyBirdWidth  = 30.0
	FlappyBirdHeight = 24.0

	FlappyGravity = 0.5

	// FlappyFlapVelocity replaces the bird's vertical velocity on flap, negative is up
	FlappyFlapVelocity = -10.0
)

// Flappy pipes
const (
	FlappyPipeWidth     = 50.0
	FlappyPipeGap       = 120.0
	FlappyPipeSpeed     = 2.0
	FlappyPipeMinHeight = 50.0

	// FlappyPipeSpacing is how far the newest pipe travels before the next one spawns
	FlappyPipeSpacing = 180.0
)
