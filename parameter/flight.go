package parameter

// Projection
const (
	// ProjectionStrength is the K in scale = K / (depth + altitude + ε)
	ProjectionStrength = 400.0

	// ProjectionEpsilon keeps the perspective divide finite at the near plane
	ProjectionEpsilon = 1e-3

	// PitchSensitivity is pixels of horizon shift per radian of pitch
	PitchSensitivity = 200.0

	// FadeNear is the rotated depth at and below which clouds and stars are fully opaque
	FadeNear = 300.0

	// FadeFar is the rotated depth at and beyond which opacity bottoms out
	FadeFar = 1200.0

	// MinOpacity is the floor for depth fade
	MinOpacity = 0.25
)

// Flight state limits and integration
const (
	FlightStartAltitude = 500.0
	FlightStartSpeed    = 5.0

	// FlightAttitudeLimit bounds pitch and roll in radians, both signs
	FlightAttitudeLimit = 0.5

	FlightMinSpeed = 1.0
	FlightMaxSpeed = 10.0

	// FlightDamping is the per-tick auto-level factor for an axis without input
	FlightDamping = 0.95

	// FlightTurnRate is heading radians per tick per radian of roll
	FlightTurnRate = 0.02

	// FlightClimbScale converts pitch*speed into altitude units per tick
	FlightClimbScale = 10.0

	// FlightCrashFloor ends the run once altitude reaches it
	FlightCrashFloor = 50.0

	// FlightScoreRate is score per tick per unit of speed
	FlightScoreRate = 0.1

	// FlightCrashReason is shown in the end-of-run overlay
	FlightCrashReason = "Altitude below safe floor"
)

// Control steps applied per key event
const (
	ControlPitchStep    = 0.05
	ControlRollStep     = 0.05
	ControlThrottleStep = 0.5
)

// Terrain ring
const (
	TerrainPoints    = 40
	TerrainSpacing   = 50.0
	TerrainHalfWidth = 600.0
	TerrainMinHeight = 40.0
	TerrainMaxHeight = 160.0
)

// Cloud pool
const (
	CloudSpawnChance = 0.05
	CloudCap         = 12
	CloudHalfWidth   = 1200.0
	CloudMinY        = -400.0
	CloudMaxY        = -120.0
	CloudMinZ        = 900.0
	CloudMaxZ        = 1400.0
	CloudMinSize     = 30.0
	CloudMaxSize     = 70.0
)

// Star pool
const (
	StarSpawnChance = 0.02
	StarCap         = 5
	StarHalfWidth   = 250.0
	StarMinY        = -120.0
	StarMaxY        = 120.0
	StarMinZ        = 800.0
	StarMaxZ        = 1000.0
	StarSize        = 12.0

	// StarCollectRadius is the pixel distance from screen centre that counts as a pass-through
	StarCollectRadius = 40.0

	// StarCollectDepth is the rotated depth below which a star is close enough to collect
	StarCollectDepth = 60.0

	// StarBonus is the lump score added per collection
	StarBonus = 100
)
