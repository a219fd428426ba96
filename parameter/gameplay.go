package parameter

// Arena half extents
const (
	ArenaHalfWidth  = 25.0
	ArenaHalfHeight = 15.0
	ArenaHalfDepth  = 10.0
)

// Ball
const (
	// BallRadius is the teapot collision radius
	BallRadius = 1.5

	// Initial velocity magnitudes per axis, in units per tick
	BallInitialSpeedX = 0.3
	BallInitialSpeedY = 0.2
	BallInitialSpeedZ = 0.15

	// BallMaxSpeed caps every velocity component, kept below the paddle slab thickness
	BallMaxSpeed = 1.2

	// BallSeparationEpsilon pushes a repositioned ball just outside the paddle box
	BallSeparationEpsilon = 1e-6
)

// Paddle
const (
	PaddleHalfWidth  = 0.25
	PaddleHalfHeight = 3.0
	PaddleHalfDepth  = 3.0

	// PaddleOffsetX is the distance of each paddle from the arena center
	PaddleOffsetX = 25.0

	// PaddleSpeed is the player paddle displacement per tick per active flag
	PaddleSpeed = 0.6

	// PaddleEnglish is added to ball y/z velocity per active intent on player paddle contact
	PaddleEnglish = 0.1

	// AISmoothing is the exponential follow factor per tick
	AISmoothing = 0.05
)

// Power-ups
const (
	PowerUpSpawnChance  = 0.005
	PowerUpMaxLive      = 3
	PowerUpPickupRadius = 2.0
	PowerUpSpawnHalfY   = 12.5
	PowerUpSpawnHalfZ   = 7.5
	PowerUpSpinPerTick  = 0.02
)

// Effects
const (
	EnlargeScale   = 1.5
	EnlargeSeconds = 5.0

	SlowFactor  = 0.5
	SlowSeconds = 5.0

	MultiballCount     = 2
	MultiballSpreadDeg = 45.0
	MultiballSpeed     = 0.4
	MultiballSeconds   = 7.0
)
