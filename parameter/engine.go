package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the fixed simulation rate, all per-tick velocities are tuned for it
	TickRate = 60

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxStepsPerFrame caps catch-up steps when a frame runs late
	MaxStepsPerFrame = 5

	// EffectsRunWhilePaused keeps timed effects counting down during pause when true
	EffectsRunWhilePaused = false
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = EventQueueSize - 1
)
