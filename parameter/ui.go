package parameter

import "time"

// Presentation timings, renderer side only
const (
	// PowerUpMessageDuration is how long the pickup banner stays on screen
	PowerUpMessageDuration = 2 * time.Second

	// ScoreFlashDuration is the highlight time of a score change
	ScoreFlashDuration = 300 * time.Millisecond

	// ImpactFlashDuration is the fade time of paddle and wall impact highlights
	ImpactFlashDuration = 1 * time.Second

	// ThirdPersonLerp is the per-frame camera follow factor
	ThirdPersonLerp = 0.1

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 60.0

	// InputHoldTicks keeps a movement flag active after a key event, terminals report no key release
	InputHoldTicks = 8
)

// Log
const (
	LogDir      = "logs"
	LogFileName = "teapong.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Audio cues
const (
	AudioSampleRate = 44100

	PaddleToneHz       = 440.0
	PaddleToneDuration = 100 * time.Millisecond

	GoalToneHz       = 660.0
	GoalToneDuration = 200 * time.Millisecond

	PowerUpToneHz       = 880.0
	PowerUpToneDuration = 200 * time.Millisecond

	WallToneHz       = 220.0
	WallToneDuration = 60 * time.Millisecond

	// ToneAttack and ToneRelease shape every cue to avoid clicks
	ToneAttack  = 5 * time.Millisecond
	ToneRelease = 30 * time.Millisecond

	// CueGain is the master level applied when a cue is mixed
	CueGain = 0.25
)
