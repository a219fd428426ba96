package event

// EventType represents the type of game event
type EventType int

const (
	// EventWallImpact signals a ball bounced off a y/z boundary
	// Trigger: per-ball step wall resolution
	// Consumer: renderer flash, audio | Payload: *WallImpactPayload
	EventWallImpact EventType = iota + 1

	// EventPaddleImpact signals a resolved paddle contact
	// Trigger: per-ball step paddle check (player then AI)
	// Consumer: renderer flash, audio | Payload: *PaddleImpactPayload
	EventPaddleImpact

	// EventGoal signals a ball crossed the scoring axis
	// Trigger: per-ball step goal check, emitted once per goal
	// Consumer: scoreboard, audio | Payload: *GoalPayload
	EventGoal

	// EventBallReset signals a ball was put back at the arena center
	// Trigger: goal, non-finite guard | Payload: *BallResetPayload
	EventBallReset

	// EventPowerUpSpawned signals a new collectible
	// Trigger: power-up spawn roll | Payload: *PowerUpSpawnedPayload
	EventPowerUpSpawned

	// EventPowerUpCollected signals a ball picked up a collectible
	// Trigger: per-ball proximity check
	// Consumer: banner, audio | Payload: *PowerUpCollectedPayload
	EventPowerUpCollected

	// EventEffectExpired signals a timed effect reverted
	// Trigger: effect scheduler | Payload: *EffectExpiredPayload
	EventEffectExpired

	// EventBallSpawned signals a multiball ball entered play | Payload: *BallSpawnedPayload
	EventBallSpawned

	// EventBallExpired signals a multiball ball was removed | Payload: *BallExpiredPayload
	EventBallExpired

	// EventPaused signals the simulation froze | Payload: nil
	EventPaused

	// EventResumed signals the simulation continues | Payload: nil
	EventResumed
)

// GameEvent is a single simulation event, Tick is the step that produced it
type GameEvent struct {
	Type    EventType
	Tick    uint64
	Payload any
}
