package event

import (
	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/vmath"
)

// WallImpactPayload carries the struck face and normalized impact point
type WallImpactPayload struct {
	Ball  component.BallID
	Face  component.Face
	Point vmath.Vec2
}

// PaddleImpactPayload carries the paddle side and the impact point in the paddle frame
type PaddleImpactPayload struct {
	Ball       component.BallID
	Side       component.Side
	LocalPoint vmath.Vec2
}

// GoalPayload carries the scorer and the score after crediting
type GoalPayload struct {
	Ball   component.BallID
	Scorer component.Side
	Face   component.Face
	Point  vmath.Vec2
	Score  component.Score
}

// BallResetPayload identifies the reset ball and its new velocity
type BallResetPayload struct {
	Ball     component.BallID
	Velocity vmath.Vec3
}

// PowerUpSpawnedPayload describes a new collectible
type PowerUpSpawnedPayload struct {
	ID       component.PowerUpID
	Kind     component.PowerUpKind
	Position vmath.Vec3
}

// PowerUpCollectedPayload describes a pickup
type PowerUpCollectedPayload struct {
	ID   component.PowerUpID
	Kind component.PowerUpKind
	Ball component.BallID
}

// EffectExpiredPayload identifies the effect that reverted
type EffectExpiredPayload struct {
	Kind component.PowerUpKind
}

// BallSpawnedPayload describes a multiball ball
type BallSpawnedPayload struct {
	Ball     component.BallID
	Group    uint32
	Position vmath.Vec3
	Velocity vmath.Vec3
}

// BallExpiredPayload identifies a removed multiball ball
type BallExpiredPayload struct {
	Ball  component.BallID
	Group uint32
}
