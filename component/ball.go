package component

import "github.com/lixenwraith/teapong/vmath"

// BallID identifies a ball for the lifetime of a game
type BallID uint32

// PrimaryGroup is the group of the ball that exists for the whole game
const PrimaryGroup uint32 = 0

// Ball is the teapot entity
// Velocity is owned by value, each ball integrates its own copy
type Ball struct {
	ID       BallID
	Position vmath.Vec3
	Velocity vmath.Vec3 // Units per tick before SpeedScale
	Radius   float64

	// SpeedScale is the product of active slow effects, 1.0 when none
	SpeedScale float64

	// Group is PrimaryGroup or the multiball pickup that spawned this ball
	Group uint32
}

// EffectiveVelocity returns the per-tick displacement
func (b *Ball) EffectiveVelocity() vmath.Vec3 {
	scale := b.SpeedScale
	if scale == 0 {
		scale = 1.0
	}
	return vmath.V3Scale(b.Velocity, scale)
}

// IsPrimary reports whether the ball is the AI follow target
func (b *Ball) IsPrimary() bool {
	return b.Group == PrimaryGroup
}
