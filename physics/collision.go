package physics

import (
	"math"

	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/parameter"
	"github.com/lixenwraith/teapong/vmath"
)

// PaddleImpact is the result of a resolved paddle contact
type PaddleImpact struct {
	Side component.Side
	// LocalPoint is the ball y/z in the paddle frame, normalized to [0,1]x[0,1]
	LocalPoint vmath.Vec2
}

// Overlaps tests the axis-aligned box of the paddle grown by the sphere radius
// Comparison is strict so a ball resting exactly on the grown face does not collide
func Overlaps(pos vmath.Vec3, radius float64, paddle *component.Paddle) bool {
	ext := paddle.Extents()
	return math.Abs(pos.X-paddle.Position.X) < ext.X+radius &&
		math.Abs(pos.Y-paddle.Position.Y) < ext.Y+radius &&
		math.Abs(pos.Z-paddle.Position.Z) < ext.Z+radius
}

// sweptContact returns the contact point when the segment prev->pos jumped across the whole
// x slab of the paddle within one tick, nil result when no crossing happened
func sweptContact(prev, pos vmath.Vec3, radius float64, paddle *component.Paddle) (vmath.Vec3, bool) {
	ext := paddle.Extents()
	lo := paddle.Position.X - ext.X - radius
	hi := paddle.Position.X + ext.X + radius

	var entry float64
	switch {
	case prev.X >= hi && pos.X <= lo:
		entry = hi
	case prev.X <= lo && pos.X >= hi:
		entry = lo
	default:
		return vmath.Vec3{}, false
	}

	dx := pos.X - prev.X
	if dx == 0 {
		return vmath.Vec3{}, false
	}
	t := (entry - prev.X) / dx
	at := vmath.V3Lerp(prev, pos, t)

	if math.Abs(at.Y-paddle.Position.Y) < ext.Y+radius &&
		math.Abs(at.Z-paddle.Position.Z) < ext.Z+radius {
		return at, true
	}
	return vmath.Vec3{}, false
}

// CheckPaddle detects and resolves a ball/paddle contact
// prev is the ball position before this tick's integration, used to catch tunneling
// On hit the ball is mutated: x velocity reflected away from the paddle, english from the player
// intent added, position moved just outside the paddle face
func CheckPaddle(ball *component.Ball, prev vmath.Vec3, paddle *component.Paddle, intent component.Intent, english float64) (PaddleImpact, bool) {
	contact := ball.Position
	hit := Overlaps(ball.Position, ball.Radius, paddle)
	if !hit {
		contact, hit = sweptContact(prev, ball.Position, ball.Radius, paddle)
	}
	if !hit {
		return PaddleImpact{}, false
	}

	facing := paddle.FacingSign()

	// Reflect only while approaching, a receding ball keeps its heading
	if vmath.Sign(ball.Velocity.X) == -facing {
		ball.Velocity.X = -ball.Velocity.X
	}

	if paddle.Side == component.SidePlayer {
		switch {
		case intent.Up:
			ball.Velocity.Y += english
		case intent.Down:
			ball.Velocity.Y -= english
		}
		switch {
		case intent.Forward:
			ball.Velocity.Z += english
		case intent.Backward:
			ball.Velocity.Z -= english
		}
	}

	ext := paddle.Extents()
	ball.Position = vmath.Vec3{
		X: paddle.Position.X + facing*(ext.X+ball.Radius+parameter.BallSeparationEpsilon),
		Y: contact.Y,
		Z: contact.Z,
	}

	return PaddleImpact{
		Side:       paddle.Side,
		LocalPoint: LocalImpactPoint(ball.Position, paddle),
	}, true
}

// LocalImpactPoint transforms a world position into the paddle face frame
func LocalImpactPoint(pos vmath.Vec3, paddle *component.Paddle) vmath.Vec2 {
	ext := paddle.Extents()
	return vmath.Vec2{
		X: vmath.Normalize01(pos.Y-paddle.Position.Y, ext.Y),
		Y: vmath.Normalize01(pos.Z-paddle.Position.Z, ext.Z),
	}
}
