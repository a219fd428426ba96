package physics

import (
	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/vmath"
)

// Goal describes a crossing of the scoring axis
type Goal struct {
	Scorer component.Side
	Face   component.Face // Goal wall that was crossed
	// Point is the crossing position on the goal wall, normalized to [0,1]x[0,1] (y, z)
	Point vmath.Vec2
}

// CheckGoal evaluates the x axis: left of -HalfWidth credits the AI, right of +HalfWidth the player
func CheckGoal(arena component.Arena, pos vmath.Vec3) (Goal, bool) {
	var g Goal
	switch {
	case pos.X < -arena.HalfWidth:
		g.Scorer = component.SideAI
		g.Face = component.FaceLeft
	case pos.X > arena.HalfWidth:
		g.Scorer = component.SidePlayer
		g.Face = component.FaceRight
	default:
		return Goal{}, false
	}
	g.Point = vmath.Vec2{
		X: vmath.Normalize01(pos.Y, arena.HalfHeight),
		Y: vmath.Normalize01(pos.Z, arena.HalfDepth),
	}
	return g, true
}
