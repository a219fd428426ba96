package physics

import (
	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/vmath"
)

// WallHit describes one boundary contact
type WallHit struct {
	Face component.Face
	// Point is the contact position on the face, normalized to [0,1]x[0,1]
	Point vmath.Vec2
}

// ResolveWalls reflects a sphere off the y and z boundaries
// Each axis is evaluated independently against half extent minus radius
// Position is clamped onto the threshold and the velocity component is negated only while
// it points outward, so a resolved ball never re-triggers on the next tick
func ResolveWalls(arena component.Arena, radius float64, pos, vel vmath.Vec3) (vmath.Vec3, vmath.Vec3, []WallHit) {
	var hits []WallHit

	limitY := arena.HalfHeight - radius
	limitZ := arena.HalfDepth - radius

	if face, ok := reflectAxis(&pos.Y, &vel.Y, limitY, component.FaceTop, component.FaceBottom); ok {
		hits = append(hits, WallHit{
			Face: face,
			// Top/bottom planes span x (width) and z (depth)
			Point: vmath.Vec2{
				X: vmath.Normalize01(pos.X, arena.HalfWidth),
				Y: vmath.Normalize01(pos.Z, arena.HalfDepth),
			},
		})
	}

	if face, ok := reflectAxis(&pos.Z, &vel.Z, limitZ, component.FaceFront, component.FaceBack); ok {
		hits = append(hits, WallHit{
			Face: face,
			// Front/back planes span x (width) and y (height)
			Point: vmath.Vec2{
				X: vmath.Normalize01(pos.X, arena.HalfWidth),
				Y: vmath.Normalize01(pos.Y, arena.HalfHeight),
			},
		})
	}

	return pos, vel, hits
}

// reflectAxis clamps a component into [-limit, limit] and reflects outward velocity
// Operates on locals owned by ResolveWalls
func reflectAxis(pos, vel *float64, limit float64, hiFace, loFace component.Face) (component.Face, bool) {
	if *pos > limit {
		*pos = limit
		if *vel > 0 {
			*vel = -*vel
		}
		return hiFace, true
	}
	if *pos < -limit {
		*pos = -limit
		if *vel < 0 {
			*vel = -*vel
		}
		return loFace, true
	}
	return component.FaceNone, false
}
