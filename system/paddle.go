package system

import (
	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/vmath"
)

// MovePlayer moves the paddle by Speed*dt per active intent flag, then clamps to the arena
// dt is in ticks, a fixed step passes 1
func MovePlayer(p *component.Paddle, arena component.Arena, intent component.Intent, dt float64) {
	step := p.Speed * dt
	pos := p.Position
	if intent.Up {
		pos.Y += step
	}
	if intent.Down {
		pos.Y -= step
	}
	if intent.Forward {
		pos.Z += step
	}
	if intent.Backward {
		pos.Z -= step
	}
	p.Position = ClampPaddle(p, arena, pos)
}

// UpdateAI eases the paddle y/z toward target by factor, then clamps to the arena
func UpdateAI(p *component.Paddle, arena component.Arena, target vmath.Vec3, factor float64) {
	pos := p.Position
	pos.Y += (target.Y - pos.Y) * factor
	pos.Z += (target.Z - pos.Z) * factor
	p.Position = ClampPaddle(p, arena, pos)
}

// ClampPaddle bounds y/z to the arena minus the scaled half size, x is untouched
func ClampPaddle(p *component.Paddle, arena component.Arena, pos vmath.Vec3) vmath.Vec3 {
	ext := p.Extents()
	maxY := arena.HalfHeight - ext.Y
	maxZ := arena.HalfDepth - ext.Z
	pos.Y = vmath.Clamp(pos.Y, -maxY, maxY)
	pos.Z = vmath.Clamp(pos.Z, -maxZ, maxZ)
	return pos
}
