package component

import "github.com/lixenwraith/teapong/vmath"

// Side identifies the owner of a paddle or the scorer of a goal
type Side uint8

const (
	SidePlayer Side = iota
	SideAI
)

func (s Side) String() string {
	if s == SideAI {
		return "ai"
	}
	return "player"
}

// Paddle is a box moving on the y/z plane at a fixed x
type Paddle struct {
	Side     Side
	Position vmath.Vec3
	HalfSize vmath.Vec3 // Unscaled half extents
	Speed    float64    // Units per tick per active intent flag

	// Scale multiplies the y/z half extents, 1.0 when no enlarge effect is active
	Scale float64
}

// Extents returns half size with the current y/z scale applied
func (p *Paddle) Extents() vmath.Vec3 {
	scale := p.Scale
	if scale <= 0 {
		scale = 1.0
	}
	return vmath.Vec3{
		X: p.HalfSize.X,
		Y: p.HalfSize.Y * scale,
		Z: p.HalfSize.Z * scale,
	}
}

// FacingSign is the x direction the paddle face points toward the arena center
func (p *Paddle) FacingSign() float64 {
	if p.Side == SidePlayer {
		return 1
	}
	return -1
}
