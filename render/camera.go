package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/teapong/engine"
	"github.com/lixenwraith/teapong/parameter"
	"github.com/lixenwraith/teapong/vmath"
)

// CameraMode selects how the view follows the game
type CameraMode uint8

const (
	CameraThirdPerson CameraMode = iota
	CameraFollow
	CameraTop
	cameraModeCount
)

var cameraModeNames = [cameraModeCount]string{
	CameraThirdPerson: "third-person",
	CameraFollow:      "follow",
	CameraTop:         "top",
}

func (m CameraMode) String() string {
	if m < cameraModeCount {
		return cameraModeNames[m]
	}
	return "unknown"
}

// Next returns the mode after m, wrapping around
func (m CameraMode) Next() CameraMode {
	return (m + 1) % cameraModeCount
}

// ParseCameraMode resolves a mode name as used in config and flags
func ParseCameraMode(name string) (CameraMode, error) {
	for i, n := range cameraModeNames {
		if n == name {
			return CameraMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown camera mode %q", name)
}

var (
	followEye        = mgl64.Vec3{-35, 10, 0}
	topEye           = mgl64.Vec3{0, 50, 0}
	thirdPersonStart = mgl64.Vec3{-35, 5, 0}
	thirdPersonShift = mgl64.Vec3{-15, 5, 0}

	worldUp = mgl64.Vec3{0, 1, 0}
	// Looking straight down, -z is screen up so the player stays on the left
	topUp = mgl64.Vec3{0, 0, -1}
)

// Camera is a perspective eye over the arena
type Camera struct {
	Mode   CameraMode
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FOV    float64 // vertical, degrees
}

func NewCamera(mode CameraMode) *Camera {
	return &Camera{
		Mode: mode,
		Eye:  thirdPersonStart,
		Up:   worldUp,
		FOV:  parameter.CameraFOV,
	}
}

// Update moves the camera for one frame
// Third-person eases toward a point behind the player paddle and tracks the primary ball
func (c *Camera) Update(s *engine.Snapshot) {
	switch c.Mode {
	case CameraFollow:
		c.Eye, c.Target, c.Up = followEye, mgl64.Vec3{}, worldUp
	case CameraTop:
		c.Eye, c.Target, c.Up = topEye, mgl64.Vec3{}, topUp
	default:
		desired := toMgl(s.Player.Position).Add(thirdPersonShift)
		c.Eye = c.Eye.Add(desired.Sub(c.Eye).Mul(parameter.ThirdPersonLerp))
		c.Up = worldUp
		if b, ok := s.Primary(); ok {
			c.Target = toMgl(b.Position)
		}
	}
}

// ViewProjection returns the combined matrix for a viewport aspect ratio (width/height)
func (c *Camera) ViewProjection(aspect float64) mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, 0.1, 1000)
	view := mgl64.LookAtV(c.Eye, c.Target, c.Up)
	return proj.Mul4(view)
}

func toMgl(v vmath.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// projector maps world points onto a cell rectangle
type projector struct {
	m      mgl64.Mat4
	x0, y0 int
	w, h   int
}

// cellAspect compensates for terminal cells being about twice as tall as wide
const cellAspect = 2.0

func newProjector(cam *Camera, x0, y0, w, h int) projector {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / (float64(h) * cellAspect)
	}
	return projector{m: cam.ViewProjection(aspect), x0: x0, y0: y0, w: w, h: h}
}

// project returns the cell of a world point, ok is false behind the eye
func (p projector) project(v vmath.Vec3) (x, y int, ok bool) {
	clip := p.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	if clip.W() <= 1e-6 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = p.x0 + int(math.Round((ndcX+1)/2*float64(p.w-1)))
	y = p.y0 + int(math.Round((1-ndcY)/2*float64(p.h-1)))
	return x, y, true
}

// inside reports whether a cell lies within the viewport
func (p projector) inside(x, y int) bool {
	return x >= p.x0 && x < p.x0+p.w && y >= p.y0 && y < p.y0+p.h
}
