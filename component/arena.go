package component

import "github.com/lixenwraith/teapong/vmath"

// Face identifies an arena boundary plane
type Face uint8

const (
	FaceNone Face = iota
	FaceTop       // +y
	FaceBottom    // -y
	FaceFront     // +z
	FaceBack      // -z
	FaceLeft      // -x, player goal wall
	FaceRight     // +x, AI goal wall
)

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	}
	return "none"
}

// Arena is the static play volume centered on the origin
// Dynamic entities stay inside on y and z; leaving along x is a goal
type Arena struct {
	HalfWidth  float64 // x, scoring axis
	HalfHeight float64 // y
	HalfDepth  float64 // z
}

// HalfExtents returns the half sizes as a vector
func (a Arena) HalfExtents() vmath.Vec3 {
	return vmath.Vec3{X: a.HalfWidth, Y: a.HalfHeight, Z: a.HalfDepth}
}
