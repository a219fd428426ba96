package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector in arena units
// All helpers take and return values, a Vec3 is never mutated through a shared reference
type Vec3 struct {
	X, Y, Z float64
}

// Zero3 is the arena origin
var Zero3 = Vec3{}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

// V3Dist returns euclidean distance between two points
func V3Dist(a, b Vec3) float64 {
	return V3Mag(V3Sub(a, b))
}

// V3Lerp interpolates component-wise, t=0 returns a, t=1 returns b
func V3Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(a.X, b.X, t),
		Lerp(a.Y, b.Y, t),
		Lerp(a.Z, b.Z, t),
	}
}

// V3ClampComponents limits every component magnitude to limit
func V3ClampComponents(v Vec3, limit float64) Vec3 {
	return Vec3{
		Clamp(v.X, -limit, limit),
		Clamp(v.Y, -limit, limit),
		Clamp(v.Z, -limit, limit),
	}
}

// V3IsFinite reports whether no component is NaN or ±Inf
func V3IsFinite(v Vec3) bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}
