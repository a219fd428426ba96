package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number covers the scalar types the clamp helpers accept
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp bounds v into [lo, hi], lo wins if the range is inverted
func Clamp[T Number](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp linearly interpolates between a and b
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1
func Sign[T constraints.Signed | constraints.Float](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Vec2 is a 2D point, used for normalized surface coordinates
type Vec2 struct {
	X, Y float64
}

// Normalize01 maps offset within [-half, half] onto [0, 1], clamped
func Normalize01(offset, half float64) float64 {
	if half <= 0 {
		return 0.5
	}
	return Clamp((offset/half+1.0)/2.0, 0, 1)
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
