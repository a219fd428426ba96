package component

import "github.com/lixenwraith/teapong/vmath"

// PowerUpKind is the tagged variant of a collectible
type PowerUpKind uint8

const (
	KindEnlarge PowerUpKind = iota
	KindSlow
	KindMultiball

	// PowerUpKindCount is the number of kinds, used for uniform selection
	PowerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case KindEnlarge:
		return "enlarge"
	case KindSlow:
		return "slow"
	case KindMultiball:
		return "multiball"
	}
	return "unknown"
}

// Message is the banner text shown on pickup
func (k PowerUpKind) Message() string {
	switch k {
	case KindEnlarge:
		return "Paddle Enlarged!"
	case KindSlow:
		return "Teapot Slowed Down!"
	case KindMultiball:
		return "Multiball Activated!"
	}
	return ""
}

// PowerUpID identifies a spawned power-up
type PowerUpID uint32

// PowerUp is a collectible floating in the arena midplane
type PowerUp struct {
	ID       PowerUpID
	Kind     PowerUpKind
	Position vmath.Vec3

	// Spin is the cosmetic rotation angle in radians
	Spin float64
}
