package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/teapong/component"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(32, 37, 47)    // Scene background
	RgbArena      = tcell.NewRGBColor(110, 115, 130) // Wireframe edges
	RgbPlayer     = tcell.NewRGBColor(0, 255, 0)     // Player paddle
	RgbAI         = tcell.NewRGBColor(0, 0, 255)     // AI paddle
	RgbBall       = tcell.NewRGBColor(255, 0, 0)     // Teapot
	RgbBounds     = tcell.NewRGBColor(255, 255, 255) // Collision bounds overlay
	RgbHUD        = tcell.NewRGBColor(220, 220, 220)
	RgbScoreFlash = tcell.NewRGBColor(255, 255, 0)
	RgbBanner     = tcell.NewRGBColor(255, 165, 0)
	RgbImpact     = tcell.NewRGBColor(255, 255, 255)

	RgbPowerUp = [component.PowerUpKindCount]tcell.Color{
		component.KindEnlarge:   tcell.NewRGBColor(0, 255, 0),
		component.KindSlow:      tcell.NewRGBColor(0, 0, 255),
		component.KindMultiball: tcell.NewRGBColor(255, 0, 0),
	}
)

// palette turns colors into styles, mono mode drops every color
type palette struct {
	mono bool
}

func (p palette) base() tcell.Style {
	if p.mono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(RgbBackground)
}

func (p palette) fg(c tcell.Color) tcell.Style {
	if p.mono {
		return tcell.StyleDefault
	}
	return p.base().Foreground(c)
}

// Blend linearly interpolates between two colors, t in [0,1]
func Blend(from, to tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	r1, g1, b1 := from.RGB()
	r2, g2, b2 := to.RGB()
	mix := func(a, b int32) int32 {
		return a + int32(float64(b-a)*t)
	}
	return tcell.NewRGBColor(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}
