package render

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/config"
	"github.com/lixenwraith/teapong/engine"
	"github.com/lixenwraith/teapong/event"
	"github.com/lixenwraith/teapong/parameter"
	"github.com/lixenwraith/teapong/status"
	"github.com/lixenwraith/teapong/vmath"
)

const (
	minWidth  = 40
	minHeight = 12

	helpLine = "arrows/wasd move  p pause  r restart  c camera  b bounds  m sound  q quit"
)

// wallFlash marks a boundary contact point until it fades
type wallFlash struct {
	pos   vmath.Vec3
	until time.Time
}

// Renderer draws frames onto a tcell screen
// Draw and HandleEvent run on the loop goroutine, the setters are called through the loop control channel
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette palette

	showBounds   bool
	reg          *status.Registry // nil hides the metrics line
	pickupRadius float64
	tickRate     int

	message         string
	messageUntil    time.Time
	scoreFlashUntil time.Time
	paddleFlash     [2]time.Time // indexed by component.Side
	wallFlashes     []wallFlash
}

// NewRenderer creates a renderer with the camera and overlay settings from cfg
// reg is optional, when set a metrics line is drawn
func NewRenderer(screen tcell.Screen, cfg config.Config, reg *status.Registry) (*Renderer, error) {
	mode, err := ParseCameraMode(cfg.UI.CameraMode)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		screen:       screen,
		camera:       NewCamera(mode),
		palette:      palette{mono: cfg.UI.ColorMode == "mono"},
		showBounds:   cfg.UI.ShowBounds,
		reg:          reg,
		pickupRadius: cfg.PowerUp.PickupRadius,
		tickRate:     cfg.Sim.TickRate,
	}, nil
}

// SetCameraMode switches the view, presentation only
func (r *Renderer) SetCameraMode(m CameraMode) {
	r.camera.Mode = m
}

func (r *Renderer) CameraMode() CameraMode {
	return r.camera.Mode
}

// CycleCamera advances to the next camera mode and returns it
func (r *Renderer) CycleCamera() CameraMode {
	r.camera.Mode = r.camera.Mode.Next()
	return r.camera.Mode
}

// SetBoundsVisible toggles the collision bounds overlay
func (r *Renderer) SetBoundsVisible(v bool) {
	r.showBounds = v
}

func (r *Renderer) BoundsVisible() bool {
	return r.showBounds
}

// EventTypes implements event.Handler
func (r *Renderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGoal,
		event.EventPaddleImpact,
		event.EventWallImpact,
		event.EventPowerUpCollected,
	}
}

// HandleEvent arms the HUD timers: pickup banner, score flash and impact flashes
func (r *Renderer) HandleEvent(f *engine.Frame, ev event.GameEvent) {
	switch ev.Type {
	case event.EventGoal:
		r.scoreFlashUntil = f.Now.Add(parameter.ScoreFlashDuration)

	case event.EventPaddleImpact:
		if p, ok := ev.Payload.(*event.PaddleImpactPayload); ok && int(p.Side) < len(r.paddleFlash) {
			r.paddleFlash[p.Side] = f.Now.Add(parameter.ImpactFlashDuration)
		}

	case event.EventWallImpact:
		if p, ok := ev.Payload.(*event.WallImpactPayload); ok {
			r.wallFlashes = append(r.wallFlashes, wallFlash{
				pos:   wallPoint(f.State.Arena, p.Face, p.Point),
				until: f.Now.Add(parameter.ImpactFlashDuration),
			})
		}

	case event.EventPowerUpCollected:
		if p, ok := ev.Payload.(*event.PowerUpCollectedPayload); ok {
			r.message = p.Kind.Message()
			r.messageUntil = f.Now.Add(parameter.PowerUpMessageDuration)
		}
	}
}

// Message returns the active pickup banner, empty when none is showing
func (r *Renderer) Message(now time.Time) string {
	if now.Before(r.messageUntil) {
		return r.message
	}
	return ""
}

// wallPoint maps a normalized face contact back into world space
func wallPoint(a component.Arena, face component.Face, p vmath.Vec2) vmath.Vec3 {
	u := (p.X*2 - 1)
	v := (p.Y*2 - 1)
	switch face {
	case component.FaceTop:
		return vmath.V3(u*a.HalfWidth, a.HalfHeight, v*a.HalfDepth)
	case component.FaceBottom:
		return vmath.V3(u*a.HalfWidth, -a.HalfHeight, v*a.HalfDepth)
	case component.FaceFront:
		return vmath.V3(u*a.HalfWidth, v*a.HalfHeight, a.HalfDepth)
	case component.FaceBack:
		return vmath.V3(u*a.HalfWidth, v*a.HalfHeight, -a.HalfDepth)
	}
	return vmath.Zero3
}

// Draw renders one frame
func (r *Renderer) Draw(f *engine.Frame) {
	s := &f.State
	base := r.palette.base()

	r.screen.Fill(' ', base)
	w, h := r.screen.Size()
	if w < minWidth || h < minHeight {
		r.drawText(0, 0, "terminal too small", r.palette.fg(RgbHUD))
		r.screen.Show()
		return
	}

	r.camera.Update(s)

	// Row 0 is the score line, the last one or two rows hold help and metrics
	footer := 1
	if r.reg != nil {
		footer = 2
	}
	proj := newProjector(r.camera, 0, 1, w, h-1-footer)

	r.drawBox(proj, vmath.Zero3, s.Arena.HalfExtents(), r.palette.fg(RgbArena), '.')
	r.drawWallFlashes(proj, f.Now)
	r.drawEntities(proj, f)

	r.drawHUD(f, w, h)
	r.screen.Show()
}

// drawable is one entity queued for painter ordering
type drawable struct {
	dist float64
	draw func()
}

// drawEntities paints far to near so nearer entities overwrite farther ones
func (r *Renderer) drawEntities(proj projector, f *engine.Frame) {
	s := &f.State
	eye := vmath.V3(r.camera.Eye.X(), r.camera.Eye.Y(), r.camera.Eye.Z())
	var items []drawable

	for _, p := range []component.Paddle{s.Player, s.AI} {
		color := RgbPlayer
		if p.Side == component.SideAI {
			color = RgbAI
		}
		if until := r.paddleFlash[p.Side]; f.Now.Before(until) {
			t := float64(until.Sub(f.Now)) / float64(parameter.ImpactFlashDuration)
			color = Blend(color, RgbImpact, t)
		}
		items = append(items, drawable{
			dist: vmath.V3Dist(eye, p.Position),
			draw: func() {
				r.fillBox(proj, p.Position, p.Extents(), r.palette.fg(color))
				if r.showBounds {
					r.drawBox(proj, p.Position, p.Extents(), r.palette.fg(RgbBounds), '+')
				}
			},
		})
	}

	for _, pu := range s.PowerUps {
		items = append(items, drawable{
			dist: vmath.V3Dist(eye, pu.Position),
			draw: func() {
				style := r.palette.fg(RgbPowerUp[pu.Kind%component.PowerUpKindCount])
				if x, y, ok := proj.project(pu.Position); ok && proj.inside(x, y) {
					r.screen.SetContent(x, y, spinGlyph(pu.Spin), nil, style)
				}
				if r.showBounds {
					half := vmath.V3(r.pickupRadius, r.pickupRadius, r.pickupRadius)
					r.drawBox(proj, pu.Position, half, r.palette.fg(RgbBounds), '+')
				}
			},
		})
	}

	for _, b := range s.Balls {
		items = append(items, drawable{
			dist: vmath.V3Dist(eye, b.Position),
			draw: func() {
				r.drawBall(proj, b)
				if r.showBounds {
					half := vmath.V3(b.Radius, b.Radius, b.Radius)
					r.drawBox(proj, b.Position, half, r.palette.fg(RgbBounds), '+')
				}
			},
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].dist > items[j].dist })
	for _, it := range items {
		it.draw()
	}
}

// spinGlyph shows the cosmetic rotation as a turning bar
func spinGlyph(angle float64) rune {
	const glyphs = "|/-\\"
	step := int(math.Floor(angle/(math.Pi/4))) % 4
	if step < 0 {
		step += 4
	}
	return rune(glyphs[step])
}

func (r *Renderer) drawBall(proj projector, b component.Ball) {
	cx, cy, ok := proj.project(b.Position)
	if !ok {
		return
	}
	_, ty, ok := proj.project(vmath.V3Add(b.Position, vmath.V3(0, b.Radius, 0)))
	ry := 0
	if ok {
		ry = cy - ty
		if ry < 0 {
			ry = -ry
		}
	}
	style := r.palette.fg(RgbBall)
	if !b.IsPrimary() {
		style = r.palette.fg(Blend(RgbBall, RgbBanner, 0.5))
	}

	rx := int(float64(ry) * cellAspect)
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if !proj.inside(x, y) {
				continue
			}
			dx := float64(x-cx) / cellAspect
			dy := float64(y - cy)
			if dx*dx+dy*dy <= float64(ry*ry) {
				r.screen.SetContent(x, y, '@', nil, style)
			}
		}
	}
	if proj.inside(cx, cy) {
		r.screen.SetContent(cx, cy, '@', nil, style)
	}
}

// boxCorners returns the 8 corners of an axis-aligned box, bit i of the index selects +/- on axis i
func boxCorners(center, half vmath.Vec3) [8]vmath.Vec3 {
	var c [8]vmath.Vec3
	for i := range c {
		p := center
		p.X += half.X * sign(i&1)
		p.Y += half.Y * sign(i&2)
		p.Z += half.Z * sign(i&4)
		c[i] = p
	}
	return c
}

func sign(bit int) float64 {
	if bit != 0 {
		return 1
	}
	return -1
}

// boxEdges lists corner index pairs differing in exactly one axis
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// drawBox draws a wireframe box
func (r *Renderer) drawBox(proj projector, center, half vmath.Vec3, style tcell.Style, glyph rune) {
	corners := boxCorners(center, half)
	for _, e := range boxEdges {
		x0, y0, ok0 := proj.project(corners[e[0]])
		x1, y1, ok1 := proj.project(corners[e[1]])
		if !ok0 || !ok1 {
			continue
		}
		r.drawLine(proj, x0, y0, x1, y1, style, glyph)
	}
}

// fillBox fills the screen rectangle covered by the projected box
func (r *Renderer) fillBox(proj projector, center, half vmath.Vec3, style tcell.Style) {
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, c := range boxCorners(center, half) {
		x, y, ok := proj.project(c)
		if !ok {
			return
		}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	for y := max(minY, proj.y0); y <= min(maxY, proj.y0+proj.h-1); y++ {
		for x := max(minX, proj.x0); x <= min(maxX, proj.x0+proj.w-1); x++ {
			r.screen.SetContent(x, y, '█', nil, style)
		}
	}
}

// drawLine is Bresenham clipped to the viewport
func (r *Renderer) drawLine(proj projector, x0, y0, x1, y1 int, style tcell.Style, glyph rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy

	// Bound the walk so far off-screen projections stay cheap
	for steps := 0; steps < 4*(proj.w+proj.h); steps++ {
		if proj.inside(x0, y0) {
			r.screen.SetContent(x0, y0, glyph, nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawWallFlashes marks recent wall contacts and drops expired ones
func (r *Renderer) drawWallFlashes(proj projector, now time.Time) {
	kept := r.wallFlashes[:0]
	for _, wf := range r.wallFlashes {
		if !now.Before(wf.until) {
			continue
		}
		kept = append(kept, wf)
		t := float64(wf.until.Sub(now)) / float64(parameter.ImpactFlashDuration)
		if x, y, ok := proj.project(wf.pos); ok && proj.inside(x, y) {
			r.screen.SetContent(x, y, '*', nil, r.palette.fg(Blend(RgbArena, RgbImpact, t)))
		}
	}
	r.wallFlashes = kept
}

func (r *Renderer) drawHUD(f *engine.Frame, w, h int) {
	s := &f.State
	hud := r.palette.fg(RgbHUD)

	scoreStyle := hud
	if f.Now.Before(r.scoreFlashUntil) {
		scoreStyle = r.palette.fg(RgbScoreFlash).Bold(true)
	}
	score := fmt.Sprintf("PLAYER %d : %d AI", s.Score.Player, s.Score.AI)
	r.drawText((w-len(score))/2, 0, score, scoreStyle)

	r.drawText(0, 0, fmt.Sprintf("%s %02d:%02d", r.camera.Mode, int(f.PlayTime.Minutes()), int(f.PlayTime.Seconds())%60), hud)

	// Active effects, right aligned
	line := ""
	for _, e := range s.Effects {
		line += fmt.Sprintf(" %s %.1fs", e.Kind, float64(e.Remaining)/float64(max(r.tickRate, 1)))
	}
	if line != "" {
		r.drawText(w-len(line), 0, line, hud)
	}

	if msg := r.Message(f.Now); msg != "" {
		r.drawText((w-len(msg))/2, 2, msg, r.palette.fg(RgbBanner).Bold(true))
	}
	if s.Paused {
		const paused = "PAUSED"
		r.drawText((w-len(paused))/2, h/2, paused, hud.Reverse(true))
	}

	r.drawText(0, h-1, helpLine, hud.Dim(true))
	if r.reg != nil {
		r.drawText(0, h-2, metricsLine(r.reg), hud.Dim(true))
	}
}

// metricsLine formats the debug counters
func metricsLine(reg *status.Registry) string {
	return fmt.Sprintf("tick %d  steps %d  balls %d  paddle %d  wall %d  pu %d/%d  resets %d  speed %.3f",
		reg.Ints.Get(status.KeyTicks).Load(),
		reg.Ints.Get(status.KeyFrameSteps).Load(),
		reg.Ints.Get(status.KeyBallsLive).Load(),
		reg.Ints.Get(status.KeyPaddleHits).Load(),
		reg.Ints.Get(status.KeyWallHits).Load(),
		reg.Ints.Get(status.KeyPowerUpsTaken).Load(),
		reg.Ints.Get(status.KeyPowerUpsSpawned).Load(),
		reg.Ints.Get(status.KeyBallResets).Load(),
		reg.Floats.Get(status.KeyPrimarySpeed).Get(),
	)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
