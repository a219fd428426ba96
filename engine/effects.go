package engine

import (
	"log"
	"math"

	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/event"
	"github.com/lixenwraith/teapong/system"
	"github.com/lixenwraith/teapong/vmath"
)

// effectFunc applies a power-up to the game and schedules its matching revert
type effectFunc func(s *Simulation)

// effects maps each power-up variant to its application
var effects = [component.PowerUpKindCount]effectFunc{
	component.KindEnlarge:   applyEnlarge,
	component.KindSlow:      applySlow,
	component.KindMultiball: applyMultiball,
}

func (s *Simulation) applyEffect(kind component.PowerUpKind) {
	if int(kind) >= len(effects) || effects[kind] == nil {
		log.Printf("sim: no effect for power-up kind %d", kind)
		return
	}
	effects[kind](s)
}

// applyEnlarge scales the player paddle y/z extents while at least one enlarge is active
// Hitbox and clamp bounds both follow the scale
func applyEnlarge(s *Simulation) {
	s.enlargeActive++
	s.setPlayerScale(s.cfg.Effects.EnlargeScale)

	s.scheduler.Schedule(component.KindEnlarge, s.cfg.Ticks(s.cfg.Effects.EnlargeSeconds), func() {
		s.enlargeActive--
		if s.enlargeActive <= 0 {
			s.enlargeActive = 0
			s.setPlayerScale(1.0)
		}
	})
}

func (s *Simulation) setPlayerScale(scale float64) {
	p := &s.state.Player
	p.Scale = scale
	p.Position = system.ClampPaddle(p, s.state.Arena, p.Position)
}

// applySlow multiplies the primary ball speed scale by the slow factor and later by its inverse
// Each pickup owns one apply/revert pair so overlapping pickups unwind exactly
func applySlow(s *Simulation) {
	i := s.state.primaryIndex()
	if i < 0 {
		return
	}
	factor := s.cfg.Effects.SlowFactor
	id := s.state.Balls[i].ID
	s.state.Balls[i].SpeedScale *= factor

	s.scheduler.Schedule(component.KindSlow, s.cfg.Ticks(s.cfg.Effects.SlowSeconds), func() {
		for j := range s.state.Balls {
			if s.state.Balls[j].ID == id {
				s.state.Balls[j].SpeedScale *= 1.0 / factor
				return
			}
		}
	})
}

// applyMultiball spawns balls at the primary ball, fanned around its y/z heading at a fixed speed,
// keeping the primary x velocity; the group is removed when the effect expires
func applyMultiball(s *Simulation) {
	i := s.state.primaryIndex()
	if i < 0 {
		return
	}
	primary := s.state.Balls[i]
	heading := primary.EffectiveVelocity()
	base := math.Atan2(heading.Y, heading.Z)

	count := s.cfg.Effects.MultiballCount
	spread := vmath.DegToRad(s.cfg.Effects.MultiballSpreadDeg)
	speed := s.cfg.Effects.MultiballSpeed

	group := s.nextGroup
	s.nextGroup++

	for k := 0; k < count; k++ {
		// Offsets run evenly from -spread to +spread, two balls get exactly ±spread
		offset := 0.0
		if count > 1 {
			offset = spread * (-1 + 2*float64(k)/float64(count-1))
		}
		angle := base + offset
		b := component.Ball{
			ID:       s.allocBallID(),
			Position: primary.Position,
			Velocity: vmath.Vec3{
				X: heading.X,
				Y: speed * math.Sin(angle),
				Z: speed * math.Cos(angle),
			},
			Radius:     primary.Radius,
			SpeedScale: 1.0,
			Group:      group,
		}
		s.state.Balls = append(s.state.Balls, b)
		s.emit(event.EventBallSpawned, &event.BallSpawnedPayload{
			Ball:     b.ID,
			Group:    group,
			Position: b.Position,
			Velocity: b.Velocity,
		})
	}

	s.scheduler.Schedule(component.KindMultiball, s.cfg.Ticks(s.cfg.Effects.MultiballSeconds), func() {
		s.removeGroup(group)
	})
}

// removeGroup drops every ball of a multiball group
func (s *Simulation) removeGroup(group uint32) {
	kept := s.state.Balls[:0]
	for _, b := range s.state.Balls {
		if b.Group == group {
			s.emit(event.EventBallExpired, &event.BallExpiredPayload{Ball: b.ID, Group: group})
			continue
		}
		kept = append(kept, b)
	}
	s.state.Balls = kept
}
