package engine

import (
	"log"

	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/event"
	"github.com/lixenwraith/teapong/physics"
	"github.com/lixenwraith/teapong/vmath"
)

// stepBall advances one ball through the fixed per-tick order:
// integrate, walls, paddles (player then AI), goal, power-up pickup
// A ball that integrates to a non-finite state is reset before any collision test sees it
func (s *Simulation) stepBall(i int, intent component.Intent) {
	ball := &s.state.Balls[i]
	arena := s.state.Arena

	prev := ball.Position
	ball.Position = vmath.V3Add(ball.Position, ball.EffectiveVelocity())
	if s.recoverNonFinite(ball) {
		return
	}

	var hits []physics.WallHit
	ball.Position, ball.Velocity, hits = physics.ResolveWalls(arena, ball.Radius, ball.Position, ball.Velocity)
	for _, h := range hits {
		s.statWallHits.Add(1)
		s.emit(event.EventWallImpact, &event.WallImpactPayload{
			Ball:  ball.ID,
			Face:  h.Face,
			Point: h.Point,
		})
	}

	for _, paddle := range [...]*component.Paddle{&s.state.Player, &s.state.AI} {
		impact, ok := physics.CheckPaddle(ball, prev, paddle, intent, s.cfg.Paddle.English)
		if !ok {
			continue
		}
		ball.Velocity = vmath.V3ClampComponents(ball.Velocity, s.cfg.Ball.MaxSpeed)
		s.statPaddleHits.Add(1)
		s.emit(event.EventPaddleImpact, &event.PaddleImpactPayload{
			Ball:       ball.ID,
			Side:       impact.Side,
			LocalPoint: impact.LocalPoint,
		})
	}

	if goal, ok := physics.CheckGoal(arena, ball.Position); ok {
		s.state.Score.Credit(goal.Scorer)
		if goal.Scorer == component.SideAI {
			s.statGoalsAI.Add(1)
		} else {
			s.statGoalsPlayer.Add(1)
		}
		s.emit(event.EventGoal, &event.GoalPayload{
			Ball:   ball.ID,
			Scorer: goal.Scorer,
			Face:   goal.Face,
			Point:  goal.Point,
			Score:  s.state.Score,
		})
		s.resetBall(ball)
	}

	// Copy out identity and position before effects may grow s.state.Balls
	id, pos := ball.ID, ball.Position
	for _, p := range s.powerUps.Collect(pos) {
		s.statCollected.Add(1)
		s.emit(event.EventPowerUpCollected, &event.PowerUpCollectedPayload{
			ID:   p.ID,
			Kind: p.Kind,
			Ball: id,
		})
		s.applyEffect(p.Kind)
	}

	s.recoverNonFinite(&s.state.Balls[i])
}

// recoverNonFinite resets a ball whose position, velocity or speed scale is no longer finite
func (s *Simulation) recoverNonFinite(ball *component.Ball) bool {
	if vmath.V3IsFinite(ball.Position) && vmath.V3IsFinite(ball.Velocity) && vmath.IsFinite(ball.SpeedScale) {
		return false
	}
	log.Printf("sim: ball %d non-finite at tick %d (pos=%v vel=%v scale=%v), resetting",
		ball.ID, s.state.Tick, ball.Position, ball.Velocity, ball.SpeedScale)
	s.statNonFinite.Add(1)
	if !vmath.IsFinite(ball.SpeedScale) || ball.SpeedScale <= 0 {
		ball.SpeedScale = 1.0
	}
	s.resetBall(ball)
	return true
}

// resetBall centers the ball with a random heading: x keeps the initial magnitude with a random sign,
// y and z are uniform within their initial magnitudes
func (s *Simulation) resetBall(ball *component.Ball) {
	init := s.initialVelocity()

	sign := -1.0
	if s.rng.Float64() > 0.5 {
		sign = 1.0
	}
	ball.Position = vmath.Zero3
	ball.Velocity = vmath.Vec3{
		X: sign * init.X,
		Y: (s.rng.Float64() - 0.5) * 2 * init.Y,
		Z: (s.rng.Float64() - 0.5) * 2 * init.Z,
	}

	s.statBallResets.Add(1)
	s.emit(event.EventBallReset, &event.BallResetPayload{
		Ball:     ball.ID,
		Velocity: ball.Velocity,
	})
}
