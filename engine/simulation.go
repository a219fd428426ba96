package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/config"
	"github.com/lixenwraith/teapong/event"
	"github.com/lixenwraith/teapong/parameter"
	"github.com/lixenwraith/teapong/status"
	"github.com/lixenwraith/teapong/system"
	"github.com/lixenwraith/teapong/vmath"
)

// Rand is the random source the game draws from, math/rand/v2 PCG in production
type Rand = system.Rand

// Simulation owns one game and advances it
// Not safe for concurrent use: Step, Tick and the lifecycle calls must come from one goroutine
type Simulation struct {
	cfg   config.Config
	rng   Rand
	state GameState

	powerUps  *system.PowerUps
	scheduler *system.Scheduler
	stepper   *FixedStep

	enlargeActive int
	nextBallID    component.BallID
	nextGroup     uint32
	closed        bool

	// Events emitted by the step in progress
	events []event.GameEvent

	// Cached metric pointers
	statTicks        *atomic.Int64
	statPaused       *atomic.Bool
	statGoalsPlayer  *atomic.Int64
	statGoalsAI      *atomic.Int64
	statPaddleHits   *atomic.Int64
	statWallHits     *atomic.Int64
	statSpawned      *atomic.Int64
	statCollected    *atomic.Int64
	statBallsLive    *atomic.Int64
	statBallResets   *atomic.Int64
	statNonFinite    *atomic.Int64
	statEffects      *atomic.Int64
	statPrimarySpeed *status.AtomicFloat
	statPeakSpeed    *status.AtomicFloat
}

// NewSimulation starts a game: paddles centered, primary ball at the origin with the initial velocity
// reg may be nil, metrics then go to a private registry
func NewSimulation(cfg config.Config, rng Rand, reg *status.Registry) *Simulation {
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &Simulation{
		cfg: cfg,
		rng: rng,
		powerUps: system.NewPowerUps(system.PowerUpConfig{
			SpawnChance:  cfg.PowerUp.SpawnChance,
			MaxLive:      cfg.PowerUp.MaxLive,
			PickupRadius: cfg.PowerUp.PickupRadius,
			SpawnHalfY:   cfg.PowerUp.SpawnHalfY,
			SpawnHalfZ:   cfg.PowerUp.SpawnHalfZ,
			SpinPerTick:  parameter.PowerUpSpinPerTick,
		}),
		scheduler: system.NewScheduler(),
		stepper:   NewFixedStep(cfg.Sim.TickRate, cfg.Sim.MaxStepsPerFrame),

		statTicks:        reg.Ints.Get(status.KeyTicks),
		statPaused:       reg.Bools.Get(status.KeyPaused),
		statGoalsPlayer:  reg.Ints.Get(status.KeyGoalsPlayer),
		statGoalsAI:      reg.Ints.Get(status.KeyGoalsAI),
		statPaddleHits:   reg.Ints.Get(status.KeyPaddleHits),
		statWallHits:     reg.Ints.Get(status.KeyWallHits),
		statSpawned:      reg.Ints.Get(status.KeyPowerUpsSpawned),
		statCollected:    reg.Ints.Get(status.KeyPowerUpsTaken),
		statBallsLive:    reg.Ints.Get(status.KeyBallsLive),
		statBallResets:   reg.Ints.Get(status.KeyBallResets),
		statNonFinite:    reg.Ints.Get(status.KeyNonFiniteResets),
		statEffects:      reg.Ints.Get(status.KeyEffectsActive),
		statPrimarySpeed: reg.Floats.Get(status.KeyPrimarySpeed),
		statPeakSpeed:    reg.Floats.Get(status.KeyPeakSpeed),
	}
	s.start()
	return s
}

// start builds a fresh GameState, shared by construction and Reset
func (s *Simulation) start() {
	s.state = newGameState(&s.cfg)
	s.powerUps.Clear()
	s.scheduler.Clear()
	s.stepper.Reset()
	s.enlargeActive = 0
	s.nextBallID = 1
	s.nextGroup = component.PrimaryGroup + 1
	s.closed = false

	s.state.Balls = append(s.state.Balls[:0], component.Ball{
		ID:         s.allocBallID(),
		Position:   vmath.Zero3,
		Velocity:   s.initialVelocity(),
		Radius:     s.cfg.Ball.Radius,
		SpeedScale: 1.0,
		Group:      component.PrimaryGroup,
	})
	s.publishMetrics()
}

func (s *Simulation) allocBallID() component.BallID {
	id := s.nextBallID
	s.nextBallID++
	return id
}

// initialVelocity falls back to the stock launch vector when the configured one is not finite
func (s *Simulation) initialVelocity() vmath.Vec3 {
	v := s.cfg.Ball.InitialVelocity
	if iv := vmath.V3(v[0], v[1], v[2]); vmath.V3IsFinite(iv) {
		return iv
	}
	return vmath.V3(parameter.BallInitialSpeedX, parameter.BallInitialSpeedY, parameter.BallInitialSpeedZ)
}

// Config returns the configuration the game runs with
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Step advances exactly one fixed tick and returns the events it produced
// intent.Pause toggles the pause state before anything else is evaluated
func (s *Simulation) Step(intent component.Intent) []event.GameEvent {
	if s.closed {
		return nil
	}
	s.events = nil
	if intent.Pause {
		s.setPaused(!s.state.Paused)
	}
	s.step(intent)
	return s.events
}

// Tick feeds a frame delta into the fixed-step accumulator and runs every due step
// The pause toggle applies once per call, movement flags apply to every step of the frame
func (s *Simulation) Tick(intent component.Intent, dt time.Duration) []event.GameEvent {
	if s.closed {
		return nil
	}
	s.events = nil
	if intent.Pause {
		s.setPaused(!s.state.Paused)
	}
	intent.Pause = false

	if s.state.Paused && !s.cfg.Sim.EffectsRunWhilePaused {
		s.stepper.Reset()
		return s.events
	}

	n := s.stepper.Advance(dt)
	for i := 0; i < n; i++ {
		s.step(intent)
	}
	return s.events
}

// step runs one tick, events append to s.events
func (s *Simulation) step(intent component.Intent) {
	if s.state.Paused {
		if s.cfg.Sim.EffectsRunWhilePaused {
			s.advanceEffects()
		}
		return
	}

	s.state.Tick++

	// Balls spawned during this loop start moving on the next tick
	n := len(s.state.Balls)
	for i := 0; i < n; i++ {
		s.stepBall(i, intent)
	}

	system.MovePlayer(&s.state.Player, s.state.Arena, intent, 1)
	if i := s.state.primaryIndex(); i >= 0 {
		system.UpdateAI(&s.state.AI, s.state.Arena, s.state.Balls[i].Position, s.cfg.Paddle.AISmoothing)
	}

	s.powerUps.Spin()
	if p, ok := s.powerUps.TrySpawn(s.rng); ok {
		s.statSpawned.Add(1)
		s.emit(event.EventPowerUpSpawned, &event.PowerUpSpawnedPayload{
			ID:       p.ID,
			Kind:     p.Kind,
			Position: p.Position,
		})
	}

	s.advanceEffects()
	s.publishMetrics()
}

func (s *Simulation) advanceEffects() {
	for _, e := range s.scheduler.Advance(1) {
		log.Printf("sim: %s expired at tick %d", e.Kind, s.state.Tick)
		s.emit(event.EventEffectExpired, &event.EffectExpiredPayload{Kind: e.Kind})
	}
}

func (s *Simulation) emit(t event.EventType, payload any) {
	s.events = append(s.events, event.GameEvent{
		Type:    t,
		Tick:    s.state.Tick,
		Payload: payload,
	})
}

func (s *Simulation) setPaused(paused bool) {
	if s.state.Paused == paused {
		return
	}
	s.state.Paused = paused
	s.statPaused.Store(paused)
	if paused {
		s.emit(event.EventPaused, nil)
	} else {
		s.emit(event.EventResumed, nil)
	}
}

// Pause freezes entity updates, returns the events produced by the transition
func (s *Simulation) Pause() []event.GameEvent {
	s.events = nil
	if !s.closed {
		s.setPaused(true)
	}
	return s.events
}

// Resume continues a paused game
func (s *Simulation) Resume() []event.GameEvent {
	s.events = nil
	if !s.closed {
		s.setPaused(false)
	}
	return s.events
}

func (s *Simulation) IsPaused() bool {
	return s.state.Paused
}

// Reset restarts the game in place: score zeroed, effects dropped, entities back to start
// The random source keeps its sequence
func (s *Simulation) Reset() {
	s.start()
}

// Quit tears the game down keeping the tick and score, later Step and Tick calls are no-ops
func (s *Simulation) Quit() {
	s.scheduler.Clear()
	s.powerUps.Clear()
	s.state = GameState{Tick: s.state.Tick, Arena: s.state.Arena, Score: s.state.Score}
	s.closed = true
	s.statBallsLive.Store(0)
	s.statEffects.Store(0)
}

// Closed reports whether Quit was called
func (s *Simulation) Closed() bool {
	return s.closed
}

// Alpha is the fraction of a fixed step pending in the accumulator
func (s *Simulation) Alpha() float64 {
	return s.stepper.Alpha()
}

// State returns a deep copy of the game for rendering
func (s *Simulation) State() Snapshot {
	balls := make([]component.Ball, len(s.state.Balls))
	copy(balls, s.state.Balls)
	return Snapshot{
		Tick:     s.state.Tick,
		Arena:    s.state.Arena,
		Player:   s.state.Player,
		AI:       s.state.AI,
		Balls:    balls,
		PowerUps: s.powerUps.Live(),
		Score:    s.state.Score,
		Paused:   s.state.Paused,
		Closed:   s.closed,
		Effects:  s.scheduler.Active(),
	}
}

func (s *Simulation) publishMetrics() {
	s.statTicks.Store(int64(s.state.Tick))
	s.statBallsLive.Store(int64(len(s.state.Balls)))
	s.statEffects.Store(int64(s.scheduler.Len()))
	if i := s.state.primaryIndex(); i >= 0 {
		speed := vmath.V3Mag(s.state.Balls[i].EffectiveVelocity())
		s.statPrimarySpeed.Set(speed)
		s.statPeakSpeed.SetMax(speed)
	}
}
