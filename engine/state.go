package engine

import (
	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/config"
	"github.com/lixenwraith/teapong/system"
	"github.com/lixenwraith/teapong/vmath"
)

// GameState aggregates every entity of one game
// Mutated only from Simulation.Step, collaborators read it through Snapshot copies
type GameState struct {
	Tick   uint64
	Arena  component.Arena
	Player component.Paddle
	AI     component.Paddle
	Balls  []component.Ball // Balls[0] is the primary ball
	Score  component.Score
	Paused bool
}

// Snapshot is a deep copy of GameState plus derived read-only views
type Snapshot struct {
	Tick     uint64
	Arena    component.Arena
	Player   component.Paddle
	AI       component.Paddle
	Balls    []component.Ball
	PowerUps []component.PowerUp
	Score    component.Score
	Paused   bool
	Closed   bool
	Effects  []system.EffectInfo
}

// Primary returns the primary ball copy, ok is false after quit
func (s *Snapshot) Primary() (component.Ball, bool) {
	for _, b := range s.Balls {
		if b.IsPrimary() {
			return b, true
		}
	}
	return component.Ball{}, false
}

// newGameState builds the start-of-game layout from configuration
func newGameState(cfg *config.Config) GameState {
	half := vmath.V3(cfg.Paddle.HalfWidth, cfg.Paddle.HalfHeight, cfg.Paddle.HalfDepth)
	return GameState{
		Arena: component.Arena{
			HalfWidth:  cfg.Arena.HalfWidth,
			HalfHeight: cfg.Arena.HalfHeight,
			HalfDepth:  cfg.Arena.HalfDepth,
		},
		Player: component.Paddle{
			Side:     component.SidePlayer,
			Position: vmath.V3(-cfg.Paddle.OffsetX, 0, 0),
			HalfSize: half,
			Speed:    cfg.Paddle.Speed,
			Scale:    1.0,
		},
		AI: component.Paddle{
			Side:     component.SideAI,
			Position: vmath.V3(cfg.Paddle.OffsetX, 0, 0),
			HalfSize: half,
			Speed:    cfg.Paddle.Speed,
			Scale:    1.0,
		},
	}
}

// primaryIndex returns the index of the primary ball or -1
func (g *GameState) primaryIndex() int {
	for i := range g.Balls {
		if g.Balls[i].IsPrimary() {
			return i
		}
	}
	return -1
}
