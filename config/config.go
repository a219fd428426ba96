// Package config holds the tunable game parameters and their TOML loader
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/teapong/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Arena struct {
	HalfWidth  float64 `toml:"half_width"`
	HalfHeight float64 `toml:"half_height"`
	HalfDepth  float64 `toml:"half_depth"`
}

type Ball struct {
	Radius          float64    `toml:"radius"`
	InitialVelocity [3]float64 `toml:"initial_velocity"`
	MaxSpeed        float64    `toml:"max_speed"`
}

type Paddle struct {
	HalfWidth   float64 `toml:"half_width"`
	HalfHeight  float64 `toml:"half_height"`
	HalfDepth   float64 `toml:"half_depth"`
	OffsetX     float64 `toml:"offset_x"`
	Speed       float64 `toml:"speed"`
	English     float64 `toml:"english"`
	AISmoothing float64 `toml:"ai_smoothing"`
}

type PowerUp struct {
	SpawnChance  float64 `toml:"spawn_chance"`
	MaxLive      int     `toml:"max_live"`
	PickupRadius float64 `toml:"pickup_radius"`
	SpawnHalfY   float64 `toml:"spawn_half_y"`
	SpawnHalfZ   float64 `toml:"spawn_half_z"`
}

type Effects struct {
	EnlargeScale       float64 `toml:"enlarge_scale"`
	EnlargeSeconds     float64 `toml:"enlarge_seconds"`
	SlowFactor         float64 `toml:"slow_factor"`
	SlowSeconds        float64 `toml:"slow_seconds"`
	MultiballCount     int     `toml:"multiball_count"`
	MultiballSpreadDeg float64 `toml:"multiball_spread_deg"`
	MultiballSpeed     float64 `toml:"multiball_speed"`
	MultiballSeconds   float64 `toml:"multiball_seconds"`
}

type Sim struct {
	TickRate              int    `toml:"tick_rate"`
	MaxStepsPerFrame      int    `toml:"max_steps_per_frame"`
	EffectsRunWhilePaused bool   `toml:"effects_run_while_paused"`
	Seed                  uint64 `toml:"seed"`
}

type UI struct {
	CameraMode string `toml:"camera_mode"`
	ShowBounds bool   `toml:"show_bounds"`
	Sound      bool   `toml:"sound"`
	ColorMode  string `toml:"color_mode"`
}

// Config is the full game configuration
type Config struct {
	Arena   Arena   `toml:"arena"`
	Ball    Ball    `toml:"ball"`
	Paddle  Paddle  `toml:"paddle"`
	PowerUp PowerUp `toml:"powerup"`
	Effects Effects `toml:"effects"`
	Sim     Sim     `toml:"sim"`
	UI      UI      `toml:"ui"`

	// Keys overrides key bindings, key name to action name, resolved by the input package
	Keys map[string]string `toml:"keys"`
}

// Default returns the stock tuning from the parameter package
func Default() Config {
	return Config{
		Arena: Arena{
			HalfWidth:  parameter.ArenaHalfWidth,
			HalfHeight: parameter.ArenaHalfHeight,
			HalfDepth:  parameter.ArenaHalfDepth,
		},
		Ball: Ball{
			Radius: parameter.BallRadius,
			InitialVelocity: [3]float64{
				parameter.BallInitialSpeedX,
				parameter.BallInitialSpeedY,
				parameter.BallInitialSpeedZ,
			},
			MaxSpeed: parameter.BallMaxSpeed,
		},
		Paddle: Paddle{
			HalfWidth:   parameter.PaddleHalfWidth,
			HalfHeight:  parameter.PaddleHalfHeight,
			HalfDepth:   parameter.PaddleHalfDepth,
			OffsetX:     parameter.PaddleOffsetX,
			Speed:       parameter.PaddleSpeed,
			English:     parameter.PaddleEnglish,
			AISmoothing: parameter.AISmoothing,
		},
		PowerUp: PowerUp{
			SpawnChance:  parameter.PowerUpSpawnChance,
			MaxLive:      parameter.PowerUpMaxLive,
			PickupRadius: parameter.PowerUpPickupRadius,
			SpawnHalfY:   parameter.PowerUpSpawnHalfY,
			SpawnHalfZ:   parameter.PowerUpSpawnHalfZ,
		},
		Effects: Effects{
			EnlargeScale:       parameter.EnlargeScale,
			EnlargeSeconds:     parameter.EnlargeSeconds,
			SlowFactor:         parameter.SlowFactor,
			SlowSeconds:        parameter.SlowSeconds,
			MultiballCount:     parameter.MultiballCount,
			MultiballSpreadDeg: parameter.MultiballSpreadDeg,
			MultiballSpeed:     parameter.MultiballSpeed,
			MultiballSeconds:   parameter.MultiballSeconds,
		},
		Sim: Sim{
			TickRate:              parameter.TickRate,
			MaxStepsPerFrame:      parameter.MaxStepsPerFrame,
			EffectsRunWhilePaused: parameter.EffectsRunWhilePaused,
		},
		UI: UI{
			CameraMode: "third-person",
			Sound:      true,
			ColorMode:  "auto",
		},
	}
}

// Load decodes a TOML file over the defaults and validates the result
// Keys absent from the file keep their default values
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg, which should already hold defaults, then validates
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return cfg.Validate()
}

// floats lists every float field by its TOML path, for the finiteness check
func (c *Config) floats() map[string]float64 {
	return map[string]float64{
		"arena.half_width":             c.Arena.HalfWidth,
		"arena.half_height":            c.Arena.HalfHeight,
		"arena.half_depth":             c.Arena.HalfDepth,
		"ball.radius":                  c.Ball.Radius,
		"ball.initial_velocity[0]":     c.Ball.InitialVelocity[0],
		"ball.initial_velocity[1]":     c.Ball.InitialVelocity[1],
		"ball.initial_velocity[2]":     c.Ball.InitialVelocity[2],
		"ball.max_speed":               c.Ball.MaxSpeed,
		"paddle.half_width":            c.Paddle.HalfWidth,
		"paddle.half_height":           c.Paddle.HalfHeight,
		"paddle.half_depth":            c.Paddle.HalfDepth,
		"paddle.offset_x":              c.Paddle.OffsetX,
		"paddle.speed":                 c.Paddle.Speed,
		"paddle.english":               c.Paddle.English,
		"paddle.ai_smoothing":          c.Paddle.AISmoothing,
		"powerup.spawn_chance":         c.PowerUp.SpawnChance,
		"powerup.pickup_radius":        c.PowerUp.PickupRadius,
		"powerup.spawn_half_y":         c.PowerUp.SpawnHalfY,
		"powerup.spawn_half_z":         c.PowerUp.SpawnHalfZ,
		"effects.enlarge_scale":        c.Effects.EnlargeScale,
		"effects.enlarge_seconds":      c.Effects.EnlargeSeconds,
		"effects.slow_factor":          c.Effects.SlowFactor,
		"effects.slow_seconds":         c.Effects.SlowSeconds,
		"effects.multiball_spread_deg": c.Effects.MultiballSpreadDeg,
		"effects.multiball_speed":      c.Effects.MultiballSpeed,
		"effects.multiball_seconds":    c.Effects.MultiballSeconds,
	}
}

// Validate rejects configurations the simulation cannot run with
func (c *Config) Validate() error {
	fields := c.floats()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := fields[name]; math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, name)
		}
	}

	switch {
	case c.Arena.HalfWidth <= 0 || c.Arena.HalfHeight <= 0 || c.Arena.HalfDepth <= 0:
		return fmt.Errorf("%w: arena extents must be positive", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.Radius >= c.Arena.HalfHeight || c.Ball.Radius >= c.Arena.HalfDepth:
		return fmt.Errorf("%w: ball radius %.2f does not fit the arena", ErrInvalidConfig, c.Ball.Radius)
	case c.Ball.MaxSpeed <= 0:
		return fmt.Errorf("%w: ball max_speed must be positive", ErrInvalidConfig)
	case c.Paddle.HalfHeight*c.Effects.EnlargeScale > c.Arena.HalfHeight ||
		c.Paddle.HalfDepth*c.Effects.EnlargeScale > c.Arena.HalfDepth:
		return fmt.Errorf("%w: enlarged paddle exceeds the arena", ErrInvalidConfig)
	case c.Paddle.HalfWidth <= 0 || c.Paddle.HalfHeight <= 0 || c.Paddle.HalfDepth <= 0:
		return fmt.Errorf("%w: paddle extents must be positive", ErrInvalidConfig)
	case c.Paddle.AISmoothing < 0 || c.Paddle.AISmoothing > 1:
		return fmt.Errorf("%w: ai_smoothing must be in [0,1]", ErrInvalidConfig)
	case c.PowerUp.SpawnChance < 0 || c.PowerUp.SpawnChance > 1:
		return fmt.Errorf("%w: spawn_chance must be in [0,1]", ErrInvalidConfig)
	case c.PowerUp.MaxLive < 0:
		return fmt.Errorf("%w: max_live must not be negative", ErrInvalidConfig)
	case c.Effects.EnlargeScale <= 0 || c.Effects.SlowFactor <= 0:
		return fmt.Errorf("%w: effect factors must be positive", ErrInvalidConfig)
	case c.Effects.MultiballCount < 0:
		return fmt.Errorf("%w: multiball_count must not be negative", ErrInvalidConfig)
	case c.Effects.MultiballSpeed < 0:
		return fmt.Errorf("%w: multiball_speed must not be negative", ErrInvalidConfig)
	case c.Effects.EnlargeSeconds < 0 || c.Effects.SlowSeconds < 0 || c.Effects.MultiballSeconds < 0:
		return fmt.Errorf("%w: effect durations must not be negative", ErrInvalidConfig)
	case c.PowerUp.PickupRadius < 0:
		return fmt.Errorf("%w: pickup_radius must not be negative", ErrInvalidConfig)
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidConfig)
	case c.Sim.MaxStepsPerFrame <= 0:
		return fmt.Errorf("%w: max_steps_per_frame must be positive", ErrInvalidConfig)
	}
	switch c.UI.CameraMode {
	case "follow", "top", "third-person":
	default:
		return fmt.Errorf("%w: unknown camera_mode %q", ErrInvalidConfig, c.UI.CameraMode)
	}
	switch c.UI.ColorMode {
	case "auto", "mono":
	default:
		return fmt.Errorf("%w: unknown color_mode %q", ErrInvalidConfig, c.UI.ColorMode)
	}
	return nil
}

// Ticks converts a duration in seconds to whole simulation ticks, at least one
// Negative, NaN and infinite durations count as zero
func (c *Config) Ticks(seconds float64) uint64 {
	if !(seconds > 0) || math.IsInf(seconds, 1) {
		return 1
	}
	t := uint64(seconds*float64(c.Sim.TickRate) + 0.5)
	if t == 0 {
		t = 1
	}
	return t
}
