package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Ball.InitialVelocity != [3]float64{0.3, 0.2, 0.15} {
		t.Errorf("initial velocity = %v", cfg.Ball.InitialVelocity)
	}
	if cfg.Sim.TickRate != 60 {
		t.Errorf("tick rate = %d", cfg.Sim.TickRate)
	}
}

func TestDecodeOverridesOnlyPresentKeys(t *testing.T) {
	data := []byte(`
[ball]
initial_velocity = [0.5, 0.1, 0.05]

[powerup]
max_live = 5

[ui]
camera_mode = "top"

[keys]
j = "down"
k = "up"
`)
	cfg := Default()
	if err := Decode(data, &cfg); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Ball.InitialVelocity != [3]float64{0.5, 0.1, 0.05} {
		t.Errorf("initial velocity = %v", cfg.Ball.InitialVelocity)
	}
	if cfg.PowerUp.MaxLive != 5 {
		t.Errorf("max_live = %d", cfg.PowerUp.MaxLive)
	}
	if cfg.UI.CameraMode != "top" {
		t.Errorf("camera_mode = %q", cfg.UI.CameraMode)
	}
	if cfg.Keys["j"] != "down" || cfg.Keys["k"] != "up" {
		t.Errorf("keys = %v", cfg.Keys)
	}

	// Untouched sections keep defaults
	def := Default()
	if cfg.Arena != def.Arena || cfg.Paddle != def.Paddle || cfg.Effects != def.Effects {
		t.Error("absent sections changed")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantInvalid bool
	}{
		{"Syntax", "[ball\nradius = 1", false},
		{"Unknown key", "[ball]\nspin = 3", true},
		{"Unknown section", "[gravity]\ny = -9.8", true},
		{"Wrong type", "[ball]\nradius = \"big\"", false},
		{"Failing validation", "[sim]\ntick_rate = 0", true},
		{"NaN initial velocity", "[ball]\ninitial_velocity = [nan, 0.1, 0.1]", true},
		{"Infinite max speed", "[ball]\nmax_speed = inf", true},
		{"Infinite arena", "[arena]\nhalf_width = -inf", true},
		{"Negative duration", "[effects]\nslow_seconds = -1.0", true},
		{"Negative multiball speed", "[effects]\nmultiball_speed = -0.3", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Decode([]byte(tt.data), &cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.wantInvalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", got, tt.wantInvalid, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"Zero arena", func(c *Config) { c.Arena.HalfDepth = 0 }},
		{"Zero radius", func(c *Config) { c.Ball.Radius = 0 }},
		{"Radius wider than arena", func(c *Config) { c.Ball.Radius = 12 }},
		{"Zero max speed", func(c *Config) { c.Ball.MaxSpeed = 0 }},
		{"Enlarged paddle too big", func(c *Config) { c.Effects.EnlargeScale = 6 }},
		{"Negative paddle", func(c *Config) { c.Paddle.HalfWidth = -1 }},
		{"AI smoothing above one", func(c *Config) { c.Paddle.AISmoothing = 1.5 }},
		{"Spawn chance above one", func(c *Config) { c.PowerUp.SpawnChance = 2 }},
		{"Negative max live", func(c *Config) { c.PowerUp.MaxLive = -1 }},
		{"Zero slow factor", func(c *Config) { c.Effects.SlowFactor = 0 }},
		{"Negative multiball", func(c *Config) { c.Effects.MultiballCount = -2 }},
		{"Zero steps per frame", func(c *Config) { c.Sim.MaxStepsPerFrame = 0 }},
		{"Unknown camera", func(c *Config) { c.UI.CameraMode = "orbit" }},
		{"Unknown color mode", func(c *Config) { c.UI.ColorMode = "sepia" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teapong.toml")
	if err := os.WriteFile(path, []byte("[effects]\nslow_factor = 0.25\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Effects.SlowFactor != 0.25 {
		t.Errorf("slow_factor = %v", cfg.Effects.SlowFactor)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestTicks(t *testing.T) {
	cfg := Default()
	tests := []struct {
		seconds float64
		want    uint64
	}{
		{5, 300},
		{7, 420},
		{0.5, 30},
		{0, 1},
		{0.001, 1},
		{-1, 1},
		{-1e9, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		if got := cfg.Ticks(tt.seconds); got != tt.want {
			t.Errorf("Ticks(%v) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}
