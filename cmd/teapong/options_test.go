package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/teapong/config"
	"github.com/lixenwraith/teapong/input"
)

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !o.sound || o.debug || o.bounds {
		t.Errorf("unexpected defaults %+v", o)
	}
	if len(o.set) != 0 {
		t.Errorf("no flags should be marked set, got %v", o.set)
	}
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teapong.toml")
	data := "[ui]\ncamera_mode = \"top\"\nsound = false\n\n[sim]\nseed = 77\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	o, err := parseFlags([]string{"-config", path, "-bounds"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err := o.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	// File values survive flags that were not given
	if cfg.UI.CameraMode != "top" || cfg.UI.Sound || cfg.Sim.Seed != 77 {
		t.Errorf("file values lost: %+v %+v", cfg.UI, cfg.Sim)
	}
	if !cfg.UI.ShowBounds {
		t.Error("-bounds not applied")
	}

	o, err = parseFlags([]string{"-config", path, "-camera", "follow", "-seed", "5", "-sound=true"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err = o.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.UI.CameraMode != "follow" || cfg.Sim.Seed != 5 || !cfg.UI.Sound {
		t.Errorf("flag overrides lost: %+v %+v", cfg.UI, cfg.Sim)
	}
}

func TestLoadConfigPicksSeed(t *testing.T) {
	o, _ := parseFlags(nil)
	cfg, err := o.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Sim.Seed == 0 {
		t.Error("expected a clock seed when none is configured")
	}
}

func TestLoadConfigRejectsBadCamera(t *testing.T) {
	o, err := parseFlags([]string{"-camera", "orbit"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if _, err := o.loadConfig(); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestParseFlagsRejectsArgs(t *testing.T) {
	if _, err := parseFlags([]string{"extra"}); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestCommandMapping(t *testing.T) {
	if command(input.ActionUp, nil, nil, nil) != nil {
		t.Error("movement must not map to a command")
	}
	if command(input.ActionNone, nil, nil, nil) != nil {
		t.Error("none must not map to a command")
	}
	for _, a := range []input.Action{input.ActionQuit, input.ActionRestart, input.ActionCamera, input.ActionBounds, input.ActionSound} {
		if command(a, nil, nil, nil) == nil {
			t.Errorf("%v should map to a command", a)
		}
	}
}
