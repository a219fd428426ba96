package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/lixenwraith/teapong/config"
)

// options are the command line flags
type options struct {
	configPath string
	seed       uint64
	camera     string
	bounds     bool
	sound      bool
	debug      bool
	record     string
	replay     string

	// set holds the names of flags given explicitly, only those override the config
	set map[string]bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("teapong", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "Path to a TOML config file")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 picks one from the clock")
	fs.StringVar(&o.camera, "camera", "", "Camera mode: third-person, follow, top")
	fs.BoolVar(&o.bounds, "bounds", false, "Show collision bounds")
	fs.BoolVar(&o.sound, "sound", true, "Play cue tones")
	fs.BoolVar(&o.debug, "debug", false, "Log to logs/teapong.log and show the metrics line")
	fs.StringVar(&o.record, "record", "", "Record the session to this file")
	fs.StringVar(&o.replay, "replay", "", "Play a recorded session headless and print the result")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// loadConfig builds the effective configuration: defaults, then the file, then explicit flags
func (o options) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}

	if o.set["seed"] {
		cfg.Sim.Seed = o.seed
	}
	if o.set["camera"] {
		cfg.UI.CameraMode = o.camera
	}
	if o.set["bounds"] {
		cfg.UI.ShowBounds = o.bounds
	}
	if o.set["sound"] {
		cfg.UI.Sound = o.sound
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if cfg.Sim.Seed == 0 {
		cfg.Sim.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}
