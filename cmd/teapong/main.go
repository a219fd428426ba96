package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/teapong/audio"
	"github.com/lixenwraith/teapong/config"
	"github.com/lixenwraith/teapong/core"
	"github.com/lixenwraith/teapong/engine"
	"github.com/lixenwraith/teapong/event"
	"github.com/lixenwraith/teapong/input"
	"github.com/lixenwraith/teapong/parameter"
	"github.com/lixenwraith/teapong/render"
	"github.com/lixenwraith/teapong/replay"
	"github.com/lixenwraith/teapong/status"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "teapong: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if opts.replay != "" {
		return runReplay(opts.replay)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "teapong: %v\n", err)
		return 1
	}
	keys, err := input.WithBindings(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teapong: config: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Dependency Injection: crash handler restores the terminal for every core.Go goroutine
	core.SetCrashHandler(func(any) { screen.Fini() })
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	final, err := play(screen, cfg, keys, opts)
	screen.Fini()

	if err != nil {
		fmt.Fprintf(os.Stderr, "teapong: %v\n", err)
		return 1
	}
	fmt.Printf("Final score: player %d, ai %d\n", final.Score.Player, final.Score.AI)
	return 0
}

// play runs one interactive session until quit or signal
func play(screen tcell.Screen, cfg config.Config, keys *input.KeyTable, opts options) (engine.Snapshot, error) {
	log.Printf("starting: seed=%d camera=%s sound=%v", cfg.Sim.Seed, cfg.UI.CameraMode, cfg.UI.Sound)

	reg := status.NewRegistry()
	sim := engine.NewSimulation(cfg, engine.NewRand(cfg.Sim.Seed), reg)

	var hudReg *status.Registry
	if opts.debug {
		hudReg = reg
	}
	renderer, err := render.NewRenderer(screen, cfg, hudReg)
	if err != nil {
		return engine.Snapshot{}, err
	}

	sound := audio.NewSoundManager()
	sound.SetEnabled(cfg.UI.Sound)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	keyboard := input.NewKeyboard(keys)
	loop := engine.NewLoop(sim, engine.NewMonotonicTimeProvider(), parameter.FrameUpdateInterval, keyboard, renderer, reg)
	loop.RegisterHandler(renderer)
	loop.RegisterHandler(sound)
	loop.RegisterHandler(event.HandlerFunc[*engine.Frame]{
		Types: []event.EventType{event.EventGoal, event.EventBallReset},
		Fn: func(f *engine.Frame, ev event.GameEvent) {
			log.Printf("tick %d: %s %+v", ev.Tick, ev.Type, ev.Payload)
		},
	})

	var recorder *replay.Recorder
	if opts.record != "" {
		recorder = replay.NewRecorder(cfg.Sim.Seed, cfg)
		loop.SetRecorder(recorder)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	control := make(chan func(*engine.Loop), 16)
	core.Go(func() {
		pollInput(ctx, screen, keyboard, renderer, sound, control)
	})

	runErr := loop.Run(ctx, control)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	final := sim.State()
	if recorder != nil {
		recorder.Finish(final)
		if err := replay.SaveFile(opts.record, recorder.Recording()); err != nil {
			return final, err
		}
		log.Printf("recorded %d frames to %s", recorder.Recording().Steps(), opts.record)
	}
	return final, runErr
}

// pollInput feeds terminal events to the keyboard and forwards commands to the loop goroutine
func pollInput(ctx context.Context, screen tcell.Screen, keyboard *input.Keyboard, renderer *render.Renderer, sound *audio.SoundManager, control chan<- func(*engine.Loop)) {
	for {
		ev := screen.PollEvent()
		// Screen finalized
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}

		cmd := command(keyboard.HandleEvent(ev), keyboard, renderer, sound)
		if cmd == nil {
			continue
		}
		select {
		case control <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// command maps a UI action to a function run on the loop goroutine, nil for non-commands
func command(a input.Action, keyboard *input.Keyboard, renderer *render.Renderer, sound *audio.SoundManager) func(*engine.Loop) {
	switch a {
	case input.ActionQuit:
		return func(l *engine.Loop) { l.Quit() }
	case input.ActionRestart:
		return func(l *engine.Loop) {
			keyboard.Reset()
			l.Restart()
			log.Printf("game restarted")
		}
	case input.ActionCamera:
		return func(*engine.Loop) {
			log.Printf("camera: %s", renderer.CycleCamera())
		}
	case input.ActionBounds:
		return func(*engine.Loop) {
			renderer.SetBoundsVisible(!renderer.BoundsVisible())
		}
	case input.ActionSound:
		return func(*engine.Loop) {
			log.Printf("sound enabled: %v", sound.Toggle())
		}
	}
	return nil
}

// runReplay plays a recording headless and prints the outcome
func runReplay(path string) int {
	rec, err := replay.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teapong: %v\n", err)
		return 1
	}

	reg := status.NewRegistry()
	counts := make(map[event.EventType]int)
	final, err := replay.Play(rec, reg, func(evs []event.GameEvent) {
		for _, ev := range evs {
			counts[ev.Type]++
		}
	})

	fmt.Printf("replay %s: seed %d, %d frames, tick %d\n", path, rec.Seed, rec.Steps(), final.Tick)
	fmt.Printf("score: player %d, ai %d\n", final.Score.Player, final.Score.AI)
	for _, t := range event.AllTypes() {
		if n := counts[t]; n > 0 {
			fmt.Printf("  %-18s %d\n", t, n)
		}
	}
	fmt.Println("metrics:")
	for _, line := range reg.Dump() {
		fmt.Printf("  %s\n", line)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "teapong: %v\n", err)
		return 1
	}
	return 0
}
