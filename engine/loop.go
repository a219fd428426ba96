package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/event"
	"github.com/lixenwraith/teapong/status"
)

// InputSource supplies the intent for the next frame
type InputSource interface {
	Intent() component.Intent
}

// FrameSink receives every completed frame, typically the renderer
type FrameSink interface {
	Draw(f *Frame)
}

// Recorder captures exactly what the loop feeds the simulation, so a session can be replayed
type Recorder interface {
	Record(intent component.Intent, dt time.Duration)
	Restart()
}

// Frame is what collaborators see after one loop iteration
type Frame struct {
	Now      time.Time
	PlayTime time.Duration
	State    Snapshot
	Events   []event.GameEvent
}

// Loop drives a Simulation in real time
// Wall-clock deltas come from the injected TimeProvider, events flow through the queue into the router
type Loop struct {
	sim      *Simulation
	clock    TimeProvider
	play     *PausableClock
	interval time.Duration

	queue  *event.EventQueue
	router *event.Router[*Frame]

	input    InputSource
	sink     FrameSink
	recorder Recorder

	last        time.Time
	statSteps   *atomic.Int64
	statDropped *atomic.Int64
}

// NewLoop wires a loop; sink may be nil for headless runs
func NewLoop(sim *Simulation, clock TimeProvider, interval time.Duration, input InputSource, sink FrameSink, reg *status.Registry) *Loop {
	if reg == nil {
		reg = status.NewRegistry()
	}
	queue := event.NewEventQueue()
	return &Loop{
		sim:         sim,
		clock:       clock,
		play:        NewPausableClock(clock),
		interval:    interval,
		queue:       queue,
		router:      event.NewRouter[*Frame](queue),
		input:       input,
		sink:        sink,
		last:        clock.Now(),
		statSteps:   reg.Ints.Get(status.KeyFrameSteps),
		statDropped: reg.Ints.Get(status.KeyEventsDropped),
	}
}

// RegisterHandler adds an event handler, must be called before Run
func (l *Loop) RegisterHandler(h event.Handler[*Frame]) {
	l.router.Register(h)
}

// SetRecorder attaches a session recorder, nil detaches
func (l *Loop) SetRecorder(r Recorder) {
	l.recorder = r
}

// Restart resets the game and the play clock
func (l *Loop) Restart() {
	if l.recorder != nil {
		l.recorder.Restart()
	}
	l.sim.Reset()
	l.play.Restart()
	l.last = l.clock.Now()
}

// RunFrame performs one iteration: read input, tick with the elapsed delta, dispatch events, draw
func (l *Loop) RunFrame() *Frame {
	now := l.clock.Now()
	dt := now.Sub(l.last)
	l.last = now

	var intent component.Intent
	if l.input != nil {
		intent = l.input.Intent()
	}

	if l.recorder != nil {
		l.recorder.Record(intent, dt)
	}

	before := l.sim.state.Tick
	events := l.sim.Tick(intent, dt)
	l.statSteps.Store(int64(l.sim.state.Tick - before))
	l.play.SetPaused(l.sim.IsPaused())

	f := &Frame{
		Now:      now,
		PlayTime: l.play.Elapsed(),
		State:    l.sim.State(),
		Events:   events,
	}

	l.queue.PushAll(events)
	l.router.DispatchAll(f)
	l.statDropped.Store(int64(l.queue.Dropped()))

	if l.sink != nil {
		l.sink.Draw(f)
	}
	return f
}

// Quit tears the game down, Run returns after the current frame
func (l *Loop) Quit() {
	l.sim.Quit()
}

// Simulation exposes the driven game for control callbacks
func (l *Loop) Simulation() *Simulation {
	return l.sim
}

// Run loops until ctx is cancelled or the simulation quits
// Functions received on control run on the loop goroutine between frames, the only safe place
// for other goroutines to touch the game
func (l *Loop) Run(ctx context.Context, control <-chan func(*Loop)) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.last = l.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-control:
			fn(l)
		case <-ticker.C:
			l.RunFrame()
		}
		if l.sim.Closed() {
			return nil
		}
	}
}
