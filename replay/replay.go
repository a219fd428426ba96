// Package replay records the input stream of a session and plays it back deterministically
//
// A recording holds the seed, the configuration and every (intent, frame delta) pair the
// loop fed the simulation. Because steps are fixed and the random source is seeded, feeding
// the same pairs into a fresh simulation reproduces the session exactly
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/config"
	"github.com/lixenwraith/teapong/engine"
	"github.com/lixenwraith/teapong/event"
	"github.com/lixenwraith/teapong/status"
)

// FormatVersion is bumped whenever the file layout or simulation semantics change
const FormatVersion = 1

var (
	// ErrVersionMismatch is returned when loading a recording of another format version
	ErrVersionMismatch = errors.New("replay version mismatch")

	// ErrDiverged is returned when playback ends in a different state than recorded
	ErrDiverged = errors.New("replay diverged")
)

// Frame is one loop iteration, consecutive identical frames are run-length merged
type Frame struct {
	Intent  uint8  `msgpack:"i"`
	DT      int64  `msgpack:"d"` // nanoseconds
	Repeat  uint32 `msgpack:"r,omitempty"`
	Restart bool   `msgpack:"x,omitempty"`
}

// count returns how many iterations the frame stands for
func (f Frame) count() int {
	return int(f.Repeat) + 1
}

// Recording is the on-disk session
type Recording struct {
	Version    int             `msgpack:"version"`
	Seed       uint64          `msgpack:"seed"`
	Config     config.Config   `msgpack:"config"`
	Frames     []Frame         `msgpack:"frames"`
	FinalTick  uint64          `msgpack:"final_tick"`
	FinalScore component.Score `msgpack:"final_score"`
}

// Steps returns the number of loop iterations stored
func (r *Recording) Steps() int {
	n := 0
	for _, f := range r.Frames {
		if !f.Restart {
			n += f.count()
		}
	}
	return n
}

// Recorder accumulates frames, it implements engine.Recorder
// Not safe for concurrent use, the loop calls it from its own goroutine
type Recorder struct {
	rec Recording
}

func NewRecorder(seed uint64, cfg config.Config) *Recorder {
	return &Recorder{rec: Recording{
		Version: FormatVersion,
		Seed:    seed,
		Config:  cfg,
	}}
}

// Record appends one iteration
func (r *Recorder) Record(intent component.Intent, dt time.Duration) {
	f := Frame{Intent: intent.Packed(), DT: int64(dt)}
	if n := len(r.rec.Frames); n > 0 {
		last := &r.rec.Frames[n-1]
		if !last.Restart && last.Intent == f.Intent && last.DT == f.DT {
			last.Repeat++
			return
		}
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

// Restart marks a game reset at the current position
func (r *Recorder) Restart() {
	r.rec.Frames = append(r.rec.Frames, Frame{Restart: true})
}

// Finish stores the final state used to verify playback
func (r *Recorder) Finish(s engine.Snapshot) {
	r.rec.FinalTick = s.Tick
	r.rec.FinalScore = s.Score
}

// Recording returns the accumulated session
func (r *Recorder) Recording() *Recording {
	return &r.rec
}

// Save encodes a recording
func Save(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

// Load decodes a recording and checks its version
func Load(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: file has %d, want %d", ErrVersionMismatch, rec.Version, FormatVersion)
	}
	if err := rec.Config.Validate(); err != nil {
		return nil, fmt.Errorf("replay config: %w", err)
	}
	return &rec, nil
}

// SaveFile writes a recording to path
func SaveFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay %s: %w", path, err)
	}
	if err := Save(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a recording from path
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Play re-runs a recording in a fresh simulation and returns its final state
// onEvents, when set, receives the events of every iteration
// Returns ErrDiverged if the recorded final tick or score is not reproduced
func Play(rec *Recording, reg *status.Registry, onEvents func([]event.GameEvent)) (engine.Snapshot, error) {
	sim := engine.NewSimulation(rec.Config, engine.NewRand(rec.Seed), reg)

	for _, f := range rec.Frames {
		if f.Restart {
			sim.Reset()
			continue
		}
		intent := component.UnpackIntent(f.Intent)
		dt := time.Duration(f.DT)
		for i := 0; i < f.count(); i++ {
			events := sim.Tick(intent, dt)
			if onEvents != nil && len(events) > 0 {
				onEvents(events)
			}
		}
	}

	final := sim.State()
	if rec.FinalTick != 0 && (final.Tick != rec.FinalTick || final.Score != rec.FinalScore) {
		return final, fmt.Errorf("%w: got tick %d score %d:%d, recorded tick %d score %d:%d",
			ErrDiverged, final.Tick, final.Score.Player, final.Score.AI,
			rec.FinalTick, rec.FinalScore.Player, rec.FinalScore.AI)
	}
	return final, nil
}
