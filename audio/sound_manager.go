package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/teapong/engine"
	"github.com/lixenwraith/teapong/event"
	"github.com/lixenwraith/teapong/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays cue tones for game events
// Safe to use without a working audio device: every call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       *cueCache
	initialized bool
	enabled     atomic.Bool

	// played counts cues handed to the mixer, for diagnostics and tests
	played atomic.Int64
}

// NewSoundManager creates a new sound manager, enabled by default
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
		cache: newCueCache(),
	}
	sm.enabled.Store(true)
	return sm
}

// Initialize sets up the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetEnabled mutes or unmutes cue playback
func (sm *SoundManager) SetEnabled(on bool) {
	sm.enabled.Store(on)
}

func (sm *SoundManager) Enabled() bool {
	return sm.enabled.Load()
}

// Toggle flips the mute state and returns the new enabled state
func (sm *SoundManager) Toggle() bool {
	for {
		old := sm.enabled.Load()
		if sm.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Played returns the number of cues started since creation
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play starts a cue, overlapping cues are mixed
func (sm *SoundManager) Play(cue Cue) {
	if !sm.enabled.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	buf := sm.cache.get(cue)
	if buf == nil {
		log.Printf("audio: no buffer for cue %v", cue)
		return
	}

	speaker.Lock()
	sm.mixer.Add(newBufferStreamer(buf, parameter.CueGain))
	speaker.Unlock()
	sm.played.Add(1)
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPaddleImpact,
		event.EventWallImpact,
		event.EventGoal,
		event.EventPowerUpCollected,
	}
}

// HandleEvent maps game events to cues
func (sm *SoundManager) HandleEvent(_ *engine.Frame, ev event.GameEvent) {
	if cue, ok := CueFor(ev.Type); ok {
		sm.Play(cue)
	}
}

// CueFor returns the cue played for an event type
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.EventPaddleImpact:
		return CuePaddle, true
	case event.EventWallImpact:
		return CueWall, true
	case event.EventGoal:
		return CueGoal, true
	case event.EventPowerUpCollected:
		return CuePowerUp, true
	}
	return 0, false
}
