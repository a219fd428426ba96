package engine

import (
	"sync"
	"time"
)

// PausableClock tracks play time excluding pauses, read by the HUD
// It follows the simulation pause flag, it never drives the simulation
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	startTime       time.Time
	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock starting at the provider's current time
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source:    source,
		startTime: source.Now(),
	}
}

// Elapsed returns play time: real elapsed minus every pause
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.source.Now()
	if pc.paused {
		end = pc.pauseStartTime
	}
	return end.Sub(pc.startTime) - pc.totalPausedTime
}

// SetPaused starts or ends a pause interval, repeated calls with the same value are no-ops
func (pc *PausableClock) SetPaused(paused bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if paused == pc.paused {
		return
	}
	now := pc.source.Now()
	if paused {
		pc.pauseStartTime = now
	} else {
		pc.totalPausedTime += now.Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
	pc.paused = paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// Restart zeroes the clock, used on game reset
func (pc *PausableClock) Restart() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.startTime = pc.source.Now()
	pc.paused = false
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
}
