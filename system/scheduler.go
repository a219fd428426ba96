package system

import (
	"sort"

	"github.com/lixenwraith/teapong/component"
)

// Effect is a scheduled revert of a timed power-up effect
type Effect struct {
	ID        uint64
	Kind      component.PowerUpKind
	ExpiresAt uint64 // Scheduler tick at which Revert runs
	Revert    func()
}

// EffectInfo is the read-only view of an active effect
type EffectInfo struct {
	Kind      component.PowerUpKind
	Remaining uint64 // Ticks until revert
}

// Scheduler is an ordered list of (expiresAt, revert) entries evaluated against a tick counter
// Every apply is paired with exactly one revert, so overlapping effects of the same kind unwind
// in the order they were applied
type Scheduler struct {
	now     uint64
	nextID  uint64
	pending []Effect
}

func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Now returns the scheduler tick
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Schedule registers revert to run after the given number of ticks
func (s *Scheduler) Schedule(kind component.PowerUpKind, after uint64, revert func()) uint64 {
	e := Effect{
		ID:        s.nextID,
		Kind:      kind,
		ExpiresAt: s.now + after,
		Revert:    revert,
	}
	s.nextID++

	// Insertion keeps pending sorted by expiry, ties in scheduling order
	i := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].ExpiresAt > e.ExpiresAt
	})
	s.pending = append(s.pending, Effect{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = e
	return e.ID
}

// Advance moves the clock forward by ticks and runs every revert that came due
// Returns the expired effects in expiry order
func (s *Scheduler) Advance(ticks uint64) []Effect {
	s.now += ticks
	n := 0
	for n < len(s.pending) && s.pending[n].ExpiresAt <= s.now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Effect, n)
	copy(due, s.pending[:n])
	s.pending = append(s.pending[:0], s.pending[n:]...)

	for _, e := range due {
		if e.Revert != nil {
			e.Revert()
		}
	}
	return due
}

// Active lists pending effects with their remaining ticks
func (s *Scheduler) Active() []EffectInfo {
	out := make([]EffectInfo, 0, len(s.pending))
	for _, e := range s.pending {
		out = append(out, EffectInfo{Kind: e.Kind, Remaining: e.ExpiresAt - s.now})
	}
	return out
}

// Len returns the number of pending effects
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Clear drops pending effects without running their reverts
// Used on full reset where the owning state is rebuilt anyway
func (s *Scheduler) Clear() {
	s.pending = s.pending[:0]
}
