package status

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Registry is the central metrics facade
// The simulation caches pointers at construction; the step writes straight to the atomics
// and the renderer reads them from another goroutine without locking
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Len returns the number of metrics across all types
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len()
}

// Dump formats every metric as "key=value", sorted by key
func (r *Registry) Dump() []string {
	lines := make([]string, 0, r.Len())
	for _, k := range r.Bools.Keys() {
		lines = append(lines, fmt.Sprintf("%s=%t", k, r.Bools.Get(k).Load()))
	}
	for _, k := range r.Ints.Keys() {
		lines = append(lines, fmt.Sprintf("%s=%d", k, r.Ints.Get(k).Load()))
	}
	for _, k := range r.Floats.Keys() {
		lines = append(lines, fmt.Sprintf("%s=%.4f", k, r.Floats.Get(k).Get()))
	}
	sort.Strings(lines)
	return lines
}

// Metric keys written by the simulation and the loop
const (
	KeyTicks           = "sim.ticks"
	KeyPaused          = "sim.paused"
	KeyGoalsPlayer     = "score.player"
	KeyGoalsAI         = "score.ai"
	KeyPaddleHits      = "collision.paddle"
	KeyWallHits        = "collision.wall"
	KeyPowerUpsSpawned = "powerup.spawned"
	KeyPowerUpsTaken   = "powerup.collected"
	KeyBallsLive       = "balls.live"
	KeyBallResets      = "balls.reset"
	KeyNonFiniteResets = "balls.nonfinite"
	KeyPrimarySpeed    = "balls.primary_speed"
	KeyPeakSpeed       = "balls.peak_speed"
	KeyEffectsActive   = "effects.active"
	KeyFrameSteps      = "loop.steps_per_frame"
	KeyEventsDropped   = "loop.events_dropped"
)
