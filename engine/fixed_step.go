package engine

import "time"

// FixedStep converts variable frame deltas into whole simulation steps
// Remainder time carries over to the next frame; a frame that would need more than maxSteps
// drops the backlog instead of spiralling
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	maxSteps    int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS
func NewFixedStep(tps, maxSteps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &FixedStep{
		step:     time.Second / time.Duration(tps),
		maxSteps: maxSteps,
	}
}

// Advance adds dt and returns how many steps are due
func (f *FixedStep) Advance(dt time.Duration) int {
	if dt > 0 {
		f.accumulator += dt
	}
	n := int(f.accumulator / f.step)
	if n > f.maxSteps {
		n = f.maxSteps
		f.accumulator %= f.step
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Alpha is the fraction of a step left in the accumulator, for render interpolation
func (f *FixedStep) Alpha() float64 {
	return float64(f.accumulator) / float64(f.step)
}

// Step returns the fixed step duration
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Reset discards accumulated time
func (f *FixedStep) Reset() {
	f.accumulator = 0
}
