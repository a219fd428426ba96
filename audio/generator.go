package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/teapong/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveTriangle
	waveSaw
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveTriangle:
			buf[i] = 1.0 - 4.0*math.Abs(phase-0.5)
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// generateCue synthesizes a cue at its recipe gain
func generateCue(c Cue) floatBuffer {
	if c < 0 || c >= cueCount {
		return nil
	}
	recipe := cueSpecs[c]
	buf := oscillator(recipe.wave, recipe.freq, durationToSamples(recipe.duration))
	applyEnvelope(buf, parameter.ToneAttack, parameter.ToneRelease)
	for i := range buf {
		buf[i] *= recipe.gain
	}
	return buf
}
