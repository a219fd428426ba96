package audio

import (
	"time"

	"github.com/lixenwraith/teapong/parameter"
)

// Cue identifies a short game sound
type Cue int

const (
	CuePaddle Cue = iota
	CueWall
	CueGoal
	CuePowerUp

	cueCount
)

func (c Cue) String() string {
	switch c {
	case CuePaddle:
		return "paddle"
	case CueWall:
		return "wall"
	case CueGoal:
		return "goal"
	case CuePowerUp:
		return "powerup"
	}
	return "unknown"
}

// cueSpec is the synthesis recipe of one cue
type cueSpec struct {
	wave     int
	freq     float64
	duration time.Duration
	gain     float64
}

var cueSpecs = [cueCount]cueSpec{
	CuePaddle:  {waveSquare, parameter.PaddleToneHz, parameter.PaddleToneDuration, 0.6},
	CueWall:    {waveSine, parameter.WallToneHz, parameter.WallToneDuration, 0.4},
	CueGoal:    {waveTriangle, parameter.GoalToneHz, parameter.GoalToneDuration, 1.0},
	CuePowerUp: {waveSaw, parameter.PowerUpToneHz, parameter.PowerUpToneDuration, 0.6},
}
