package component

import (
	"testing"

	"github.com/lixenwraith/teapong/vmath"
)

func TestIntentPacking(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		packed uint8
	}{
		{"Empty", Intent{}, 0},
		{"Up", Intent{Up: true}, 0x01},
		{"Down forward", Intent{Down: true, Forward: true}, 0x06},
		{"Backward pause", Intent{Backward: true, Pause: true}, 0x18},
		{"All", Intent{true, true, true, true, true}, 0x1f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.intent.Packed(); got != tt.packed {
				t.Errorf("Packed = %#x, want %#x", got, tt.packed)
			}
			if got := UnpackIntent(tt.packed); got != tt.intent {
				t.Errorf("UnpackIntent = %+v, want %+v", got, tt.intent)
			}
		})
	}

	if (Intent{Pause: true}).Moving() {
		t.Error("pause counted as movement")
	}
	if !(Intent{Backward: true}).Moving() {
		t.Error("backward not counted as movement")
	}
}

func TestScoreCredit(t *testing.T) {
	var s Score
	s.Credit(SidePlayer)
	s.Credit(SideAI)
	s.Credit(SideAI)
	if s != (Score{Player: 1, AI: 2}) {
		t.Errorf("score = %+v", s)
	}
}

func TestPaddleExtents(t *testing.T) {
	p := Paddle{Side: SideAI, HalfSize: vmath.V3(0.25, 3, 2)}
	if ext := p.Extents(); ext != vmath.V3(0.25, 3, 2) {
		t.Errorf("zero scale extents = %v", ext)
	}
	p.Scale = 1.5
	if ext := p.Extents(); ext != vmath.V3(0.25, 4.5, 3) {
		t.Errorf("scaled extents = %v", ext)
	}
	if p.FacingSign() != -1 {
		t.Error("AI paddle should face -x")
	}
	p.Side = SidePlayer
	if p.FacingSign() != 1 {
		t.Error("player paddle should face +x")
	}
}

func TestBallEffectiveVelocity(t *testing.T) {
	b := Ball{Velocity: vmath.V3(0.4, -0.2, 0.1)}
	if got := b.EffectiveVelocity(); got != b.Velocity {
		t.Errorf("unset scale changed velocity: %v", got)
	}
	b.SpeedScale = 0.5
	if got := b.EffectiveVelocity(); got != vmath.V3(0.2, -0.1, 0.05) {
		t.Errorf("slowed velocity = %v", got)
	}
	if !b.IsPrimary() {
		t.Error("group 0 ball not primary")
	}
	b.Group = 3
	if b.IsPrimary() {
		t.Error("multiball ball reported primary")
	}
}

func TestNames(t *testing.T) {
	if FaceRight.String() != "right" || Face(99).String() != "none" {
		t.Error("face names")
	}
	if SideAI.String() != "ai" || SidePlayer.String() != "player" {
		t.Error("side names")
	}
	if KindSlow.Message() != "Teapot Slowed Down!" || PowerUpKindCount.String() != "unknown" {
		t.Error("power-up names")
	}
}
