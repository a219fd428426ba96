package vmath

import (
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"Inside", 0.5, 0, 1, 0.5},
		{"Below", -2, -1, 1, -1},
		{"Above", 3, -1, 1, 1},
		{"On bound", 1, -1, 1, 1},
		{"Inverted range", 0, 1, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}

	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("integer Clamp = %d, want 10", got)
	}
}

func TestLerpAndSign(t *testing.T) {
	if got := Lerp(2.0, 4.0, 0.25); !near(got, 2.5) {
		t.Errorf("Lerp = %v, want 2.5", got)
	}
	if got := Lerp(-1.0, 1.0, 1.0); got != 1 {
		t.Errorf("Lerp at t=1 = %v, want 1", got)
	}

	for _, tt := range []struct {
		in, want float64
	}{{-3, -1}, {0, 0}, {0.1, 1}} {
		if got := Sign(tt.in); got != tt.want {
			t.Errorf("Sign(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := Sign(-7); got != -1 {
		t.Errorf("integer Sign = %d, want -1", got)
	}
}

func TestNormalize01(t *testing.T) {
	tests := []struct {
		name         string
		offset, half float64
		want         float64
	}{
		{"Center", 0, 10, 0.5},
		{"Low edge", -10, 10, 0},
		{"High edge", 10, 10, 1},
		{"Quarter", -5, 10, 0.25},
		{"Clamped above", 25, 10, 1},
		{"Clamped below", -25, 10, 0},
		{"Degenerate half", 3, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize01(tt.offset, tt.half); !near(got, tt.want) {
				t.Errorf("Normalize01(%v, %v) = %v, want %v", tt.offset, tt.half, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("NaN and Inf must not be finite")
	}
	if !V3IsFinite(V3(1, 2, 3)) {
		t.Error("finite vector reported non-finite")
	}
	if V3IsFinite(V3(0, math.NaN(), 0)) || V3IsFinite(V3(0, 0, math.Inf(-1))) {
		t.Error("vector with NaN or Inf reported finite")
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); !near(got, math.Pi) {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := DegToRad(-45); !near(got, -math.Pi/4) {
		t.Errorf("DegToRad(-45) = %v", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 0.5)

	if got := V3Add(a, b); got != V3(5, 1, 3.5) {
		t.Errorf("V3Add = %v", got)
	}
	if got := V3Sub(a, b); got != V3(-3, 3, 2.5) {
		t.Errorf("V3Sub = %v", got)
	}
	if got := V3Scale(a, 2); got != V3(2, 4, 6) {
		t.Errorf("V3Scale = %v", got)
	}
	if got := V3MagSq(a); !near(got, 14) {
		t.Errorf("V3MagSq = %v, want 14", got)
	}
	if got := V3Mag(V3(3, 4, 0)); !near(got, 5) {
		t.Errorf("V3Mag = %v, want 5", got)
	}
	if got := V3Dist(V3(1, 1, 1), V3(1, 4, 5)); !near(got, 5) {
		t.Errorf("V3Dist = %v, want 5", got)
	}

	// Operands are values, nothing aliases
	if a != V3(1, 2, 3) || b != V3(4, -1, 0.5) {
		t.Error("operands were modified")
	}
}

func TestV3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -10, 4)
	if got := V3Lerp(a, b, 0); got != a {
		t.Errorf("t=0 gave %v", got)
	}
	if got := V3Lerp(a, b, 1); got != b {
		t.Errorf("t=1 gave %v", got)
	}
	if got := V3Lerp(a, b, 0.5); got != V3(5, -5, 2) {
		t.Errorf("t=0.5 gave %v", got)
	}
}

func TestV3ClampComponents(t *testing.T) {
	got := V3ClampComponents(V3(2, -3, 0.5), 1.2)
	want := V3(1.2, -1.2, 0.5)
	if got != want {
		t.Errorf("V3ClampComponents = %v, want %v", got, want)
	}
}
