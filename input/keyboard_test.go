package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/teapong/parameter"
)

func TestKeyboardHoldWindow(t *testing.T) {
	k := NewKeyboard(nil)
	k.Press(ActionUp)

	for i := 0; i < parameter.InputHoldTicks; i++ {
		if in := k.Intent(); !in.Up {
			t.Fatalf("frame %d: expected Up held", i)
		}
	}
	if in := k.Intent(); in.Up {
		t.Error("expected Up released after hold window")
	}
}

func TestKeyboardOppositeReleases(t *testing.T) {
	k := NewKeyboard(nil)
	k.Press(ActionUp)
	k.Press(ActionDown)

	in := k.Intent()
	if in.Up || !in.Down {
		t.Errorf("expected only Down, got %+v", in)
	}

	k.Press(ActionForward)
	k.Press(ActionBackward)
	in = k.Intent()
	if in.Forward || !in.Backward {
		t.Errorf("expected only Backward, got %+v", in)
	}
}

func TestKeyboardPauseIsOneShot(t *testing.T) {
	k := NewKeyboard(nil)
	k.Press(ActionPause)

	if in := k.Intent(); !in.Pause {
		t.Fatal("expected Pause on first frame")
	}
	if in := k.Intent(); in.Pause {
		t.Error("Pause must be consumed")
	}

	k.Press(ActionPause)
	k.Press(ActionPause)
	if in := k.Intent(); in.Pause {
		t.Error("double press within a frame should cancel")
	}
}

func TestKeyboardCommandsPassThrough(t *testing.T) {
	k := NewKeyboard(nil)
	tests := []Action{ActionQuit, ActionRestart, ActionCamera, ActionBounds, ActionSound}
	for _, a := range tests {
		if got := k.Press(a); got != a {
			t.Errorf("Press(%v) = %v, want %v", a, got, a)
		}
	}
	if in := k.Intent(); in.Moving() || in.Pause {
		t.Errorf("commands must not touch intent, got %+v", in)
	}
}

func TestKeyboardIgnoresNonKeyEvents(t *testing.T) {
	k := NewKeyboard(nil)
	if got := k.HandleEvent(tcell.NewEventResize(80, 24)); got != ActionNone {
		t.Errorf("resize event produced %v", got)
	}
}

func TestKeyboardReset(t *testing.T) {
	k := NewKeyboard(nil)
	k.Press(ActionForward)
	k.Press(ActionPause)
	k.Reset()
	if in := k.Intent(); in.Moving() || in.Pause {
		t.Errorf("expected empty intent after reset, got %+v", in)
	}
}

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyUp, 0, ActionUp},
		{tcell.KeyDown, 0, ActionDown},
		{tcell.KeyRight, 0, ActionForward},
		{tcell.KeyLeft, 0, ActionBackward},
		{tcell.KeyEscape, 0, ActionPause},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'p', ActionPause},
		{tcell.KeyRune, 'r', ActionRestart},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'x', ActionNone},
	}
	for _, tt := range tests {
		if got := kt.Lookup(tt.key, tt.r); got != tt.want {
			t.Errorf("Lookup(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestWithBindings(t *testing.T) {
	base := DefaultKeyTable()
	kt, err := WithBindings(base, map[string]string{
		"k":     "up",
		"j":     "down",
		"w":     "none",
		"space": "pause",
		"Esc":   "quit",
	})
	if err != nil {
		t.Fatalf("WithBindings: %v", err)
	}

	if kt.Runes['k'] != ActionUp || kt.Runes['j'] != ActionDown {
		t.Error("rune overrides not applied")
	}
	if _, ok := kt.Runes['w']; ok {
		t.Error("'none' should unbind w")
	}
	if kt.Runes[' '] != ActionPause {
		t.Error("space alias not resolved")
	}
	if kt.SpecialKeys[tcell.KeyEscape] != ActionQuit {
		t.Error("special key override not applied")
	}

	// Base must be untouched
	if base.Runes['w'] != ActionUp {
		t.Error("base table modified")
	}
}

func TestWithBindingsErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
	}{
		{"unknown action", map[string]string{"k": "jump"}},
		{"bad key", map[string]string{"kk": "up"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := WithBindings(DefaultKeyTable(), tt.bindings); err == nil {
				t.Error("expected error")
			}
		})
	}
}
