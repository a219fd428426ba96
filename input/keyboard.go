package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/parameter"
)

// Keyboard turns terminal key events into per-frame paddle intent
// Terminals report presses and auto-repeat but no release, so each press keeps its
// movement flag alive for a hold window of frames
// HandleEvent runs on the poll goroutine, Intent on the loop goroutine
type Keyboard struct {
	mu    sync.Mutex
	table *KeyTable

	holdFrames int
	hold       [4]int // remaining frames, indexed by action - ActionUp
	pause      bool
}

// NewKeyboard creates a keyboard over a key table, nil selects the defaults
func NewKeyboard(table *KeyTable) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{
		table:      table,
		holdFrames: parameter.InputHoldTicks,
	}
}

// HandleEvent processes one terminal event
// Returns the command action for the caller to run, ActionNone otherwise
func (k *Keyboard) HandleEvent(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	return k.Press(k.table.Lookup(key.Key(), key.Rune()))
}

// Press applies an action as if its key had been hit
func (k *Keyboard) Press(a Action) Action {
	switch {
	case a == ActionNone:
		return ActionNone
	case a.IsCommand():
		return a
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if a == ActionPause {
		// Two presses within one frame cancel out
		k.pause = !k.pause
		return ActionNone
	}

	k.hold[a-ActionUp] = k.holdFrames
	// Pressing a direction releases its opposite immediately
	k.hold[opposite(a)-ActionUp] = 0
	return ActionNone
}

func opposite(a Action) Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionForward:
		return ActionBackward
	default:
		return ActionForward
	}
}

// Intent returns the snapshot for the next frame and ages the hold window
func (k *Keyboard) Intent() component.Intent {
	k.mu.Lock()
	defer k.mu.Unlock()

	in := component.Intent{
		Up:       k.hold[ActionUp-ActionUp] > 0,
		Down:     k.hold[ActionDown-ActionUp] > 0,
		Forward:  k.hold[ActionForward-ActionUp] > 0,
		Backward: k.hold[ActionBackward-ActionUp] > 0,
		Pause:    k.pause,
	}
	for i := range k.hold {
		if k.hold[i] > 0 {
			k.hold[i]--
		}
	}
	k.pause = false
	return in
}

// Reset releases every held flag and drops a pending pause
func (k *Keyboard) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.hold = [4]int{}
	k.pause = false
}
