package input

// Action is what a bound key does
type Action uint8

const (
	ActionNone Action = iota

	// Held movement, folded into the per-frame intent
	ActionUp
	ActionDown
	ActionForward
	ActionBackward

	// One-shot, consumed by the next intent
	ActionPause

	// Commands, handed to the caller to run on the loop goroutine
	ActionQuit
	ActionRestart
	ActionCamera
	ActionBounds
	ActionSound
)

// IsMovement reports whether the action feeds a held movement flag
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionBackward
}

// IsCommand reports whether the action is a UI command rather than game input
func (a Action) IsCommand() bool {
	return a >= ActionQuit
}

// actionRegistry maps canonical action names used in the [keys] config table
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"up":       ActionUp,
	"down":     ActionDown,
	"forward":  ActionForward,
	"backward": ActionBackward,
	"pause":    ActionPause,

	"quit":          ActionQuit,
	"restart":       ActionRestart,
	"cycle_camera":  ActionCamera,
	"toggle_bounds": ActionBounds,
	"toggle_sound":  ActionSound,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
