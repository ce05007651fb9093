package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent of the player.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Meta / UI
	ActionRegenerate
	ActionQuit
	ActionZoomIn
	ActionZoomOut
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// IsMove returns true for the four movement actions
func (i Intent) IsMove() bool {
	return i.Action >= ActionMoveUp && i.Action <= ActionMoveRight
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "w", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Ebiten's inpututil and the terminal's one-key-per-read already debounce, so
// this only drops the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reserved codes always keep their action
var reserved = map[string]Action{
	"arrow_up":    ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"escape":      ActionQuit,
	"ctrl_c":      ActionQuit,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,

	"r": ActionRegenerate,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	// Zoom
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

var actionNames = map[Action]string{
	ActionMoveUp:     "Move Up",
	ActionMoveDown:   "Move Down",
	ActionMoveLeft:   "Move Left",
	ActionMoveRight:  "Move Right",
	ActionRegenerate: "Regenerate",
	ActionQuit:       "Quit",
	ActionZoomIn:     "Zoom In",
	ActionZoomOut:    "Zoom Out",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// ActionByName is the reverse of ActionName
func ActionByName(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't change between runs
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes (arrows, escape, ctrl+c) can neither be removed nor
// rebound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if _, ok := reserved[c]; ok {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if _, ok := reserved[code]; code != "" && !ok {
		bindings[code] = action
	}
}

// Repeat reports whether a key held for duration ticks fires on this tick:
// on the first tick, then every interval ticks once delay has passed.
func Repeat(duration, delay, interval int) bool {
	if duration == 1 {
		return true
	}
	if duration < delay || interval <= 0 {
		return false
	}
	return (duration-delay)%interval == 0
}
