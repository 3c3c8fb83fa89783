package input

import (
	"sort"
	"strings"
	"time"

	"mazehunt/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta / UI
	ActionHint
	ActionNewMaze
	ActionDump
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "k", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Both devices deliver one event per key press, so nothing is dropped yet.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim); NSEW words are added in init
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	"?":    ActionHint,
	"hint": ActionHint,

	"r":   ActionNewMaze,
	"new": ActionNewMaze,

	"d":    ActionDump,
	"dump": ActionDump,

	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// directionWords are bound through world.ParseDirection so the keyboard and
// the direction parser agree on names.
var directionWords = []string{"north", "n", "south", "s", "west", "w", "east", "e"}

func init() {
	for _, word := range directionWords {
		if d, ok := world.ParseDirection(word); ok {
			bindings[word] = MoveAction(d)
		}
	}
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a raw event through every layer
func IntentFor(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// Direction returns the maze direction of a movement action
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	default:
		return 0, false
	}
}

// MoveAction returns the movement action for a maze direction
func MoveAction(d world.Direction) Action {
	switch d {
	case world.North:
		return ActionMoveNorth
	case world.South:
		return ActionMoveSouth
	case world.West:
		return ActionMoveWest
	case world.East:
		return ActionMoveEast
	default:
		return ActionNone
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionHint:
		return "Hint"
	case ActionNewMaze:
		return "New Maze"
	case ActionDump:
		return "Dump Maze"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't change between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
