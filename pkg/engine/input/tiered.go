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
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Drafting
	ActionConfirm     // Confirm the highlighted draft candidate (Enter)
	ActionReroll      // Redraw the draft candidates, spending a die (R)
	ActionSelectLeft  // Move the draft cursor left
	ActionSelectRight // Move the draft cursor right

	// Meta / UI
	ActionInteract        // Interact with the object in the current room (E, Space)
	ActionToggleInventory // Show/hide the inventory panel (I)
	ActionDumpMap         // Dump the board to the terminal (F8)
	ActionQuit
	ActionZoomIn    // Zoom in (increase tile size)
	ActionZoomOut   // Zoom out (decrease tile size)
	ActionZoomReset // Restore the default tile size
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "KeyW", "arrow_up", "GamepadDPadUp").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// For this turn‑based game, we treat each RawInput as already debounced by
// the underlying libraries (Ebiten, terminal raw mode), but keep a distinct
// type to make the layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
// At the moment this is a thin wrapper, but it is the right place to add
// key‑repeat suppression or timing based logic later.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. Movement covers arrows,
// QWERTY (WASD) and AZERTY (ZQSD) at the same time; the overlapping keys
// (S and D) agree between the two layouts.
var bindings = map[string]Action{
	// Movement
	"arrow_up":   ActionMoveNorth,
	"w":          ActionMoveNorth,
	"z":          ActionMoveNorth,
	"arrow_down": ActionMoveSouth,
	"s":          ActionMoveSouth,
	"arrow_left": ActionMoveWest,
	"a":          ActionMoveWest,
	"q":          ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	// Drafting
	"enter": ActionConfirm,
	"r":     ActionReroll,

	// Interaction
	"e":     ActionInteract,
	"space": ActionInteract,

	// UI
	"i":      ActionToggleInventory,
	"f8":     ActionDumpMap,
	"escape": ActionQuit,
	"quit":   ActionQuit,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"0":               ActionZoomReset,
	"numpad_0":        ActionZoomReset,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,
	"gamepad_a":          ActionConfirm,
	"gamepad_x":          ActionInteract,
	"gamepad_y":          ActionReroll,
	"gamepad_b":          ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
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
	case ActionConfirm:
		return "Confirm"
	case ActionReroll:
		return "Reroll"
	case ActionSelectLeft:
		return "Select Left"
	case ActionSelectRight:
		return "Select Right"
	case ActionInteract:
		return "Interact"
	case ActionToggleInventory:
		return "Inventory"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Reset Zoom"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
