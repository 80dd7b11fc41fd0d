package input

import (
	"sort"
	"strings"
	"time"

	"darkstation/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
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

	// Turn actions
	ActionWait
	ActionInteract
	ActionUseMedGel
	ActionUseEMP // Needs a target point
	ActionPeek   // Needs a direction
	ActionFire   // Needs a direction
	ActionToggleWeapon

	// Meta / UI
	ActionHelp
	ActionMapDump
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Dir and Target are filled in by the client for actions that need them.
type Intent struct {
	Action Action
	Dir    world.Direction
	Target world.Point
}

// NeedsDirection returns true for actions that take a direction
func (a Action) NeedsDirection() bool {
	return a == ActionPeek || a == ActionFire
}

// NeedsTarget returns true for actions that take a map point
func (a Action) NeedsTarget() bool {
	return a == ActionUseEMP
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Terminal raw mode already delivers one event per key press.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	".":     ActionWait,
	"space": ActionWait,

	"e":     ActionInteract,
	"enter": ActionInteract,

	"1": ActionUseMedGel,
	"2": ActionUseEMP,
	"3": ActionToggleWeapon,
	"p": ActionPeek,
	"f": ActionFire,

	"?": ActionHelp,
	"m": ActionMapDump,

	"q":      ActionQuit,
	"escape": ActionQuit,
}

var bindings = cloneBindings(defaultBindings)

func cloneBindings(src map[string]Action) map[string]Action {
	out := make(map[string]Action, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = cloneBindings(defaultBindings)
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

var actionNames = map[Action]string{
	ActionMoveNorth:    "Move North",
	ActionMoveSouth:    "Move South",
	ActionMoveWest:     "Move West",
	ActionMoveEast:     "Move East",
	ActionWait:         "Wait",
	ActionInteract:     "Interact",
	ActionUseMedGel:    "Use Med-gel",
	ActionUseEMP:       "Use EMP",
	ActionPeek:         "Peek",
	ActionFire:         "Fire",
	ActionToggleWeapon: "Toggle Weapon",
	ActionHelp:         "Help",
	ActionMapDump:      "Map Dump",
	ActionQuit:         "Quit",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// ParseAction looks an action up by its ActionName, ignoring case, spaces and dashes
func ParseAction(name string) (Action, bool) {
	norm := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		return strings.ReplaceAll(s, "-", "")
	}
	want := norm(name)
	for a, n := range actionNames {
		if norm(n) == want {
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
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys are reserved and keep their bindings.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if strings.HasPrefix(c, "arrow_") {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !strings.HasPrefix(code, "arrow_") {
		bindings[code] = action
	}
}
