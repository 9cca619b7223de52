package input

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
)

// actionNames are the names used for actions in configuration files.
var actionNames = map[string]camera.Actions{
	"yaw_left":   camera.ActionYawLeft,
	"yaw_right":  camera.ActionYawRight,
	"pitch_up":   camera.ActionPitchUp,
	"pitch_down": camera.ActionPitchDown,
	"roll_left":  camera.ActionRollLeft,
	"roll_right": camera.ActionRollRight,
	"left":       camera.ActionLeft,
	"right":      camera.ActionRight,
	"forward":    camera.ActionForward,
	"backward":   camera.ActionBackward,
	"up":         camera.ActionUp,
	"down":       camera.ActionDown,
	"modifier":   camera.ActionModifier,
}

// Keys reserved for viewer toggles. They cannot be bound to actions.
const (
	KeyTogglePerspective uint32 = common.KeyP
	KeyToggleElite       uint32 = common.KeySpace
	KeyCancelSlews       uint32 = common.KeyX
	KeyClose             uint32 = common.KeyEsc
)

var reservedKeys = map[uint32]string{
	KeyTogglePerspective: "the perspective toggle",
	KeyToggleElite:       "the elite movement toggle",
	KeyCancelSlews:       "cancelling slews",
	KeyClose:             "closing the window",
}

// ActionByName resolves a configuration action name.
//
// Parameters:
//   - name: action name, e.g. "forward" or "yaw_left"
//
// Returns:
//   - camera.Actions: the single action flag
//   - bool: false if the name is unknown
func ActionByName(name string) (camera.Actions, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// ActionName returns the configuration name of a single action flag, or "" if it has none.
func ActionName(a camera.Actions) string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return ""
}

// Keymap binds each action to the keys that trigger it. Any bound key triggers the action.
type Keymap map[camera.Actions][]uint32

// DefaultKeymap returns the stock bindings: WASD to move, R/F and PageUp/PageDown to rise and
// sink, arrow keys to yaw and pitch, Q/E to roll and either shift key to double speed.
//
// Returns:
//   - Keymap: a fresh map the caller may modify
func DefaultKeymap() Keymap {
	return Keymap{
		camera.ActionForward:   {common.KeyW},
		camera.ActionBackward:  {common.KeyS},
		camera.ActionLeft:      {common.KeyA},
		camera.ActionRight:     {common.KeyD},
		camera.ActionUp:        {common.KeyR, common.KeyPageUp},
		camera.ActionDown:      {common.KeyF, common.KeyPageDn},
		camera.ActionYawLeft:   {common.KeyLeft},
		camera.ActionYawRight:  {common.KeyRight},
		camera.ActionPitchUp:   {common.KeyUp},
		camera.ActionPitchDown: {common.KeyDown},
		camera.ActionRollLeft:  {common.KeyQ},
		camera.ActionRollRight: {common.KeyE},
		camera.ActionModifier:  {common.KeyLeftShift, common.KeyRightShift},
	}
}

// ParseKeymap builds a Keymap from action names to key names, starting from the defaults.
// Actions present in bindings replace the default keys for that action; an empty list unbinds it.
// Reserved toggle keys are rejected.
//
// Parameters:
//   - bindings: action name to key names
//
// Returns:
//   - Keymap: the resolved bindings
//   - error: an error naming the first unknown action, unknown key or reserved key
func ParseKeymap(bindings map[string][]string) (Keymap, error) {
	k := DefaultKeymap()

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := ActionByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		codes := make([]uint32, 0, len(bindings[name]))
		for _, keyName := range bindings[name] {
			code, ok := common.KeyByName(keyName)
			if !ok {
				return nil, fmt.Errorf("unknown key %q for action %q", keyName, name)
			}
			if use, reserved := reservedKeys[code]; reserved {
				return nil, fmt.Errorf("key %q for action %q is reserved for %s", keyName, name, use)
			}
			codes = append(codes, code)
		}
		k[action] = codes
	}
	return k, nil
}

// Snapshot returns the set of actions whose keys are currently held.
//
// Parameters:
//   - state: the live key state
//
// Returns:
//   - camera.Actions: the held actions
func (k Keymap) Snapshot(state KeyState) camera.Actions {
	var actions camera.Actions
	for action, codes := range k {
		for _, code := range codes {
			if state.Pressed(code) {
				actions |= action
				break
			}
		}
	}
	return actions
}

// Names returns the bindings as action name to key names, for display.
func (k Keymap) Names() map[string][]string {
	out := make(map[string][]string, len(k))
	for action, codes := range k {
		name := ActionName(action)
		if name == "" {
			continue
		}
		keys := make([]string, 0, len(codes))
		for _, code := range codes {
			keys = append(keys, common.KeyName(code))
		}
		out[name] = keys
	}
	return out
}
