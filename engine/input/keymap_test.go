package input

import (
	"reflect"
	"testing"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
)

func TestKeyState(t *testing.T) {
	k := NewKeyState()
	k.KeyDown(common.KeyW)
	k.KeyDown(common.KeyA)
	k.KeyUp(common.KeyA)

	if !k.Pressed(common.KeyW) {
		t.Error("W should be held")
	}
	if k.Pressed(common.KeyA) {
		t.Error("A should be released")
	}

	k.Reset()
	if k.Pressed(common.KeyW) {
		t.Error("reset should release every key")
	}
}

func TestSnapshot(t *testing.T) {
	testCases := map[string]struct {
		held     []uint32
		expected camera.Actions
	}{
		"Nothing":       {},
		"Forward":       {held: []uint32{common.KeyW}, expected: camera.ActionForward},
		"EitherUpKey":   {held: []uint32{common.KeyPageUp}, expected: camera.ActionUp},
		"BothShifts":    {held: []uint32{common.KeyLeftShift, common.KeyRightShift}, expected: camera.ActionModifier},
		"StrafeAndTurn": {held: []uint32{common.KeyD, common.KeyLeft}, expected: camera.ActionRight | camera.ActionYawLeft},
		"Opposed":       {held: []uint32{common.KeyQ, common.KeyE}, expected: camera.ActionRollLeft | camera.ActionRollRight},
		"Unbound":       {held: []uint32{common.KeyZ}},
	}

	keymap := DefaultKeymap()
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			state := NewKeyState()
			for _, code := range tt.held {
				state.KeyDown(code)
			}
			if got := keymap.Snapshot(state); got != tt.expected {
				t.Errorf("expected %b, got %b", tt.expected, got)
			}
		})
	}
}

func TestParseKeymap(t *testing.T) {
	testCases := map[string]struct {
		bindings  map[string][]string
		expectErr bool
		check     camera.Actions
		expected  []uint32
	}{
		"Empty": {
			check:    camera.ActionForward,
			expected: []uint32{common.KeyW},
		},
		"Override": {
			bindings: map[string][]string{"forward": {"up", "w"}},
			check:    camera.ActionForward,
			expected: []uint32{common.KeyUp, common.KeyW},
		},
		"Unbind": {
			bindings: map[string][]string{"modifier": {}},
			check:    camera.ActionModifier,
			expected: []uint32{},
		},
		"UnknownAction": {
			bindings:  map[string][]string{"jump": {"space"}},
			expectErr: true,
		},
		"UnknownKey": {
			bindings:  map[string][]string{"forward": {"hyper"}},
			expectErr: true,
		},
		"ReservedSpace": {
			bindings:  map[string][]string{"up": {"space"}},
			expectErr: true,
		},
		"ReservedAmongOthers": {
			bindings:  map[string][]string{"forward": {"w", "p"}},
			expectErr: true,
		},
		"ReservedEscape": {
			bindings:  map[string][]string{"down": {"escape"}},
			expectErr: true,
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			k, err := ParseKeymap(tt.bindings)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := k[tt.check]; !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if got := k[camera.ActionYawLeft]; !reflect.DeepEqual(got, []uint32{common.KeyLeft}) {
				t.Errorf("untouched actions should keep defaults, got %v", got)
			}
		})
	}
}

func TestActionNames(t *testing.T) {
	for name, action := range actionNames {
		if got := ActionName(action); got != name {
			t.Errorf("ActionName(%b): expected %q, got %q", action, name, got)
		}
	}
	if _, ok := ActionByName("teleport"); ok {
		t.Error("unknown action resolved")
	}
}

func TestKeymapNames(t *testing.T) {
	names := DefaultKeymap().Names()
	if got := names["up"]; !reflect.DeepEqual(got, []string{"r", "pageup"}) {
		t.Errorf("unexpected up keys %v", got)
	}
	if len(names) != len(actionNames) {
		t.Errorf("expected %d actions, got %d", len(actionNames), len(names))
	}
}

func TestReserved(t *testing.T) {
	for _, code := range []uint32{KeyTogglePerspective, KeyToggleElite, KeyCancelSlews, KeyClose} {
		if _, ok := reservedKeys[code]; !ok {
			t.Errorf("key %d should be reserved", code)
		}
	}
	for action, codes := range DefaultKeymap() {
		for _, code := range codes {
			if _, ok := reservedKeys[code]; ok {
				t.Errorf("default binding for %s uses reserved key %d", ActionName(action), code)
			}
		}
	}
}
