package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA = 65 // A key (ASCII)
	KeyD = 68 // D key (ASCII)
	KeyE = 69 // E key (ASCII)
	KeyF = 70 // F key (ASCII)
	KeyP = 80 // P key (ASCII)
	KeyQ = 81 // Q key (ASCII)
	KeyR = 82 // R key (ASCII)
	KeyS = 83 // S key (ASCII)
	KeyW = 87 // W key (ASCII)
	KeyX = 88 // X key (ASCII)
	KeyZ = 90 // Z key (ASCII)

	KeySpace  = 32  // Spacebar (ASCII)
	KeyEsc    = 256 // Escape key (GLFW)
	KeyRight  = 262 // Right arrow (GLFW)
	KeyLeft   = 263 // Left arrow (GLFW)
	KeyDown   = 264 // Down arrow (GLFW)
	KeyUp     = 265 // Up arrow (GLFW)
	KeyPageUp = 266 // Page Up (GLFW)
	KeyPageDn = 267 // Page Down (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// namedKeys maps the names accepted in configuration files to key codes.
var namedKeys = map[string]uint32{
	"space":         KeySpace,
	"escape":        KeyEsc,
	"right":         KeyRight,
	"left":          KeyLeft,
	"down":          KeyDown,
	"up":            KeyUp,
	"pageup":        KeyPageUp,
	"pagedown":      KeyPageDn,
	"left_shift":    KeyLeftShift,
	"right_shift":   KeyRightShift,
	"left_control":  KeyLeftControl,
	"right_control": KeyRightControl,
}

// KeyByName resolves a key name from a configuration file to its key code.
// Single letters and digits resolve to their ASCII code; other keys use the lower-case
// names listed in namedKeys (e.g. "left", "pageup", "left_shift").
//
// Parameters:
//   - name: key name, case-insensitive
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyByName(name string) (uint32, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint32(c - 'a' + 'A'), true
		case c >= '0' && c <= '9':
			return uint32(c), true
		}
	}
	code, ok := namedKeys[n]
	return code, ok
}

// KeyName returns the configuration name of a key code, or "" if it has none.
//
// Parameters:
//   - code: the key code
//
// Returns:
//   - string: the key name
func KeyName(code uint32) string {
	switch {
	case code >= 'A' && code <= 'Z':
		return string(rune(code - 'A' + 'a'))
	case code >= '0' && code <= '9':
		return string(rune(code))
	}
	for name, c := range namedKeys {
		if c == code {
			return name
		}
	}
	return ""
}
