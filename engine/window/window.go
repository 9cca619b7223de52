package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window is the star map's native window: it owns the event loop and forwards
// keyboard, scroll, focus and framebuffer size events to registered callbacks.
type Window interface {
	// SetUpdateCallback sets the function run on the window thread after each event poll.
	// Window calls that must happen on that thread (SetTitle) belong here.
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called with the new framebuffer size in pixels.
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the function called with vertical wheel notches (positive = away from the user).
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the function called once per key press. Auto-repeat is not forwarded,
	// so toggle keys flip exactly once per press.
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the function called on key release.
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetFocusCallback sets the function called on focus changes. Releases are not delivered
	// while unfocused, so held keys should be dropped when focus is lost.
	SetFocusCallback(callback func(focused bool))

	// SetTitle changes the title bar text. Must be called from the window thread.
	SetTitle(title string)

	// SurfaceDescriptor returns the platform surface descriptor for WebGPU surface creation.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil before the window exists
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	IsRunning() bool

	// Close destroys the window and shuts down the platform layer.
	//
	// Returns:
	//   - error: an error if the window was never created
	Close() error

	// ProcessMessages polls events until the window closes, running the update callback after each poll.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// callbacks are the event sinks registered on a window. Nil entries drop the event.
type callbacks struct {
	update  func()
	resize  func(width, height int)
	scroll  func(delta float32)
	keyDown func(keyCode uint32)
	keyUp   func(keyCode uint32)
	focus   func(focused bool)
}

// engineWindow implements Window on top of a platform window.
type engineWindow struct {
	title string

	// size limits applied to user resizing
	minWidth, minHeight int
	maxWidth, maxHeight int

	// framebuffer size, updated on resize
	width, height int

	// closeKey closes the window when pressed; 0 disables it.
	closeKey uint32

	// platform holds the platform window (glfwWindow).
	platform any

	on callbacks
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a window. Options are applied over the defaults:
// a 1280x720 "Star Map" window, resizable between 320x200 and 7680x4320, closed by Escape.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Star Map",
		width:     1280,
		height:    720,
		minWidth:  320,
		minHeight: 200,
		maxWidth:  7680,
		maxHeight: 4320,
		closeKey:  common.KeyEsc,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) { w.on.update = callback }

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) { w.on.resize = callback }

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) { w.on.scroll = callback }

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) { w.on.keyDown = callback }

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) { w.on.keyUp = callback }

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) { w.on.focus = callback }

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformRunning(w)
}

func (w *engineWindow) Close() error {
	return platformClose(w)
}

func (w *engineWindow) ProcessMessages() {
	for platformPoll(w) {
		if w.on.update != nil {
			w.on.update()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int { return w.width }

func (w *engineWindow) Height() int { return w.height }

// handleKey routes a key transition, returning true if the key closed the window.
func (w *engineWindow) handleKey(code uint32, pressed bool) bool {
	if pressed && w.closeKey != 0 && code == w.closeKey {
		return true
	}
	switch {
	case pressed && w.on.keyDown != nil:
		w.on.keyDown(code)
	case !pressed && w.on.keyUp != nil:
		w.on.keyUp(code)
	}
	return false
}

// handleResize records a framebuffer size and forwards it.
func (w *engineWindow) handleResize(width, height int) {
	w.width, w.height = width, height
	if w.on.resize != nil {
		w.on.resize(width, height)
	}
}
