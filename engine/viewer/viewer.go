package viewer

import (
	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
	"github.com/Carmen-Shannon/oxy-starmap/engine/config"
	"github.com/Carmen-Shannon/oxy-starmap/engine/input"
	"github.com/Carmen-Shannon/oxy-starmap/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewer is the interactive star map shell around a camera.Controller. It owns the state the
// controller takes as arguments each frame (zoom, projection mode, elite movement, viewport)
// and tracks whether the view changed since the last frame was drawn.
type Viewer interface {
	// Controller returns the camera controller driven by the viewer.
	//
	// Returns:
	//   - camera.Controller: the controller
	Controller() camera.Controller

	// KeyDown handles a key press from the window: held keys feed keyboard motion, and the
	// toggle keys (P perspective, Space elite movement, X stop slews) act immediately and are
	// never held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyDown(keyCode uint32)

	// KeyUp handles a key release from the window.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// ReleaseKeys releases every held key, e.g. when the window loses focus.
	ReleaseKeys()

	// Tick advances keyboard motion and slews by dt.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//
	// Returns:
	//   - bool: true if the view changed
	Tick(dt float32) bool

	// Render draws a frame if the view changed since the last one: the model-view and
	// projection matrices are applied to r, the view uniform is written and the frame presented.
	//
	// Parameters:
	//   - r: the renderer to draw with
	//
	// Returns:
	//   - bool: true if a frame was presented
	//   - error: an error from presenting the frame
	Render(r renderer.Renderer) (bool, error)

	// Invalidate forces the next Render to draw.
	Invalidate()

	// Resize records a new viewport size. Zero sizes (minimized windows) suspend rendering.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	Resize(width, height int)

	// Scroll zooms in (positive) or out (negative) by the configured step per notch.
	//
	// Parameters:
	//   - delta: scroll notches
	Scroll(delta float32)

	// Zoom returns the current zoom factor.
	Zoom() float32

	// SetZoom sets the zoom factor, clamped to the configured range.
	SetZoom(zoom float32)

	// FlyTo slews the camera target to a real world position using the configured duration.
	//
	// Parameters:
	//   - pos: the destination
	FlyTo(pos mgl32.Vec3)

	// LookAt pans the camera to face a real world position.
	//
	// Parameters:
	//   - target: the position to face
	LookAt(target mgl32.Vec3)

	// InView reports whether a real world point lies inside the view frustum of the last
	// built matrices.
	InView(p mgl32.Vec3) bool

	// TargetInView reports whether the last fly-to or look-at destination is on screen.
	//
	// Returns:
	//   - inView: true if the destination lies inside the view frustum
	//   - ok: false if no fly-to or look-at was requested yet
	TargetInView() (inView, ok bool)

	// SetPerspective switches between the orthographic top-down view and the perspective
	// free-fly view. The projection is rebuilt at once when the viewport size is known.
	//
	// Parameters:
	//   - on: true for perspective
	SetPerspective(on bool)

	// Perspective reports the requested projection mode.
	Perspective() bool

	// SetElite enables or disables vertical-locked movement (perspective only).
	SetElite(on bool)

	// Elite reports whether vertical-locked movement is enabled.
	Elite() bool

	// ApplyConfig applies camera tuning and key bindings from c. The camera position and
	// direction in c are only used at construction.
	//
	// Parameters:
	//   - c: the configuration
	//
	// Returns:
	//   - error: an error if the key bindings do not resolve
	ApplyConfig(c *config.Config) error
}
