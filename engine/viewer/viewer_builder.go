package viewer

import (
	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
	"github.com/Carmen-Shannon/oxy-starmap/engine/config"
	"github.com/Carmen-Shannon/oxy-starmap/engine/input"
)

// ViewerOption is a functional option for configuring a Viewer.
type ViewerOption func(*viewerImpl)

// WithConfig applies a configuration, including the initial zoom, camera position and
// direction. Panics if the key bindings do not resolve; Load already validates them.
//
// Parameters:
//   - c: the configuration
//
// Returns:
//   - ViewerOption: option function to apply
func WithConfig(c *config.Config) ViewerOption {
	return func(v *viewerImpl) {
		v.zoom = c.Camera.Zoom
		if err := v.applyConfig(c); err != nil {
			panic(err)
		}
		pos, dir := c.Camera.Position, c.Camera.Direction
		v.controller = camera.NewController(
			camera.WithPosition(pos[0], pos[1], pos[2]),
			camera.WithDirection(dir[0], dir[1], dir[2]),
		)
	}
}

// WithController drives an existing controller.
func WithController(c camera.Controller) ViewerOption {
	return func(v *viewerImpl) {
		v.controller = c
	}
}

// WithKeyState reads held keys from an existing key state.
func WithKeyState(k input.KeyState) ViewerOption {
	return func(v *viewerImpl) {
		v.keys = k
	}
}

// WithSize sets the initial viewport size.
func WithSize(width, height int) ViewerOption {
	return func(v *viewerImpl) {
		v.width, v.height = width, height
	}
}
