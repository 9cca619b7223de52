package camera

import "github.com/go-gl/mathgl/mgl32"

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithPosition sets the initial look-at target.
//
// Parameters:
//   - x, y, z: target in real world coordinates
//
// Returns:
//   - ControllerOption: functional option to set the position
func WithPosition(x, y, z float32) ControllerOption {
	return func(c *controllerImpl) {
		c.state = c.state.SetPosition(mgl32.Vec3{x, y, z})
	}
}

// WithDirection sets the initial direction. The pitch is clamped to [0, 180].
//
// Parameters:
//   - pitch, roll, yaw: angles in degrees
//
// Returns:
//   - ControllerOption: functional option to set the direction
func WithDirection(pitch, roll, yaw float32) ControllerOption {
	return func(c *controllerImpl) {
		c.state = c.state.SetDirection(mgl32.Vec3{clampPitch(pitch), roll, yaw})
	}
}

// WithState replaces the whole initial state, e.g. one computed headlessly.
//
// Parameters:
//   - s: the state to start from
//
// Returns:
//   - ControllerOption: functional option to set the state
func WithState(s ViewState) ControllerOption {
	return func(c *controllerImpl) {
		c.state = s
	}
}
