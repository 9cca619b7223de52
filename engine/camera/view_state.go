package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SlewTimer tracks one eased transition. Progress runs from 0 to 1; at 1 the timer is idle
// and Goal is stale.
type SlewTimer struct {
	Progress float32    // 0 -> 1
	Duration float32    // seconds, always > 0 while active
	Goal     mgl32.Vec3 // value reached at Progress == 1
}

// Active reports whether the timer still has distance to cover.
func (t SlewTimer) Active() bool {
	return t.Progress < 1
}

func idleTimer() SlewTimer {
	return SlewTimer{Progress: 1}
}

// ViewState is the complete camera state of one viewer: the point being looked at, the
// direction of the eye around it, the projection mode and the two slew timers.
//
// ViewState is a value type. Every operation is a method with a value receiver that returns
// the updated state, so a frame step can be computed and tested without side effects.
type ViewState struct {
	target      mgl32.Vec3 // internal frame, Y inverted
	direction   mgl32.Vec3 // degrees: X pitch, Y roll, Z yaw
	perspective bool

	positionSlew  SlewTimer
	directionSlew SlewTimer
}

// NewViewState returns the start-of-session state: origin, zero direction, orthographic,
// no slews in flight.
//
// Returns:
//   - ViewState: the initial state
func NewViewState() ViewState {
	return ViewState{
		positionSlew:  idleTimer(),
		directionSlew: idleTimer(),
	}
}

// Position returns the look-at target in real world coordinates (Y up).
func (s ViewState) Position() mgl32.Vec3 {
	return toRealWorld(s.target)
}

// Direction returns the camera direction in degrees (X pitch, Y roll, Z yaw).
func (s ViewState) Direction() mgl32.Vec3 {
	return s.direction
}

// InPerspectiveMode reports whether the perspective (free-fly) projection is active.
func (s ViewState) InPerspectiveMode() bool {
	return s.perspective
}

// InSlews reports whether either slew timer is active.
func (s ViewState) InSlews() bool {
	return s.positionSlew.Active() || s.directionSlew.Active()
}

// PositionSlew returns a copy of the position slew timer. Its Goal is in the internal frame.
func (s ViewState) PositionSlew() SlewTimer {
	return s.positionSlew
}

// DirectionSlew returns a copy of the direction slew timer.
func (s ViewState) DirectionSlew() SlewTimer {
	return s.directionSlew
}

// SetPosition replaces the target position. No animation, no clamping.
//
// Parameters:
//   - p: new target in real world coordinates
//
// Returns:
//   - ViewState: the updated state
func (s ViewState) SetPosition(p mgl32.Vec3) ViewState {
	s.target = toInternal(p)
	return s
}

// OffsetPosition adds a real world offset to the target position.
//
// Parameters:
//   - d: offset in real world coordinates
//
// Returns:
//   - ViewState: the updated state
func (s ViewState) OffsetPosition(d mgl32.Vec3) ViewState {
	s.target = s.target.Add(toInternal(d))
	return s
}

// SetDirection replaces the direction outright. The pitch is NOT clamped: this is the
// bypass for callers that restore an already valid direction.
//
// Parameters:
//   - d: direction in degrees
//
// Returns:
//   - ViewState: the updated state
func (s ViewState) SetDirection(d mgl32.Vec3) ViewState {
	s.direction = d
	return s
}
