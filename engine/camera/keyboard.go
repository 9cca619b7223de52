package camera

import (
	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Actions is the set of discrete input actions held during one tick.
type Actions uint16

const (
	ActionYawLeft Actions = 1 << iota
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionRollLeft
	ActionRollRight
	ActionLeft
	ActionRight
	ActionForward
	ActionBackward
	ActionUp
	ActionDown
	// ActionModifier doubles the movement speed.
	ActionModifier
)

const (
	// turnRate is the rotation speed in degrees per millisecond.
	turnRate = 0.075
	// minMoveZoom and maxMoveZoom bound the zoom used to scale movement speed.
	minMoveZoom = 0.01
	maxMoveZoom = 15.0
)

// Has reports whether every action in a is set.
func (s Actions) Has(a Actions) bool {
	return s&a == a
}

// axis returns +1 if only pos is held, -1 if only neg is held, 0 otherwise.
func (s Actions) axis(neg, pos Actions) float32 {
	var v float32
	if s.Has(pos) {
		v++
	}
	if s.Has(neg) {
		v--
	}
	return v
}

// turnVector returns the rotation, in degrees, requested by the held turn actions.
func turnVector(actions Actions, elapsedMs float32) mgl32.Vec3 {
	angle := elapsedMs * turnRate
	return mgl32.Vec3{
		actions.axis(ActionPitchDown, ActionPitchUp) * angle,
		actions.axis(ActionRollLeft, ActionRollRight) * angle,
		actions.axis(ActionYawLeft, ActionYawRight) * angle,
	}
}

// movementVector returns the camera-local translation requested by the held movement
// actions: X left/right, Y forward/backward, Z up/down. Its length per axis is
// elapsedMs / clamp(zoom, 0.01, 15), doubled while the modifier is held.
func movementVector(actions Actions, elapsedMs, zoom float32) mgl32.Vec3 {
	distance := elapsedMs / common.Clamp(zoom, minMoveZoom, maxMoveZoom)
	if actions.Has(ActionModifier) {
		distance *= 2
	}
	return mgl32.Vec3{
		actions.axis(ActionLeft, ActionRight) * distance,
		actions.axis(ActionBackward, ActionForward) * distance,
		actions.axis(ActionDown, ActionUp) * distance,
	}
}

// HandleTurning applies the held rotation actions. All three axes are wrapped into
// [-180, 180) and the pitch is then clamped to [0, 180].
//
// Parameters:
//   - actions: the actions held this tick
//   - elapsedMs: tick length in milliseconds
//
// Returns:
//   - ViewState: the updated state
//   - bool: true if the direction changed
func (s ViewState) HandleTurning(actions Actions, elapsedMs float32) (ViewState, bool) {
	rot := turnVector(actions, elapsedMs)
	if rot.LenSqr() == 0 {
		return s, false
	}

	for i := range 3 {
		s.direction[i] = common.BoundedAngle(s.direction[i] + rot[i])
	}
	s.direction[0] = clampPitch(s.direction[0])
	return s, true
}

// HandleMovement applies the held movement actions. The camera-local movement is rotated
// into world space by the current direction.
//
// With elite movement, up/down ignore the camera tilt: the vertical part of the rotated
// movement is dropped and the raw up/down input moves the target along the world Y axis.
// Elite movement only applies in perspective mode.
//
// Parameters:
//   - actions: the actions held this tick
//   - elapsedMs: tick length in milliseconds
//   - zoom: current zoom; lower zoom moves faster
//   - elite: request vertical-locked movement
//
// Returns:
//   - ViewState: the updated state
//   - bool: true if the target moved
func (s ViewState) HandleMovement(actions Actions, elapsedMs, zoom float32, elite bool) (ViewState, bool) {
	move := movementVector(actions, elapsedMs, zoom)
	if move.LenSqr() == 0 {
		return s, false
	}

	if !s.perspective {
		elite = false
	}

	requested := move
	if elite {
		requested[2] = 0
	}

	trans := common.EulerRotation(s.direction).Mul3x1(requested)

	if elite {
		trans[1] = 0
		s.target = s.target.Add(trans)
		s.target[1] -= move[2]
	} else {
		s.target = s.target.Add(trans)
	}

	return s, true
}
