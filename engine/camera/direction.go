package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minAzElDistance is the eye-to-target distance below which AzEl gives up and returns
// the level forward direction.
const minAzElDistance = 0.1

// clampPitch keeps a pitch angle inside [0, 180]. Slightly negative values snap to 0;
// anything past 180, or at or below -90, snaps to 180.
func clampPitch(p float32) float32 {
	if p < 0 && p > -90 {
		return 0
	}
	if p > 180 || p <= -90 {
		return 180
	}
	return p
}

// RotateDirection adds delta to the direction and clamps the pitch into [0, 180].
//
// Parameters:
//   - delta: rotation in degrees (X pitch, Y roll, Z yaw)
//
// Returns:
//   - ViewState: the updated state
func (s ViewState) RotateDirection(delta mgl32.Vec3) ViewState {
	s.direction = s.direction.Add(delta)
	s.direction[0] = clampPitch(s.direction[0])
	return s
}

// LookAt pans the direction so the eye faces a real world point as seen from the current
// target position. The azimuth from AzEl is remapped as 180 - azimuth to match the rotation
// convention of the direction vector before it becomes the slew goal.
//
// Parameters:
//   - target: point to face, real world coordinates; a NaN X component ignores the call
//   - zoom: unused; the pan is measured from the target, not the eye
//   - seconds: pan duration, <= 0 for the one second default
//
// Returns:
//   - ViewState: the updated state
func (s ViewState) LookAt(target mgl32.Vec3, _, seconds float32) ViewState {
	if isNaN(target[0]) {
		return s
	}
	dir := AzEl(s.target, toInternal(target))
	dir[1] = 180 - dir[1]
	return s.StartDirectionSlew(dir, seconds)
}

// AzEl computes the inclination and azimuth, in degrees, of target as seen from eye.
// Both points are in the same frame. The result is (inclination, azimuth, 0).
//
// Inclination is measured from the +Y axis. Azimuth is atan(dz/dx), corrected by 180 when
// dx < 0 and offset by 90 so that 0 points down the -Z axis. When the points are closer
// than 0.1 the direction is undefined and (180, 0, 0), level forward, is returned.
//
// Parameters:
//   - eye: viewing position
//   - target: point being looked at
//
// Returns:
//   - mgl32.Vec3: (inclination, azimuth, 0) in degrees
func AzEl(eye, target mgl32.Vec3) mgl32.Vec3 {
	delta := target.Sub(eye)
	radius := float64(delta.Len())

	if radius < minAzElDistance {
		return mgl32.Vec3{180, 0, 0}
	}

	dx, dy, dz := float64(delta[0]), float64(delta[1]), float64(delta[2])

	inclination := math.Acos(max(-1, min(1, dy/radius))) * 180 / math.Pi

	var azimuth float64
	switch {
	case dx != 0:
		azimuth = math.Atan(dz/dx) * 180 / math.Pi
	case dz > 0:
		azimuth = 90
	case dz < 0:
		azimuth = -90
	}

	if dx < 0 {
		azimuth += 180
	}
	azimuth += 90

	return mgl32.Vec3{float32(inclination), float32(azimuth), 0}
}
