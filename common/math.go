package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MirrorY flips the Y axis of the world. Applied as the last step of every model-view
// matrix so that the internal Y-inverted frame renders with Y up.
var MirrorY = mgl32.Scale3D(1, -1, 1)

// BoundedAngle wraps an angle in degrees into the half-open range [-180, 180).
//
// Parameters:
//   - deg: angle in degrees, any magnitude
//
// Returns:
//   - float32: the equivalent angle in [-180, 180)
func BoundedAngle(deg float32) float32 {
	a := math.Mod(float64(deg)+180, 360)
	if a < 0 {
		a += 360
	}
	return float32(a - 180)
}

// GLRotate builds the matrix a fixed-function GL rotate call would post-multiply onto the
// current matrix: a rotation of deg degrees counter-clockwise about the given axis.
// The axis does not need to be normalized.
//
// Parameters:
//   - deg: rotation angle in degrees
//   - x, y, z: rotation axis
//
// Returns:
//   - mgl32.Mat4: the homogeneous rotation matrix (column-major)
func GLRotate(deg, x, y, z float32) mgl32.Mat4 {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize())
}

// EulerRotation composes the Y * X * Z rotation used to turn a camera-local vector into
// world space. Angles are in degrees: rot[0] about X, rot[1] about Y, rot[2] about Z.
// The Z rotation is applied to the vector first, then X, then Y.
//
// Parameters:
//   - rot: rotation angles in degrees
//
// Returns:
//   - mgl32.Mat3: the combined rotation matrix
func EulerRotation(rot mgl32.Vec3) mgl32.Mat3 {
	rx := mgl32.Rotate3DX(mgl32.DegToRad(rot[0]))
	ry := mgl32.Rotate3DY(mgl32.DegToRad(rot[1]))
	rz := mgl32.Rotate3DZ(mgl32.DegToRad(rot[2]))
	return ry.Mul3(rx).Mul3(rz)
}
