package camera

import "github.com/go-gl/mathgl/mgl32"

// The controller keeps positions in a Y-inverted frame; callers always see Y up.
// These two functions are the only places the inversion happens.

// toInternal converts a real world (Y up) vector into the internal frame.
func toInternal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], -v[1], v[2]}
}

// toRealWorld converts an internal vector back into the real world frame.
func toRealWorld(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], -v[1], v[2]}
}
