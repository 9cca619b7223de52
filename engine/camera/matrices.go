package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// eyeDistance is the eye-to-target distance at zoom 1 in perspective mode.
	eyeDistance = 1000.0

	perspectiveNear = 1.0
	perspectiveFar  = 1000000.0

	// orthoHalfWidth is the horizontal half-extent of the orthographic view volume.
	orthoHalfWidth = 1000.0
	orthoNear      = -5000.0
	orthoFar       = 5000.0
)

// Projection is a projection matrix together with the near plane distance it was built with.
type Projection struct {
	Matrix mgl32.Mat4
	ZNear  float32
}

// Eye returns the perspective eye position and its up vector in real world coordinates.
//
// Parameters:
//   - zoom: current zoom, > 0
//
// Returns:
//   - eye: eye position
//   - up: up vector of the eye
func (s ViewState) Eye(zoom float32) (eye, up mgl32.Vec3) {
	eye, up = s.eyePosition(zoom)
	return toRealWorld(eye), toRealWorld(up)
}

// eyePosition places the eye 1000/zoom units behind the target along the rotated -Y axis.
// Results are in the internal frame.
func (s ViewState) eyePosition(zoom float32) (eye, up mgl32.Vec3) {
	rot := common.EulerRotation(s.direction)
	eyeRel := rot.Mul3x1(mgl32.Vec3{0, -eyeDistance / zoom, 0})
	up = rot.Mul3x1(mgl32.Vec3{0, 0, 1})
	return s.target.Add(eyeRel), up
}

// BuildViewMatrix returns the model-view matrix for the current state.
//
// In perspective mode it is a look-at from the eye to the target. In orthographic mode the
// world is rotated -90 degrees about X so its up axis faces the screen, scaled by zoom,
// rotated against the direction (Z, then X, then Y) and translated by the negated target.
// Both end with the Y mirror that undoes the internal inverted Y.
//
// Parameters:
//   - zoom: current zoom, > 0
//
// Returns:
//   - mgl32.Mat4: the view matrix (column-major)
func (s ViewState) BuildViewMatrix(zoom float32) mgl32.Mat4 {
	if s.perspective {
		eye, up := s.eyePosition(zoom)
		return mgl32.LookAtV(eye, s.target, up).Mul4(common.MirrorY)
	}

	m := mgl32.Ident4()
	m = m.Mul4(common.GLRotate(-90, 1, 0, 0))
	m = m.Mul4(mgl32.Scale3D(zoom, zoom, zoom))
	m = m.Mul4(common.GLRotate(s.direction[2], 0, 0, -1))
	m = m.Mul4(common.GLRotate(s.direction[0], -1, 0, 0))
	m = m.Mul4(common.GLRotate(s.direction[1], 0, -1, 0))
	m = m.Mul4(mgl32.Translate3D(-s.target[0], -s.target[1], -s.target[2]))
	return m.Mul4(common.MirrorY)
}

// BuildProjectionMatrix selects the projection mode and returns its matrix.
//
// Perspective: field-of-view projection, near 1, far 1,000,000. Orthographic: a box
// 2000 units wide, 2000*height/width high and 10000 deep centred on the eye, reported
// with a near distance of -5000.
//
// The viewport must be non-empty; a zero or negative size is a caller bug and panics.
//
// Parameters:
//   - perspective: true for perspective, false for orthographic
//   - fov: vertical field of view in radians (perspective only)
//   - width, height: viewport size in pixels, both > 0
//
// Returns:
//   - ViewState: the state with the projection mode set
//   - Projection: the projection matrix and near distance
func (s ViewState) BuildProjectionMatrix(perspective bool, fov float32, width, height int) (ViewState, Projection) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("camera: invalid viewport %dx%d", width, height))
	}

	s.perspective = perspective

	if perspective {
		aspect := float32(width) / float32(height)
		return s, Projection{
			Matrix: mgl32.Perspective(fov, aspect, perspectiveNear, perspectiveFar),
			ZNear:  perspectiveNear,
		}
	}

	orthoHeight := orthoHalfWidth * float32(height) / float32(width)
	return s, Projection{
		Matrix: mgl32.Ortho(-orthoHalfWidth, orthoHalfWidth, -orthoHeight, orthoHeight, orthoNear, orthoFar),
		ZNear:  orthoNear,
	}
}
