package camera

import (
	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller owns one viewer's ViewState and serializes access to it. The engine ticks the
// controller from its update goroutine and reads matrices from its render goroutine, so all
// methods are safe for concurrent use.
//
// Positions passed in and returned are in real world coordinates (Y up).
type Controller interface {
	// State returns a snapshot of the current view state.
	//
	// Returns:
	//   - ViewState: the current state
	State() ViewState

	// Position returns the look-at target.
	//
	// Returns:
	//   - mgl32.Vec3: target position, real world
	Position() mgl32.Vec3

	// Direction returns the camera direction in degrees (X pitch, Y roll, Z yaw).
	//
	// Returns:
	//   - mgl32.Vec3: the direction
	Direction() mgl32.Vec3

	// InPerspectiveMode reports whether the perspective projection is active.
	//
	// Returns:
	//   - bool: true in perspective mode
	InPerspectiveMode() bool

	// InSlews reports whether a position or direction slew is in flight.
	//
	// Returns:
	//   - bool: true while animating
	InSlews() bool

	// SetPosition moves the target without animation.
	//
	// Parameters:
	//   - p: new target, real world
	SetPosition(p mgl32.Vec3)

	// OffsetPosition moves the target by an offset without animation.
	//
	// Parameters:
	//   - d: offset, real world
	OffsetPosition(d mgl32.Vec3)

	// SetDirection replaces the direction without clamping the pitch.
	//
	// Parameters:
	//   - d: direction in degrees
	SetDirection(d mgl32.Vec3)

	// RotateDirection adds to the direction and clamps the pitch to [0, 180].
	//
	// Parameters:
	//   - delta: rotation in degrees
	RotateDirection(delta mgl32.Vec3)

	// StartPositionSlew starts an eased move of the target. See ViewState.StartPositionSlew.
	//
	// Parameters:
	//   - pos: destination, real world; NaN X ignores the call
	//   - seconds: 0 instant, < 0 automatic, > 0 literal
	StartPositionSlew(pos mgl32.Vec3, seconds float32)

	// StartDirectionSlew starts an eased pan of the direction. See ViewState.StartDirectionSlew.
	//
	// Parameters:
	//   - d: destination direction; NaN X ignores the call
	//   - seconds: duration, <= 0 for one second
	StartDirectionSlew(d mgl32.Vec3, seconds float32)

	// LookAt pans the eye to face a real world point.
	//
	// Parameters:
	//   - target: point to face, real world
	//   - zoom: current zoom
	//   - seconds: pan duration, <= 0 for one second
	LookAt(target mgl32.Vec3, zoom, seconds float32)

	// CancelSlews freezes any slew in flight.
	CancelSlews()

	// Advance steps the slews by elapsedMs milliseconds.
	//
	// Parameters:
	//   - elapsedMs: tick length in milliseconds
	//
	// Returns:
	//   - bool: true if a slew was active
	Advance(elapsedMs float32) bool

	// HandleTurning applies held rotation actions.
	//
	// Parameters:
	//   - actions: held actions
	//   - elapsedMs: tick length in milliseconds
	//
	// Returns:
	//   - bool: true if the direction changed
	HandleTurning(actions Actions, elapsedMs float32) bool

	// HandleMovement applies held movement actions.
	//
	// Parameters:
	//   - actions: held actions
	//   - elapsedMs: tick length in milliseconds
	//   - zoom: current zoom
	//   - elite: vertical-locked movement (perspective only)
	//
	// Returns:
	//   - bool: true if the target moved
	HandleMovement(actions Actions, elapsedMs, zoom float32, elite bool) bool

	// Step runs turning, movement and slew advancement for one tick.
	//
	// Parameters:
	//   - in: the tick input
	//
	// Returns:
	//   - bool: true if a repaint is needed
	Step(in FrameInput) bool

	// Eye returns the perspective eye position and up vector.
	//
	// Parameters:
	//   - zoom: current zoom
	//
	// Returns:
	//   - eye, up: real world vectors
	Eye(zoom float32) (eye, up mgl32.Vec3)

	// ViewMatrix builds the model-view matrix and remembers it for ViewProjection.
	//
	// Parameters:
	//   - zoom: current zoom
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix(zoom float32) mgl32.Mat4

	// ProjectionMatrix sets the projection mode and builds its matrix. Panics on an empty viewport.
	//
	// Parameters:
	//   - perspective: projection mode
	//   - fov: vertical field of view in radians
	//   - width, height: viewport in pixels
	//
	// Returns:
	//   - Projection: the matrix and near distance
	ProjectionMatrix(perspective bool, fov float32, width, height int) Projection

	// ViewProjection returns projection * view from the last built matrices.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix, mapping real world points to clip space
	ViewProjection() mgl32.Mat4

	// Frustum returns the view frustum of the last built matrices, in real world coordinates.
	//
	// Returns:
	//   - common.Frustum: the frustum planes
	Frustum() common.Frustum

	// ApplyModelView clears colour and depth, selects the model-view matrix and loads the
	// current view matrix into stack.
	//
	// Parameters:
	//   - stack: the renderer's matrix stack
	//   - zoom: current zoom
	ApplyModelView(stack MatrixStack, zoom float32)

	// ApplyProjection sets the projection mode, loads the projection matrix into stack and
	// sets the viewport to the full size.
	//
	// Parameters:
	//   - stack: the renderer's matrix stack
	//   - perspective: projection mode
	//   - fov: vertical field of view in radians
	//   - width, height: viewport in pixels
	//
	// Returns:
	//   - float32: the near plane distance of the projection
	ApplyProjection(stack MatrixStack, perspective bool, fov float32, width, height int) float32

	// Uniform packs the last built matrices and the eye for GPU upload.
	//
	// Parameters:
	//   - zoom: current zoom
	//
	// Returns:
	//   - GPUViewUniform: the uniform block
	Uniform(zoom float32) GPUViewUniform
}
