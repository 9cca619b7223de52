package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/go-gl/mathgl/mgl32"
)

// controllerImpl is the single implementation of Controller. Every method takes the mutex,
// runs the matching ViewState operation and stores the result.
type controllerImpl struct {
	mu *sync.Mutex

	state ViewState

	// last built matrices, for ViewProjection, Frustum and Uniform
	view       mgl32.Mat4
	projection Projection
}

// Compile-time interface compliance check
var _ Controller = &controllerImpl{}

// NewController creates a controller at the origin, facing zero direction, in
// orthographic mode with no slews in flight.
//
// Parameters:
//   - options: functional options to configure the initial state
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	c := &controllerImpl{
		mu:         &sync.Mutex{},
		state:      NewViewState(),
		view:       mgl32.Ident4(),
		projection: Projection{Matrix: mgl32.Ident4()},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controllerImpl) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controllerImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Position()
}

func (c *controllerImpl) Direction() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Direction()
}

func (c *controllerImpl) InPerspectiveMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.InPerspectiveMode()
}

func (c *controllerImpl) InSlews() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.InSlews()
}

func (c *controllerImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SetPosition(p)
}

func (c *controllerImpl) OffsetPosition(d mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.OffsetPosition(d)
}

func (c *controllerImpl) SetDirection(d mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SetDirection(d)
}

func (c *controllerImpl) RotateDirection(delta mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.RotateDirection(delta)
}

func (c *controllerImpl) StartPositionSlew(pos mgl32.Vec3, seconds float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.StartPositionSlew(pos, seconds)
}

func (c *controllerImpl) StartDirectionSlew(d mgl32.Vec3, seconds float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.StartDirectionSlew(d, seconds)
}

func (c *controllerImpl) LookAt(target mgl32.Vec3, zoom, seconds float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.LookAt(target, zoom, seconds)
}

func (c *controllerImpl) CancelSlews() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.CancelSlews()
}

func (c *controllerImpl) Advance(elapsedMs float32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	var repaint bool
	c.state, repaint = c.state.Advance(elapsedMs)
	return repaint
}

func (c *controllerImpl) HandleTurning(actions Actions, elapsedMs float32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	var turned bool
	c.state, turned = c.state.HandleTurning(actions, elapsedMs)
	return turned
}

func (c *controllerImpl) HandleMovement(actions Actions, elapsedMs, zoom float32, elite bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	var moved bool
	c.state, moved = c.state.HandleMovement(actions, elapsedMs, zoom, elite)
	return moved
}

func (c *controllerImpl) Step(in FrameInput) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	var repaint bool
	c.state, repaint = c.state.Step(in)
	return repaint
}

func (c *controllerImpl) Eye(zoom float32) (eye, up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Eye(zoom)
}

func (c *controllerImpl) ViewMatrix(zoom float32) mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.state.BuildViewMatrix(zoom)
	return c.view
}

func (c *controllerImpl) ProjectionMatrix(perspective bool, fov float32, width, height int) Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state, c.projection = c.state.BuildProjectionMatrix(perspective, fov, width, height)
	return c.projection
}

func (c *controllerImpl) ViewProjection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection.Matrix.Mul4(c.view)
}

func (c *controllerImpl) Frustum() common.Frustum {
	return common.ExtractFrustum(c.ViewProjection())
}

func (c *controllerImpl) ApplyModelView(stack MatrixStack, zoom float32) {
	view := c.ViewMatrix(zoom)
	stack.Clear(ClearColor | ClearDepth)
	stack.MatrixMode(MatrixModeModelView)
	stack.LoadMatrix(view)
}

func (c *controllerImpl) ApplyProjection(stack MatrixStack, perspective bool, fov float32, width, height int) float32 {
	proj := c.ProjectionMatrix(perspective, fov, width, height)
	stack.MatrixMode(MatrixModeProjection)
	stack.LoadMatrix(proj.Matrix)
	stack.Viewport(0, 0, width, height)
	return proj.ZNear
}

func (c *controllerImpl) Uniform(zoom float32) GPUViewUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	eye, _ := c.state.Eye(zoom)
	return GPUViewUniform{
		ViewProj: c.projection.Matrix.Mul4(c.view),
		Eye:      eye,
		ZNear:    c.projection.ZNear,
		Zoom:     zoom,
	}
}
