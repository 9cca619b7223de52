package renderer

import (
	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// matrixState is the fixed-function matrix stack model shared by every Renderer: two
// matrix slots selected by the current mode, a viewport and the pending clear mask.
type matrixState struct {
	mode       camera.MatrixMode
	modelView  mgl32.Mat4
	projection mgl32.Mat4
	viewport   [4]int
	clear      camera.ClearMask
}

func newMatrixState() matrixState {
	return matrixState{
		mode:       camera.MatrixModeModelView,
		modelView:  mgl32.Ident4(),
		projection: mgl32.Ident4(),
	}
}

func (s *matrixState) Clear(mask camera.ClearMask) {
	s.clear |= mask
}

func (s *matrixState) MatrixMode(mode camera.MatrixMode) {
	s.mode = mode
}

func (s *matrixState) LoadMatrix(m mgl32.Mat4) {
	switch s.mode {
	case camera.MatrixModeProjection:
		s.projection = m
	default:
		s.modelView = m
	}
}

func (s *matrixState) Viewport(x, y, width, height int) {
	s.viewport = [4]int{x, y, width, height}
}

func (s *matrixState) viewProjection() mgl32.Mat4 {
	return s.projection.Mul4(s.modelView)
}

// takeFrame returns the frame described so far and resets the clear mask for the next one.
func (s *matrixState) takeFrame(grid bool) Frame {
	f := Frame{Clear: s.clear, Viewport: s.viewport, Grid: grid}
	s.clear = 0
	return f
}
