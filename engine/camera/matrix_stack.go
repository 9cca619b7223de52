package camera

import "github.com/go-gl/mathgl/mgl32"

// MatrixMode selects which matrix a MatrixStack load applies to.
type MatrixMode int

const (
	MatrixModeModelView MatrixMode = iota
	MatrixModeProjection
)

func (m MatrixMode) String() string {
	switch m {
	case MatrixModeModelView:
		return "modelview"
	case MatrixModeProjection:
		return "projection"
	}
	return "unknown"
}

// ClearMask selects the buffers a MatrixStack clear applies to.
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
)

// MatrixStack is the rendering side the controller hands its matrices to. It mirrors the
// handful of fixed-function calls the controller needs; the renderer decides how they reach
// the GPU.
type MatrixStack interface {
	// Clear clears the selected buffers before the next frame is drawn.
	//
	// Parameters:
	//   - mask: buffers to clear
	Clear(mask ClearMask)

	// MatrixMode selects the matrix that the next LoadMatrix replaces.
	//
	// Parameters:
	//   - mode: model-view or projection
	MatrixMode(mode MatrixMode)

	// LoadMatrix replaces the selected matrix.
	//
	// Parameters:
	//   - m: the matrix, column-major
	LoadMatrix(m mgl32.Mat4)

	// Viewport sets the drawing area in pixels.
	//
	// Parameters:
	//   - x, y: lower-left corner
	//   - width, height: size in pixels
	Viewport(x, y, width, height int)
}
