package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded matrix stack operation.
type Call struct {
	Op     string
	Mode   camera.MatrixMode
	Mask   camera.ClearMask
	Matrix mgl32.Mat4
	Rect   [4]int
}

func (c Call) String() string {
	switch c.Op {
	case "clear":
		return fmt.Sprintf("clear(%d)", c.Mask)
	case "mode":
		return fmt.Sprintf("mode(%s)", c.Mode)
	case "viewport":
		return fmt.Sprintf("viewport(%d,%d,%d,%d)", c.Rect[0], c.Rect[1], c.Rect[2], c.Rect[3])
	}
	return c.Op
}

// Recorder is a headless Renderer. It keeps the same matrix stack state as the GPU renderer
// and records every call, for tests and the simulate command.
type Recorder struct {
	mu *sync.Mutex

	state   matrixState
	calls   []Call
	frames  []Frame
	uniform camera.GPUViewUniform
	width   int
	height  int
}

var _ Renderer = &Recorder{}

// NewRecorder creates an empty Recorder.
//
// Returns:
//   - *Recorder: the recorder
func NewRecorder() *Recorder {
	return &Recorder{
		mu:    &sync.Mutex{},
		state: newMatrixState(),
	}
}

func (r *Recorder) Clear(mask camera.ClearMask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Clear(mask)
	r.calls = append(r.calls, Call{Op: "clear", Mask: mask})
}

func (r *Recorder) MatrixMode(mode camera.MatrixMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.MatrixMode(mode)
	r.calls = append(r.calls, Call{Op: "mode", Mode: mode})
}

func (r *Recorder) LoadMatrix(m mgl32.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadMatrix(m)
	r.calls = append(r.calls, Call{Op: "load", Mode: r.state.mode, Matrix: m})
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Viewport(x, y, width, height)
	r.calls = append(r.calls, Call{Op: "viewport", Rect: [4]int{x, y, width, height}})
}

func (r *Recorder) WriteViewUniform(u camera.GPUViewUniform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uniform = u
}

func (r *Recorder) ViewProjection() mgl32.Mat4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.viewProjection()
}

func (r *Recorder) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
}

func (r *Recorder) SetPresentMode(PresentMode) {}

func (r *Recorder) Present() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	frame := r.state.takeFrame(false)
	if frame.Viewport[2] <= 0 || frame.Viewport[3] <= 0 {
		return fmt.Errorf("no viewport set for frame")
	}
	r.frames = append(r.frames, frame)
	return nil
}

func (r *Recorder) Close() {}

// Calls returns a copy of every call recorded since the last Reset.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Frames returns the frames presented since the last Reset.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

// ModelView returns the matrix currently loaded in the model-view slot.
func (r *Recorder) ModelView() mgl32.Mat4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.modelView
}

// Projection returns the matrix currently loaded in the projection slot.
func (r *Recorder) Projection() mgl32.Mat4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.projection
}

// Uniform returns the last uniform written.
func (r *Recorder) Uniform() camera.GPUViewUniform {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniform
}

// Size returns the size from the last Resize call.
func (r *Recorder) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Reset forgets recorded calls and frames. Loaded matrices are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.frames = nil
}
