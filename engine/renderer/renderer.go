package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
	"github.com/Carmen-Shannon/oxy-starmap/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	state   matrixState
	uniform camera.GPUViewUniform
	written bool

	backendType RendererBackendType
	backend     RendererBackend

	// gpu serializes backend calls: Resize arrives on the window thread, Present on the render loop.
	gpu           *sync.Mutex
	width, height int // last configured surface size

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	clearColor           [4]float64
	grid                 bool
}

// Renderer defines the interface for the rendering system.
//
// A Renderer is driven like a fixed-function matrix stack: the camera controller clears,
// selects and loads the model-view and projection matrices and sets the viewport, then Present
// turns the collected state into one GPU frame.
type Renderer interface {
	camera.MatrixStack

	// WriteViewUniform stages the camera uniform uploaded with the next frame.
	// When nothing is staged, the uniform is derived from the loaded matrices.
	//
	// Parameters:
	//   - u: the uniform to upload
	WriteViewUniform(u camera.GPUViewUniform)

	// ViewProjection returns projection * model-view of the currently loaded matrices.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjection() mgl32.Mat4

	// Resize reconfigures the surface for a new framebuffer size. Zero sizes (minimized) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets how frames are delivered to the display and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Present encodes the frame described by the calls made since the last Present, submits it
	// and presents the surface.
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired or the frame failed to encode
	Present() error

	// Close releases all GPU resources held by the renderer.
	Close()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type for the given window.
// GPU setup failures panic, as there is nothing to fall back to.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		gpu:         &sync.Mutex{},
		state:       newMatrixState(),
		backendType: backendType,
		clearColor:  [4]float64{0, 0, 0, 1},
		grid:        true,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, r.clearColor)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.width, r.height = window.Width(), window.Height()
	if err := r.backend.ConfigureSurface(r.width, r.height); err != nil {
		panic(fmt.Sprintf("failed to configure surface: %v", err))
	}
	return r
}

func (r *renderer) Clear(mask camera.ClearMask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Clear(mask)
}

func (r *renderer) MatrixMode(mode camera.MatrixMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.MatrixMode(mode)
}

func (r *renderer) LoadMatrix(m mgl32.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadMatrix(m)
}

func (r *renderer) Viewport(x, y, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Viewport(x, y, width, height)
}

func (r *renderer) WriteViewUniform(u camera.GPUViewUniform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uniform = u
	r.written = true
}

func (r *renderer) ViewProjection() mgl32.Mat4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.viewProjection()
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		// minimized
		return
	}
	r.gpu.Lock()
	defer r.gpu.Unlock()
	r.width, r.height = width, height
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		log.Printf("[Renderer] resize to %dx%d failed: %v", width, height, err)
	}
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.gpu.Lock()
	defer r.gpu.Unlock()
	r.backend.SetPresentMode(mode)
	if err := r.backend.ConfigureSurface(r.width, r.height); err != nil {
		log.Printf("[Renderer] present mode change failed: %v", err)
	}
}

func (r *renderer) Present() error {
	r.mu.Lock()
	if !r.written {
		r.uniform = camera.GPUViewUniform{ViewProj: r.state.viewProjection()}
	}
	data := r.uniform.Marshal()
	frame := r.state.takeFrame(r.grid)
	r.written = false
	r.mu.Unlock()

	if frame.Viewport[2] <= 0 || frame.Viewport[3] <= 0 {
		return fmt.Errorf("no viewport set for frame")
	}

	r.gpu.Lock()
	defer r.gpu.Unlock()
	r.backend.WriteViewUniform(data)
	if err := r.backend.DrawFrame(frame); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Close() {
	r.gpu.Lock()
	defer r.gpu.Unlock()
	r.backend.Release()
}
