package renderer

import "github.com/Carmen-Shannon/oxy-starmap/engine/camera"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// Frame describes one frame's worth of state collected from the matrix stack calls.
type Frame struct {
	// Clear holds the buffers to clear at the start of the pass; unset buffers are loaded.
	Clear camera.ClearMask

	// Viewport is the x, y, width, height rectangle in pixels.
	Viewport [4]int

	// Grid enables the galactic plane reference grid.
	Grid bool
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}

// clampViewport fits an x, y, width, height rectangle inside a surface of the given size.
// The window can shrink between building the projection and presenting, and the GPU rejects
// viewports larger than the attachment.
func clampViewport(vp [4]int, width, height int) [4]int {
	x := min(max(vp[0], 0), width)
	y := min(max(vp[1], 0), height)
	w := min(max(vp[2], 0), width-x)
	h := min(max(vp[3], 0), height-y)
	return [4]int{x, y, w, h}
}
