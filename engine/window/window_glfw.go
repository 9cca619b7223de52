package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow is the GLFW side of an engineWindow.
type glfwWindow struct {
	window *glfw.Window
	closed bool
}

// newPlatformWindow initialises GLFW on the calling thread, which then owns the window,
// and wires GLFW events into w.
//
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU owns the surface; no OpenGL context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{window: win}
	w.platform = gw

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		// held keys are polled each tick; repeats carry no information
		if action == glfw.Repeat || key == glfw.KeyUnknown {
			return
		}
		if w.handleKey(uint32(key), action == glfw.Press) {
			win.SetShouldClose(true)
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.on.scroll != nil {
			w.on.scroll(float32(yoff))
		}
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if w.on.focus != nil {
			w.on.focus(focused)
		}
	})
	// Framebuffer size, not window size: they differ on high-DPI displays and the surface is sized in pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.handleResize(width, height)
	})

	w.width, w.height = win.GetFramebufferSize()
	return nil
}

func glfwOf(w *engineWindow) *glfwWindow {
	gw, _ := w.platform.(*glfwWindow)
	return gw
}

// platformSurfaceDescriptor builds the surface descriptor through the wgpuglfw bridge.
func platformSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw := glfwOf(w)
	if gw == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

func platformSetTitle(w *engineWindow, title string) {
	if gw := glfwOf(w); gw != nil && !gw.closed {
		gw.window.SetTitle(title)
	}
}

func platformRunning(w *engineWindow) bool {
	gw := glfwOf(w)
	return gw != nil && !gw.closed && !gw.window.ShouldClose()
}

// platformClose destroys the window and terminates GLFW.
func platformClose(w *engineWindow) error {
	gw := glfwOf(w)
	if gw == nil {
		return errors.New("window is not initialized")
	}
	if gw.closed {
		return nil
	}
	gw.closed = true
	gw.window.Destroy()
	glfw.Terminate()
	return nil
}

// platformPoll processes pending events without blocking and reports whether the window is still open.
func platformPoll(w *engineWindow) bool {
	if !platformRunning(w) {
		return false
	}
	glfw.PollEvents()
	return platformRunning(w)
}
