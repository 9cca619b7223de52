package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

func TestRecorderMatrixSlots(t *testing.T) {
	r := NewRecorder()
	view := mgl32.Translate3D(1, 2, 3)
	proj := mgl32.Ortho(-1000, 1000, -750, 750, -5000, 5000)

	r.MatrixMode(camera.MatrixModeModelView)
	r.LoadMatrix(view)
	r.MatrixMode(camera.MatrixModeProjection)
	r.LoadMatrix(proj)

	if r.ModelView() != view {
		t.Error("model-view slot not loaded")
	}
	if r.Projection() != proj {
		t.Error("projection slot not loaded")
	}
	if !r.ViewProjection().ApproxEqual(proj.Mul4(view)) {
		t.Error("view-projection should be projection * model-view")
	}

	calls := r.Calls()
	if len(calls) != 4 || calls[3].Mode != camera.MatrixModeProjection {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestRecorderPresent(t *testing.T) {
	testCases := map[string]struct {
		setup     func(r *Recorder)
		expectErr bool
		expected  Frame
	}{
		"NoViewport": {
			setup:     func(r *Recorder) { r.Clear(camera.ClearColor) },
			expectErr: true,
		},
		"ClearAndViewport": {
			setup: func(r *Recorder) {
				r.Clear(camera.ClearColor)
				r.Clear(camera.ClearDepth)
				r.Viewport(0, 0, 800, 600)
			},
			expected: Frame{Clear: camera.ClearColor | camera.ClearDepth, Viewport: [4]int{0, 0, 800, 600}},
		},
		"ViewportOnly": {
			setup:    func(r *Recorder) { r.Viewport(10, 20, 30, 40) },
			expected: Frame{Viewport: [4]int{10, 20, 30, 40}},
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			r := NewRecorder()
			tt.setup(r)

			err := r.Present()
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			frames := r.Frames()
			if len(frames) != 1 || frames[0] != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, frames)
			}
		})
	}
}

func TestRecorderClearMaskResetsPerFrame(t *testing.T) {
	r := NewRecorder()
	r.Clear(camera.ClearColor)
	r.Viewport(0, 0, 10, 10)
	if err := r.Present(); err != nil {
		t.Fatal(err)
	}
	if err := r.Present(); err != nil {
		t.Fatal(err)
	}

	frames := r.Frames()
	if frames[1].Clear != 0 {
		t.Errorf("clear mask leaked into the next frame: %d", frames[1].Clear)
	}
	if frames[1].Viewport != frames[0].Viewport {
		t.Error("viewport should persist between frames")
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	m := mgl32.Scale3D(2, 2, 2)
	r.LoadMatrix(m)
	r.Viewport(0, 0, 1, 1)
	_ = r.Present()

	r.Reset()
	if len(r.Calls()) != 0 || len(r.Frames()) != 0 {
		t.Error("reset should forget calls and frames")
	}
	if r.ModelView() != m {
		t.Error("reset should keep loaded matrices")
	}
}

func TestCallString(t *testing.T) {
	testCases := map[string]struct {
		call     Call
		expected string
	}{
		"Clear":    {call: Call{Op: "clear", Mask: camera.ClearColor | camera.ClearDepth}, expected: "clear(3)"},
		"Mode":     {call: Call{Op: "mode", Mode: camera.MatrixModeProjection}, expected: "mode(projection)"},
		"Load":     {call: Call{Op: "load"}, expected: "load"},
		"Viewport": {call: Call{Op: "viewport", Rect: [4]int{0, 0, 800, 600}}, expected: "viewport(0,0,800,600)"},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := tt.call.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
