package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func transform(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func TestOrthographicProjection(t *testing.T) {
	s, proj := NewViewState().BuildProjectionMatrix(false, mgl32.DegToRad(45), 800, 600)

	if s.InPerspectiveMode() {
		t.Error("expected orthographic mode")
	}
	if proj.ZNear != -5000 {
		t.Errorf("expected znear -5000, got %f", proj.ZNear)
	}
	if halfWidth := 1 / proj.Matrix[0]; math.Abs(float64(halfWidth-1000)) > eps {
		t.Errorf("expected half width 1000, got %f", halfWidth)
	}
	if halfHeight := 1 / proj.Matrix[5]; math.Abs(float64(halfHeight-750)) > eps {
		t.Errorf("expected half height 750, got %f", halfHeight)
	}
}

func TestPerspectiveProjection(t *testing.T) {
	fov := mgl32.DegToRad(60)
	s, proj := NewViewState().BuildProjectionMatrix(true, fov, 1600, 900)

	if !s.InPerspectiveMode() {
		t.Error("expected perspective mode")
	}
	if proj.ZNear != 1 {
		t.Errorf("expected znear 1, got %f", proj.ZNear)
	}
	expected := mgl32.Perspective(fov, 1600.0/900.0, 1, 1000000)
	if !proj.Matrix.ApproxEqual(expected) {
		t.Errorf("expected %v, got %v", expected, proj.Matrix)
	}
}

func TestProjectionSwitchesMode(t *testing.T) {
	s, _ := NewViewState().BuildProjectionMatrix(true, 1, 100, 100)
	s, _ = s.BuildProjectionMatrix(false, 1, 100, 100)
	if s.InPerspectiveMode() {
		t.Error("mode did not switch back to orthographic")
	}
}

func TestProjectionPanicsOnEmptyViewport(t *testing.T) {
	testCases := map[string]struct {
		width, height int
	}{
		"ZeroWidth":  {width: 0, height: 600},
		"ZeroHeight": {width: 800, height: 0},
		"Negative":   {width: -1, height: -1},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			NewViewState().BuildProjectionMatrix(false, 1, tt.width, tt.height)
		})
	}
}

func TestOrthographicViewCentresTarget(t *testing.T) {
	target := mgl32.Vec3{10, 20, 30}

	testCases := map[string]struct {
		direction mgl32.Vec3
		zoom      float32
	}{
		"Default":  {zoom: 1},
		"Zoomed":   {zoom: 2.5},
		"Rotated":  {direction: mgl32.Vec3{60, 15, -120}, zoom: 0.5},
		"TopDown":  {direction: mgl32.Vec3{180, 0, 45}, zoom: 1},
		"Negative": {direction: mgl32.Vec3{-30, -30, -30}, zoom: 3},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			s := NewViewState().SetPosition(target).SetDirection(tt.direction)
			got := transform(s.BuildViewMatrix(tt.zoom), target)
			if !vec3Near(got, mgl32.Vec3{}, 0.01) {
				t.Errorf("target should map to the view origin, got %v", got)
			}
		})
	}
}

func TestOrthographicViewPitch90(t *testing.T) {
	s := NewViewState().SetDirection(mgl32.Vec3{90, 0, 0})
	view := s.BuildViewMatrix(1)

	got := transform(view, mgl32.Vec3{1, 2, 3})
	if expected := (mgl32.Vec3{1, 2, -3}); !vec3Near(got, expected, eps) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestOrthographicViewZoomScales(t *testing.T) {
	s := NewViewState()
	near := transform(s.BuildViewMatrix(1), mgl32.Vec3{100, 0, 0})
	far := transform(s.BuildViewMatrix(4), mgl32.Vec3{100, 0, 0})

	if math.Abs(float64(far.Len()-4*near.Len())) > eps {
		t.Errorf("expected zoom 4 to scale by 4: %v vs %v", near, far)
	}
}

func TestPerspectiveViewLooksAtTarget(t *testing.T) {
	target := mgl32.Vec3{-50, 200, 75}

	testCases := map[string]struct {
		direction mgl32.Vec3
		zoom      float32
	}{
		"Default":  {zoom: 1},
		"Zoomed":   {zoom: 4},
		"Tilted":   {direction: mgl32.Vec3{45, 0, 30}, zoom: 1},
		"Rolled":   {direction: mgl32.Vec3{90, 60, -90}, zoom: 2},
		"Overhead": {direction: mgl32.Vec3{170, 0, 10}, zoom: 0.5},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			s := perspectiveState().SetPosition(target).SetDirection(tt.direction)
			got := transform(s.BuildViewMatrix(tt.zoom), target)
			expected := mgl32.Vec3{0, 0, -1000 / tt.zoom}
			if !vec3Near(got, expected, 0.05) {
				t.Errorf("expected %v, got %v", expected, got)
			}
		})
	}
}

func TestEye(t *testing.T) {
	testCases := map[string]struct {
		target    mgl32.Vec3
		direction mgl32.Vec3
		zoom      float32
		eye       mgl32.Vec3
		up        mgl32.Vec3
	}{
		"Default": {
			zoom: 1,
			eye:  mgl32.Vec3{0, 1000, 0},
			up:   mgl32.Vec3{0, 0, 1},
		},
		"Level": {
			direction: mgl32.Vec3{90, 0, 0},
			zoom:      1,
			eye:       mgl32.Vec3{0, 0, -1000},
			up:        mgl32.Vec3{0, 1, 0},
		},
		"ZoomedOffset": {
			target: mgl32.Vec3{10, 10, 10},
			zoom:   2,
			eye:    mgl32.Vec3{10, 510, 10},
			up:     mgl32.Vec3{0, 0, 1},
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			s := NewViewState().SetPosition(tt.target).SetDirection(tt.direction)
			eye, up := s.Eye(tt.zoom)
			if !vec3Near(eye, tt.eye, 0.01) {
				t.Errorf("expected eye %v, got %v", tt.eye, eye)
			}
			if !vec3Near(up, tt.up, eps) {
				t.Errorf("expected up %v, got %v", tt.up, up)
			}
		})
	}
}
