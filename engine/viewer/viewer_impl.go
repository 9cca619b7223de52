package viewer

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
	"github.com/Carmen-Shannon/oxy-starmap/engine/config"
	"github.com/Carmen-Shannon/oxy-starmap/engine/input"
	"github.com/Carmen-Shannon/oxy-starmap/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

type viewerImpl struct {
	mu *sync.Mutex

	controller camera.Controller
	keys       input.KeyState
	keymap     input.Keymap

	zoom     float32
	minZoom  float32
	maxZoom  float32
	zoomStep float32

	perspective bool
	fov         float32 // radians
	elite       bool
	flySeconds  float32

	// last fly-to or look-at destination, real world
	target    mgl32.Vec3
	hasTarget bool

	width  int
	height int

	dirty bool
}

var _ Viewer = &viewerImpl{}

// NewViewer creates a Viewer with the default configuration, then applies options in order.
//
// Parameters:
//   - options: functional options to configure the viewer
//
// Returns:
//   - Viewer: the viewer
func NewViewer(options ...ViewerOption) Viewer {
	v := &viewerImpl{
		mu:    &sync.Mutex{},
		keys:  input.NewKeyState(),
		dirty: true,
	}
	if err := v.applyConfig(config.Default()); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	for _, opt := range options {
		opt(v)
	}
	if v.controller == nil {
		v.controller = camera.NewController()
	}
	return v
}

func (v *viewerImpl) Controller() camera.Controller {
	return v.controller
}

func (v *viewerImpl) KeyDown(keyCode uint32) {
	switch keyCode {
	case input.KeyTogglePerspective:
		v.SetPerspective(!v.Perspective())
	case input.KeyToggleElite:
		v.SetElite(!v.Elite())
	case input.KeyCancelSlews:
		v.controller.CancelSlews()
		log.Println("[Viewer] slews cancelled")
	default:
		v.keys.KeyDown(keyCode)
	}
}

func (v *viewerImpl) KeyUp(keyCode uint32) {
	v.keys.KeyUp(keyCode)
}

func (v *viewerImpl) ReleaseKeys() {
	v.keys.Reset()
}

func (v *viewerImpl) Tick(dt float32) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	in := camera.FrameInput{
		Actions:   v.keymap.Snapshot(v.keys),
		ElapsedMs: dt * 1000,
		Zoom:      v.zoom,
		Elite:     v.elite,
	}
	changed := v.controller.Step(in)
	if changed {
		v.dirty = true
	}
	return changed
}

func (v *viewerImpl) Render(r renderer.Renderer) (bool, error) {
	v.mu.Lock()
	if !v.dirty || v.width <= 0 || v.height <= 0 {
		v.mu.Unlock()
		return false, nil
	}
	zoom, perspective, fov := v.zoom, v.perspective, v.fov
	width, height := v.width, v.height
	v.dirty = false
	v.mu.Unlock()

	// the model-view matrix depends on the mode, which only projection building changes
	if v.controller.InPerspectiveMode() != perspective {
		v.controller.ProjectionMatrix(perspective, fov, width, height)
	}

	v.controller.ApplyModelView(r, zoom)
	v.controller.ApplyProjection(r, perspective, fov, width, height)
	r.WriteViewUniform(v.controller.Uniform(zoom))

	if err := r.Present(); err != nil {
		v.Invalidate()
		return false, err
	}
	return true, nil
}

func (v *viewerImpl) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dirty = true
}

func (v *viewerImpl) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width, v.height = width, height
	v.dirty = true
}

func (v *viewerImpl) Scroll(delta float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	factor := float32(math.Pow(float64(v.zoomStep), float64(delta)))
	v.setZoom(v.zoom * factor)
}

func (v *viewerImpl) Zoom() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom
}

func (v *viewerImpl) SetZoom(zoom float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.setZoom(zoom)
}

func (v *viewerImpl) setZoom(zoom float32) {
	zoom = common.Clamp(zoom, v.minZoom, v.maxZoom)
	if zoom != v.zoom {
		v.zoom = zoom
		v.dirty = true
	}
}

func (v *viewerImpl) FlyTo(pos mgl32.Vec3) {
	v.mu.Lock()
	seconds := v.flySeconds
	v.target, v.hasTarget = pos, true
	v.mu.Unlock()

	log.Printf("[Viewer] fly to %v (%.2fs)", pos, seconds)
	v.controller.StartPositionSlew(pos, seconds)
	v.Invalidate()
}

func (v *viewerImpl) LookAt(target mgl32.Vec3) {
	v.mu.Lock()
	zoom, seconds := v.zoom, v.flySeconds
	v.target, v.hasTarget = target, true
	v.mu.Unlock()

	log.Printf("[Viewer] look at %v", target)
	v.controller.LookAt(target, zoom, seconds)
	v.Invalidate()
}

func (v *viewerImpl) InView(p mgl32.Vec3) bool {
	return v.controller.Frustum().ContainsPoint(p)
}

func (v *viewerImpl) TargetInView() (inView, ok bool) {
	v.mu.Lock()
	target, ok := v.target, v.hasTarget
	v.mu.Unlock()
	if !ok {
		return false, false
	}
	return v.InView(target), true
}

func (v *viewerImpl) SetPerspective(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.setPerspective(on)
}

func (v *viewerImpl) setPerspective(on bool) {
	if on == v.perspective {
		return
	}
	v.perspective = on
	v.dirty = true

	if v.controller != nil && v.width > 0 && v.height > 0 {
		v.controller.ProjectionMatrix(on, v.fov, v.width, v.height)
	}

	mode := "orthographic"
	if on {
		mode = "perspective"
	}
	log.Printf("[Viewer] projection mode: %s", mode)
}

func (v *viewerImpl) Perspective() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.perspective
}

func (v *viewerImpl) SetElite(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.elite = on
}

func (v *viewerImpl) Elite() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.elite
}

func (v *viewerImpl) ApplyConfig(c *config.Config) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.applyConfig(c)
}

func (v *viewerImpl) applyConfig(c *config.Config) error {
	keymap, err := c.Keymap()
	if err != nil {
		return fmt.Errorf("failed to apply key bindings: %w", err)
	}
	v.keymap = keymap

	cam := c.Camera
	v.minZoom, v.maxZoom, v.zoomStep = cam.MinZoom, cam.MaxZoom, cam.ZoomStep
	v.fov = mgl32.DegToRad(cam.FieldOfView)
	v.elite = cam.Elite
	if cam.FlySeconds != nil {
		v.flySeconds = *cam.FlySeconds
	}
	if v.zoom == 0 {
		v.zoom = cam.Zoom
	}
	v.setZoom(v.zoom)
	v.setPerspective(cam.Perspective)
	v.dirty = true
	return nil
}
