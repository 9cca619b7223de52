package flight

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/Carmen-Shannon/oxy-starmap/engine/renderer"
	"github.com/Carmen-Shannon/oxy-starmap/engine/viewer"
	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is the viewer state after a step.
type Snapshot struct {
	Step        int        `yaml:"step"`
	Action      string     `yaml:"action"`
	Position    [3]float32 `yaml:"position"`  // real world
	Direction   [3]float32 `yaml:"direction"` // pitch, roll, yaw
	Zoom        float32    `yaml:"zoom"`
	Perspective bool       `yaml:"perspective"`
	Elite       bool       `yaml:"elite"`
	InSlews     bool       `yaml:"in_slews"`
	Frames      int        `yaml:"frames"` // frames presented during the step
	// TargetInView is whether the last fly_to or look_at point is on screen; nil before either.
	TargetInView *bool      `yaml:"target_in_view,omitempty"`
	ViewProj     mgl32.Mat4 `yaml:"view_projection,flow"`
}

// Run replays a script against a viewer, presenting to r after every tick the view changed.
// Immediate actions are followed by one zero-length tick so their frame is presented.
//
// Parameters:
//   - s: a validated script
//   - v: the viewer to drive; it is resized to the script's viewport
//   - r: the renderer frames are presented to
//
// Returns:
//   - []Snapshot: one snapshot per step
//   - error: the first present error
func Run(s *Script, v viewer.Viewer, r renderer.Renderer) ([]Snapshot, error) {
	v.Resize(s.Width, s.Height)
	r.Resize(s.Width, s.Height)

	out := make([]Snapshot, 0, len(s.Steps))
	for i, st := range s.Steps {
		frames, err := apply(st, s.TickMs, v, r)
		if err != nil {
			return out, fmt.Errorf("step %d (%s): %w", i+1, st.Describe(), err)
		}
		out = append(out, snapshot(i+1, st, v, r, frames))
	}
	return out, nil
}

func apply(st Step, tickMs float32, v viewer.Viewer, r renderer.Renderer) (int, error) {
	switch {
	case st.FlyTo != nil:
		v.FlyTo(vec(st.FlyTo))
	case st.LookAt != nil:
		v.LookAt(vec(st.LookAt))
	case st.Run != 0:
		return advance(st.Run, tickMs, v, r)
	case st.Hold != nil:
		codes := make([]uint32, 0, len(st.Hold.Keys))
		for _, name := range st.Hold.Keys {
			code, _ := common.KeyByName(name)
			codes = append(codes, code)
			v.KeyDown(code)
		}
		frames, err := advance(st.Hold.Ms, tickMs, v, r)
		for _, code := range codes {
			v.KeyUp(code)
		}
		return frames, err
	case st.Perspective != nil:
		v.SetPerspective(*st.Perspective)
	case st.Elite != nil:
		v.SetElite(*st.Elite)
	case st.Zoom != 0:
		v.SetZoom(st.Zoom)
	case st.Scroll != 0:
		v.Scroll(st.Scroll)
	case st.Cancel:
		v.Controller().CancelSlews()
	}
	return advance(0, tickMs, v, r)
}

// advance ticks the viewer through ms in tickMs steps, rendering after each tick.
// A zero ms still runs one zero-length tick.
func advance(ms, tickMs float32, v viewer.Viewer, r renderer.Renderer) (int, error) {
	frames := 0
	for remaining := ms; ; {
		dt := min(remaining, tickMs)
		v.Tick(dt / 1000)
		drawn, err := v.Render(r)
		if err != nil {
			return frames, err
		}
		if drawn {
			frames++
		}
		remaining -= dt
		if remaining <= 0 {
			return frames, nil
		}
	}
}

func snapshot(n int, st Step, v viewer.Viewer, r renderer.Renderer, frames int) Snapshot {
	c := v.Controller()
	var targetInView *bool
	if inView, ok := v.TargetInView(); ok {
		targetInView = &inView
	}
	return Snapshot{
		Step:         n,
		Action:       st.Describe(),
		Position:     c.Position(),
		Direction:    c.Direction(),
		Zoom:         v.Zoom(),
		Perspective:  v.Perspective(),
		Elite:        v.Elite(),
		InSlews:      c.InSlews(),
		Frames:       frames,
		TargetInView: targetInView,
		ViewProj:     r.ViewProjection(),
	}
}

func vec(v []float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}
