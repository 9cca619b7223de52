package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func perspectiveState() ViewState {
	s, _ := NewViewState().BuildProjectionMatrix(true, mgl32.DegToRad(45), 800, 600)
	return s
}

func TestMovementDistance(t *testing.T) {
	testCases := map[string]struct {
		actions  Actions
		ms       float32
		zoom     float32
		expected float32
	}{
		"Forward":         {actions: ActionForward, ms: 100, zoom: 1, expected: 100},
		"ForwardModifier": {actions: ActionForward | ActionModifier, ms: 100, zoom: 1, expected: 200},
		"ZoomedIn":        {actions: ActionBackward, ms: 100, zoom: 4, expected: 25},
		"ZoomClampHigh":   {actions: ActionLeft, ms: 150, zoom: 100, expected: 10},
		"ZoomClampLow":    {actions: ActionUp, ms: 1, zoom: 0, expected: 100},
		"Opposed":         {actions: ActionLeft | ActionRight, ms: 100, zoom: 1, expected: 0},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			s, moved := NewViewState().HandleMovement(tt.actions, tt.ms, tt.zoom, false)
			if moved != (tt.expected != 0) {
				t.Errorf("unexpected moved flag %v", moved)
			}
			if got := s.Position().Len(); math.Abs(float64(got-tt.expected)) > eps {
				t.Errorf("expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestMovementModes(t *testing.T) {
	tilted := mgl32.Vec3{45, 0, 0}
	d := float32(100 * math.Sqrt2 / 2)

	testCases := map[string]struct {
		state    ViewState
		actions  Actions
		elite    bool
		expected mgl32.Vec3 // real world
	}{
		"OrthoUpIgnoresElite": {
			state:    NewViewState().SetDirection(tilted),
			actions:  ActionUp,
			elite:    true,
			expected: mgl32.Vec3{0, d, d},
		},
		"PerspectiveUp": {
			state:    perspectiveState().SetDirection(tilted),
			actions:  ActionUp,
			expected: mgl32.Vec3{0, d, d},
		},
		"EliteUpIsWorldVertical": {
			state:    perspectiveState().SetDirection(tilted),
			actions:  ActionUp,
			elite:    true,
			expected: mgl32.Vec3{0, 100, 0},
		},
		"EliteForwardStaysLevel": {
			state:    perspectiveState().SetDirection(tilted),
			actions:  ActionForward,
			elite:    true,
			expected: mgl32.Vec3{0, 0, d},
		},
		"Unrotated": {
			state:    NewViewState(),
			actions:  ActionRight | ActionForward,
			expected: mgl32.Vec3{100, -100, 0},
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			s, moved := tt.state.HandleMovement(tt.actions, 100, 1, tt.elite)
			if !moved {
				t.Fatal("expected movement")
			}
			if got := s.Position(); !vec3Near(got, tt.expected, 0.01) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHandleTurning(t *testing.T) {
	testCases := map[string]struct {
		start    mgl32.Vec3
		actions  Actions
		expected mgl32.Vec3
		turned   bool
	}{
		"YawRight":      {actions: ActionYawRight, expected: mgl32.Vec3{0, 0, 7.5}, turned: true},
		"YawWraps":      {start: mgl32.Vec3{90, 0, 179}, actions: ActionYawRight, expected: mgl32.Vec3{90, 0, -173.5}, turned: true},
		"RollLeft":      {start: mgl32.Vec3{90, 0, 0}, actions: ActionRollLeft, expected: mgl32.Vec3{90, -7.5, 0}, turned: true},
		"PitchPastTop":  {start: mgl32.Vec3{179, 0, 0}, actions: ActionPitchUp, expected: mgl32.Vec3{180, 0, 0}, turned: true},
		"PitchBelowMin": {actions: ActionPitchDown, expected: mgl32.Vec3{0, 0, 0}, turned: true},
		"Opposed":       {start: mgl32.Vec3{10, 20, 30}, actions: ActionYawLeft | ActionYawRight, expected: mgl32.Vec3{10, 20, 30}},
		"MovementOnly":  {actions: ActionForward},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			s, turned := NewViewState().SetDirection(tt.start).HandleTurning(tt.actions, 100)
			if turned != tt.turned {
				t.Errorf("expected turned=%v, got %v", tt.turned, turned)
			}
			if got := s.Direction(); !vec3Near(got, tt.expected, eps) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestKeyboardKeepsPitchInRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	s := perspectiveState()

	for i := range 5000 {
		actions := Actions(r.Intn(int(ActionModifier) << 1))
		ms := r.Float32() * 250
		s, _ = s.Step(FrameInput{Actions: actions, ElapsedMs: ms, Zoom: 1, Elite: i%2 == 0})
		if p := s.Direction()[0]; p < 0 || p > 180 {
			t.Fatalf("step %d: pitch %f out of range", i, p)
		}
	}
}

func TestStepReportsRepaint(t *testing.T) {
	testCases := map[string]struct {
		state    ViewState
		in       FrameInput
		expected bool
	}{
		"Idle":     {state: NewViewState(), in: FrameInput{ElapsedMs: 16, Zoom: 1}},
		"Turning":  {state: NewViewState(), in: FrameInput{Actions: ActionPitchUp, ElapsedMs: 16, Zoom: 1}, expected: true},
		"Moving":   {state: NewViewState(), in: FrameInput{Actions: ActionForward, ElapsedMs: 16, Zoom: 1}, expected: true},
		"Slewing":  {state: NewViewState().StartPositionSlew(mgl32.Vec3{500, 0, 0}, 1), in: FrameInput{ElapsedMs: 16, Zoom: 1}, expected: true},
		"NoTimeUp": {state: NewViewState(), in: FrameInput{Actions: ActionForward, Zoom: 1}},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if _, repaint := tt.state.Step(tt.in); repaint != tt.expected {
				t.Errorf("expected repaint=%v, got %v", tt.expected, repaint)
			}
		})
	}
}
