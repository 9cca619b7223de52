package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// minSlewDistance is the distance below which a position slew snaps instead of animating.
	minSlewDistance = 1.0
	// autoSlewSpeed is the travel speed, in units per second, of an auto-timed position slew.
	autoSlewSpeed = 10000.0
	// minAutoSlewSeconds is the shortest auto-timed position slew.
	minAutoSlewSeconds = 2.0
	// defaultPanSeconds is used for direction slews requested with no duration.
	defaultPanSeconds = 1.0
)

// StartPositionSlew starts moving the target towards a real world position.
//
// A NaN X component means "no change requested" and the call is ignored. Targets closer than
// one unit, and seconds == 0, jump immediately and leave the position timer idle. Negative
// seconds derive the duration from the distance: max(2, distance/10000).
//
// Parameters:
//   - pos: destination in real world coordinates
//   - seconds: slew duration; 0 for instant, < 0 for automatic
//
// Returns:
//   - ViewState: the updated state
func (s ViewState) StartPositionSlew(pos mgl32.Vec3, seconds float32) ViewState {
	if isNaN(pos[0]) {
		return s
	}

	goal := toInternal(pos)
	dist := goal.Sub(s.target).Len()

	if dist < minSlewDistance || seconds == 0 {
		s.target = goal
		s.positionSlew = idleTimer()
		return s
	}

	if seconds < 0 {
		seconds = max(minAutoSlewSeconds, dist/autoSlewSpeed)
	}

	s.positionSlew = SlewTimer{Progress: 0, Duration: seconds, Goal: goal}
	return s
}

// StartDirectionSlew starts panning the direction towards d. The pitch of d is clamped to
// [0, 180] before it becomes the goal.
//
// Unlike StartPositionSlew, seconds == 0 does not jump: it pans over one second. Negative
// values are treated the same way.
//
// Parameters:
//   - d: destination direction in degrees; a NaN X component ignores the call
//   - seconds: slew duration, <= 0 for the one second default
//
// Returns:
//   - ViewState: the updated state
func (s ViewState) StartDirectionSlew(d mgl32.Vec3, seconds float32) ViewState {
	if isNaN(d[0]) {
		return s
	}
	if seconds <= 0 {
		seconds = defaultPanSeconds
	}
	d[0] = clampPitch(d[0])
	s.directionSlew = SlewTimer{Progress: 0, Duration: seconds, Goal: d}
	return s
}

// CancelSlews idles both timers, leaving position and direction wherever they are.
//
// Returns:
//   - ViewState: the updated state
func (s ViewState) CancelSlews() ViewState {
	s.positionSlew.Progress = 1
	s.directionSlew.Progress = 1
	return s
}

// Advance moves any active slew forward by elapsedMs milliseconds.
//
// Returns:
//   - ViewState: the updated state
//   - bool: true if either timer was active, i.e. a repaint is needed
func (s ViewState) Advance(elapsedMs float32) (ViewState, bool) {
	repaint := false
	if elapsedMs < 0 {
		elapsedMs = 0
	}

	if s.positionSlew.Active() {
		s.target, s.positionSlew = s.positionSlew.step(s.target, elapsedMs)
		repaint = true
	}

	if s.directionSlew.Active() {
		s.direction, s.directionSlew = s.directionSlew.step(s.direction, elapsedMs)
		repaint = true
	}

	return s, repaint
}

// step advances current towards the goal. Each tick covers the share of the remaining
// distance that the eased curve covers between the old and new progress, so the value lands
// exactly on the goal at progress 1 whatever the tick sizes were.
func (t SlewTimer) step(current mgl32.Vec3, elapsedMs float32) (mgl32.Vec3, SlewTimer) {
	progress := float64(t.Progress) + float64(elapsedMs)/(float64(t.Duration)*1000)

	if progress >= 1 || float32(progress) >= 1 {
		t.Progress = 1
		return t.Goal, t
	}

	start := easeCurve(float64(t.Progress))
	end := easeCurve(progress)
	fraction := float32((end - start) / (1 - start))

	t.Progress = float32(progress)
	return current.Add(t.Goal.Sub(current).Mul(fraction)), t
}

// easeCurve maps progress in [0, 1] onto the S-curve [-1, 1].
func easeCurve(x float64) float64 {
	return math.Sin((x - 0.5) * math.Pi)
}

func isNaN(f float32) bool {
	return f != f
}
