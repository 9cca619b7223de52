package camera

// FrameInput is everything one tick of the controller reads from the host.
type FrameInput struct {
	Actions   Actions
	ElapsedMs float32
	Zoom      float32
	Elite     bool
}

// Step runs one frame of camera logic: keyboard turning, keyboard movement, then slew
// advancement, in that order.
//
// Parameters:
//   - in: the input sampled for this tick
//
// Returns:
//   - ViewState: the state after the tick
//   - bool: true if anything changed and the view needs repainting
func (s ViewState) Step(in FrameInput) (ViewState, bool) {
	s, turned := s.HandleTurning(in.Actions, in.ElapsedMs)
	s, moved := s.HandleMovement(in.Actions, in.ElapsedMs, in.Zoom, in.Elite)
	s, slewed := s.Advance(in.ElapsedMs)
	return s, turned || moved || slewed
}
