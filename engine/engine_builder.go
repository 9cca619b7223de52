package engine

import (
	"github.com/Carmen-Shannon/oxy-starmap/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithProfiling starts the engine with profiling output on or off.
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profiling = enabled
	}
}

// WithTickRate sets the tick rate in ticks per second; <= 0 means 60.
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickRate = tickDuration(fps)
	}
}

// WithWindow sets the window whose event loop Run drives. Without one the engine runs headless.
//
// Parameters:
//   - w: an open window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderFrameLimit caps presented frames per second; 0 uncaps.
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = frameDuration(fps)
	}
}
