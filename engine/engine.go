package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-starmap/engine/profiler"
	"github.com/Carmen-Shannon/oxy-starmap/engine/window"
)

// idleSleep is how long the render loop backs off after an iteration that presented nothing.
const idleSleep = 2 * time.Millisecond

// Engine runs the viewer: a fixed-rate tick loop for input and camera motion, a free-running
// render loop that presents only when the view changed, and the window event loop.
type Engine interface {
	// Window returns the window driven by Run, or nil when headless.
	Window() window.Window

	// EnableProfiler turns on periodic render loop statistics in the log.
	EnableProfiler()

	// DisableProfiler turns profiling output off.
	DisableProfiler()

	// SetTickRate changes the tick rate, taking effect immediately if the engine is running.
	//
	// Parameters:
	//   - fps: ticks per second (60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called every tick with the elapsed seconds.
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called every render loop iteration with the elapsed
	// seconds. It reports whether a frame was presented; iterations that present nothing back off
	// briefly instead of spinning.
	SetRenderCallback(callback func(deltaTime float32) bool)

	// SetRenderFrameLimit caps presented frames per second. 0 uncaps.
	SetRenderFrameLimit(fps float64)

	// Run starts the loops and blocks: with a window until it closes, headless until Quit.
	Run()

	// Quit stops every loop. Safe to call more than once.
	Quit()

	// Wait blocks until every loop has exited.
	Wait()
}

// engine implements Engine.
type engine struct {
	mu *sync.Mutex
	wg sync.WaitGroup

	window   window.Window
	profiler *profiler.Profiler

	running   bool
	profiling bool

	tickRate   time.Duration
	frameLimit time.Duration // 0 = uncapped
	onTick     func(deltaTime float32)
	onRender   func(deltaTime float32) bool

	// rateChanges delivers tick rate changes to a running tick loop; holds at most the latest.
	rateChanges chan time.Duration

	quit     chan struct{}
	quitOnce sync.Once
}

var _ Engine = &engine{}

// NewEngine creates an engine ticking at 60Hz with an uncapped render loop.
//
// Parameters:
//   - options: functional options applied over the defaults
//
// Returns:
//   - Engine: the engine, not yet running
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:          &sync.Mutex{},
		profiler:    profiler.NewProfiler(),
		tickRate:    tickDuration(60),
		rateChanges: make(chan time.Duration, 1),
		quit:        make(chan struct{}),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.start()
	if e.window != nil {
		e.window.ProcessMessages()
		e.Quit()
	}
	<-e.quit
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quit)
	})
}

func (e *engine) Wait() {
	e.wg.Wait()
}

// start launches the tick and render loops.
func (e *engine) start() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.wg.Add(2)
	go e.tickLoop()
	go e.renderLoop()
}

// tickLoop calls the tick callback at the tick rate until quit.
func (e *engine) tickLoop() {
	defer e.wg.Done()

	e.mu.Lock()
	ticker := time.NewTicker(e.tickRate)
	e.mu.Unlock()
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-e.quit:
			return
		case rate := <-e.rateChanges:
			ticker.Reset(rate)
			e.mu.Lock()
			e.tickRate = rate
			e.mu.Unlock()
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			if cb := e.tickCallback(); cb != nil {
				cb(dt)
			}
		}
	}
}

// renderLoop calls the render callback until quit. A panic in the callback is logged and stops the engine.
func (e *engine) renderLoop() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render loop recovered from panic: %v", r)
			e.Quit()
		}
	}()

	last := time.Now()
	for {
		select {
		case <-e.quit:
			return
		default:
		}

		start := time.Now()
		dt := float32(start.Sub(last).Seconds())
		last = start

		presented := false
		if cb := e.renderCallback(); cb != nil {
			presented = cb(dt)
		}

		e.mu.Lock()
		profiling, limit := e.profiling, e.frameLimit
		e.mu.Unlock()
		if profiling {
			e.profiler.Tick(presented)
		}

		switch {
		case !presented:
			time.Sleep(idleSleep)
		case limit > 0:
			if remaining := limit - time.Since(start); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

func (e *engine) tickCallback() func(float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.onTick
}

func (e *engine) renderCallback() func(float32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.onRender
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profiling = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profiling = false
}

func (e *engine) SetTickRate(fps float64) {
	rate := tickDuration(fps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.tickRate = rate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// replace any change the tick loop has not picked up yet
	for {
		select {
		case e.rateChanges <- rate:
			return
		default:
		}
		select {
		case <-e.rateChanges:
		default:
		}
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onTick = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32) bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onRender = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.frameLimit = frameDuration(fps)
}

// tickDuration converts a tick rate to a ticker period, defaulting to 60Hz.
func tickDuration(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// frameDuration converts a frame cap to a minimum frame duration; 0 means uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
