package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestEngineHeadlessRun(t *testing.T) {
	var ticks, renders atomic.Int32
	e := NewEngine(WithTickRate(500))
	e.SetTickCallback(func(dt float32) {
		if dt < 0 {
			t.Errorf("negative tick delta %v", dt)
		}
		ticks.Add(1)
	})
	e.SetRenderCallback(func(dt float32) bool {
		renders.Add(1)
		return false
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for ticks.Load() < 5 || renders.Load() < 5 {
		select {
		case <-deadline:
			t.Fatalf("loops did not run: ticks=%d renders=%d", ticks.Load(), renders.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	e.Quit()
	e.Quit()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestEngineRenderPanicQuits(t *testing.T) {
	e := NewEngine()
	e.SetRenderCallback(func(float32) bool {
		panic("boom")
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine kept running after a render panic")
	}
}

func TestEngineSetTickRateWhileRunning(t *testing.T) {
	impl := NewEngine(WithTickRate(1000)).(*engine)
	impl.start()
	impl.SetTickRate(200)
	impl.SetTickRate(250)

	deadline := time.After(5 * time.Second)
	for {
		impl.mu.Lock()
		rate := impl.tickRate
		impl.mu.Unlock()
		if rate == tickDuration(250) {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("tick rate = %v, want %v", rate, tickDuration(250))
		case <-time.After(5 * time.Millisecond):
		}
	}

	impl.Quit()
	impl.Wait()
}

func TestDurations(t *testing.T) {
	tests := map[string]struct {
		got  time.Duration
		want time.Duration
	}{
		"TickDefault": {tickDuration(0), time.Second / 60},
		"Tick100":     {tickDuration(100), 10 * time.Millisecond},
		"FrameUncap":  {frameDuration(0), 0},
		"FrameNeg":    {frameDuration(-5), 0},
		"Frame50":     {frameDuration(50), 20 * time.Millisecond},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
