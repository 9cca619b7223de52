package profiler

import (
	"log"
	"runtime"
	"time"
)

// stats is one reporting window of render loop statistics.
type stats struct {
	LoopsPerSecond    float64 // render loop iterations per second
	RepaintsPerSecond float64 // iterations that presented a frame, per second
	HeapMB            float64
	AllocRateMB       float64
	GCCount           uint32
	SysMB             float64
}

// Profiler tracks render loop rate, repaint rate and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	loopCount      int
	repaintCount   int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
	last           stats
	logf           func(format string, args ...any)
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		logf:           log.Printf,
	}
}

// Tick should be called once per render loop iteration.
// The star map only repaints when the view changed, so loop rate and repaint rate are tracked separately.
// Logs statistics when the update interval has elapsed.
//
// Parameters:
//   - presented: whether this iteration presented a frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(presented bool) bool {
	p.loopCount++
	if presented {
		p.repaintCount++
	}
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	secs := elapsed.Seconds()

	// TotalAlloc only grows, so the delta since the last report is the churn.
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	p.last = stats{
		LoopsPerSecond:    float64(p.loopCount) / secs,
		RepaintsPerSecond: float64(p.repaintCount) / secs,
		HeapMB:            float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:       float64(allocDelta) / 1024 / 1024 / secs,
		GCCount:           p.memStats.NumGC,
		SysMB:             float64(p.memStats.Sys) / 1024 / 1024,
	}

	var lastPauseUs uint64
	if p.last.GCCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(p.last.GCCount-1)%256] / 1000
	}

	p.logf("[Profiler] Loop: %.2f/s | Repaints: %.2f/s | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs) | Sys: %.2f MB",
		p.last.LoopsPerSecond, p.last.RepaintsPerSecond, p.last.HeapMB, p.last.AllocRateMB,
		p.last.GCCount, lastPauseUs, p.last.SysMB)

	p.loopCount = 0
	p.repaintCount = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
