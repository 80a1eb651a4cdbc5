// Package profiler provides lightweight frame-rate and memory reporting for
// the render loop. Stats are written to the standard logger at a fixed
// interval so a frame hitch or allocation churn shows up without attaching an
// external profiler.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, frame-time spikes, and heap statistics.
// Call Tick once per rendered frame.
type Profiler struct {
	frameCount     int
	worstFrame     time.Duration
	lastFrame      time.Time
	lastReport     time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
	lastGCCount    uint32
}

// NewProfiler creates a new Profiler with a one second report interval.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		lastFrame:      now,
		lastReport:     now,
		updateInterval: time.Second,
	}
}

// SetInterval changes how often stats are logged.
// Intervals <= 0 are ignored.
//
// Parameters:
//   - interval: time between log lines
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	p.updateInterval = interval
}

// Tick records one frame and logs accumulated statistics when the report
// interval has elapsed: FPS, worst frame time in the window, live heap,
// allocation rate, and GC runs since the last report.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	now := time.Now()

	frameTime := now.Sub(p.lastFrame)
	p.lastFrame = now
	p.frameCount++
	if frameTime > p.worstFrame {
		p.worstFrame = frameTime
	}

	elapsed := now.Sub(p.lastReport)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()
	gcRuns := p.memStats.NumGC - p.lastGCCount

	log.Printf("[Profiler] FPS: %.2f | Worst Frame: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC Runs: %d",
		fps, float64(p.worstFrame.Microseconds())/1000, heapMB, allocRateMB, gcRuns)

	p.frameCount = 0
	p.worstFrame = 0
	p.lastReport = now
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.lastGCCount = p.memStats.NumGC
	return true
}
