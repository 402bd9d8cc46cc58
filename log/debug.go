// Package log provides the program's file loggers and an opt-in debug log
// with trace helpers and a frame profiler. Enable debug mode with TP_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     = log.New(io.Discard, "", 0)
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "teleprompter-debug.log")

// slowFrame is the render time above which a frame is reported.
const slowFrame = 16 * time.Millisecond

// frameWindow is the number of recent frames kept for statistics.
const frameWindow = 100

// InitDebug enables the debug log when TP_DEBUG=1 is set.
// Call this after Initialize() in main.
func InitDebug() {
	if os.Getenv("TP_DEBUG") != "1" {
		DebugEnabled = false
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		profiler.LogStats()
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// LayoutTrace logs window placement decisions.
func LayoutTrace(format string, v ...interface{}) {
	trace("LAYOUT", format, v...)
}

// InputTrace logs commands and surface input.
func InputTrace(format string, v ...interface{}) {
	trace("INPUT", format, v...)
}

// PersistTrace logs state file reads and writes.
func PersistTrace(format string, v ...interface{}) {
	trace("PERSIST", format, v...)
}

// RenderTrace logs surface render events.
func RenderTrace(component, format string, v ...interface{}) {
	trace("RENDER:"+component, format, v...)
}

func trace(tag, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("["+tag+"] "+format, v...)
	}
}

// FrameProfiler tracks how long the surface takes to render.
type FrameProfiler struct {
	mu           sync.Mutex
	views        map[string]*ViewMetrics
	frameCount   int64
	totalTime    time.Duration
	frameTimings []time.Duration
}

// ViewMetrics aggregates render timings of one view.
type ViewMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MaxTime     time.Duration
}

var profiler = &FrameProfiler{
	views:        make(map[string]*ViewMetrics),
	frameTimings: make([]time.Duration, 0, frameWindow),
}

// GetProfiler returns the global frame profiler.
func GetProfiler() *FrameProfiler {
	return profiler
}

// StartRender begins timing a view. Call the returned function when it is done.
func (p *FrameProfiler) StartRender(view string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.record(view, time.Since(start))
	}
}

func (p *FrameProfiler) record(view string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.views[view]
	if !ok {
		m = &ViewMetrics{Name: view}
		p.views[view] = m
	}
	m.RenderCount++
	m.TotalTime += elapsed
	if elapsed > m.MaxTime {
		m.MaxTime = elapsed
	}
}

// RecordFrame records a complete frame.
func (p *FrameProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed
	if len(p.frameTimings) >= frameWindow {
		p.frameTimings = p.frameTimings[1:]
	}
	p.frameTimings = append(p.frameTimings, elapsed)

	if elapsed > slowFrame && DebugLog != nil {
		DebugLog.Printf("[PERF WARNING] slow frame: %v", elapsed)
	}
}

// GetStats returns a summary of render statistics.
func (p *FrameProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("\n=== Frame Profile ===\n")
	sb.WriteString(fmt.Sprintf("Total frames: %d\n", p.frameCount))
	if p.frameCount > 0 {
		sb.WriteString(fmt.Sprintf("Avg frame time: %v\n", p.totalTime/time.Duration(p.frameCount)))
	}

	views := make([]*ViewMetrics, 0, len(p.views))
	for _, m := range p.views {
		views = append(views, m)
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].TotalTime > views[j].TotalTime
	})
	for _, m := range views {
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.MaxTime))
	}
	return sb.String()
}

// LogStats writes the render statistics to the debug log.
func (p *FrameProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all profiling data.
func (p *FrameProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.views = make(map[string]*ViewMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.frameTimings = make([]time.Duration, 0, frameWindow)
}
