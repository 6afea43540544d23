package status

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orrery/parameter"
)

// QualityChange is reported by PerfMonitor when the quality toggle flips
type QualityChange uint8

const (
	QualityUnchanged QualityChange = iota
	QualityLowered
	QualityRestored
)

// PerfMonitor counts frames over a fixed window and toggles a low-quality flag
// with hysteresis: below the enter threshold switches on, above the exit threshold switches off
type PerfMonitor struct {
	window    time.Duration
	enterFPS  float64
	exitFPS   float64
	start     time.Time
	frames    int
	fps       float64
	low       bool
	fpsCell   *Float
	lowCell   *atomic.Bool
	frameCell *atomic.Int64
}

// NewPerfMonitor uses the default window and thresholds; reg may be nil
func NewPerfMonitor(reg *Registry) *PerfMonitor {
	m := &PerfMonitor{
		window:   parameter.PerfWindow,
		enterFPS: parameter.LowQualityEnterFPS,
		exitFPS:  parameter.LowQualityExitFPS,
	}
	if reg != nil {
		m.fpsCell = reg.Floats.Get(KeyFPS)
		m.lowCell = reg.Bools.Get(KeyLowQuality)
		m.frameCell = reg.Ints.Get(KeyFrames)
	}
	return m
}

// Frame records one rendered frame at now
// Returns the quality change decided when a window closes
func (m *PerfMonitor) Frame(now time.Time) QualityChange {
	if m.start.IsZero() {
		m.start = now
	}
	m.frames++
	if m.frameCell != nil {
		m.frameCell.Add(1)
	}

	elapsed := now.Sub(m.start)
	if elapsed < m.window {
		return QualityUnchanged
	}

	m.fps = float64(m.frames) / elapsed.Seconds()
	m.frames = 0
	m.start = now
	if m.fpsCell != nil {
		m.fpsCell.Store(m.fps)
	}

	change := QualityUnchanged
	switch {
	case m.fps < m.enterFPS && !m.low:
		m.low = true
		change = QualityLowered
	case m.fps > m.exitFPS && m.low:
		m.low = false
		change = QualityRestored
	}
	if m.lowCell != nil {
		m.lowCell.Store(m.low)
	}
	return change
}

// FPS measured over the last complete window
func (m *PerfMonitor) FPS() float64 {
	return m.fps
}

// LowQuality reports the current toggle
func (m *PerfMonitor) LowQuality() bool {
	return m.low
}
