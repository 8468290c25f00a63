// Package hud renders the in-game heads-up display: the countdown timer,
// level and score text, all sized responsively against the window.
package hud

import (
	"fmt"
	"image/color"
	"time"
)

// TimerConfig controls the countdown and its warning colors.
type TimerConfig struct {
	Duration time.Duration

	// WarningThreshold and CriticalThreshold are the remaining times at
	// which the display color shifts. Critical should be below warning.
	WarningThreshold  time.Duration
	CriticalThreshold time.Duration

	NormalColor   color.RGBA
	WarningColor  color.RGBA
	CriticalColor color.RGBA
}

// DefaultTimerConfig returns the standard 60 second run timer.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Duration:          60 * time.Second,
		WarningThreshold:  20 * time.Second,
		CriticalThreshold: 8 * time.Second,
		NormalColor:       color.RGBA{R: 226, G: 232, B: 240, A: 255},
		WarningColor:      color.RGBA{R: 250, G: 204, B: 21, A: 255},
		CriticalColor:     color.RGBA{R: 239, G: 68, B: 68, A: 255},
	}
}

// Timer is a pausable countdown. Pausing freezes the remaining time by
// accumulating the paused span and subtracting it from the wall clock, so
// a run paused for a minute resumes exactly where it left off.
type Timer struct {
	cfg TimerConfig

	running       bool
	paused        bool
	startTime     time.Time
	pauseStart    time.Time
	elapsedPaused time.Duration
	expiredSeen   bool

	now func() time.Time
}

// NewTimer creates a stopped timer.
func NewTimer(cfg TimerConfig) *Timer {
	return &Timer{cfg: cfg, now: time.Now}
}

// Start begins a fresh countdown, discarding any previous run.
func (t *Timer) Start() {
	t.running = true
	t.paused = false
	t.startTime = t.now()
	t.elapsedPaused = 0
	t.expiredSeen = false
}

// Stop halts the timer. Remaining freezes at its current value.
func (t *Timer) Stop() {
	if t.running && !t.paused {
		t.pauseStart = t.now()
		t.paused = true
	}
	t.running = false
}

// Pause freezes the countdown. Pausing an already paused or stopped timer
// is a no-op.
func (t *Timer) Pause() {
	if !t.running || t.paused {
		return
	}
	t.paused = true
	t.pauseStart = t.now()
}

// Resume continues a paused countdown, crediting the paused span.
func (t *Timer) Resume() {
	if !t.running || !t.paused {
		return
	}
	t.elapsedPaused += t.now().Sub(t.pauseStart)
	t.paused = false
}

// Paused reports whether the countdown is currently frozen.
func (t *Timer) Paused() bool { return t.paused }

// Running reports whether the countdown is active (paused counts as
// running).
func (t *Timer) Running() bool { return t.running }

// Remaining returns the time left, clamped at zero.
func (t *Timer) Remaining() time.Duration {
	if !t.running && !t.paused {
		return t.cfg.Duration
	}
	end := t.now()
	if t.paused {
		end = t.pauseStart
	}
	elapsed := end.Sub(t.startTime) - t.elapsedPaused
	if rem := t.cfg.Duration - elapsed; rem > 0 {
		return rem
	}
	return 0
}

// Expired reports whether the countdown has reached zero.
func (t *Timer) Expired() bool {
	return (t.running || t.paused) && t.Remaining() == 0
}

// Update returns true exactly once, on the tick the countdown first hits
// zero. The caller uses the edge to trigger the end-of-run transition.
func (t *Timer) Update() bool {
	if !t.Expired() || t.expiredSeen {
		return false
	}
	t.expiredSeen = true
	return true
}

// Color returns the display color for the current remaining time.
func (t *Timer) Color() color.RGBA {
	rem := t.Remaining()
	switch {
	case rem <= t.cfg.CriticalThreshold:
		return t.cfg.CriticalColor
	case rem <= t.cfg.WarningThreshold:
		return t.cfg.WarningColor
	default:
		return t.cfg.NormalColor
	}
}

// Format renders the remaining time as zero-padded seconds with
// centiseconds, e.g. "09.50".
func (t *Timer) Format() string {
	return fmt.Sprintf("%05.2f", t.Remaining().Seconds())
}
