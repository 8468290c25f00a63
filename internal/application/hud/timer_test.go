package hud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock drives a Timer deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTimer(cfg TimerConfig) (*Timer, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	timer := NewTimer(cfg)
	timer.now = func() time.Time { return clock.t }
	return timer, clock
}

func TestTimerCountsDown(t *testing.T) {
	timer, clock := newTestTimer(DefaultTimerConfig())

	timer.Start()
	clock.advance(10 * time.Second)

	assert.Equal(t, 50*time.Second, timer.Remaining())
}

func TestTimerPauseExcludesPausedSpan(t *testing.T) {
	timer, clock := newTestTimer(DefaultTimerConfig())

	timer.Start()
	clock.advance(10 * time.Second)

	timer.Pause()
	clock.advance(5 * time.Minute)
	assert.Equal(t, 50*time.Second, timer.Remaining(), "remaining freezes while paused")

	timer.Resume()
	clock.advance(10 * time.Second)
	assert.Equal(t, 40*time.Second, timer.Remaining())
}

func TestTimerDoublePauseIsNoOp(t *testing.T) {
	timer, clock := newTestTimer(DefaultTimerConfig())

	timer.Start()
	clock.advance(10 * time.Second)
	timer.Pause()
	clock.advance(time.Minute)
	timer.Pause()
	timer.Resume()
	timer.Resume()
	clock.advance(10 * time.Second)

	assert.Equal(t, 40*time.Second, timer.Remaining())
}

func TestTimerRemainingClampsAtZero(t *testing.T) {
	timer, clock := newTestTimer(DefaultTimerConfig())

	timer.Start()
	clock.advance(2 * time.Minute)

	assert.Equal(t, time.Duration(0), timer.Remaining())
	assert.True(t, timer.Expired())
}

func TestTimerUpdateFiresOnceOnExpiry(t *testing.T) {
	timer, clock := newTestTimer(DefaultTimerConfig())

	timer.Start()
	assert.False(t, timer.Update())

	clock.advance(2 * time.Minute)
	assert.True(t, timer.Update(), "first tick past zero reports the edge")
	assert.False(t, timer.Update(), "edge reports only once")

	timer.Start()
	assert.False(t, timer.Update(), "restart re-arms the edge")
	clock.advance(2 * time.Minute)
	assert.True(t, timer.Update())
}

func TestTimerColorThresholds(t *testing.T) {
	cfg := DefaultTimerConfig()
	timer, clock := newTestTimer(cfg)
	timer.Start()

	assert.Equal(t, cfg.NormalColor, timer.Color())

	clock.advance(45 * time.Second) // 15s remaining
	assert.Equal(t, cfg.WarningColor, timer.Color())

	clock.advance(10 * time.Second) // 5s remaining
	assert.Equal(t, cfg.CriticalColor, timer.Color())
}

func TestTimerFormat(t *testing.T) {
	timer, clock := newTestTimer(DefaultTimerConfig())
	timer.Start()

	clock.advance(50*time.Second + 500*time.Millisecond)

	assert.Equal(t, "09.50", timer.Format())
}
