package playback

import "time"

// DefaultRefreshHz is the assumed display refresh rate when none is given.
const DefaultRefreshHz = 60.0

// FrameScheduler registers a one-shot callback for the next display frame.
// Each registration returns an owned handle that must be cancelled if the
// callback should not fire — the Tracker relies on this to stop cleanly.
type FrameScheduler interface {
	Schedule(fn func()) FrameHandle
}

// FrameHandle is an owned frame registration. Cancel releases it; cancelling
// an already-fired or already-cancelled handle is a no-op.
type FrameHandle interface {
	Cancel()
}

// TickScheduler schedules callbacks at a fixed display refresh cadence.
type TickScheduler struct {
	interval time.Duration
}

// NewTickScheduler creates a scheduler for the given refresh rate in Hz.
// Non-positive rates fall back to DefaultRefreshHz.
func NewTickScheduler(hz float64) *TickScheduler {
	if hz <= 0 {
		hz = DefaultRefreshHz
	}
	return &TickScheduler{
		interval: time.Duration(float64(time.Second) / hz),
	}
}

// Schedule fires fn after one frame interval.
func (s *TickScheduler) Schedule(fn func()) FrameHandle {
	return timerHandle{time.AfterFunc(s.interval, fn)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() {
	h.t.Stop()
}
