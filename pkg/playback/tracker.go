package playback

import "sync"

// Tracker continuously samples a playback source once per display frame and
// republishes the position as a fraction of total duration in [0, 1].
//
// The loop is deliberately tolerant of half-initialized state: with no source
// or no duration it keeps sampling and reports 0, so it resumes by itself the
// moment a source or duration shows up — no restart, no error state to clear.
// The tracker mirrors the source faithfully; it has no monotonicity guarantee
// of its own, so a backward seek on the source shows up as-is.
type Tracker struct {
	mu       sync.RWMutex
	sched    FrameScheduler
	source   TimeReader
	duration float64
	position float64
	onUpdate func(position float64)
	handle   FrameHandle
	running  bool
}

// NewTracker creates a stopped tracker driven by the given scheduler.
func NewTracker(sched FrameScheduler) *Tracker {
	return &Tracker{sched: sched}
}

// OnUpdate sets the callback invoked with each sampled position.
// The callback runs on the scheduler's goroutine and must not block.
func (t *Tracker) OnUpdate(fn func(position float64)) {
	t.mu.Lock()
	t.onUpdate = fn
	t.mu.Unlock()
}

// SetSource swaps the playback source. A pending frame registration against
// the old source is cancelled, never left to fire against a stale reference.
// Passing the same source is a no-op; nil detaches the source.
func (t *Tracker) SetSource(src TimeReader) {
	t.mu.Lock()
	if src == t.source {
		t.mu.Unlock()
		return
	}
	t.source = src
	var stale FrameHandle
	if t.running {
		stale = t.handle
		t.handle = t.sched.Schedule(t.frame)
	}
	t.mu.Unlock()

	if stale != nil {
		stale.Cancel()
	}
}

// SetDuration updates the total duration in seconds. Takes effect on the next
// sample; the loop does not restart.
func (t *Tracker) SetDuration(seconds float64) {
	t.mu.Lock()
	t.duration = seconds
	t.mu.Unlock()
}

// Duration returns the duration the tracker normalizes against.
func (t *Tracker) Duration() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.duration
}

// Position returns the last sampled normalized position in [0, 1].
func (t *Tracker) Position() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.position
}

// Start begins the sampling loop. Calling Start on a running tracker is a
// no-op.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.handle = t.sched.Schedule(t.frame)
}

// Stop halts the loop and cancels the pending frame registration. No position
// is published after Stop returns.
func (t *Tracker) Stop() {
	t.mu.Lock()
	t.running = false
	pending := t.handle
	t.handle = nil
	t.mu.Unlock()

	if pending != nil {
		pending.Cancel()
	}
}

// frame is the per-frame callback: one read, one publish, one reschedule.
func (t *Tracker) frame() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	pos := 0.0
	if t.source != nil && t.duration > 0 {
		pos = t.source.CurrentTime() / t.duration
		if pos < 0 {
			pos = 0
		} else if pos > 1 {
			pos = 1
		}
	}
	t.position = pos
	fn := t.onUpdate
	t.handle = t.sched.Schedule(t.frame)
	t.mu.Unlock()

	if fn != nil {
		fn(pos)
	}
}
