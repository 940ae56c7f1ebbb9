package playback

import "sync"

// MockSource implements Source for testing. Behavior can be customized via
// function fields; by default it replays the value set with SetNow and
// records every seek.
type MockSource struct {
	// CurrentTimeFunc overrides CurrentTime when set.
	CurrentTimeFunc func() float64

	// SetCurrentTimeFunc overrides SetCurrentTime when set.
	SetCurrentTimeFunc func(seconds float64) error

	mu    sync.Mutex
	now   float64
	seeks []float64
}

// SetNow sets the time CurrentTime reports.
func (m *MockSource) SetNow(seconds float64) {
	m.mu.Lock()
	m.now = seconds
	m.mu.Unlock()
}

// CurrentTime returns the configured time.
func (m *MockSource) CurrentTime() float64 {
	if m.CurrentTimeFunc != nil {
		return m.CurrentTimeFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetCurrentTime records the seek and adopts the value.
func (m *MockSource) SetCurrentTime(seconds float64) error {
	m.mu.Lock()
	m.seeks = append(m.seeks, seconds)
	m.mu.Unlock()
	if m.SetCurrentTimeFunc != nil {
		return m.SetCurrentTimeFunc(seconds)
	}
	m.SetNow(seconds)
	return nil
}

// Seeks returns every recorded seek in order.
func (m *MockSource) Seeks() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.seeks))
	copy(out, m.seeks)
	return out
}

// SpyScheduler is a FrameScheduler driven by hand from tests: nothing fires
// until Fire is called, and every registration and cancellation is counted.
type SpyScheduler struct {
	mu        sync.Mutex
	pending   []*spyHandle
	scheduled int
	cancelled int
}

// NewSpyScheduler creates an empty spy scheduler.
func NewSpyScheduler() *SpyScheduler {
	return &SpyScheduler{}
}

// Schedule registers fn without running it.
func (s *SpyScheduler) Schedule(fn func()) FrameHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &spyHandle{sched: s, fn: fn}
	s.pending = append(s.pending, h)
	s.scheduled++
	return h
}

// Fire runs every currently-pending callback that has not been cancelled and
// returns how many ran. Callbacks registered while firing (a self-
// rescheduling loop) wait for the next Fire.
func (s *SpyScheduler) Fire() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	ran := 0
	for _, h := range batch {
		h.mu.Lock()
		cancelled := h.cancelled
		h.mu.Unlock()
		if cancelled {
			continue
		}
		h.fn()
		ran++
	}
	return ran
}

// PendingCount returns the number of registrations awaiting Fire.
func (s *SpyScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.pending {
		h.mu.Lock()
		if !h.cancelled {
			n++
		}
		h.mu.Unlock()
	}
	return n
}

// ScheduledCount returns the total registrations ever made.
func (s *SpyScheduler) ScheduledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduled
}

// CancelledCount returns the total cancellations observed.
func (s *SpyScheduler) CancelledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

type spyHandle struct {
	sched     *SpyScheduler
	fn        func()
	mu        sync.Mutex
	cancelled bool
}

func (h *spyHandle) Cancel() {
	h.mu.Lock()
	already := h.cancelled
	h.cancelled = true
	h.mu.Unlock()
	if already {
		return
	}
	h.sched.mu.Lock()
	h.sched.cancelled++
	h.sched.mu.Unlock()
}
