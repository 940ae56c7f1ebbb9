// Package review owns the live state of one video under review: the playback
// source mirrored from the browser, the frame-driven position tracker, the
// seek controller, and the current segment set.
package review

import (
	"sync"

	"github.com/cocreatr/sceneline/pkg/playback"
	"github.com/cocreatr/sceneline/pkg/segment"
	"github.com/cocreatr/sceneline/pkg/timeline"
)

// PositionUpdate is one tracker sample, ready for broadcast.
type PositionUpdate struct {
	Position float64 `json:"position"` // normalized [0,1]
	Time     float64 `json:"time"`     // seconds
	Duration float64 `json:"duration"` // seconds, 0 while unknown
}

// Status is the session snapshot served by the status endpoint.
type Status struct {
	Position     float64 `json:"position"`
	Time         float64 `json:"time"`
	Duration     float64 `json:"duration"`
	SegmentCount int     `json:"segment_count"`
}

// Session composes the playback core for a single video. Segments are
// replaced wholesale per analysis; duration may arrive from the analysis
// result or from the playback peer's metadata, in either order.
type Session struct {
	mu       sync.RWMutex
	segments []segment.Segment
	duration float64

	source  *playback.RemoteSource
	tracker *playback.Tracker
	seeker  *playback.SeekController

	onPosition func(PositionUpdate)
	onTimeline func(timeline.Track)
}

// NewSession creates a stopped session whose tracker runs on the given
// scheduler.
func NewSession(sched playback.FrameScheduler) *Session {
	source := playback.NewRemoteSource()
	s := &Session{
		source:  source,
		tracker: playback.NewTracker(sched),
		seeker:  playback.NewSeekController(source),
	}
	s.tracker.SetSource(source)
	s.tracker.OnUpdate(s.publish)
	return s
}

// OnPosition sets the callback receiving every tracker sample.
func (s *Session) OnPosition(fn func(PositionUpdate)) {
	s.mu.Lock()
	s.onPosition = fn
	s.mu.Unlock()
}

// OnTimeline sets the callback fired after each wholesale segment
// replacement.
func (s *Session) OnTimeline(fn func(timeline.Track)) {
	s.mu.Lock()
	s.onTimeline = fn
	s.mu.Unlock()
}

// OnSeek sets the callback that forwards seek commands to the playback peer.
func (s *Session) OnSeek(fn func(seconds float64)) {
	s.source.OnSeek(fn)
}

// Start begins position sampling.
func (s *Session) Start() {
	s.tracker.Start()
}

// Stop halts sampling and cancels the pending frame registration.
func (s *Session) Stop() {
	s.tracker.Stop()
}

// LoadResult replaces the segment set and duration from an analysis result
// and notifies timeline listeners.
func (s *Session) LoadResult(res segment.Result) {
	s.mu.Lock()
	s.segments = res.Segments
	s.duration = res.Duration
	fn := s.onTimeline
	s.mu.Unlock()

	s.source.ReportDuration(res.Duration)
	s.tracker.SetDuration(res.Duration)

	if fn != nil {
		fn(s.Track())
	}
}

// ReportTime records a playback-time report from the peer.
func (s *Session) ReportTime(seconds float64) {
	s.source.ReportTime(seconds)
}

// ReportDuration records the peer's duration metadata. The tracker picks the
// new duration up on its next sample without restarting.
func (s *Session) ReportDuration(seconds float64) {
	s.mu.Lock()
	s.duration = seconds
	s.mu.Unlock()

	s.source.ReportDuration(seconds)
	s.tracker.SetDuration(seconds)
}

// Click handles a pointer interaction at the given offset within a track of
// the given pixel width. Returns the requested time and whether a seek was
// issued.
func (s *Session) Click(offset, width float64) (float64, bool) {
	s.mu.RLock()
	duration := s.duration
	s.mu.RUnlock()
	return s.seeker.Click(offset, width, duration)
}

// Track returns the current rendered track.
func (s *Session) Track() timeline.Track {
	s.mu.RLock()
	segments := s.segments
	duration := s.duration
	s.mu.RUnlock()
	return timeline.BuildTrack(segments, duration, s.tracker.Position())
}

// Snapshot returns the session status.
func (s *Session) Snapshot() Status {
	s.mu.RLock()
	duration := s.duration
	count := len(s.segments)
	s.mu.RUnlock()

	pos := s.tracker.Position()
	return Status{
		Position:     pos,
		Time:         s.source.CurrentTime(),
		Duration:     duration,
		SegmentCount: count,
	}
}

// publish fans a tracker sample out to the position listener.
func (s *Session) publish(position float64) {
	s.mu.RLock()
	duration := s.duration
	fn := s.onPosition
	s.mu.RUnlock()

	if fn != nil {
		fn(PositionUpdate{
			Position: position,
			Time:     s.source.CurrentTime(),
			Duration: duration,
		})
	}
}
