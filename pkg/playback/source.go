// Package playback tracks an externally-owned playback position against media
// time and turns pointer interactions back into seeks.
//
// The playback source is the single piece of shared mutable state in the
// system: the Tracker is its only reader, the SeekController its only writer.
// Both take the source as an injected reference so they can run against a
// fake in tests.
package playback

import "sync"

// TimeReader provides the current playback time in seconds.
// Use this minimal interface when only sampling is needed (the Tracker).
type TimeReader interface {
	CurrentTime() float64
}

// TimeSetter accepts a playback time assignment in seconds.
// The assignment is advisory: the source stays authoritative for the actual
// resulting time.
type TimeSetter interface {
	SetCurrentTime(seconds float64) error
}

// Source is the composite playback source interface.
type Source interface {
	TimeReader
	TimeSetter
}

// RemoteSource mirrors a playback peer on the far side of a websocket: the
// peer reports its current time and duration as it plays, and seek
// assignments are forwarded back to it as commands.
type RemoteSource struct {
	mu       sync.RWMutex
	current  float64
	duration float64
	onSeek   func(seconds float64)
}

// NewRemoteSource creates a source with no time or duration known yet.
func NewRemoteSource() *RemoteSource {
	return &RemoteSource{}
}

// OnSeek sets the callback that delivers seek commands to the peer.
func (s *RemoteSource) OnSeek(fn func(seconds float64)) {
	s.mu.Lock()
	s.onSeek = fn
	s.mu.Unlock()
}

// ReportTime records a time update from the peer.
func (s *RemoteSource) ReportTime(seconds float64) {
	s.mu.Lock()
	s.current = seconds
	s.mu.Unlock()
}

// ReportDuration records the peer's duration metadata. Duration arrives
// asynchronously and may land before or after segments do.
func (s *RemoteSource) ReportDuration(seconds float64) {
	s.mu.Lock()
	s.duration = seconds
	s.mu.Unlock()
}

// CurrentTime returns the last reported playback time.
func (s *RemoteSource) CurrentTime() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Duration returns the last reported duration, 0 while unknown.
func (s *RemoteSource) Duration() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.duration
}

// SetCurrentTime forwards a seek to the peer and adopts the value
// optimistically; the peer's next time report corrects any difference.
func (s *RemoteSource) SetCurrentTime(seconds float64) error {
	s.mu.Lock()
	s.current = seconds
	fn := s.onSeek
	s.mu.Unlock()

	if fn != nil {
		fn(seconds)
	}
	return nil
}
