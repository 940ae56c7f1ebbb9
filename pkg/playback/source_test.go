package playback

import "testing"

func TestRemoteSource_MirrorsPeerReports(t *testing.T) {
	s := NewRemoteSource()
	if s.CurrentTime() != 0 || s.Duration() != 0 {
		t.Fatal("fresh source should know nothing")
	}

	s.ReportTime(12.5)
	s.ReportDuration(60)
	if s.CurrentTime() != 12.5 {
		t.Errorf("CurrentTime = %v, want 12.5", s.CurrentTime())
	}
	if s.Duration() != 60 {
		t.Errorf("Duration = %v, want 60", s.Duration())
	}

	// The peer is authoritative: a later report overrides an optimistic seek.
	s.SetCurrentTime(30)
	s.ReportTime(29.7)
	if s.CurrentTime() != 29.7 {
		t.Errorf("CurrentTime = %v, want the peer's 29.7", s.CurrentTime())
	}
}

func TestRemoteSource_SeekForwardsToPeer(t *testing.T) {
	s := NewRemoteSource()

	var forwarded []float64
	s.OnSeek(func(seconds float64) { forwarded = append(forwarded, seconds) })

	if err := s.SetCurrentTime(42); err != nil {
		t.Fatalf("SetCurrentTime: %v", err)
	}
	if len(forwarded) != 1 || forwarded[0] != 42 {
		t.Errorf("forwarded %v, want one command at 42", forwarded)
	}
	// Optimistic adoption until the peer reports back.
	if s.CurrentTime() != 42 {
		t.Errorf("CurrentTime = %v, want 42", s.CurrentTime())
	}
}
