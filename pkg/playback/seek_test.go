package playback

import (
	"errors"
	"math"
	"testing"
)

func TestSeekController_ClickMapsOffsetToTime(t *testing.T) {
	src := &MockSource{}
	c := NewSeekController(src)

	// Click a quarter of the way along a 200s track.
	seconds, ok := c.Click(0.25*640, 640, 200)
	if !ok {
		t.Fatal("valid click was ignored")
	}
	if math.Abs(seconds-50) > 1e-9 {
		t.Errorf("requested %v, want 50", seconds)
	}

	seeks := src.Seeks()
	if len(seeks) != 1 || math.Abs(seeks[0]-50) > 1e-9 {
		t.Errorf("source received seeks %v, want exactly one at 50", seeks)
	}
}

func TestSeekController_IgnoresUnknownDuration(t *testing.T) {
	src := &MockSource{}
	c := NewSeekController(src)

	if _, ok := c.Click(100, 640, 0); ok {
		t.Error("click with duration 0 issued a seek")
	}
	if _, ok := c.Click(100, 640, -5); ok {
		t.Error("click with negative duration issued a seek")
	}
	if len(src.Seeks()) != 0 {
		t.Errorf("source received %v, want none", src.Seeks())
	}
}

func TestSeekController_IgnoresUnmeasuredTrack(t *testing.T) {
	src := &MockSource{}
	c := NewSeekController(src)

	if _, ok := c.Click(10, 0, 100); ok {
		t.Error("click on a zero-width track issued a seek")
	}
	if len(src.Seeks()) != 0 {
		t.Errorf("source received %v, want none", src.Seeks())
	}
}

func TestSeekController_ClampsToTrackBounds(t *testing.T) {
	src := &MockSource{}
	c := NewSeekController(src)

	if seconds, _ := c.Click(900, 640, 100); seconds != 100 {
		t.Errorf("click past the right edge seeks to %v, want 100", seconds)
	}
	if seconds, _ := c.Click(-40, 640, 100); seconds != 0 {
		t.Errorf("click past the left edge seeks to %v, want 0", seconds)
	}
}

func TestSeekController_NilSource(t *testing.T) {
	c := NewSeekController(nil)
	if _, ok := c.Click(10, 100, 50); ok {
		t.Error("click with no source issued a seek")
	}
}

func TestSeekController_SourceErrorStillCountsAsIssued(t *testing.T) {
	// The write is advisory; a source that rejects it is its own business.
	src := &MockSource{
		SetCurrentTimeFunc: func(float64) error { return errors.New("not ready") },
	}
	c := NewSeekController(src)
	if _, ok := c.Click(50, 100, 10); !ok {
		t.Error("rejected seek reported as not issued")
	}
}
