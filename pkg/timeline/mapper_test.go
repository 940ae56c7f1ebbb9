package timeline

import (
	"math"
	"testing"
)

func TestTimeToPercent_UnknownDuration(t *testing.T) {
	for _, duration := range []float64{0, -1, -100} {
		for _, tm := range []float64{0, 5, 1e9} {
			if got := TimeToPercent(tm, duration); got != 0 {
				t.Errorf("TimeToPercent(%v, %v) = %v, want 0", tm, duration, got)
			}
		}
	}
}

func TestTimeToPercent_Clamped(t *testing.T) {
	if got := TimeToPercent(-5, 100); got != 0 {
		t.Errorf("negative time: got %v, want 0", got)
	}
	if got := TimeToPercent(250, 100); got != 100 {
		t.Errorf("time past end: got %v, want 100", got)
	}
	if got := TimeToPercent(10, 100); got != 10 {
		t.Errorf("TimeToPercent(10, 100) = %v, want 10", got)
	}
}

func TestPercentToTime_RoundTrip(t *testing.T) {
	duration := 137.5
	for _, tm := range []float64{0, 0.001, 13.75, 68.75, 137.5} {
		back := PercentToTime(TimeToPercent(tm, duration)/100, duration)
		if math.Abs(back-tm) > 1e-9 {
			t.Errorf("round trip of %v: got %v", tm, back)
		}
	}
}

func TestPercentToTime_NoClamping(t *testing.T) {
	// Pointer handling clamps; the mapper itself must not.
	if got := PercentToTime(1.5, 100); got != 150 {
		t.Errorf("PercentToTime(1.5, 100) = %v, want 150", got)
	}
}

func TestIntervalWidth_Floor(t *testing.T) {
	// 50ms of a 100s video is 0.05% - floors to the visibility minimum.
	if got := IntervalWidth(50.0, 50.05, 100); got != MinRegionWidth {
		t.Errorf("tiny interval width = %v, want %v", got, MinRegionWidth)
	}
	// Zero-length intervals floor too.
	if got := IntervalWidth(10, 10, 100); got != MinRegionWidth {
		t.Errorf("zero interval width = %v, want %v", got, MinRegionWidth)
	}
}

func TestIntervalWidth_Normal(t *testing.T) {
	if got := IntervalWidth(10, 20, 100); math.Abs(got-10) > 1e-9 {
		t.Errorf("IntervalWidth(10, 20, 100) = %v, want 10", got)
	}
}

func TestIntervalWidth_UnknownDuration(t *testing.T) {
	// Everything collapses to the floor when duration is unknown.
	if got := IntervalWidth(10, 20, 0); got != MinRegionWidth {
		t.Errorf("width with duration 0 = %v, want %v", got, MinRegionWidth)
	}
}
