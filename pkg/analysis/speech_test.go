package analysis

import (
	"math"
	"testing"
)

func TestWindowRMS(t *testing.T) {
	// Two windows: one silent, one at half amplitude.
	samples := make([]int16, 200)
	for i := 100; i < 200; i++ {
		samples[i] = math.MaxInt16 / 2
	}

	rms := windowRMS(samples, 100)
	if len(rms) != 2 {
		t.Fatalf("got %d windows, want 2", len(rms))
	}
	if rms[0] != 0 {
		t.Errorf("silent window RMS %v, want 0", rms[0])
	}
	if math.Abs(rms[1]-0.5) > 0.01 {
		t.Errorf("half-amplitude window RMS %v, want ~0.5", rms[1])
	}
}

func TestWindowRMS_Degenerate(t *testing.T) {
	if got := windowRMS(nil, 100); got != nil {
		t.Errorf("empty input produced %v", got)
	}
	if got := windowRMS(make([]int16, 10), 0); got != nil {
		t.Errorf("zero window produced %v", got)
	}
}

func TestActiveSpans_MergesSmallGaps(t *testing.T) {
	// 100ms windows; active, 200ms gap, active. Gap <= 0.5s merges.
	rms := []float64{0.5, 0, 0, 0.5}
	spans := activeSpans(rms, 0.1, 0.1, 0.5)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].Start != 0 || math.Abs(spans[0].End-0.4) > 1e-9 {
		t.Errorf("merged span %+v, want [0, 0.4]", spans[0])
	}
}

func TestActiveSpans_SplitsLargeGaps(t *testing.T) {
	// 1s windows with a 2s silence: stays two spans.
	rms := []float64{0.5, 0, 0, 0.5}
	spans := activeSpans(rms, 1.0, 0.1, 0.5)
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(spans), spans)
	}
	if spans[1].Start != 3 || spans[1].End != 4 {
		t.Errorf("second span %+v, want [3, 4]", spans[1])
	}
}

func TestActiveSpans_Silence(t *testing.T) {
	if spans := activeSpans([]float64{0, 0.01, 0}, 0.1, 0.1, 0.5); spans != nil {
		t.Errorf("silence produced spans %+v", spans)
	}
}
