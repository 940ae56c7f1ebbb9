package timeline

import (
	"math"
	"reflect"
	"testing"

	"github.com/cocreatr/sceneline/pkg/segment"
)

func TestBuildTrack_Projection(t *testing.T) {
	segs := []segment.Segment{
		{Mode: segment.ModeDialogueScene, Start: 10, End: 20},
	}
	tr := BuildTrack(segs, 100, 0)

	if len(tr.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(tr.Regions))
	}
	r := tr.Regions[0]
	if math.Abs(r.Left-10) > 1e-9 || math.Abs(r.Width-10) > 1e-9 {
		t.Errorf("region at %v width %v, want left 10 width 10", r.Left, r.Width)
	}
	if r.Color != segment.DialogueColor {
		t.Errorf("region color %q, want %q", r.Color, segment.DialogueColor)
	}
}

func TestBuildTrack_SourceOrderPreserved(t *testing.T) {
	// Unsorted, overlapping input renders exactly as delivered.
	segs := []segment.Segment{
		{Mode: segment.ModeVisualMontage, Start: 50, End: 80},
		{Mode: segment.ModeDialogueScene, Start: 0, End: 60},
	}
	tr := BuildTrack(segs, 100, 0)

	if tr.Regions[0].Mode != segment.ModeVisualMontage {
		t.Errorf("first region mode %q, want montage first (source order)", tr.Regions[0].Mode)
	}
	if tr.Regions[1].Mode != segment.ModeDialogueScene {
		t.Errorf("second region mode %q, want dialogue second", tr.Regions[1].Mode)
	}
}

func TestBuildTrack_UnknownModeGetsNeutralColor(t *testing.T) {
	tr := BuildTrack([]segment.Segment{{Mode: "INTERPRETIVE_DANCE", Start: 0, End: 10}}, 100, 0)
	if tr.Regions[0].Color != segment.NeutralColor {
		t.Errorf("unknown mode color %q, want %q", tr.Regions[0].Color, segment.NeutralColor)
	}
}

func TestBuildTrack_Playhead(t *testing.T) {
	tr := BuildTrack(nil, 100, 0.25)
	if math.Abs(tr.Playhead-25) > 1e-9 {
		t.Errorf("playhead %v, want 25", tr.Playhead)
	}

	// Out-of-range positions clamp.
	if got := BuildTrack(nil, 100, 1.7).Playhead; got != 100 {
		t.Errorf("playhead beyond end = %v, want 100", got)
	}
	if got := BuildTrack(nil, 100, -0.3).Playhead; got != 0 {
		t.Errorf("playhead before start = %v, want 0", got)
	}
}

func TestBuildTrack_Degenerate(t *testing.T) {
	empty := BuildTrack(nil, 100, 0)
	if len(empty.Regions) != 0 {
		t.Errorf("empty input rendered %d regions", len(empty.Regions))
	}

	// Duration 0: regions collapse to the left edge at floor width,
	// playhead at 0.
	tr := BuildTrack([]segment.Segment{{Mode: segment.ModeDialogueScene, Start: 10, End: 20}}, 0, 0.5)
	if tr.Regions[0].Left != 0 || tr.Regions[0].Width != MinRegionWidth {
		t.Errorf("collapsed region left %v width %v, want 0 and %v",
			tr.Regions[0].Left, tr.Regions[0].Width, MinRegionWidth)
	}
	if tr.Playhead != 0 {
		t.Errorf("playhead with duration 0 = %v, want 0", tr.Playhead)
	}
}

func TestBuildTrack_Idempotent(t *testing.T) {
	segs := []segment.Segment{
		{Mode: segment.ModeDialogueScene, Start: 1, End: 4},
		{Mode: segment.ModeVoiceoverWithPicture, Start: 4, End: 9},
	}
	a := BuildTrack(segs, 10, 0.42)
	b := BuildTrack(segs, 10, 0.42)
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs produced different tracks")
	}
}
