package analysis

import (
	"reflect"
	"testing"

	"github.com/cocreatr/sceneline/pkg/segment"
)

func TestConsolidate_ModeMapping(t *testing.T) {
	// 0-10 face only, 10-20 face+speech, 20-30 speech only, 30-40 nothing.
	face := []Span{{Start: 0, End: 20}}
	speech := []Span{{Start: 10, End: 30}}

	got := Consolidate(face, speech, 40)
	want := []segment.Segment{
		{Mode: segment.ModeVisualMontage, Start: 0, End: 10},
		{Mode: segment.ModeDialogueScene, Start: 10, End: 20},
		{Mode: segment.ModeVoiceoverWithPicture, Start: 20, End: 30},
		{Mode: segment.ModeVisualMontage, Start: 30, End: 40},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Consolidate = %+v, want %+v", got, want)
	}
}

func TestConsolidate_MergesAdjacentSameMode(t *testing.T) {
	// Two abutting speech spans with a face throughout: one dialogue segment.
	face := []Span{{Start: 0, End: 30}}
	speech := []Span{{Start: 0, End: 15}, {Start: 15, End: 30}}

	got := Consolidate(face, speech, 30)
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1: %+v", len(got), got)
	}
	if got[0].Mode != segment.ModeDialogueScene || got[0].Start != 0 || got[0].End != 30 {
		t.Errorf("merged segment %+v", got[0])
	}
}

func TestConsolidate_EmptyDetections(t *testing.T) {
	got := Consolidate(nil, nil, 25)
	want := []segment.Segment{{Mode: segment.ModeVisualMontage, Start: 0, End: 25}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Consolidate with no detections = %+v, want montage throughout", got)
	}
}

func TestSmooth_FoldsShortIntoPrevious(t *testing.T) {
	segs := []segment.Segment{
		{Mode: segment.ModeDialogueScene, Start: 0, End: 10},
		{Mode: segment.ModeVisualMontage, Start: 10, End: 10.4},
		{Mode: segment.ModeVoiceoverWithPicture, Start: 10.4, End: 20},
	}
	got := Smooth(segs, 1.0)
	want := []segment.Segment{
		{Mode: segment.ModeDialogueScene, Start: 0, End: 10.4},
		{Mode: segment.ModeVoiceoverWithPicture, Start: 10.4, End: 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Smooth = %+v, want %+v", got, want)
	}
}

func TestSmooth_LeadingShortFoldsForward(t *testing.T) {
	segs := []segment.Segment{
		{Mode: segment.ModeVisualMontage, Start: 0, End: 0.5},
		{Mode: segment.ModeDialogueScene, Start: 0.5, End: 10},
	}
	got := Smooth(segs, 1.0)
	want := []segment.Segment{
		{Mode: segment.ModeDialogueScene, Start: 0, End: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Smooth = %+v, want %+v", got, want)
	}
}

func TestSmooth_ReMergesAfterFolding(t *testing.T) {
	// Folding the montage blip into the previous dialogue leaves two
	// adjacent dialogue segments; they must come back out as one.
	segs := []segment.Segment{
		{Mode: segment.ModeDialogueScene, Start: 0, End: 5},
		{Mode: segment.ModeVisualMontage, Start: 5, End: 5.2},
		{Mode: segment.ModeDialogueScene, Start: 5.2, End: 12},
	}
	got := Smooth(segs, 1.0)
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1: %+v", len(got), got)
	}
	if got[0].Start != 0 || got[0].End != 12 {
		t.Errorf("re-merged segment %+v, want [0, 12]", got[0])
	}
}

func TestSmooth_LoneFragmentKept(t *testing.T) {
	segs := []segment.Segment{{Mode: segment.ModeVisualMontage, Start: 0, End: 0.3}}
	got := Smooth(segs, 1.0)
	if !reflect.DeepEqual(got, segs) {
		t.Errorf("lone fragment dropped: %+v", got)
	}
}

func TestSmooth_DoesNotMutateInput(t *testing.T) {
	segs := []segment.Segment{
		{Mode: segment.ModeVisualMontage, Start: 0, End: 0.5},
		{Mode: segment.ModeDialogueScene, Start: 0.5, End: 10},
	}
	Smooth(segs, 1.0)
	if segs[1].Start != 0.5 {
		t.Errorf("input mutated: %+v", segs[1])
	}
}
