// Package analysis turns raw face-presence and speech-presence detections
// into a single narrative-mode timeline for review.
//
// Two detectors feed it: a frame-sampling face detector (gocv) and an
// energy-gated speech detector over audio extracted with ffmpeg. Their spans
// are consolidated by a boundary sweep and smoothed so sub-second fragments
// don't litter the track.
package analysis

import (
	"sort"

	"github.com/cocreatr/sceneline/pkg/segment"
)

// Span is one positive presence interval from a detector, in seconds.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Adjacent intervals closer than this are considered touching.
const boundaryTolerance = 1e-6

// Consolidate merges face and speech presence into mode-labeled segments
// covering [0, duration]:
//
//	speech + face    → DIALOGUE_SCENE
//	speech, no face  → VOICEOVER_WITH_PICTURE
//	no speech        → VISUAL_MONTAGE
//
// Every unique span boundary splits the timeline; each slice is classified by
// membership at its midpoint, then adjacent same-mode slices are merged.
func Consolidate(face, speech []Span, duration float64) []segment.Segment {
	bounds := map[float64]struct{}{0: {}, duration: {}}
	for _, s := range face {
		bounds[s.Start] = struct{}{}
		bounds[s.End] = struct{}{}
	}
	for _, s := range speech {
		bounds[s.Start] = struct{}{}
		bounds[s.End] = struct{}{}
	}

	cuts := make([]float64, 0, len(bounds))
	for b := range bounds {
		cuts = append(cuts, b)
	}
	sort.Float64s(cuts)

	var out []segment.Segment
	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		mid := (a + b) / 2

		mode := segment.ModeVisualMontage
		if covers(speech, mid) {
			if covers(face, mid) {
				mode = segment.ModeDialogueScene
			} else {
				mode = segment.ModeVoiceoverWithPicture
			}
		}
		out = append(out, segment.Segment{Mode: mode, Start: a, End: b})
	}
	return mergeAdjacent(out)
}

// Smooth folds segments shorter than minDuration into their neighbor: the
// previous segment when one exists, otherwise the next. Adjacent same-mode
// segments are re-merged afterwards.
func Smooth(segments []segment.Segment, minDuration float64) []segment.Segment {
	segs := make([]segment.Segment, len(segments))
	copy(segs, segments)

	var out []segment.Segment
	for i := 0; i < len(segs); i++ {
		seg := segs[i]
		if seg.Duration() >= minDuration {
			out = append(out, seg)
			continue
		}
		switch {
		case len(out) > 0:
			out[len(out)-1].End = seg.End
		case i+1 < len(segs):
			segs[i+1].Start = seg.Start
		default:
			// A lone fragment is all there is; keep it.
			out = append(out, seg)
		}
	}
	return mergeAdjacent(out)
}

func covers(spans []Span, t float64) bool {
	for _, s := range spans {
		if s.Start <= t && t < s.End {
			return true
		}
	}
	return false
}

func mergeAdjacent(segs []segment.Segment) []segment.Segment {
	var merged []segment.Segment
	for _, seg := range segs {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.Mode == seg.Mode && seg.Start-last.End < boundaryTolerance {
				last.End = seg.End
				continue
			}
		}
		merged = append(merged, seg)
	}
	return merged
}
