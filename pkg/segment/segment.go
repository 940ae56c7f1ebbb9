// Package segment defines the labeled time intervals produced by video
// analysis and the wire shape they travel in.
//
// Segments are created wholesale by an analysis pass and replaced wholesale
// by the next one; nothing in this package mutates them. The sequence order
// is the source order — callers must not assume segments are sorted or
// non-overlapping.
package segment

// Mode classifies the narrative content of a segment.
type Mode string

const (
	// ModeDialogueScene is on-camera speech (speech with a face present).
	ModeDialogueScene Mode = "DIALOGUE_SCENE"
	// ModeVoiceoverWithPicture is speech with no face on screen.
	ModeVoiceoverWithPicture Mode = "VOICEOVER_WITH_PICTURE"
	// ModeVisualMontage is footage without speech.
	ModeVisualMontage Mode = "VISUAL_MONTAGE"
)

// Render colors per mode. NeutralColor covers modes this build doesn't know.
const (
	DialogueColor  = "#4f8df7"
	VoiceoverColor = "#58c776"
	MontageColor   = "#f0a63c"
	NeutralColor   = "#8a8f98"
)

// Color returns the render color for a mode. The mapping is total: an
// unrecognized mode maps to NeutralColor rather than failing, so segments
// from a newer analyzer still render.
func Color(m Mode) string {
	switch m {
	case ModeDialogueScene:
		return DialogueColor
	case ModeVoiceoverWithPicture:
		return VoiceoverColor
	case ModeVisualMontage:
		return MontageColor
	default:
		return NeutralColor
	}
}

// Segment is one labeled interval of media time, in seconds.
// Invariant (supplied, not checked): 0 <= Start <= End.
type Segment struct {
	Mode  Mode    `json:"mode"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the interval length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Result is the atomic analysis payload: an ordered segment sequence plus the
// total playable duration. This is the JSON contract of the analyze and
// upload endpoints.
type Result struct {
	Segments []Segment `json:"segments"`
	Duration float64   `json:"duration"`
}
