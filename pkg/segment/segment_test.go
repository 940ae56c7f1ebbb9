package segment

import (
	"encoding/json"
	"testing"
)

func TestColor_TotalMapping(t *testing.T) {
	known := map[Mode]string{
		ModeDialogueScene:        DialogueColor,
		ModeVoiceoverWithPicture: VoiceoverColor,
		ModeVisualMontage:        MontageColor,
	}
	for mode, want := range known {
		if got := Color(mode); got != want {
			t.Errorf("Color(%s) = %q, want %q", mode, got, want)
		}
	}

	// Modes this build doesn't know never fail; they render neutral.
	for _, mode := range []Mode{"", "B_ROLL", "dialogue_scene"} {
		if got := Color(mode); got != NeutralColor {
			t.Errorf("Color(%q) = %q, want neutral", mode, got)
		}
	}
}

func TestResult_WireShape(t *testing.T) {
	raw := `{"segments":[{"mode":"DIALOGUE_SCENE","start":0,"end":4.5},{"mode":"VISUAL_MONTAGE","start":4.5,"end":9}],"duration":9}`

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Duration != 9 || len(res.Segments) != 2 {
		t.Fatalf("decoded %d segments, duration %v", len(res.Segments), res.Duration)
	}
	if res.Segments[0].Mode != ModeDialogueScene || res.Segments[0].End != 4.5 {
		t.Errorf("first segment decoded as %+v", res.Segments[0])
	}
	if d := res.Segments[1].Duration(); d != 4.5 {
		t.Errorf("second segment duration %v, want 4.5", d)
	}
}
