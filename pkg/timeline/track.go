package timeline

import "github.com/cocreatr/sceneline/pkg/segment"

// Region is one segment projected onto the track. Left and Width are percent
// of track width.
type Region struct {
	Mode  segment.Mode `json:"mode"`
	Color string       `json:"color"`
	Left  float64      `json:"left"`
	Width float64      `json:"width"`
	Start float64      `json:"start"`
	End   float64      `json:"end"`
}

// Track is a drawable timeline layout: regions in source order plus the
// playhead position in percent. Regions later in the slice paint over earlier
// ones when they overlap; the playhead is always topmost.
type Track struct {
	Regions  []Region `json:"regions"`
	Playhead float64  `json:"playhead"`
	Duration float64  `json:"duration"`
}

// BuildTrack projects an ordered segment sequence and a normalized playback
// position into a Track. Segments are taken as delivered: unsorted or
// overlapping input renders unsorted or overlapping regions. An empty
// sequence yields an empty track; a zero duration collapses every region to
// the left edge with the playhead at 0.
func BuildTrack(segments []segment.Segment, duration, position float64) Track {
	regions := make([]Region, 0, len(segments))
	for _, s := range segments {
		regions = append(regions, Region{
			Mode:  s.Mode,
			Color: segment.Color(s.Mode),
			Left:  TimeToPercent(s.Start, duration),
			Width: IntervalWidth(s.Start, s.End, duration),
			Start: s.Start,
			End:   s.End,
		})
	}
	playhead := clamp(position, 0, 1) * 100
	if duration <= 0 {
		playhead = 0
	}
	return Track{
		Regions:  regions,
		Playhead: playhead,
		Duration: duration,
	}
}
