// Package timeline maps media time onto a percentage-based track and renders
// segments plus the live playhead into a drawable layout.
//
// Everything here is a pure function of its inputs: the same segments,
// duration and position always produce the same track.
package timeline

// MinRegionWidth is the narrowest a segment region may render, in percent of
// track width. Segments shorter than this would otherwise vanish at normal
// zoom; the floor keeps them visible as a sliver.
const MinRegionWidth = 0.2

// TimeToPercent maps a media time to a percentage of track width.
// Returns 0 when the duration is unknown or non-positive; otherwise the
// result is clamped to [0, 100].
func TimeToPercent(t, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return clamp(t/duration*100, 0, 100)
}

// PercentToTime maps a track-width fraction in [0,1] back to media time.
// The fraction is not clamped here; pointer handling clamps to track bounds
// before calling.
func PercentToTime(fraction, duration float64) float64 {
	return fraction * duration
}

// IntervalWidth returns the render width in percent for the interval
// [start, end], never narrower than MinRegionWidth.
func IntervalWidth(start, end, duration float64) float64 {
	w := TimeToPercent(end, duration) - TimeToPercent(start, duration)
	if w < MinRegionWidth {
		return MinRegionWidth
	}
	return w
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
