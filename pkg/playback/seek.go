package playback

import (
	"sync"

	"github.com/cocreatr/sceneline/internal/log"
	"github.com/cocreatr/sceneline/pkg/timeline"
)

// SeekController translates a pointer interaction on the track into a
// playback time assignment. Each valid interaction issues exactly one
// fire-and-forget seek; there is no debouncing or queuing.
type SeekController struct {
	mu     sync.RWMutex
	source TimeSetter
}

// NewSeekController creates a controller writing to the given source.
func NewSeekController(source TimeSetter) *SeekController {
	return &SeekController{source: source}
}

// SetSource swaps the seek target.
func (c *SeekController) SetSource(source TimeSetter) {
	c.mu.Lock()
	c.source = source
	c.mu.Unlock()
}

// Click handles a pointer interaction at horizontal offset px within a track
// width px wide, for media of the given duration in seconds. Returns the
// requested time and whether a seek was issued.
//
// With no source, a non-positive duration, or an unmeasured (zero-width)
// track there is nothing meaningful to seek to; the interaction is silently
// ignored.
func (c *SeekController) Click(offset, width, duration float64) (float64, bool) {
	c.mu.RLock()
	source := c.source
	c.mu.RUnlock()

	if source == nil || duration <= 0 || width <= 0 {
		return 0, false
	}

	fraction := offset / width
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	seconds := timeline.PercentToTime(fraction, duration)
	if err := source.SetCurrentTime(seconds); err != nil {
		// Advisory write: the source stays authoritative and the tracker
		// mirrors whatever it actually lands on.
		log.Debug("seek rejected by source", "seconds", seconds, "error", err)
	}
	return seconds, true
}
