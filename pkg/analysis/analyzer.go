package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/cocreatr/sceneline/internal/log"
	"github.com/cocreatr/sceneline/pkg/segment"
)

// Config bundles the full analysis pipeline configuration.
type Config struct {
	Face        FaceConfig
	Speech      SpeechConfig
	FFprobePath string

	// MinSegment folds shorter segments into their neighbor after
	// consolidation, in seconds.
	MinSegment float64
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		Face:        DefaultFaceConfig(),
		Speech:      DefaultSpeechConfig(),
		FFprobePath: "ffprobe",
		MinSegment:  1.0,
	}
}

// Analyzer runs the full pipeline: probe duration, detect face and speech
// presence, consolidate into modes, smooth. Safe for sequential reuse across
// files; detection itself is serialized per detector.
type Analyzer struct {
	config Config
	faces  *FaceDetector
	speech *SpeechDetector
	cache  *Cache
}

// New creates an analyzer, loading the face model eagerly so a missing model
// fails at startup rather than on the first request.
func New(cfg Config) (*Analyzer, error) {
	faces, err := NewFaceDetector(cfg.Face)
	if err != nil {
		return nil, fmt.Errorf("face detector: %w", err)
	}
	if cfg.MinSegment <= 0 {
		cfg.MinSegment = 1.0
	}
	if cfg.FFprobePath == "" {
		cfg.FFprobePath = "ffprobe"
	}
	return &Analyzer{
		config: cfg,
		faces:  faces,
		speech: NewSpeechDetector(cfg.Speech),
	}, nil
}

// SetCache attaches an optional result cache.
func (a *Analyzer) SetCache(c *Cache) {
	a.cache = c
}

// Analyze produces the mode timeline for one video file.
func (a *Analyzer) Analyze(ctx context.Context, videoPath string) (segment.Result, error) {
	if res, ok := a.cache.Get(ctx, videoPath); ok {
		log.Info("analysis cache hit", "video", videoPath)
		return res, nil
	}

	started := time.Now()

	faceSpans, scanDuration, err := a.faces.Scan(ctx, videoPath)
	if err != nil {
		return segment.Result{}, fmt.Errorf("face scan: %w", err)
	}

	speechSpans, err := a.speech.Scan(ctx, videoPath)
	if err != nil {
		return segment.Result{}, fmt.Errorf("speech scan: %w", err)
	}

	duration, err := ProbeDuration(ctx, a.config.FFprobePath, videoPath)
	if err != nil {
		// The frame-count duration from the face scan is close enough when
		// ffprobe is missing.
		log.Warn("ffprobe unavailable, using scan duration", "error", err)
		duration = scanDuration
	}

	segs := Smooth(Consolidate(faceSpans, speechSpans, duration), a.config.MinSegment)
	res := segment.Result{Segments: segs, Duration: duration}

	log.Info("analysis complete",
		"video", videoPath,
		"duration", duration,
		"segments", len(segs),
		"elapsed", time.Since(started).Round(time.Millisecond))

	a.cache.Put(ctx, videoPath, res)
	return res, nil
}

// Close releases detector resources.
func (a *Analyzer) Close() error {
	return a.faces.Close()
}
