package analysis

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
)

// SpeechConfig configures the energy-gated speech detector.
type SpeechConfig struct {
	// FFmpegPath is the ffmpeg binary used for audio extraction.
	FFmpegPath string

	// SampleRate of the extracted mono PCM, in Hz.
	SampleRate int

	// WindowMs is the RMS analysis window length.
	WindowMs int

	// Threshold is the minimum normalized RMS ([0,1]) for a window to count
	// as speech.
	Threshold float64

	// MaxGap merges speech bursts separated by silences up to this many
	// seconds, so word gaps don't split a sentence into segments.
	MaxGap float64
}

// DefaultSpeechConfig returns the detector defaults used by the review server.
func DefaultSpeechConfig() SpeechConfig {
	return SpeechConfig{
		FFmpegPath: "ffmpeg",
		SampleRate: 16000,
		WindowMs:   30,
		Threshold:  0.015,
		MaxGap:     0.5,
	}
}

// SpeechDetector finds the intervals of a video's audio track that carry
// speech-level energy.
type SpeechDetector struct {
	config SpeechConfig
}

// NewSpeechDetector creates a detector with the given config; zero-valued
// fields take their defaults.
func NewSpeechDetector(cfg SpeechConfig) *SpeechDetector {
	def := DefaultSpeechConfig()
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = def.FFmpegPath
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	if cfg.WindowMs <= 0 {
		cfg.WindowMs = def.WindowMs
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.MaxGap <= 0 {
		cfg.MaxGap = def.MaxGap
	}
	return &SpeechDetector{config: cfg}
}

// Scan extracts the audio track as 16-bit mono PCM and returns merged speech
// spans. A video without an audio stream yields no spans and no error.
func (d *SpeechDetector) Scan(ctx context.Context, videoPath string) ([]Span, error) {
	samples, err := d.extractPCM(ctx, videoPath)
	if err != nil {
		return nil, err
	}

	window := d.config.SampleRate * d.config.WindowMs / 1000
	windowDur := float64(d.config.WindowMs) / 1000
	rms := windowRMS(samples, window)
	return activeSpans(rms, windowDur, d.config.Threshold, d.config.MaxGap), nil
}

// extractPCM shells out to ffmpeg for a mono s16le stream on stdout.
func (d *SpeechDetector) extractPCM(ctx context.Context, videoPath string) ([]int16, error) {
	cmd := exec.CommandContext(ctx, d.config.FFmpegPath,
		"-i", videoPath,
		"-ar", fmt.Sprint(d.config.SampleRate),
		"-ac", "1",
		"-vn",
		"-f", "s16le",
		"-",
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg audio extraction: %w", err)
	}

	raw := out.Bytes()
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	return samples, nil
}

// windowRMS computes per-window RMS energy normalized to [0, 1].
func windowRMS(samples []int16, window int) []float64 {
	if window <= 0 || len(samples) == 0 {
		return nil
	}
	var out []float64
	for i := 0; i < len(samples); i += window {
		end := i + window
		if end > len(samples) {
			end = len(samples)
		}
		var sum float64
		for _, s := range samples[i:end] {
			v := float64(s) / math.MaxInt16
			sum += v * v
		}
		out = append(out, math.Sqrt(sum/float64(end-i)))
	}
	return out
}

// activeSpans turns the window energies into speech spans, merging bursts
// whose silent gap is at most maxGap seconds.
func activeSpans(rms []float64, windowDur, threshold, maxGap float64) []Span {
	var spans []Span
	var open *Span
	for i, e := range rms {
		start := float64(i) * windowDur
		end := start + windowDur
		if e < threshold {
			continue
		}
		if open == nil {
			open = &Span{Start: start, End: end}
			continue
		}
		if start-open.End <= maxGap {
			open.End = end
		} else {
			spans = append(spans, *open)
			open = &Span{Start: start, End: end}
		}
	}
	if open != nil {
		spans = append(spans, *open)
	}
	return spans
}
