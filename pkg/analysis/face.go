package analysis

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

// FaceConfig configures the frame-sampling face detector.
type FaceConfig struct {
	// ModelPath is the YuNet ONNX model file.
	ModelPath string

	// Confidence is the minimum detection score to count a face.
	Confidence float64

	// Stride analyzes every Nth frame; intervening frames keep the last
	// observation. 1 analyzes every frame.
	Stride int

	// Initial detector input size; updated per frame.
	InputWidth  int
	InputHeight int
}

// DefaultFaceConfig returns the detector defaults used by the review server.
func DefaultFaceConfig() FaceConfig {
	return FaceConfig{
		ModelPath:   "models/face_detection_yunet.onnx",
		Confidence:  0.3,
		Stride:      1,
		InputWidth:  320,
		InputHeight: 320,
	}
}

// FaceDetector scans a video file and reports the intervals in which at least
// one face is visible, using OpenCV's FaceDetectorYN.
type FaceDetector struct {
	detector gocv.FaceDetectorYN
	config   FaceConfig
	mu       sync.Mutex // protects inference
}

// NewFaceDetector creates a detector from a YuNet ONNX model.
func NewFaceDetector(cfg FaceConfig) (*FaceDetector, error) {
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", cfg.ModelPath)
	}
	if cfg.Stride < 1 {
		cfg.Stride = 1
	}

	detector := gocv.NewFaceDetectorYNWithParams(
		cfg.ModelPath,
		"", // no config file needed for ONNX
		image.Pt(cfg.InputWidth, cfg.InputHeight),
		float32(cfg.Confidence),     // score threshold
		0.3,                         // NMS threshold
		5000,                        // top K
		int(gocv.NetBackendDefault), // backend
		int(gocv.NetTargetCPU),      // target
	)

	return &FaceDetector{detector: detector, config: cfg}, nil
}

// Scan reads the whole file and returns contiguous face-presence spans plus
// the duration derived from frame count and FPS. Capture devices and some
// containers report 0 FPS; those fall back to 30.
func (d *FaceDetector) Scan(ctx context.Context, videoPath string) ([]Span, float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	capture, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return nil, 0, fmt.Errorf("open video: %w", err)
	}
	defer capture.Close()

	fps := capture.Get(gocv.VideoCaptureFPS)
	if fps <= 0 {
		fps = 30.0
	}

	img := gocv.NewMat()
	defer img.Close()
	faces := gocv.NewMat()
	defer faces.Close()

	var spans []Span
	var open *Span
	frame := 0
	present := false

	for capture.Read(&img) {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}
		if img.Empty() {
			frame++
			continue
		}

		timestamp := float64(frame) / fps
		if frame%d.config.Stride == 0 {
			present = d.detect(&img, &faces)
		}

		if present && open == nil {
			open = &Span{Start: timestamp}
		} else if !present && open != nil {
			open.End = timestamp
			spans = append(spans, *open)
			open = nil
		}
		frame++
	}

	duration := float64(frame) / fps
	if open != nil {
		open.End = duration
		spans = append(spans, *open)
	}
	return spans, duration, nil
}

// detect reports whether the frame contains a face above the confidence
// threshold.
func (d *FaceDetector) detect(img, faces *gocv.Mat) bool {
	d.detector.SetInputSize(image.Pt(img.Cols(), img.Rows()))
	d.detector.Detect(*img, faces)

	for r := 0; r < faces.Rows(); r++ {
		// YuNet row layout: 0-3 bbox, 4-13 landmarks, 14 score.
		if float64(faces.GetFloatAt(r, 14)) >= d.config.Confidence {
			return true
		}
	}
	return false
}

// Close releases the detector resources.
func (d *FaceDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Close()
	return nil
}
