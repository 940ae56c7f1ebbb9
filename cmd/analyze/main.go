// analyze - offline segmentation for one video file.
// Runs the same pipeline the review server uses and writes the
// {segments, duration} JSON next to the input (or to --out).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cocreatr/sceneline/internal/config"
	"github.com/cocreatr/sceneline/internal/log"
	"github.com/cocreatr/sceneline/pkg/analysis"
)

func main() {
	config.LoadEnv()

	cfg := analysis.DefaultConfig()
	cfg.Face.ModelPath = config.FaceModelPath()
	cfg.Speech.FFmpegPath = config.FFmpegPath()
	cfg.FFprobePath = config.FFprobePath()

	out := flag.String("out", "", "Output JSON path (defaults next to input video)")
	logLevel := flag.String("log", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&cfg.Face.ModelPath, "face-model", cfg.Face.ModelPath, "YuNet ONNX face model path")
	flag.Float64Var(&cfg.Face.Confidence, "face-confidence", cfg.Face.Confidence, "Face detection confidence threshold")
	flag.IntVar(&cfg.Face.Stride, "face-stride", cfg.Face.Stride, "Analyze every Nth frame")
	flag.Float64Var(&cfg.Speech.MaxGap, "max-gap", cfg.Speech.MaxGap, "Max silence gap (s) merged into a speech segment")
	flag.Float64Var(&cfg.MinSegment, "min-duration", cfg.MinSegment, "Minimum segment duration (s) kept after smoothing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: analyze [flags] <input-video>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)
	log.Init(*logLevel)

	analyzer, err := analysis.New(cfg)
	if err != nil {
		stdlog.Fatalf("analyzer: %v", err)
	}
	defer analyzer.Close()

	res, err := analyzer.Analyze(context.Background(), input)
	if err != nil {
		stdlog.Fatalf("analyze %s: %v", input, err)
	}

	outPath := *out
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		outPath = filepath.Join(filepath.Dir(input), base+"_segments.json")
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		stdlog.Fatalf("encode result: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		stdlog.Fatalf("write %s: %v", outPath, err)
	}

	fmt.Printf("Wrote segments to: %s\n", outPath)
	fmt.Println("Summary:")
	for _, seg := range res.Segments {
		fmt.Printf(" - %s: %.3f -> %.3f\n", seg.Mode, seg.Start, seg.End)
	}
}
