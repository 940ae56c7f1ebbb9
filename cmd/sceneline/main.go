// sceneline - review server for automatically-segmented video.
// Serves the editor, runs the analysis pipeline, and keeps every connected
// viewer's timeline in sync with playback.
package main

import (
	"context"
	"flag"
	stdlog "log"
	"os/signal"
	"syscall"

	"github.com/cocreatr/sceneline/internal/config"
	"github.com/cocreatr/sceneline/internal/log"
	"github.com/cocreatr/sceneline/pkg/analysis"
	"github.com/cocreatr/sceneline/pkg/playback"
	"github.com/cocreatr/sceneline/pkg/review"
	"github.com/cocreatr/sceneline/pkg/web"
)

func main() {
	cfg, opts := parseFlags()
	log.Init(opts.logLevel)

	var engine web.Engine
	if opts.remoteURL != "" {
		engine = analysis.NewClient(opts.remoteURL)
	} else {
		analyzer, err := analysis.New(cfg)
		if err != nil {
			stdlog.Fatalf("analyzer: %v", err)
		}
		defer analyzer.Close()

		if cache := analysis.NewCache(opts.redisAddr); cache != nil {
			analyzer.SetCache(cache)
			defer cache.Close()
		}
		engine = analyzer
	}

	session := review.NewSession(playback.NewTickScheduler(opts.refreshHz))
	server := web.NewServer(opts.port, session, engine)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := server.Run(ctx); err != nil {
		stdlog.Fatalf("server: %v", err)
	}
}

type options struct {
	port      string
	redisAddr string
	remoteURL string
	refreshHz float64
	logLevel  string
}

// parseFlags parses command line flags on top of the environment defaults.
func parseFlags() (analysis.Config, options) {
	config.LoadEnv()

	cfg := analysis.DefaultConfig()
	cfg.Face.ModelPath = config.FaceModelPath()
	cfg.Speech.FFmpegPath = config.FFmpegPath()
	cfg.FFprobePath = config.FFprobePath()

	opts := options{
		port:      config.Port(),
		redisAddr: config.RedisAddr(),
		refreshHz: config.RefreshHz(),
	}

	flag.StringVar(&opts.port, "port", opts.port, "HTTP listen port")
	flag.StringVar(&opts.redisAddr, "redis", opts.redisAddr, "Redis address for the analysis cache (empty disables)")
	flag.StringVar(&opts.remoteURL, "remote", "", "Delegate analysis to a remote engine at this base URL")
	flag.Float64Var(&opts.refreshHz, "refresh", opts.refreshHz, "Position sampling rate in Hz")
	flag.StringVar(&opts.logLevel, "log", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&cfg.Face.ModelPath, "face-model", cfg.Face.ModelPath, "YuNet ONNX face model path")
	flag.Float64Var(&cfg.Face.Confidence, "face-confidence", cfg.Face.Confidence, "Face detection confidence threshold")
	flag.IntVar(&cfg.Face.Stride, "face-stride", cfg.Face.Stride, "Analyze every Nth frame")
	flag.Float64Var(&cfg.Speech.MaxGap, "max-gap", cfg.Speech.MaxGap, "Max silence gap (s) merged into a speech segment")
	flag.Float64Var(&cfg.MinSegment, "min-duration", cfg.MinSegment, "Minimum segment duration (s) kept after smoothing")
	flag.Parse()

	return cfg, opts
}
