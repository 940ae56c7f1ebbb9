// Package config provides configuration helpers for sceneline commands.
// Values come from the environment, optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for the review server and the analysis pipeline.
const (
	DefaultPort        = "8080"
	DefaultFFmpegPath  = "ffmpeg"
	DefaultFFprobePath = "ffprobe"
	DefaultFaceModel   = "models/face_detection_yunet.onnx"
	DefaultRefreshHz   = 60.0
)

// LoadEnv loads a .env file from the working directory when one exists.
// A missing file is not an error; real environment variables win either way.
func LoadEnv() {
	_ = godotenv.Load()
}

// Port returns the HTTP listen port from PORT, or the default.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// FFmpegPath returns the ffmpeg binary path from FFMPEG_PATH, or "ffmpeg".
func FFmpegPath() string {
	if p := os.Getenv("FFMPEG_PATH"); p != "" {
		return p
	}
	return DefaultFFmpegPath
}

// FFprobePath returns the ffprobe binary path from FFPROBE_PATH, or "ffprobe".
func FFprobePath() string {
	if p := os.Getenv("FFPROBE_PATH"); p != "" {
		return p
	}
	return DefaultFFprobePath
}

// FaceModelPath returns the YuNet ONNX model path from FACE_MODEL.
func FaceModelPath() string {
	if p := os.Getenv("FACE_MODEL"); p != "" {
		return p
	}
	return DefaultFaceModel
}

// RedisAddr returns the analysis-cache Redis address from REDIS_ADDR.
// Empty means the cache is disabled.
func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

// RefreshHz returns the tracker sampling rate from REFRESH_HZ, or the
// default display refresh rate.
func RefreshHz() float64 {
	if v := os.Getenv("REFRESH_HZ"); v != "" {
		if hz, err := strconv.ParseFloat(v, 64); err == nil && hz > 0 {
			return hz
		}
	}
	return DefaultRefreshHz
}
