package web

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/cocreatr/sceneline/internal/log"
	"github.com/cocreatr/sceneline/pkg/hub"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleStatus returns the current session snapshot.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"session": s.session.Snapshot(),
		"viewers": s.stateHub.ClientCount(),
		"players": s.playerHub.ClientCount(),
	})
}

// handleTimeline returns the current rendered track.
func (s *Server) handleTimeline(c *fiber.Ctx) error {
	return c.JSON(s.session.Track())
}

// AnalyzeRequest is the body for POST /api/analyze.
type AnalyzeRequest struct {
	VideoPath string `json:"video_path"`
}

// handleAnalyze runs analysis on a server-local video file and loads the
// result into the session.
func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil || req.VideoPath == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "video_path required",
		})
	}
	if _, err := os.Stat(req.VideoPath); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "video not found",
		})
	}

	res, err := s.engine.Analyze(c.Context(), req.VideoPath)
	if err != nil {
		log.Error("analysis failed", "video", req.VideoPath, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	s.session.LoadResult(res)
	return c.JSON(res)
}

// handleUpload accepts a multipart video (field "video"), analyzes it from a
// temp file, and always removes the temp file afterwards.
func (s *Server) handleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no video file provided (field name: video)",
		})
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".mp4"
	}
	tmpPath := filepath.Join(os.TempDir(), "upload_"+uuid.NewString()+ext)
	if err := c.SaveFile(file, tmpPath); err != nil {
		log.Error("saving upload failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer os.Remove(tmpPath)

	res, err := s.engine.Analyze(c.Context(), tmpPath)
	if err != nil {
		log.Error("analysis failed", "upload", file.Filename, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	s.session.LoadResult(res)
	return c.JSON(res)
}

// SeekRequest is the body for POST /api/seek: a pointer offset within a
// track of the given measured pixel width.
type SeekRequest struct {
	Offset float64 `json:"offset"`
	Width  float64 `json:"width"`
}

// handleSeek maps the pointer interaction to a playback time. An interaction
// with no meaningful target (unknown duration, unmeasured track) is reported
// as not seeked, never as an error.
func (s *Server) handleSeek(c *fiber.Ctx) error {
	var req SeekRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "offset and width required",
		})
	}

	seconds, ok := s.session.Click(req.Offset, req.Width)
	return c.JSON(fiber.Map{"seeked": ok, "time": seconds})
}

// handleStateWS streams position and timeline envelopes to a viewer.
func (s *Server) handleStateWS(c *websocket.Conn) {
	client := hub.NewClient(s.stateHub, c)
	client.Run()
}

// handlePlayerWS attaches the playback peer: inbound time/duration reports,
// outbound seek commands.
func (s *Server) handlePlayerWS(c *websocket.Conn) {
	client := hub.NewClient(s.playerHub, c)
	client.OnMessage = func(env hub.Envelope) {
		var seconds float64
		if err := json.Unmarshal(env.Data, &seconds); err != nil {
			return
		}
		switch env.Type {
		case "time":
			s.session.ReportTime(seconds)
		case "duration":
			s.session.ReportDuration(seconds)
		}
	}
	client.Run()
}
