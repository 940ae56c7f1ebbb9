// Package web serves the review editor: the HTTP API for triggering
// analysis and the websocket feeds that keep every viewer's timeline in sync
// with playback.
package web

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/cocreatr/sceneline/internal/log"
	"github.com/cocreatr/sceneline/pkg/hub"
	"github.com/cocreatr/sceneline/pkg/review"
	"github.com/cocreatr/sceneline/pkg/segment"
	"github.com/cocreatr/sceneline/pkg/timeline"
)

// Engine runs segmentation analysis for a video path. Both the local
// pipeline and the remote analysis client satisfy it.
type Engine interface {
	Analyze(ctx context.Context, videoPath string) (segment.Result, error)
}

// Server is the review server.
type Server struct {
	app     *fiber.App
	port    string
	session *review.Session
	engine  Engine

	// stateHub feeds viewers; playerHub is the playback peer's channel.
	stateHub  *hub.Hub
	playerHub *hub.Hub
}

// seekCommand is the envelope payload forwarding a seek to the playback peer.
type seekCommand struct {
	Seconds float64 `json:"seconds"`
}

// NewServer creates the review server and wires the session's live feeds
// into the websocket hubs.
func NewServer(port string, session *review.Session, engine Engine) *Server {
	s := &Server{
		port:      port,
		session:   session,
		engine:    engine,
		stateHub:  hub.New("state"),
		playerHub: hub.New("player"),
	}

	session.OnPosition(func(u review.PositionUpdate) {
		s.stateHub.Broadcast("position", u)
	})
	session.OnTimeline(func(tr timeline.Track) {
		s.stateHub.Broadcast("timeline", tr)
	})
	session.OnSeek(func(seconds float64) {
		s.playerHub.Broadcast("seek", seekCommand{Seconds: seconds})
	})

	app := fiber.New(fiber.Config{
		AppName:               "sceneline",
		DisableStartupMessage: true,
		BodyLimit:             1024 * 1024 * 1024, // whole clips arrive via upload
	})

	// CORS for local development
	app.Use(cors.New())

	// Editor assets
	app.Static("/", "./web")

	// API routes
	api := app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Get("/status", s.handleStatus)
	api.Get("/timeline", s.handleTimeline)
	api.Post("/analyze", s.handleAnalyze)
	api.Post("/upload", s.handleUpload)
	api.Post("/seek", s.handleSeek)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/state", websocket.New(s.handleStateWS))
	app.Get("/ws/player", websocket.New(s.handlePlayerWS))

	s.app = app
	return s
}

// Run starts the hubs, the tracker and the listener, and blocks until the
// context is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	go s.stateHub.Run(ctx)
	go s.playerHub.Run(ctx)
	s.session.Start()

	go func() {
		<-ctx.Done()
		s.session.Stop()
		if err := s.app.Shutdown(); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("review server listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}
