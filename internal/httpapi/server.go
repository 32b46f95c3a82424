// Package httpapi exposes the review engine over HTTP for companion
// apps that prefer a local API to the CLI.
package httpapi

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rmaia/aprovado/internal/logging"
	"github.com/rmaia/aprovado/internal/session"
	"github.com/rmaia/aprovado/internal/store"
)

// Config holds the server settings, read from the environment.
type Config struct {
	Addr string
	Mode string // "dev" or "prod"
}

// LoadConfig reads server settings from the environment, loading a .env
// file first if one exists.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		Addr: getenvDefault("APROVADO_ADDR", ":8080"),
		Mode: getenvDefault("APROVADO_MODE", "dev"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Sequencer reports the latest event sequence number, recorded on
// snapshots so replays know where they stand.
type Sequencer interface {
	LastSequence(ctx context.Context) (int64, error)
}

// Server wires the session service to HTTP handlers.
type Server struct {
	svc       *session.Service
	snapshots store.SnapshotRepo
	seq       Sequencer
	log       *logging.Logger
}

// NewServer creates a server. snapshots and seq may be nil, which
// disables persistence (useful in tests).
func NewServer(svc *session.Service, snapshots store.SnapshotRepo, seq Sequencer, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	return &Server{svc: svc, snapshots: snapshots, seq: seq, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router(mode string) *gin.Engine {
	if strings.EqualFold(mode, "prod") || strings.EqualFold(mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLog())

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		api.POST("/queue", s.buildQueue)
		api.POST("/answer", s.recordAnswer)
		api.GET("/schedule", s.schedule)
		api.GET("/suggest", s.suggest)
		api.GET("/predict", s.predict)
		api.GET("/stats", s.stats)
		api.GET("/progress", s.progress)
	}

	return r
}

// requestLog logs one line per request with method, path, status and
// latency.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// persist saves a snapshot of the current state. A nil snapshot repo
// makes it a no-op.
func (s *Server) persist(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	var seq int64
	if s.seq != nil {
		n, err := s.seq.LastSequence(ctx)
		if err != nil {
			return err
		}
		seq = n
	}
	return s.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      s.svc.SnapshotData(),
	})
}
