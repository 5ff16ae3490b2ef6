// Package slackhttp is the Slack transport: it verifies and parses
// inbound Slack webhooks, converts them to engine inputs, and renders
// engine messages back into Slack blocks.
package slackhttp

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/junyong1111/cs-slack-bot/internal/engine"
	"github.com/junyong1111/cs-slack-bot/internal/logger"
)

// Enqueuer accepts engine inputs for asynchronous handling. Satisfied
// by *engine.Dispatcher.
type Enqueuer interface {
	Enqueue(in engine.Input) bool
}

// Server is the inbound webhook server.
type Server struct {
	cfg        Config
	dispatcher Enqueuer
	log        *logger.Logger
	router     *gin.Engine
}

// NewServer wires the routes. Replies are delivered by the dispatcher's
// send function, not by the HTTP handlers: Slack requires webhook
// responses within 3 seconds, so handlers only verify, enqueue, and ack.
func NewServer(cfg Config, dispatcher Enqueuer, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		log:        log,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", s.handleHealth)

	slackGroup := router.Group("/slack", s.verifySignature)
	slackGroup.POST("/events", s.handleEvents)
	slackGroup.POST("/interactions", s.handleInteractions)

	s.router = router
	return s
}

// Handler exposes the router for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening for slack events", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
