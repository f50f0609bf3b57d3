// Package server exposes the generation pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abdulachik/cozyconnect/internal/config"
	"github.com/abdulachik/cozyconnect/internal/generator"
)

// QuestionGenerator runs the pipeline once.
type QuestionGenerator interface {
	Generate(ctx context.Context) (*generator.Result, error)
}

// Server wraps a gin router plus the pipeline dependencies.
type Server struct {
	Router *gin.Engine

	generator        QuestionGenerator
	limiter          *RateLimiter
	imageRendererURL string
	imageClient      *http.Client
	httpServer       *http.Server
}

// New wires routes and middleware and returns a server.
func New(cfg *config.Config, gen QuestionGenerator) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		ExposeHeaders: []string{
			HeaderRateLimitLimit,
			HeaderRateLimitRemaining,
			HeaderRateLimitReset,
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	s := &Server{
		Router:           router,
		generator:        gen,
		limiter:          NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		imageRendererURL: cfg.ImageRendererURL,
		imageClient:      &http.Client{Timeout: 10 * time.Second},
	}

	limited := router.Group("/api", s.limiter.Middleware())
	limited.GET("/generate", s.handleGenerate)
	limited.POST("/generate", s.handleGenerate)

	router.GET("/api/generate/image", s.handleImage)
	router.GET("/healthz", s.handleHealth)

	return s
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
