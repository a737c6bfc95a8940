// Package server provides the HTTP server lifecycle for the API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/anirudh/campusconnect/internal/config"
)

// Server wraps the HTTP server together with the resources it owns.
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	redis  *redis.Client
	logger zerolog.Logger
	http   *http.Server
}

// New creates a Server ready to run.
func New(cfg *config.Config, router *gin.Engine, dbPool *pgxpool.Pool, rdb *redis.Client, lgr zerolog.Logger) *Server {
	return &Server{
		config: cfg,
		router: router,
		dbPool: dbPool,
		redis:  rdb,
		logger: lgr,
	}
}

// Run starts the HTTP server and blocks until a shutdown signal arrives
// or the listener fails.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.Server.Port),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting HTTP server")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.logger.Error().Err(err).Msg("HTTP server failed")
		s.closeResources()
		return err
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server gracefully and releases owned resources.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Graceful shutdown failed")
			shutdownErr = err
		}
	}

	s.closeResources()
	s.logger.Info().Msg("Server stopped")
	return shutdownErr
}

func (s *Server) closeResources() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Failed to close Redis client")
		}
		s.redis = nil
	}
	if s.dbPool != nil {
		s.dbPool.Close()
		s.dbPool = nil
	}
}
