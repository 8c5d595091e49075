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
	"github.com/rs/zerolog"

	"github.com/evren/schoolhub/internal/bootstrap"
	"github.com/evren/schoolhub/internal/config"
)

// Server owns the HTTP listener and the resources it must release on shutdown.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	httpd  *http.Server
}

// NewServer runs the bootstrap stages and returns a server ready to Run.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("building dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)
	mountUploads(router, cfg, lgr)

	return &Server{
		cfg:    cfg,
		router: router,
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// mountUploads serves stored files (project attachments, resources) at the
// same /uploads path their URLs are built against in bootstrap.
func mountUploads(router *gin.Engine, cfg *config.Config, lgr zerolog.Logger) {
	dir := cfg.Server.StoragePath
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		lgr.Error().Err(err).Str("path", dir).Msg("Could not create upload directory")
		return
	}
	router.Static("/uploads", dir)
	lgr.Info().Str("path", dir).Msg("Serving uploaded files")
}

// Run listens until the server fails or the process receives SIGINT/SIGTERM,
// then shuts down gracefully.
func (s *Server) Run() error {
	s.httpd = &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpd.Addr).Msg("HTTP server listening")
		listenErr <- s.httpd.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-stop:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests within a deadline and closes the pool.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var httpErr error
	if s.httpd != nil {
		if httpErr = s.httpd.Shutdown(ctx); httpErr != nil {
			s.logger.Error().Err(httpErr).Msg("HTTP server shutdown error")
		} else {
			s.logger.Info().Msg("HTTP server stopped")
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
		s.logger.Info().Msg("Database pool closed")
	}

	if httpErr != nil {
		return fmt.Errorf("shutdown completed with errors: %w", httpErr)
	}
	return nil
}
