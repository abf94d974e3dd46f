// Package server provides the HTTP API for HireScope.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/analyzer"
	"github.com/hyperjump/hirescope/internal/ats"
	"github.com/hyperjump/hirescope/internal/batch"
	"github.com/hyperjump/hirescope/internal/config"
	"github.com/hyperjump/hirescope/internal/extract"
	"github.com/hyperjump/hirescope/internal/storage"
)

// Server is the HTTP server for the HireScope API.
type Server struct {
	analyzer  *analyzer.Analyzer
	simulator *ats.Simulator
	ranker    *batch.Ranker
	extractor *extract.Extractor
	store     storage.Store // nil disables persistence
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies. store may be
// nil, in which case results are not persisted and GET /api/resume/{id}
// reports storage as disabled.
func NewServer(
	a *analyzer.Analyzer,
	sim *ats.Simulator,
	ranker *batch.Ranker,
	extractor *extract.Extractor,
	store storage.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		analyzer:  a,
		simulator: sim,
		ranker:    ranker,
		extractor: extractor,
		store:     store,
		config:    cfg,
		logger:    logger,
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Handler builds the chi router with all middleware and routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Post("/api/resume/upload", s.handleUpload)
	r.Get("/api/resume/{id}", s.handleGetResult)
	r.Post("/api/ats/simulate", s.handleATSSimulate)
	r.Post("/api/batch/analyze", s.handleBatchAnalyze)
	r.Post("/api/batch/export", s.handleBatchExport)
	r.Post("/api/live/live-analyze", s.handleLiveAnalyze)
	r.Post("/api/templates/generate", s.handleGenerateTemplate)
	r.Get("/health", s.handleHealth)

	return r
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) analyzeTimeout() time.Duration {
	return time.Duration(s.config.Analysis.AnalyzeTimeoutSec) * time.Second
}

func (s *Server) liveTimeout() time.Duration {
	return time.Duration(s.config.Analysis.LiveTimeoutSec) * time.Second
}

func (s *Server) batchTimeout() time.Duration {
	return time.Duration(s.config.Batch.TimeoutSec) * time.Second
}
