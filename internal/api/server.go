// Package api exposes the read-only HTTP interface over the program
// catalog.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/config"
	"github.com/thingvallatech/community-assist/internal/metrics"
	"github.com/thingvallatech/community-assist/internal/store"
)

// Catalog is the read surface the handlers need. *store.Store satisfies it.
type Catalog interface {
	Ping(ctx context.Context) error
	GetAllPrograms(ctx context.Context, activeOnly bool, category string) ([]catalog.ProgramRecord, error)
	SearchPrograms(ctx context.Context, term, lang string) ([]catalog.ProgramRecord, error)
	GetEmergencyPrograms(ctx context.Context) ([]catalog.ProgramRecord, error)
	GetProgramByID(ctx context.Context, id int64) (catalog.ProgramRecord, error)
	GetIncomeLimits(ctx context.Context, programID int64) ([]catalog.IncomeLimit, error)
	GetProvidersForProgram(ctx context.Context, programID int64) ([]catalog.ProviderRecord, error)
	GetProvidersByCounty(ctx context.Context, county string) ([]catalog.ProviderRecord, error)
	GetProgramStats(ctx context.Context) (store.Stats, error)
	GetCategoryCounts(ctx context.Context) ([]store.CategoryCount, error)
	GetAllTranslations(ctx context.Context, lang string) (map[string]string, error)
}

// Server wires HTTP handlers to the catalog store.
type Server struct {
	router  chi.Router
	catalog Catalog
	cfg     config.Config
	logger  *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(cat Catalog, cfg config.Config, logger *zap.Logger) *Server {
	s := &Server{catalog: cat, cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(metricsMiddleware)
	r.Use(timeoutMiddleware(30 * time.Second))

	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/programs", func(r chi.Router) {
			r.Get("/", s.listPrograms)
			r.Get("/emergency", s.listEmergencyPrograms)
			r.Get("/{program_id}", s.getProgram)
		})
		r.Get("/providers", s.listProviders)
		r.Get("/stats", s.getStats)
		r.Post("/match", s.matchPrograms)
		r.Post("/calculate/snap", s.calculateSNAP)
		r.Get("/translations/{lang}", s.getTranslations)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Ping(r.Context()); err != nil {
		s.logger.Error("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unhealthy",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "healthy",
	})
}
