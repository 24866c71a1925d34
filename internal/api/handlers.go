package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/benefit"
	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/match"
	"github.com/thingvallatech/community-assist/internal/store"
)

var supportedLanguages = map[string]bool{"en": true, "es": true}

// listPrograms serves GET /v1/programs with optional q, category and lang
// query parameters. A search term takes precedence over a category filter.
func (s *Server) listPrograms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("q")
	category := q.Get("category")
	lang := q.Get("lang")
	if lang == "" {
		lang = "en"
	}

	var (
		programs []catalog.ProgramRecord
		err      error
	)
	if search != "" {
		programs, err = s.catalog.SearchPrograms(r.Context(), search, lang)
	} else {
		programs, err = s.catalog.GetAllPrograms(r.Context(), true, category)
	}
	if err != nil {
		s.logger.Error("list programs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load programs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"programs": programs,
		"count":    len(programs),
	})
}

func (s *Server) listEmergencyPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.catalog.GetEmergencyPrograms(r.Context())
	if err != nil {
		s.logger.Error("list emergency programs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load programs")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"programs": programs,
		"count":    len(programs),
	})
}

// getProgram serves GET /v1/programs/{program_id}: the program plus its
// income limits and provider locations.
func (s *Server) getProgram(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "program_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid program id")
		return
	}

	program, err := s.catalog.GetProgramByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "program not found")
			return
		}
		s.logger.Error("get program failed", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load program")
		return
	}

	limits, err := s.catalog.GetIncomeLimits(r.Context(), id)
	if err != nil {
		s.logger.Error("get income limits failed", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load program")
		return
	}
	providers, err := s.catalog.GetProvidersForProgram(r.Context(), id)
	if err != nil {
		s.logger.Error("get program providers failed", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load program")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"program":       program,
		"income_limits": limits,
		"providers":     providers,
	})
}

// listProviders serves GET /v1/providers filtered by county, defaulting to
// the configured target county.
func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	county := r.URL.Query().Get("county")
	if county == "" {
		county = s.cfg.Target.County
	}

	providers, err := s.catalog.GetProvidersByCounty(r.Context(), county)
	if err != nil {
		s.logger.Error("list providers failed", zap.String("county", county), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load providers")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"providers": providers,
		"count":     len(providers),
	})
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.GetProgramStats(r.Context())
	if err != nil {
		s.logger.Error("get stats failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	counts, err := s.catalog.GetCategoryCounts(r.Context())
	if err != nil {
		s.logger.Error("get category counts failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stats":      stats,
		"categories": counts,
	})
}

// matchPrograms serves POST /v1/match: scores the active catalog against
// the submitted household profile and returns relevant programs, best
// first.
func (s *Server) matchPrograms(w http.ResponseWriter, r *http.Request) {
	var profile match.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if profile.County == "" {
		profile.County = s.cfg.Target.County
	}

	programs, err := s.catalog.GetAllPrograms(r.Context(), true, "")
	if err != nil {
		s.logger.Error("match load failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load programs")
		return
	}

	matches := match.Rank(profile, programs)
	writeJSON(w, http.StatusOK, map[string]any{
		"matches": matches,
		"count":   len(matches),
	})
}

type snapRequest struct {
	HouseholdSize int     `json:"household_size"`
	GrossIncome   float64 `json:"gross_income"`
	Rent          float64 `json:"rent"`
	Utilities     float64 `json:"utilities"`
}

// calculateSNAP serves POST /v1/calculate/snap.
func (s *Server) calculateSNAP(w http.ResponseWriter, r *http.Request) {
	var req snapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.HouseholdSize < 1 {
		req.HouseholdSize = 1
	}
	if req.GrossIncome < 0 || req.Rent < 0 || req.Utilities < 0 {
		writeError(w, http.StatusBadRequest, "amounts must not be negative")
		return
	}

	writeJSON(w, http.StatusOK,
		benefit.EstimateSNAP(req.HouseholdSize, req.GrossIncome, req.Rent, req.Utilities))
}

func (s *Server) getTranslations(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if !supportedLanguages[lang] {
		writeError(w, http.StatusBadRequest, "unsupported language")
		return
	}

	translations, err := s.catalog.GetAllTranslations(r.Context(), lang)
	if err != nil {
		s.logger.Error("get translations failed", zap.String("lang", lang), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load translations")
		return
	}
	writeJSON(w, http.StatusOK, translations)
}
