// Package http exposes the Polish engine as a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/polish/internal/metrics"
	"github.com/aretw0/polish/internal/presentation/treeview"
	"github.com/aretw0/polish/pkg/domain"
	"github.com/aretw0/polish/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Analyzer defines the engine interface the server depends on.
type Analyzer interface {
	Analyze(raw string) (*domain.Analysis, error)
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Expression string `json:"expression"`
}

// AnalyzeResponse is the success payload for an analysis.
type AnalyzeResponse struct {
	ID string `json:"id"`
	*domain.Analysis
	Tree string `json:"diagram"`
}

// ErrorResponse is the failure payload. It carries only the human-readable
// message; failed analyses never include partial results.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server wires the engine, the history store, and the metrics together.
type Server struct {
	engine  Analyzer
	store   ports.AnalysisStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewHandler creates a new HTTP handler for the engine. The store keeps a
// history of successful analyses addressable by ID; the registry receives the
// request counters and backs the /metrics endpoint.
func NewHandler(engine Analyzer, store ports.AnalysisStore, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	s := &Server{
		engine:  engine,
		store:   store,
		metrics: metrics.New(reg),
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Post("/analyze", s.handleAnalyze)
	r.Get("/analyses/{id}", s.handleGet)
	r.Delete("/analyses/{id}", s.handleDelete)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	res, err := s.engine.Analyze(req.Expression)
	if err != nil {
		s.metrics.Failures.WithLabelValues(metrics.FailureReason(err)).Inc()
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	s.metrics.Analyses.WithLabelValues(string(res.Notation)).Inc()

	id := res.ID()
	if err := s.store.Save(r.Context(), id, res); err != nil {
		// History is best-effort; the analysis itself succeeded.
		s.logger.Warn("failed to save analysis history", "id", id, "err", err)
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		ID:       id,
		Analysis: res,
		Tree:     treeview.Render(res.Root),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "analysis not found"})
			return
		}
		s.logger.Error("failed to load analysis", "id", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "storage failure"})
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		ID:       id,
		Analysis: res,
		Tree:     treeview.Render(res.Root),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.logger.Error("failed to delete analysis", "id", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "storage failure"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
