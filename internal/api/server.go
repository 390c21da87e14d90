// File path: internal/api/server.go

// Package api exposes report generation over HTTP: report endpoints, the
// chat assistant, health probes, and the captured-log view.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/alyprop/propreport/internal/common"
	"github.com/alyprop/propreport/internal/config"
	"github.com/alyprop/propreport/internal/report"
)

// ReportGenerator is the report pipeline as the API consumes it.
type ReportGenerator interface {
	GenerateLegacyReport(ctx context.Context, address string) (report.LegacyReport, error)
	GenerateLegendaryReport(ctx context.Context, address string) (report.LegendaryReport, error)
}

// ChatAssistant answers free-form investment questions.
type ChatAssistant interface {
	Chat(ctx context.Context, question, reportContext string) (string, error)
}

// Server wires the HTTP surface. All collaborators are injected; the server
// holds no global state.
type Server struct {
	cfg          config.Config
	generator    ReportGenerator
	assistant    ChatAssistant
	providerName string
	router       chi.Router
}

func NewServer(cfg config.Config, generator ReportGenerator, assistant ChatAssistant, providerName string) *Server {
	s := &Server{
		cfg:          cfg,
		generator:    generator,
		assistant:    assistant,
		providerName: providerName,
	}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/report", s.handleLegacyReport)
		r.Post("/report/legendary", s.handleLegendaryReport)
		r.Get("/report/sample", s.handleSampleStructure)
		r.Post("/chat", s.handleChat)
		r.Get("/logs", s.handleLogs)
	})

	return r
}

// requestLogger records method, path, status, and duration for every
// request through the shared logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		common.Logger().Info("api: request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		common.Logger().Error("api: encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
