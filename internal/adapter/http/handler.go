package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"payroll-analyzer/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the analyzer use case and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc       port.AnalyzerUseCase
	logger    *slog.Logger
	maxUpload int64
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. maxUpload caps
// the multipart body of analysis requests.
func NewHandler(svc port.AnalyzerUseCase, logger *slog.Logger, maxUpload int64) *Handler {
	h := &Handler{svc: svc, logger: logger, maxUpload: maxUpload}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.Route("/api/v1/analyses", func(r chi.Router) {
		r.Post("/", h.handleAnalyze)
		r.Post("/report", h.handleAnalyzeReport)
		r.Get("/{id}/report", h.handleArchivedReport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// logRequests emits one line per request once it has been served.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
