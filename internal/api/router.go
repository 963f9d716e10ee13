// Package api serves the PU calculator over HTTP.
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/contactkeval/present-value/internal/check"
	"github.com/contactkeval/present-value/internal/logger"
)

// NewRouter wires the REST endpoints. GET /check evaluates scenarios.
func NewRouter(scenarios []check.Scenario) http.Handler {
	h := NewHandler(scenarios)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	r.Post("/pu", h.PresentValue)
	r.Post("/round", h.Round)
	r.Get("/check", h.Check)

	return r
}

// requestLogger logs method, path, status and latency at Info level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		sanitize := strings.NewReplacer("\n", "", "\r", "").Replace
		logger.Infof("%s %s %d %s [%s]",
			sanitize(r.Method),
			sanitize(r.URL.Path),
			ww.Status(),
			time.Since(start),
			middleware.GetReqID(r.Context()),
		)
	})
}
