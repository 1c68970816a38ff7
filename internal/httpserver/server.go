// Package httpserver exposes suggestions over HTTP with JSON bodies.
//
// Routes:
//   - GET  /health   liveness check.
//   - GET  /info     corpus statistics and limits.
//   - POST /suggest  ranked suggestions for accumulated feedback.
//   - GET  /rules    effective rules for ?hint= and ?rule= values.
//   - GET  /metrics  Prometheus exposition.
//
// Like the IPC server it holds no game state; clients send every feedback
// line with each request.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bastiangx/wordhint/internal/logger"
	"github.com/bastiangx/wordhint/internal/metrics"
	"github.com/bastiangx/wordhint/pkg/config"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 64 << 10

// Server bundles the router and the suggestion engine it serves.
type Server struct {
	r         *chi.Mux
	suggester suggest.ISuggester
	config    *config.Config
	metrics   *metrics.Metrics
	logger    *log.Logger
}

// New constructs a Server, installs middleware, and registers routes.
// Metrics are exposed from gatherer; nil uses the default registry.
func New(s suggest.ISuggester, cfg *config.Config, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	srv := &Server{
		r:         chi.NewRouter(),
		suggester: s,
		config:    cfg,
		metrics:   m,
		logger:    logger.New("http"),
	}

	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	srv.r.Use(chimw.RequestID)
	srv.r.Use(chimw.RealIP)
	srv.r.Use(chimw.Recoverer)
	srv.r.Use(chimw.Timeout(timeout))

	srv.r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv.r.Group(func(r chi.Router) {
		r.Use(jsonContentType)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/info", srv.handleInfo)
		r.Get("/rules", srv.handleRules)
		r.Post("/suggest", srv.handleSuggest)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
		})
	})

	return srv
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorRes{Error: msg})
}
