// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/docsmith/quickstart/internal/catalog"
	"github.com/docsmith/quickstart/internal/common"
	"github.com/docsmith/quickstart/internal/onboarding"
)

// Server binds the onboarding flow registry and the snapshot catalog to HTTP.
type Server struct {
	router   chi.Router
	registry onboarding.Registry
	catalog  *catalog.Store
}

// NewServer constructs the HTTP surface over the given registry. The catalog
// is optional; when nil the snapshot endpoints report that persistence is
// unavailable.
func NewServer(registry onboarding.Registry, store *catalog.Store) (*Server, error) {
	logger := common.Logger()
	if len(registry) == 0 {
		return nil, errors.New("flow registry required")
	}
	srv := &Server{
		router:   chi.NewRouter(),
		registry: registry,
		catalog:  store,
	}
	srv.routes()
	logger.Info("api: server ready", "flows", len(registry), "catalog", store != nil)
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/v1/flows", s.handleFlows)
	s.router.Get("/v1/onboarding/{flow}", s.handleOnboarding)
	s.router.Get("/v1/onboarding/{flow}/markdown", s.handleOnboardingMarkdown)
	s.router.Post("/v1/snapshots", s.handleSnapshotCreate)
	s.router.Get("/v1/snapshots", s.handleSnapshotList)
	s.router.Get("/v1/snapshots/{id}", s.handleSnapshotGet)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, common.LogEntries())
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
