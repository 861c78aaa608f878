// Package httpapi is the thin HTTP transport: nine POST endpoints
// delegating to the internal engines, plus discovery and health checks.
// No solver logic lives here.
package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/opsintel/opsintel-mcp/internal/toolcatalog"
)

// Server wires the tool catalog and request counters, the only
// process-wide mutable state this service keeps.
type Server struct {
	router            chi.Router
	requestsServed    atomic.Int64
	cumulativeSolveNS atomic.Int64
	startedAt         time.Time
}

// NewServer builds the router and registers every endpoint.
func NewServer() *Server {
	s := &Server{startedAt: time.Now()}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.countRequests)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/optimize_schedule", s.handleOptimizeSchedule)
	r.Post("/validate_schedule", s.handleValidateSchedule)
	r.Post("/optimize_routing", s.handleOptimizeRouting)
	r.Post("/optimize_packing", s.handleOptimizePacking)
	r.Post("/analyze_sensitivity", s.handleAnalyzeSensitivity)
	r.Post("/optimize_robust", s.handleOptimizeRobust)
	r.Post("/optimize_stochastic", s.handleOptimizeStochastic)
	r.Post("/optimize_pareto", s.handleOptimizePareto)
	r.Post("/prescriptive_advise", s.handlePrescriptiveAdvise)

	s.router = r
	return s
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.requestsServed.Add(1)
		s.cumulativeSolveNS.Add(time.Since(start).Nanoseconds())
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	tools := toolcatalog.All()
	type toolInfo struct {
		Name        string `json:"name"`
		Path        string `json:"path"`
		Description string `json:"description"`
		Schema      any    `json:"schema"`
	}
	infos := make([]toolInfo, len(tools))
	for i, t := range tools {
		infos[i] = toolInfo{Name: t.Name, Path: t.Path, Description: t.Description, Schema: t.Schema}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":             "opsintel",
		"requests_served":  s.requestsServed.Load(),
		"uptime_seconds":   time.Since(s.startedAt).Seconds(),
		"tools":            infos,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// decodeBody unmarshals the request body into dst. A malformed body is a
// validation error (422), distinct from a domain error.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"status":  "error",
		"message": err.Error(),
	})
}
