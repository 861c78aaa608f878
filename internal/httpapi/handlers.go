package httpapi

import (
	"net/http"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/packing"
	"github.com/opsintel/opsintel-mcp/internal/pareto"
	"github.com/opsintel/opsintel-mcp/internal/prescriptive"
	"github.com/opsintel/opsintel-mcp/internal/robust"
	"github.com/opsintel/opsintel-mcp/internal/routing"
	"github.com/opsintel/opsintel-mcp/internal/scheduling"
	"github.com/opsintel/opsintel-mcp/internal/sensitivity"
	"github.com/opsintel/opsintel-mcp/internal/stochastic"
)

func (s *Server) handleOptimizeSchedule(w http.ResponseWriter, r *http.Request) {
	var req domain.ScheduleRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scheduling.Solve(r.Context(), &req))
}

func (s *Server) handleValidateSchedule(w http.ResponseWriter, r *http.Request) {
	var req domain.ValidateRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scheduling.Validate(&req))
}

func (s *Server) handleOptimizeRouting(w http.ResponseWriter, r *http.Request) {
	var req domain.RoutingRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, routing.Solve(r.Context(), &req))
}

func (s *Server) handleOptimizePacking(w http.ResponseWriter, r *http.Request) {
	var req domain.PackingRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, packing.Solve(r.Context(), &req))
}

func (s *Server) handleAnalyzeSensitivity(w http.ResponseWriter, r *http.Request) {
	var req domain.SensitivityRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sensitivity.Analyze(r.Context(), &req))
}

func (s *Server) handleOptimizeRobust(w http.ResponseWriter, r *http.Request) {
	var req domain.RobustRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, robust.Optimize(r.Context(), &req))
}

func (s *Server) handleOptimizeStochastic(w http.ResponseWriter, r *http.Request) {
	var req domain.StochasticRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stochastic.Optimize(r.Context(), &req))
}

func (s *Server) handleOptimizePareto(w http.ResponseWriter, r *http.Request) {
	var req domain.ParetoRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pareto.Optimize(r.Context(), &req))
}

func (s *Server) handlePrescriptiveAdvise(w http.ResponseWriter, r *http.Request) {
	var req domain.PrescriptiveRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prescriptive.Advise(r.Context(), &req))
}
