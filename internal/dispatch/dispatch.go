// Package dispatch implements the solver-dispatch capability
// that every Layer-2 meta-engine uses to re-solve a scenario document
// without knowing which Layer-1 solver family it belongs to.
package dispatch

import (
	"context"
	"fmt"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/packing"
	"github.com/opsintel/opsintel-mcp/internal/pathresolver"
	"github.com/opsintel/opsintel-mcp/internal/routing"
	"github.com/opsintel/opsintel-mcp/internal/scheduling"
)

// SolverType re-exports domain.SolverType so callers that only need the
// dispatch contract don't have to import the domain package separately.
type SolverType = domain.SolverType

const (
	SolverScheduling = domain.SolverScheduling
	SolverRouting    = domain.SolverRouting
	SolverPacking    = domain.SolverPacking
)

// Outcome is the narrow result every Layer-2 engine consumes: enough to
// judge feasibility and compare scenarios, nothing family-specific.
type Outcome struct {
	Status        domain.SolverStatus
	ObjectiveValue float64
	ObjectiveName  string
	Message        string
}

// Feasible reports whether the outcome counts as usable.
func (o Outcome) Feasible() bool { return o.Status.Feasible() }

// Solve re-solves request_document (an untyped JSON document, as produced
// by pathresolver.ToDocument) against the named solver family, bounded by
// maxTimeSeconds. The canonical objective_name per family is fixed
// regardless of the request's own chosen objective.
func Solve(ctx context.Context, solverType SolverType, requestDocument map[string]any, maxTimeSeconds int) Outcome {
	switch solverType {
	case SolverScheduling:
		var req domain.ScheduleRequest
		if err := pathresolver.FromDocument(requestDocument, &req); err != nil {
			return Outcome{Status: domain.StatusError, ObjectiveName: "makespan", Message: err.Error()}
		}
		req.MaxSolveTimeSeconds = clamp(maxTimeSeconds)
		resp := scheduling.Solve(ctx, &req)
		out := Outcome{Status: resp.Status, ObjectiveName: "makespan", Message: resp.Message}
		if resp.Metrics != nil {
			out.ObjectiveValue = resp.Metrics.Makespan
		}
		return out
	case SolverRouting:
		var req domain.RoutingRequest
		if err := pathresolver.FromDocument(requestDocument, &req); err != nil {
			return Outcome{Status: domain.StatusError, ObjectiveName: "total_distance", Message: err.Error()}
		}
		req.MaxSolveTimeSeconds = clamp(maxTimeSeconds)
		resp := routing.Solve(ctx, &req)
		out := Outcome{Status: resp.Status, ObjectiveName: "total_distance", Message: resp.Message}
		if resp.Metrics != nil {
			out.ObjectiveValue = resp.Metrics.TotalDistance
		}
		return out
	case SolverPacking:
		var req domain.PackingRequest
		if err := pathresolver.FromDocument(requestDocument, &req); err != nil {
			return Outcome{Status: domain.StatusError, ObjectiveName: "bins_used", Message: err.Error()}
		}
		req.MaxSolveTimeSeconds = clamp(maxTimeSeconds)
		resp := packing.Solve(ctx, &req)
		out := Outcome{Status: resp.Status, ObjectiveName: "bins_used", Message: resp.Message}
		if resp.Metrics != nil {
			out.ObjectiveValue = float64(resp.Metrics.BinsUsed)
		}
		return out
	default:
		return Outcome{Status: domain.StatusError, Message: fmt.Sprintf("unknown solver_type %q", solverType)}
	}
}

func clamp(seconds int) int {
	if seconds < 1 {
		return 1
	}
	if seconds > 300 {
		return 300
	}
	return seconds
}
