package domain

import (
	"fmt"
	"strings"
)

// ParetoObjectiveName is the closed set of objectives ParetoOptimizer can
// scalarize over. minimize_total_completion_time is Pareto-only: the
// scheduling solver never optimizes it directly, it is read off whichever
// schedule a scalarized solve produces.
type ParetoObjectiveName string

const (
	ParetoMinimizeMakespan             ParetoObjectiveName = "minimize_makespan"
	ParetoMinimizeTotalTardiness       ParetoObjectiveName = "minimize_total_tardiness"
	ParetoMinimizeMaxTardiness         ParetoObjectiveName = "minimize_max_tardiness"
	ParetoMinimizeTotalCompletionTime  ParetoObjectiveName = "minimize_total_completion_time"
	ParetoBalanceLoad                 ParetoObjectiveName = "balance_load"
	ParetoMinimizeTotalDistance        ParetoObjectiveName = "minimize_total_distance"
	ParetoMinimizeTotalTime            ParetoObjectiveName = "minimize_total_time"
	ParetoMinimizeVehicles             ParetoObjectiveName = "minimize_vehicles"
	ParetoBalanceRoutes                ParetoObjectiveName = "balance_routes"
	ParetoMinimizeBins                 ParetoObjectiveName = "minimize_bins"
	ParetoMaximizeValue                ParetoObjectiveName = "maximize_value"
	ParetoMaximizeItems                ParetoObjectiveName = "maximize_items"
)

// Maximize reports whether larger is better for this objective, per the
// "maximize_*" naming convention.
func (n ParetoObjectiveName) Maximize() bool {
	return strings.HasPrefix(string(n), "maximize_")
}

var schedulingParetoObjectives = map[ParetoObjectiveName]bool{
	ParetoMinimizeMakespan: true, ParetoMinimizeTotalTardiness: true,
	ParetoMinimizeMaxTardiness: true, ParetoMinimizeTotalCompletionTime: true,
	ParetoBalanceLoad: true,
}

var routingParetoObjectives = map[ParetoObjectiveName]bool{
	ParetoMinimizeTotalDistance: true, ParetoMinimizeTotalTime: true,
	ParetoMinimizeVehicles: true, ParetoBalanceRoutes: true,
}

var packingParetoObjectives = map[ParetoObjectiveName]bool{
	ParetoMinimizeBins: true, ParetoMaximizeValue: true,
	ParetoMaximizeItems: true, ParetoBalanceLoad: true,
}

func validParetoObjectivesFor(solverType SolverType) map[ParetoObjectiveName]bool {
	switch solverType {
	case SolverScheduling:
		return schedulingParetoObjectives
	case SolverRouting:
		return routingParetoObjectives
	case SolverPacking:
		return packingParetoObjectives
	default:
		return nil
	}
}

// ParetoRequest is the input to ParetoOptimizer.
type ParetoRequest struct {
	SolverType          SolverType          `json:"solver_type"`
	SolverRequest       map[string]any      `json:"solver_request"`
	Objectives          []ParetoObjectiveName `json:"objectives"`
	Weights             []float64           `json:"weights,omitempty"`
	NumPoints           int                 `json:"num_points"`
	MaxSolveTimeSeconds int                 `json:"max_solve_time_seconds"`
}

// Validate checks structural invariants cheap to verify before analysis.
func (r *ParetoRequest) Validate() error {
	valid := validParetoObjectivesFor(r.SolverType)
	if valid == nil {
		return fmt.Errorf("unknown solver_type %q", r.SolverType)
	}
	if len(r.SolverRequest) == 0 {
		return fmt.Errorf("solver_request must not be empty")
	}
	if len(r.Objectives) < 2 || len(r.Objectives) > 4 {
		return fmt.Errorf("objectives must list 2 to 4 entries")
	}
	seen := map[ParetoObjectiveName]bool{}
	for _, o := range r.Objectives {
		if !valid[o] {
			return fmt.Errorf("objective %q is not valid for solver_type %q", o, r.SolverType)
		}
		if seen[o] {
			return fmt.Errorf("duplicate objective %q", o)
		}
		seen[o] = true
	}
	if len(r.Weights) != 0 && len(r.Weights) != len(r.Objectives) {
		return fmt.Errorf("weights must have the same length as objectives when supplied")
	}
	if r.NumPoints < 2 || r.NumPoints > 50 {
		return fmt.Errorf("num_points must be in [2,50]")
	}
	if r.MaxSolveTimeSeconds < 1 || r.MaxSolveTimeSeconds > 300 {
		return fmt.Errorf("max_solve_time_seconds must be in [1,300]")
	}
	return nil
}

// ParetoPoint is one solved, feasible weight-vector outcome.
type ParetoPoint struct {
	Weights         []float64          `json:"weights"`
	ScalarizedOn    ParetoObjectiveName `json:"scalarized_on"`
	ObjectiveValues map[string]float64 `json:"objective_values"`
	OnFrontier      bool               `json:"on_frontier"`
}

// ParetoTradeOff is the pairwise correlation/ratio summary between two
// objectives across the frontier.
type ParetoTradeOff struct {
	ObjectiveA    string  `json:"objective_a"`
	ObjectiveB    string  `json:"objective_b"`
	Correlation   float64 `json:"correlation"`
	TradeOffRatio float64 `json:"trade_off_ratio"`
	Relationship  string  `json:"relationship"`
}

// ParetoResponse is the output of ParetoOptimizer.
type ParetoResponse struct {
	Status           SolverStatus         `json:"status"`
	Message          string               `json:"message"`
	PointsGenerated  int                  `json:"points_generated"`
	PointsFeasible   int                  `json:"points_feasible"`
	PointsOnFrontier int                  `json:"points_on_frontier"`
	Points           []ParetoPoint        `json:"points,omitempty"`
	Frontier         []ParetoPoint        `json:"frontier,omitempty"`
	Spread           map[string]float64   `json:"spread,omitempty"`
	TradeOffs        []ParetoTradeOff     `json:"trade_offs,omitempty"`
}
