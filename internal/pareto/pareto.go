// Package pareto implements ParetoOptimizer: weighted-sum
// scalarization across 2-4 objectives, dominance filtering, and pairwise
// trade-off statistics over the resulting frontier.
package pareto

import (
	"context"
	"fmt"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/packing"
	"github.com/opsintel/opsintel-mcp/internal/pathresolver"
	"github.com/opsintel/opsintel-mcp/internal/routing"
	"github.com/opsintel/opsintel-mcp/internal/scenario"
	"github.com/opsintel/opsintel-mcp/internal/scheduling"
	"github.com/opsintel/opsintel-mcp/internal/statutil"
)

// Optimize runs ParetoOptimizer: scalarize each generated weight vector,
// re-solve, and filter the results down to the non-dominated frontier.
func Optimize(ctx context.Context, req *domain.ParetoRequest) *domain.ParetoResponse {
	if err := req.Validate(); err != nil {
		return &domain.ParetoResponse{Status: domain.StatusError, Message: err.Error()}
	}

	weightVectors := scenario.ParetoWeights(len(req.Objectives), req.Weights, req.NumPoints)

	var points []domain.ParetoPoint
	for _, w := range weightVectors {
		scalarizedOn := req.Objectives[argmax(w)]
		values, feasible, err := solveAndExtract(ctx, req.SolverType, req.SolverRequest, scalarizedOn, req.Objectives, req.MaxSolveTimeSeconds)
		if err != nil || !feasible {
			continue
		}
		points = append(points, domain.ParetoPoint{
			Weights:         w,
			ScalarizedOn:    scalarizedOn,
			ObjectiveValues: values,
		})
	}

	if len(points) == 0 {
		return &domain.ParetoResponse{
			Status:          domain.StatusInfeasible,
			Message:         "no weight vector produced a feasible solution",
			PointsGenerated: len(weightVectors),
		}
	}

	frontierIdx := frontier(points, req.Objectives)
	for _, i := range frontierIdx {
		points[i].OnFrontier = true
	}
	var frontierPoints []domain.ParetoPoint
	for _, i := range frontierIdx {
		frontierPoints = append(frontierPoints, points[i])
	}

	spread := computeSpread(frontierPoints, req.Objectives)
	tradeOffs := computeTradeOffs(frontierPoints, req.Objectives)

	return &domain.ParetoResponse{
		Status:           domain.StatusFeasible,
		Message:          fmt.Sprintf("generated %d weight vectors, %d feasible, %d on the Pareto frontier", len(weightVectors), len(points), len(frontierPoints)),
		PointsGenerated:  len(weightVectors),
		PointsFeasible:   len(points),
		PointsOnFrontier: len(frontierPoints),
		Points:           points,
		Frontier:         frontierPoints,
		Spread:           spread,
		TradeOffs:        tradeOffs,
	}
}

func argmax(w []float64) int {
	best := 0
	for i, v := range w {
		if v > w[best] {
			best = i
		}
	}
	return best
}

// solveAndExtract scalarizes on scalarizedOn, re-solves the request, and
// reads off the values of every requested objective from the one solution.
func solveAndExtract(ctx context.Context, solverType domain.SolverType, baseDoc map[string]any, scalarizedOn domain.ParetoObjectiveName, objectives []domain.ParetoObjectiveName, maxTimeSeconds int) (map[string]float64, bool, error) {
	doc, err := pathresolver.DeepCopy(baseDoc)
	if err != nil {
		return nil, false, err
	}

	switch solverType {
	case domain.SolverScheduling:
		var typedReq domain.ScheduleRequest
		if err := pathresolver.FromDocument(doc, &typedReq); err != nil {
			return nil, false, err
		}
		typedReq.Objective = schedulingObjectiveFor(scalarizedOn)
		typedReq.MaxSolveTimeSeconds = clamp(maxTimeSeconds)
		resp := scheduling.Solve(ctx, &typedReq)
		if !resp.Status.Feasible() || resp.Metrics == nil {
			return nil, false, nil
		}
		values := map[string]float64{}
		for _, o := range objectives {
			switch o {
			case domain.ParetoMinimizeMakespan:
				values[string(o)] = resp.Metrics.Makespan
			case domain.ParetoMinimizeTotalTardiness:
				values[string(o)] = resp.Metrics.TotalTardiness
			case domain.ParetoMinimizeMaxTardiness:
				values[string(o)] = resp.Metrics.MaxTardiness
			case domain.ParetoMinimizeTotalCompletionTime:
				values[string(o)] = resp.Metrics.TotalCompletionTime
			case domain.ParetoBalanceLoad:
				values[string(o)] = utilizationSpread(resp.MachineUtil)
			}
		}
		return values, true, nil

	case domain.SolverRouting:
		var typedReq domain.RoutingRequest
		if err := pathresolver.FromDocument(doc, &typedReq); err != nil {
			return nil, false, err
		}
		typedReq.Objective = routingObjectiveFor(scalarizedOn)
		typedReq.MaxSolveTimeSeconds = clamp(maxTimeSeconds)
		resp := routing.Solve(ctx, &typedReq)
		if !resp.Status.Feasible() || resp.Metrics == nil {
			return nil, false, nil
		}
		values := map[string]float64{}
		for _, o := range objectives {
			switch o {
			case domain.ParetoMinimizeTotalDistance:
				values[string(o)] = resp.Metrics.TotalDistance
			case domain.ParetoMinimizeTotalTime:
				values[string(o)] = resp.Metrics.TotalTime
			case domain.ParetoMinimizeVehicles:
				values[string(o)] = float64(resp.Metrics.VehiclesUsed)
			case domain.ParetoBalanceRoutes:
				values[string(o)] = routeDistanceSpread(resp.Routes)
			}
		}
		return values, true, nil

	case domain.SolverPacking:
		var typedReq domain.PackingRequest
		if err := pathresolver.FromDocument(doc, &typedReq); err != nil {
			return nil, false, err
		}
		typedReq.Objective = packingObjectiveFor(scalarizedOn)
		typedReq.MaxSolveTimeSeconds = clamp(maxTimeSeconds)
		resp := packing.Solve(ctx, &typedReq)
		if !resp.Status.Feasible() || resp.Metrics == nil {
			return nil, false, nil
		}
		values := map[string]float64{}
		for _, o := range objectives {
			switch o {
			case domain.ParetoMinimizeBins:
				values[string(o)] = float64(resp.Metrics.BinsUsed)
			case domain.ParetoMaximizeValue:
				values[string(o)] = resp.Metrics.TotalValue
			case domain.ParetoMaximizeItems:
				values[string(o)] = float64(resp.Metrics.ItemsPacked)
			case domain.ParetoBalanceLoad:
				values[string(o)] = binUtilizationSpread(resp.Bins)
			}
		}
		return values, true, nil

	default:
		return nil, false, fmt.Errorf("unknown solver_type %q", solverType)
	}
}

// schedulingObjectiveFor maps the scalarization target to a literal
// solver directive. minimize_total_completion_time has no literal
// counterpart (it is Pareto-only) so it falls back to makespan, the
// objective whose schedule is closest in spirit to minimizing completion.
func schedulingObjectiveFor(o domain.ParetoObjectiveName) domain.ObjectiveType {
	switch o {
	case domain.ParetoMinimizeTotalTardiness:
		return domain.ObjMinTotalTardiness
	case domain.ParetoMinimizeMaxTardiness:
		return domain.ObjMinMaxTardiness
	case domain.ParetoBalanceLoad:
		return domain.ObjBalanceLoad
	default:
		return domain.ObjMinMakespan
	}
}

func routingObjectiveFor(o domain.ParetoObjectiveName) domain.RoutingObjective {
	switch o {
	case domain.ParetoMinimizeTotalTime:
		return domain.RouteMinTotalTime
	case domain.ParetoMinimizeVehicles:
		return domain.RouteMinVehicles
	case domain.ParetoBalanceRoutes:
		return domain.RouteBalanceRoutes
	default:
		return domain.RouteMinTotalDistance
	}
}

func packingObjectiveFor(o domain.ParetoObjectiveName) domain.PackingObjective {
	switch o {
	case domain.ParetoMaximizeValue:
		return domain.PackMaxValue
	case domain.ParetoMaximizeItems:
		return domain.PackMaxItems
	case domain.ParetoBalanceLoad:
		return domain.PackBalanceLoad
	default:
		return domain.PackMinBins
	}
}

func utilizationSpread(util []domain.MachineUtilization) float64 {
	if len(util) == 0 {
		return 0
	}
	min, max := util[0].UtilizationPc, util[0].UtilizationPc
	for _, u := range util[1:] {
		if u.UtilizationPc < min {
			min = u.UtilizationPc
		}
		if u.UtilizationPc > max {
			max = u.UtilizationPc
		}
	}
	return max - min
}

func routeDistanceSpread(routes []domain.VehicleRoute) float64 {
	var used []float64
	for _, r := range routes {
		if len(r.Stops) > 0 {
			used = append(used, r.TotalDistance)
		}
	}
	if len(used) == 0 {
		return 0
	}
	sorted := statutil.Sorted(used)
	return sorted[len(sorted)-1] - sorted[0]
}

func binUtilizationSpread(bins []domain.BinSummary) float64 {
	var used []float64
	for _, b := range bins {
		if b.IsUsed {
			used = append(used, b.UtilizationPc)
		}
	}
	if len(used) == 0 {
		return 0
	}
	sorted := statutil.Sorted(used)
	return sorted[len(sorted)-1] - sorted[0]
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
