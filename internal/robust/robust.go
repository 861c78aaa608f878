// Package robust implements RobustOptimizer: picking the scenario whose
// objective best matches a chosen target across an uncertainty set.
package robust

import (
	"context"
	"fmt"
	"math"

	"github.com/opsintel/opsintel-mcp/internal/dispatch"
	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/scenario"
	"github.com/opsintel/opsintel-mcp/internal/statutil"
)

// Optimize solves the nominal scenario plus numScenarios corner and
// random-fill perturbations, then picks the one closest to req.Mode's
// target.
func Optimize(ctx context.Context, req *domain.RobustRequest) *domain.RobustResponse {
	if err := req.Validate(); err != nil {
		return &domain.RobustResponse{Status: domain.StatusError, Message: err.Error()}
	}

	nominalOutcome := dispatch.Solve(ctx, req.SolverType, req.SolverRequest, req.MaxSolveTimeSeconds)
	if !nominalOutcome.Feasible() {
		return &domain.RobustResponse{Status: domain.StatusError, Message: "nominal scenario is not feasible"}
	}
	objNominal := nominalOutcome.ObjectiveValue

	nominalValues := make(map[string]float64, len(req.UncertainParameters))
	for _, p := range req.UncertainParameters {
		v, err := scenario.Baseline(req.SolverRequest, p.Path)
		if err != nil {
			return &domain.RobustResponse{Status: domain.StatusError, Message: err.Error()}
		}
		nominalValues[p.Path] = v
	}

	scenarios := scenario.RobustScenarios(req.UncertainParameters, nominalValues, req.NumScenarios)

	type solved struct {
		outcome domain.ScenarioOutcome
	}
	cache := scenario.NewCache()
	var feasibleObjectives []float64
	var solvedScenarios []solved
	for i, s := range scenarios {
		id := fmt.Sprintf("robust-%d", i)
		outcome := scenario.Solve(ctx, req.SolverType, req.SolverRequest, id, s, req.MaxSolveTimeSeconds, cache)
		solvedScenarios = append(solvedScenarios, solved{outcome: outcome})
		if outcome.Feasible {
			feasibleObjectives = append(feasibleObjectives, outcome.ObjectiveValue)
		}
	}

	if len(feasibleObjectives) == 0 {
		return &domain.RobustResponse{Status: domain.StatusInfeasible, Message: "no scenario in the uncertainty set is feasible"}
	}

	sorted := statutil.Sorted(feasibleObjectives)
	p90 := statutil.Percentile(sorted, 90)
	p95 := statutil.Percentile(sorted, 95)
	worstCase := sorted[len(sorted)-1]
	mean := statutil.Mean(sorted)

	var target float64
	switch req.Mode {
	case domain.RobustWorstCase:
		target = worstCase
	case domain.RobustPercentile90:
		target = p90
	case domain.RobustPercentile95:
		target = p95
	default: // RegretMinimization
		target = mean
	}

	var chosen *domain.ScenarioOutcome
	var bestDiff float64
	for i := range solvedScenarios {
		o := solvedScenarios[i].outcome
		if !o.Feasible {
			continue
		}
		diff := math.Abs(o.ObjectiveValue - target)
		if chosen == nil || diff < bestDiff {
			oc := o
			chosen = &oc
			bestDiff = diff
		}
	}

	feasibilityRate := 100 * float64(len(feasibleObjectives)) / float64(len(scenarios))
	priceOfRobustness := 100 * (chosen.ObjectiveValue - objNominal) / objNominal

	cv := statutil.CoefficientOfVariation(sorted)
	var narrative string
	switch {
	case cv > 0.20:
		narrative = fmt.Sprintf("high variability across the uncertainty set (cv=%.2f); the chosen scenario carries a %.1f%% premium over nominal", cv, priceOfRobustness)
	case cv > 0.10:
		narrative = fmt.Sprintf("moderate variability across the uncertainty set (cv=%.2f); robustness costs %.1f%% over nominal", cv, priceOfRobustness)
	default:
		narrative = fmt.Sprintf("stable across the uncertainty set (cv=%.2f); robustness costs %.1f%% over nominal", cv, priceOfRobustness)
	}

	return &domain.RobustResponse{
		Status:             domain.StatusFeasible,
		Message:            fmt.Sprintf("selected %s scenario with %s=%.2f across %d scenarios (%.1f%% feasible)", req.Mode, chosen.ObjectiveName, chosen.ObjectiveValue, len(scenarios), feasibilityRate),
		ChosenScenario:     chosen.ParameterValues,
		ObjectiveValue:     statutil.Round2(chosen.ObjectiveValue),
		ObjectiveName:      chosen.ObjectiveName,
		PriceOfRobustness:  statutil.Round2(priceOfRobustness),
		FeasibilityRate:    statutil.Round2(feasibilityRate),
		Percentile90:       statutil.Round2(p90),
		Percentile95:       statutil.Round2(p95),
		Narrative:          narrative,
	}
}
